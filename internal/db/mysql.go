package db

import (
	"fmt"

	m "fundtracker/internal/model"

	"gorm.io/gorm"
)

func stgDsn(conf *MysqlConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", conf.user, conf.password, conf.ip, conf.port, conf.scheme)
}

func (s Storage) initTables() error {

	err := s.db.AutoMigrate(&m.Fund{}, &m.Amortization{}, &m.Integralization{},
		&m.RCI{}, &m.AGQ{},
		&m.User{}, &m.UserRole{}, &m.Profile{})
	if err != nil {
		panic("failed to migrate database")
	}
	return nil
}

/***************************************************************** funds ****************************************************************/

func (s Storage) RetrieveFunds() ([]m.Fund, error) {

	var funds []m.Fund
	if s.cacheGet(fundListKey, &funds) {
		return funds, nil
	}

	result := s.db.Model(&m.Fund{}).Order("created_at desc").Find(&funds)
	if result.Error != nil {
		return nil, result.Error
	}

	s.cacheSet(fundListKey, funds)
	s.lg.Info().Msgf("Retrieved %d funds", len(funds))
	return funds, nil
}

func (s Storage) RetrieveFund(id string) (*m.Fund, error) {

	var fund m.Fund
	if s.cacheGet(fundKey(id), &fund) {
		return &fund, nil
	}

	result := s.db.First(&fund, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}

	s.cacheSet(fundKey(id), fund)
	return &fund, nil
}

func (s Storage) SaveFund(fund *m.Fund) error {

	result := s.db.Create(fund)
	if result.Error != nil {
		return result.Error
	}

	s.cacheDel(fundListKey)
	s.lg.Info().Str("id", fund.ID).Msg("Fund saved")
	return nil
}

// UpdateFund applies only the given columns and returns the refreshed row.
func (s Storage) UpdateFund(id string, fields map[string]any) (*m.Fund, error) {

	var fund m.Fund
	if err := s.db.First(&fund, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&fund).Updates(fields).Error; err != nil {
		return nil, err
	}

	if err := s.db.First(&fund, "id = ?", id).Error; err != nil {
		return nil, err
	}

	s.cacheDel(fundListKey, fundKey(id))
	s.lg.Info().Str("id", id).Int("fields", len(fields)).Msg("Fund updated")
	return &fund, nil
}

func (s Storage) DeleteFund(id string) error {

	result := s.db.Delete(&m.Fund{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	// children cascade away with the fund, so their cached lists go too
	s.cacheDel(fundListKey, fundKey(id),
		amortizationsKey(id), integralizationsKey(id), rciKey(id), agqKey(id))
	s.lg.Info().Str("id", id).Msg("Fund deleted")
	return nil
}

/***************************************************************** fund details ****************************************************************/

func (s Storage) RetrieveAmortizationsByFund(fundID string) ([]m.Amortization, error) {

	var rows []m.Amortization
	if s.cacheGet(amortizationsKey(fundID), &rows) {
		return rows, nil
	}

	result := s.db.Model(&m.Amortization{}).Where("fund_id = ?", fundID).Order("date desc").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	s.cacheSet(amortizationsKey(fundID), rows)
	return rows, nil
}

func (s Storage) SaveAmortization(a *m.Amortization) error {

	result := s.db.Create(a)
	if result.Error != nil {
		return result.Error
	}

	s.cacheDel(amortizationsKey(a.FundID))
	s.lg.Info().Str("fund_id", a.FundID).Msg("Amortization saved")
	return nil
}

func (s Storage) RetrieveIntegralizationsByFund(fundID string) ([]m.Integralization, error) {

	var rows []m.Integralization
	if s.cacheGet(integralizationsKey(fundID), &rows) {
		return rows, nil
	}

	result := s.db.Model(&m.Integralization{}).Where("fund_id = ?", fundID).Order("date desc").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	s.cacheSet(integralizationsKey(fundID), rows)
	return rows, nil
}

func (s Storage) SaveIntegralization(i *m.Integralization) error {

	result := s.db.Create(i)
	if result.Error != nil {
		return result.Error
	}

	s.cacheDel(integralizationsKey(i.FundID))
	s.lg.Info().Str("fund_id", i.FundID).Msg("Integralization saved")
	return nil
}

func (s Storage) RetrieveRCIsByFund(fundID string) ([]m.RCI, error) {

	var rows []m.RCI
	if s.cacheGet(rciKey(fundID), &rows) {
		return rows, nil
	}

	result := s.db.Model(&m.RCI{}).Where("fund_id = ?", fundID).Order("date desc").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	s.cacheSet(rciKey(fundID), rows)
	return rows, nil
}

func (s Storage) SaveRCI(r *m.RCI) error {

	result := s.db.Create(r)
	if result.Error != nil {
		return result.Error
	}

	s.cacheDel(rciKey(r.FundID))
	s.lg.Info().Str("fund_id", r.FundID).Msg("RCI saved")
	return nil
}

func (s Storage) RetrieveAGQsByFund(fundID string) ([]m.AGQ, error) {

	var rows []m.AGQ
	if s.cacheGet(agqKey(fundID), &rows) {
		return rows, nil
	}

	result := s.db.Model(&m.AGQ{}).Where("fund_id = ?", fundID).Order("date desc").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	s.cacheSet(agqKey(fundID), rows)
	return rows, nil
}

func (s Storage) SaveAGQ(a *m.AGQ) error {

	result := s.db.Create(a)
	if result.Error != nil {
		return result.Error
	}

	s.cacheDel(agqKey(a.FundID))
	s.lg.Info().Str("fund_id", a.FundID).Msg("AGQ saved")
	return nil
}

/***************************************************************** users ****************************************************************/

func (s Storage) User(email string) (*m.User, error) {

	var user m.User
	result := s.db.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s Storage) SaveUser(user *m.User) error {
	return s.db.Create(user).Error
}

func (s Storage) RetrieveUsers() ([]m.User, error) {

	var users []m.User
	result := s.db.Model(&m.User{}).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s Storage) RetrieveProfile(userID string) (*m.Profile, error) {

	var profile m.Profile
	if s.cacheGet(profileKey(userID), &profile) {
		return &profile, nil
	}

	result := s.db.First(&profile, "user_id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}

	s.cacheSet(profileKey(userID), profile)
	return &profile, nil
}

func (s Storage) SaveProfile(profile *m.Profile) error {
	return s.db.Create(profile).Error
}

func (s Storage) UpdateProfile(userID string, fields map[string]any) (*m.Profile, error) {

	var profile m.Profile
	if err := s.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&profile).Updates(fields).Error; err != nil {
		return nil, err
	}

	if err := s.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}

	s.cacheDel(profileKey(userID))
	return &profile, nil
}

func (s Storage) RetrieveProfiles() ([]m.Profile, error) {

	var profiles []m.Profile
	result := s.db.Model(&m.Profile{}).Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}
	return profiles, nil
}

/***************************************************************** roles ****************************************************************/

func (s Storage) RetrieveUserRole(userID string) (*m.UserRole, error) {

	var role m.UserRole
	if s.cacheGet(roleKey(userID), &role) {
		return &role, nil
	}

	result := s.db.First(&role, "user_id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}

	s.cacheSet(roleKey(userID), role)
	return &role, nil
}

func (s Storage) SaveUserRole(role *m.UserRole) error {

	result := s.db.Create(role)
	if result.Error != nil {
		return result.Error
	}

	s.cacheDel(roleKey(role.UserID))
	return nil
}

func (s Storage) RetrieveUserRoles() ([]m.UserRole, error) {

	var roles []m.UserRole
	result := s.db.Model(&m.UserRole{}).Find(&roles)
	if result.Error != nil {
		return nil, result.Error
	}
	return roles, nil
}

func (s Storage) UpdateUserRole(id string, role m.Role) error {

	var row m.UserRole
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		return err
	}

	if err := s.db.Model(&row).Update("role", role).Error; err != nil {
		return err
	}

	s.cacheDel(roleKey(row.UserID))
	s.lg.Info().Str("user_id", row.UserID).Str("role", string(role)).Msg("Role updated")
	return nil
}
