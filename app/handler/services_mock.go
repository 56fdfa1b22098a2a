package handler

import (
	"sync"
	"time"

	m "fundtracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StorageMock stands in for the db.Storage behind every handler interface.
// Child saves run concurrently during fund creation, hence the mutex.
type StorageMock struct {
	mu sync.Mutex

	funds            []m.Fund
	amortizations    []m.Amortization
	integralizations []m.Integralization
	rcis             []m.RCI
	agqs             []m.AGQ
	users            []m.User
	profiles         []m.Profile
	roles            []m.UserRole

	err error
}

/***************************** funds ***********************************/

func (mock *StorageMock) RetrieveFunds() ([]m.Fund, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	out := make([]m.Fund, len(mock.funds))
	copy(out, mock.funds)
	return out, nil
}

func (mock *StorageMock) RetrieveFund(id string) (*m.Fund, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	for _, f := range mock.funds {
		if f.ID == id {
			out := f
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (mock *StorageMock) SaveFund(fund *m.Fund) error {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return mock.err
	}
	if fund.ID == "" {
		fund.ID = uuid.NewString()
	}
	fund.CreatedAt = time.Now()
	fund.UpdatedAt = fund.CreatedAt
	mock.funds = append(mock.funds, *fund)
	return nil
}

func (mock *StorageMock) UpdateFund(id string, fields map[string]any) (*m.Fund, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	for i := range mock.funds {
		if mock.funds[i].ID != id {
			continue
		}
		f := &mock.funds[i]
		for k, v := range fields {
			switch k {
			case "name":
				f.Name = v.(string)
			case "ticker":
				f.Ticker = v.(string)
			case "type":
				f.Type = v.(string)
			case "aum":
				f.Aum = v.(float64)
			case "ytd_return":
				f.YtdReturn = v.(float64)
			case "monthly_return":
				f.MonthlyReturn = v.(float64)
			case "risk":
				f.Risk = m.Risk(v.(string))
			case "manager":
				f.Manager = v.(string)
			case "min_investment":
				f.MinInvestment = v.(float64)
			case "description":
				f.Description = v.(string)
			}
		}
		f.UpdatedAt = time.Now()
		out := *f
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (mock *StorageMock) DeleteFund(id string) error {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return mock.err
	}
	for i := range mock.funds {
		if mock.funds[i].ID == id {
			mock.funds = append(mock.funds[:i], mock.funds[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

/***************************** fund details ***********************************/

func (mock *StorageMock) RetrieveAmortizationsByFund(fundID string) ([]m.Amortization, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	var out []m.Amortization
	for _, a := range mock.amortizations {
		if a.FundID == fundID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (mock *StorageMock) SaveAmortization(a *m.Amortization) error {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return mock.err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	mock.amortizations = append(mock.amortizations, *a)
	return nil
}

func (mock *StorageMock) RetrieveIntegralizationsByFund(fundID string) ([]m.Integralization, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	var out []m.Integralization
	for _, i := range mock.integralizations {
		if i.FundID == fundID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (mock *StorageMock) SaveIntegralization(i *m.Integralization) error {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return mock.err
	}
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	mock.integralizations = append(mock.integralizations, *i)
	return nil
}

func (mock *StorageMock) RetrieveRCIsByFund(fundID string) ([]m.RCI, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	var out []m.RCI
	for _, r := range mock.rcis {
		if r.FundID == fundID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (mock *StorageMock) SaveRCI(r *m.RCI) error {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return mock.err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	mock.rcis = append(mock.rcis, *r)
	return nil
}

func (mock *StorageMock) RetrieveAGQsByFund(fundID string) ([]m.AGQ, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	var out []m.AGQ
	for _, a := range mock.agqs {
		if a.FundID == fundID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (mock *StorageMock) SaveAGQ(a *m.AGQ) error {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return mock.err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	mock.agqs = append(mock.agqs, *a)
	return nil
}

/***************************** users ***********************************/

func (mock *StorageMock) User(email string) (*m.User, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	for _, u := range mock.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (mock *StorageMock) SaveUser(user *m.User) error {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return mock.err
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	mock.users = append(mock.users, *user)
	return nil
}

func (mock *StorageMock) RetrieveUsers() ([]m.User, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	out := make([]m.User, len(mock.users))
	copy(out, mock.users)
	return out, nil
}

func (mock *StorageMock) RetrieveProfile(userID string) (*m.Profile, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	for _, p := range mock.profiles {
		if p.UserID == userID {
			out := p
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (mock *StorageMock) SaveProfile(profile *m.Profile) error {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return mock.err
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	mock.profiles = append(mock.profiles, *profile)
	return nil
}

func (mock *StorageMock) UpdateProfile(userID string, fields map[string]any) (*m.Profile, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	for i := range mock.profiles {
		if mock.profiles[i].UserID != userID {
			continue
		}
		p := &mock.profiles[i]
		if v, ok := fields["full_name"]; ok {
			p.FullName = v.(string)
		}
		if v, ok := fields["avatar_url"]; ok {
			p.AvatarURL = v.(string)
		}
		out := *p
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (mock *StorageMock) RetrieveProfiles() ([]m.Profile, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	out := make([]m.Profile, len(mock.profiles))
	copy(out, mock.profiles)
	return out, nil
}

/***************************** roles ***********************************/

func (mock *StorageMock) RetrieveUserRole(userID string) (*m.UserRole, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	for _, r := range mock.roles {
		if r.UserID == userID {
			out := r
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (mock *StorageMock) SaveUserRole(role *m.UserRole) error {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return mock.err
	}
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	mock.roles = append(mock.roles, *role)
	return nil
}

func (mock *StorageMock) RetrieveUserRoles() ([]m.UserRole, error) {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return nil, mock.err
	}
	out := make([]m.UserRole, len(mock.roles))
	copy(out, mock.roles)
	return out, nil
}

func (mock *StorageMock) UpdateUserRole(id string, role m.Role) error {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.err != nil {
		return mock.err
	}
	for i := range mock.roles {
		if mock.roles[i].ID == id {
			mock.roles[i].Role = role
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

/***************************** token blocker ***********************************/

type TokenBlockerMock struct {
	mu      sync.Mutex
	blocked map[string]bool
}

func (mock *TokenBlockerMock) BlockToken(token string, ttl time.Duration) error {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	if mock.blocked == nil {
		mock.blocked = make(map[string]bool)
	}
	mock.blocked[token] = true
	return nil
}

func (mock *TokenBlockerMock) IsTokenBlocked(token string) bool {
	mock.mu.Lock()
	defer mock.mu.Unlock()

	return mock.blocked[token]
}
