package handler

import (
	"time"

	"fundtracker/internal/brl"
	m "fundtracker/internal/model"

	"gorm.io/datatypes"
)

/***************************************************************** request ****************************************************************/

type SignUpReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,max=255"`
}

type SignInReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileReq struct {
	FullName  *string `json:"full_name" validate:"omitempty,max=255"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,max=500"`
}

type AddFundReq struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Ticker        string  `json:"ticker" validate:"required,max=50"`
	Type          string  `json:"type" validate:"required,max=100"`
	Aum           float64 `json:"aum" validate:"gte=0"`
	YtdReturn     float64 `json:"ytd_return"`
	MonthlyReturn float64 `json:"monthly_return"`
	Risk          string  `json:"risk" validate:"omitempty,risk"`
	Manager       string  `json:"manager" validate:"required,max=100"`
	MinInvestment float64 `json:"min_investment" validate:"gte=0"`
	Description   string  `json:"description" validate:"max=2000"`

	// children staged on the add-fund form, submitted after the fund itself
	Amortizations    []AddAmortizationReq    `json:"amortizations" validate:"dive"`
	Integralizations []AddIntegralizationReq `json:"integralizations" validate:"dive"`
	RCIs             []AddRCIReq             `json:"rcis" validate:"dive"`
	AGQs             []AddAGQReq             `json:"agqs" validate:"dive"`
}

type UpdateFundReq struct {
	Name          *string  `json:"name" validate:"omitempty,max=255"`
	Ticker        *string  `json:"ticker" validate:"omitempty,max=50"`
	Type          *string  `json:"type" validate:"omitempty,max=100"`
	Aum           *float64 `json:"aum" validate:"omitempty,gte=0"`
	YtdReturn     *float64 `json:"ytd_return"`
	MonthlyReturn *float64 `json:"monthly_return"`
	Risk          *string  `json:"risk" validate:"omitempty,risk"`
	Manager       *string  `json:"manager" validate:"omitempty,max=100"`
	MinInvestment *float64 `json:"min_investment" validate:"omitempty,gte=0"`
	Description   *string  `json:"description" validate:"omitempty,max=2000"`
}

func (r UpdateFundReq) fields() map[string]any {

	fields := make(map[string]any)
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Ticker != nil {
		fields["ticker"] = *r.Ticker
	}
	if r.Type != nil {
		fields["type"] = *r.Type
	}
	if r.Aum != nil {
		fields["aum"] = *r.Aum
	}
	if r.YtdReturn != nil {
		fields["ytd_return"] = *r.YtdReturn
	}
	if r.MonthlyReturn != nil {
		fields["monthly_return"] = *r.MonthlyReturn
	}
	if r.Risk != nil {
		fields["risk"] = *r.Risk
	}
	if r.Manager != nil {
		fields["manager"] = *r.Manager
	}
	if r.MinInvestment != nil {
		fields["min_investment"] = *r.MinInvestment
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	return fields
}

type AddAmortizationReq struct {
	Date           string  `json:"date" validate:"required"`
	Amount         float64 `json:"amount" validate:"required"`
	QuotaReference float64 `json:"quota_reference"`
	PlPercentage   float64 `json:"pl_percentage"`
}

type AddIntegralizationReq struct {
	Date           string  `json:"date" validate:"required"`
	Amount         float64 `json:"amount" validate:"required"`
	QuotasAcquired float64 `json:"quotas_acquired"`
	QuotaValue     float64 `json:"quota_value"`
}

type AddRCIReq struct {
	Date         string `json:"date" validate:"required"`
	Agenda       string `json:"agenda" validate:"required,max=500"`
	Decision     string `json:"decision" validate:"omitempty,decision"`
	Observations string `json:"observations" validate:"max=1000"`
}

type AddAGQReq struct {
	Date   string  `json:"date" validate:"required"`
	Type   string  `json:"type" validate:"omitempty,agq_type"`
	Agenda string  `json:"agenda" validate:"required,max=500"`
	Status string  `json:"status" validate:"omitempty,agq_status"`
	Quorum float64 `json:"quorum" validate:"gte=0,lte=100"`
}

type UpdateRoleReq struct {
	Role string `json:"role" validate:"required,role"`
}

/***************************************************************** response ****************************************************************/

// Notice mirrors the toast the web client shows after every mutation.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type JWTResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"`
	Notice
}

type meResponse struct {
	UserID    string           `json:"user_id"`
	Email     string           `json:"email"`
	Profile   *profileResponse `json:"profile"`
	Role      string           `json:"role"`
	CanEdit   bool             `json:"can_edit"`
	CanDelete bool             `json:"can_delete"`
	CanCreate bool             `json:"can_create"`
}

type profileResponse struct {
	UserID    string `json:"user_id"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

func newProfileResponse(p *m.Profile) *profileResponse {
	if p == nil {
		return nil
	}
	return &profileResponse{
		UserID:    p.UserID,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
	}
}

type fundResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Ticker               string  `json:"ticker"`
	Type                 string  `json:"type"`
	Aum                  float64 `json:"aum"`
	AumDisplay           string  `json:"aum_display"`
	YtdReturn            float64 `json:"ytd_return"`
	MonthlyReturn        float64 `json:"monthly_return"`
	Risk                 string  `json:"risk"`
	Manager              string  `json:"manager"`
	MinInvestment        float64 `json:"min_investment"`
	MinInvestmentDisplay string  `json:"min_investment_display"`
	Description          string  `json:"description"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}

// newFundResponse is the one place a fund row, remote or demo, becomes the
// shape the views consume.
func newFundResponse(f *m.Fund) fundResponse {
	return fundResponse{
		ID:                   f.ID,
		Name:                 f.Name,
		Ticker:               f.Ticker,
		Type:                 f.Type,
		Aum:                  f.Aum,
		AumDisplay:           brl.Format(f.Aum),
		YtdReturn:            f.YtdReturn,
		MonthlyReturn:        f.MonthlyReturn,
		Risk:                 string(f.Risk),
		Manager:              f.Manager,
		MinInvestment:        f.MinInvestment,
		MinInvestmentDisplay: brl.Format(f.MinInvestment),
		Description:          f.Description,
		CreatedAt:            f.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:            f.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

type fundMutationResponse struct {
	Fund fundResponse `json:"fund"`
	Notice
}

type amortizationResponse struct {
	ID             string  `json:"id"`
	FundID         string  `json:"fund_id"`
	Date           string  `json:"date"`
	Amount         float64 `json:"amount"`
	AmountDisplay  string  `json:"amount_display"`
	QuotaReference float64 `json:"quota_reference"`
	PlPercentage   float64 `json:"pl_percentage"`
}

func newAmortizationResponse(a *m.Amortization) amortizationResponse {
	return amortizationResponse{
		ID:             a.ID,
		FundID:         a.FundID,
		Date:           fmtDate(a.Date),
		Amount:         a.Amount,
		AmountDisplay:  brl.Format(a.Amount),
		QuotaReference: a.QuotaReference,
		PlPercentage:   a.PlPercentage,
	}
}

type integralizationResponse struct {
	ID             string  `json:"id"`
	FundID         string  `json:"fund_id"`
	Date           string  `json:"date"`
	Amount         float64 `json:"amount"`
	AmountDisplay  string  `json:"amount_display"`
	QuotasAcquired float64 `json:"quotas_acquired"`
	QuotaValue     float64 `json:"quota_value"`
}

func newIntegralizationResponse(i *m.Integralization) integralizationResponse {
	return integralizationResponse{
		ID:             i.ID,
		FundID:         i.FundID,
		Date:           fmtDate(i.Date),
		Amount:         i.Amount,
		AmountDisplay:  brl.Format(i.Amount),
		QuotasAcquired: i.QuotasAcquired,
		QuotaValue:     i.QuotaValue,
	}
}

type rciResponse struct {
	ID           string `json:"id"`
	FundID       string `json:"fund_id"`
	Date         string `json:"date"`
	Agenda       string `json:"agenda"`
	Decision     string `json:"decision"`
	Observations string `json:"observations"`
}

func newRCIResponse(r *m.RCI) rciResponse {
	return rciResponse{
		ID:           r.ID,
		FundID:       r.FundID,
		Date:         fmtDate(r.Date),
		Agenda:       r.Agenda,
		Decision:     string(r.Decision),
		Observations: r.Observations,
	}
}

type agqResponse struct {
	ID     string  `json:"id"`
	FundID string  `json:"fund_id"`
	Date   string  `json:"date"`
	Type   string  `json:"type"`
	Agenda string  `json:"agenda"`
	Status string  `json:"status"`
	Quorum float64 `json:"quorum"`
}

func newAGQResponse(a *m.AGQ) agqResponse {
	return agqResponse{
		ID:     a.ID,
		FundID: a.FundID,
		Date:   fmtDate(a.Date),
		Type:   string(a.Type),
		Agenda: a.Agenda,
		Status: string(a.Status),
		Quorum: a.Quorum,
	}
}

type userWithRoleResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	RoleID   string `json:"role_id"`
}

func fmtDate(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}
