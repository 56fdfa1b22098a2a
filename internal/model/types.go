package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Fund struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	Name          string    `json:"name" gorm:"size:255"`
	Ticker        string    `json:"ticker" gorm:"size:50"`
	Type          string    `json:"type" gorm:"size:100"`
	Aum           float64   `json:"aum"`
	YtdReturn     float64   `json:"ytd_return"`
	MonthlyReturn float64   `json:"monthly_return"`
	Risk          Risk      `json:"risk" gorm:"size:10"`
	Manager       string    `json:"manager" gorm:"size:100"`
	MinInvestment float64   `json:"min_investment"`
	Description   string    `json:"description" gorm:"size:2000"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (f *Fund) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type Amortization struct {
	ID             string         `json:"id" gorm:"primaryKey;size:36"`
	FundID         string         `json:"fund_id" gorm:"size:36;index"`
	Fund           Fund           `json:"-" gorm:"foreignKey:FundID;constraint:OnDelete:CASCADE"`
	Date           datatypes.Date `json:"date"`
	Amount         float64        `json:"amount"`
	QuotaReference float64        `json:"quota_reference"`
	PlPercentage   float64        `json:"pl_percentage"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (a *Amortization) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type Integralization struct {
	ID             string         `json:"id" gorm:"primaryKey;size:36"`
	FundID         string         `json:"fund_id" gorm:"size:36;index"`
	Fund           Fund           `json:"-" gorm:"foreignKey:FundID;constraint:OnDelete:CASCADE"`
	Date           datatypes.Date `json:"date"`
	Amount         float64        `json:"amount"`
	QuotasAcquired float64        `json:"quotas_acquired"`
	QuotaValue     float64        `json:"quota_value"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (i *Integralization) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// RCI is an investment committee decision record.
type RCI struct {
	ID           string         `json:"id" gorm:"primaryKey;size:36"`
	FundID       string         `json:"fund_id" gorm:"size:36;index"`
	Fund         Fund           `json:"-" gorm:"foreignKey:FundID;constraint:OnDelete:CASCADE"`
	Date         datatypes.Date `json:"date"`
	Agenda       string         `json:"agenda" gorm:"size:500"`
	Decision     Decision       `json:"decision" gorm:"size:20"`
	Observations string         `json:"observations" gorm:"size:1000"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (r *RCI) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// AGQ is a shareholder assembly record.
type AGQ struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	FundID    string         `json:"fund_id" gorm:"size:36;index"`
	Fund      Fund           `json:"-" gorm:"foreignKey:FundID;constraint:OnDelete:CASCADE"`
	Date      datatypes.Date `json:"date"`
	Type      AGQType        `json:"type" gorm:"size:20"`
	Agenda    string         `json:"agenda" gorm:"size:500"`
	Status    AGQStatus      `json:"status" gorm:"size:20"`
	Quorum    float64        `json:"quorum"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (a *AGQ) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex"`
	Password  string    `json:"-" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserRole maps a user to exactly one role. The unique index keeps it that way.
type UserRole struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"user_id" gorm:"size:36;uniqueIndex"`
	Role      Role      `json:"role" gorm:"size:10"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *UserRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type Profile struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"user_id" gorm:"size:36;uniqueIndex"`
	FullName  string    `json:"full_name" gorm:"size:255"`
	AvatarURL string    `json:"avatar_url" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
