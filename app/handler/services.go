package handler

import (
	"time"

	m "fundtracker/internal/model"
)

type FundRetriever interface {
	RetrieveFunds() ([]m.Fund, error)
	RetrieveFund(id string) (*m.Fund, error)
}

type FundWriter interface {
	SaveFund(fund *m.Fund) error
	UpdateFund(id string, fields map[string]any) (*m.Fund, error)
	DeleteFund(id string) error
}

type DetailRetriever interface {
	RetrieveAmortizationsByFund(fundID string) ([]m.Amortization, error)
	RetrieveIntegralizationsByFund(fundID string) ([]m.Integralization, error)
	RetrieveRCIsByFund(fundID string) ([]m.RCI, error)
	RetrieveAGQsByFund(fundID string) ([]m.AGQ, error)
}

type DetailWriter interface {
	SaveAmortization(a *m.Amortization) error
	SaveIntegralization(i *m.Integralization) error
	SaveRCI(r *m.RCI) error
	SaveAGQ(a *m.AGQ) error
}

type UserRetriever interface {
	User(email string) (*m.User, error)
	RetrieveUsers() ([]m.User, error)
	RetrieveProfile(userID string) (*m.Profile, error)
	RetrieveProfiles() ([]m.Profile, error)
	RetrieveUserRole(userID string) (*m.UserRole, error)
	RetrieveUserRoles() ([]m.UserRole, error)
}

type UserWriter interface {
	SaveUser(user *m.User) error
	SaveProfile(profile *m.Profile) error
	UpdateProfile(userID string, fields map[string]any) (*m.Profile, error)
	SaveUserRole(role *m.UserRole) error
	UpdateUserRole(id string, role m.Role) error
}

// TokenBlocker backs sign-out: a blocked token stays rejected until expiry.
type TokenBlocker interface {
	BlockToken(token string, ttl time.Duration) error
	IsTokenBlocked(token string) bool
}
