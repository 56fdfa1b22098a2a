package handler

import (
	"fmt"
	"time"

	m "fundtracker/internal/model"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

var validate = newValidator()

func newValidator() *validator.Validate {

	v := validator.New()
	v.RegisterValidation("risk", func(fl validator.FieldLevel) bool {
		return m.IsValidRisk(fl.Field().String())
	})
	v.RegisterValidation("decision", func(fl validator.FieldLevel) bool {
		return m.IsValidDecision(fl.Field().String())
	})
	v.RegisterValidation("agq_type", func(fl validator.FieldLevel) bool {
		return m.IsValidAGQType(fl.Field().String())
	})
	v.RegisterValidation("agq_status", func(fl validator.FieldLevel) bool {
		return m.IsValidAGQStatus(fl.Field().String())
	})
	v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return m.IsValidRole(fl.Field().String())
	})
	return v
}

func validCheck(param any) error {
	return validate.Struct(param)
}

func parseDate(s string) (datatypes.Date, error) {

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD. %w", s, err)
	}
	return datatypes.Date(t), nil
}
