package customer

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"customer-management/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var customerIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type enumValue interface {
	IsValid() bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "customerid", func(fl validator.FieldLevel) bool {
		return customerIDPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumValue)
		return ok && e.IsValid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate checks every constraint of the record.
func Validate(c *Customer) error {
	if c == nil {
		return apperrors.NewValidationError("", "customer cannot be nil")
	}
	return translateValidationError(validate.Struct(c))
}

// validateFields checks only the named struct fields (Go field names).
func validateFields(c *Customer, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return translateValidationError(validate.StructPartial(c, fields...))
}

// ValidatePage checks list pagination bounds.
func ValidatePage(skip, limit int) error {
	if skip < 0 {
		return apperrors.NewValidationError("skip", "must be greater than or equal to 0")
	}
	if limit < 1 || limit > MaxPageLimit {
		return apperrors.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxPageLimit))
	}
	return nil
}

func translateValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	fe := fieldErrs[0]
	return apperrors.NewValidationError(fe.Field(), describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "enum":
		return fmt.Sprintf("invalid value %q", fmt.Sprint(fe.Value()))
	case "customerid":
		return "may only contain letters, digits, underscores and hyphens"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func isValidation(err error) bool {
	return errors.Is(err, apperrors.ErrValidation)
}
