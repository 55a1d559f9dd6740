package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/projectveo/backend/errs"
)

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct checks s and converts the first failing rule into an API error.
func ValidateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewMalformedPayloadError("request", err)
	}

	fe := fieldErrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return errs.NewMissingRequiredFieldError(field)
	case "email":
		return errs.NewInvalidFieldError(field, "must be a valid email address")
	case "min":
		return errs.NewInvalidFieldError(field, fmt.Sprintf("must be at least %s characters", fe.Param()))
	case "max":
		return errs.NewInvalidFieldError(field, fmt.Sprintf("must be at most %s characters", fe.Param()))
	case "gte":
		return errs.NewInvalidFieldError(field, fmt.Sprintf("must be greater than or equal to %s", fe.Param()))
	case "oneof":
		return errs.NewInvalidFieldError(field, fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", ")))
	default:
		return errs.NewInvalidFieldError(field, fmt.Sprintf("failed %s validation", fe.Tag()))
	}
}
