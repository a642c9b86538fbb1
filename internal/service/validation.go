package service

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"product-catalog-service/pkg/errs"
)

func createValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// translateValidationErrors flattens validator output into per-field messages,
// one entry per violated field. Field names are the json names, nested fields
// dotted (size.width).
func translateValidationErrors(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.ErrClient
	}

	fieldErrs := make(errs.FieldErrors, 0, len(validationErrs))
	for _, ve := range validationErrs {
		field := ve.Namespace()
		if idx := strings.Index(field, "."); idx != -1 {
			field = field[idx+1:]
		}

		var message string
		switch ve.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "gte":
			message = fmt.Sprintf("%s must be greater than or equal to %s", field, ve.Param())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, ve.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldErrs = append(fieldErrs, errs.FieldError{Field: field, Message: message})
	}

	return fieldErrs
}
