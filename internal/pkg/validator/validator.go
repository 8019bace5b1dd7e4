package validator

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/station-booking/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Validate runs struct-tag validation and translates failures into a
// field-keyed AppError.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ErrInvalidRequest
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		msgs, _ := details[field].([]string)
		details[field] = append(msgs, messageFor(fe))
	}

	appErr := errors.New(errors.CodeValidationError, "Validation failed", http.StatusBadRequest)
	return appErr.WithDetails(details)
}

func GetValidator() *validator.Validate {
	return validate
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed validation on " + fe.Tag()
	}
}
