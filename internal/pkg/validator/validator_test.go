package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/station-booking/internal/pkg/errors"
	"github.com/station-booking/internal/pkg/validator"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Seats    int    `json:"seats" validate:"omitempty,min=1"`
}

func TestValidate(t *testing.T) {
	t.Run("valid struct", func(t *testing.T) {
		err := validator.Validate(&sampleRequest{
			Email:    "rider@example.com",
			Password: "longenough",
		})
		assert.NoError(t, err)
	})

	t.Run("errors keyed by json field name", func(t *testing.T) {
		err := validator.Validate(&sampleRequest{Email: "not-an-email", Password: "short"})
		assert.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, errors.CodeValidationError, appErr.Code)
		assert.Contains(t, appErr.Details, "email")
		assert.Contains(t, appErr.Details, "password")
	})

	t.Run("missing required field", func(t *testing.T) {
		err := validator.Validate(&sampleRequest{})
		assert.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Contains(t, appErr.Details, "email")
	})
}
