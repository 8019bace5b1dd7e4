package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/station-booking/internal/domain"
	"github.com/station-booking/internal/pkg/errors"
)

func TestValidateTicket(t *testing.T) {
	train := &domain.Train{CarriageCount: 2, SeatsPerCarriage: 4}

	t.Run("valid boundaries", func(t *testing.T) {
		assert.NoError(t, domain.ValidateTicket(1, 1, train))
		assert.NoError(t, domain.ValidateTicket(2, 4, train))
	})

	t.Run("carriage out of range", func(t *testing.T) {
		for _, carriage := range []int{0, 3, -1} {
			err := domain.ValidateTicket(carriage, 1, train)
			assert.Error(t, err)

			appErr, ok := err.(*errors.AppError)
			assert.True(t, ok)
			assert.Equal(t, errors.CodeValidationError, appErr.Code)
			assert.Equal(t,
				[]string{"carriage number must be in available range: (1, carriage): (1, 2)"},
				appErr.Details["carriage"],
			)
		}
	})

	t.Run("seat out of range", func(t *testing.T) {
		for _, seat := range []int{0, 5} {
			err := domain.ValidateTicket(1, seat, train)
			assert.Error(t, err)

			appErr, ok := err.(*errors.AppError)
			assert.True(t, ok)
			assert.Equal(t,
				[]string{"seat number must be in available range: (1, seats_in_row): (1, 4)"},
				appErr.Details["seat"],
			)
		}
	})

	t.Run("carriage checked before seat", func(t *testing.T) {
		err := domain.ValidateTicket(0, 0, train)
		assert.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Contains(t, appErr.Details, "carriage")
		assert.NotContains(t, appErr.Details, "seat")
	})
}

func TestTrainCapacity(t *testing.T) {
	train := &domain.Train{CarriageCount: 5, SeatsPerCarriage: 20}
	assert.Equal(t, 100, train.Capacity())
}
