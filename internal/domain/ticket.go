package domain

import (
	"fmt"

	"github.com/station-booking/internal/pkg/errors"
)

// Ticket occupies one seat key (journey, carriage, seat). The seat key is
// unique at the storage level; that constraint is the sole arbiter between
// concurrent bookings.
type Ticket struct {
	ID        int64 `json:"id" db:"id"`
	Carriage  int   `json:"carriage" db:"carriage"`
	Seat      int   `json:"seat" db:"seat"`
	OrderID   int64 `json:"order" db:"order_id"`
	JourneyID int64 `json:"journey" db:"journey_id"`
}

// ValidateTicket checks carriage and seat against the train of the target
// journey. Messages echo the valid range so the client can self-correct.
func ValidateTicket(carriage, seat int, train *Train) error {
	if carriage < 1 || carriage > train.CarriageCount {
		return errors.NewValidation(
			"carriage",
			fmt.Sprintf(
				"carriage number must be in available range: (1, carriage): (1, %d)",
				train.CarriageCount,
			),
		)
	}
	if seat < 1 || seat > train.SeatsPerCarriage {
		return errors.NewValidation(
			"seat",
			fmt.Sprintf(
				"seat number must be in available range: (1, seats_in_row): (1, %d)",
				train.SeatsPerCarriage,
			),
		)
	}
	return nil
}
