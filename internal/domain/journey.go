package domain

import (
	"time"

	"github.com/station-booking/internal/pkg/errors"
)

// Journey is a scheduled run of a train over a route. TicketsAvailable is
// derived at read time and never persisted.
type Journey struct {
	ID            int64     `json:"id" db:"id"`
	RouteID       int64     `json:"route" db:"route_id"`
	TrainID       int64     `json:"train" db:"train_id"`
	DepartureTime time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time" db:"arrival_time"`

	Route            *Route  `json:"route_detail,omitempty" db:"-"`
	Train            *Train  `json:"train_detail,omitempty" db:"-"`
	Crew             []Crew  `json:"crew,omitempty" db:"-"`
	TicketsAvailable *int    `json:"tickets_available,omitempty" db:"-"`
	CrewIDs          []int64 `json:"-" db:"-"`
}

// ValidateJourneyTimes rejects a journey whose departure is not strictly
// before its arrival, or lies before now. The past check is exact and runs
// at write time only.
func ValidateJourneyTimes(departure, arrival, now time.Time) error {
	if !departure.Before(arrival) {
		return errors.NewValidation(
			"departure_time",
			"departure_time cannot be later than or equal to arrival_time",
		)
	}
	if departure.Before(now) {
		return errors.NewValidation(
			"departure_time",
			"departure_time cannot be in the past",
		)
	}
	return nil
}
