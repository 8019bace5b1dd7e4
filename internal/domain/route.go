package domain

import (
	"time"

	"github.com/station-booking/internal/pkg/errors"
)

// Route connects two distinct stations. The schedule pair is optional
// reference data carried over from the legacy schema; when set it must be
// ordered.
type Route struct {
	ID                  int64     `json:"id" db:"id"`
	SourceID            int64     `json:"source" db:"source_id"`
	DestinationID       int64     `json:"destination" db:"destination_id"`
	Distance            float64   `json:"distance" db:"distance"`
	SourceDatetime      time.Time `json:"source_datetime" db:"source_datetime"`
	DestinationDatetime time.Time `json:"destination_datetime" db:"destination_datetime"`

	// Populated on reads.
	Source      *Station `json:"source_station,omitempty" db:"-"`
	Destination *Station `json:"destination_station,omitempty" db:"-"`
}

// ValidateRoute rejects a route whose endpoints coincide or whose schedule
// pair is out of order. Runs on every create/update before any write.
func ValidateRoute(sourceID, destinationID int64, sourceDatetime, destinationDatetime time.Time) error {
	if sourceID == destinationID {
		return errors.NewValidation(
			"source",
			"source and destination cannot be the same station",
		)
	}
	if !sourceDatetime.IsZero() && !destinationDatetime.IsZero() &&
		!sourceDatetime.Before(destinationDatetime) {
		return errors.NewValidation(
			"source_datetime",
			"source_datetime cannot be later than or equal to destination_datetime",
		)
	}
	return nil
}
