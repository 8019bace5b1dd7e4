package dto

import "time"

// RouteRequest carries a route create/update. The schedule pair is optional;
// defaults are applied by the usecase.
type RouteRequest struct {
	Source              int64      `json:"source" validate:"required"`
	Destination         int64      `json:"destination" validate:"required"`
	Distance            float64    `json:"distance" validate:"gte=0"`
	SourceDatetime      *time.Time `json:"source_datetime"`
	DestinationDatetime *time.Time `json:"destination_datetime"`
}
