package dto

import "time"

type JourneyRequest struct {
	Route         int64     `json:"route" validate:"required"`
	Train         int64     `json:"train" validate:"required"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time" validate:"required"`
	Crew          []int64   `json:"crew"`
}

// JourneyListRequest mirrors the list query parameters. DepartureDate is an
// ISO date (YYYY-MM-DD).
type JourneyListRequest struct {
	Source        string
	Destination   string
	DepartureDate string
}
