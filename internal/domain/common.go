package domain

import "time"

// Page is a 1-based pagination window.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}

// JourneyFilter narrows journey listings. Source and Destination match
// station names case-insensitively as substrings; DepartureDate matches the
// calendar date of the departure time.
type JourneyFilter struct {
	Source        string
	Destination   string
	DepartureDate *time.Time
}
