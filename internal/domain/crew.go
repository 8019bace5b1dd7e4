package domain

import "time"

// Crew member. HiredAt is assigned by the system on creation, ImagePath is
// set by the image upload endpoint.
type Crew struct {
	ID        int64     `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	HiredAt   time.Time `json:"hired_at" db:"hired_at"`
	ImagePath *string   `json:"image,omitempty" db:"image_path"`
}
