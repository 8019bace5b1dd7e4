package domain

import "time"

// Order groups the tickets of one booking. Orders are owned by the user who
// created them and have no lifecycle beyond creation and deletion.
type Order struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"-" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Tickets      []Ticket `json:"tickets,omitempty" db:"-"`
	TotalTickets int      `json:"total_tickets" db:"-"`
}
