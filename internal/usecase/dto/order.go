package dto

// TicketSpec is one seat request inside an order. ID is set only on order
// update, to amend an existing ticket in place.
type TicketSpec struct {
	ID       int64 `json:"id,omitempty"`
	Carriage int   `json:"carriage" validate:"required,min=1"`
	Seat     int   `json:"seat" validate:"required,min=1"`
	Journey  int64 `json:"journey" validate:"required"`
}

type OrderRequest struct {
	Tickets []TicketSpec `json:"tickets" validate:"required,min=1,dive"`
}

type TicketUpdateRequest struct {
	Carriage int   `json:"carriage" validate:"required,min=1"`
	Seat     int   `json:"seat" validate:"required,min=1"`
	Journey  int64 `json:"journey" validate:"required"`
}
