package errors

import "net/http"

const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeConflict        = "CONFLICT"
)

var (
	ErrStationNotFound = New(
		"STATION_NOT_FOUND",
		"Station not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusNotFound,
	)

	ErrTrainNotFound = New(
		"TRAIN_NOT_FOUND",
		"Train not found",
		http.StatusNotFound,
	)

	ErrTrainTypeNotFound = New(
		"TRAIN_TYPE_NOT_FOUND",
		"Train type not found",
		http.StatusNotFound,
	)

	ErrCrewNotFound = New(
		"CREW_NOT_FOUND",
		"Crew member not found",
		http.StatusNotFound,
	)

	ErrJourneyNotFound = New(
		"JOURNEY_NOT_FOUND",
		"Journey not found",
		http.StatusNotFound,
	)

	ErrOrderNotFound = New(
		"ORDER_NOT_FOUND",
		"Order not found",
		http.StatusNotFound,
	)

	ErrTicketNotFound = New(
		"TICKET_NOT_FOUND",
		"Ticket not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Insufficient permissions",
		http.StatusForbidden,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Token is invalid or expired",
		http.StatusUnauthorized,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
