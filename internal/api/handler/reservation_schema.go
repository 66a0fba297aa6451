package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// --- Request / Response types ---

// reservationRequest is the submission body for both create and update.
// Owner and id are never part of it; an owner field in the payload is
// simply ignored by binding.
type reservationRequest struct {
	Name   string `json:"name"   validate:"required"`
	Date   string `json:"date"   validate:"required"`
	Time   string `json:"time"   validate:"required"`
	Guests int    `json:"guests" validate:"required,min=1"`
	Notes  string `json:"notes"`
}

type reservationLinks struct {
	Self string `json:"self"`
}

type reservationResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Date      string           `json:"date"`
	Time      string           `json:"time"`
	Guests    int              `json:"guests"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	Links     reservationLinks `json:"_links"`
}

type listReservationsResponse struct {
	Data []reservationResponse `json:"data"`
}

// --- Admin view (read-only reporting) ---

// adminReservationResponse includes the owner, which the user-facing
// responses omit because the caller always is the owner.
type adminReservationResponse struct {
	ID        int64     `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Guests    int       `json:"guests"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type adminListReservationsResponse struct {
	Data       []adminReservationResponse `json:"data"`
	Pagination paginationResponse         `json:"pagination"`
}

type activityEventResponse struct {
	Action    string    `json:"action"`
	OwnerID   string    `json:"owner_id"`
	Timestamp time.Time `json:"timestamp"`
}

type activityListResponse struct {
	ReservationID int64                   `json:"reservation_id"`
	Events        []activityEventResponse `json:"events"`
}
