package handler

import (
	"strconv"

	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

// --- Request → Service input ---

func toReservationInput(req reservationRequest) ports.ReservationInput {
	return ports.ReservationInput{
		Name:   req.Name,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
		Notes:  req.Notes,
	}
}

// --- Domain → HTTP response ---

func toReservationResponse(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:        r.ID,
		Name:      r.Name,
		Date:      r.Date,
		Time:      r.Time,
		Guests:    r.Guests,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt.UTC(),
		Links: reservationLinks{
			Self: "/v1/reservations/" + strconv.FormatInt(r.ID, 10),
		},
	}
}

func toListResponse(items []*domain.Reservation) listReservationsResponse {
	data := make([]reservationResponse, 0, len(items))
	for _, r := range items {
		data = append(data, toReservationResponse(r))
	}
	return listReservationsResponse{Data: data}
}

func toAdminReservationResponse(r *domain.Reservation) adminReservationResponse {
	return adminReservationResponse{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Name:      r.Name,
		Date:      r.Date,
		Time:      r.Time,
		Guests:    r.Guests,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt.UTC(),
	}
}
