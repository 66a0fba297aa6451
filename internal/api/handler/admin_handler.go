package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tablebook/reservation-system/internal/core/ports"
)

// AdminHandler serves the read-only reporting views: a filtered listing over
// all reservations and the per-reservation activity trail. It never writes.
type AdminHandler struct {
	reservations ports.ReservationService
	activity     ports.ActivityRepository
}

func NewAdminHandler(reservations ports.ReservationService, activity ports.ActivityRepository) *AdminHandler {
	return &AdminHandler{reservations: reservations, activity: activity}
}

// List handles GET /v1/admin/reservations.
//
// @Summary      List all reservations (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        date          query     string  false  "Exact reservation date (YYYY-MM-DD)"
// @Param        created_from  query     string  false  "created_at lower bound (RFC 3339)"
// @Param        created_to    query     string  false  "created_at upper bound (RFC 3339)"
// @Param        search        query     string  false  "Partial match on name or owner"
// @Param        page          query     int     false  "Page (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Success      200  {object}  adminListReservationsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/reservations [get]
func (h *AdminHandler) List(c echo.Context) error {
	filter := ports.AdminListFilter{
		Date:   c.QueryParam("date"),
		Search: c.QueryParam("search"),
	}

	if v := c.QueryParam("created_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "created_from must be RFC 3339")
		}
		filter.CreatedFrom = t
	}
	if v := c.QueryParam("created_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "created_to must be RFC 3339")
		}
		filter.CreatedTo = t
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	items, total, err := h.reservations.ListAll(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	// ListAll normalised page/limit; recompute them the same way for the envelope.
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	data := make([]adminReservationResponse, 0, len(items))
	for _, r := range items {
		data = append(data, toAdminReservationResponse(r))
	}

	return c.JSON(http.StatusOK, adminListReservationsResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	})
}

// Activity handles GET /v1/admin/reservations/:id/activity.
//
// @Summary      Activity trail for one reservation (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reservation id"
// @Success      200  {object}  activityListResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/reservations/{id}/activity [get]
func (h *AdminHandler) Activity(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return err
	}

	events, err := h.activity.ListByReservation(c.Request().Context(), id)
	if err != nil {
		return err
	}

	resp := activityListResponse{
		ReservationID: id,
		Events:        make([]activityEventResponse, 0, len(events)),
	}
	for _, e := range events {
		resp.Events = append(resp.Events, activityEventResponse{
			Action:    string(e.Action),
			OwnerID:   e.OwnerID,
			Timestamp: e.Timestamp,
		})
	}

	return c.JSON(http.StatusOK, resp)
}
