package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tablebook/reservation-system/internal/api/metrics"
	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

// ReservationHandler handles the owner-scoped reservation endpoints.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// List handles GET /v1/reservations.
//
// @Summary      List the caller's reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listReservationsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(items))
}

// Create handles POST /v1/reservations.
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reservationRequest  true  "Reservation fields"
// @Success      201   {object}  reservationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ownerID, toReservationInput(req))
	if err != nil {
		return err
	}

	metrics.CreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toReservationResponse(created))
}

// Get handles GET /v1/reservations/:id. It is read-only and doubles as the
// confirmation view a client fetches before issuing a DELETE.
//
// @Summary      Get one of the caller's reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Reservation id"
// @Success      200  {object}  reservationResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reservations/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := reservationID(c)
	if err != nil {
		return err
	}

	reservation, err := h.service.GetOwned(c.Request().Context(), ownerID, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toReservationResponse(reservation))
}

// Update handles PUT /v1/reservations/:id.
//
// @Summary      Update one of the caller's reservations
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Reservation id"
// @Param        body  body      reservationRequest  true  "Reservation fields"
// @Success      200   {object}  reservationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/reservations/{id} [put]
func (h *ReservationHandler) Update(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := reservationID(c)
	if err != nil {
		return err
	}

	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), ownerID, id, toReservationInput(req))
	if err != nil {
		return err
	}

	metrics.UpdatedTotal.Inc()
	return c.JSON(http.StatusOK, toReservationResponse(updated))
}

// Delete handles DELETE /v1/reservations/:id.
//
// @Summary      Delete one of the caller's reservations
// @Tags         reservations
// @Security     BearerAuth
// @Param        id  path  int  true  "Reservation id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	id, err := reservationID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ownerID, id); err != nil {
		return err
	}

	metrics.DeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// reservationID parses the :id path parameter. Anything that is not a
// positive integer behaves as not-found, the same as a route miss, so the
// response never hints at what exists.
func reservationID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrReservationNotFound
	}
	return id, nil
}
