package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

// stubReservationService returns canned values; calls are recorded so tests
// can assert on the identity the handler passed down.
type stubReservationService struct {
	reservation *domain.Reservation
	list        []*domain.Reservation
	err         error

	lastOwnerID string
	lastID      int64
	lastInput   ports.ReservationInput
}

func (s *stubReservationService) List(_ context.Context, ownerID string) ([]*domain.Reservation, error) {
	s.lastOwnerID = ownerID
	return s.list, s.err
}

func (s *stubReservationService) Create(_ context.Context, ownerID string, input ports.ReservationInput) (*domain.Reservation, error) {
	s.lastOwnerID = ownerID
	s.lastInput = input
	return s.reservation, s.err
}

func (s *stubReservationService) GetOwned(_ context.Context, ownerID string, id int64) (*domain.Reservation, error) {
	s.lastOwnerID = ownerID
	s.lastID = id
	return s.reservation, s.err
}

func (s *stubReservationService) Update(_ context.Context, ownerID string, id int64, input ports.ReservationInput) (*domain.Reservation, error) {
	s.lastOwnerID = ownerID
	s.lastID = id
	s.lastInput = input
	return s.reservation, s.err
}

func (s *stubReservationService) Delete(_ context.Context, ownerID string, id int64) error {
	s.lastOwnerID = ownerID
	s.lastID = id
	return s.err
}

func (s *stubReservationService) ListAll(_ context.Context, _ ports.AdminListFilter) ([]*domain.Reservation, int64, error) {
	return s.list, int64(len(s.list)), s.err
}

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        7,
		OwnerID:   "user_1",
		Name:      "Team dinner",
		Date:      "2099-01-01",
		Time:      "19:00",
		Guests:    4,
		Notes:     "window table",
		CreatedAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newRequestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")
	return c, rec
}

const validBody = `{"name":"Team dinner","date":"2099-01-01","time":"19:00","guests":4,"notes":"window table"}`

func TestReservationHandler_Create(t *testing.T) {
	svc := &stubReservationService{reservation: sampleReservation()}
	h := NewReservationHandler(svc)

	c, rec := newRequestContext(t, http.MethodPost, "/v1/reservations", validBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rec.Code)
	}
	if svc.lastOwnerID != "user_1" {
		t.Errorf("expected owner from context, got %q", svc.lastOwnerID)
	}
	if svc.lastInput.Guests != 4 {
		t.Errorf("expected guests 4, got %d", svc.lastInput.Guests)
	}

	var resp reservationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 7 {
		t.Errorf("expected id 7 in body, got %d", resp.ID)
	}
	if resp.Links.Self != "/v1/reservations/7" {
		t.Errorf("expected self link, got %q", resp.Links.Self)
	}
}

func TestReservationHandler_Create_MalformedJSON(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{})

	c, _ := newRequestContext(t, http.MethodPost, "/v1/reservations", `{"name":`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestReservationHandler_Create_SchemaValidation(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{})

	c, _ := newRequestContext(t, http.MethodPost, "/v1/reservations", `{"date":"2099-01-01","time":"19:00","guests":4}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestReservationHandler_Create_BusinessValidationPassesThrough(t *testing.T) {
	// Service-level validation failures must reach the central error handler
	// untouched so they map to 422 with the field name.
	svc := &stubReservationService{err: domain.NewValidationError("date", "date is in the past")}
	h := NewReservationHandler(svc)

	c, _ := newRequestContext(t, http.MethodPost, "/v1/reservations", validBody)
	err := h.Create(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError to pass through, got %v", err)
	}
}

func TestReservationHandler_Create_MissingIdentity(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{})

	c, _ := newRequestContext(t, http.MethodPost, "/v1/reservations", validBody)
	c.Set("user_id", nil)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestReservationHandler_List(t *testing.T) {
	svc := &stubReservationService{list: []*domain.Reservation{sampleReservation()}}
	h := NewReservationHandler(svc)

	c, rec := newRequestContext(t, http.MethodGet, "/v1/reservations", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if svc.lastOwnerID != "user_1" {
		t.Errorf("expected owner from context, got %q", svc.lastOwnerID)
	}

	var resp listReservationsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Name != "Team dinner" {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestReservationHandler_List_EmptyIsArray(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{})

	c, rec := newRequestContext(t, http.MethodGet, "/v1/reservations", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("empty list must serialize as [], got %s", rec.Body.String())
	}
}

func TestReservationHandler_Get(t *testing.T) {
	svc := &stubReservationService{reservation: sampleReservation()}
	h := NewReservationHandler(svc)

	c, rec := newRequestContext(t, http.MethodGet, "/v1/reservations/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if svc.lastID != 7 {
		t.Errorf("expected id 7 passed to service, got %d", svc.lastID)
	}
}

func TestReservationHandler_Get_NotFound(t *testing.T) {
	svc := &stubReservationService{err: domain.ErrReservationNotFound}
	h := NewReservationHandler(svc)

	c, _ := newRequestContext(t, http.MethodGet, "/v1/reservations/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Get(c); !errors.Is(err, domain.ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}
}

func TestReservationHandler_Get_NonNumericID(t *testing.T) {
	svc := &stubReservationService{reservation: sampleReservation()}
	h := NewReservationHandler(svc)

	for _, raw := range []string{"abc", "0", "-3", "1.5"} {
		c, _ := newRequestContext(t, http.MethodGet, "/v1/reservations/"+raw, "")
		c.SetParamNames("id")
		c.SetParamValues(raw)

		if err := h.Get(c); !errors.Is(err, domain.ErrReservationNotFound) {
			t.Errorf("id %q: expected ErrReservationNotFound, got %v", raw, err)
		}
	}
}

func TestReservationHandler_Update(t *testing.T) {
	updated := sampleReservation()
	updated.Guests = 6
	svc := &stubReservationService{reservation: updated}
	h := NewReservationHandler(svc)

	body := `{"name":"Team dinner","date":"2099-01-01","time":"19:00","guests":6}`
	c, rec := newRequestContext(t, http.MethodPut, "/v1/reservations/7", body)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if svc.lastInput.Guests != 6 {
		t.Errorf("expected guests 6 passed to service, got %d", svc.lastInput.Guests)
	}
}

func TestReservationHandler_Delete(t *testing.T) {
	svc := &stubReservationService{}
	h := NewReservationHandler(svc)

	c, rec := newRequestContext(t, http.MethodDelete, "/v1/reservations/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", rec.Code)
	}
	if svc.lastID != 7 || svc.lastOwnerID != "user_1" {
		t.Errorf("expected delete scoped to id 7 / user_1, got %d / %q", svc.lastID, svc.lastOwnerID)
	}
}

func TestReservationHandler_Delete_NotFound(t *testing.T) {
	svc := &stubReservationService{err: domain.ErrReservationNotFound}
	h := NewReservationHandler(svc)

	c, _ := newRequestContext(t, http.MethodDelete, "/v1/reservations/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Delete(c); !errors.Is(err, domain.ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}
}
