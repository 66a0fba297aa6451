package service

import (
	"errors"
	"testing"
	"time"

	"github.com/tablebook/reservation-system/internal/core/domain"
	"github.com/tablebook/reservation-system/internal/core/ports"
)

func TestValidateInput(t *testing.T) {
	today := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	base := ports.ReservationInput{
		Name:   "Birthday lunch",
		Date:   "2026-09-02",
		Time:   "12:30",
		Guests: 2,
	}

	tests := []struct {
		name      string
		mutate    func(in *ports.ReservationInput)
		wantField string // empty means input is valid
	}{
		{
			name:   "valid input",
			mutate: func(in *ports.ReservationInput) {},
		},
		{
			name:   "today is allowed",
			mutate: func(in *ports.ReservationInput) { in.Date = "2026-09-01" },
		},
		{
			name:      "empty name",
			mutate:    func(in *ports.ReservationInput) { in.Name = "" },
			wantField: "name",
		},
		{
			name:      "whitespace name",
			mutate:    func(in *ports.ReservationInput) { in.Name = "   " },
			wantField: "name",
		},
		{
			name:      "missing date",
			mutate:    func(in *ports.ReservationInput) { in.Date = "" },
			wantField: "date",
		},
		{
			name:      "malformed date",
			mutate:    func(in *ports.ReservationInput) { in.Date = "02/09/2026" },
			wantField: "date",
		},
		{
			name:      "nonexistent date",
			mutate:    func(in *ports.ReservationInput) { in.Date = "2026-02-30" },
			wantField: "date",
		},
		{
			name:      "yesterday",
			mutate:    func(in *ports.ReservationInput) { in.Date = "2026-08-31" },
			wantField: "date",
		},
		{
			name:      "missing time",
			mutate:    func(in *ports.ReservationInput) { in.Time = "" },
			wantField: "time",
		},
		{
			name:      "malformed time",
			mutate:    func(in *ports.ReservationInput) { in.Time = "7pm" },
			wantField: "time",
		},
		{
			name:      "zero guests",
			mutate:    func(in *ports.ReservationInput) { in.Guests = 0 },
			wantField: "guests",
		},
		{
			name:      "negative guests",
			mutate:    func(in *ports.ReservationInput) { in.Guests = -3 },
			wantField: "guests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)

			err := validateInput(in, today)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid input, got %v", err)
				}
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, ve.Field)
			}
		})
	}
}

func TestValidateInput_LateTodayStillValid(t *testing.T) {
	// A write at 23:59 for a slot earlier the same day is still "today".
	today := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)
	in := ports.ReservationInput{Name: "Late supper", Date: "2026-09-01", Time: "09:00", Guests: 1}

	if err := validateInput(in, today); err != nil {
		t.Fatalf("same-day reservation must be valid regardless of time of day, got %v", err)
	}
}
