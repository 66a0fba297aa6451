package ports

import (
	"context"
	"time"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the token identified by jti until exp passes.
	Logout(ctx context.Context, jti string, exp time.Time) error
}
