package usecase

import (
	"context"

	"github.com/amirhossein-jamali/meta-model/internal/domain/entity"
)

// CreateTwoFactorRequest describes the second factor to create for an authenticatable record
type CreateTwoFactorRequest struct {
	AuthenticatableType string
	AuthenticatableID   string
	Label               string
	Attributes          map[string]any
}

// TwoFactorUseCase manages time based one time password settings
type TwoFactorUseCase interface {
	// Create replaces any second factor of the authenticatable record with a new, disabled one
	Create(ctx context.Context, req CreateTwoFactorRequest) (*entity.TwoFactorAuthentication, error)

	// Find returns the second factor with the given id
	Find(ctx context.Context, id int64) (*entity.TwoFactorAuthentication, error)

	// Enable confirms the second factor
	Enable(ctx context.Context, id int64) (*entity.TwoFactorAuthentication, error)
}
