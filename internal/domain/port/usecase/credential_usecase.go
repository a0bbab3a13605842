package usecase

import (
	"context"

	"github.com/amirhossein-jamali/meta-model/internal/domain/entity"
)

// CredentialUseCase manages WebAuthn credentials
type CredentialUseCase interface {
	// Register stores a new credential from mass assigned attributes
	Register(ctx context.Context, attributes map[string]any) (*entity.WebAuthnCredential, error)

	// Find returns the credential with the given id
	Find(ctx context.Context, id string) (*entity.WebAuthnCredential, error)

	// Disable marks the credential as unusable
	Disable(ctx context.Context, id string) (*entity.WebAuthnCredential, error)

	// Delete removes the credential
	Delete(ctx context.Context, id string) error
}
