package credential

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/meta-model/internal/domain/entity"
	errs "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	"github.com/amirhossein-jamali/meta-model/internal/domain/metamodel"
	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/usecase"
)

// Service handles WebAuthn credential business logic
type Service struct {
	composer     *metamodel.Composer
	models       persistence.ModelRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.CredentialUseCase = (*Service)(nil)

// NewService creates a new credential Service for the registered model type
func NewService(
	composer *metamodel.Composer,
	models persistence.ModelRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		composer:     composer,
		models:       models,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register mass assigns the attributes to a new credential and stores it
func (s *Service) Register(ctx context.Context, attributes map[string]any) (*entity.WebAuthnCredential, error) {
	credential := entity.NewWebAuthnCredential(s.composer)
	if err := credential.Fill(attributes); err != nil {
		s.logger.Warn("Rejected credential attributes", logFields(err))
		return nil, err
	}

	for _, required := range []string{"authenticatable_type", "authenticatable_id", "rp_id", "origin", "public_key"} {
		if value, ok := credential.Raw(required); !ok || value == nil || value == "" {
			return nil, fmt.Errorf("%w: %s is required", errs.ErrInvalidRequest, required)
		}
	}

	if err := s.models.Create(ctx, credential.Model); err != nil {
		return nil, err
	}

	s.logger.Info("Credential registered", map[string]any{
		"id":         credential.ID(),
		"table":      credential.TableName(),
		"connection": credential.Connection(),
	})
	return credential, nil
}

// Find returns the credential with the given id
func (s *Service) Find(ctx context.Context, id string) (*entity.WebAuthnCredential, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: credential id is required", errs.ErrInvalidRequest)
	}

	credential := entity.NewWebAuthnCredential(s.composer)
	if err := s.models.FindByKey(ctx, credential.Model, id); err != nil {
		return nil, err
	}
	return credential, nil
}

// Disable marks the credential as unusable from now on; disabling twice keeps the first time
func (s *Service) Disable(ctx context.Context, id string) (*entity.WebAuthnCredential, error) {
	credential, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !credential.IsEnabled() {
		return credential, nil
	}

	if err := credential.Disable(s.timeProvider.Now()); err != nil {
		return nil, err
	}
	if err := s.models.Update(ctx, credential.Model); err != nil {
		return nil, err
	}

	s.logger.Info("Credential disabled", map[string]any{"id": id})
	return credential, nil
}

// Delete removes the credential
func (s *Service) Delete(ctx context.Context, id string) error {
	credential, err := s.Find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.models.Delete(ctx, credential.Model); err != nil {
		return err
	}

	s.logger.Info("Credential deleted", map[string]any{"id": id})
	return nil
}

func logFields(err error) map[string]any {
	if lf, ok := err.(interface{ LogFields() map[string]any }); ok {
		return lf.LogFields()
	}
	return map[string]any{"error": err.Error()}
}
