package twofactor

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"

	"github.com/amirhossein-jamali/meta-model/internal/domain/entity"
	errs "github.com/amirhossein-jamali/meta-model/internal/domain/error"
	"github.com/amirhossein-jamali/meta-model/internal/domain/metamodel"
	coreport "github.com/amirhossein-jamali/meta-model/internal/domain/port/core"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/meta-model/internal/domain/port/usecase"
)

// secretLength is the size in bytes of generated shared secrets
const secretLength = 20

// SecretGenerator returns a new shared secret
type SecretGenerator func() (string, error)

// RandomSecret returns an unpadded base32 encoded random secret
func RandomSecret() (string, error) {
	secret := make([]byte, secretLength)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("failed to generate shared secret: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret), nil
}

// Service handles two factor authentication business logic
type Service struct {
	composer     *metamodel.Composer
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	secret       SecretGenerator
}

var _ usecase.TwoFactorUseCase = (*Service)(nil)

// NewService creates a new two factor Service for the registered model type
func NewService(
	composer *metamodel.Composer,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		composer:     composer,
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		secret:       RandomSecret,
	}
}

// WithSecretGenerator returns a copy of the service using the generator for shared secrets
func (s *Service) WithSecretGenerator(generator SecretGenerator) *Service {
	clone := *s
	clone.secret = generator
	return &clone
}

// Create deletes any second factor of the authenticatable record and stores a new,
// disabled one with a fresh shared secret, in one transaction
func (s *Service) Create(ctx context.Context, req usecase.CreateTwoFactorRequest) (tfa *entity.TwoFactorAuthentication, err error) {
	if req.AuthenticatableType == "" || req.AuthenticatableID == "" {
		return nil, fmt.Errorf("%w: authenticatable type and id are required", errs.ErrInvalidRequest)
	}

	tfa = entity.NewTwoFactorAuthentication(s.composer)
	if err := tfa.Fill(req.Attributes); err != nil {
		return nil, err
	}

	secret, err := s.secret()
	if err != nil {
		return nil, err
	}
	if err := tfa.Set("shared_secret", secret); err != nil {
		return nil, err
	}
	if err := tfa.Set("label", req.Label); err != nil {
		return nil, err
	}
	if err := tfa.Authenticatable(req.AuthenticatableType, req.AuthenticatableID); err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back two factor creation", map[string]any{"error": rbErr.Error()})
			}
		}
	}()

	models := s.uow.Models(txCtx)
	replaced, err := models.DeleteWhere(txCtx, tfa.Model, map[string]any{
		"authenticatable_type": req.AuthenticatableType,
		"authenticatable_id":   req.AuthenticatableID,
	})
	if err != nil {
		return nil, err
	}
	if err = models.Create(txCtx, tfa.Model); err != nil {
		return nil, err
	}
	if err = s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Two factor authentication created", map[string]any{
		"id":                   tfa.ID(),
		"authenticatable_type": req.AuthenticatableType,
		"replaced":             replaced,
	})
	return tfa, nil
}

// Find returns the second factor with the given id
func (s *Service) Find(ctx context.Context, id int64) (*entity.TwoFactorAuthentication, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid two factor id %d", errs.ErrInvalidRequest, id)
	}

	tfa := entity.NewTwoFactorAuthentication(s.composer)
	if err := s.uow.Models(ctx).FindByKey(ctx, tfa.Model, id); err != nil {
		return nil, err
	}
	return tfa, nil
}

// Enable confirms the second factor; enabling twice keeps the first time
func (s *Service) Enable(ctx context.Context, id int64) (*entity.TwoFactorAuthentication, error) {
	tfa, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if tfa.IsEnabled() {
		return tfa, nil
	}

	if err := tfa.Enable(s.timeProvider.Now()); err != nil {
		return nil, err
	}
	if err := s.uow.Models(ctx).Update(ctx, tfa.Model); err != nil {
		return nil, err
	}

	s.logger.Info("Two factor authentication enabled", map[string]any{"id": id})
	return tfa, nil
}
