package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mcoutinho/finbot-backend/internal/errs"
	"github.com/mcoutinho/finbot-backend/internal/models"
	"github.com/mcoutinho/finbot-backend/pkg/logger"
)

type mappingISStore interface {
	Get(ctx context.Context, externalID string) (*models.AccountMapping, error)
	Create(ctx context.Context, m *models.AccountMapping) error
}

type identityService struct {
	Store mappingISStore
}

func NewIdentityService(store mappingISStore) *identityService {
	return &identityService{
		Store: store,
	}
}

// ResolveAccount returns the stable account id for a sender, creating the
// mapping on first contact. The store's uniqueness constraint guarantees
// at most one mapping per external id: a concurrent loser re-reads the
// winner's mapping instead of minting a second account.
func (s *identityService) ResolveAccount(ctx context.Context, externalID string) (string, error) {
	mapping, err := s.Store.Get(ctx, externalID)
	if err == nil {
		return mapping.AccountID, nil
	}

	var notFound *errs.NotFoundError
	if !errors.As(err, &notFound) {
		return "", err
	}

	log := logger.FromContext(ctx)
	mapping = &models.AccountMapping{
		ExternalID: externalID,
		AccountID:  uuid.NewString(),
		CreatedAt:  time.Now(),
	}

	err = s.Store.Create(ctx, mapping)
	if err == nil {
		log.Info("account mapping created", "external_id", externalID, "account_id", mapping.AccountID)
		return mapping.AccountID, nil
	}

	var exists *errs.AlreadyExistsError
	if errors.As(err, &exists) {
		// lost the first-contact race
		existing, err := s.Store.Get(ctx, externalID)
		if err != nil {
			return "", err
		}
		return existing.AccountID, nil
	}
	return "", err
}
