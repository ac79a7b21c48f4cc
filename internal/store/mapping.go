package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mcoutinho/finbot-backend/internal/errs"
	"github.com/mcoutinho/finbot-backend/internal/models"
)

const mappingsCollection = "account_mappings"

// mappingStore keys documents by external id, so the collection itself is
// the uniqueness constraint: Create on an existing document fails with
// AlreadyExists no matter how many instances race on first contact.
type mappingStore struct {
	client     *firestore.Client
	collection *firestore.CollectionRef
}

func NewMappingStore(client *firestore.Client) *mappingStore {
	return &mappingStore{
		client:     client,
		collection: client.Collection(mappingsCollection),
	}
}

func (s *mappingStore) Get(ctx context.Context, externalID string) (*models.AccountMapping, error) {
	snap, err := s.collection.Doc(externalID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("mapping not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("mappings.get", err.Error())
	}

	var m models.AccountMapping
	if err := snap.DataTo(&m); err != nil {
		return nil, errs.NewDatabaseError("mappings.get", err.Error())
	}
	return &m, nil
}

func (s *mappingStore) Create(ctx context.Context, m *models.AccountMapping) error {
	_, err := s.collection.Doc(m.ExternalID).Create(ctx, m)
	if status.Code(err) == codes.AlreadyExists {
		return errs.NewAlreadyExistsError("mapping already exists")
	}
	if err != nil {
		return errs.NewDatabaseError("mappings.create", err.Error())
	}
	return nil
}
