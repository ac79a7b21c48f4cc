package store

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mcoutinho/finbot-backend/internal/dto"
	"github.com/mcoutinho/finbot-backend/internal/errs"
	"github.com/mcoutinho/finbot-backend/internal/models"
)

const transactionsCollection = "transactions"

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection() *firestore.CollectionRef {
	return s.client.Collection(transactionsCollection)
}

// Create assigns the id and creation timestamp and persists the record.
func (s *transactionStore) Create(ctx context.Context, tx *models.Transaction) error {
	tx.ID = uuid.NewString()
	tx.CreatedAt = time.Now()

	if _, err := s.collection().Doc(tx.ID).Create(ctx, tx); err != nil {
		return errs.NewDatabaseError("transactions.create", err.Error())
	}
	return nil
}

// ListByAccount returns the account's transactions plus legacy records
// written before account scoping (empty accountId), newest first. An empty
// accountID lists everything. A nil window means no time filter.
func (s *transactionStore) ListByAccount(ctx context.Context, accountID string, window *dto.Window) ([]models.Transaction, error) {
	queries := []firestore.Query{s.scopedQuery(s.collection().Query, window)}
	if accountID != "" {
		queries = []firestore.Query{
			s.scopedQuery(s.collection().Where("accountId", "==", accountID), window),
			s.scopedQuery(s.collection().Where("accountId", "==", ""), window),
		}
	}

	var txs []models.Transaction
	for _, q := range queries {
		it := q.Documents(ctx)
		for {
			doc, err := it.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return nil, errs.NewDatabaseError("transactions.list", err.Error())
			}
			var tx models.Transaction
			if err := doc.DataTo(&tx); err != nil {
				return nil, errs.NewDatabaseError("transactions.list", err.Error())
			}
			txs = append(txs, tx)
		}
	}

	sort.Slice(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
	return txs, nil
}

// DeleteByID deletes the record only when it belongs to accountID or is a
// legacy record. Everything else, including ids that simply don't exist,
// is reported as not found.
func (s *transactionStore) DeleteByID(ctx context.Context, id, accountID string) (*models.Transaction, error) {
	doc := s.collection().Doc(id)

	snap, err := doc.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("transaction not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("transactions.get", err.Error())
	}

	var tx models.Transaction
	if err := snap.DataTo(&tx); err != nil {
		return nil, errs.NewDatabaseError("transactions.get", err.Error())
	}
	if tx.AccountID != "" && tx.AccountID != accountID {
		// foreign record, indistinguishable from a missing one to the caller
		return nil, errs.NewNotFoundError("transaction not found")
	}

	if _, err := doc.Delete(ctx); err != nil {
		return nil, errs.NewDatabaseError("transactions.delete", err.Error())
	}
	return &tx, nil
}

func (s *transactionStore) scopedQuery(q firestore.Query, window *dto.Window) firestore.Query {
	if window == nil {
		return q
	}
	return q.Where("createdAt", ">=", window.Start).Where("createdAt", "<=", window.End)
}
