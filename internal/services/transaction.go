package services

import (
	"context"

	"github.com/mcoutinho/finbot-backend/internal/dto"
	"github.com/mcoutinho/finbot-backend/internal/errs"
	"github.com/mcoutinho/finbot-backend/internal/models"
	"github.com/mcoutinho/finbot-backend/pkg/logger"
)

type transactionTSStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	ListByAccount(ctx context.Context, accountID string, window *dto.Window) ([]models.Transaction, error)
	DeleteByID(ctx context.Context, id, accountID string) (*models.Transaction, error)
}

// transactionService backs the dashboard's HTTP CRUD adapter. It shares
// the store and the category classifier with the chat flow but bypasses
// the interpreter entirely.
type transactionService struct {
	Store transactionTSStore
}

func NewTransactionService(store transactionTSStore) *transactionService {
	return &transactionService{
		Store: store,
	}
}

func (s *transactionService) Create(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	kind := models.TransactionKind(req.Kind)
	if !kind.Valid() {
		return nil, errs.NewValidationError("kind must be income or expense")
	}
	if req.Amount <= 0 {
		return nil, errs.NewValidationError("amount must be positive")
	}
	if req.Description == "" {
		return nil, errs.NewValidationError("description is required")
	}

	tx := &models.Transaction{
		AccountID:   req.AccountID,
		Kind:        kind,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    Classify(req.Description),
	}
	if err := s.Store.Create(ctx, tx); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("transaction created", "transaction_id", tx.ID, "kind", tx.Kind, "category", tx.Category)
	return tx, nil
}

// List returns the account's transactions (legacy records included) along
// with the full-history summary. An empty accountID keeps the old
// unscoped behavior and returns every record.
func (s *transactionService) List(ctx context.Context, accountID string) (dto.ListTransactionsResponse, error) {
	txs, err := s.Store.ListByAccount(ctx, accountID, nil)
	if err != nil {
		return dto.ListTransactionsResponse{}, err
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return dto.ListTransactionsResponse{
		Transactions: txs,
		Summary:      Summarize(txs),
	}, nil
}

func (s *transactionService) Delete(ctx context.Context, id, accountID string) (*models.Transaction, error) {
	tx, err := s.Store.DeleteByID(ctx, id, accountID)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("transaction deleted", "transaction_id", tx.ID)
	return tx, nil
}
