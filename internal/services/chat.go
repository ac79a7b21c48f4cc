package services

import (
	"context"
	"errors"
	"time"

	"github.com/mcoutinho/finbot-backend/internal/dto"
	"github.com/mcoutinho/finbot-backend/internal/errs"
	"github.com/mcoutinho/finbot-backend/internal/models"
	"github.com/mcoutinho/finbot-backend/pkg/logger"
)

type chatTransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	ListByAccount(ctx context.Context, accountID string, window *dto.Window) ([]models.Transaction, error)
	DeleteByID(ctx context.Context, id, accountID string) (*models.Transaction, error)
}

type accountResolver interface {
	ResolveAccount(ctx context.Context, externalID string) (string, error)
}

type chatService struct {
	Identity     accountResolver
	Txs          chatTransactionStore
	DashboardURL string
	Now          func() time.Time
}

func NewChatService(identity accountResolver, txs chatTransactionStore, dashboardURL string) *chatService {
	return &chatService{
		Identity:     identity,
		Txs:          txs,
		DashboardURL: dashboardURL,
		Now:          time.Now,
	}
}

// HandleMessage resolves the sender's account, interprets the message and
// executes the resulting action, returning the reply text. Only store
// failures error out; anything unparseable gets the unrecognized reply.
func (s *chatService) HandleMessage(ctx context.Context, externalID, text string) (string, error) {
	accountID, err := s.Identity.ResolveAccount(ctx, externalID)
	if err != nil {
		return "", err
	}
	log, ctx := logger.With(ctx, "account_id", accountID)

	switch action := Interpret(text).(type) {
	case ShowHelp:
		return HelpReply(), nil

	case ShowDashboardLink:
		return DashboardReply(s.DashboardURL, accountID), nil

	case ShowReport:
		now := s.Now()
		window := WindowFor(now, action.Period)
		txs, err := s.Txs.ListByAccount(ctx, accountID, &window)
		if err != nil {
			return "", err
		}
		return ReportReply(action.Period, now, Summarize(txs)), nil

	case DeleteTransaction:
		tx, err := s.Txs.DeleteByID(ctx, action.ID, accountID)
		var notFound *errs.NotFoundError
		if errors.As(err, &notFound) {
			return NotFoundReply(), nil
		}
		if err != nil {
			return "", err
		}
		log.Info("transaction deleted", "transaction_id", tx.ID)
		return DeletedReply(tx), nil

	case RecordTransaction:
		tx := &models.Transaction{
			AccountID:   accountID,
			Kind:        action.Kind,
			Amount:      action.Amount,
			Description: action.Description,
			Category:    Classify(action.Description),
		}
		if err := s.Txs.Create(ctx, tx); err != nil {
			return "", err
		}
		log.Info("transaction recorded", "transaction_id", tx.ID, "kind", tx.Kind, "category", tx.Category)
		return SavedReply(tx), nil

	default:
		return UnrecognizedReply(), nil
	}
}
