package dto

import (
	"time"

	"github.com/mcoutinho/finbot-backend/internal/models"
)

// Window is an inclusive [Start, End] range over Transaction.CreatedAt.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

type CreateTransactionRequest struct {
	AccountID   string  `json:"accountId"`
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Summary      Summary              `json:"summary"`
}

type DeleteTransactionResponse struct {
	Message     string             `json:"message"`
	Transaction models.Transaction `json:"transaction"`
}

// Summary is the Report Generator output.
type Summary struct {
	TotalIncome      float64            `json:"totalIncome"`
	TotalExpenses    float64            `json:"totalExpenses"`
	Balance          float64            `json:"balance"`
	CategorySummary  map[string]float64 `json:"categorySummary"`
	TransactionCount int                `json:"transactionCount"`
}
