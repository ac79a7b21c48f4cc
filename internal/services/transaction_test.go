package services

import (
	"errors"
	"testing"

	"github.com/mcoutinho/finbot-backend/internal/dto"
	"github.com/mcoutinho/finbot-backend/internal/errs"
	"github.com/mcoutinho/finbot-backend/internal/models"
	"github.com/mcoutinho/finbot-backend/pkg/helpers"
)

func TestTransactionCreateAssignsCategory(t *testing.T) {
	store := newFakeTxStore()
	svc := NewTransactionService(store)

	tx, err := svc.Create(helpers.TestCtx(), dto.CreateTransactionRequest{
		AccountID:   "acc-1",
		Kind:        "expense",
		Amount:      35.9,
		Description: "remédio na farmácia",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if tx.Category != "Saúde" {
		t.Errorf("category = %q, want Saúde", tx.Category)
	}
	if tx.ID == "" {
		t.Error("expected an assigned id")
	}
}

func TestTransactionCreateValidation(t *testing.T) {
	store := newFakeTxStore()
	svc := NewTransactionService(store)
	ctx := helpers.TestCtx()

	cases := []dto.CreateTransactionRequest{
		{Kind: "transfer", Amount: 10, Description: "x"}, // bad kind
		{Kind: "expense", Amount: 0, Description: "x"},   // zero amount
		{Kind: "expense", Amount: -5, Description: "x"},  // negative amount
		{Kind: "income", Amount: 10},                     // missing description
		{Amount: 10, Description: "x"},                   // missing kind
	}

	for _, req := range cases {
		_, err := svc.Create(ctx, req)
		var validation *errs.ValidationError
		if !errors.As(err, &validation) {
			t.Errorf("Create(%+v): expected ValidationError, got %v", req, err)
		}
	}
	if len(store.txs) != 0 {
		t.Error("invalid requests must not be persisted")
	}
}

func TestTransactionListIncludesSummary(t *testing.T) {
	store := newFakeTxStore()
	store.txs["t1"] = &models.Transaction{ID: "t1", AccountID: "acc-1", Kind: models.KindIncome, Amount: 100}
	store.txs["t2"] = &models.Transaction{ID: "t2", AccountID: "acc-1", Kind: models.KindExpense, Amount: 40, Category: "Contas"}
	svc := NewTransactionService(store)

	resp, err := svc.List(helpers.TestCtx(), "acc-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(resp.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(resp.Transactions))
	}
	if resp.Summary.Balance != 60 {
		t.Errorf("balance = %v, want 60", resp.Summary.Balance)
	}
	if resp.Summary.CategorySummary["Contas"] != 40 {
		t.Errorf("Contas total = %v, want 40", resp.Summary.CategorySummary["Contas"])
	}
}

func TestTransactionDeletePropagatesNotFound(t *testing.T) {
	store := newFakeTxStore()
	svc := NewTransactionService(store)

	_, err := svc.Delete(helpers.TestCtx(), "missing", "acc-1")
	var notFound *errs.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
