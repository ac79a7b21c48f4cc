package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/mcoutinho/finbot-backend/internal/errs"
	"github.com/mcoutinho/finbot-backend/internal/models"
)

func emulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestTransactionStoreRoundTripWithEmulator(t *testing.T) {
	client := emulatorClient(t)
	ctx := context.Background()
	store := NewTransactionStore(client)

	tx := &models.Transaction{
		AccountID:   "acc-rt",
		Kind:        models.KindExpense,
		Amount:      50,
		Description: "no mercado",
		Category:    "Alimentação",
	}
	if err := store.Create(ctx, tx); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if tx.ID == "" || tx.CreatedAt.IsZero() {
		t.Fatal("create must assign id and timestamp")
	}

	txs, err := store.ListByAccount(ctx, "acc-rt", nil)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	found := false
	for _, got := range txs {
		if got.ID == tx.ID {
			found = true
			if got.Amount != 50 || got.Category != "Alimentação" || got.Kind != models.KindExpense {
				t.Fatalf("round-trip mismatch: %+v", got)
			}
		}
	}
	if !found {
		t.Fatal("created transaction missing from listing")
	}

	deleted, err := store.DeleteByID(ctx, tx.ID, "acc-rt")
	if err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if deleted.ID != tx.ID {
		t.Fatalf("deleted wrong record: %s", deleted.ID)
	}

	// second delete is not-found, not a failure
	_, err = store.DeleteByID(ctx, tx.ID, "acc-rt")
	var notFound *errs.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError on second delete, got %v", err)
	}
}

func TestTransactionStoreForeignDeleteWithEmulator(t *testing.T) {
	client := emulatorClient(t)
	ctx := context.Background()
	store := NewTransactionStore(client)

	tx := &models.Transaction{
		AccountID:   "acc-owner",
		Kind:        models.KindExpense,
		Amount:      10,
		Description: "x",
		Category:    "Outros",
	}
	if err := store.Create(ctx, tx); err != nil {
		t.Fatalf("create error: %v", err)
	}

	_, err := store.DeleteByID(ctx, tx.ID, "acc-other")
	var notFound *errs.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError for foreign delete, got %v", err)
	}

	// tidy up
	if _, err := store.DeleteByID(ctx, tx.ID, "acc-owner"); err != nil {
		t.Fatalf("owner delete error: %v", err)
	}
}

func TestTransactionStoreLegacyVisibilityWithEmulator(t *testing.T) {
	client := emulatorClient(t)
	ctx := context.Background()
	store := NewTransactionStore(client)

	legacy := &models.Transaction{
		Kind:        models.KindExpense,
		Amount:      42,
		Description: "registro antigo",
		Category:    "Outros",
	}
	if err := store.Create(ctx, legacy); err != nil {
		t.Fatalf("create error: %v", err)
	}

	txs, err := store.ListByAccount(ctx, "acc-any", nil)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	found := false
	for _, got := range txs {
		if got.ID == legacy.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("legacy record must be visible to every account")
	}

	// and deletable by any account, same inclusive rule as reads
	if _, err := store.DeleteByID(ctx, legacy.ID, "acc-any"); err != nil {
		t.Fatalf("legacy delete error: %v", err)
	}
}

func TestMappingStoreUniqueWithEmulator(t *testing.T) {
	client := emulatorClient(t)
	ctx := context.Background()
	store := NewMappingStore(client)

	m := &models.AccountMapping{ExternalID: "5511999991111", AccountID: "acc-1"}
	if err := store.Create(ctx, m); err != nil {
		t.Fatalf("create error: %v", err)
	}

	dup := &models.AccountMapping{ExternalID: "5511999991111", AccountID: "acc-2"}
	err := store.Create(ctx, dup)
	var exists *errs.AlreadyExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}

	got, err := store.Get(ctx, "5511999991111")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.AccountID != "acc-1" {
		t.Fatalf("first mapping must win, got %s", got.AccountID)
	}
}
