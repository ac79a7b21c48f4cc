package models

import (
	"time"
)

type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction is immutable after creation; the only lifecycle operation
// besides create is delete. Category is derived from Description once,
// when the record is written.
type Transaction struct {
	ID          string          `firestore:"id" json:"id"`
	AccountID   string          `firestore:"accountId" json:"accountId,omitempty"` // empty = legacy record, visible to every account
	Kind        TransactionKind `firestore:"kind" json:"kind"`
	Amount      float64         `firestore:"amount" json:"amount"`
	Description string          `firestore:"description" json:"description"`
	Category    string          `firestore:"category" json:"category"`
	CreatedAt   time.Time       `firestore:"createdAt" json:"createdAt"`
}

func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}
