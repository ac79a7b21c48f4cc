package models

import (
	"time"
)

// AccountMapping links a messaging-channel sender id to an internal
// account id. Created once on first contact, never updated or deleted.
type AccountMapping struct {
	ExternalID string    `firestore:"externalId" json:"externalId"`
	AccountID  string    `firestore:"accountId" json:"accountId"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
}
