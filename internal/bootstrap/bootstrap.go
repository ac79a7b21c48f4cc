package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"

	"github.com/mcoutinho/finbot-backend/internal/config"
	"github.com/mcoutinho/finbot-backend/pkg/logger"
)

// Bootstrap holds the process-wide resources: one cached Firestore
// connection and one Secret Manager client, opened once at startup and
// reused by every request.
type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
	Secrets   *secretmanager.Client
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}
	bs.Secrets, err = InitSecretManager(applicationCtx)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		bs.Firestore.Close()
	}
	if bs.Secrets != nil {
		bs.Secrets.Close()
	}
}
