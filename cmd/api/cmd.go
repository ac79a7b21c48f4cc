package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/mcoutinho/finbot-backend/internal/bootstrap"
	whatsappclient "github.com/mcoutinho/finbot-backend/internal/client/whatsapp"
	"github.com/mcoutinho/finbot-backend/internal/config"
	"github.com/mcoutinho/finbot-backend/internal/handlers"
	"github.com/mcoutinho/finbot-backend/internal/response"
	"github.com/mcoutinho/finbot-backend/internal/router"
	"github.com/mcoutinho/finbot-backend/internal/services"
	"github.com/mcoutinho/finbot-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// channel secrets: env wins, Secret Manager is the deployment default
	ctx := context.Background()
	secrets := store.NewChannelSecretsStore(bs.Secrets, cfg.ProjectID)
	if cfg.VerifyToken == "" {
		cfg.VerifyToken, err = secrets.GetVerifyToken(ctx)
		exitOnError("verify token load failed", err, bs.Log)
	}
	if cfg.WhatsAppToken == "" {
		cfg.WhatsAppToken, err = secrets.GetAPIToken(ctx)
		exitOnError("api token load failed", err, bs.Log)
	}

	// stores
	tstore := store.NewTransactionStore(bs.Firestore)
	mstore := store.NewMappingStore(bs.Firestore)

	// services
	iserv := services.NewIdentityService(mstore)
	tserv := services.NewTransactionService(tstore)
	cserv := services.NewChatService(iserv, tstore, cfg.DashboardURL)

	// outbound transport
	wa := whatsappclient.NewAdapter(cfg.WhatsAppToken)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.TransactionSvc = tserv
	deps.ChatSvc = cserv
	deps.Sender = wa
	deps.VerifyToken = cfg.VerifyToken

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
