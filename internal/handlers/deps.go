package handlers

import (
	"log/slog"

	"github.com/mcoutinho/finbot-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
	ChatSvc         ChatService
	Sender          MessageSender
	VerifyToken     string
}
