package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mcoutinho/finbot-backend/internal/dto"
	"github.com/mcoutinho/finbot-backend/pkg/logger"
)

type ChatService interface {
	HandleMessage(ctx context.Context, externalID, text string) (string, error)
}

type MessageSender interface {
	Send(ctx context.Context, phoneNumberID, to, body string) error
}

const sendTimeout = 15 * time.Second

type webhookHandlers struct {
	Log         *slog.Logger
	ChatSvc     ChatService
	Sender      MessageSender
	VerifyToken string
}

func NewWebhookHandlers(deps *Deps) *webhookHandlers {
	return &webhookHandlers{
		Log:         deps.Log,
		ChatSvc:     deps.ChatSvc,
		Sender:      deps.Sender,
		VerifyToken: deps.VerifyToken,
	}
}

func (h *webhookHandlers) WebhookRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Verify)
	r.Post("/", h.Receive)
	return r
}

// Verify answers the provider's subscription handshake: echo the challenge
// verbatim when the pre-shared token matches, reject otherwise.
func (h *webhookHandlers) Verify(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mode := query.Get("hub.mode")
	token := query.Get("hub.verify_token")
	challenge := query.Get("hub.challenge")

	if mode == "" || token == "" {
		http.Error(w, "invalid verification request", http.StatusBadRequest)
		return
	}
	if mode != "subscribe" || token != h.VerifyToken {
		logger.FromContext(r.Context()).Warn("webhook verification failed", "mode", mode)
		http.Error(w, "verification failed", http.StatusForbidden)
		return
	}

	logger.FromContext(r.Context()).Info("webhook verified")
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(challenge))
}

// Receive processes an inbound delivery. The provider only needs a 200;
// each message unit is handled in isolation so one malformed or failing
// message never aborts the rest of the batch.
func (h *webhookHandlers) Receive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var payload dto.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Warn("unparseable webhook payload", "error", err)
		w.WriteHeader(http.StatusOK)
		return
	}
	if payload.Object != "whatsapp_business_account" {
		w.WriteHeader(http.StatusOK)
		return
	}

	for _, msg := range payload.Messages() {
		h.process(r.Context(), msg)
	}
	w.WriteHeader(http.StatusOK)
}

func (h *webhookHandlers) process(ctx context.Context, msg dto.InboundMessage) {
	log := logger.FromContext(ctx)
	if msg.SenderExternalID == "" || msg.Text == "" {
		log.Warn("skipping message without sender or text")
		return
	}

	reply, err := h.ChatSvc.HandleMessage(ctx, msg.SenderExternalID, msg.Text)
	if err != nil {
		// the transaction write may or may not have happened; the reply is
		// dropped either way
		log.Error("chat message processing failed", "error", err, "external_id", msg.SenderExternalID)
		return
	}
	if reply == "" {
		return
	}

	// Fire and forget: delivery failures are logged, never retried, and
	// never reach the inbound handler's error path.
	go func() {
		sendCtx, cancel := context.WithTimeout(logger.ToContext(context.Background(), log), sendTimeout)
		defer cancel()
		if err := h.Sender.Send(sendCtx, msg.ReplyTarget, msg.SenderExternalID, reply); err != nil {
			log.Error("failed to send reply", "error", err, "external_id", msg.SenderExternalID)
		}
	}()
}
