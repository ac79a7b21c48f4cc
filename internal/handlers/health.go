package handlers

import (
	"net/http"
	"time"

	"github.com/mcoutinho/finbot-backend/internal/response"
)

type healthHandlers struct {
	ResponseHandler response.ResponseHandler
}

func NewHealthHandlers(deps *Deps) *healthHandlers {
	return &healthHandlers{ResponseHandler: deps.ResponseHandler}
}

func (h *healthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string]any{
		"status":    "online",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
