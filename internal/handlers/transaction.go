package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mcoutinho/finbot-backend/internal/dto"
	"github.com/mcoutinho/finbot-backend/internal/errs"
	"github.com/mcoutinho/finbot-backend/internal/models"
	"github.com/mcoutinho/finbot-backend/internal/response"
)

type TransactionService interface {
	Create(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error)
	List(ctx context.Context, accountID string) (dto.ListTransactionsResponse, error)
	Delete(ctx context.Context, id, accountID string) (*models.Transaction, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateTransaction)
	r.Get("/", h.ListTransactions)
	r.Delete("/", h.DeleteTransaction)
	return r
}

func (h *transactionHandlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	tx, err := h.TransactionSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")

	resp, err := h.TransactionSvc.List(r.Context(), accountID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *transactionHandlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	accountID := r.URL.Query().Get("accountId")
	id := r.URL.Query().Get("id")
	if accountID == "" || id == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("accountId and id are required"))
		return
	}

	tx, err := h.TransactionSvc.Delete(r.Context(), id, accountID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.DeleteTransactionResponse{
		Message:     "Transação excluída com sucesso.",
		Transaction: *tx,
	})
}
