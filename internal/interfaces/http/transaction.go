package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/domain/transaction"
	"fintrack/internal/shared/middleware"
)

type TransactionHandler struct {
	transactionRepo transaction.Repository
}

func NewTransactionHandler(transactionRepo transaction.Repository) *TransactionHandler {
	return &TransactionHandler{transactionRepo: transactionRepo}
}

type CreateTransactionRequest struct {
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	AccountID   *int64    `json:"accountId"`
}

// UpdateTransactionRequest distinguishes an absent accountId from an explicit
// null. Absent keeps the current account; null detaches the transaction.
type UpdateTransactionRequest struct {
	Type        *string         `json:"type"`
	Amount      *float64        `json:"amount"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	Date        *time.Time      `json:"date"`
	AccountID   json.RawMessage `json:"accountId"`
}

type TransactionListResponse struct {
	Success      bool                       `json:"success"`
	Count        int                        `json:"count"`
	Transactions []*transaction.Transaction `json:"transactions"`
}

type TransactionResponse struct {
	Success     bool                     `json:"success"`
	Message     string                   `json:"message,omitempty"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type SummaryResponse struct {
	Success bool                 `json:"success"`
	Summary *transaction.Summary `json:"summary"`
}

// HandleTransactions handles the transaction collection (GET list, POST create).
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r, principal.UserID)
	case http.MethodPost:
		h.handleCreate(w, r, principal.UserID)
	default:
		methodNotAllowed(w)
	}
}

func (h *TransactionHandler) handleList(w http.ResponseWriter, r *http.Request, userID int64) {
	transactions, err := h.transactionRepo.ListByUserID(r.Context(), userID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TransactionListResponse{
		Success:      true,
		Count:        len(transactions),
		Transactions: transactions,
	})
}

func (h *TransactionHandler) handleCreate(w http.ResponseWriter, r *http.Request, userID int64) {
	var req CreateTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	params := transaction.CreateParams{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
		AccountID:   req.AccountID,
	}
	if err := params.Validate(); err != nil {
		writeAppError(w, err)
		return
	}

	t, err := h.transactionRepo.Create(r.Context(), userID, params)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, TransactionResponse{
		Success:     true,
		Message:     "Transaction created successfully",
		Transaction: t,
	})
}

// HandleSummary returns the income/expense/balance aggregate.
func (h *TransactionHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	summary, err := h.transactionRepo.Summarize(r.Context(), principal.UserID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{Success: true, Summary: summary})
}

// HandleTransactionByID handles a single transaction (GET, PUT, DELETE).
func (h *TransactionHandler) HandleTransactionByID(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, principal.UserID, id)
	case http.MethodPut:
		h.handleUpdate(w, r, principal.UserID, id)
	case http.MethodDelete:
		h.handleDelete(w, r, principal.UserID, id)
	default:
		methodNotAllowed(w)
	}
}

func (h *TransactionHandler) handleGet(w http.ResponseWriter, r *http.Request, userID, id int64) {
	t, err := h.transactionRepo.GetByID(r.Context(), userID, id)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TransactionResponse{Success: true, Transaction: t})
}

func (h *TransactionHandler) handleUpdate(w http.ResponseWriter, r *http.Request, userID, id int64) {
	var req UpdateTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	params := transaction.UpdateParams{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
	}
	if len(req.AccountID) > 0 {
		if string(req.AccountID) == "null" {
			params.Detach = true
		} else {
			var accountID int64
			if err := json.Unmarshal(req.AccountID, &accountID); err != nil {
				writeError(w, http.StatusBadRequest, "Invalid account ID")
				return
			}
			params.AccountID = &accountID
		}
	}
	if err := params.Validate(); err != nil {
		writeAppError(w, err)
		return
	}

	t, err := h.transactionRepo.Update(r.Context(), userID, id, params)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TransactionResponse{
		Success:     true,
		Message:     "Transaction updated successfully",
		Transaction: t,
	})
}

func (h *TransactionHandler) handleDelete(w http.ResponseWriter, r *http.Request, userID, id int64) {
	if err := h.transactionRepo.Delete(r.Context(), userID, id); err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Transaction deleted successfully",
	})
}
