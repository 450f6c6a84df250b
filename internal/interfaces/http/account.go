package http

import (
	"net/http"
	"strconv"

	"fintrack/internal/domain/account"
	"fintrack/internal/shared/middleware"
)

type AccountHandler struct {
	accountRepo account.Repository
}

func NewAccountHandler(accountRepo account.Repository) *AccountHandler {
	return &AccountHandler{accountRepo: accountRepo}
}

type CreateAccountRequest struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	AccountNumber  *string `json:"accountNumber"`
	Icon           string  `json:"icon"`
	InitialBalance float64 `json:"initialBalance"`
}

type UpdateAccountRequest struct {
	Name           *string  `json:"name"`
	Type           *string  `json:"type"`
	AccountNumber  *string  `json:"accountNumber"`
	Icon           *string  `json:"icon"`
	InitialBalance *float64 `json:"initialBalance"`
}

type AccountListResponse struct {
	Success  bool               `json:"success"`
	Accounts []*account.Account `json:"accounts"`
}

type AccountResponse struct {
	Success bool             `json:"success"`
	Account *account.Account `json:"account"`
}

// HandleAccounts handles the account collection (GET list, POST create).
func (h *AccountHandler) HandleAccounts(w http.ResponseWriter, r *http.Request) {
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

func (h *AccountHandler) handleList(w http.ResponseWriter, r *http.Request, userID int64) {
	accounts, err := h.accountRepo.ListByUserID(r.Context(), userID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AccountListResponse{Success: true, Accounts: accounts})
}

func (h *AccountHandler) handleCreate(w http.ResponseWriter, r *http.Request, userID int64) {
	var req CreateAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	params := account.CreateParams{
		Name:           req.Name,
		Type:           req.Type,
		AccountNumber:  req.AccountNumber,
		Icon:           req.Icon,
		InitialBalance: req.InitialBalance,
	}
	if err := params.Validate(); err != nil {
		writeAppError(w, err)
		return
	}

	acc, err := h.accountRepo.Create(r.Context(), userID, params)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AccountResponse{Success: true, Account: acc})
}

// HandleAccountByID handles a single account (PUT update, DELETE remove).
func (h *AccountHandler) HandleAccountByID(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.handleUpdate(w, r, principal.UserID, id)
	case http.MethodDelete:
		h.handleDelete(w, r, principal.UserID, id)
	default:
		methodNotAllowed(w)
	}
}

func (h *AccountHandler) handleUpdate(w http.ResponseWriter, r *http.Request, userID, id int64) {
	var req UpdateAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	params := account.UpdateParams{
		Name:           req.Name,
		Type:           req.Type,
		AccountNumber:  req.AccountNumber,
		Icon:           req.Icon,
		InitialBalance: req.InitialBalance,
	}
	if err := params.Validate(); err != nil {
		writeAppError(w, err)
		return
	}

	acc, err := h.accountRepo.Update(r.Context(), userID, id, params)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AccountResponse{Success: true, Account: acc})
}

func (h *AccountHandler) handleDelete(w http.ResponseWriter, r *http.Request, userID, id int64) {
	if err := h.accountRepo.Delete(r.Context(), userID, id); err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Account deleted",
	})
}
