package http

import (
	"errors"
	"net/http"

	"fintrack/internal/domain/user"
	"fintrack/internal/shared/auth"
	"fintrack/internal/shared/middleware"
)

// MinPasswordLength is the signup password floor.
const MinPasswordLength = 6

type AuthHandler struct {
	userRepo user.Repository
	jwt      *auth.JWT
}

func NewAuthHandler(userRepo user.Repository, jwt *auth.JWT) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, jwt: jwt}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    user.View `json:"user"`
}

type ProfileResponse struct {
	Success bool      `json:"success"`
	User    user.View `json:"user"`
}

// HandleSignup registers a new user and returns a fresh token.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Please provide name, email, and password")
		return
	}
	if len(req.Password) < MinPasswordLength {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	ctx := r.Context()
	email := user.NormalizeEmail(req.Email)

	// Pre-check for a friendly 409. The unique index still catches races;
	// the repository reports those as the same conflict.
	if _, err := h.userRepo.GetByEmail(ctx, email); err == nil {
		writeAppError(w, user.ErrEmailTaken)
		return
	} else if !errors.Is(err, user.ErrNotFound) {
		writeAppError(w, err)
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeAppError(w, err)
		return
	}

	u, err := h.userRepo.Create(ctx, user.CreateParams{
		Name:         req.Name,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		writeAppError(w, err)
		return
	}

	token, err := h.jwt.Generate(u.ID, u.Email)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Account created successfully",
		Token:   token,
		User:    u.Public(),
	})
}

// HandleLogin authenticates a user by email and password. Unknown email and
// wrong password are deliberately indistinguishable.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	ctx := r.Context()

	u, err := h.userRepo.GetByEmail(ctx, user.NormalizeEmail(req.Email))
	if errors.Is(err, user.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		writeAppError(w, err)
		return
	}

	if err := auth.VerifyPassword(u.PasswordHash, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.jwt.Generate(u.ID, u.Email)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Logged in successfully",
		Token:   token,
		User:    u.Public(),
	})
}

// HandleMe returns the authenticated user's profile.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized, token failed")
		return
	}

	u, err := h.userRepo.GetByID(r.Context(), principal.UserID)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{Success: true, User: u.Profile()})
}
