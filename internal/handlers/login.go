package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/egormalkin/adboard/internal/logger"
	"github.com/egormalkin/adboard/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, name, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Name
	// required: true
	// default: alice
	Name *string `json:"name"`

	// Password
	// required: true
	// default: secret123
	Password *string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Verifies credentials and issues a JWT token. The token is persisted and cached.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Missing required field / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Invalid name or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.Name == nil {
			writeError(w, http.StatusBadRequest, "missing required field: name")
			return
		}
		if req.Password == nil {
			writeError(w, http.StatusBadRequest, "missing required field: password")
			return
		}

		token, err := svc.Login(r.Context(), *req.Name, *req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "invalid name or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}
