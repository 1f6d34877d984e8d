package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/egormalkin/adboard/internal/logger"
	"github.com/egormalkin/adboard/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, name, password string) (int64, error)
}

// CreateUserRequest represents the JSON body for user registration
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Unique name
	// required: true
	// default: alice
	Name *string `json:"name"`

	// Plaintext password, hashed before storage
	// required: true
	// default: secret123
	Password *string `json:"password"`
}

// NewCreateUserHandler returns an HTTP handler for user registration.
// @Summary Register a user
// @Description Creates a new user account with a unique name. The password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User to create"
// @Success 200 {object} handlers.IDResponse "Created user id"
// @Failure 400 {object} handlers.ErrorResponse "Missing required field / invalid request"
// @Failure 409 {object} handlers.ErrorResponse "User already exists"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

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

		id, err := svc.Create(r.Context(), *req.Name, *req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "user already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, IDResponse{ID: id})
	}
}
