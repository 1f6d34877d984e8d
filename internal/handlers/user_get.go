package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/egormalkin/adboard/internal/logger"
	"github.com/egormalkin/adboard/internal/models"
	"github.com/egormalkin/adboard/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id int64) (*models.UserDB, error)
}

// NewGetUserHandler returns an HTTP handler that fetches one user.
// The response never contains the password digest.
// @Summary Get a user
// @Description Returns the public view of a user account.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} handlers.UserResponse "User"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "user not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newUserResponse(user))
	}
}
