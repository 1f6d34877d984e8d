package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/egormalkin/adboard/internal/logger"
	"github.com/egormalkin/adboard/internal/services"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteUserHandler returns an HTTP handler that removes a user.
// Unlike listings, user deletion removes the row; a subsequent GET
// returns 404.
// @Summary Delete a user
// @Description Removes the user account and its issued tokens.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} handlers.DeleteResponse "Deletion confirmed"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "user not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, DeleteResponse{Status: "deleted"})
	}
}
