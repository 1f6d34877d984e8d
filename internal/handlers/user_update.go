package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/egormalkin/adboard/internal/logger"
	"github.com/egormalkin/adboard/internal/models"
	"github.com/egormalkin/adboard/internal/services"
)

// UserPatcher defines the interface that the service must implement.
type UserPatcher interface {
	Patch(ctx context.Context, id int64, patch models.UserPatch) (int64, error)
}

// NewUpdateUserHandler returns an HTTP handler that partially updates a user.
// A supplied password is re-hashed before assignment.
// @Summary Update a user
// @Description Applies the supplied subset of name and password to the user.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param userPatch body models.UserPatch true "Fields to update"
// @Success 200 {object} handlers.IDResponse "Updated user id"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "User already exists"
// @Router /users/{id} [patch]
func NewUpdateUserHandler(svc UserPatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}

		var patch models.UserPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		updatedID, err := svc.Patch(r.Context(), id, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "user not found")
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "user already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, IDResponse{ID: updatedID})
	}
}
