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

// ListingDeleter defines the interface that the service must implement.
type ListingDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteRecordHandler returns an HTTP handler that soft-deletes a listing.
// The row stays retrievable with status "deleted".
// @Summary Delete a listing
// @Description Marks the listing as deleted without removing the row.
// @Tags records
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} handlers.DeleteResponse "Deletion confirmed"
// @Failure 404 {object} handlers.ErrorResponse "Record not found"
// @Router /records/{id} [delete]
func NewDeleteRecordHandler(svc ListingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "record not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				writeError(w, http.StatusNotFound, "record not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, DeleteResponse{Status: "deleted"})
	}
}
