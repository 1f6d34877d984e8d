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

// ListingGetter defines the interface that the service must implement.
type ListingGetter interface {
	Get(ctx context.Context, id int64) (*models.ListingDB, error)
}

// NewGetRecordHandler returns an HTTP handler that fetches one listing.
// @Summary Get a listing
// @Description Returns the full view of a listing, including soft-deleted ones.
// @Tags records
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} handlers.RecordResponse "Listing"
// @Failure 404 {object} handlers.ErrorResponse "Record not found"
// @Router /records/{id} [get]
func NewGetRecordHandler(svc ListingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "record not found")
			return
		}

		listing, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				writeError(w, http.StatusNotFound, "record not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newRecordResponse(listing))
	}
}
