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

// ListingPatcher defines the interface that the service must implement.
type ListingPatcher interface {
	Patch(ctx context.Context, id int64, patch models.ListingPatch) (*models.ListingDB, error)
}

// NewUpdateRecordHandler returns an HTTP handler that partially updates a listing.
// Only the fields present in the body are applied; status is not patchable.
// @Summary Update a listing
// @Description Applies the supplied subset of title, descr and owner to the listing.
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param listingPatch body models.ListingPatch true "Fields to update"
// @Success 200 {object} handlers.IDResponse "Updated listing id"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Record not found"
// @Failure 409 {object} handlers.ErrorResponse "Record already exists"
// @Router /records/{id} [patch]
func NewUpdateRecordHandler(svc ListingPatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "record not found")
			return
		}

		var patch models.ListingPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		listing, err := svc.Patch(r.Context(), id, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				writeError(w, http.StatusNotFound, "record not found")
			case errors.Is(err, services.ErrListingAlreadyExists):
				writeError(w, http.StatusConflict, "record already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, IDResponse{ID: listing.ID})
	}
}
