package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/egormalkin/adboard/internal/logger"
	"github.com/egormalkin/adboard/internal/models"
	"github.com/egormalkin/adboard/internal/services"
)

// ListingCreator defines the interface that the service must implement.
type ListingCreator interface {
	Create(ctx context.Context, owner, title, descr, status string) (*models.ListingDB, error)
}

// CreateRecordRequest represents the JSON body for creating a listing.
// All fields are required; pointer fields let missing keys be told
// apart from empty strings.
// swagger:model CreateRecordRequest
type CreateRecordRequest struct {
	// Title
	// required: true
	// default: shoes
	Title *string `json:"title"`

	// Description, unique across listings
	// required: true
	// default: barely worn
	Descr *string `json:"descr"`

	// Owner
	// required: true
	// default: bob
	Owner *string `json:"owner"`

	// Status
	// required: true
	// default: open
	Status *string `json:"status"`
}

// NewCreateRecordHandler returns an HTTP handler that creates a listing.
// @Summary Create a listing
// @Description Creates a new listing. The description must be unique.
// @Tags records
// @Accept json
// @Produce json
// @Param createRecordRequest body handlers.CreateRecordRequest true "Listing to create"
// @Success 200 {object} handlers.RecordResponse "Created listing"
// @Failure 400 {object} handlers.ErrorResponse "Missing required field / invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Record already exists"
// @Router /records [post]
func NewCreateRecordHandler(svc ListingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateRecordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		required := []struct {
			name string
			val  *string
		}{
			{"title", req.Title},
			{"descr", req.Descr},
			{"owner", req.Owner},
			{"status", req.Status},
		}
		for _, field := range required {
			if field.val == nil {
				writeError(w, http.StatusBadRequest, "missing required field: "+field.name)
				return
			}
		}

		listing, err := svc.Create(r.Context(), *req.Owner, *req.Title, *req.Descr, *req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingAlreadyExists):
				writeError(w, http.StatusConflict, "record already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, newRecordResponse(listing))
	}
}
