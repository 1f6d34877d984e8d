package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/egormalkin/adboard/internal/logger"
	"github.com/egormalkin/adboard/internal/models"
)

// Error variables
var (
	ErrListingNotFound      = errors.New("record not found")
	ErrListingAlreadyExists = errors.New("record already exists")
)

// ListingReader defines read-only operations for listings.
type ListingReader interface {
	GetByID(ctx context.Context, id int64) (*models.ListingDB, error)
}

// ListingWriter defines write operations for listings.
type ListingWriter interface {
	Save(ctx context.Context, owner, title, descr, status string) (int64, error)
	Update(ctx context.Context, listing *models.ListingDB) error
}

// ListingService handles listing CRUD with field-mask patching and
// status-based soft delete.
type ListingService struct {
	reader      ListingReader
	writer      ListingWriter
	kafkaWriter KafkaWriter
}

// NewListingService creates a new ListingService instance.
func NewListingService(reader ListingReader, writer ListingWriter, kafkaWriter KafkaWriter) *ListingService {
	return &ListingService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Create inserts a new listing and returns it with the store-assigned
// id and creation timestamp.
func (svc *ListingService) Create(ctx context.Context, owner, title, descr, status string) (*models.ListingDB, error) {
	id, err := svc.writer.Save(ctx, owner, title, descr, status)
	if err != nil {
		if isUniqueViolation(err) {
			logger.Log.Errorw("listing already exists", "descr", descr)
			return nil, ErrListingAlreadyExists
		}
		logger.Log.Errorw("failed to save listing", "err", err)
		return nil, err
	}

	listing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read back created listing", "id", id, "err", err)
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("created listing %d not visible in transaction", id)
	}

	publishEvent(ctx, svc.kafkaWriter, "listing_created", id)

	return listing, nil
}

// Get returns a listing by id.
func (svc *ListingService) Get(ctx context.Context, id int64) (*models.ListingDB, error) {
	listing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get listing", "id", id, "err", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

// Patch applies the non-nil fields of patch to the stored listing and
// returns the updated row. Fields absent from the patch keep their
// previous values.
func (svc *ListingService) Patch(ctx context.Context, id int64, patch models.ListingPatch) (*models.ListingDB, error) {
	listing, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		listing.Title = *patch.Title
	}
	if patch.Descr != nil {
		listing.Descr = *patch.Descr
	}
	if patch.Owner != nil {
		listing.Owner = *patch.Owner
	}

	if err := svc.writer.Update(ctx, listing); err != nil {
		if isUniqueViolation(err) {
			logger.Log.Errorw("listing already exists", "id", id)
			return nil, ErrListingAlreadyExists
		}
		logger.Log.Errorw("failed to update listing", "id", id, "err", err)
		return nil, err
	}

	return listing, nil
}

// Delete soft-deletes a listing: the row stays in place with its
// status set to "deleted".
func (svc *ListingService) Delete(ctx context.Context, id int64) error {
	listing, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}

	listing.Status = models.StatusDeleted
	if err := svc.writer.Update(ctx, listing); err != nil {
		logger.Log.Errorw("failed to soft-delete listing", "id", id, "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, "listing_deleted", id)

	return nil
}
