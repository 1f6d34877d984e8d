package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/egormalkin/adboard/internal/dbx"
	"github.com/egormalkin/adboard/internal/logger"
	"github.com/egormalkin/adboard/internal/models"
)

type ListingReadRepository struct {
	db *sqlx.DB
}

func NewListingReadRepository(db *sqlx.DB) *ListingReadRepository {
	return &ListingReadRepository{db: db}
}

// GetByID returns the listing with the given id, or nil when no such row exists.
func (r *ListingReadRepository) GetByID(ctx context.Context, id int64) (*models.ListingDB, error) {
	const query = `
		SELECT id, owner, title, descr, status, create_time
		FROM listings
		WHERE id = $1
	`

	var listing models.ListingDB
	err := sqlx.GetContext(ctx, dbx.FromContext(ctx, r.db), &listing, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

type ListingWriteRepository struct {
	db *sqlx.DB
}

func NewListingWriteRepository(db *sqlx.DB) *ListingWriteRepository {
	return &ListingWriteRepository{db: db}
}

// Save inserts a new listing and returns the store-assigned id.
func (r *ListingWriteRepository) Save(ctx context.Context, owner, title, descr, status string) (int64, error) {
	const query = `
		INSERT INTO listings (owner, title, descr, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{owner, title, descr, status}

	var id int64
	err := dbx.FromContext(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update overwrites the mutable columns of an existing listing.
func (r *ListingWriteRepository) Update(ctx context.Context, listing *models.ListingDB) error {
	const query = `
		UPDATE listings
		SET owner = $2, title = $3, descr = $4, status = $5
		WHERE id = $1
	`
	args := []any{listing.ID, listing.Owner, listing.Title, listing.Descr, listing.Status}

	_, err := dbx.FromContext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
