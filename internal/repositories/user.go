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

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil when no such row exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, name, password, registration_time
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, dbx.FromContext(ctx, r.db), &user, query, id)

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

	return &user, nil
}

// GetByName returns the user with the given unique name, or nil when no such row exists.
func (r *UserReadRepository) GetByName(ctx context.Context, name string) (*models.UserDB, error) {
	const query = `
		SELECT id, name, password, registration_time
		FROM users
		WHERE name = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, dbx.FromContext(ctx, r.db), &user, query, name)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user with an already-hashed password and returns
// the store-assigned id.
func (r *UserWriteRepository) Save(ctx context.Context, name, password string) (int64, error) {
	const query = `
		INSERT INTO users (name, password)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := dbx.FromContext(ctx, r.db).QueryRowxContext(ctx, query, name, password).Scan(&id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}

// Update overwrites the mutable columns of an existing user.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	const query = `
		UPDATE users
		SET name = $2, password = $3
		WHERE id = $1
	`

	_, err := dbx.FromContext(ctx, r.db).ExecContext(ctx, query, user.ID, user.Name, user.Password)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.ID, user.Name},
		"error", err,
	)

	return err
}

// Delete removes the user row. Issued tokens are removed by the
// ON DELETE CASCADE constraint.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM users
		WHERE id = $1
	`

	_, err := dbx.FromContext(ctx, r.db).ExecContext(ctx, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	return err
}
