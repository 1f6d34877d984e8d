package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/egormalkin/adboard/internal/dbx"
	"github.com/egormalkin/adboard/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestListingReadRepository_GetByID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewListingReadRepository(sqlxDB)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		createTime := time.Unix(1700000000, 0)
		mock.ExpectQuery("FROM listings").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner", "title", "descr", "status", "create_time"}).
				AddRow(int64(1), "bob", "shoes", "d1", "open", createTime))

		listing, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, listing)
		assert.Equal(t, int64(1), listing.ID)
		assert.Equal(t, "d1", listing.Descr)
		assert.Equal(t, createTime, listing.CreateTime)
	})

	t.Run("absent row returns nil without error", func(t *testing.T) {
		mock.ExpectQuery("FROM listings").
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		listing, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, listing)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingWriteRepository_Save(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewListingWriteRepository(sqlxDB)
	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO listings").
		WithArgs("bob", "shoes", "d1", "open").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	id, err := repo.Save(ctx, "bob", "shoes", "d1", "open")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingWriteRepository_Update(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewListingWriteRepository(sqlxDB)
	ctx := context.Background()

	mock.ExpectExec("UPDATE listings").
		WithArgs(int64(1), "bob", "shoes", "d2", "open").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(ctx, &models.ListingDB{
		ID:     1,
		Owner:  "bob",
		Title:  "shoes",
		Descr:  "d2",
		Status: "open",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepositories_UseTransactionFromContext(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewListingReadRepository(sqlxDB)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM listings").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner", "title", "descr", "status", "create_time"}).
			AddRow(int64(1), "bob", "shoes", "d1", "open", time.Unix(1700000000, 0)))
	mock.ExpectCommit()

	tx, err := sqlxDB.Beginx()
	assert.NoError(t, err)

	ctx := dbx.WithTx(context.Background(), tx)
	listing, err := repo.GetByID(ctx, 1)
	assert.NoError(t, err)
	assert.NotNil(t, listing)

	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
