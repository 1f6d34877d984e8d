package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestTokenWriteRepository_Save(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewTokenWriteRepository(sqlxDB)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO tokens").
			WithArgs("jwt-token", int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

		id, err := repo.Save(ctx, "jwt-token", 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("insert failure", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO tokens").
			WithArgs("jwt-token", int64(7)).
			WillReturnError(errors.New("insert failed"))

		id, err := repo.Save(ctx, "jwt-token", 7)
		assert.Error(t, err)
		assert.Equal(t, int64(0), id)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
