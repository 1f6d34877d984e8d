// Package migrations bootstraps the database schema with embedded
// goose migrations. Running them is idempotent, so startup can always
// call Up.
package migrations

import (
	"embed"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Up applies all pending migrations.
func Up(db *sqlx.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db.DB, ".")
}
