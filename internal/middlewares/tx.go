package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/egormalkin/adboard/internal/dbx"
	"github.com/egormalkin/adboard/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a per-request database
// transaction: one transaction is opened before the handler runs and
// is attached to the request context, so every repository call made
// while handling the request executes on it. The transaction is
// committed when the handler responds with a status below 400 and
// rolled back otherwise, including on panic. A non-zero timeout bounds
// the whole request; an exceeded deadline fails the pending statement
// and surfaces as a rollback.
func TxMiddleware(db *sqlx.DB, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			r = r.WithContext(dbx.WithTx(ctx, tx))
			next.ServeHTTP(rw, r)

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "status", rw.statusCode, "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				if !rw.wroteHeader {
					w.WriteHeader(http.StatusInternalServerError)
				}
			}
		})
	}
}
