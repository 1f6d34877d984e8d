package repositories

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/egormalkin/adboard/internal/dbx"
	"github.com/egormalkin/adboard/internal/logger"
)

type TokenWriteRepository struct {
	db *sqlx.DB
}

func NewTokenWriteRepository(db *sqlx.DB) *TokenWriteRepository {
	return &TokenWriteRepository{db: db}
}

// Save persists an issued token and returns the store-assigned id.
func (r *TokenWriteRepository) Save(ctx context.Context, token string, userID int64) (int64, error) {
	const query = `
		INSERT INTO tokens (token, user_id)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := dbx.FromContext(ctx, r.db).QueryRowxContext(ctx, query, token, userID).Scan(&id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}

const tokenKeyPrefix = "token:"

// TokenCacheRepository caches issued tokens in Redis so token lookups
// do not hit postgres.
type TokenCacheRepository struct {
	client *redis.Client
	exp    time.Duration // cache entry TTL, normally the token lifetime
}

func NewTokenCacheRepository(client *redis.Client, expiration time.Duration) *TokenCacheRepository {
	return &TokenCacheRepository{client: client, exp: expiration}
}

// Set caches a token with the owning user id.
func (r *TokenCacheRepository) Set(ctx context.Context, token string, userID int64) error {
	key := tokenKeyPrefix + token
	err := r.client.Set(ctx, key, strconv.FormatInt(userID, 10), r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"user_id", userID,
		"error", err,
	)

	return err
}

// Get returns the user id a cached token belongs to. Returns redis.Nil
// wrapped in the error when the token is not cached.
func (r *TokenCacheRepository) Get(ctx context.Context, token string) (int64, error) {
	key := tokenKeyPrefix + token

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Errorw("cache holds malformed user id", "key", key, "value", val, "error", err)
		return 0, err
	}

	return userID, nil
}
