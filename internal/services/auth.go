package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/egormalkin/adboard/internal/logger"
	"github.com/egormalkin/adboard/internal/models"
)

// ErrInvalidCredentials is returned for an unknown name or a wrong
// password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid name or password")

// UserByNameReader looks a user up by unique name.
type UserByNameReader interface {
	GetByName(ctx context.Context, name string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// TokenWriter persists issued tokens.
type TokenWriter interface {
	Save(ctx context.Context, token string, userID int64) (int64, error)
}

// TokenCacher caches issued tokens for fast lookup.
type TokenCacher interface {
	Set(ctx context.Context, token string, userID int64) error
}

// AuthService verifies credentials and issues tokens.
type AuthService struct {
	reader      UserByNameReader
	tokens      TokenWriter
	cache       TokenCacher
	jwt         JWTGenerator
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserByNameReader, tokens TokenWriter, cache TokenCacher, jwt JWTGenerator, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader:      reader,
		tokens:      tokens,
		cache:       cache,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
	}
}

// Login verifies the credentials, issues a JWT, persists it in the
// tokens table and caches it. Cache failures are logged only.
func (svc *AuthService) Login(ctx context.Context, name, password string) (string, error) {
	user, err := svc.reader.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to get user", "name", name, "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "name", name)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "name", name)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	if _, err := svc.tokens.Save(ctx, token, user.ID); err != nil {
		logger.Log.Errorw("failed to persist token", "user_id", user.ID, "err", err)
		return "", err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, token, user.ID); err != nil {
			logger.Log.Errorw("failed to cache token", "user_id", user.ID, "err", err)
		}
	}

	publishEvent(ctx, svc.kafkaWriter, "user_login", user.ID)

	return token, nil
}
