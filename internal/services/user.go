package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/egormalkin/adboard/internal/logger"
	"github.com/egormalkin/adboard/internal/models"
)

// Error variables
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, password string) (int64, error)
	Update(ctx context.Context, user *models.UserDB) error
	Delete(ctx context.Context, id int64) error
}

// UserService handles user CRUD. Plaintext passwords are hashed with
// bcrypt before they reach the write repository.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Create registers a new user and returns the store-assigned id.
func (svc *UserService) Create(ctx context.Context, name, password string) (int64, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, name, string(hashedPassword))
	if err != nil {
		if isUniqueViolation(err) {
			logger.Log.Errorw("user already exists", "name", name)
			return 0, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	publishEvent(ctx, svc.kafkaWriter, "user_registered", id)

	return id, nil
}

// Get returns a user by id.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Patch applies the non-nil fields of patch to the stored user. A new
// password is re-hashed before assignment.
func (svc *UserService) Patch(ctx context.Context, id int64, patch models.UserPatch) (int64, error) {
	user, err := svc.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return 0, err
		}
		user.Password = string(hashedPassword)
	}

	if err := svc.writer.Update(ctx, user); err != nil {
		if isUniqueViolation(err) {
			logger.Log.Errorw("user already exists", "id", id)
			return 0, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return 0, err
	}

	return user.ID, nil
}

// Delete removes the user row. Unlike listings this is a hard delete.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := svc.Get(ctx, id); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, "user_deleted", id)

	return nil
}
