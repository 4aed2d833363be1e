package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	errs "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	coreport "github.com/amirhossein-jamali/currency-detector/internal/domain/port/core"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/currency-detector/internal/infrastructure/adapter/model"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userToEntity(m *model.User) *entity.User {
	return entity.RestoreUser(m.ID, m.FullName, m.Email, m.HashedPassword, m.CreatedAt)
}

// Create inserts the user and sets its generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		FullName:       user.FullName,
		Email:          user.Email,
		HashedPassword: user.PasswordHash(),
		CreatedAt:      user.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "creating user", err, errs.ErrUserNotFound, map[string]any{
			"email": user.Email,
		})
	}

	user.ID = userModel.ID
	r.logger.Debug("User created", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting user", err, errs.ErrUserNotFound, map[string]any{
			"user_id": id,
		})
	}
	return userToEntity(&userModel), nil
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	err := r.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)).First(&userModel).Error
	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting user by email", err, errs.ErrUserNotFound, nil)
	}
	return userToEntity(&userModel), nil
}

// EmailExists checks whether an account already uses the email
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", entity.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, handleDatabaseError(r.logger, r.errorClassifier, "checking email", err, errs.ErrUserNotFound, nil)
	}
	return count > 0, nil
}

// Delete removes the user. The database cascades to predictions and system logs.
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "deleting user", result.Error, errs.ErrUserNotFound, map[string]any{
			"user_id": id,
		})
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Info("User deleted", map[string]any{
		"user_id": id,
	})
	return nil
}
