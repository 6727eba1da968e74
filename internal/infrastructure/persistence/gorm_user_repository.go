package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/users"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) List(ctx context.Context, licenseID string) ([]*users.User, error) {
	var modelList []*models.UserModel
	err := r.db.WithContext(ctx).
		Where("license_id = ?", licenseID).
		Order("name asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	// Save would skip Active=false with struct updates; use explicit column map
	err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"email":         model.Email,
			"name":          model.Name,
			"role":          model.Role,
			"password_hash": model.PasswordHash,
			"active":        model.Active,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}

type gormTokenRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTokenRepository creates a new GORM-based TokenRepository implementation
func NewGormTokenRepository(db *gorm.DB, logger logger.Logger) (users.TokenRepository, error) {
	return &gormTokenRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTokenRepository) Create(ctx context.Context, token *users.ApiToken) error {
	if err := token.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ApiTokenModel{}
	model.FromDomain(token)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create api token: %w", err)
	}
	return nil
}

func (r *gormTokenRepository) GetByHash(ctx context.Context, tokenHash string) (*users.ApiToken, error) {
	var model models.ApiTokenModel
	if err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch api token: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTokenRepository) GetByID(ctx context.Context, tokenID string) (*users.ApiToken, error) {
	var model models.ApiTokenModel
	if err := r.db.WithContext(ctx).Where("id = ?", tokenID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch api token: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTokenRepository) ListByUser(ctx context.Context, userID string) ([]*users.ApiToken, error) {
	var modelList []*models.ApiTokenModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch api tokens: %w", err)
	}

	domainList := make([]*users.ApiToken, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormTokenRepository) TouchLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error {
	err := r.db.WithContext(ctx).Model(&models.ApiTokenModel{}).
		Where("id = ?", tokenID).
		Update("last_used_at", usedAt).Error
	if err != nil {
		return fmt.Errorf("failed to touch api token: %w", err)
	}
	return nil
}

func (r *gormTokenRepository) DeleteByID(ctx context.Context, tokenID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", tokenID).Delete(&models.ApiTokenModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete api token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *gormTokenRepository) DeleteByUser(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.ApiTokenModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete api tokens: %w", err)
	}
	return nil
}
