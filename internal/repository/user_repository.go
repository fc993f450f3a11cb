package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"chat-warden/internal/model"
)

// UserRepository handles the observed-user cache.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert records a user seen in an update. The username is stored
// lowercased so later @handle lookups are case-insensitive. When the
// stored row already matches, the call is a no-op.
func (r *UserRepository) Upsert(ctx context.Context, telegramID int64, username, fullName string) (*model.User, error) {
	username = strings.ToLower(username)

	var user model.User
	db := r.db.WithContext(ctx)
	err := db.Where("telegram_id = ?", telegramID).First(&user).Error
	switch {
	case err == nil:
		if user.Username == username && user.FullName == fullName {
			return &user, nil
		}
		updates := map[string]interface{}{
			"username":  username,
			"full_name": fullName,
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		return &user, nil
	case err == gorm.ErrRecordNotFound:
		user = model.User{
			TelegramID: telegramID,
			Username:   username,
			FullName:   fullName,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return &user, nil
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}
}

// FindByUsername looks a user up by handle, case-insensitively.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	username = strings.ToLower(strings.TrimPrefix(username, "@"))
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
