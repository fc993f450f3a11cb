package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"chat-warden/internal/model"
)

// ChatRepository handles the observed-chat cache.
type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Upsert records a chat seen in an update. A no-op when the stored
// title already matches.
func (r *ChatRepository) Upsert(ctx context.Context, telegramID int64, title string) (*model.Chat, error) {
	var chat model.Chat
	db := r.db.WithContext(ctx)
	err := db.Where("telegram_id = ?", telegramID).First(&chat).Error
	switch {
	case err == nil:
		if chat.Title == title {
			return &chat, nil
		}
		if err := db.Model(&chat).Update("title", title).Error; err != nil {
			return nil, fmt.Errorf("update chat: %w", err)
		}
		return &chat, nil
	case err == gorm.ErrRecordNotFound:
		chat = model.Chat{TelegramID: telegramID, Title: title}
		if err := db.Create(&chat).Error; err != nil {
			return nil, fmt.Errorf("create chat: %w", err)
		}
		return &chat, nil
	default:
		return nil, fmt.Errorf("find chat: %w", err)
	}
}

func (r *ChatRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*model.Chat, error) {
	var chat model.Chat
	if err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&chat).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}
