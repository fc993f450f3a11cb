package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"chat-warden/internal/model"
)

// NoteRepository handles chat-scoped saved notes.
type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Upsert saves a note, overwriting any previous content under the same
// (chat, name) pair. A no-op when the stored content already matches.
func (r *NoteRepository) Upsert(ctx context.Context, chatID int64, name, content string) (*model.Note, error) {
	var note model.Note
	db := r.db.WithContext(ctx)
	err := db.Where("chat_id = ? AND name = ?", chatID, name).First(&note).Error
	switch {
	case err == nil:
		if note.Content == content {
			return &note, nil
		}
		if err := db.Model(&note).Update("content", content).Error; err != nil {
			return nil, fmt.Errorf("update note: %w", err)
		}
		return &note, nil
	case err == gorm.ErrRecordNotFound:
		note = model.Note{ChatID: chatID, Name: name, Content: content}
		if err := db.Create(&note).Error; err != nil {
			return nil, fmt.Errorf("create note: %w", err)
		}
		return &note, nil
	default:
		return nil, fmt.Errorf("find note: %w", err)
	}
}

// Find fetches a note by exact name within one chat.
func (r *NoteRepository) Find(ctx context.Context, chatID int64, name string) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).Where("chat_id = ? AND name = ?", chatID, name).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}
