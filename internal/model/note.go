package model

import "time"

// Note is a named text snippet saved by an admin, scoped to one chat.
type Note struct {
	ID        uint   `gorm:"primaryKey"`
	ChatID    int64  `gorm:"index:idx_chat_note_name,unique"`
	Name      string `gorm:"index:idx_chat_note_name,unique"`
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
