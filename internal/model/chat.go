package model

import "time"

// Chat stores group chat metadata observed from incoming messages.
type Chat struct {
	ID         uint  `gorm:"primaryKey"`
	TelegramID int64 `gorm:"uniqueIndex"`
	Title      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
