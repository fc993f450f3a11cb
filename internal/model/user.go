package model

import "time"

// User stores Telegram user metadata observed from incoming messages.
// Username is stored lowercased so @handle lookups are case-insensitive.
type User struct {
	ID         uint   `gorm:"primaryKey"`
	TelegramID int64  `gorm:"uniqueIndex"`
	Username   string `gorm:"index"`
	FullName   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
