// Package telegram narrows the Bot API surface the moderation logic
// depends on, so handlers can be exercised against a fake in tests.
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client is the subset of *tgbotapi.BotAPI the bot actually calls.
type Client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
	GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error)
	GetInviteLink(config tgbotapi.ChatInviteLinkConfig) (string, error)
}

var _ Client = (*tgbotapi.BotAPI)(nil)
