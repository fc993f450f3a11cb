package bot

import (
	"context"
	"strings"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// saveNote stores a named snippet scoped to the current chat. Saving
// over an existing name overwrites it.
func (b *Bot) saveNote(ctx context.Context, msg *tgbotapi.Message) error {
	if err := b.requireUserAdmin(msg); err != nil {
		return swallowDenial(err)
	}

	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		return b.replyTo(msg, "You need to give the note a name!")
	}

	name, content, ok := splitFirst(args)
	if !ok || strings.TrimSpace(content) == "" {
		return b.replyTo(msg, "You need to give the note some content!")
	}

	if _, err := b.notes.Upsert(ctx, msg.Chat.ID, name, content); err != nil {
		return err
	}
	return b.replyTo(msg, "Saved note "+codeInline(name)+".")
}

// getNote fetches a note by exact name within the current chat.
func (b *Bot) getNote(ctx context.Context, msg *tgbotapi.Message) error {
	name := strings.TrimSpace(msg.CommandArguments())
	if name == "" {
		return b.replyTo(msg, "You need to give the note a name!")
	}

	note, err := b.notes.Find(ctx, msg.Chat.ID, name)
	if err != nil {
		return b.replyTo(msg, "I don't have a note by that name here.")
	}
	return b.replyTo(msg, note.Content)
}

// maybeSendNote answers messages that are exactly one "#name" token
// with the matching note. Misses stay silent on purpose: any #word in
// normal conversation would otherwise trigger noise.
func (b *Bot) maybeSendNote(ctx context.Context, msg *tgbotapi.Message) error {
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "#") || len(text) < 2 {
		return nil
	}
	if strings.ContainsFunc(text, unicode.IsSpace) {
		return nil
	}

	note, err := b.notes.Find(ctx, msg.Chat.ID, strings.TrimPrefix(text, "#"))
	if err != nil {
		return nil
	}
	return b.replyTo(msg, note.Content)
}
