package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// remind schedules a one-shot reminder about the replied-to message.
func (b *Bot) remind(msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}
	if msg.From.UserName == "" {
		return b.replyTo(msg, "You must have a username to use this feature")
	}

	prev := msg.ReplyToMessage
	if prev == nil {
		return b.replyTo(msg, "You must use this in reply to a message")
	}

	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		return b.replyTo(msg, "You need to specify a duration in d/h/m/s (days, hours, minutes, seconds)")
	}

	// Only the first argument counts as the duration.
	span, err := parseTimeSpan(strings.Fields(args)[0])
	if err != nil {
		return b.replyTo(msg, "failed to get specified time; expected one of d/h/m/s (days, hours, minutes, seconds)")
	}

	chatID := msg.Chat.ID
	messageID := prev.MessageID
	if _, err := b.scheduler.ScheduleAfter(span.Duration(), func() {
		reminder := tgbotapi.NewMessage(chatID, "Here's your reminder.")
		reminder.ReplyToMessageID = messageID
		if _, err := b.api.Send(reminder); err != nil {
			log.Printf("send reminder: %v", err)
		}
	}); err != nil {
		return b.replyTo(msg, "Error creating a reminder")
	}

	return b.replyTo(msg, "Okay, I'll remind you in "+span.String()+"!")
}
