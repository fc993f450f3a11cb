package bot

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleID reports a user's numeric ID. Replying to a forwarded message
// reports both the original sender and the forwarder.
func (b *Bot) handleID(ctx context.Context, msg *tgbotapi.Message) error {
	if prev := msg.ReplyToMessage; prev != nil && prev.From != nil {
		if prev.ForwardFrom != nil {
			return b.replyTo(msg, fmt.Sprintf(
				"The original sender, %s, has an ID of %s.\nThe forwarder, %s, has an ID of %s.",
				escape(prev.ForwardFrom.FirstName),
				codeInline(strconv.FormatInt(prev.ForwardFrom.ID, 10)),
				escape(prev.From.FirstName),
				codeInline(strconv.FormatInt(prev.From.ID, 10)),
			))
		}
		return b.replyTo(msg, fmt.Sprintf(
			"%s's ID is %s.",
			escape(prev.From.FirstName),
			codeInline(strconv.FormatInt(prev.From.ID, 10)),
		))
	}

	target, err := b.resolveTarget(ctx, msg)
	if err != nil || target == nil {
		return err
	}

	profile, err := b.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: target.UserID},
	})
	if err != nil {
		return err
	}
	return b.replyTo(msg, fmt.Sprintf(
		"%s's ID is %s.",
		escape(profile.FirstName),
		codeInline(strconv.FormatInt(target.UserID, 10)),
	))
}
