package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"chat-warden/internal/telegram"
)

// mute revokes a member's content-posting rights, permanently or until
// an expiry. A trailing duration turns a plain /mute into a timed one;
// /tmute makes the duration mandatory.
func (b *Bot) mute(ctx context.Context, msg *tgbotapi.Message, timed bool) error {
	if err := b.requireGroup(msg); err != nil {
		return swallowDenial(err)
	}
	if err := b.requireActorCan(msg, telegram.CapRestrictMembers); err != nil {
		return swallowDenial(err)
	}
	if err := b.requireBotCan(msg, telegram.CapRestrictMembers); err != nil {
		return swallowDenial(err)
	}

	target, err := b.resolveTarget(ctx, msg)
	if err != nil {
		return err
	}
	if target == nil {
		return b.replyTo(msg, "Try targeting a user next time bud.")
	}
	if target.UserID == b.self.ID {
		return b.replyTo(msg, "No u")
	}
	if timed && !target.HasText {
		return b.replyTo(msg, "You need to specify a duration in d/h/m/s (days, hours, minutes, seconds)")
	}

	member, err := b.memberOf(msg.Chat.ID, target.UserID)
	if err != nil {
		return b.replyTo(msg, "This user is ded mate.")
	}
	if telegram.IsPrivileged(member) {
		return b.replyTo(msg, "I'm not muting an administrator!")
	}
	if telegram.IsAbsent(member) {
		return b.replyTo(msg, "This user isn't in the chat!")
	}

	// Decides the reply wording below; the mutation happens either way.
	restricted := telegram.IsRestricted(member)

	var span *timeSpan
	if timed {
		parsed, err := parseTimeSpan(target.Text)
		if err != nil {
			return b.replyTo(msg, "failed to get specified time; expected one of d/h/m/s (days, hours, minutes, seconds)")
		}
		span = &parsed
	} else if target.HasText && strings.TrimSpace(target.Text) != "" {
		if parsed, err := parseTimeSpan(target.Text); err == nil {
			span = &parsed
		}
	}

	restrict := tgbotapi.RestrictChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: msg.Chat.ID,
			UserID: target.UserID,
		},
		Permissions: &tgbotapi.ChatPermissions{},
	}
	if span != nil {
		// Expiry is anchored to the update's timestamp.
		restrict.UntilDate = int64(msg.Date) + span.Seconds()
	}
	if _, err := b.api.Request(restrict); err != nil {
		return err
	}

	switch {
	case span != nil && restricted:
		return b.replyTo(msg, "Restrictions have been updated. Muted for "+span.String()+"!")
	case span != nil:
		return b.replyTo(msg, "Muted for "+span.String()+"!")
	case restricted:
		return b.replyTo(msg, "Restrictions have been updated. Permanently muted!")
	default:
		return b.replyTo(msg, "Muted!")
	}
}

func (b *Bot) unmute(ctx context.Context, msg *tgbotapi.Message) error {
	if err := b.requireGroup(msg); err != nil {
		return swallowDenial(err)
	}
	if err := b.requireActorCan(msg, telegram.CapRestrictMembers); err != nil {
		return swallowDenial(err)
	}
	if err := b.requireBotCan(msg, telegram.CapRestrictMembers); err != nil {
		return swallowDenial(err)
	}

	target, err := b.resolveTarget(ctx, msg)
	if err != nil {
		return err
	}
	if target == nil {
		return b.replyTo(msg, "Try targeting a user next time bud.")
	}
	if target.UserID == b.self.ID {
		return b.replyTo(msg, "What exactly are you trying to do?")
	}

	member, err := b.memberOf(msg.Chat.ID, target.UserID)
	if err != nil {
		return b.replyTo(msg, "This user is ded mate.")
	}
	if telegram.IsAbsent(member) {
		return b.replyTo(msg, "This user isn't in the chat!")
	}
	if !telegram.IsRestricted(member) {
		return b.replyTo(msg, "This user can already speak freely!")
	}

	restrict := tgbotapi.RestrictChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: msg.Chat.ID,
			UserID: target.UserID,
		},
		Permissions: &tgbotapi.ChatPermissions{
			CanSendMessages:       true,
			CanSendMediaMessages:  true,
			CanSendPolls:          true,
			CanSendOtherMessages:  true,
			CanAddWebPagePreviews: true,
		},
	}
	if _, err := b.api.Request(restrict); err != nil {
		return err
	}
	return b.replyTo(msg, "Unmuted!")
}
