package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"chat-warden/internal/telegram"
)

// ban removes a member from the chat, permanently or until an expiry.
// A trailing duration turns a plain /ban into a timed one; /tban makes
// the duration mandatory.
func (b *Bot) ban(ctx context.Context, msg *tgbotapi.Message, timed bool) error {
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
		return b.replyTo(msg, "I'm not banning an administrator!")
	}

	if timed {
		span, err := parseTimeSpan(target.Text)
		if err != nil {
			return b.replyTo(msg, "failed to get specified time; expected one of d/h/m/s (days, hours, minutes, seconds)")
		}
		return b.banUntil(msg, target.UserID, span)
	}

	// A parseable trailing duration makes a plain /ban temporary.
	if target.HasText && strings.TrimSpace(target.Text) != "" {
		if span, err := parseTimeSpan(target.Text); err == nil {
			return b.banUntil(msg, target.UserID, span)
		}
	}

	ban := tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: msg.Chat.ID,
			UserID: target.UserID,
		},
	}
	if _, err := b.api.Request(ban); err != nil {
		return err
	}
	return b.replyTo(msg, "Banned!")
}

// banUntil issues a timed ban expiring relative to the update's own
// timestamp, not the wall clock at execution.
func (b *Bot) banUntil(msg *tgbotapi.Message, userID int64, span timeSpan) error {
	ban := tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: msg.Chat.ID,
			UserID: userID,
		},
		UntilDate: int64(msg.Date) + span.Seconds(),
	}
	if _, err := b.api.Request(ban); err != nil {
		return err
	}
	return b.replyTo(msg, "Banned for "+span.String()+"!")
}

// kick expels a member without a lasting ban record: calling the unban
// primitive on a present member removes them while leaving them free to
// come back.
func (b *Bot) kick(ctx context.Context, msg *tgbotapi.Message) error {
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

	member, err := b.memberOf(msg.Chat.ID, target.UserID)
	if err != nil {
		return b.replyTo(msg, "This user is ded mate.")
	}
	if telegram.IsPrivileged(member) {
		return b.replyTo(msg, "I'm not kicking an administrator!")
	}

	if err := b.unbanMember(msg.Chat.ID, target.UserID); err != nil {
		return err
	}
	return b.replyTo(msg, "Kicked!")
}

// kickMe lets a non-admin remove themselves.
func (b *Bot) kickMe(msg *tgbotapi.Message) error {
	if err := b.requireGroup(msg); err != nil {
		return swallowDenial(err)
	}
	if err := b.requireBotCan(msg, telegram.CapRestrictMembers); err != nil {
		return swallowDenial(err)
	}

	if msg.From == nil {
		return nil
	}
	admin, err := b.isUserAdmin(msg, msg.From.ID)
	if err != nil {
		return err
	}
	if admin {
		return b.replyTo(msg, "Yeah no, not banning an admin.")
	}

	if err := b.replyTo(msg, "Sure thing boss."); err != nil {
		return err
	}
	return b.unbanMember(msg.Chat.ID, msg.From.ID)
}

func (b *Bot) unban(ctx context.Context, msg *tgbotapi.Message) error {
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
	if telegram.StatusOf(member) != telegram.StatusBanned {
		return b.replyTo(msg, "This user wasn't banned!")
	}

	if err := b.unbanMember(msg.Chat.ID, target.UserID); err != nil {
		return err
	}
	return b.replyTo(msg, "Unbanned!")
}

func (b *Bot) unbanMember(chatID, userID int64) error {
	unban := tgbotapi.UnbanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatID,
			UserID: userID,
		},
	}
	_, err := b.api.Request(unban)
	return err
}
