package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"chat-warden/internal/telegram"
)

// promote grants the target exactly the capabilities the bot itself
// currently holds; it must never hand out rights it lacks. Pin rights
// are additionally gated on the chat being a supergroup.
func (b *Bot) promote(ctx context.Context, msg *tgbotapi.Message) error {
	if err := b.requireGroup(msg); err != nil {
		return swallowDenial(err)
	}
	if err := b.requireActorCan(msg, telegram.CapPromoteMembers); err != nil {
		return swallowDenial(err)
	}
	if err := b.requireBotCan(msg, telegram.CapPromoteMembers); err != nil {
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

	if _, err := b.memberOf(msg.Chat.ID, target.UserID); err != nil {
		return b.replyTo(msg, "This user is ded mate.")
	}

	botMember, err := b.memberOf(msg.Chat.ID, b.self.ID)
	if err != nil {
		return err
	}

	grant := tgbotapi.PromoteChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: msg.Chat.ID,
			UserID: target.UserID,
		},
		CanManageChat:       botMember.CanManageChat,
		CanChangeInfo:       botMember.CanChangeInfo,
		CanDeleteMessages:   botMember.CanDeleteMessages,
		CanManageVoiceChats: botMember.CanManageVoiceChats,
		CanInviteUsers:      botMember.CanInviteUsers,
		CanRestrictMembers:  botMember.CanRestrictMembers,
		CanPinMessages:      botMember.CanPinMessages && msg.Chat.IsSuperGroup(),
		CanPromoteMembers:   botMember.CanPromoteMembers,
	}
	if _, err := b.api.Request(grant); err != nil {
		return err
	}
	return b.replyTo(msg, "Successfully promoted!")
}

// demote strips every capability flag from an administrator.
func (b *Bot) demote(ctx context.Context, msg *tgbotapi.Message) error {
	if err := b.requireGroup(msg); err != nil {
		return swallowDenial(err)
	}
	if err := b.requireActorCan(msg, telegram.CapPromoteMembers); err != nil {
		return swallowDenial(err)
	}
	if err := b.requireBotCan(msg, telegram.CapPromoteMembers); err != nil {
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
	switch telegram.StatusOf(member) {
	case telegram.StatusAdministrator:
	case telegram.StatusOwner:
		return b.replyTo(msg, "This person CREATED the chat, how would I demote them?")
	default:
		return b.replyTo(msg, "Can't demote what wasn't promoted!")
	}

	// An admin rank appointed by someone else is off limits; fail fast
	// instead of bouncing off a platform rejection.
	if !member.CanBeEdited {
		return b.replyTo(msg, "Could not demote. I might not be admin, or the admin status was appointed by another user, so I can't act upon them!")
	}

	revoke := tgbotapi.PromoteChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: msg.Chat.ID,
			UserID: target.UserID,
		},
	}
	if _, err := b.api.Request(revoke); err != nil {
		return err
	}
	return b.replyTo(msg, "Successfully demoted!")
}

type pinMode int

const (
	pinSilent pinMode = iota
	pinLoud
)

func parsePinMode(s string) pinMode {
	switch s {
	case "notify", "loud", "violent":
		return pinLoud
	default:
		return pinSilent
	}
}

// pin pins the replied-to message, silently unless told otherwise.
func (b *Bot) pin(msg *tgbotapi.Message) error {
	if err := b.requireGroup(msg); err != nil {
		return swallowDenial(err)
	}
	if err := b.requireActorCan(msg, telegram.CapPinMessages); err != nil {
		return swallowDenial(err)
	}
	if err := b.requireBotCan(msg, telegram.CapPinMessages); err != nil {
		return swallowDenial(err)
	}

	if msg.ReplyToMessage == nil {
		return b.replyTo(msg, "Can't pin that message!")
	}

	mode := parsePinMode(msg.CommandArguments())
	pin := tgbotapi.PinChatMessageConfig{
		ChatID:              msg.Chat.ID,
		MessageID:           msg.ReplyToMessage.MessageID,
		DisableNotification: mode == pinSilent,
	}
	_, err := b.api.Request(pin)
	return err
}

// inviteLink fetches the chat's invite link, exporting a fresh one when
// none is known yet.
func (b *Bot) inviteLink(msg *tgbotapi.Message) error {
	if err := b.requireGroup(msg); err != nil {
		return swallowDenial(err)
	}

	chat, err := b.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: msg.Chat.ID},
	})
	if err == nil && chat.InviteLink != "" {
		return b.replyTo(msg, chat.InviteLink)
	}

	link, err := b.api.GetInviteLink(tgbotapi.ChatInviteLinkConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: msg.Chat.ID},
	})
	if err != nil {
		return b.replyTo(msg, "I don't have access to the invite link for this chat!")
	}
	return b.replyTo(msg, link)
}
