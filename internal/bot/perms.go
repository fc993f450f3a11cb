package bot

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"chat-warden/internal/telegram"
)

// errDenied marks a guard failure whose user-facing explanation has
// already been sent. Handlers swallow it and finish normally.
var errDenied = errors.New("permission denied")

// swallowDenial turns a guard denial into normal completion; transport
// failures pass through untouched.
func swallowDenial(err error) error {
	if errors.Is(err, errDenied) {
		return nil
	}
	return err
}

func (b *Bot) memberOf(chatID, userID int64) (tgbotapi.ChatMember, error) {
	return b.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: chatID,
			UserID: userID,
		},
	})
}

// requireGroup rejects moderation commands issued outside a group.
func (b *Bot) requireGroup(msg *tgbotapi.Message) error {
	if msg.Chat.IsGroup() || msg.Chat.IsSuperGroup() {
		return nil
	}
	if err := b.replyTo(msg, "This command is meant to be used in a group!"); err != nil {
		return err
	}
	return errDenied
}

// requireActorCan checks the invoking user for a capability. The chat
// owner passes regardless of explicit flags.
func (b *Bot) requireActorCan(msg *tgbotapi.Message, cap telegram.Capability) error {
	if msg.From != nil {
		member, err := b.memberOf(msg.Chat.ID, msg.From.ID)
		if err != nil {
			return err
		}
		if telegram.HasCapability(member, cap) {
			return nil
		}
	}
	if err := b.replyTo(msg, "You're missing the required permission for this action: "+cap.Name()+"."); err != nil {
		return err
	}
	return errDenied
}

// requireBotCan checks the bot's own membership for a capability.
func (b *Bot) requireBotCan(msg *tgbotapi.Message, cap telegram.Capability) error {
	member, err := b.memberOf(msg.Chat.ID, b.self.ID)
	if err != nil {
		return err
	}
	if telegram.HasCapability(member, cap) {
		return nil
	}
	if err := b.replyTo(msg, "I am missing the required permission for this action: "+cap.Name()+"."); err != nil {
		return err
	}
	return errDenied
}

// isUserAdmin reports whether the user is an administrator or the owner
// of the chat. Private chats count as administered by both parties.
func (b *Bot) isUserAdmin(msg *tgbotapi.Message, userID int64) (bool, error) {
	if msg.Chat.IsPrivate() {
		return true, nil
	}
	member, err := b.memberOf(msg.Chat.ID, userID)
	if err != nil {
		return false, err
	}
	return telegram.IsPrivileged(member), nil
}

// requireUserAdmin rejects commands from non-admins.
func (b *Bot) requireUserAdmin(msg *tgbotapi.Message) error {
	if msg.From != nil {
		admin, err := b.isUserAdmin(msg, msg.From.ID)
		if err != nil {
			return err
		}
		if admin {
			return nil
		}
	}
	if err := b.replyTo(msg, "You need to be an admin for this to work!"); err != nil {
		return err
	}
	return errDenied
}
