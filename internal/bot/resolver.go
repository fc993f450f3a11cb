package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"
)

// resolvedTarget is the outcome of argument resolution for a single
// command: the user the command acts on plus whatever trailing text
// applies. HasText distinguishes "no trailing text at all" from an
// empty trailing string, which matters for the temp-ban duration check.
type resolvedTarget struct {
	UserID  int64
	Text    string
	HasText bool
}

// resolveTarget extracts the targeted user and trailing text from a
// command message. Extraction strategies are tried in strict priority
// order; the first matching one wins:
//
//  1. no arguments at all: fall back to the replied-to message;
//  2. a text-mention entity sitting exactly at the argument boundary;
//  3. an @handle, looked up in the local user cache;
//  4. a bare numeric ID;
//  5. the replied-to message again;
//  6. nothing: no target.
//
// A handle-lookup miss and a stale identity both reply to the user and
// resolve to nothing; (nil, nil) means "no user specified". A returned
// error is a transport failure, never a denial.
func (b *Bot) resolveTarget(ctx context.Context, msg *tgbotapi.Message) (*resolvedTarget, error) {
	text := msg.Text
	_, argText, split := splitFirst(text)
	if !split || strings.TrimSpace(argText) == "" {
		// Only the command keyword, possibly with trailing whitespace.
		return b.targetFromReply(msg), nil
	}

	args := strings.Fields(argText)
	argStart := len(text) - len(argText)

	var target *resolvedTarget
	viaStore := false

	if ent := mentionAt(msg, argStart); ent != nil {
		target = &resolvedTarget{UserID: ent.User.ID}
		target.Text = strings.TrimLeft(text[ent.Offset+ent.Length:], " \t")
		target.HasText = true
		viaStore = true
	} else if strings.HasPrefix(args[0], "@") {
		// Numeric-looking handles still take this branch; the order of
		// these checks is load-bearing.
		user, err := b.users.FindByUsername(ctx, args[0])
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := b.replyTo(msg, "Could not find a user by this name; are you sure I've seen them before?"); err != nil {
				return nil, err
			}
			return nil, nil
		}
		if err != nil {
			// A store failure is not a miss; let it surface.
			return nil, err
		}
		target = &resolvedTarget{UserID: user.TelegramID}
		target.Text, target.HasText = thirdSegment(text)
		viaStore = true
	} else if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
		target = &resolvedTarget{UserID: id}
		target.Text, target.HasText = thirdSegment(text)
		viaStore = true
	} else if msg.ReplyToMessage != nil {
		target = b.targetFromReply(msg)
	} else {
		return nil, nil
	}

	// The local cache can go stale relative to the live platform; for
	// targets not vouched for by a reply, confirm the identity still
	// resolves before acting on it.
	if target != nil && viaStore {
		if _, err := b.api.GetChat(tgbotapi.ChatInfoConfig{
			ChatConfig: tgbotapi.ChatConfig{ChatID: target.UserID},
		}); err != nil {
			if err := b.replyTo(msg, "I don't seem to have interacted with this user before - please forward a message from them to give me control! (like a voodoo doll, I need a piece of them to be able to execute certain commands...)"); err != nil {
				return nil, err
			}
			return nil, nil
		}
	}

	return target, nil
}

// targetFromReply resolves the author of the replied-to message. The
// trailing text is whatever follows the first whitespace of that
// message's own text, or the empty string.
func (b *Bot) targetFromReply(msg *tgbotapi.Message) *resolvedTarget {
	prev := msg.ReplyToMessage
	if prev == nil || prev.From == nil {
		return nil
	}

	target := &resolvedTarget{UserID: prev.From.ID, HasText: true}
	if _, rest, ok := splitFirst(prev.Text); ok {
		target.Text = rest
	}
	return target
}

// mentionAt returns the text-mention entity that starts exactly at the
// argument boundary, if any.
func mentionAt(msg *tgbotapi.Message, argStart int) *tgbotapi.MessageEntity {
	for i := range msg.Entities {
		ent := &msg.Entities[i]
		if ent.Type != "text_mention" || ent.User == nil {
			continue
		}
		if ent.Offset == argStart {
			return ent
		}
	}
	return nil
}

// thirdSegment extracts the third-or-later whitespace-delimited part of
// the raw command line ("/cmd @who the rest" -> "the rest").
func thirdSegment(text string) (string, bool) {
	parts := splitN(text, 3)
	if len(parts) < 3 {
		return "", false
	}
	return parts[2], true
}
