package bot

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"chat-warden/internal/repository"
	"chat-warden/internal/scheduler"
	"chat-warden/internal/telegram"
)

// Bot aggregates the Telegram API with the moderation logic and the
// local identity cache.
type Bot struct {
	botAPI    *tgbotapi.BotAPI
	api       telegram.Client
	self      tgbotapi.User
	users     *repository.UserRepository
	chats     *repository.ChatRepository
	notes     *repository.NoteRepository
	scheduler *scheduler.Scheduler
}

func New(token string, users *repository.UserRepository, chats *repository.ChatRepository, notes *repository.NoteRepository, sched *scheduler.Scheduler) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	return &Bot{
		botAPI:    api,
		api:       api,
		self:      api.Self,
		users:     users,
		chats:     chats,
		notes:     notes,
		scheduler: sched,
	}, nil
}

// Start begins polling updates until ctx is cancelled. Every update is
// handled on its own goroutine; no ordering is guaranteed between
// updates, and two commands targeting the same member may interleave.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.botAPI.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.botAPI.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil {
			continue
		}
		msg := update.Message
		go func() {
			if err := b.handleMessage(ctx, msg); err != nil {
				log.Printf("handle message: %v", err)
				b.replyGenericFailure(msg)
			}
		}()
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.Chat == nil {
		return nil
	}

	// Opportunistically cache identities seen in any update; @handle
	// resolution feeds off this later.
	if msg.From != nil && !msg.From.IsBot {
		if _, err := b.users.Upsert(ctx, msg.From.ID, msg.From.UserName, displayName(msg.From)); err != nil {
			log.Printf("save user %d: %v", msg.From.ID, err)
		}
	}
	if !msg.Chat.IsPrivate() {
		if _, err := b.chats.Upsert(ctx, msg.Chat.ID, msg.Chat.Title); err != nil {
			log.Printf("save chat %d: %v", msg.Chat.ID, err)
		}
	}

	if msg.Text == "" {
		return nil
	}

	if !msg.IsCommand() {
		return b.maybeSendNote(ctx, msg)
	}

	if msg.From != nil {
		log.Printf("[info] command from %d: /%s %s", msg.From.ID, msg.Command(), msg.CommandArguments())
	}
	return b.handleCommand(ctx, msg)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "help":
		return b.handleHelp(msg)
	case "id":
		return b.handleID(ctx, msg)
	case "ban":
		return b.ban(ctx, msg, false)
	case "tban":
		return b.ban(ctx, msg, true)
	case "kick":
		return b.kick(ctx, msg)
	case "kickme":
		return b.kickMe(msg)
	case "unban":
		return b.unban(ctx, msg)
	case "mute":
		return b.mute(ctx, msg, false)
	case "tmute":
		return b.mute(ctx, msg, true)
	case "unmute":
		return b.unmute(ctx, msg)
	case "promote":
		return b.promote(ctx, msg)
	case "demote":
		return b.demote(ctx, msg)
	case "pin":
		return b.pin(msg)
	case "invitelink":
		return b.inviteLink(msg)
	case "save":
		return b.saveNote(ctx, msg)
	case "get":
		return b.getNote(ctx, msg)
	case "remind":
		return b.remind(msg)
	default:
		return nil
	}
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	text := "<b>List of supported commands:</b>\n" +
		"/help - display this text\n" +
		"/id - get a user's ID\n" +
		"/ban - ban a user\n" +
		"/tban - temporarily ban a user\n" +
		"/kick - kick a user\n" +
		"/kickme - kick yourself\n" +
		"/unban - unban a user\n" +
		"/mute - mute a user\n" +
		"/tmute - temporarily mute a user\n" +
		"/unmute - unmute a user\n" +
		"/promote - promote a user\n" +
		"/demote - demote a user\n" +
		"/pin - pin a message (silent unless told otherwise)\n" +
		"/invitelink - get the chat's invite link\n" +
		"/save - save a note in this chat\n" +
		"/get - fetch a note by name (or use #name)\n" +
		"/remind - get reminded about a message later"
	return b.replyTo(msg, text)
}

// replyTo sends text as a reply to msg.
func (b *Bot) replyTo(msg *tgbotapi.Message, text string) error {
	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ReplyToMessageID = msg.MessageID
	reply.ParseMode = tgbotapi.ModeHTML
	_, err := b.api.Send(reply)
	return err
}

func (b *Bot) replyGenericFailure(msg *tgbotapi.Message) {
	if err := b.replyTo(msg, "Something went wrong while doing that, give it another shot."); err != nil {
		log.Printf("send failure reply: %v", err)
	}
}

func displayName(u *tgbotapi.User) string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

func escape(s string) string {
	return html.EscapeString(s)
}

func codeInline(s string) string {
	return "<code>" + escape(s) + "</code>"
}

// splitFirst splits s at its first whitespace rune. ok is false when s
// contains no whitespace at all.
func splitFirst(s string) (head, rest string, ok bool) {
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, "", false
	}
	_, width := utf8.DecodeRuneInString(s[idx:])
	return s[:idx], s[idx+width:], true
}

// splitN splits s at single whitespace runes into at most n segments;
// the last segment keeps the remainder verbatim.
func splitN(s string, n int) []string {
	parts := make([]string, 0, n)
	for len(parts) < n-1 {
		head, rest, ok := splitFirst(s)
		if !ok {
			break
		}
		parts = append(parts, head)
		s = rest
	}
	return append(parts, s)
}
