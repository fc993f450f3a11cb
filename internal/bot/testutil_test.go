package bot

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"chat-warden/internal/repository"
	"chat-warden/internal/scheduler"
)

const (
	testChatID  = int64(-1001234567)
	testBotID   = int64(7777)
	testAdminID = int64(100)
	testUserID  = int64(200)
	testDate    = 1700000000
)

// fakeClient implements telegram.Client against canned data and records
// every outbound call.
type fakeClient struct {
	mu       sync.Mutex
	sent     []tgbotapi.MessageConfig
	requests []tgbotapi.Chattable

	members map[int64]tgbotapi.ChatMember
	chats   map[int64]tgbotapi.Chat
	invite  string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		members: make(map[int64]tgbotapi.ChatMember),
		chats:   make(map[int64]tgbotapi.Chat),
	}
}

func (f *fakeClient) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, m)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeClient) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeClient) GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[config.UserID]
	if !ok {
		return tgbotapi.ChatMember{}, errors.New("Bad Request: user not found")
	}
	return m, nil
}

func (f *fakeClient) GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.chats[config.ChatID]
	if !ok {
		return tgbotapi.Chat{}, errors.New("Bad Request: chat not found")
	}
	return c, nil
}

func (f *fakeClient) GetInviteLink(config tgbotapi.ChatInviteLinkConfig) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.invite == "" {
		return "", errors.New("Bad Request: not enough rights")
	}
	return f.invite, nil
}

func (f *fakeClient) sentTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	texts := make([]string, 0, len(f.sent))
	for _, m := range f.sent {
		texts = append(texts, m.Text)
	}
	return texts
}

func (f *fakeClient) lastText() string {
	texts := f.sentTexts()
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

func (f *fakeClient) mutationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// newTestBot builds a Bot over a fake client and a throwaway SQLite
// store, with a typical cast: an admin actor with full flags, a plain
// member, and the bot itself as a capable administrator.
func newTestBot(t *testing.T) (*Bot, *fakeClient) {
	t.Helper()

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	fake := newFakeClient()
	fake.members[testBotID] = tgbotapi.ChatMember{
		Status:              "administrator",
		CanBeEdited:         false,
		CanManageChat:       true,
		CanDeleteMessages:   true,
		CanManageVoiceChats: true,
		CanRestrictMembers:  true,
		CanPromoteMembers:   true,
		CanChangeInfo:       true,
		CanInviteUsers:      true,
		CanPinMessages:      true,
	}
	fake.members[testAdminID] = tgbotapi.ChatMember{
		Status:             "administrator",
		CanRestrictMembers: true,
		CanPromoteMembers:  true,
		CanPinMessages:     true,
	}
	fake.members[testUserID] = tgbotapi.ChatMember{Status: "member"}
	fake.chats[testUserID] = tgbotapi.Chat{ID: testUserID, Type: "private", FirstName: "Target"}

	b := &Bot{
		api:       fake,
		self:      tgbotapi.User{ID: testBotID, IsBot: true, UserName: "chatwardenbot"},
		users:     repository.NewUserRepository(db),
		chats:     repository.NewChatRepository(db),
		notes:     repository.NewNoteRepository(db),
		scheduler: scheduler.New(time.UTC),
	}
	return b, fake
}

// groupMsg builds a supergroup message from the given sender.
func groupMsg(fromID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 42,
		Date:      testDate,
		Text:      text,
		From:      &tgbotapi.User{ID: fromID, FirstName: "Sender"},
		Chat:      &tgbotapi.Chat{ID: testChatID, Type: "supergroup"},
	}
}

// commandMsg builds a group command message with the bot_command entity
// set so Command()/CommandArguments() work.
func commandMsg(fromID int64, command, args string) *tgbotapi.Message {
	text := command
	if args != "" {
		text += " " + args
	}
	msg := groupMsg(fromID, text)
	msg.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(command)},
	}
	return msg
}

func replyMsg(fromID int64, text string, repliedAuthor int64, repliedText string) *tgbotapi.Message {
	msg := groupMsg(fromID, text)
	msg.ReplyToMessage = &tgbotapi.Message{
		MessageID: 41,
		Date:      testDate - 60,
		Text:      repliedText,
		From:      &tgbotapi.User{ID: repliedAuthor, FirstName: "Replied"},
		Chat:      &tgbotapi.Chat{ID: testChatID, Type: "supergroup"},
	}
	return msg
}
