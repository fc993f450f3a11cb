package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveNote_RequiresAdmin(t *testing.T) {
	b, fake := newTestBot(t)

	err := b.saveNote(context.Background(), commandMsg(testUserID, "/save", "rules no spamming"))
	require.NoError(t, err)
	assert.Equal(t, "You need to be an admin for this to work!", fake.lastText())
}

func TestSaveNote_RequiresNameAndContent(t *testing.T) {
	b, fake := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, b.saveNote(ctx, commandMsg(testAdminID, "/save", "")))
	assert.Equal(t, "You need to give the note a name!", fake.lastText())

	require.NoError(t, b.saveNote(ctx, commandMsg(testAdminID, "/save", "rules")))
	assert.Equal(t, "You need to give the note some content!", fake.lastText())
}

func TestSaveAndGetNote(t *testing.T) {
	b, fake := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, b.saveNote(ctx, commandMsg(testAdminID, "/save", "rules no spamming, no flooding")))
	assert.Contains(t, fake.lastText(), "Saved note")

	require.NoError(t, b.getNote(ctx, commandMsg(testUserID, "/get", "rules")))
	assert.Equal(t, "no spamming, no flooding", fake.lastText())
}

func TestGetNote_MissReplies(t *testing.T) {
	b, fake := newTestBot(t)

	require.NoError(t, b.getNote(context.Background(), commandMsg(testUserID, "/get", "nothing")))
	assert.Equal(t, "I don't have a note by that name here.", fake.lastText())
}

func TestSaveNote_OverwriteAndIdempotence(t *testing.T) {
	b, fake := newTestBot(t)
	ctx := context.Background()

	require.NoError(t, b.saveNote(ctx, commandMsg(testAdminID, "/save", "rules v1")))
	require.NoError(t, b.saveNote(ctx, commandMsg(testAdminID, "/save", "rules v2")))
	require.NoError(t, b.saveNote(ctx, commandMsg(testAdminID, "/save", "rules v2")))

	note, err := b.notes.Find(ctx, testChatID, "rules")
	require.NoError(t, err)
	assert.Equal(t, "v2", note.Content)
	assert.Empty(t, fake.requests)
}

func TestHashtagLookup_HitRepliesWithContent(t *testing.T) {
	b, fake := newTestBot(t)
	ctx := context.Background()

	_, err := b.notes.Upsert(ctx, testChatID, "faq", "read the pinned message")
	require.NoError(t, err)

	require.NoError(t, b.maybeSendNote(ctx, groupMsg(testUserID, "#faq")))
	assert.Equal(t, "read the pinned message", fake.lastText())
}

func TestHashtagLookup_MissStaysSilent(t *testing.T) {
	b, fake := newTestBot(t)

	require.NoError(t, b.maybeSendNote(context.Background(), groupMsg(testUserID, "#whatever")))
	assert.Empty(t, fake.sentTexts())
}

func TestHashtagLookup_MultiTokenMessageIgnored(t *testing.T) {
	b, fake := newTestBot(t)
	ctx := context.Background()

	_, err := b.notes.Upsert(ctx, testChatID, "faq", "read the pinned message")
	require.NoError(t, err)

	require.NoError(t, b.maybeSendNote(ctx, groupMsg(testUserID, "#faq and more words")))
	assert.Empty(t, fake.sentTexts())
}

func TestNotes_ScopedToChat(t *testing.T) {
	b, fake := newTestBot(t)
	ctx := context.Background()

	_, err := b.notes.Upsert(ctx, testChatID, "rules", "be nice")
	require.NoError(t, err)

	other := commandMsg(testUserID, "/get", "rules")
	other.Chat.ID = testChatID + 1
	require.NoError(t, b.getNote(ctx, other))
	assert.Equal(t, "I don't have a note by that name here.", fake.lastText())
}
