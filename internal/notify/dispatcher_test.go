package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gumboard/internal/board/domain/entities"
	"gumboard/internal/notify"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (string, error) {
	args := m.Called(ctx, note)
	return args.String(0), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID string) (*entities.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) ListByBoard(ctx context.Context, boardID string, limit, offset int) ([]*entities.Note, int, error) {
	args := m.Called(ctx, boardID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Note), args.Int(1), args.Error(2)
}

func (m *mockNoteRepository) RecordDelivery(ctx context.Context, noteID, provider, messageID string) error {
	args := m.Called(ctx, noteID, provider, messageID)
	return args.Error(0)
}

// fakeProvider записывает все вызовы Send и позволяет имитировать сбой доставки.
type fakeProvider struct {
	name       string
	webhookURL func(org *entities.Organization) string
	enabled    func(board *entities.Board) bool
	sendErr    error

	mu    sync.Mutex
	sends []any
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) WebhookURL(org *entities.Organization) string {
	return p.webhookURL(org)
}

func (p *fakeProvider) Enabled(board *entities.Board) bool {
	return p.enabled(board)
}

func (p *fakeProvider) FormatNote(note *entities.Note, boardName, userName string) any {
	return p.FormatTodo(notify.NoteText(note), boardName, userName, notify.ActionAdded)
}

func (p *fakeProvider) FormatTodo(content, boardName, userName string, action notify.Action) any {
	return map[string]string{
		"content": content,
		"board":   boardName,
		"user":    userName,
		"action":  string(action),
	}
}

func (p *fakeProvider) Send(_ context.Context, _ string, message any) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sendErr != nil {
		return "", p.sendErr
	}
	p.sends = append(p.sends, message)
	return "msg-1", nil
}

func (p *fakeProvider) Update(ctx context.Context, webhookURL, content string, completed bool, boardName, userName string) error {
	action := notify.ActionAdded
	if completed {
		action = notify.ActionCompleted
	}
	_, err := p.Send(ctx, webhookURL, p.FormatTodo(content, boardName, userName, action))
	return err
}

func (p *fakeProvider) sentMessages() []any {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]any, len(p.sends))
	copy(out, p.sends)
	return out
}

func newSlackFake() *fakeProvider {
	return &fakeProvider{
		name:       "slack",
		webhookURL: func(org *entities.Organization) string { return org.SlackWebhookURL },
		enabled:    func(board *entities.Board) bool { return board.SendSlackUpdates },
	}
}

func newDiscordFake() *fakeProvider {
	return &fakeProvider{
		name:       "discord",
		webhookURL: func(org *entities.Organization) string { return org.DiscordWebhookURL },
		enabled:    func(board *entities.Board) bool { return board.SendDiscordUpdates },
	}
}

func testOrg() *entities.Organization {
	return &entities.Organization{
		ID:                "org-1",
		Name:              "Acme",
		SlackWebhookURL:   "https://hooks.slack.test/T/B",
		DiscordWebhookURL: "https://discord.test/api/webhooks/1/t",
	}
}

func testBoard() *entities.Board {
	return &entities.Board{
		ID:                 "board-1",
		Name:               "Roadmap",
		OrganizationID:     "org-1",
		SendSlackUpdates:   true,
		SendDiscordUpdates: true,
	}
}

func testNote(content string) *entities.Note {
	return &entities.Note{
		ID:      "note-1",
		BoardID: "board-1",
		ChecklistItems: []*entities.ChecklistItem{
			{Content: content, Order: 0},
		},
	}
}

func testAuthor() *entities.User {
	return &entities.User{ID: "user-1", Name: "Alice", Email: "alice@acme.test"}
}

func TestDispatcherNoteCreated_SendsPerConfiguredProvider(t *testing.T) {
	repo := &mockNoteRepository{}
	repo.On("RecordDelivery", mock.Anything, "note-1", "slack", "msg-1").Return(nil)
	repo.On("RecordDelivery", mock.Anything, "note-1", "discord", "msg-1").Return(nil)

	slackFake := newSlackFake()
	discordFake := newDiscordFake()
	dispatcher := notify.NewDispatcher(repo, time.Second, slackFake, discordFake)

	dispatcher.NoteCreated(context.Background(), testOrg(), testBoard(), testNote("ship the release"), testAuthor())
	dispatcher.Wait()

	slackSends := slackFake.sentMessages()
	require.Len(t, slackSends, 1)
	payload := slackSends[0].(map[string]string)
	assert.Equal(t, "ship the release", payload["content"])
	assert.Equal(t, "Roadmap", payload["board"])
	assert.Equal(t, "Alice", payload["user"])
	assert.Equal(t, "added", payload["action"])

	require.Len(t, discordFake.sentMessages(), 1)
	repo.AssertExpectations(t)
}

func TestDispatcherNoteCreated_NoValidContent(t *testing.T) {
	repo := &mockNoteRepository{}
	slackFake := newSlackFake()
	dispatcher := notify.NewDispatcher(repo, time.Second, slackFake)

	note := &entities.Note{ID: "note-1", BoardID: "board-1"}
	dispatcher.NoteCreated(context.Background(), testOrg(), testBoard(), note, testAuthor())
	dispatcher.Wait()

	assert.Empty(t, slackFake.sentMessages())
	repo.AssertNotCalled(t, "RecordDelivery", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcherNoteCreated_DisabledProviderFlag(t *testing.T) {
	repo := &mockNoteRepository{}
	repo.On("RecordDelivery", mock.Anything, "note-1", "slack", "msg-1").Return(nil)

	slackFake := newSlackFake()
	discordFake := newDiscordFake()
	dispatcher := notify.NewDispatcher(repo, time.Second, slackFake, discordFake)

	board := testBoard()
	board.SendDiscordUpdates = false

	dispatcher.NoteCreated(context.Background(), testOrg(), board, testNote("task"), testAuthor())
	dispatcher.Wait()

	assert.Len(t, slackFake.sentMessages(), 1)
	assert.Empty(t, discordFake.sentMessages())
}

func TestDispatcherNoteCreated_MissingWebhookURL(t *testing.T) {
	repo := &mockNoteRepository{}
	repo.On("RecordDelivery", mock.Anything, "note-1", "discord", "msg-1").Return(nil)

	slackFake := newSlackFake()
	discordFake := newDiscordFake()
	dispatcher := notify.NewDispatcher(repo, time.Second, slackFake, discordFake)

	org := testOrg()
	org.SlackWebhookURL = ""

	dispatcher.NoteCreated(context.Background(), org, testBoard(), testNote("task"), testAuthor())
	dispatcher.Wait()

	assert.Empty(t, slackFake.sentMessages())
	assert.Len(t, discordFake.sentMessages(), 1)
}

func TestDispatcherNoteCreated_ProviderFailureIsIndependent(t *testing.T) {
	repo := &mockNoteRepository{}
	repo.On("RecordDelivery", mock.Anything, "note-1", "discord", "msg-1").Return(nil)

	slackFake := newSlackFake()
	slackFake.sendErr = errors.New("slack is down")
	discordFake := newDiscordFake()
	dispatcher := notify.NewDispatcher(repo, time.Second, slackFake, discordFake)

	dispatcher.NoteCreated(context.Background(), testOrg(), testBoard(), testNote("task"), testAuthor())
	dispatcher.Wait()

	assert.Empty(t, slackFake.sentMessages())
	assert.Len(t, discordFake.sentMessages(), 1)
	repo.AssertNotCalled(t, "RecordDelivery", mock.Anything, "note-1", "slack", mock.Anything)
}

func TestDispatcherNoteCreated_RecordDeliveryFailureIsSwallowed(t *testing.T) {
	repo := &mockNoteRepository{}
	repo.On("RecordDelivery", mock.Anything, "note-1", "slack", "msg-1").Return(errors.New("db write failed"))

	slackFake := newSlackFake()
	dispatcher := notify.NewDispatcher(repo, time.Second, slackFake)

	dispatcher.NoteCreated(context.Background(), testOrg(), testBoard(), testNote("task"), testAuthor())
	dispatcher.Wait()

	assert.Len(t, slackFake.sentMessages(), 1)
	repo.AssertExpectations(t)
}

func TestDispatcherTodoUpdated(t *testing.T) {
	repo := &mockNoteRepository{}
	slackFake := newSlackFake()
	dispatcher := notify.NewDispatcher(repo, time.Second, slackFake)

	dispatcher.TodoUpdated(context.Background(), testOrg(), testBoard(), testAuthor(), "finish the report", true)
	dispatcher.Wait()

	sends := slackFake.sentMessages()
	require.Len(t, sends, 1)
	payload := sends[0].(map[string]string)
	assert.Equal(t, "finish the report", payload["content"])
	assert.Equal(t, "completed", payload["action"])

	// Идентификатор доставки при обновлении не сохраняется.
	repo.AssertNotCalled(t, "RecordDelivery", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcherTodoUpdated_InvalidContent(t *testing.T) {
	repo := &mockNoteRepository{}
	slackFake := newSlackFake()
	dispatcher := notify.NewDispatcher(repo, time.Second, slackFake)

	dispatcher.TodoUpdated(context.Background(), testOrg(), testBoard(), testAuthor(), "   ", false)
	dispatcher.Wait()

	assert.Empty(t, slackFake.sentMessages())
}
