package service

import (
	"context"
	"testing"

	"hireup-be/internal/constant"
	"hireup-be/internal/dto"
	"hireup-be/internal/entity"
	"hireup-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAppendMessagesRunsInTransaction(t *testing.T) {
	companyId := uuid.New()

	uow := newFakeUow()
	var gotBatch []*entity.AgentMessage
	uow.messages.createBatchFn = func(ctx context.Context, messages []*entity.AgentMessage) (int64, error) {
		gotBatch = messages
		return int64(len(messages)), nil
	}

	svc := NewAgentService(&fakeUowFactory{uow: uow}, nopLogger{})

	res, err := svc.AppendMessages(context.Background(), companyId, &dto.AppendMessagesRequest{
		ChatId: "chat-1",
		Messages: []dto.AgentMessageItem{
			{Id: uuid.New(), Role: constant.ChatRoleUser, Content: "who fits this role?"},
			{Id: uuid.New(), Role: constant.ChatRoleAssistant, Content: "here are the top matches"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Appended)

	assert.True(t, uow.began)
	assert.True(t, uow.committed)
	assert.False(t, uow.rolledBack)

	require.Len(t, gotBatch, 2)
	assert.Equal(t, companyId, gotBatch[0].CompanyId)
	assert.Equal(t, "chat-1", gotBatch[0].ChatId)
	// Batch order must survive a created_at sort.
	assert.True(t, gotBatch[0].CreatedAt.Before(gotBatch[1].CreatedAt))
}

func TestAppendMessagesRetryReportsZero(t *testing.T) {
	uow := newFakeUow()
	uow.messages.createBatchFn = func(ctx context.Context, messages []*entity.AgentMessage) (int64, error) {
		return 0, nil // every id already present
	}

	svc := NewAgentService(&fakeUowFactory{uow: uow}, nopLogger{})

	res, err := svc.AppendMessages(context.Background(), uuid.New(), &dto.AppendMessagesRequest{
		ChatId: "chat-1",
		Messages: []dto.AgentMessageItem{
			{Id: uuid.New(), Role: constant.ChatRoleUser, Content: "again"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Appended)
}

func TestGetMessagesResolvesLatestChat(t *testing.T) {
	companyId := uuid.New()

	uow := newFakeUow()
	uow.messages.latestChatIDFn = func(ctx context.Context, id uuid.UUID) (string, error) {
		return "chat-latest", nil
	}
	uow.messages.findAllFn = func(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentMessage, error) {
		return []*entity.AgentMessage{
			{Id: uuid.New(), ChatId: "chat-latest", Role: constant.ChatRoleUser, Content: "hello"},
		}, nil
	}

	svc := NewAgentService(&fakeUowFactory{uow: uow}, nopLogger{})

	res, err := svc.GetMessages(context.Background(), companyId, nil)
	require.NoError(t, err)
	assert.Equal(t, "chat-latest", res.ChatId)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "hello", res.Messages[0].Content)
}

func TestGetMessagesNoHistory(t *testing.T) {
	uow := newFakeUow()

	svc := NewAgentService(&fakeUowFactory{uow: uow}, nopLogger{})

	res, err := svc.GetMessages(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.ChatId)
	assert.Empty(t, res.Messages)
}

func TestClearChatSingleSession(t *testing.T) {
	companyId := uuid.New()

	uow := newFakeUow()
	uow.messages.countFn = func(ctx context.Context, specs ...specification.Specification) (int64, error) {
		return 3, nil
	}
	var deletedChat string
	uow.messages.deleteByChatFn = func(ctx context.Context, id uuid.UUID, chatId string) error {
		deletedChat = chatId
		return nil
	}

	svc := NewAgentService(&fakeUowFactory{uow: uow}, nopLogger{})

	res, err := svc.ClearChat(context.Background(), companyId, strPtr("chat-1"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Cleared)
	assert.Equal(t, "chat-1", deletedChat)
}

func TestClearChatAllSessions(t *testing.T) {
	companyId := uuid.New()

	uow := newFakeUow()
	uow.messages.countFn = func(ctx context.Context, specs ...specification.Specification) (int64, error) {
		return 7, nil
	}
	allDeleted := false
	uow.messages.deleteAllByCompanyFn = func(ctx context.Context, id uuid.UUID) error {
		allDeleted = true
		return nil
	}

	svc := NewAgentService(&fakeUowFactory{uow: uow}, nopLogger{})

	res, err := svc.ClearChat(context.Background(), companyId, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Cleared)
	assert.True(t, allDeleted)
}

func TestListChatsMapsSummaries(t *testing.T) {
	uow := newFakeUow()
	uow.messages.listChatsFn = func(ctx context.Context, companyId uuid.UUID) ([]*entity.ChatSummary, error) {
		return []*entity.ChatSummary{
			{ChatId: "chat-2", MessageCount: 4, LastMessage: "newest"},
			{ChatId: "chat-1", MessageCount: 2, LastMessage: "older"},
		}, nil
	}

	svc := NewAgentService(&fakeUowFactory{uow: uow}, nopLogger{})

	res, err := svc.ListChats(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "chat-2", res[0].ChatId)
	assert.Equal(t, int64(4), res[0].MessageCount)
	assert.Equal(t, "newest", res[0].LastMessage)
}
