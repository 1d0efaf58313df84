package contract

import (
	"context"

	"hireup-be/internal/entity"
	"hireup-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AgentMessageRepository interface {
	// CreateBatch inserts the batch in caller order, skipping message ids
	// already present so retries never duplicate. Returns rows inserted.
	CreateBatch(ctx context.Context, messages []*entity.AgentMessage) (int64, error)

	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	DeleteByChat(ctx context.Context, companyId uuid.UUID, chatId string) error
	DeleteAllByCompany(ctx context.Context, companyId uuid.UUID) error

	// ListChats derives session summaries from persisted messages, most
	// recently active first. Chats with no messages never appear.
	ListChats(ctx context.Context, companyId uuid.UUID) ([]*entity.ChatSummary, error)

	// LatestChatID resolves the most recently active chat id for a company,
	// or "" when the company has no persisted messages.
	LatestChatID(ctx context.Context, companyId uuid.UUID) (string, error)
}
