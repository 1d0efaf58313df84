package implementation

import (
	"context"
	"errors"
	"time"

	"hireup-be/internal/entity"
	"hireup-be/internal/mapper"
	"hireup-be/internal/model"
	"hireup-be/internal/repository/contract"
	"hireup-be/internal/repository/scope"
	"hireup-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AgentMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AgentMapper
}

func NewAgentMessageRepository(db *gorm.DB) contract.AgentMessageRepository {
	return &AgentMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewAgentMapper(),
	}
}

func (r *AgentMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AgentMessageRepositoryImpl) CreateBatch(ctx context.Context, messages []*entity.AgentMessage) (int64, error) {
	if len(messages) == 0 {
		return 0, nil
	}

	models := r.mapper.MessagesToModels(messages)

	// DO NOTHING on id conflicts keeps re-submitted batches idempotent while
	// the surrounding transaction keeps the batch all-or-nothing.
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(&models)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *AgentMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentMessage, error) {
	var models []*model.AgentMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}

func (r *AgentMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AgentMessage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AgentMessageRepositoryImpl) DeleteByChat(ctx context.Context, companyId uuid.UUID, chatId string) error {
	return r.db.WithContext(ctx).
		Where("company_id = ? AND chat_id = ?", companyId, chatId).
		Delete(&model.AgentMessage{}).Error
}

func (r *AgentMessageRepositoryImpl) DeleteAllByCompany(ctx context.Context, companyId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("company_id = ?", companyId).
		Delete(&model.AgentMessage{}).Error
}

type chatSummaryRow struct {
	ChatId       string
	UpdatedAt    time.Time
	MessageCount int
}

func (r *AgentMessageRepositoryImpl) ListChats(ctx context.Context, companyId uuid.UUID) ([]*entity.ChatSummary, error) {
	var rows []chatSummaryRow
	err := r.db.WithContext(ctx).
		Table("agent_messages").
		Select("chat_id, MAX(created_at) AS updated_at, COUNT(*) AS message_count").
		Where("company_id = ?", companyId).
		Group("chat_id").
		Order("updated_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []*entity.ChatSummary{}, nil
	}

	// Latest message content per chat, one row per chat_id.
	var latest []struct {
		ChatId  string
		Content string
	}
	err = r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (chat_id) chat_id, content
			FROM agent_messages
			WHERE company_id = ?
			ORDER BY chat_id, created_at DESC`, companyId).
		Scan(&latest).Error
	if err != nil {
		return nil, err
	}
	lastByChat := make(map[string]string, len(latest))
	for _, row := range latest {
		lastByChat[row.ChatId] = row.Content
	}

	summaries := make([]*entity.ChatSummary, len(rows))
	for i, row := range rows {
		summaries[i] = &entity.ChatSummary{
			ChatId:       row.ChatId,
			UpdatedAt:    row.UpdatedAt,
			MessageCount: row.MessageCount,
			LastMessage:  lastByChat[row.ChatId],
		}
	}
	return summaries, nil
}

func (r *AgentMessageRepositoryImpl) LatestChatID(ctx context.Context, companyId uuid.UUID) (string, error) {
	var m model.AgentMessage
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyId).
		Scopes(scope.OrderByCreatedDesc).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return m.ChatId, nil
}
