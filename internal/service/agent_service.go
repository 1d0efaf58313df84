package service

import (
	"context"
	"time"

	"hireup-be/internal/dto"
	"hireup-be/internal/entity"
	"hireup-be/internal/mapper"
	"hireup-be/internal/pkg/logger"
	"hireup-be/internal/repository/specification"
	"hireup-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAgentService interface {
	AppendMessages(ctx context.Context, companyId uuid.UUID, req *dto.AppendMessagesRequest) (*dto.AppendMessagesResponse, error)
	GetMessages(ctx context.Context, companyId uuid.UUID, chatId *string) (*dto.GetMessagesResponse, error)
	ListChats(ctx context.Context, companyId uuid.UUID) ([]*dto.ChatSummaryResponse, error)
	ClearChat(ctx context.Context, companyId uuid.UUID, chatId *string) (*dto.ClearChatResponse, error)
}

type agentService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewAgentService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAgentService {
	return &agentService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *agentService) AppendMessages(ctx context.Context, companyId uuid.UUID, req *dto.AppendMessagesRequest) (*dto.AppendMessagesResponse, error) {
	messages := make([]*entity.AgentMessage, 0, len(req.Messages))
	now := time.Now()
	for i, item := range req.Messages {
		candidates := make([]entity.RankedCandidate, 0, len(item.Candidates))
		for _, candidate := range item.Candidates {
			userId, err := uuid.Parse(candidate.UserId)
			if err != nil {
				userId = uuid.Nil
			}
			candidates = append(candidates, entity.RankedCandidate{
				UserId:    userId,
				Name:      candidate.Name,
				Skills:    candidate.Skills,
				Score:     candidate.Score,
				Reasoning: candidate.Reasoning,
			})
		}
		// Nudge timestamps so batch order survives an ORDER BY created_at.
		messages = append(messages, &entity.AgentMessage{
			Id:            item.Id,
			CompanyId:     companyId,
			ChatId:        req.ChatId,
			Role:          item.Role,
			Content:       item.Content,
			Candidates:    candidates,
			RankingSource: item.RankingSource,
			CreatedAt:     now.Add(time.Duration(i) * time.Microsecond),
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	appended, err := uow.AgentMessageRepository().CreateBatch(ctx, messages)
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.AppendMessagesResponse{
		ChatId:   req.ChatId,
		Appended: appended,
	}, nil
}

func (s *agentService) GetMessages(ctx context.Context, companyId uuid.UUID, chatId *string) (*dto.GetMessagesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	resolvedChatId := ""
	if chatId != nil && *chatId != "" {
		resolvedChatId = *chatId
	} else {
		// No chat requested: fall back to the most recently active one.
		latest, err := uow.AgentMessageRepository().LatestChatID(ctx, companyId)
		if err != nil {
			return nil, err
		}
		resolvedChatId = latest
	}

	if resolvedChatId == "" {
		return &dto.GetMessagesResponse{Messages: []dto.AgentMessageItem{}}, nil
	}

	messages, err := uow.AgentMessageRepository().FindAll(ctx,
		specification.ByCompanyID{CompanyID: companyId},
		specification.ByChatID{ChatID: resolvedChatId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AgentMessageItem, 0, len(messages))
	for _, msg := range messages {
		items = append(items, mapper.MessageToItem(msg))
	}

	return &dto.GetMessagesResponse{
		ChatId:   resolvedChatId,
		Messages: items,
	}, nil
}

func (s *agentService) ListChats(ctx context.Context, companyId uuid.UUID) ([]*dto.ChatSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	summaries, err := uow.AgentMessageRepository().ListChats(ctx, companyId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ChatSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		res = append(res, &dto.ChatSummaryResponse{
			ChatId:       summary.ChatId,
			UpdatedAt:    summary.UpdatedAt,
			MessageCount: int64(summary.MessageCount),
			LastMessage:  summary.LastMessage,
		})
	}
	return res, nil
}

func (s *agentService) ClearChat(ctx context.Context, companyId uuid.UUID, chatId *string) (*dto.ClearChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.ByCompanyID{CompanyID: companyId}}
	if chatId != nil && *chatId != "" {
		specs = append(specs, specification.ByChatID{ChatID: *chatId})
	}

	// Count first so the caller learns how much history went away. Clearing
	// a chat that was never written is a no-op, not an error.
	count, err := uow.AgentMessageRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	if chatId != nil && *chatId != "" {
		err = uow.AgentMessageRepository().DeleteByChat(ctx, companyId, *chatId)
	} else {
		err = uow.AgentMessageRepository().DeleteAllByCompany(ctx, companyId)
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("agent", "chat session cleared", map[string]interface{}{
		"company_id": companyId,
		"cleared":    count,
	})

	return &dto.ClearChatResponse{Cleared: count}, nil
}
