package service

import (
	"context"
	"fmt"

	"hireup-be/internal/constant"
	"hireup-be/internal/dto"
	"hireup-be/internal/entity"
	"hireup-be/internal/mapper"
	"hireup-be/internal/pkg/logger"
	"hireup-be/internal/repository/memory"
	"hireup-be/internal/repository/specification"
	"hireup-be/internal/repository/unitofwork"
	"hireup-be/pkg/events"
	pkgNats "hireup-be/pkg/nats"
	"hireup-be/pkg/ranking"

	"github.com/google/uuid"
)

type IRankingService interface {
	Rank(ctx context.Context, companyId uuid.UUID, req *dto.RankRequest) (*dto.RankResponse, error)
	Analyze(ctx context.Context, companyId uuid.UUID, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error)
}

type rankingService struct {
	uowFactory     unitofwork.RepositoryFactory
	provider       ranking.Provider
	fallback       *ranking.FallbackRanker
	cache          *memory.RankingCache
	eventPublisher *pkgNats.Publisher
	log            logger.ILogger
}

// NewRankingService builds the ranking workflow. provider may be nil when no
// remote provider is configured; the fallback ranker then serves everything.
func NewRankingService(
	uowFactory unitofwork.RepositoryFactory,
	provider ranking.Provider,
	cache *memory.RankingCache,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IRankingService {
	return &rankingService{
		uowFactory:     uowFactory,
		provider:       provider,
		fallback:       ranking.NewFallbackRanker(),
		cache:          cache,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *rankingService) Rank(ctx context.Context, companyId uuid.UUID, req *dto.RankRequest) (*dto.RankResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.JobRepository().FindOne(ctx,
		specification.ByID{ID: req.JobId},
		specification.ByCompanyID{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("%w: job %s", entity.ErrNotFound, req.JobId)
	}

	limit := constant.DefaultRankingLimit
	if req.Limit != nil {
		limit = *req.Limit
	} else if parsed := ranking.ParseLimit(req.Prompt, constant.DefaultRankingLimit, constant.MaxRankingLimit); parsed > 0 {
		limit = parsed
	}
	if limit > constant.MaxRankingLimit {
		limit = constant.MaxRankingLimit
	}

	applicants, err := uow.ApplicationRepository().ListApplicants(ctx, companyId, &req.JobId)
	if err != nil {
		return nil, err
	}
	if len(applicants) == 0 {
		return &dto.RankResponse{
			JobId:         req.JobId,
			Candidates:    []dto.RankedCandidateItem{},
			RankingSource: constant.RankingSourceNone,
			Limit:         limit,
		}, nil
	}

	ranked, source, rankingError, err := s.rankApplicants(ctx, job, applicants, req.Prompt, limit)
	if err != nil {
		return nil, err
	}

	// Truncation keeps the provider's order; it never re-sorts.
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	items := make([]dto.RankedCandidateItem, 0, len(ranked))
	for _, candidate := range ranked {
		items = append(items, mapper.RankedCandidateToItem(candidate))
	}

	s.publishRankingCompleted(ctx, companyId, job, source, len(items))

	return &dto.RankResponse{
		JobId:         req.JobId,
		Candidates:    items,
		RankingSource: source,
		RankingError:  rankingError,
		Limit:         limit,
	}, nil
}

// rankApplicants consults the remote provider first and degrades to the
// overlap ranker when it fails, recording the failure for the caller.
func (s *rankingService) rankApplicants(
	ctx context.Context,
	job *entity.Job,
	applicants []*entity.ApplicantView,
	prompt string,
	limit int,
) ([]entity.RankedCandidate, string, string, error) {
	if s.provider == nil {
		ranked, err := s.fallback.Rank(ctx, job, applicants, prompt)
		if err != nil {
			return nil, "", "", fmt.Errorf("%w: %v", entity.ErrProvider, err)
		}
		return ranked, constant.RankingSourceFallback, "", nil
	}

	if s.cache != nil {
		if cached, found := s.cache.Get(job.Id, prompt, limit); found {
			return cached, constant.RankingSourceOpenAI, "", nil
		}
	}

	ranked, err := s.provider.Rank(ctx, job, applicants, prompt)
	if err == nil {
		if s.cache != nil {
			s.cache.Set(job.Id, prompt, limit, ranked)
		}
		return ranked, constant.RankingSourceOpenAI, "", nil
	}

	s.log.Warn("ranking", "provider failed, using fallback ranker", map[string]interface{}{
		"job_id": job.Id,
		"error":  err.Error(),
	})

	ranked, fbErr := s.fallback.Rank(ctx, job, applicants, prompt)
	if fbErr != nil {
		return nil, "", "", fmt.Errorf("%w: %v", entity.ErrProvider, err)
	}
	return ranked, constant.RankingSourceFallback, err.Error(), nil
}

func (s *rankingService) Analyze(ctx context.Context, companyId uuid.UUID, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	mode := ranking.AnalysisMode(req.Mode)

	var job *entity.Job
	var jobId *uuid.UUID
	if mode == ranking.ModeJobSpecific {
		if req.JobId == nil {
			return nil, fmt.Errorf("%w: job-specific analysis requires a job id", entity.ErrNotFound)
		}
		var err error
		job, err = uow.JobRepository().FindOne(ctx,
			specification.ByID{ID: *req.JobId},
			specification.ByCompanyID{CompanyID: companyId},
		)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, fmt.Errorf("%w: job %s", entity.ErrNotFound, *req.JobId)
		}
		jobId = req.JobId
	}

	applicants, err := uow.ApplicationRepository().ListApplicants(ctx, companyId, jobId)
	if err != nil {
		return nil, err
	}

	if s.provider != nil {
		analysis, err := s.provider.AnalyzeSkills(ctx, mode, job, applicants, req.Prompt)
		if err == nil {
			return &dto.AnalyzeResponse{
				Mode:     req.Mode,
				Analysis: analysis,
				Source:   constant.RankingSourceOpenAI,
			}, nil
		}
		s.log.Warn("ranking", "provider analysis failed, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
	}

	analysis, err := s.fallback.AnalyzeSkills(ctx, mode, job, applicants, req.Prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrProvider, err)
	}
	return &dto.AnalyzeResponse{
		Mode:     req.Mode,
		Analysis: analysis,
		Source:   constant.RankingSourceFallback,
	}, nil
}

func (s *rankingService) publishRankingCompleted(ctx context.Context, companyId uuid.UUID, job *entity.Job, source string, count int) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.New(constant.EventRankingCompleted, map[string]interface{}{
		"company_id": companyId,
		"job_id":     job.Id,
		"job_title":  job.Title,
		"source":     source,
		"count":      count,
	})
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("ranking", "failed to publish event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
