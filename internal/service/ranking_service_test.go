package service

import (
	"context"
	"errors"
	"testing"

	"hireup-be/internal/constant"
	"hireup-be/internal/dto"
	"hireup-be/internal/entity"
	"hireup-be/internal/repository/specification"
	"hireup-be/pkg/ranking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	ranked  []entity.RankedCandidate
	rankErr error

	analysis   string
	analyzeErr error
}

func (p *stubProvider) Rank(ctx context.Context, job *entity.Job, applicants []*entity.ApplicantView, prompt string) ([]entity.RankedCandidate, error) {
	return p.ranked, p.rankErr
}

func (p *stubProvider) AnalyzeSkills(ctx context.Context, mode ranking.AnalysisMode, job *entity.Job, applicants []*entity.ApplicantView, prompt string) (string, error) {
	return p.analysis, p.analyzeErr
}

func rankingFixture(companyId, jobId uuid.UUID, applicantCount int) *fakeUow {
	uow := newFakeUow()
	uow.jobs.findOneFn = func(ctx context.Context, specs ...specification.Specification) (*entity.Job, error) {
		return &entity.Job{Id: jobId, CompanyId: companyId, Title: "Backend Engineer", Skills: []string{"go"}}, nil
	}
	uow.apps.listApplicantsFn = func(ctx context.Context, cid uuid.UUID, jid *uuid.UUID) ([]*entity.ApplicantView, error) {
		applicants := make([]*entity.ApplicantView, 0, applicantCount)
		for i := 0; i < applicantCount; i++ {
			applicants = append(applicants, &entity.ApplicantView{
				UserId:   uuid.New(),
				UserName: "Applicant",
				Skills:   []string{"go"},
			})
		}
		return applicants, nil
	}
	return uow
}

func rankedList(n int) []entity.RankedCandidate {
	out := make([]entity.RankedCandidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.RankedCandidate{
			UserId: uuid.New(),
			Score:  float64(100 - i),
		})
	}
	return out
}

func TestRankTruncatesPreservingOrder(t *testing.T) {
	companyId := uuid.New()
	jobId := uuid.New()
	uow := rankingFixture(companyId, jobId, 5)

	provider := &stubProvider{ranked: rankedList(5)}
	svc := NewRankingService(&fakeUowFactory{uow: uow}, provider, nil, nil, nopLogger{})

	res, err := svc.Rank(context.Background(), companyId, &dto.RankRequest{
		JobId:  jobId,
		Prompt: "rank everyone",
		Limit:  intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, constant.RankingSourceOpenAI, res.RankingSource)
	assert.Empty(t, res.RankingError)
	require.Len(t, res.Candidates, 3)
	for i, candidate := range res.Candidates {
		assert.Equal(t, provider.ranked[i].UserId.String(), candidate.UserId)
	}
}

func TestRankLimitFromPrompt(t *testing.T) {
	companyId := uuid.New()
	jobId := uuid.New()
	uow := rankingFixture(companyId, jobId, 5)

	provider := &stubProvider{ranked: rankedList(5)}
	svc := NewRankingService(&fakeUowFactory{uow: uow}, provider, nil, nil, nopLogger{})

	res, err := svc.Rank(context.Background(), companyId, &dto.RankRequest{
		JobId:  jobId,
		Prompt: "show me the top 2 candidates",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Limit)
	assert.Len(t, res.Candidates, 2)
}

func TestRankFallsBackOnProviderError(t *testing.T) {
	companyId := uuid.New()
	jobId := uuid.New()
	uow := rankingFixture(companyId, jobId, 2)

	provider := &stubProvider{rankErr: errors.New("upstream 500")}
	svc := NewRankingService(&fakeUowFactory{uow: uow}, provider, nil, nil, nopLogger{})

	res, err := svc.Rank(context.Background(), companyId, &dto.RankRequest{
		JobId:  jobId,
		Prompt: "rank everyone",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.RankingSourceFallback, res.RankingSource)
	assert.Equal(t, "upstream 500", res.RankingError)
	assert.Len(t, res.Candidates, 2)
}

func TestRankWithoutProviderUsesFallback(t *testing.T) {
	companyId := uuid.New()
	jobId := uuid.New()
	uow := rankingFixture(companyId, jobId, 2)

	svc := NewRankingService(&fakeUowFactory{uow: uow}, nil, nil, nil, nopLogger{})

	res, err := svc.Rank(context.Background(), companyId, &dto.RankRequest{
		JobId:  jobId,
		Prompt: "rank everyone",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.RankingSourceFallback, res.RankingSource)
	assert.Empty(t, res.RankingError)
}

func TestRankNoApplicants(t *testing.T) {
	companyId := uuid.New()
	jobId := uuid.New()
	uow := rankingFixture(companyId, jobId, 0)

	svc := NewRankingService(&fakeUowFactory{uow: uow}, &stubProvider{}, nil, nil, nopLogger{})

	res, err := svc.Rank(context.Background(), companyId, &dto.RankRequest{
		JobId:  jobId,
		Prompt: "rank everyone",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.RankingSourceNone, res.RankingSource)
	assert.Empty(t, res.Candidates)
}

func TestRankUnknownJob(t *testing.T) {
	uow := newFakeUow() // job FindOne returns nil

	svc := NewRankingService(&fakeUowFactory{uow: uow}, &stubProvider{}, nil, nil, nopLogger{})

	_, err := svc.Rank(context.Background(), uuid.New(), &dto.RankRequest{
		JobId:  uuid.New(),
		Prompt: "rank everyone",
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAnalyzeJobSpecificRequiresJob(t *testing.T) {
	uow := newFakeUow()

	svc := NewRankingService(&fakeUowFactory{uow: uow}, nil, nil, nil, nopLogger{})

	_, err := svc.Analyze(context.Background(), uuid.New(), &dto.AnalyzeRequest{
		Mode:   string(ranking.ModeJobSpecific),
		Prompt: "how do my applicants fit?",
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAnalyzeFallsBackOnProviderError(t *testing.T) {
	companyId := uuid.New()
	uow := rankingFixture(companyId, uuid.New(), 2)

	provider := &stubProvider{analyzeErr: errors.New("timeout")}
	svc := NewRankingService(&fakeUowFactory{uow: uow}, provider, nil, nil, nopLogger{})

	res, err := svc.Analyze(context.Background(), companyId, &dto.AnalyzeRequest{
		Mode:   string(ranking.ModeGeneral),
		Prompt: "summarize skills",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.RankingSourceFallback, res.Source)
	assert.NotEmpty(t, res.Analysis)
}
