package ranking

import (
	"context"

	"hireup-be/internal/entity"
)

type AnalysisMode string

const (
	ModeGeneral     AnalysisMode = "general"
	ModeJobSpecific AnalysisMode = "job_specific"
)

// Provider scores applicants against a job on behalf of a recruiter prompt.
// Implementations own their transport; callers only see ranked candidates.
type Provider interface {
	Rank(ctx context.Context, job *entity.Job, applicants []*entity.ApplicantView, prompt string) ([]entity.RankedCandidate, error)
	AnalyzeSkills(ctx context.Context, mode AnalysisMode, job *entity.Job, applicants []*entity.ApplicantView, prompt string) (string, error)
}
