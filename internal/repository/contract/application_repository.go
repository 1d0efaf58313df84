package contract

import (
	"context"

	"hireup-be/internal/entity"
	"hireup-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.Application) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateStatusFrom persists the transition atomically, guarded by the
	// expected source status. Returns false when the guard did not match,
	// meaning a concurrent transition already moved the record.
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, score *int) (bool, error)

	// ListApplicants joins applications with candidate profiles for one
	// company, optionally narrowed to a single job.
	ListApplicants(ctx context.Context, companyId uuid.UUID, jobId *uuid.UUID) ([]*entity.ApplicantView, error)

	// CountByStatus returns per-status application counts for a company.
	CountByStatus(ctx context.Context, companyId uuid.UUID) (map[string]int64, error)
}
