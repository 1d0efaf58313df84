package contract

import (
	"context"

	"hireup-be/internal/entity"
	"hireup-be/internal/repository/specification"
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate *entity.Candidate) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Candidate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Candidate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
