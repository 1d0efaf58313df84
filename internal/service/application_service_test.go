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

func intPtr(n int) *int { return &n }

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		score   *int
		wantErr error
	}{
		{"submitted to in_progress", constant.StatusSubmitted, constant.StatusInProgress, nil, nil},
		{"submitted to rejected_pre", constant.StatusSubmitted, constant.StatusRejectedPre, nil, nil},
		{"in_progress to offer with score", constant.StatusInProgress, constant.StatusOffer, intPtr(7), nil},
		{"in_progress to rejected_post with score", constant.StatusInProgress, constant.StatusRejectedPost, intPtr(3), nil},
		{"offer boundary low", constant.StatusInProgress, constant.StatusOffer, intPtr(1), nil},
		{"offer boundary high", constant.StatusInProgress, constant.StatusOffer, intPtr(10), nil},

		{"submitted straight to offer", constant.StatusSubmitted, constant.StatusOffer, intPtr(7), entity.ErrInvalidTransition},
		{"submitted straight to rejected_post", constant.StatusSubmitted, constant.StatusRejectedPost, intPtr(7), entity.ErrInvalidTransition},
		{"offer is terminal", constant.StatusOffer, constant.StatusInProgress, nil, entity.ErrInvalidTransition},
		{"rejected_pre is terminal", constant.StatusRejectedPre, constant.StatusInProgress, nil, entity.ErrInvalidTransition},
		{"rejected_post is terminal", constant.StatusRejectedPost, constant.StatusOffer, intPtr(7), entity.ErrInvalidTransition},
		{"unknown source status", "archived", constant.StatusInProgress, nil, entity.ErrInvalidTransition},
		{"self transition", constant.StatusInProgress, constant.StatusInProgress, nil, entity.ErrInvalidTransition},

		{"offer without score", constant.StatusInProgress, constant.StatusOffer, nil, entity.ErrInvalidScore},
		{"rejected_post without score", constant.StatusInProgress, constant.StatusRejectedPost, nil, entity.ErrInvalidScore},
		{"score below range", constant.StatusInProgress, constant.StatusOffer, intPtr(0), entity.ErrInvalidScore},
		{"score above range", constant.StatusInProgress, constant.StatusOffer, intPtr(11), entity.ErrInvalidScore},
		{"score on non-scored status", constant.StatusSubmitted, constant.StatusInProgress, intPtr(5), entity.ErrInvalidScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTransition(tt.from, tt.to, tt.score)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func newApplicationServiceForTest(uow *fakeUow) IApplicationService {
	return NewApplicationService(&fakeUowFactory{uow: uow}, nil, nil, nil, nopLogger{})
}

func TestUpdateStatusHappyPath(t *testing.T) {
	companyId := uuid.New()
	applicationId := uuid.New()
	jobId := uuid.New()

	uow := newFakeUow()
	uow.apps.findOneFn = func(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
		return &entity.Application{Id: applicationId, JobId: jobId, Status: constant.StatusInProgress}, nil
	}
	uow.jobs.findOneFn = func(ctx context.Context, specs ...specification.Specification) (*entity.Job, error) {
		return &entity.Job{Id: jobId, CompanyId: companyId, Title: "Backend Engineer"}, nil
	}

	var gotFrom, gotTo string
	var gotScore *int
	uow.apps.updateStatusFromFn = func(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, score *int) (bool, error) {
		gotFrom, gotTo, gotScore = fromStatus, toStatus, score
		return true, nil
	}

	svc := newApplicationServiceForTest(uow)

	res, err := svc.UpdateStatus(context.Background(), companyId, &dto.UpdateStatusRequest{
		Id:             applicationId,
		Status:         constant.StatusOffer,
		TechnicalScore: intPtr(8),
	})
	require.NoError(t, err)
	assert.Equal(t, constant.StatusOffer, res.Status)
	require.NotNil(t, res.TechnicalScore)
	assert.Equal(t, 8, *res.TechnicalScore)

	assert.Equal(t, constant.StatusInProgress, gotFrom)
	assert.Equal(t, constant.StatusOffer, gotTo)
	require.NotNil(t, gotScore)
	assert.Equal(t, 8, *gotScore)
}

func TestUpdateStatusConcurrentConflict(t *testing.T) {
	companyId := uuid.New()
	jobId := uuid.New()

	uow := newFakeUow()
	uow.apps.findOneFn = func(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
		return &entity.Application{Id: uuid.New(), JobId: jobId, Status: constant.StatusSubmitted}, nil
	}
	uow.jobs.findOneFn = func(ctx context.Context, specs ...specification.Specification) (*entity.Job, error) {
		return &entity.Job{Id: jobId, CompanyId: companyId}, nil
	}
	// The guarded update misses: another transition already landed.
	uow.apps.updateStatusFromFn = func(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, score *int) (bool, error) {
		return false, nil
	}

	svc := newApplicationServiceForTest(uow)

	_, err := svc.UpdateStatus(context.Background(), companyId, &dto.UpdateStatusRequest{
		Id:     uuid.New(),
		Status: constant.StatusInProgress,
	})
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestUpdateStatusStaleExpectedStatus(t *testing.T) {
	companyId := uuid.New()
	jobId := uuid.New()

	uow := newFakeUow()
	uow.apps.findOneFn = func(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
		return &entity.Application{Id: uuid.New(), JobId: jobId, Status: constant.StatusOffer}, nil
	}
	uow.jobs.findOneFn = func(ctx context.Context, specs ...specification.Specification) (*entity.Job, error) {
		return &entity.Job{Id: jobId, CompanyId: companyId}, nil
	}
	uow.apps.updateStatusFromFn = func(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, score *int) (bool, error) {
		// Row status is "offer" so the guard on "in_progress" misses.
		return fromStatus == constant.StatusOffer, nil
	}

	svc := newApplicationServiceForTest(uow)

	// Caller still believes the application is in progress; validation runs
	// against that expectation, then the guarded update reports the miss.
	_, err := svc.UpdateStatus(context.Background(), companyId, &dto.UpdateStatusRequest{
		Id:             uuid.New(),
		Status:         constant.StatusRejectedPost,
		TechnicalScore: intPtr(2),
		ExpectedStatus: constant.StatusInProgress,
	})
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestUpdateStatusUnknownApplication(t *testing.T) {
	uow := newFakeUow()

	svc := newApplicationServiceForTest(uow)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), &dto.UpdateStatusRequest{
		Id:     uuid.New(),
		Status: constant.StatusInProgress,
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateStatusForeignCompany(t *testing.T) {
	jobId := uuid.New()

	uow := newFakeUow()
	uow.apps.findOneFn = func(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
		return &entity.Application{Id: uuid.New(), JobId: jobId, Status: constant.StatusSubmitted}, nil
	}
	uow.jobs.findOneFn = func(ctx context.Context, specs ...specification.Specification) (*entity.Job, error) {
		return &entity.Job{Id: jobId, CompanyId: uuid.New()}, nil
	}

	svc := newApplicationServiceForTest(uow)

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), &dto.UpdateStatusRequest{
		Id:     uuid.New(),
		Status: constant.StatusInProgress,
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestApplyRejectsDuplicate(t *testing.T) {
	jobId := uuid.New()

	uow := newFakeUow()
	uow.jobs.findOneFn = func(ctx context.Context, specs ...specification.Specification) (*entity.Job, error) {
		return &entity.Job{Id: jobId, CompanyId: uuid.New(), Status: entity.JobStatusOpen}, nil
	}
	uow.apps.countFn = func(ctx context.Context, specs ...specification.Specification) (int64, error) {
		return 1, nil
	}

	svc := newApplicationServiceForTest(uow)

	_, err := svc.Apply(context.Background(), uuid.New(), &dto.ApplyRequest{JobId: jobId})
	assert.ErrorIs(t, err, entity.ErrDuplicateApply)
}

func TestApplyRejectsClosedJob(t *testing.T) {
	jobId := uuid.New()

	uow := newFakeUow()
	uow.jobs.findOneFn = func(ctx context.Context, specs ...specification.Specification) (*entity.Job, error) {
		return &entity.Job{Id: jobId, Status: entity.JobStatusClosed}, nil
	}

	svc := newApplicationServiceForTest(uow)

	_, err := svc.Apply(context.Background(), uuid.New(), &dto.ApplyRequest{JobId: jobId})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestApplyCreatesSubmitted(t *testing.T) {
	jobId := uuid.New()
	userId := uuid.New()

	uow := newFakeUow()
	uow.jobs.findOneFn = func(ctx context.Context, specs ...specification.Specification) (*entity.Job, error) {
		return &entity.Job{Id: jobId, CompanyId: uuid.New(), Title: "Backend Engineer", Status: entity.JobStatusOpen}, nil
	}
	var created *entity.Application
	uow.apps.createFn = func(ctx context.Context, application *entity.Application) error {
		created = application
		return nil
	}

	svc := newApplicationServiceForTest(uow)

	res, err := svc.Apply(context.Background(), userId, &dto.ApplyRequest{JobId: jobId})
	require.NoError(t, err)
	assert.Equal(t, constant.StatusSubmitted, res.Status)
	require.NotNil(t, created)
	assert.Equal(t, userId, created.UserId)
	assert.Nil(t, created.TechnicalScore)
}
