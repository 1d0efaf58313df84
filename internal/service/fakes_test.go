package service

import (
	"context"

	"hireup-be/internal/entity"
	"hireup-be/internal/repository/contract"
	"hireup-be/internal/repository/specification"
	"hireup-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUow struct {
	apps          *fakeApplicationRepo
	messages      *fakeAgentMessageRepo
	jobs          *fakeJobRepo
	candidates    *fakeCandidateRepo
	notifications *fakeNotificationRepo

	began, committed, rolledBack bool
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		apps:          &fakeApplicationRepo{},
		messages:      &fakeAgentMessageRepo{},
		jobs:          &fakeJobRepo{},
		candidates:    &fakeCandidateRepo{},
		notifications: &fakeNotificationRepo{},
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { u.began = true; return nil }
func (u *fakeUow) Commit() error                   { u.committed = true; return nil }
func (u *fakeUow) Rollback() error                 { u.rolledBack = true; return nil }

func (u *fakeUow) ApplicationRepository() contract.ApplicationRepository   { return u.apps }
func (u *fakeUow) AgentMessageRepository() contract.AgentMessageRepository { return u.messages }
func (u *fakeUow) JobRepository() contract.JobRepository                   { return u.jobs }
func (u *fakeUow) CandidateRepository() contract.CandidateRepository       { return u.candidates }
func (u *fakeUow) NotificationRepository() contract.NotificationRepository { return u.notifications }

type fakeApplicationRepo struct {
	createFn           func(ctx context.Context, application *entity.Application) error
	findOneFn          func(ctx context.Context, specs ...specification.Specification) (*entity.Application, error)
	countFn            func(ctx context.Context, specs ...specification.Specification) (int64, error)
	updateStatusFromFn func(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, score *int) (bool, error)
	listApplicantsFn   func(ctx context.Context, companyId uuid.UUID, jobId *uuid.UUID) ([]*entity.ApplicantView, error)
	countByStatusFn    func(ctx context.Context, companyId uuid.UUID) (map[string]int64, error)
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *entity.Application) error {
	if r.createFn != nil {
		return r.createFn(ctx, application)
	}
	return nil
}

func (r *fakeApplicationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
	if r.findOneFn != nil {
		return r.findOneFn(ctx, specs...)
	}
	return nil, nil
}

func (r *fakeApplicationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	return nil, nil
}

func (r *fakeApplicationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if r.countFn != nil {
		return r.countFn(ctx, specs...)
	}
	return 0, nil
}

func (r *fakeApplicationRepo) UpdateStatusFrom(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, score *int) (bool, error) {
	if r.updateStatusFromFn != nil {
		return r.updateStatusFromFn(ctx, id, fromStatus, toStatus, score)
	}
	return true, nil
}

func (r *fakeApplicationRepo) ListApplicants(ctx context.Context, companyId uuid.UUID, jobId *uuid.UUID) ([]*entity.ApplicantView, error) {
	if r.listApplicantsFn != nil {
		return r.listApplicantsFn(ctx, companyId, jobId)
	}
	return nil, nil
}

func (r *fakeApplicationRepo) CountByStatus(ctx context.Context, companyId uuid.UUID) (map[string]int64, error) {
	if r.countByStatusFn != nil {
		return r.countByStatusFn(ctx, companyId)
	}
	return map[string]int64{}, nil
}

type fakeAgentMessageRepo struct {
	createBatchFn        func(ctx context.Context, messages []*entity.AgentMessage) (int64, error)
	findAllFn            func(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentMessage, error)
	countFn              func(ctx context.Context, specs ...specification.Specification) (int64, error)
	deleteByChatFn       func(ctx context.Context, companyId uuid.UUID, chatId string) error
	deleteAllByCompanyFn func(ctx context.Context, companyId uuid.UUID) error
	listChatsFn          func(ctx context.Context, companyId uuid.UUID) ([]*entity.ChatSummary, error)
	latestChatIDFn       func(ctx context.Context, companyId uuid.UUID) (string, error)
}

func (r *fakeAgentMessageRepo) CreateBatch(ctx context.Context, messages []*entity.AgentMessage) (int64, error) {
	if r.createBatchFn != nil {
		return r.createBatchFn(ctx, messages)
	}
	return int64(len(messages)), nil
}

func (r *fakeAgentMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentMessage, error) {
	if r.findAllFn != nil {
		return r.findAllFn(ctx, specs...)
	}
	return nil, nil
}

func (r *fakeAgentMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if r.countFn != nil {
		return r.countFn(ctx, specs...)
	}
	return 0, nil
}

func (r *fakeAgentMessageRepo) DeleteByChat(ctx context.Context, companyId uuid.UUID, chatId string) error {
	if r.deleteByChatFn != nil {
		return r.deleteByChatFn(ctx, companyId, chatId)
	}
	return nil
}

func (r *fakeAgentMessageRepo) DeleteAllByCompany(ctx context.Context, companyId uuid.UUID) error {
	if r.deleteAllByCompanyFn != nil {
		return r.deleteAllByCompanyFn(ctx, companyId)
	}
	return nil
}

func (r *fakeAgentMessageRepo) ListChats(ctx context.Context, companyId uuid.UUID) ([]*entity.ChatSummary, error) {
	if r.listChatsFn != nil {
		return r.listChatsFn(ctx, companyId)
	}
	return nil, nil
}

func (r *fakeAgentMessageRepo) LatestChatID(ctx context.Context, companyId uuid.UUID) (string, error) {
	if r.latestChatIDFn != nil {
		return r.latestChatIDFn(ctx, companyId)
	}
	return "", nil
}

type fakeJobRepo struct {
	findOneFn func(ctx context.Context, specs ...specification.Specification) (*entity.Job, error)
	countFn   func(ctx context.Context, specs ...specification.Specification) (int64, error)
}

func (r *fakeJobRepo) Create(ctx context.Context, job *entity.Job) error { return nil }

func (r *fakeJobRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Job, error) {
	if r.findOneFn != nil {
		return r.findOneFn(ctx, specs...)
	}
	return nil, nil
}

func (r *fakeJobRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Job, error) {
	return nil, nil
}

func (r *fakeJobRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if r.countFn != nil {
		return r.countFn(ctx, specs...)
	}
	return 0, nil
}

type fakeCandidateRepo struct {
	findOneFn func(ctx context.Context, specs ...specification.Specification) (*entity.Candidate, error)
}

func (r *fakeCandidateRepo) Create(ctx context.Context, candidate *entity.Candidate) error { return nil }

func (r *fakeCandidateRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Candidate, error) {
	if r.findOneFn != nil {
		return r.findOneFn(ctx, specs...)
	}
	return nil, nil
}

func (r *fakeCandidateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Candidate, error) {
	return nil, nil
}

func (r *fakeCandidateRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeNotificationRepo struct {
	createFn      func(ctx context.Context, notification *entity.Notification) error
	countUnreadFn func(ctx context.Context, companyId uuid.UUID) (int64, error)
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	if r.createFn != nil {
		return r.createFn(ctx, notification)
	}
	return nil
}

func (r *fakeNotificationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error) {
	return nil, nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, companyId uuid.UUID) (int64, error) {
	if r.countUnreadFn != nil {
		return r.countUnreadFn(ctx, companyId)
	}
	return 0, nil
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, companyId uuid.UUID) error {
	return nil
}
