package unitofwork

import (
	"context"

	"hireup-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ApplicationRepository() contract.ApplicationRepository
	AgentMessageRepository() contract.AgentMessageRepository
	JobRepository() contract.JobRepository
	CandidateRepository() contract.CandidateRepository
	NotificationRepository() contract.NotificationRepository
}
