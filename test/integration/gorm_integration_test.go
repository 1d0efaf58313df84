package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"hireup-be/internal/constant"
	"hireup-be/internal/entity"
	"hireup-be/internal/repository/specification"
	"hireup-be/internal/repository/unitofwork"
	"hireup-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ApplicationRepository())
	assert.NotNil(t, uow.AgentMessageRepository())
	assert.NotNil(t, uow.JobRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Application Repository", func(t *testing.T) {
		count, err := uow.ApplicationRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Application count: %d", count)
	})

	t.Run("Check Agent Message Repository", func(t *testing.T) {
		count, err := uow.AgentMessageRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Agent message count: %d", count)
	})

	t.Run("Transition guard holds under stale status", func(t *testing.T) {
		ctx := context.Background()

		companyId := uuid.New()
		job := &entity.Job{
			Id:        uuid.New(),
			CompanyId: companyId,
			Title:     "Integration Test Job",
			Skills:    []string{"go"},
			Status:    entity.JobStatusOpen,
		}
		require.NoError(t, uow.JobRepository().Create(ctx, job))

		application := &entity.Application{
			Id:     uuid.New(),
			UserId: uuid.New(),
			JobId:  job.Id,
			Status: constant.StatusSubmitted,
		}
		require.NoError(t, uow.ApplicationRepository().Create(ctx, application))

		ok, err := uow.ApplicationRepository().UpdateStatusFrom(ctx,
			application.Id, constant.StatusSubmitted, constant.StatusInProgress, nil)
		require.NoError(t, err)
		assert.True(t, ok)

		// Second writer still believes the application is submitted.
		ok, err = uow.ApplicationRepository().UpdateStatusFrom(ctx,
			application.Id, constant.StatusSubmitted, constant.StatusRejectedPre, nil)
		require.NoError(t, err)
		assert.False(t, ok)

		fresh, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: application.Id})
		require.NoError(t, err)
		require.NotNil(t, fresh)
		assert.Equal(t, constant.StatusInProgress, fresh.Status)
	})

	t.Run("Batch append is idempotent", func(t *testing.T) {
		ctx := context.Background()

		companyId := uuid.New()
		messages := []*entity.AgentMessage{
			{Id: uuid.New(), CompanyId: companyId, ChatId: "chat-1", Role: constant.ChatRoleUser, Content: "rank my applicants"},
			{Id: uuid.New(), CompanyId: companyId, ChatId: "chat-1", Role: constant.ChatRoleAssistant, Content: "here you go"},
		}

		inserted, err := uow.AgentMessageRepository().CreateBatch(ctx, messages)
		require.NoError(t, err)
		assert.Equal(t, int64(2), inserted)

		inserted, err = uow.AgentMessageRepository().CreateBatch(ctx, messages)
		require.NoError(t, err)
		assert.Equal(t, int64(0), inserted)

		count, err := uow.AgentMessageRepository().Count(ctx,
			specification.ByCompanyID{CompanyID: companyId},
			specification.ByChatID{ChatID: "chat-1"},
		)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
