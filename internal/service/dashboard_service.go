package service

import (
	"context"

	"hireup-be/internal/constant"
	"hireup-be/internal/dto"
	"hireup-be/internal/entity"
	"hireup-be/internal/repository/memory"
	"hireup-be/internal/repository/specification"
	"hireup-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const recentActivityLimit = 10

type IDashboardService interface {
	GetStats(ctx context.Context, companyId uuid.UUID) (*dto.DashboardStatsResponse, error)
	ListNotifications(ctx context.Context, companyId uuid.UUID) ([]*dto.NotificationResponse, error)
	MarkNotificationsRead(ctx context.Context, companyId uuid.UUID) error
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	activities *memory.ActivityRepository
}

func NewDashboardService(
	uowFactory unitofwork.RepositoryFactory,
	activities *memory.ActivityRepository,
) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		activities: activities,
	}
}

func (s *dashboardService) GetStats(ctx context.Context, companyId uuid.UUID) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	byStatus, err := uow.ApplicationRepository().CountByStatus(ctx, companyId)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, count := range byStatus {
		total += count
	}

	openJobs, err := uow.JobRepository().Count(ctx,
		specification.ByCompanyID{CompanyID: companyId},
		specification.ByStatus{Status: entity.JobStatusOpen},
	)
	if err != nil {
		return nil, err
	}

	unread, err := uow.NotificationRepository().CountUnread(ctx, companyId)
	if err != nil {
		return nil, err
	}

	recent := []dto.ActivityItem{}
	if s.activities != nil {
		for _, activity := range s.activities.Recent(companyId, recentActivityLimit) {
			recent = append(recent, dto.ActivityItem{
				Action:    activity.Action,
				Detail:    activity.Detail,
				Timestamp: activity.Timestamp,
			})
		}
	}

	// Every lifecycle status shows up, even at zero, so the UI never has
	// to special-case missing keys.
	for _, status := range []string{
		constant.StatusSubmitted,
		constant.StatusRejectedPre,
		constant.StatusInProgress,
		constant.StatusRejectedPost,
		constant.StatusOffer,
	} {
		if _, ok := byStatus[status]; !ok {
			byStatus[status] = 0
		}
	}

	return &dto.DashboardStatsResponse{
		TotalApplications:   total,
		ApplicationsByState: byStatus,
		OpenJobs:            openJobs,
		UnreadNotifications: unread,
		RecentActivity:      recent,
	}, nil
}

func (s *dashboardService) ListNotifications(ctx context.Context, companyId uuid.UUID) ([]*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.ByCompanyID{CompanyID: companyId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 50},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		res = append(res, &dto.NotificationResponse{
			Id:        notification.Id,
			Type:      notification.TypeCode,
			Title:     notification.Title,
			Body:      notification.Message,
			Metadata:  notification.Metadata,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		})
	}
	return res, nil
}

func (s *dashboardService) MarkNotificationsRead(ctx context.Context, companyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAllRead(ctx, companyId)
}
