package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hireup-be/internal/constant"
	"hireup-be/internal/dto"
	"hireup-be/internal/entity"
	"hireup-be/internal/pkg/logger"
	"hireup-be/internal/pkg/quota"
	"hireup-be/internal/repository/specification"
	"hireup-be/internal/repository/unitofwork"
	"hireup-be/pkg/events"
	pkgNats "hireup-be/pkg/nats"

	"github.com/google/uuid"
)

type IApplicationService interface {
	Apply(ctx context.Context, userId uuid.UUID, req *dto.ApplyRequest) (*dto.ApplyResponse, error)
	ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.ShowApplicationResponse, error)
	ListApplicants(ctx context.Context, companyId uuid.UUID, jobId *uuid.UUID) ([]*dto.ApplicantResponse, error)
	UpdateStatus(ctx context.Context, companyId uuid.UUID, req *dto.UpdateStatusRequest) (*dto.UpdateStatusResponse, error)
}

type applicationService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pkgNats.Publisher
	applyQuota       *quota.DailyApplyQuota
	log              logger.ILogger
}

func NewApplicationService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pkgNats.Publisher,
	applyQuota *quota.DailyApplyQuota,
	log logger.ILogger,
) IApplicationService {
	return &applicationService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		applyQuota:       applyQuota,
		log:              log,
	}
}

func (s *applicationService) Apply(ctx context.Context, userId uuid.UUID, req *dto.ApplyRequest) (*dto.ApplyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.JobRepository().FindOne(ctx, specification.ByID{ID: req.JobId})
	if err != nil {
		return nil, err
	}
	if job == nil || job.Status != entity.JobStatusOpen {
		return nil, fmt.Errorf("%w: job %s is not open for applications", entity.ErrNotFound, req.JobId)
	}

	existing, err := uow.ApplicationRepository().Count(ctx,
		specification.ByUserID{UserID: userId},
		specification.ByJobID{JobID: req.JobId},
	)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: already applied to job %s", entity.ErrDuplicateApply, req.JobId)
	}

	if s.applyQuota != nil {
		allowed, err := s.applyQuota.Allow(ctx, userId)
		if err != nil {
			// Redis being down should not block applying.
			s.log.Warn("application", "apply quota check failed", map[string]interface{}{"error": err.Error()})
		} else if !allowed {
			return nil, fmt.Errorf("%w: daily application limit reached", entity.ErrApplyLimit)
		}
	}

	application := entity.Application{
		Id:        uuid.New(),
		UserId:    userId,
		JobId:     req.JobId,
		Status:    constant.StatusSubmitted,
		CreatedAt: time.Now(),
	}

	if err := uow.ApplicationRepository().Create(ctx, &application); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, constant.EventApplicationSubmitted, map[string]interface{}{
		"application_id": application.Id,
		"user_id":        userId,
		"job_id":         job.Id,
		"job_title":      job.Title,
		"company_id":     job.CompanyId,
	})
	s.publishActivity(ctx, job.CompanyId, "application_submitted",
		fmt.Sprintf("New application for %s", job.Title))

	return &dto.ApplyResponse{
		Id:     application.Id,
		Status: application.Status,
	}, nil
}

func (s *applicationService) ListForUser(ctx context.Context, userId uuid.UUID) ([]*dto.ShowApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	applications, err := uow.ApplicationRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowApplicationResponse, 0, len(applications))
	for _, application := range applications {
		res = append(res, &dto.ShowApplicationResponse{
			Id:             application.Id,
			JobId:          application.JobId,
			Status:         application.Status,
			TechnicalScore: application.TechnicalScore,
			CreatedAt:      application.CreatedAt,
			UpdatedAt:      application.UpdatedAt,
		})
	}
	return res, nil
}

func (s *applicationService) ListApplicants(ctx context.Context, companyId uuid.UUID, jobId *uuid.UUID) ([]*dto.ApplicantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	applicants, err := uow.ApplicationRepository().ListApplicants(ctx, companyId, jobId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ApplicantResponse, 0, len(applicants))
	for _, applicant := range applicants {
		res = append(res, &dto.ApplicantResponse{
			ApplicationId:  applicant.ApplicationId,
			UserId:         applicant.UserId,
			Name:           applicant.UserName,
			Skills:         applicant.Skills,
			Status:         applicant.Status,
			TechnicalScore: applicant.TechnicalScore,
			AppliedAt:      applicant.AppliedAt,
		})
	}
	return res, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, companyId uuid.UUID, req *dto.UpdateStatusRequest) (*dto.UpdateStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	application, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, fmt.Errorf("%w: application %s", entity.ErrNotFound, req.Id)
	}

	job, err := uow.JobRepository().FindOne(ctx, specification.ByID{ID: application.JobId})
	if err != nil {
		return nil, err
	}
	if job == nil || job.CompanyId != companyId {
		// A company must not learn about applications it does not own.
		return nil, fmt.Errorf("%w: application %s", entity.ErrNotFound, req.Id)
	}

	fromStatus := application.Status
	if req.ExpectedStatus != "" {
		fromStatus = req.ExpectedStatus
	}

	if err := validateTransition(fromStatus, req.Status, req.TechnicalScore); err != nil {
		return nil, err
	}

	var score *int
	if constant.ScoreRequired(req.Status) {
		score = req.TechnicalScore
	}

	applied, err := uow.ApplicationRepository().UpdateStatusFrom(ctx, req.Id, fromStatus, req.Status, score)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Someone else moved the application first. The caller must re-read
		// and decide again from the new status.
		return nil, fmt.Errorf("%w: application %s is no longer in status %q",
			entity.ErrInvalidTransition, req.Id, fromStatus)
	}

	candidate, err := uow.CandidateRepository().FindOne(ctx, specification.ByID{ID: application.UserId})
	if err != nil {
		s.log.Warn("application", "failed to load candidate for notification", map[string]interface{}{
			"user_id": application.UserId,
			"error":   err.Error(),
		})
	}

	payload := map[string]interface{}{
		"application_id": application.Id,
		"user_id":        application.UserId,
		"job_id":         job.Id,
		"job_title":      job.Title,
		"company_id":     job.CompanyId,
		"from_status":    fromStatus,
		"to_status":      req.Status,
	}
	if score != nil {
		payload["technical_score"] = *score
	}
	if candidate != nil {
		payload["candidate_name"] = candidate.Name
		payload["candidate_email"] = candidate.Email
	}
	s.publishEvent(ctx, constant.EventApplicationStatusChanged, payload)
	s.publishActivity(ctx, job.CompanyId, "status_changed",
		fmt.Sprintf("Application for %s moved to %s", job.Title, req.Status))

	return &dto.UpdateStatusResponse{
		Id:             req.Id,
		Status:         req.Status,
		TechnicalScore: score,
	}, nil
}

// validateTransition checks the requested move against the lifecycle table.
// Score validity is checked before anything mutates.
func validateTransition(fromStatus, toStatus string, score *int) error {
	allowed, known := constant.AllowedTransitions[fromStatus]
	if !known {
		return fmt.Errorf("%w: unknown status %q", entity.ErrInvalidTransition, fromStatus)
	}
	if !allowed[toStatus] {
		return fmt.Errorf("%w: cannot move from %q to %q", entity.ErrInvalidTransition, fromStatus, toStatus)
	}

	if constant.ScoreRequired(toStatus) {
		if score == nil {
			return fmt.Errorf("%w: status %q requires a technical score", entity.ErrInvalidScore, toStatus)
		}
		if *score < constant.TechnicalScoreMin || *score > constant.TechnicalScoreMax {
			return entity.ErrInvalidScore
		}
	} else if score != nil {
		return fmt.Errorf("%w: status %q does not accept a technical score", entity.ErrInvalidScore, toStatus)
	}

	return nil
}

func (s *applicationService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		// Notifications are auxiliary, the transition already committed.
		s.log.Warn("application", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *applicationService) publishActivity(ctx context.Context, companyId uuid.UUID, action, detail string) {
	if s.publisherService == nil {
		return
	}
	msg := dto.PublishActivityMessage{
		CompanyId: companyId,
		Action:    action,
		Detail:    detail,
	}
	msgJson, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.log.Warn("application", "failed to publish activity", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}
