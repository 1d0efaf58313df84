package implementation

import (
	"context"
	"errors"
	"time"

	"hireup-be/internal/entity"
	"hireup-be/internal/mapper"
	"hireup-be/internal/model"
	"hireup-be/internal/repository/contract"
	"hireup-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ApplicationMapper
}

func NewApplicationRepository(db *gorm.DB) contract.ApplicationRepository {
	return &ApplicationRepositoryImpl{
		db:     db,
		mapper: mapper.NewApplicationMapper(),
	}
}

func (r *ApplicationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, application *entity.Application) error {
	m := r.mapper.ToModel(application)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*application = *r.mapper.ToEntity(m)
	return nil
}

func (r *ApplicationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
	var m model.Application
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ApplicationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	var models []*model.Application
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ApplicationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Application{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatusFrom(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, score *int) (bool, error) {
	// Guarding on the source status makes concurrent transitions race safely:
	// only one UPDATE matches, the loser sees zero rows affected.
	res := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(map[string]interface{}{
			"status":          toStatus,
			"technical_score": score,
			"updated_at":      time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type applicantRow struct {
	ApplicationId  uuid.UUID
	UserId         uuid.UUID
	JobId          uuid.UUID
	UserName       string
	Skills         datatypes.JSON
	ResumeText     string
	Status         string
	TechnicalScore *int
	AppliedAt      time.Time
}

func (r *ApplicationRepositoryImpl) ListApplicants(ctx context.Context, companyId uuid.UUID, jobId *uuid.UUID) ([]*entity.ApplicantView, error) {
	query := r.db.WithContext(ctx).
		Table("applications").
		Select(`applications.id AS application_id,
			applications.user_id,
			applications.job_id,
			candidates.name AS user_name,
			candidates.skills,
			candidates.resume_text,
			applications.status,
			applications.technical_score,
			applications.created_at AS applied_at`).
		Joins("JOIN candidates ON candidates.id = applications.user_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyId).
		Order("applications.created_at DESC")

	if jobId != nil {
		query = query.Where("applications.job_id = ?", *jobId)
	}

	var rows []applicantRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]*entity.ApplicantView, len(rows))
	for i, row := range rows {
		views[i] = &entity.ApplicantView{
			ApplicationId:  row.ApplicationId,
			UserId:         row.UserId,
			JobId:          row.JobId,
			UserName:       row.UserName,
			Skills:         decodeSkills(row.Skills),
			ResumeText:     row.ResumeText,
			Status:         row.Status,
			TechnicalScore: row.TechnicalScore,
			AppliedAt:      row.AppliedAt,
		}
	}
	return views, nil
}

func (r *ApplicationRepositoryImpl) CountByStatus(ctx context.Context, companyId uuid.UUID) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Table("applications").
		Select("applications.status, COUNT(*) AS total").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyId).
		Group("applications.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
