// internal/repository/gorm_store.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

var jobSortFields = []string{"created_at", "title", "company", "location", "min_experience"}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return fmt.Errorf("database error: %w", err)
	}
}

// Applications

func (s *GormStore) FindApplicationByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := s.db.WithContext(ctx).Preload("Job").First(&app, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (s *GormStore) FindApplication(ctx context.Context, jobID, jobseekerID uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := s.db.WithContext(ctx).
		Where("job_id = ? AND jobseeker_id = ?", jobID, jobseekerID).
		First(&app).Error; err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (s *GormStore) InsertApplication(ctx context.Context, app *models.Application) error {
	return translate(s.db.WithContext(ctx).Create(app).Error)
}

func (s *GormStore) UpdateApplication(ctx context.Context, id uuid.UUID, patch ApplicationPatch) (*models.Application, error) {
	result := s.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Updates(patch.columns())
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindApplicationByID(ctx, id)
}

func (s *GormStore) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListApplications(ctx context.Context, filter ApplicationFilter) ([]models.Application, error) {
	query := s.db.WithContext(ctx).Model(&models.Application{})

	if filter.RecruiterID != nil {
		query = query.Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.posted_by = ?", *filter.RecruiterID)
	}
	if filter.JobseekerID != nil {
		query = query.Where("applications.jobseeker_id = ?", *filter.JobseekerID)
	}
	if filter.JobID != nil {
		query = query.Where("applications.job_id = ?", *filter.JobID)
	}
	if filter.Status != nil {
		query = query.Where("applications.status = ?", *filter.Status)
	}
	if filter.InterviewStatus != nil {
		query = query.Where("applications.interview_status = ?", *filter.InterviewStatus)
	}

	if filter.WithJob {
		query = query.Preload("Job")
	}
	if filter.WithJobseeker {
		query = query.Preload("Jobseeker", applicantColumns)
	}

	switch filter.Order {
	case OrderInterviewDateAsc:
		query = query.Order("applications.interview_date ASC")
	default:
		query = query.Order("applications.created_at DESC")
	}

	var apps []models.Application
	if err := query.Find(&apps).Error; err != nil {
		return nil, translate(err)
	}
	return apps, nil
}

// applicantColumns limits the joined jobseeker to what a recruiter sees.
func applicantColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "skills", "resume", "experience")
}

// Jobs

func (s *GormStore) FindJobByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := s.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (s *GormStore) CreateJob(ctx context.Context, job *models.Job) error {
	return translate(s.db.WithContext(ctx).Create(job).Error)
}

func (s *GormStore) ListJobs(ctx context.Context, filter JobFilter) ([]models.Job, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Job{})

	if filter.PostedBy != nil {
		query = query.Where("posted_by = ?", *filter.PostedBy)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.Company != "" {
		query = query.Where("company = ?", filter.Company)
	}
	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.MaxExperience != nil {
		query = query.Where("min_experience <= ?", *filter.MaxExperience)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	if filter.WithApplicants {
		query = query.Preload("Applicants", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).Preload("Applicants.Jobseeker", applicantColumns)
	}

	query = utils.ApplySort(query, filter.PaginationParams, jobSortFields)
	if filter.Limit > 0 {
		query = utils.ApplyPagination(query, filter.PaginationParams)
	}

	var jobs []models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, 0, translate(err)
	}
	return jobs, total, nil
}

// Users

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *GormStore) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Saved jobs

func (s *GormStore) SaveJob(ctx context.Context, saved *models.SavedJob) error {
	return translate(s.db.WithContext(ctx).Create(saved).Error)
}

func (s *GormStore) ListSavedJobs(ctx context.Context, jobseekerID uuid.UUID) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	if err := s.db.WithContext(ctx).Preload("Job").
		Where("jobseeker_id = ?", jobseekerID).
		Order("created_at DESC").
		Find(&saved).Error; err != nil {
		return nil, translate(err)
	}
	return saved, nil
}

func (s *GormStore) DeleteSavedJob(ctx context.Context, jobID, jobseekerID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("job_id = ? AND jobseeker_id = ?", jobID, jobseekerID).
		Delete(&models.SavedJob{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Audit

func (s *GormStore) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	return translate(s.db.WithContext(ctx).Create(entry).Error)
}
