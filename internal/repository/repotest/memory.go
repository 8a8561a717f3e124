// Package repotest provides an in-memory repository.Store for service and handler tests.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/repository"
)

type MemoryStore struct {
	mu           sync.Mutex
	users        map[uuid.UUID]models.User
	jobs         map[uuid.UUID]models.Job
	applications map[uuid.UUID]models.Application
	savedJobs    map[uuid.UUID]models.SavedJob
	AuditLogs    []models.AuditLog

	// writes counts successful mutations of applications.
	writes int
}

var _ repository.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[uuid.UUID]models.User),
		jobs:         make(map[uuid.UUID]models.Job),
		applications: make(map[uuid.UUID]models.Application),
		savedJobs:    make(map[uuid.UUID]models.SavedJob),
	}
}

func stamp(base *models.BaseModel) {
	now := time.Now()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}

// Applications

func (m *MemoryStore) FindApplicationByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	app, ok := m.applications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if job, ok := m.jobs[app.JobID]; ok {
		app.Job = &job
	}
	return &app, nil
}

func (m *MemoryStore) FindApplication(_ context.Context, jobID, jobseekerID uuid.UUID) (*models.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, app := range m.applications {
		if app.JobID == jobID && app.JobseekerID == jobseekerID {
			return &app, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MemoryStore) InsertApplication(_ context.Context, app *models.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.applications {
		if existing.JobID == app.JobID && existing.JobseekerID == app.JobseekerID {
			return repository.ErrDuplicate
		}
	}
	stamp(&app.BaseModel)
	if app.Status == "" {
		app.Status = models.ApplicationStatusApplied
	}
	if app.Interview.Status == "" {
		app.Interview.Status = models.InterviewStatusNone
	}
	stored := *app
	stored.Job, stored.Jobseeker = nil, nil
	m.applications[app.ID] = stored
	m.writes++
	return nil
}

func (m *MemoryStore) UpdateApplication(ctx context.Context, id uuid.UUID, patch repository.ApplicationPatch) (*models.Application, error) {
	m.mu.Lock()
	app, ok := m.applications[id]
	if !ok {
		m.mu.Unlock()
		return nil, repository.ErrNotFound
	}
	patch.Apply(&app)
	app.UpdatedAt = time.Now()
	m.applications[id] = app
	m.writes++
	m.mu.Unlock()

	return m.FindApplicationByID(ctx, id)
}

func (m *MemoryStore) DeleteApplication(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.applications[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.applications, id)
	m.writes++
	return nil
}

func (m *MemoryStore) ListApplications(_ context.Context, filter repository.ApplicationFilter) ([]models.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	apps := make([]models.Application, 0)
	for _, app := range m.applications {
		if filter.JobseekerID != nil && app.JobseekerID != *filter.JobseekerID {
			continue
		}
		if filter.JobID != nil && app.JobID != *filter.JobID {
			continue
		}
		if filter.Status != nil && app.Status != *filter.Status {
			continue
		}
		if filter.InterviewStatus != nil && app.Interview.Status != *filter.InterviewStatus {
			continue
		}
		job, hasJob := m.jobs[app.JobID]
		if filter.RecruiterID != nil && (!hasJob || job.PostedBy != *filter.RecruiterID) {
			continue
		}
		if filter.WithJob && hasJob {
			app.Job = &job
		}
		if filter.WithJobseeker {
			if user, ok := m.users[app.JobseekerID]; ok {
				app.Jobseeker = applicantView(user)
			}
		}
		apps = append(apps, app)
	}

	switch filter.Order {
	case repository.OrderInterviewDateAsc:
		sort.SliceStable(apps, func(i, j int) bool {
			a, b := apps[i].Interview.Date, apps[j].Interview.Date
			if a == nil || b == nil {
				return b == nil && a != nil
			}
			return a.Before(*b)
		})
	default:
		sort.SliceStable(apps, func(i, j int) bool {
			return apps[i].CreatedAt.After(apps[j].CreatedAt)
		})
	}
	return apps, nil
}

func applicantView(user models.User) *models.User {
	return &models.User{
		BaseModel:  models.BaseModel{ID: user.ID},
		Name:       user.Name,
		Email:      user.Email,
		Skills:     user.Skills,
		Resume:     user.Resume,
		Experience: user.Experience,
	}
}

// Jobs

func (m *MemoryStore) FindJobByID(_ context.Context, id uuid.UUID) (*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &job, nil
}

func (m *MemoryStore) CreateJob(_ context.Context, job *models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stamp(&job.BaseModel)
	m.jobs[job.ID] = *job
	return nil
}

func (m *MemoryStore) ListJobs(_ context.Context, filter repository.JobFilter) ([]models.Job, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	jobs := make([]models.Job, 0)
	for _, job := range m.jobs {
		if filter.PostedBy != nil && job.PostedBy != *filter.PostedBy {
			continue
		}
		if filter.Location != "" && job.Location != filter.Location {
			continue
		}
		if filter.Company != "" && job.Company != filter.Company {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(job.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.MaxExperience != nil && job.MinExperience > *filter.MaxExperience {
			continue
		}
		if filter.WithApplicants {
			for _, app := range m.applications {
				if app.JobID != job.ID {
					continue
				}
				if user, ok := m.users[app.JobseekerID]; ok {
					app.Jobseeker = applicantView(user)
				}
				job.Applicants = append(job.Applicants, app)
			}
		}
		jobs = append(jobs, job)
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})

	total := int64(len(jobs))
	if filter.Limit > 0 {
		start := (filter.Page - 1) * filter.Limit
		if start < 0 {
			start = 0
		}
		if start > len(jobs) {
			start = len(jobs)
		}
		end := start + filter.Limit
		if end > len(jobs) {
			end = len(jobs)
		}
		jobs = jobs[start:end]
	}
	return jobs, total, nil
}

// Users

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	stamp(&user.BaseModel)
	m.users[user.ID] = *user
	return nil
}

func (m *MemoryStore) FindUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (m *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Saved jobs

func (m *MemoryStore) SaveJob(_ context.Context, saved *models.SavedJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.savedJobs {
		if existing.JobID == saved.JobID && existing.JobseekerID == saved.JobseekerID {
			return repository.ErrDuplicate
		}
	}
	stamp(&saved.BaseModel)
	m.savedJobs[saved.ID] = *saved
	return nil
}

func (m *MemoryStore) ListSavedJobs(_ context.Context, jobseekerID uuid.UUID) ([]models.SavedJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := make([]models.SavedJob, 0)
	for _, s := range m.savedJobs {
		if s.JobseekerID != jobseekerID {
			continue
		}
		if job, ok := m.jobs[s.JobID]; ok {
			s.Job = &job
		}
		saved = append(saved, s)
	}
	sort.SliceStable(saved, func(i, j int) bool {
		return saved[i].CreatedAt.After(saved[j].CreatedAt)
	})
	return saved, nil
}

func (m *MemoryStore) DeleteSavedJob(_ context.Context, jobID, jobseekerID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.savedJobs {
		if s.JobID == jobID && s.JobseekerID == jobseekerID {
			delete(m.savedJobs, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

// Audit

func (m *MemoryStore) CreateAuditLog(_ context.Context, entry *models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stamp(&entry.BaseModel)
	m.AuditLogs = append(m.AuditLogs, *entry)
	return nil
}

// Count returns the number of stored applications for the pair.
func (m *MemoryStore) Count(jobID, jobseekerID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, app := range m.applications {
		if app.JobID == jobID && app.JobseekerID == jobseekerID {
			n++
		}
	}
	return n
}

// WriteCount returns the number of successful application writes so far.
func (m *MemoryStore) WriteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
