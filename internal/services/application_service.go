// internal/services/application_service.go
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/hireswipe-backend/internal/metrics"
	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/repository"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

// Notifier is told about completed transitions. Implementations must not block for long;
// errors are logged and never reach the caller of the transition.
type Notifier interface {
	ApplicationStatusChanged(ctx context.Context, app *models.Application) error
	InterviewScheduled(ctx context.Context, app *models.Application) error
	InterviewCancelled(ctx context.Context, app *models.Application) error
}

type ApplicationService struct {
	store    repository.ApplicationStore
	notifier Notifier
}

type ApplyRequest struct {
	JobID uuid.UUID `json:"job" validate:"required"`
}

type SetStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,application_status"`
}

type recruiterStatusFilter struct {
	Status models.ApplicationStatus `validate:"application_status"`
}

type ScheduleInterviewInput struct {
	Date time.Time `json:"date" validate:"required"`
	Link string    `json:"link" validate:"required,http_url"`
}

func NewApplicationService(store repository.ApplicationStore, notifier Notifier) *ApplicationService {
	return &ApplicationService{
		store:    store,
		notifier: notifier,
	}
}

func (s *ApplicationService) Create(ctx context.Context, actor Actor, jobID uuid.UUID) (app *models.Application, err error) {
	defer record("create", &err)

	req := ApplyRequest{JobID: jobID}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		return nil, invalidArgument("job id is required", validationErrors)
	}
	if !actor.IsJobseeker() {
		return nil, forbidden("only jobseekers can apply for jobs")
	}

	if _, err := s.store.FindJobByID(ctx, jobID); err != nil {
		return nil, fromStore(err, "job")
	}

	if _, err := s.store.FindApplication(ctx, jobID, actor.ID); err == nil {
		return nil, conflict("you already applied for this job")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, internal(err)
	}

	app = &models.Application{
		JobID:       jobID,
		JobseekerID: actor.ID,
		Status:      models.ApplicationStatusApplied,
		Interview:   models.Interview{Status: models.InterviewStatusNone},
	}
	if err := s.store.InsertApplication(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("you already applied for this job")
		}
		return nil, internal(err)
	}

	logrus.WithFields(logrus.Fields{
		"application_id": app.ID,
		"job_id":         jobID,
		"actor_id":       actor.ID,
	}).Info("Application created")

	return app, nil
}

func (s *ApplicationService) Withdraw(ctx context.Context, actor Actor, applicationID uuid.UUID) (err error) {
	defer record("withdraw", &err)

	app, err := s.load(ctx, applicationID)
	if err != nil {
		return err
	}
	if err := Authorize(actor, app, WithdrawAction()); err != nil {
		return err
	}

	if err := s.store.DeleteApplication(ctx, applicationID); err != nil {
		return fromStore(err, "application")
	}

	logrus.WithFields(logrus.Fields{
		"application_id": applicationID,
		"actor_id":       actor.ID,
	}).Info("Application withdrawn")

	return nil
}

func (s *ApplicationService) SetStatus(ctx context.Context, actor Actor, applicationID uuid.UUID, status models.ApplicationStatus) (updated *models.Application, err error) {
	defer record("set_status", &err)

	req := SetStatusRequest{Status: status}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		return nil, invalidArgument(reasonInvalidStatus, validationErrors)
	}

	app, err := s.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, app, SetStatusAction(status)); err != nil {
		return nil, err
	}

	updated, err = s.store.UpdateApplication(ctx, applicationID, repository.ApplicationPatch{Status: &status})
	if err != nil {
		return nil, fromStore(err, "application")
	}

	logrus.WithFields(logrus.Fields{
		"application_id": applicationID,
		"actor_id":       actor.ID,
		"from":           app.Status,
		"to":             status,
	}).Info("Application status changed")

	s.notify(ctx, "status_changed", updated, func(n Notifier, ctx context.Context) error {
		return n.ApplicationStatusChanged(ctx, updated)
	})

	return updated, nil
}

func (s *ApplicationService) ScheduleInterview(ctx context.Context, actor Actor, applicationID uuid.UUID, input ScheduleInterviewInput) (updated *models.Application, err error) {
	defer record("schedule_interview", &err)

	input.Link = strings.TrimSpace(input.Link)
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&input)); len(validationErrors) > 0 {
		return nil, invalidArgument("interview date and an http(s) link are required", validationErrors)
	}

	app, err := s.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, app, ScheduleInterviewAction()); err != nil {
		return nil, err
	}

	date := input.Date
	interview := models.Interview{
		Date:   &date,
		Link:   input.Link,
		Status: models.InterviewStatusScheduled,
	}
	updated, err = s.store.UpdateApplication(ctx, applicationID, repository.ApplicationPatch{Interview: &interview})
	if err != nil {
		return nil, fromStore(err, "application")
	}

	logrus.WithFields(logrus.Fields{
		"application_id": applicationID,
		"actor_id":       actor.ID,
		"date":           date,
	}).Info("Interview scheduled")

	s.notify(ctx, "interview_scheduled", updated, func(n Notifier, ctx context.Context) error {
		return n.InterviewScheduled(ctx, updated)
	})

	return updated, nil
}

func (s *ApplicationService) CancelInterview(ctx context.Context, actor Actor, applicationID uuid.UUID) (updated *models.Application, err error) {
	defer record("cancel_interview", &err)

	app, err := s.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actor, app, CancelInterviewAction()); err != nil {
		return nil, err
	}

	cancelled := models.InterviewStatusCancelled
	updated, err = s.store.UpdateApplication(ctx, applicationID, repository.ApplicationPatch{InterviewStatus: &cancelled})
	if err != nil {
		return nil, fromStore(err, "application")
	}

	logrus.WithFields(logrus.Fields{
		"application_id": applicationID,
		"actor_id":       actor.ID,
	}).Info("Interview cancelled")

	s.notify(ctx, "interview_cancelled", updated, func(n Notifier, ctx context.Context) error {
		return n.InterviewCancelled(ctx, updated)
	})

	return updated, nil
}

func (s *ApplicationService) ListForJobseeker(ctx context.Context, jobseekerID uuid.UUID) ([]models.Application, error) {
	apps, err := s.store.ListApplications(ctx, repository.ApplicationFilter{
		JobseekerID: &jobseekerID,
		WithJob:     true,
	})
	if err != nil {
		return nil, internal(err)
	}
	return apps, nil
}

func (s *ApplicationService) ListScheduledInterviews(ctx context.Context, jobseekerID uuid.UUID) ([]models.Application, error) {
	scheduled := models.InterviewStatusScheduled
	apps, err := s.store.ListApplications(ctx, repository.ApplicationFilter{
		JobseekerID:     &jobseekerID,
		InterviewStatus: &scheduled,
		Order:           repository.OrderInterviewDateAsc,
		WithJob:         true,
	})
	if err != nil {
		return nil, internal(err)
	}
	return apps, nil
}

// ListForRecruiterJobs returns applications to jobs posted by recruiterID, optionally
// narrowed to one status.
func (s *ApplicationService) ListForRecruiterJobs(ctx context.Context, recruiterID uuid.UUID, status *models.ApplicationStatus) ([]models.Application, error) {
	if status != nil {
		filter := recruiterStatusFilter{Status: *status}
		if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&filter)); len(validationErrors) > 0 {
			return nil, invalidArgument(reasonInvalidStatus, validationErrors)
		}
	}
	apps, err := s.store.ListApplications(ctx, repository.ApplicationFilter{
		RecruiterID:   &recruiterID,
		Status:        status,
		WithJob:       true,
		WithJobseeker: true,
	})
	if err != nil {
		return nil, internal(err)
	}
	return apps, nil
}

func (s *ApplicationService) load(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	app, err := s.store.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, fromStore(err, "application")
	}
	if app.Job == nil {
		job, err := s.store.FindJobByID(ctx, app.JobID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, internal(err)
		}
		app.Job = job
	}
	return app, nil
}

func (s *ApplicationService) notify(ctx context.Context, event string, app *models.Application, send func(Notifier, context.Context) error) {
	if s.notifier == nil {
		return
	}
	detached := context.WithoutCancel(ctx)
	go func() {
		if err := send(s.notifier, detached); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"application_id": app.ID,
				"event":          event,
			}).Warn("Failed to send application notification")
		}
	}()
}

func record(operation string, errp *error) {
	outcome := "ok"
	if *errp != nil {
		outcome = strings.ToLower(string(KindOf(*errp)))
	}
	metrics.RecordTransition(operation, outcome)
}
