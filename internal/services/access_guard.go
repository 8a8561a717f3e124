// internal/services/access_guard.go
package services

import (
	"github.com/google/uuid"

	"github.com/javajoker/hireswipe-backend/internal/models"
)

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   uuid.UUID
	Role models.Role
}

func (a Actor) IsJobseeker() bool { return a.Role == models.RoleJobseeker }
func (a Actor) IsRecruiter() bool { return a.Role == models.RoleRecruiter }

type ActionKind string

const (
	ActionWithdraw          ActionKind = "withdraw"
	ActionSetStatus         ActionKind = "set_status"
	ActionScheduleInterview ActionKind = "schedule_interview"
	ActionCancelInterview   ActionKind = "cancel_interview"
)

// Action is a requested lifecycle transition. Status is only read for ActionSetStatus.
type Action struct {
	Kind   ActionKind
	Status models.ApplicationStatus
}

func WithdrawAction() Action          { return Action{Kind: ActionWithdraw} }
func ScheduleInterviewAction() Action { return Action{Kind: ActionScheduleInterview} }
func CancelInterviewAction() Action   { return Action{Kind: ActionCancelInterview} }

func SetStatusAction(status models.ApplicationStatus) Action {
	return Action{Kind: ActionSetStatus, Status: status}
}

const (
	reasonNotAuthorized     = "not authorized"
	reasonInvalidStatus     = "invalid status"
	reasonRecruiterRequired = "only recruiters can schedule interviews"
)

// Authorize decides whether actor may perform action on app. app.Job must be loaded for
// recruiter ownership checks. It returns nil to allow, an InvalidArgument error for a bad
// status value, and a Forbidden error otherwise. It has no side effects.
func Authorize(actor Actor, app *models.Application, action Action) error {
	switch action.Kind {
	case ActionWithdraw:
		if actor.IsJobseeker() && app.JobseekerID == actor.ID {
			return nil
		}
		return forbidden(reasonNotAuthorized)

	case ActionSetStatus:
		if !action.Status.Valid() {
			return invalidArgument(reasonInvalidStatus, nil)
		}
		if actor.IsRecruiter() && ownsJob(actor, app) {
			return nil
		}
		if actor.IsJobseeker() && app.JobseekerID == actor.ID && action.Status == models.ApplicationStatusRejected {
			return nil
		}
		return forbidden(reasonNotAuthorized)

	case ActionScheduleInterview, ActionCancelInterview:
		if !actor.IsRecruiter() {
			return forbidden(reasonRecruiterRequired)
		}
		if !ownsJob(actor, app) {
			return forbidden(reasonNotAuthorized)
		}
		return nil
	}

	return forbidden(reasonNotAuthorized)
}

func ownsJob(actor Actor, app *models.Application) bool {
	return app.Job != nil && app.Job.PostedBy == actor.ID
}
