// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Base model with common fields. Rows are hard-deleted; there is no soft-delete column.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
)

func (r Role) Valid() bool {
	return r == RoleJobseeker || r == RoleRecruiter
}

type ApplicationStatus string

const (
	ApplicationStatusApplied  ApplicationStatus = "applied"
	ApplicationStatusHold     ApplicationStatus = "hold"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the four persisted status values.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusHold, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

type InterviewStatus string

const (
	InterviewStatusNone      InterviewStatus = "none"
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
)

type Availability string

const (
	AvailabilityImmediate Availability = "immediate"
	AvailabilityOneMonth  Availability = "1 month"
	AvailabilityTwoMonths Availability = "2 months"
	AvailabilityFlexible  Availability = "flexible"
)
