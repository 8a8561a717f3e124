// internal/services/notification_service_test.go
package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/hireswipe-backend/internal/config"
	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/repository/repotest"
)

type sentEmail struct {
	to, subject, body string
}

func TestNotificationEmails(t *testing.T) {
	ctx := context.Background()
	store := repotest.NewMemoryStore()
	cfg := &config.Config{Frontend: config.FrontendConfig{BaseURL: "https://hireswipe.test"}}

	seeker := &models.User{Name: "Jay", Email: "jay@example.com", Role: models.RoleJobseeker}
	require.NoError(t, store.CreateUser(ctx, seeker))
	job := &models.Job{Title: "Backend Engineer", Company: "Globex", Location: "Pune", Description: "D", PostedBy: uuid.New()}
	require.NoError(t, store.CreateJob(ctx, job))

	var sent []sentEmail
	service := NewNotificationService(store, store, cfg)
	service.send = func(to, subject, body string) error {
		sent = append(sent, sentEmail{to, subject, body})
		return nil
	}

	date := time.Date(2026, 11, 3, 10, 30, 0, 0, time.UTC)
	app := &models.Application{
		JobID:       job.ID,
		JobseekerID: seeker.ID,
		Status:      models.ApplicationStatusAccepted,
		Interview:   models.Interview{Date: &date, Link: "https://meet.example.com/x", Status: models.InterviewStatusScheduled},
	}

	require.NoError(t, service.ApplicationStatusChanged(ctx, app))
	require.NoError(t, service.InterviewScheduled(ctx, app))
	require.NoError(t, service.InterviewCancelled(ctx, app))

	require.Len(t, sent, 3)
	assert.Equal(t, "jay@example.com", sent[0].to)
	assert.Equal(t, "Application update - Backend Engineer", sent[0].subject)
	assert.Contains(t, sent[0].body, "<strong>accepted</strong>")
	assert.Contains(t, sent[0].body, "https://hireswipe.test/applications")

	assert.Equal(t, "Interview scheduled - Backend Engineer", sent[1].subject)
	assert.Contains(t, sent[1].body, "Tue, 03 Nov 2026 10:30 UTC")
	assert.Contains(t, sent[1].body, "https://meet.example.com/x")

	assert.Equal(t, "Interview cancelled - Backend Engineer", sent[2].subject)
}

func TestNotificationSubjectIsPlainSingleLine(t *testing.T) {
	ctx := context.Background()
	store := repotest.NewMemoryStore()

	seeker := &models.User{Name: "Jay", Email: "jay@example.com", Role: models.RoleJobseeker}
	require.NoError(t, store.CreateUser(ctx, seeker))
	// Written straight to the store, skipping CreateJob validation.
	job := &models.Job{Title: "O'Reilly Dev\r\nBcc: attacker@example.test", Company: "Globex", Location: "Pune", Description: "D", PostedBy: uuid.New()}
	require.NoError(t, store.CreateJob(ctx, job))

	var sent []sentEmail
	service := NewNotificationService(store, store, &config.Config{})
	service.send = func(to, subject, body string) error {
		sent = append(sent, sentEmail{to, subject, body})
		return nil
	}

	app := &models.Application{JobID: job.ID, JobseekerID: seeker.ID, Status: models.ApplicationStatusHold}
	require.NoError(t, service.ApplicationStatusChanged(ctx, app))

	require.Len(t, sent, 1)
	assert.Equal(t, "Application update - O'Reilly Dev Bcc: attacker@example.test", sent[0].subject)
	assert.NotContains(t, sent[0].subject, "&#39;")
	assert.Contains(t, sent[0].body, "O&#39;Reilly Dev")
}

func TestBuildMessageKeepsHeadersOnOneLine(t *testing.T) {
	msg := string(buildMessage("HireSwipe", "noreply@hireswipe.test", "jay@example.com\r\nCc: x@example.test",
		"Application update - Dev\r\nBcc: attacker@example.test", "<p>body</p>"))

	head, body, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found)
	assert.Equal(t, "<p>body</p>", body)

	lines := strings.Split(head, "\r\n")
	assert.Equal(t, []string{
		"From: HireSwipe <noreply@hireswipe.test>",
		"To: jay@example.com Cc: x@example.test",
		"Subject: Application update - Dev Bcc: attacker@example.test",
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
	}, lines)
}

func TestBuildMessageEncodesNonASCIISubject(t *testing.T) {
	msg := string(buildMessage("HireSwipe", "noreply@hireswipe.test", "jay@example.com", "面試通知 - Dev", "b"))
	assert.Contains(t, msg, "Subject: =?utf-8?q?")
	assert.NotContains(t, msg, "面試")
}

func TestNotificationForUnknownSeeker(t *testing.T) {
	store := repotest.NewMemoryStore()
	service := NewNotificationService(store, store, &config.Config{})

	err := service.ApplicationStatusChanged(context.Background(), &models.Application{JobseekerID: uuid.New()})
	assert.Error(t, err)
}

func TestSendEmailWithoutSMTPIsSkipped(t *testing.T) {
	service := NewNotificationService(nil, nil, &config.Config{})
	assert.NoError(t, service.sendEmail("jay@example.com", "subject", "body"))
}
