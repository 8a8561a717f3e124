// internal/services/notification_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strings"
	texttemplate "text/template"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/hireswipe-backend/internal/config"
	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/repository"
)

type NotificationService struct {
	users  repository.UserStore
	jobs   repository.JobStore
	config *config.Config
	send   func(to, subject, body string) error
}

type EmailTemplate struct {
	Subject string
	Body    string
}

var _ Notifier = (*NotificationService)(nil)

func NewNotificationService(users repository.UserStore, jobs repository.JobStore, config *config.Config) *NotificationService {
	s := &NotificationService{
		users:  users,
		jobs:   jobs,
		config: config,
	}
	s.send = s.sendEmail
	return s
}

func (s *NotificationService) ApplicationStatusChanged(ctx context.Context, app *models.Application) error {
	return s.notifyJobseeker(ctx, app, "status_changed", map[string]interface{}{
		"Status": app.Status,
	})
}

func (s *NotificationService) InterviewScheduled(ctx context.Context, app *models.Application) error {
	data := map[string]interface{}{
		"Link": app.Interview.Link,
	}
	if app.Interview.Date != nil {
		data["Date"] = app.Interview.Date.Format("Mon, 02 Jan 2006 15:04 MST")
	}
	return s.notifyJobseeker(ctx, app, "interview_scheduled", data)
}

func (s *NotificationService) InterviewCancelled(ctx context.Context, app *models.Application) error {
	return s.notifyJobseeker(ctx, app, "interview_cancelled", nil)
}

func (s *NotificationService) notifyJobseeker(ctx context.Context, app *models.Application, templateType string, extra map[string]interface{}) error {
	seeker, err := s.users.FindUserByID(ctx, app.JobseekerID)
	if err != nil {
		return fmt.Errorf("failed to load jobseeker: %w", err)
	}

	job := app.Job
	if job == nil {
		if job, err = s.jobs.FindJobByID(ctx, app.JobID); err != nil {
			return fmt.Errorf("failed to load job: %w", err)
		}
	}

	data := map[string]interface{}{
		"Name":           seeker.Name,
		"JobTitle":       job.Title,
		"Company":        job.Company,
		"ApplicationURL": fmt.Sprintf("%s/applications", s.config.Frontend.BaseURL),
	}
	for k, v := range extra {
		data[k] = v
	}

	tmpl := s.getEmailTemplate(templateType)
	subject, err := renderSubject(tmpl.Subject, data)
	if err != nil {
		return fmt.Errorf("failed to render email subject: %w", err)
	}
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.send(seeker.Email, subject, body)
}

// Helper methods
func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("Email not configured, skipping delivery")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)
	msg := buildMessage(s.config.Email.FromName, s.config.Email.FromEmail, to, subject, body)

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

// buildMessage assembles the RFC 5322 message. Header values are folded to a single line and
// the subject is Q-encoded, so template data cannot add headers.
func buildMessage(fromName, fromEmail, to, subject, body string) []byte {
	headers := []string{
		"From: " + mime.QEncoding.Encode("utf-8", headerValue(fromName)) + " <" + headerValue(fromEmail) + ">",
		"To: " + headerValue(to),
		"Subject: " + mime.QEncoding.Encode("utf-8", headerValue(subject)),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
	}
	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + body)
}

// headerValue replaces control characters (CR and LF included) with spaces and collapses runs of
// whitespace.
func headerValue(v string) string {
	v = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, v)
	return strings.Join(strings.Fields(v), " ")
}

// renderSubject renders a plain-text subject on a single line.
func renderSubject(templateStr string, data interface{}) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return headerValue(buf.String()), nil
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"status_changed": {
			Subject: "Application update - {{.JobTitle}}",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<p>Hello {{.Name}},</p>
	<p>Your application for "{{.JobTitle}}" at {{.Company}} is now <strong>{{.Status}}</strong>.</p>
	<a href="{{.ApplicationURL}}">View my applications</a>
</body>
</html>`,
		},
		"interview_scheduled": {
			Subject: "Interview scheduled - {{.JobTitle}}",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<p>Hello {{.Name}},</p>
	<p>{{.Company}} scheduled an interview for "{{.JobTitle}}" on {{.Date}}.</p>
	<p><a href="{{.Link}}">Join the interview</a></p>
</body>
</html>`,
		},
		"interview_cancelled": {
			Subject: "Interview cancelled - {{.JobTitle}}",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<p>Hello {{.Name}},</p>
	<p>Your interview for "{{.JobTitle}}" at {{.Company}} has been cancelled.</p>
	<a href="{{.ApplicationURL}}">View my applications</a>
</body>
</html>`,
		},
	}

	if template, exists := templates[templateType]; exists {
		return template
	}

	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.Name}}, there is an update on your application for {{.JobTitle}}.</p>",
	}
}
