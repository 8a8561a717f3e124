// internal/handlers/application.go
package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/hireswipe-backend/internal/i18n"
	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/services"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

// Layouts accepted for interview dates; the second is what a browser datetime-local input sends.
var interviewDateLayouts = []string{time.RFC3339, "2006-01-02T15:04"}

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

type scheduleInterviewBody struct {
	Date string `json:"date"`
	Link string `json:"link"`
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// POST /applications
func (h *ApplicationHandler) Apply(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req services.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	application, err := h.applicationService.Create(c.Request.Context(), actor, req.JobID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyApplicationCreated),
		"application": application,
	})
}

// GET /applications
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListForJobseeker(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, applications)
}

// GET /applications/my-interviews
func (h *ApplicationHandler) GetMyInterviews(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListScheduledInterviews(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, applications)
}

// GET /applications/recruiter?status=
func (h *ApplicationHandler) GetRecruiterApplications(c *gin.Context) {
	var status *models.ApplicationStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		s := models.ApplicationStatus(raw)
		status = &s
	}
	h.listForRecruiter(c, status)
}

// GET /jobs/held-applicants
func (h *ApplicationHandler) GetHeldApplicants(c *gin.Context) {
	status := models.ApplicationStatusHold
	h.listForRecruiter(c, &status)
}

// GET /jobs/accepted-applicants
func (h *ApplicationHandler) GetAcceptedApplicants(c *gin.Context) {
	status := models.ApplicationStatusAccepted
	h.listForRecruiter(c, &status)
}

func (h *ApplicationHandler) listForRecruiter(c *gin.Context, status *models.ApplicationStatus) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListForRecruiterJobs(c.Request.Context(), actor.ID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, applications)
}

// PATCH /applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	applicationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req services.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	application, err := h.applicationService.SetStatus(c.Request.Context(), actor, applicationID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyApplicationStatusUpdated),
		"application": application,
	})
}

// PUT /applications/:id/interview
func (h *ApplicationHandler) ScheduleInterview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	applicationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var body scheduleInterviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	input := services.ScheduleInterviewInput{Link: body.Link}
	if raw := strings.TrimSpace(body.Date); raw != "" {
		date, ok := parseInterviewDate(raw)
		if !ok {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "date"), nil)
			return
		}
		input.Date = date
	}

	application, err := h.applicationService.ScheduleInterview(c.Request.Context(), actor, applicationID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyInterviewScheduled),
		"application": application,
	})
}

// DELETE /applications/:id/interview
func (h *ApplicationHandler) CancelInterview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	applicationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	application, err := h.applicationService.CancelInterview(c.Request.Context(), actor, applicationID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, i18n.KeyInterviewCancelled),
		"application": application,
	})
}

// DELETE /applications/:id
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	applicationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(c.Request.Context(), actor, applicationID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyApplicationWithdrawn),
	})
}

func parseInterviewDate(raw string) (time.Time, bool) {
	for _, layout := range interviewDateLayouts {
		if date, err := time.Parse(layout, raw); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}
