// internal/handlers/saved_job.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/hireswipe-backend/internal/i18n"
	"github.com/javajoker/hireswipe-backend/internal/services"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

type SavedJobHandler struct {
	savedJobService *services.SavedJobService
}

func NewSavedJobHandler(savedJobService *services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{
		savedJobService: savedJobService,
	}
}

// POST /saved-jobs
func (h *SavedJobHandler) SaveJob(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req services.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	saved, err := h.savedJobService.Save(c.Request.Context(), actor, req.JobID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeySavedJobSaved),
		"saved_job": saved,
	})
}

// GET /saved-jobs
func (h *SavedJobHandler) GetSavedJobs(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	saved, err := h.savedJobService.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, saved)
}

// DELETE /saved-jobs/:jobId
func (h *SavedJobHandler) RemoveSavedJob(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	jobID, ok := uuidParam(c, "jobId")
	if !ok {
		return
	}

	if err := h.savedJobService.Remove(c.Request.Context(), actor, jobID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySavedJobRemoved),
	})
}
