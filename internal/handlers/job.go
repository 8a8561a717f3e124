// internal/handlers/job.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/hireswipe-backend/internal/i18n"
	"github.com/javajoker/hireswipe-backend/internal/services"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// POST /jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req services.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyJobCreated),
		"job":     job,
	})
}

// GET /jobs
func (h *JobHandler) GetJobs(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	params := services.JobSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		Location:         c.Query("location"),
		Company:          c.Query("company"),
	}
	if raw := c.Query("max_experience"); raw != "" {
		maxExperience, err := strconv.Atoi(raw)
		if err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "max_experience"), nil)
			return
		}
		params.MaxExperience = &maxExperience
	}

	jobs, total, err := h.jobService.ListJobs(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(jobs, total, params.PaginationParams))
}

// GET /jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, job)
}

// GET /jobs/my-jobs
func (h *JobHandler) GetMyJobs(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListMyJobs(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, jobs)
}
