package handlers

import (
	"errors"
	"net/http"

	request "taskloop/internal/adapter/http/dto/request"
	response "taskloop/internal/adapter/http/dto/response"
	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase"
	"taskloop/pkg"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// ListJobs godoc
// @Summary  List jobs
// @Tags     jobs
// @Produce  json
// @Param    client_id  query  string  false  "Client ID"
// @Param    status     query  string  false  "scheduled, in_progress, completed or cancelled"
// @Success  200  {object}  response.ListResponse[response.JobResponse]
// @Router   /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var q request.DocumentListQuery
	if !bindQuery(c, &q) {
		return
	}

	jobs, err := h.usecase.List(c.Request.Context(), usecase.JobFilter{
		ClientID: q.ClientID,
		Status:   entities.JobStatus(q.Status),
	})
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(jobs, response.FromJob))
}

// GetJob godoc
// @Summary  Get a job
// @Tags     jobs
// @Produce  json
// @Param    id  path  string  true  "Job ID"
// @Success  200  {object}  response.JobResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// CreateJob godoc
// @Summary  Create a job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    body  body  request.CreateJobRequest  true  "Job"
// @Success  201  {object}  response.JobResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// UpdateJob godoc
// @Summary      Patch a job
// @Description  Set unschedule to clear the scheduled window.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Job ID"
// @Param        body  body  request.UpdateJobRequest  true  "Fields to change"
// @Success      200  {object}  response.JobResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /jobs/{id} [patch]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.UpdateJobRequest
	if !bindJSON(c, &payload) {
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	job, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// UpdateJobStatus godoc
// @Summary  Set a job's status
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    id    path  string                    true  "Job ID"
// @Param    body  body  request.JobStatusRequest  true  "New status"
// @Success  200  {object}  response.JobResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /jobs/{id}/status [patch]
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	var payload request.JobStatusRequest
	if !bindJSON(c, &payload) {
		return
	}

	job, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.JobStatus(payload.Status))
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// DeleteJob godoc
// @Summary  Delete a job
// @Tags     jobs
// @Param    id  path  string  true  "Job ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobStatus):
		return invalidStatus("scheduled, in_progress, completed, cancelled")
	case errors.Is(err, usecase.ErrInvalidJobSchedule):
		return pkg.NewValidationError(map[string]string{"scheduled_end": "must be after scheduled_start"})
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJob):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
