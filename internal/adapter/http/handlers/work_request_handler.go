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

// WorkRequestHandler serves /requests.
type WorkRequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewWorkRequestHandler(uc usecase.IRequestUseCase) *WorkRequestHandler {
	return &WorkRequestHandler{usecase: uc}
}

// ListRequests godoc
// @Summary  List work requests
// @Tags     requests
// @Produce  json
// @Param    client_id  query  string  false  "Client ID"
// @Param    status     query  string  false  "new, assessment_complete, overdue or unscheduled"
// @Success  200  {object}  response.ListResponse[response.WorkRequestResponse]
// @Router   /requests [get]
func (h *WorkRequestHandler) ListRequests(c *gin.Context) {
	var q request.DocumentListQuery
	if !bindQuery(c, &q) {
		return
	}

	requests, err := h.usecase.List(c.Request.Context(), usecase.RequestFilter{
		ClientID: q.ClientID,
		Status:   entities.RequestStatus(q.Status),
	})
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(requests, response.FromRequest))
}

// GetRequest godoc
// @Summary  Get a work request
// @Tags     requests
// @Produce  json
// @Param    id  path  string  true  "Request ID"
// @Success  200  {object}  response.WorkRequestResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /requests/{id} [get]
func (h *WorkRequestHandler) GetRequest(c *gin.Context) {
	req, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(req))
}

// CreateRequest godoc
// @Summary  Create a work request
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    body  body  request.CreateWorkRequest  true  "Request"
// @Success  201  {object}  response.WorkRequestResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /requests [post]
func (h *WorkRequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateWorkRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	req, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromRequest(req))
}

// UpdateRequest godoc
// @Summary      Patch a work request
// @Description  Set clear_assessment to drop the booked assessment.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "Request ID"
// @Param        body  body  request.UpdateWorkRequest  true  "Fields to change"
// @Success      200  {object}  response.WorkRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /requests/{id} [patch]
func (h *WorkRequestHandler) UpdateRequest(c *gin.Context) {
	var payload request.UpdateWorkRequest
	if !bindJSON(c, &payload) {
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	req, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(req))
}

// UpdateRequestStatus godoc
// @Summary  Set a work request's status
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    id    path  string                        true  "Request ID"
// @Param    body  body  request.RequestStatusRequest  true  "New status"
// @Success  200  {object}  response.WorkRequestResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /requests/{id}/status [patch]
func (h *WorkRequestHandler) UpdateRequestStatus(c *gin.Context) {
	var payload request.RequestStatusRequest
	if !bindJSON(c, &payload) {
		return
	}

	req, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.RequestStatus(payload.Status))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(req))
}

// DeleteRequest godoc
// @Summary  Delete a work request
// @Tags     requests
// @Param    id  path  string  true  "Request ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /requests/{id} [delete]
func (h *WorkRequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestStatus):
		return invalidStatus("new, assessment_complete, overdue, unscheduled")
	case errors.Is(err, usecase.ErrInvalidRequestPriority):
		return pkg.NewValidationError(map[string]string{"priority": "must be one of: low, medium, high"})
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
