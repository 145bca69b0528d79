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

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ListQuotes godoc
// @Summary  List quotes
// @Tags     quotes
// @Produce  json
// @Param    client_id  query  string  false  "Client ID"
// @Param    status     query  string  false  "draft, sent, approved, rejected or changes_requested"
// @Success  200  {object}  response.ListResponse[response.QuoteResponse]
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var q request.DocumentListQuery
	if !bindQuery(c, &q) {
		return
	}

	quotes, err := h.usecase.List(c.Request.Context(), usecase.QuoteFilter{
		ClientID: q.ClientID,
		Status:   entities.QuoteStatus(q.Status),
	})
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(quotes, response.FromQuote))
}

// GetQuote godoc
// @Summary  Get a quote
// @Tags     quotes
// @Produce  json
// @Param    id  path  string  true  "Quote ID"
// @Success  200  {object}  response.QuoteResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// CreateQuote godoc
// @Summary  Create a quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body  body  request.CreateQuoteRequest  true  "Quote"
// @Success  201  {object}  response.QuoteResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	quote, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// UpdateQuote godoc
// @Summary  Patch a quote
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id    path  string                      true  "Quote ID"
// @Param    body  body  request.UpdateQuoteRequest  true  "Fields to change"
// @Success  200  {object}  response.QuoteResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id} [patch]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.UpdateQuoteRequest
	if !bindJSON(c, &payload) {
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	quote, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateQuoteStatus godoc
// @Summary  Set a quote's status
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id    path  string                      true  "Quote ID"
// @Param    body  body  request.QuoteStatusRequest  true  "New status"
// @Success  200  {object}  response.QuoteResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.QuoteStatusRequest
	if !bindJSON(c, &payload) {
		return
	}

	quote, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.QuoteStatus(payload.Status))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// DeleteQuote godoc
// @Summary  Delete a quote
// @Tags     quotes
// @Param    id  path  string  true  "Quote ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ConvertQuote godoc
// @Summary      Convert a quote into a job
// @Description  Creates a scheduled job from the quote and marks the quote approved.
// @Tags         quotes
// @Produce      json
// @Param        id  path  string  true  "Quote ID"
// @Success      201  {object}  response.JobResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/convert [post]
func (h *QuoteHandler) ConvertQuote(c *gin.Context) {
	job, err := h.usecase.ConvertToJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return invalidStatus("draft, sent, approved, rejected, changes_requested")
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuote):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
