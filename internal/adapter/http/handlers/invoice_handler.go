package handlers

import (
	"bytes"
	"errors"
	"net/http"

	request "taskloop/internal/adapter/http/dto/request"
	response "taskloop/internal/adapter/http/dto/response"
	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase"
	"taskloop/pkg"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// ListInvoices godoc
// @Summary  List invoices
// @Tags     invoices
// @Produce  json
// @Param    client_id  query  string  false  "Client ID"
// @Param    job_id     query  string  false  "Job ID"
// @Param    status     query  string  false  "draft, sent, paid or past_due"
// @Success  200  {object}  response.ListResponse[response.InvoiceResponse]
// @Router   /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var q request.DocumentListQuery
	if !bindQuery(c, &q) {
		return
	}

	invoices, err := h.usecase.List(c.Request.Context(), usecase.InvoiceFilter{
		ClientID: q.ClientID,
		JobID:    q.JobID,
		Status:   entities.InvoiceStatus(q.Status),
	})
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(invoices, response.FromInvoice))
}

// GetInvoice godoc
// @Summary  Get an invoice
// @Tags     invoices
// @Produce  json
// @Param    id  path  string  true  "Invoice ID"
// @Success  200  {object}  response.InvoiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// CreateInvoice godoc
// @Summary  Create an invoice
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    body  body  request.CreateInvoiceRequest  true  "Invoice"
// @Success  201  {object}  response.InvoiceResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	inv, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// CreateInvoiceFromJob godoc
// @Summary  Draft an invoice from a job
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    id    path  string                         true   "Job ID"
// @Param    body  body  request.InvoiceFromJobRequest  false  "Tax rate"
// @Success  201  {object}  response.InvoiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /jobs/{id}/invoice [post]
func (h *InvoiceHandler) CreateInvoiceFromJob(c *gin.Context) {
	var payload request.InvoiceFromJobRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &payload) {
		return
	}

	inv, err := h.usecase.CreateFromJob(c.Request.Context(), c.Param("id"), payload.TaxRateOrZero())
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// UpdateInvoice godoc
// @Summary  Patch an invoice
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    id    path  string                        true  "Invoice ID"
// @Param    body  body  request.UpdateInvoiceRequest  true  "Fields to change"
// @Success  200  {object}  response.InvoiceResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /invoices/{id} [patch]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var payload request.UpdateInvoiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	inv, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// UpdateInvoiceStatus godoc
// @Summary  Set an invoice's status
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    id    path  string                        true  "Invoice ID"
// @Param    body  body  request.InvoiceStatusRequest  true  "New status"
// @Success  200  {object}  response.InvoiceResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var payload request.InvoiceStatusRequest
	if !bindJSON(c, &payload) {
		return
	}

	inv, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.InvoiceStatus(payload.Status))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// DeleteInvoice godoc
// @Summary  Delete an invoice
// @Tags     invoices
// @Param    id  path  string  true  "Invoice ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportInvoices godoc
// @Summary  Download every invoice as a spreadsheet
// @Tags     invoices
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success  200  {file}  file
// @Failure  500  {object}  pkg.HTTPError
// @Router   /invoices/export [get]
func (h *InvoiceHandler) ExportInvoices(c *gin.Context) {
	var buf bytes.Buffer
	result, err := h.usecase.Export(c.Request.Context(), &buf)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+result.FileName)
	c.Data(http.StatusOK, result.ContentType, buf.Bytes())
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return invalidStatus("draft, sent, paid, past_due")
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInvoice), errors.Is(err, usecase.ErrInvalidJobID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExporterNotConfigured):
		return pkg.NewDomainError("EXPORT_UNAVAILABLE", "Invoice export is not available", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
