package routes

import (
	"taskloop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathInvoices = "/invoices"

func addBillingRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.InvoicePaymentHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/export", invoiceHandler.ExportInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PATCH("/:id", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		invoices.PATCH("/:id/status", invoiceHandler.UpdateInvoiceStatus)

		invoices.POST("/:id/payments", paymentHandler.CreatePayment)
		invoices.GET("/:id/payments", paymentHandler.ListPayments)
	}
}
