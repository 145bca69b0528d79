package routes

import (
	"taskloop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathJobs     = "/jobs"
	PathRequests = "/requests"
)

func addWorkRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, jobHandler *handlers.JobHandler, requestHandler *handlers.WorkRequestHandler, invoiceHandler *handlers.InvoiceHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.PATCH("/:id/status", quoteHandler.UpdateQuoteStatus)
		quotes.POST("/:id/convert", quoteHandler.ConvertQuote)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.PATCH("/:id", jobHandler.UpdateJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)
		jobs.PATCH("/:id/status", jobHandler.UpdateJobStatus)
		jobs.POST("/:id/invoice", invoiceHandler.CreateInvoiceFromJob)
	}

	requests := rg.Group(PathRequests)
	{
		requests.GET("", requestHandler.ListRequests)
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("/:id", requestHandler.GetRequest)
		requests.PATCH("/:id", requestHandler.UpdateRequest)
		requests.DELETE("/:id", requestHandler.DeleteRequest)
		requests.PATCH("/:id/status", requestHandler.UpdateRequestStatus)
	}
}
