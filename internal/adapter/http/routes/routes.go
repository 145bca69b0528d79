package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "taskloop/docs"
	request "taskloop/internal/adapter/http/dto/request"
	"taskloop/internal/adapter/http/handlers"
	"taskloop/internal/adapter/http/middleware"
	"taskloop/internal/domain/calendar"
	"taskloop/internal/infrastructure/config"
	"taskloop/internal/infrastructure/export"
	"taskloop/internal/infrastructure/logging"
	"taskloop/internal/infrastructure/payments"
	"taskloop/internal/usecase"
	"taskloop/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	BasePath        = "/v1"
	shutdownTimeout = 15 * time.Second
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Client         *handlers.ClientHandler
	Quote          *handlers.QuoteHandler
	Job            *handlers.JobHandler
	Request        *handlers.WorkRequestHandler
	Invoice        *handlers.InvoiceHandler
	InvoicePayment *handlers.InvoicePaymentHandler
	Calendar       *handlers.CalendarHandler
}

// NewHandlers wires use cases over storage. A nil gateway leaves payments
// answering 503.
func NewHandlers(s Storage, gateway interfaces.IPaymentGateway, exporter interfaces.IInvoiceExporter, loc *time.Location) Handlers {
	return Handlers{
		Client:         handlers.NewClientHandler(usecase.NewClientUseCase(s.Clients)),
		Quote:          handlers.NewQuoteHandler(usecase.NewQuoteUseCase(s.Quotes, s.Jobs)),
		Job:            handlers.NewJobHandler(usecase.NewJobUseCase(s.Jobs)),
		Request:        handlers.NewWorkRequestHandler(usecase.NewRequestUseCase(s.Requests)),
		Invoice:        handlers.NewInvoiceHandler(usecase.NewInvoiceUseCase(s.Invoices, s.Jobs, s.Clients, exporter)),
		InvoicePayment: handlers.NewInvoicePaymentHandler(usecase.NewInvoicePaymentUseCase(s.Payments, s.Invoices, gateway, s.PaymentLocks)),
		Calendar:       handlers.NewCalendarHandler(usecase.NewCalendarUseCase(s.Jobs, s.Requests, calendar.NewLayout(loc))),
	}
}

// RegisterValidations installs the custom binding rules on gin's validator.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return request.RegisterValidations(v)
}

// NewRouter mounts the API under BasePath plus the swagger UI.
func NewRouter(h Handlers, corsOrigins []string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, corsOrigins)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group(BasePath)
	addPingRoutes(v1)
	addClientRoutes(v1, h.Client)
	addWorkRoutes(v1, h.Quote, h.Job, h.Request, h.Invoice)
	addBillingRoutes(v1, h.Invoice, h.InvoicePayment)
	addCalendarRoutes(v1, h.Calendar)
	return router
}

func setMiddlewares(router *gin.Engine, corsOrigins []string) {
	logger := logging.Logger()
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(corsOrigins))
}

// Run starts the server and blocks until SIGINT/SIGTERM, then drains
// in-flight requests.
func Run(cfg config.Config) error {
	log := logging.For("server", "run")
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if err := RegisterValidations(); err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	request.SetLocation(loc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.WithError(err).Warn("close storage")
		}
	}()

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.WithError(err).Warn("Mercado Pago gateway not configured")
	} else {
		gateway = mpGateway
	}

	router := NewRouter(NewHandlers(storage, gateway, export.NewInvoiceXLSXExporter(), loc), cfg.CORSOrigins)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()
	log.WithField("port", cfg.Port).Info("server started")

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
