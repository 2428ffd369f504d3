package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasir/internal/application/service"
	"github.com/sangkips/kasir/internal/config"
	"github.com/sangkips/kasir/internal/infrastructure/api"
	"github.com/sangkips/kasir/internal/infrastructure/repository"
	"github.com/sangkips/kasir/internal/presentation/http/handler"
	"github.com/sangkips/kasir/internal/presentation/http/middleware"
	"github.com/sangkips/kasir/internal/presentation/http/routes"
	"github.com/sangkips/kasir/pkg/printer"
	"github.com/sangkips/kasir/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the store server
	client, err := api.NewClient(api.OptionsFromConfig(&cfg.API))
	if err != nil {
		log.Fatalf("Failed to configure store API client: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize session manager
	sessions := utils.NewSessionManager(cfg.Session.Secret)
	if !sessions.Verifies() {
		log.Printf("Warning: SESSION_SECRET is empty, session signatures are not verified")
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(client)
	categoryRepo := repository.NewCategoryRepository(client)
	transactionRepo := repository.NewTransactionRepository(client)
	expenseRepo := repository.NewExpenseRepository(client)
	cashLogRepo := repository.NewCashLogRepository(client)
	receiptUploader := repository.NewReceiptUploader(client)
	submissionRepo := repository.NewSubmissionRepository()

	// Initialize services
	pageLimit := cfg.Store.DefaultPageLimit
	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	transactionService := service.NewTransactionService(transactionRepo, pageLimit, cfg.API.Timeout)
	checkoutService := service.NewCheckoutService(transactionService, cfg.Store.Name)
	expenseService := service.NewExpenseService(expenseRepo, receiptUploader, pageLimit, cfg.API.Timeout)
	cashLogService := service.NewCashLogService(cashLogRepo, pageLimit, cfg.API.Timeout)
	carts := service.NewCartRegistry(cfg.Session.CartIdleTTL, 10*time.Minute)
	defer carts.Stop()

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, transactionRepo, cfg.Printer.Type, cfg.Store.Name, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Catalog:     handler.NewCatalogHandler(catalogService),
		Cart:        handler.NewCartHandler(carts, catalogService),
		Checkout:    handler.NewCheckoutHandler(carts, checkoutService),
		Transaction: handler.NewTransactionHandler(transactionService, cfg.Store.Name),
		Expense:     handler.NewExpenseHandler(expenseService),
		CashLog:     handler.NewCashLogHandler(cashLogService),
		Printer:     handler.NewPrinterHandler(printerService),
	}

	rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfigFor(cfg.RateLimit.Requests, cfg.RateLimit.Duration))
	defer rateLimiter.Stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Sessions:       sessions,
		Cfg:            cfg,
		SubmissionRepo: submissionRepo,
		RateLimiter:    rateLimiter,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8081"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s, store API: %s", cfg.App.Env, cfg.API.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
