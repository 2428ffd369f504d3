package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasir/internal/config"
	domainRepo "github.com/sangkips/kasir/internal/domain/repository"
	"github.com/sangkips/kasir/internal/presentation/http/handler"
	"github.com/sangkips/kasir/internal/presentation/http/middleware"
	"github.com/sangkips/kasir/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Catalog     *handler.CatalogHandler
	Cart        *handler.CartHandler
	Checkout    *handler.CheckoutHandler
	Transaction *handler.TransactionHandler
	Expense     *handler.ExpenseHandler
	CashLog     *handler.CashLogHandler
	Printer     *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Sessions       *utils.SessionManager
	Cfg            *config.Config
	SubmissionRepo domainRepo.SubmissionRepository
	RateLimiter    *middleware.SessionRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes, all bound to a cashier session
	v1 := router.Group("/api/v1")
	v1.Use(middleware.SessionMiddleware(deps.Sessions, deps.Cfg.Store.DefaultBranch))
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}

	registerCatalogRoutes(v1, h)
	registerCartRoutes(v1, h)
	registerCheckoutRoutes(v1, h, deps)
	registerTransactionRoutes(v1, h)
	registerExpenseRoutes(v1, h)
	registerCashLogRoutes(v1, h)
	registerPrinterRoutes(v1, h)

	return router
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/products", h.Catalog.ListProducts)
	v1.GET("/products/:id", h.Catalog.GetProduct)
	v1.GET("/categories", h.Catalog.ListCategories)
}

func registerCartRoutes(v1 *gin.RouterGroup, h *Handlers) {
	cart := v1.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:product_id", h.Cart.UpdateItem)
		cart.DELETE("/items/:product_id", h.Cart.RemoveItem)
	}
}

func registerCheckoutRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	checkout := v1.Group("/checkout")
	{
		checkout.POST("/preview", h.Checkout.Preview)
		// One submission per session at a time; a repeated key replays
		checkout.POST("", middleware.NewSubmissionGuard(deps.SubmissionRepo).Middleware(), h.Checkout.Checkout)
	}
}

func registerTransactionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	transactions := v1.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.GET("/:id/receipt", h.Transaction.Receipt)
		transactions.POST("/:id/print", h.Printer.PrintTransaction)
	}
}

func registerExpenseRoutes(v1 *gin.RouterGroup, h *Handlers) {
	laporan := v1.Group("/laporan")
	{
		laporan.GET("", h.Expense.List)
		laporan.POST("", h.Expense.Create)
		laporan.GET("/export", h.Expense.Export)
		laporan.POST("/upload", h.Expense.UploadReceipt)
		laporan.GET("/:id", h.Expense.Get)
		laporan.PUT("/:id", h.Expense.Update)
		laporan.DELETE("/:id", h.Expense.Delete)
	}
}

func registerCashLogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	cashlog := v1.Group("/cashlog")
	{
		cashlog.GET("", h.CashLog.List)
		cashlog.POST("", h.CashLog.Create)
		cashlog.POST("/open", h.CashLog.Open)
		cashlog.POST("/close", h.CashLog.Close)
		cashlog.GET("/:id", h.CashLog.Get)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
