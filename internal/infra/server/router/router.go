// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	walletController     *controller.WalletController
	categoryController   *controller.CategoryController
	entryController      *controller.EntryController
	creditCardController *controller.CreditCardController
	recurringController  *controller.RecurringController
	processRateLimiter   *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	walletController *controller.WalletController,
	categoryController *controller.CategoryController,
	entryController *controller.EntryController,
	creditCardController *controller.CreditCardController,
	recurringController *controller.RecurringController,
	processRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		walletController:     walletController,
		categoryController:   categoryController,
		entryController:      entryController,
		creditCardController: creditCardController,
		recurringController:  recurringController,
		processRateLimiter:   processRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), requestLogger())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route requires a bearer token.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	wallets := v1.Group("/wallets")
	{
		wallets.GET("", r.walletController.List)
		wallets.POST("", r.walletController.Create)
		wallets.GET("/:id", r.walletController.Get)
		wallets.PATCH("/:id", r.walletController.Rename)
		wallets.DELETE("/:id", r.walletController.Delete)
		wallets.POST("/:id/archive", r.walletController.Archive)
		wallets.POST("/:id/unarchive", r.walletController.Unarchive)
		wallets.GET("/:id/transfers", r.walletController.Transfers)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PATCH("/:id", r.categoryController.Rename)
		categories.DELETE("/:id", r.categoryController.Delete)
		categories.POST("/:id/archive", r.categoryController.Archive)
		categories.POST("/:id/unarchive", r.categoryController.Unarchive)
	}

	entries := v1.Group("/entries")
	{
		entries.GET("", r.entryController.List)
		entries.POST("", r.entryController.Create)
		entries.GET("/:id", r.entryController.Get)
		entries.PATCH("/:id", r.entryController.Update)
		entries.DELETE("/:id", r.entryController.Delete)
		entries.POST("/:id/confirm", r.entryController.Confirm)
	}

	v1.POST("/transfers", r.entryController.Transfer)

	creditCards := v1.Group("/credit-cards")
	{
		creditCards.GET("", r.creditCardController.List)
		creditCards.POST("", r.creditCardController.Create)
		creditCards.PATCH("/:id", r.creditCardController.Update)
		creditCards.DELETE("/:id", r.creditCardController.Delete)
		creditCards.POST("/:id/archive", r.creditCardController.Archive)
		creditCards.POST("/:id/unarchive", r.creditCardController.Unarchive)
		creditCards.GET("/:id/available-credit", r.creditCardController.AvailableCredit)
		creditCards.GET("/:id/next-invoice-date", r.creditCardController.NextInvoiceDate)
		creditCards.GET("/:id/invoice", r.creditCardController.Invoice)
		creditCards.POST("/:id/invoice/pay", r.creditCardController.PayInvoice)
		creditCards.GET("/:id/debts", r.creditCardController.ListDebts)
		creditCards.POST("/:id/debts", r.creditCardController.RegisterDebt)
	}

	v1.DELETE("/debts/:id", r.creditCardController.DeleteDebt)
	v1.POST("/payments/:id/settle", r.creditCardController.SettlePayment)

	recurringRoutes := v1.Group("/recurring")
	{
		recurringRoutes.GET("", r.recurringController.List)
		recurringRoutes.POST("", r.recurringController.Create)
		recurringRoutes.GET("/last-occurrence", r.recurringController.LastOccurrence)
		recurringRoutes.GET("/projection", r.recurringController.Projection)
		recurringRoutes.POST("/process", r.processRateLimiter.Middleware(), r.recurringController.Process)
		recurringRoutes.PATCH("/:id", r.recurringController.Update)
		recurringRoutes.DELETE("/:id", r.recurringController.Delete)
		recurringRoutes.POST("/:id/stop", r.recurringController.Stop)
	}
}
