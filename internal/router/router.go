package router

import (
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hzkfs012/zapatoofficial/internal/handlers"
	"github.com/hzkfs012/zapatoofficial/internal/middleware"
	"github.com/hzkfs012/zapatoofficial/internal/repositories"
	"github.com/hzkfs012/zapatoofficial/internal/services"
)

// Setup initializes the routing for the application. The status registry is
// loaded from the database enum types once, before any route is served.
func Setup(engine *gin.Engine, db *sql.DB) error {
	// Initialize Repositories
	enumRepo := repositories.NewEnumRepository(db)
	authRepo := repositories.NewAuthRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	statuses, err := enumRepo.LoadStatusRegistry()
	if err != nil {
		return fmt.Errorf("loading status registry: %w", err)
	}

	// Initialize Services
	authService := services.NewAuthService(authRepo)
	contentService := services.NewContentService()
	bookingService := services.NewBookingService(bookingRepo, contentService, statuses, db)
	expenseService := services.NewExpenseService(expenseRepo, statuses, db)
	galleryService := services.NewGalleryService(galleryRepo, db)
	statsService := services.NewStatsService(statsRepo)
	invoiceService := services.NewInvoiceService()
	reportService := services.NewReportService(bookingRepo, expenseRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	contentHandler := handlers.NewContentHandler(contentService)
	bookingHandler := handlers.NewBookingHandler(bookingService, invoiceService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, reportService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	statsHandler := handlers.NewStatsHandler(statsService, reportService)

	apiV1 := engine.Group("/api/v1")

	// Public site routes: no authentication.
	SetupPublicRoutes(apiV1, bookingHandler, galleryHandler, contentHandler)
	SetupAuthRoutes(apiV1, authHandler)

	// Admin routes: JWT plus the Admin role.
	authenticated := apiV1.Group("/admin")
	authenticated.Use(middleware.AuthMiddleware())
	authenticated.Use(middleware.RoleAuthMiddleware("Admin"))
	{
		SetupBookingRoutes(authenticated, bookingHandler)
		SetupExpenseRoutes(authenticated, expenseHandler)
		SetupGalleryRoutes(authenticated, galleryHandler)
		SetupStatsRoutes(authenticated, statsHandler)
	}

	return nil
}
