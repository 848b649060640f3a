package router

import (
	"github.com/gin-gonic/gin"

	"github.com/hzkfs012/zapatoofficial/internal/handlers"
	"github.com/hzkfs012/zapatoofficial/internal/middleware"
)

// SetupPublicRoutes sets up the unauthenticated site routes.
func SetupPublicRoutes(apiGroup *gin.RouterGroup, bookingHandler *handlers.BookingHandler, galleryHandler *handlers.GalleryHandler, contentHandler *handlers.ContentHandler) {
	apiGroup.POST("/booking-requests", bookingHandler.CreateBookingRequest)
	apiGroup.GET("/gallery", galleryHandler.GetGalleryItems)
	apiGroup.GET("/services", contentHandler.GetServices)
	apiGroup.GET("/testimonials", contentHandler.GetTestimonials)
}

// SetupAuthRoutes sets up the authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.LoginUser)
		authRoutes.POST("/refresh-token", authHandler.RefreshToken)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.POST("/logout", authHandler.LogoutUser)
			authRequiredRoutes.GET("/me", authHandler.GetCurrentUser)
		}
	}
}

// SetupBookingRoutes sets up the admin booking routes.
func SetupBookingRoutes(authenticatedGroup *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookingRoutes := authenticatedGroup.Group("/bookings")
	{
		bookingRoutes.GET("", bookingHandler.GetBookings)
		bookingRoutes.GET("/:id", bookingHandler.GetBookingByID)
		bookingRoutes.PATCH("/:id", bookingHandler.UpdateBooking)
		bookingRoutes.DELETE("/:id", bookingHandler.DeleteBooking)
		bookingRoutes.GET("/:id/invoice", bookingHandler.DownloadInvoice)
	}
}

// SetupExpenseRoutes sets up the admin expense routes.
func SetupExpenseRoutes(authenticatedGroup *gin.RouterGroup, expenseHandler *handlers.ExpenseHandler) {
	expenseRoutes := authenticatedGroup.Group("/expenses")
	{
		expenseRoutes.POST("", expenseHandler.CreateExpense)
		expenseRoutes.GET("", expenseHandler.GetExpenses)
		expenseRoutes.GET("/chart", expenseHandler.GetExpenseChart)
		expenseRoutes.DELETE("/:id", expenseHandler.DeleteExpense)
	}
}

// SetupGalleryRoutes sets up the admin gallery routes.
func SetupGalleryRoutes(authenticatedGroup *gin.RouterGroup, galleryHandler *handlers.GalleryHandler) {
	galleryRoutes := authenticatedGroup.Group("/gallery")
	{
		galleryRoutes.POST("", galleryHandler.CreateGalleryItem)
		galleryRoutes.PUT("/:id", galleryHandler.UpdateGalleryItem)
		galleryRoutes.DELETE("/:id", galleryHandler.DeleteGalleryItem)
	}
}

// SetupStatsRoutes sets up the admin dashboard routes.
func SetupStatsRoutes(authenticatedGroup *gin.RouterGroup, statsHandler *handlers.StatsHandler) {
	statsRoutes := authenticatedGroup.Group("/stats")
	{
		statsRoutes.GET("/daily", statsHandler.GetDailyStats)
		statsRoutes.GET("/export", statsHandler.ExportBookings)
	}
}
