package routes

import (
	"github.com/boilermarket/boilermarket-backend/internal/handler"
	"github.com/boilermarket/boilermarket-backend/internal/middleware"
	"github.com/boilermarket/boilermarket-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// SetupAuth configures authentication routes
func SetupAuth(router *gin.Engine, h *handler.AuthHandler, jwtManager *jwt.Manager) {
	authGroup := router.Group("/api/v1/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)
	authGroup.POST("/refresh", h.Refresh)
	authGroup.GET("/me", middleware.JWTAuth(jwtManager), h.GetMe)
	authGroup.PUT("/me", middleware.JWTAuth(jwtManager), h.UpdateMe)
}

// SetupListings configures listing routes
func SetupListings(router *gin.Engine, h *handler.ListingHandler, jwtManager *jwt.Manager) {
	auth := middleware.JWTAuth(jwtManager)

	listings := router.Group("/api/v1/listings")
	listings.GET("", h.ListListings)
	listings.GET("/:id", middleware.OptionalJWTAuth(jwtManager), h.GetListing)
	listings.POST("", auth, h.CreateListing)
	listings.PUT("/:id", auth, h.UpdateListing)
	listings.DELETE("/:id", auth, h.DeleteListing)
	listings.PATCH("/:id/availability", auth, h.SetAvailability)

	me := router.Group("/api/v1/me", auth)
	me.GET("/listings", h.ListMyListings)
}

// SetupConversations configures conversation and message routes.
// Everything here requires a logged-in user.
func SetupConversations(router *gin.Engine, h *handler.ConversationHandler, jwtManager *jwt.Manager) {
	conversations := router.Group("/api/v1/conversations", middleware.JWTAuth(jwtManager))
	conversations.GET("", h.ListConversations)
	conversations.POST("", h.StartConversation)
	conversations.GET("/:id/messages", h.GetThread)
	conversations.POST("/:id/messages", h.SendMessage)
}

// SetupProfiles configures public profile routes
func SetupProfiles(router *gin.Engine, h *handler.ProfileHandler) {
	profiles := router.Group("/api/v1/profiles")
	profiles.GET("/:id", h.GetProfile)
}

// SetupUploads configures image upload routes
func SetupUploads(router *gin.Engine, h *handler.UploadHandler, jwtManager *jwt.Manager) {
	uploads := router.Group("/api/v1/uploads", middleware.JWTAuth(jwtManager))
	uploads.POST("/images", h.UploadImage)
}
