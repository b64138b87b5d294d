// internal/app/router.go
package app

import (
	authHandler "gari-service/internal/handlers/auth"
	catalogHandler "gari-service/internal/handlers/catalog"
	inquiryHandler "gari-service/internal/handlers/inquiry"
	listingHandler "gari-service/internal/handlers/listing"
	wsHandler "gari-service/internal/handlers/websocket"
	"gari-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	CatalogHandler *catalogHandler.CatalogHandler
	ListingHandler *listingHandler.ListingHandler
	InquiryHandler *inquiryHandler.InquiryHandler
	WSHandler      *wsHandler.WebSocketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	r.Use(middleware.RecoveryMiddleware(logger))

	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.WSHandler.HandleConnection)

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/register", h.AuthHandler.Register)
		authPublic.POST("/login", h.AuthHandler.Login)
	}

	// ==================== Authenticated Auth Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.POST("/logout", h.AuthHandler.Logout)
		authProtected.POST("/logout-all", h.AuthHandler.LogoutAll)
		authProtected.GET("/me", h.AuthHandler.GetMe)
	}

	// ==================== Catalog ====================
	makes := api.Group("/makes")
	{
		makes.GET("", h.CatalogHandler.ListMakes)
		makes.GET("/:id", h.CatalogHandler.GetMake)
	}

	// ==================== Home ====================
	api.GET("/home", h.ListingHandler.Home)

	// ==================== Listings ====================
	listings := api.Group("/listings")
	{
		// Public browsing. Static segments before the slug parameter.
		listings.GET("", h.ListingHandler.List)
		listings.GET("/new", h.ListingHandler.ListNew)
		listings.GET("/reconditioned", h.ListingHandler.ListReconditioned)
		listings.GET("/:slug", h.ListingHandler.Get)

		// Anonymous inquiry submission on a listing
		listings.POST("/:slug/inquiries", h.InquiryHandler.Submit)

		// Owner-only lifecycle
		listingsAuth := listings.Group("")
		listingsAuth.Use(h.AuthMiddleware.Auth())
		{
			listingsAuth.POST("", h.ListingHandler.Create)
			listingsAuth.PUT("/:slug", h.ListingHandler.Update)
			listingsAuth.DELETE("/:slug", h.ListingHandler.Delete)
			listingsAuth.PUT("/:slug/sold", h.ListingHandler.MarkSold)
		}
	}

	// ==================== Seller Dashboard ====================
	my := api.Group("/my")
	my.Use(h.AuthMiddleware.Auth())
	{
		my.GET("/listings", h.ListingHandler.MyListings)
		my.GET("/inquiries", h.InquiryHandler.ListMine)
	}

	// ==================== Inquiries ====================
	inquiries := api.Group("/inquiries")
	inquiries.Use(h.AuthMiddleware.Auth())
	{
		inquiries.PUT("/:id/responded", h.InquiryHandler.ToggleResponded)
	}
}
