package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Mint ledger
		v1.POST("/mints", handler.RecordMint)
		v1.GET("/mints/posts/:id", handler.ListPostMints)
		v1.GET("/mints/minters/:address", handler.ListMinterMints)

		// Stars economy
		v1.GET("/stars/:address", handler.GetBalance)
		v1.POST("/stars/withdraw", handler.Withdraw)

		// Custodial wallet status
		v1.GET("/wallet", handler.GetWallet)

		// Notifications
		v1.GET("/notifications/:address", handler.ListNotifications)
		v1.GET("/notifications/:address/unread-count", handler.GetUnreadCount)
		v1.PUT("/notifications/:address/:id/read", handler.MarkNotificationRead)
		v1.PUT("/notifications/:address/read-all", handler.MarkAllNotificationsRead)

		// Missions
		v1.GET("/missions/:address", handler.ListMissions)
		v1.POST("/missions/:address/claim/:mission_id", handler.ClaimMission)
	}
}
