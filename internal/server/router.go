package server

import (
	handler "auction-room/services/auction/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionHandler *handler.AuctionHandler, depositHandler *handler.DepositHandler, wsHandler *handler.WSHandler) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/ws", wsHandler.ServeWS)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.ScheduleHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/start", auctionHandler.StartHandler)
		auctions.POST("/:auction_id/end", auctionHandler.EndHandler)
		auctions.GET("/:auction_id/result", auctionHandler.ResultHandler)
		auctions.GET("/:auction_id/bids", auctionHandler.PendingBidsHandler)
		auctions.GET("/:auction_id/actions", auctionHandler.AdminActionsHandler)
	}

	deposits := router.Group("/deposits")
	{
		deposits.POST("/initiate", depositHandler.InitiateHandler)
		deposits.GET("/:deposit_id/status", depositHandler.StatusHandler)
		deposits.POST("/webhook", depositHandler.WebhookHandler)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
