package routes

import (
	"github.com/gin-gonic/gin"

	orderhandlers "campushub/internal/interfaces/http/handlers/order"
	"campushub/internal/interfaces/http/middleware"
)

type OrderRouteConfig struct {
	OrderHandler   *orderhandlers.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupOrderRoutes(engine *gin.Engine, config *OrderRouteConfig) {
	orders := engine.Group("/orders")
	orders.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths before the bare collection route.
		orders.POST("/checkout", config.OrderHandler.Checkout)
		orders.POST("/payment/complete", config.OrderHandler.CompletePayment)
		orders.GET("/pending", config.OrderHandler.GetPendingOrder)

		orders.GET("", config.OrderHandler.ListOrders)
	}
}
