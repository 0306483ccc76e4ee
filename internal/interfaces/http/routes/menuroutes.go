package routes

import (
	"github.com/gin-gonic/gin"

	menuhandlers "campushub/internal/interfaces/http/handlers/menu"
	"campushub/internal/interfaces/http/middleware"
	"campushub/internal/shared/authorization"
)

type MenuRouteConfig struct {
	MenuHandler    *menuhandlers.MenuHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupMenuRoutes(engine *gin.Engine, config *MenuRouteConfig) {
	menu := engine.Group("/menu")
	menu.Use(config.AuthMiddleware.RequireAuth())
	{
		menu.GET("", config.MenuHandler.ListMenu)
		menu.POST("",
			authorization.RequireAdmin(),
			config.MenuHandler.AddItem)
		menu.DELETE("/:id",
			authorization.RequireAdmin(),
			config.MenuHandler.DeleteItem)
	}
}
