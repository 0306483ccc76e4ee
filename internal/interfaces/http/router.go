package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campushub/internal/infrastructure/config"
	authhandlers "campushub/internal/interfaces/http/handlers/auth"
	complainthandlers "campushub/internal/interfaces/http/handlers/complaint"
	menuhandlers "campushub/internal/interfaces/http/handlers/menu"
	orderhandlers "campushub/internal/interfaces/http/handlers/order"
	"campushub/internal/interfaces/http/middleware"
	"campushub/internal/interfaces/http/routes"
	"campushub/internal/shared/logger"
)

type Router struct {
	engine           *gin.Engine
	authHandler      *authhandlers.AuthHandler
	complaintHandler *complainthandlers.ComplaintHandler
	menuHandler      *menuhandlers.MenuHandler
	orderHandler     *orderhandlers.OrderHandler
	authMiddleware   *middleware.AuthMiddleware
	logger           logger.Interface
}

func NewRouter(
	authHandler *authhandlers.AuthHandler,
	complaintHandler *complainthandlers.ComplaintHandler,
	menuHandler *menuhandlers.MenuHandler,
	orderHandler *orderhandlers.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
	log logger.Interface,
) *Router {
	return &Router{
		engine:           gin.New(),
		authHandler:      authHandler,
		complaintHandler: complaintHandler,
		menuHandler:      menuHandler,
		orderHandler:     orderHandler,
		authMiddleware:   authMiddleware,
		logger:           log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(cfg.Server.CORSOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
	routes.SetupMenuRoutes(r.engine, &routes.MenuRouteConfig{
		MenuHandler:    r.menuHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupOrderRoutes(r.engine, &routes.OrderRouteConfig{
		OrderHandler:   r.orderHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupComplaintRoutes(r.engine, &routes.ComplaintRouteConfig{
		ComplaintHandler: r.complaintHandler,
		AuthMiddleware:   r.authMiddleware,
	})
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
