package routes

import (
	"github.com/gin-gonic/gin"

	complainthandlers "campushub/internal/interfaces/http/handlers/complaint"
	"campushub/internal/interfaces/http/middleware"
	"campushub/internal/shared/authorization"
)

type ComplaintRouteConfig struct {
	ComplaintHandler *complainthandlers.ComplaintHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupComplaintRoutes(engine *gin.Engine, config *ComplaintRouteConfig) {
	complaints := engine.Group("/complaints")
	complaints.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths before parameterized paths to avoid
		// route conflicts.
		complaints.POST("",
			config.ComplaintHandler.SubmitComplaint)
		complaints.GET("",
			authorization.RequireAdmin(),
			config.ComplaintHandler.ListComplaints)
		complaints.GET("/mine",
			config.ComplaintHandler.ListMyComplaints)
		complaints.GET("/stats",
			authorization.RequireAdmin(),
			config.ComplaintHandler.GetStats)

		complaints.PATCH("/:id/status",
			authorization.RequireAdmin(),
			config.ComplaintHandler.UpdateStatus)
		complaints.POST("/:id/comments",
			config.ComplaintHandler.AddComment)

		complaints.GET("/:id",
			config.ComplaintHandler.GetComplaint)
	}
}
