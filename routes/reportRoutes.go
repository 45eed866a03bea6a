package routes

import (
	"nagaralert-be/controllers"
	"nagaralert-be/middlewares"
	"nagaralert-be/models"

	"github.com/gin-gonic/gin"
)

// ReportRoutes sets up the report routes
func ReportRoutes(api *gin.RouterGroup, rc *controllers.ReportController, g guards, limiter gin.HandlerFunc) {
	media := g.upload(
		middlewares.UploadField{Name: controllers.PhotosField, Kind: models.MediaImage, MaxCount: 5},
		middlewares.UploadField{Name: controllers.VideosField, Kind: models.MediaVideo, MaxCount: 2},
	)

	reports := api.Group("/reports", g.auth)
	{
		reports.POST("/", middlewares.CitizenOnly(), limiter, media, rc.CreateReport)
		reports.GET("/", middlewares.AllLoggedIn(), rc.ListReports)
		reports.GET("/nearby", middlewares.AllLoggedIn(), rc.Nearby)
		reports.GET("/my/reports", middlewares.CitizenOnly(), rc.MyReports)
		reports.GET("/assigned/me", middlewares.StaffOnly(), rc.AssignedToMe)
		reports.GET("/:id", middlewares.AllLoggedIn(), rc.GetReport)
		reports.PUT("/:id", middlewares.CitizenOnly(), media, rc.UpdateReport)
		reports.DELETE("/:id", middlewares.CitizenOnly(), rc.DeleteReport)
		reports.PUT("/:id/status", middlewares.StaffOnly(), rc.UpdateStatus)
		reports.PUT("/:id/assign", middlewares.AdminOnly(), rc.Assign)
	}
}
