package routes

import (
	"nagaralert-be/controllers"
	"nagaralert-be/middlewares"
	"nagaralert-be/models"

	"github.com/gin-gonic/gin"
)

func StaffRoutes(api *gin.RouterGroup, sc *controllers.StaffController, g guards) {
	image := g.upload(middlewares.UploadField{Name: controllers.StaffImageField, Kind: models.MediaImage, MaxCount: 1})

	staffs := api.Group("/staffs", g.auth)
	{
		staffs.GET("/profile/me", middlewares.StaffOnly(), sc.MyProfile)
		staffs.PUT("/profile/me", middlewares.StaffOnly(), image, sc.UpdateMyProfile)
		staffs.PUT("/profile/me/availability", middlewares.StaffOnly(), sc.UpdateAvailability)
		staffs.PUT("/profile/me/location", middlewares.StaffOnly(), sc.UpdateLocation)
		staffs.GET("/reports/assigned", middlewares.StaffOnly(), sc.MyAssignedReports)

		staffs.POST("/", middlewares.AdminOnly(), image, sc.Create)
		staffs.GET("/", middlewares.AdminOnly(), sc.List)
		staffs.GET("/:id", middlewares.AdminOnly(), sc.Get)
		staffs.PUT("/:id", middlewares.AdminOnly(), image, sc.Update)
		staffs.DELETE("/:id", middlewares.AdminOnly(), sc.Delete)
	}
}
