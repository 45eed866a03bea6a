package routes

import (
	"nagaralert-be/controllers"
	"nagaralert-be/middlewares"

	"github.com/gin-gonic/gin"
)

func EmergencyRoutes(api *gin.RouterGroup, ec *controllers.EmergencyController, g guards) {
	emergency := api.Group("/emergency-services")
	{
		emergency.GET("/public/all", ec.ListAll)
		emergency.GET("/public/category/:category", ec.ByCategory)
		emergency.GET("/public/municipality/:municipalityId", ec.ByMunicipality)

		emergency.GET("/admin/all", g.auth, middlewares.SystemAdminOnly(), ec.AdminList)
		emergency.GET("/municipality-admin/all", g.auth, middlewares.MunicipalityAdminOnly(), ec.MunicipalityAdminList)

		emergency.GET("/:id", ec.Get)
		emergency.POST("/", g.auth, middlewares.SystemAdminOnly(), ec.Create)
		emergency.PUT("/:id", g.auth, middlewares.SystemAdminOnly(), ec.Update)
		emergency.DELETE("/:id", g.auth, middlewares.SystemAdminOnly(), ec.Delete)
	}
}
