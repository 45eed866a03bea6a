package routes

import (
	"nagaralert-be/controllers"
	"nagaralert-be/middlewares"

	"github.com/gin-gonic/gin"
)

func MunicipalityRoutes(api *gin.RouterGroup, mc *controllers.MunicipalityController, g guards) {
	municipalities := api.Group("/municipalities")
	{
		municipalities.GET("/list/all", mc.ListAll)
		municipalities.GET("/location/search", mc.SearchByLocation)

		municipalities.POST("/", g.auth, middlewares.SystemAdminOnly(), mc.Create)
		municipalities.GET("/", g.auth, middlewares.AllLoggedIn(), mc.List)
		municipalities.GET("/:id", g.auth, middlewares.AllLoggedIn(), mc.Get)
		municipalities.PUT("/:id", g.auth, middlewares.AdminOnly(), mc.Update)
		municipalities.DELETE("/:id", g.auth, middlewares.SystemAdminOnly(), mc.Delete)
		municipalities.GET("/:id/stats", g.auth, middlewares.MunicipalityAccess(), mc.Stats)
	}
}
