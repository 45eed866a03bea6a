package routes

import (
	"nagaralert-be/controllers"
	"nagaralert-be/middlewares"
	"nagaralert-be/models"

	"github.com/gin-gonic/gin"
)

func SponsorRoutes(api *gin.RouterGroup, sc *controllers.SponsorController, g guards) {
	banner := g.upload(middlewares.UploadField{Name: controllers.BannerField, Kind: models.MediaImage, MaxCount: 1})

	sponsors := api.Group("/sponsors")
	{
		sponsors.GET("/", sc.List)
		sponsors.GET("/global/active", sc.GlobalActive)
		sponsors.GET("/municipality/:municipalityId/active", sc.ActiveForMunicipality)
		sponsors.GET("/:id", sc.Get)

		sponsors.POST("/", g.auth, middlewares.AdminOnly(), banner, sc.Create)
		sponsors.PUT("/:id", g.auth, middlewares.AdminOnly(), banner, sc.Update)
		sponsors.DELETE("/:id", g.auth, middlewares.AdminOnly(), sc.Delete)
	}
}
