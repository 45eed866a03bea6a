package routes

import (
	"nagaralert-be/controllers"
	"nagaralert-be/middlewares"
	"nagaralert-be/models"

	"github.com/gin-gonic/gin"
)

var profileImage = middlewares.UploadField{Name: "profileImage", Kind: models.MediaImage, MaxCount: 1}

// AuthRoutes sets up the authentication routes
func AuthRoutes(api *gin.RouterGroup, ac *controllers.AuthController, g guards) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", g.upload(profileImage), ac.RegisterUser)
		auth.POST("/activate", ac.Activate)
		auth.POST("/resend-otp", ac.ResendOTP)
		auth.POST("/login", ac.LoginUser)
		auth.GET("/refresh", g.refresh, ac.Refresh)
		auth.POST("/forget-password", ac.ForgetPassword)
		auth.POST("/reset-password", ac.ResetPassword)
		auth.PUT("/change-password", g.auth, ac.ChangePassword)
		auth.GET("/profile", g.auth, ac.GetMe)
		auth.PUT("/profile", g.auth, g.upload(profileImage), ac.UpdateMe)
		auth.PUT("/profile/:id", g.auth, middlewares.SystemAdminOnly(), ac.UpdateUser)
	}
}
