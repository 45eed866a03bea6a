package controllers

import (
	"nagaralert-be/middlewares"
	"nagaralert-be/response"
	"nagaralert-be/services"

	"github.com/gin-gonic/gin"
)

// AuthController serves /auth
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// RegisterUser handles citizen registration
func (ac *AuthController) RegisterUser(c *gin.Context) {
	var req services.RegisterRequest
	if !bind(c, &req) {
		return
	}
	detail, err := ac.auth.Register(c.Request.Context(), req, middlewares.UploadedFile(c, "profileImage"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, detail, "Registration successful. Please check your email for the activation code.")
}

func (ac *AuthController) Activate(c *gin.Context) {
	var req services.ActivateRequest
	if !bind(c, &req) {
		return
	}
	if err := ac.auth.Activate(c.Request.Context(), req.Email, req.OTP); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil, "Account activated successfully")
}

func (ac *AuthController) ResendOTP(c *gin.Context) {
	var req services.EmailRequest
	if !bind(c, &req) {
		return
	}
	if err := ac.auth.ResendOTP(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil, "Activation code sent")
}

// LoginUser handles user login
func (ac *AuthController) LoginUser(c *gin.Context) {
	var req services.LoginRequest
	if !bind(c, &req) {
		return
	}
	result, err := ac.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, result, "Login successful")
}

func (ac *AuthController) Refresh(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	pair, err := ac.auth.Refresh(c.Request.Context(), who)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, pair, "Token refreshed")
}

func (ac *AuthController) ForgetPassword(c *gin.Context) {
	var req services.EmailRequest
	if !bind(c, &req) {
		return
	}
	if err := ac.auth.ForgetPassword(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil, "Password reset code sent to your email")
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req services.ResetPasswordRequest
	if !bind(c, &req) {
		return
	}
	if err := ac.auth.ResetPassword(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil, "Password reset successfully")
}

func (ac *AuthController) ChangePassword(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var req services.ChangePasswordRequest
	if !bind(c, &req) {
		return
	}
	if err := ac.auth.ChangePassword(c.Request.Context(), who.ID, req); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil, "Password changed successfully")
}

// GetMe returns the logged-in user
func (ac *AuthController) GetMe(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	detail, err := ac.auth.Profile(c.Request.Context(), who.ID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, detail, "Profile fetched")
}

func (ac *AuthController) UpdateMe(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var req services.UpdateProfileRequest
	if !bind(c, &req) {
		return
	}
	detail, err := ac.auth.UpdateProfile(c.Request.Context(), who.ID, req, middlewares.UploadedFile(c, "profileImage"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, detail, "Profile updated")
}

func (ac *AuthController) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.AdminUpdateUserRequest
	if !bind(c, &req) {
		return
	}
	detail, err := ac.auth.AdminUpdateUser(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, detail, "User updated")
}
