package controllers

import (
	"nagaralert-be/apperrors"
	"nagaralert-be/middlewares"
	"nagaralert-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fail records err for the error handler.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}

// bind decodes the body (JSON or form) into dst.
func bind(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBind(dst); err != nil {
		fail(c, middlewares.BindError(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		fail(c, middlewares.BindError(err))
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		fail(c, apperrors.NewValidation("Invalid "+name))
		return primitive.NilObjectID, false
	}
	return id, true
}

func identity(c *gin.Context) (*models.Identity, bool) {
	id, ok := middlewares.CurrentIdentity(c)
	if !ok {
		fail(c, apperrors.NewUnauthenticated("Authentication required"))
	}
	return id, ok
}

// municipalityOf returns the caller's municipality or fails the request.
func municipalityOf(c *gin.Context, who *models.Identity) (primitive.ObjectID, bool) {
	if who.MunicipalityID == nil {
		fail(c, apperrors.NewAccessDenied("No municipality associated with this account"))
		return primitive.NilObjectID, false
	}
	return *who.MunicipalityID, true
}
