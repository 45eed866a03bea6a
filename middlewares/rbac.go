package middlewares

import (
	"nagaralert-be/apperrors"
	"nagaralert-be/models"

	"github.com/gin-gonic/gin"
)

// RoleDenial is the data attached to an ACCESS_DENIED role check.
type RoleDenial struct {
	RequiredRoles []models.Role `json:"requiredRoles"`
	UserRole      models.Role   `json:"userRole"`
}

// RequireRoles lets the request through only when the caller holds one of roles.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			abortWithError(c, apperrors.NewBadRequest("Route configuration error: No roles specified"))
			return
		}
		identity, ok := CurrentIdentity(c)
		if !ok {
			abortWithError(c, apperrors.NewUnauthenticated("Authentication required"))
			return
		}
		if !identity.HasRole(roles...) {
			abortWithError(c, apperrors.NewAccessDenied("You do not have permission to access this resource").
				WithData(RoleDenial{RequiredRoles: roles, UserRole: identity.Role}))
			return
		}
		c.Next()
	}
}

func SystemAdminOnly() gin.HandlerFunc {
	return RequireRoles(models.RoleSystemAdmin)
}

func MunicipalityAdminOnly() gin.HandlerFunc {
	return RequireRoles(models.RoleMunicipalityAdmin)
}

func FieldStaffOnly() gin.HandlerFunc {
	return RequireRoles(models.RoleFieldStaff)
}

func CitizenOnly() gin.HandlerFunc {
	return RequireRoles(models.RoleCitizen)
}

func SponsorOnly() gin.HandlerFunc {
	return RequireRoles(models.RoleSponsor)
}

// AdminOnly admits system and municipality admins.
func AdminOnly() gin.HandlerFunc {
	return RequireRoles(models.RoleSystemAdmin, models.RoleMunicipalityAdmin)
}

// StaffOnly admits the roles that work on reports.
func StaffOnly() gin.HandlerFunc {
	return RequireRoles(models.RoleMunicipalityAdmin, models.RoleFieldStaff)
}

// MunicipalityAccess admits everyone acting for a municipality, plus system admins.
func MunicipalityAccess() gin.HandlerFunc {
	return RequireRoles(models.RoleSystemAdmin, models.RoleMunicipalityAdmin, models.RoleFieldStaff)
}

func AllLoggedIn() gin.HandlerFunc {
	return RequireRoles(models.RoleCitizen, models.RoleMunicipalityAdmin, models.RoleFieldStaff, models.RoleSponsor, models.RoleSystemAdmin)
}
