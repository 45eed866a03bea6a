package controllers

import (
	"nagaralert-be/middlewares"
	"nagaralert-be/models"
	"nagaralert-be/response"
	"nagaralert-be/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const StaffImageField = "profileImage"

// StaffController serves /staffs
type StaffController struct {
	staffs *services.StaffService
}

func NewStaffController(staffs *services.StaffService) *StaffController {
	return &StaffController{staffs: staffs}
}

func (sc *StaffController) Create(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var req services.CreateStaffRequest
	if !bind(c, &req) {
		return
	}
	result, err := sc.staffs.Create(c.Request.Context(), req, middlewares.UploadedFile(c, StaffImageField), who)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, result, "Staff member created successfully")
}

// List scopes municipality admins to their own staff. System admins may
// pass ?municipalityId= or list everyone.
func (sc *StaffController) List(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var q services.StaffListQuery
	if !bindQuery(c, &q) {
		return
	}
	var scope *primitive.ObjectID
	if who.Role == models.RoleSystemAdmin {
		if raw := c.Query("municipalityId"); raw != "" {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				fail(c, middlewares.BindError(err))
				return
			}
			scope = &id
		}
	} else {
		id, ok := municipalityOf(c, who)
		if !ok {
			return
		}
		scope = &id
	}
	items, pagination, err := sc.staffs.List(c.Request.Context(), q, scope)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, items, "Staff fetched", pagination)
}

func (sc *StaffController) Get(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := sc.staffs.Get(c.Request.Context(), id, who)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, detail, "Staff fetched")
}

func (sc *StaffController) Update(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateStaffRequest
	if !bind(c, &req) {
		return
	}
	detail, err := sc.staffs.Update(c.Request.Context(), id, req, middlewares.UploadedFile(c, StaffImageField), who)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, detail, "Staff updated successfully")
}

func (sc *StaffController) Delete(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := sc.staffs.Delete(c.Request.Context(), id, who); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil, "Staff deleted successfully")
}

func (sc *StaffController) MyProfile(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	detail, err := sc.staffs.MyProfile(c.Request.Context(), who.ID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, detail, "Staff profile fetched")
}

func (sc *StaffController) UpdateMyProfile(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var req services.UpdateMyStaffRequest
	if !bind(c, &req) {
		return
	}
	detail, err := sc.staffs.UpdateMyProfile(c.Request.Context(), who.ID, req, middlewares.UploadedFile(c, StaffImageField))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, detail, "Staff profile updated")
}

func (sc *StaffController) MyAssignedReports(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var q services.ReportListQuery
	if !bindQuery(c, &q) {
		return
	}
	items, pagination, stats, err := sc.staffs.MyAssignedReports(c.Request.Context(), who.ID, q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, gin.H{"reports": items, "stats": stats}, "Assigned reports fetched", pagination)
}

func (sc *StaffController) UpdateAvailability(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var req services.AvailabilityRequest
	if !bind(c, &req) {
		return
	}
	staff, err := sc.staffs.UpdateAvailability(c.Request.Context(), who.ID, *req.Availability)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, staff, "Availability updated")
}

func (sc *StaffController) UpdateLocation(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var req services.LocationRequest
	if !bind(c, &req) {
		return
	}
	staff, err := sc.staffs.UpdateLocation(c.Request.Context(), who.ID, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, staff, "Location updated")
}
