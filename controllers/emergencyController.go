package controllers

import (
	"nagaralert-be/models"
	"nagaralert-be/response"
	"nagaralert-be/services"

	"github.com/gin-gonic/gin"
)

// EmergencyController serves /emergency-services
type EmergencyController struct {
	services *services.EmergencyService
}

func NewEmergencyController(svc *services.EmergencyService) *EmergencyController {
	return &EmergencyController{services: svc}
}

func (ec *EmergencyController) ListAll(c *gin.Context) {
	var q services.EmergencyServiceListQuery
	if !bindQuery(c, &q) {
		return
	}
	items, pagination, err := ec.services.ListAll(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, items, "Emergency services fetched", pagination)
}

func (ec *EmergencyController) ByCategory(c *gin.Context) {
	var q models.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	items, pagination, err := ec.services.ByCategory(c.Request.Context(), c.Param("category"), q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, items, "Emergency services fetched", pagination)
}

func (ec *EmergencyController) ByMunicipality(c *gin.Context) {
	id, ok := paramID(c, "municipalityId")
	if !ok {
		return
	}
	items, err := ec.services.ByMunicipality(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, items, "Emergency services fetched")
}

func (ec *EmergencyController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	service, err := ec.services.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, service, "Emergency service fetched")
}

func (ec *EmergencyController) Create(c *gin.Context) {
	var req services.CreateEmergencyServiceRequest
	if !bind(c, &req) {
		return
	}
	service, err := ec.services.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, service, "Emergency service created successfully")
}

func (ec *EmergencyController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateEmergencyServiceRequest
	if !bind(c, &req) {
		return
	}
	service, err := ec.services.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, service, "Emergency service updated successfully")
}

func (ec *EmergencyController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ec.services.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil, "Emergency service deleted successfully")
}

func (ec *EmergencyController) AdminList(c *gin.Context) {
	var q services.EmergencyServiceListQuery
	if !bindQuery(c, &q) {
		return
	}
	items, pagination, err := ec.services.AdminList(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, items, "Emergency services fetched", pagination)
}

func (ec *EmergencyController) MunicipalityAdminList(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	municipalityID, ok := municipalityOf(c, who)
	if !ok {
		return
	}
	var q services.EmergencyServiceListQuery
	if !bindQuery(c, &q) {
		return
	}
	items, pagination, err := ec.services.MunicipalityAdminList(c.Request.Context(), q, municipalityID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, items, "Emergency services fetched", pagination)
}
