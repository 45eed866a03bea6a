package controllers

import (
	"nagaralert-be/response"
	"nagaralert-be/services"

	"github.com/gin-gonic/gin"
)

// MunicipalityController serves /municipalities
type MunicipalityController struct {
	municipalities *services.MunicipalityService
}

func NewMunicipalityController(municipalities *services.MunicipalityService) *MunicipalityController {
	return &MunicipalityController{municipalities: municipalities}
}

func (mc *MunicipalityController) Create(c *gin.Context) {
	var req services.CreateMunicipalityRequest
	if !bind(c, &req) {
		return
	}
	result, err := mc.municipalities.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, result, "Municipality created successfully")
}

func (mc *MunicipalityController) List(c *gin.Context) {
	var q services.MunicipalityListQuery
	if !bindQuery(c, &q) {
		return
	}
	items, pagination, err := mc.municipalities.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, items, "Municipalities fetched", pagination)
}

func (mc *MunicipalityController) ListAll(c *gin.Context) {
	items, err := mc.municipalities.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, items, "Municipalities fetched")
}

func (mc *MunicipalityController) SearchByLocation(c *gin.Context) {
	items, err := mc.municipalities.SearchByLocation(c.Request.Context(), c.Query("city"), c.Query("province"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, items, "Municipalities fetched")
}

func (mc *MunicipalityController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, err := mc.municipalities.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, m, "Municipality fetched")
}

func (mc *MunicipalityController) Update(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateMunicipalityRequest
	if !bind(c, &req) {
		return
	}
	m, err := mc.municipalities.Update(c.Request.Context(), id, req, who)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, m, "Municipality updated successfully")
}

func (mc *MunicipalityController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := mc.municipalities.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil, "Municipality deleted successfully")
}

func (mc *MunicipalityController) Stats(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	stats, err := mc.municipalities.Stats(c.Request.Context(), id, who)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, stats, "Municipality statistics fetched")
}
