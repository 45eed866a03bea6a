package controllers

import (
	"nagaralert-be/middlewares"
	"nagaralert-be/response"
	"nagaralert-be/services"

	"github.com/gin-gonic/gin"
)

const BannerField = "bannerImage"

// SponsorController serves /sponsors
type SponsorController struct {
	sponsors *services.SponsorService
}

func NewSponsorController(sponsors *services.SponsorService) *SponsorController {
	return &SponsorController{sponsors: sponsors}
}

func (sc *SponsorController) Create(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var req services.CreateSponsorRequest
	if !bind(c, &req) {
		return
	}
	sponsor, err := sc.sponsors.Create(c.Request.Context(), req, middlewares.UploadedFile(c, BannerField), who.ID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, sponsor, "Sponsor created successfully")
}

func (sc *SponsorController) List(c *gin.Context) {
	var q services.SponsorListQuery
	if !bindQuery(c, &q) {
		return
	}
	items, pagination, err := sc.sponsors.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, items, "Sponsors fetched", pagination)
}

func (sc *SponsorController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	sponsor, err := sc.sponsors.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, sponsor, "Sponsor fetched")
}

func (sc *SponsorController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateSponsorRequest
	if !bind(c, &req) {
		return
	}
	sponsor, err := sc.sponsors.Update(c.Request.Context(), id, req, middlewares.UploadedFile(c, BannerField))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, sponsor, "Sponsor updated successfully")
}

func (sc *SponsorController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := sc.sponsors.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil, "Sponsor deleted successfully")
}

func (sc *SponsorController) ActiveForMunicipality(c *gin.Context) {
	id, ok := paramID(c, "municipalityId")
	if !ok {
		return
	}
	items, err := sc.sponsors.ActiveForMunicipality(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, items, "Active sponsors fetched")
}

func (sc *SponsorController) GlobalActive(c *gin.Context) {
	items, err := sc.sponsors.GlobalActive(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, items, "Active sponsors fetched")
}
