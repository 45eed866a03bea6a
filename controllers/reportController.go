package controllers

import (
	"nagaralert-be/middlewares"
	"nagaralert-be/response"
	"nagaralert-be/services"

	"github.com/gin-gonic/gin"
)

// Multipart field names for report media.
const (
	PhotosField = "photos"
	VideosField = "videos"
)

// ReportController serves /reports
type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

func (rc *ReportController) CreateReport(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var req services.CreateReportRequest
	if !bind(c, &req) {
		return
	}
	report, err := rc.reports.Create(c.Request.Context(), req,
		middlewares.UploadedFiles(c, PhotosField), middlewares.UploadedFiles(c, VideosField), who.ID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, report, "Report submitted successfully")
}

func (rc *ReportController) ListReports(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var q services.ReportListQuery
	if !bindQuery(c, &q) {
		return
	}
	items, pagination, err := rc.reports.List(c.Request.Context(), q, who)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, items, "Reports fetched", pagination)
}

func (rc *ReportController) Nearby(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var q services.NearbyQuery
	if !bindQuery(c, &q) {
		return
	}
	items, err := rc.reports.Nearby(c.Request.Context(), q, who)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, items, "Nearby reports fetched")
}

func (rc *ReportController) MyReports(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var q services.ReportListQuery
	if !bindQuery(c, &q) {
		return
	}
	items, pagination, err := rc.reports.ListMine(c.Request.Context(), who.ID, q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, items, "Your reports fetched", pagination)
}

func (rc *ReportController) AssignedToMe(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	var q services.ReportListQuery
	if !bindQuery(c, &q) {
		return
	}
	items, pagination, err := rc.reports.ListAssigned(c.Request.Context(), who.ID, q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, items, "Assigned reports fetched", pagination)
}

// GetReport fetches a single report
func (rc *ReportController) GetReport(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	report, err := rc.reports.Get(c.Request.Context(), id, who)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, report, "Report fetched")
}

// UpdateReport edits the caller's own pending report
func (rc *ReportController) UpdateReport(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateReportRequest
	if !bind(c, &req) {
		return
	}
	report, err := rc.reports.Update(c.Request.Context(), id, req,
		middlewares.UploadedFiles(c, PhotosField), middlewares.UploadedFiles(c, VideosField), who.ID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, report, "Report updated successfully")
}

// DeleteReport removes the caller's own pending report
func (rc *ReportController) DeleteReport(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := rc.reports.Delete(c.Request.Context(), id, who.ID); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, nil, "Report deleted successfully")
}

func (rc *ReportController) UpdateStatus(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateStatusRequest
	if !bind(c, &req) {
		return
	}
	report, err := rc.reports.UpdateStatus(c.Request.Context(), id, req, who.ID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, report, "Report status updated")
}

func (rc *ReportController) Assign(c *gin.Context) {
	who, ok := identity(c)
	if !ok {
		return
	}
	municipalityID, ok := municipalityOf(c, who)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.AssignReportRequest
	if !bind(c, &req) {
		return
	}
	report, err := rc.reports.Assign(c.Request.Context(), id, req, municipalityID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, report, "Report assigned successfully")
}
