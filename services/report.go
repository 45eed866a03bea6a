package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/logger"
	"nagaralert-be/metrics"
	"nagaralert-be/models"
	"nagaralert-be/repositories"
	"nagaralert-be/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	maxDueDateWindow  = 30 * 24 * time.Hour
	defaultDueDateGap = 7 * 24 * time.Hour
	// DefaultNearbyRadius is used when a nearby query names no radius, in meters.
	DefaultNearbyRadius = 1000
)

// CreateReportRequest is the multipart form of a new report
type CreateReportRequest struct {
	Title          string   `form:"title" json:"title" binding:"required,min=5,max=200"`
	Description    string   `form:"description" json:"description" binding:"required,min=10"`
	Category       string   `form:"category" json:"category" binding:"required,oneof=road electricity water sanitation safety emergency illegal_activity"`
	Severity       string   `form:"severity" json:"severity" binding:"omitempty,oneof=low medium high emergency"`
	MunicipalityID string   `form:"municipalityId" json:"municipalityId" binding:"required,objectid"`
	Address        string   `form:"address" json:"address" binding:"omitempty,max=300"`
	Ward           string   `form:"ward" json:"ward" binding:"omitempty,digits"`
	Latitude       *float64 `form:"latitude" json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude      *float64 `form:"longitude" json:"longitude" binding:"omitempty,min=-180,max=180"`
}

// UpdateReportRequest edits a pending report. Absent fields are unchanged.
type UpdateReportRequest struct {
	Title       *string  `form:"title" json:"title" binding:"omitempty,min=5,max=200"`
	Description *string  `form:"description" json:"description" binding:"omitempty,min=10"`
	Category    *string  `form:"category" json:"category" binding:"omitempty,oneof=road electricity water sanitation safety emergency illegal_activity"`
	Severity    *string  `form:"severity" json:"severity" binding:"omitempty,oneof=low medium high emergency"`
	Address     *string  `form:"address" json:"address" binding:"omitempty,max=300"`
	Ward        *string  `form:"ward" json:"ward" binding:"omitempty,digits"`
	Latitude    *float64 `form:"latitude" json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `form:"longitude" json:"longitude" binding:"omitempty,min=-180,max=180"`
}

type UpdateStatusRequest struct {
	Status          string `json:"status" binding:"omitempty,oneof=pending assigned in_progress resolved"`
	AssignedStaffID string `json:"assignedStaffId" binding:"omitempty,objectid"`
}

type AssignReportRequest struct {
	AssignedStaffID string     `json:"assignedStaffId" binding:"required,objectid"`
	Priority        string     `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate         *time.Time `json:"dueDate"`
	Notes           string     `json:"notes" binding:"omitempty,max=500"`
}

type ReportListQuery struct {
	models.PageQuery
	Category string     `form:"category" binding:"omitempty,oneof=road electricity water sanitation safety emergency illegal_activity"`
	Status   string     `form:"status" binding:"omitempty,oneof=pending assigned in_progress resolved"`
	Severity string     `form:"severity" binding:"omitempty,oneof=low medium high emergency"`
	Priority string     `form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	Search   string     `form:"search"`
	Sort     string     `form:"sort" binding:"omitempty,oneof=newest oldest priority dueDate"`
}

type NearbyQuery struct {
	Lat    *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Lng    *float64 `form:"lng" binding:"required,min=-180,max=180"`
	Radius float64  `form:"radius" binding:"omitempty,gt=0,max=50000"`
	Limit  int64    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ReportService implements report submission, triage and resolution
type ReportService struct {
	reports        repositories.ReportRepositoryInterface
	municipalities repositories.MunicipalityRepositoryInterface
	users          repositories.UserRepositoryInterface
	staffs         repositories.StaffRepositoryInterface
	media          MediaStorage
	gps            GPSExtractor
	recorder       SubmissionRecorder
	notifier       *Notifier
	log            *logger.Logger
}

func NewReportService(
	reports repositories.ReportRepositoryInterface,
	municipalities repositories.MunicipalityRepositoryInterface,
	users repositories.UserRepositoryInterface,
	staffs repositories.StaffRepositoryInterface,
	media MediaStorage,
	gps GPSExtractor,
	recorder SubmissionRecorder,
	notifier *Notifier,
	log *logger.Logger,
) *ReportService {
	return &ReportService{
		reports:        reports,
		municipalities: municipalities,
		users:          users,
		staffs:         staffs,
		media:          media,
		gps:            gps,
		recorder:       recorder,
		notifier:       notifier,
		log:            log,
	}
}

// Create validates and stores a citizen report. Checks short-circuit in
// order: duplicate guard, municipality and category, jurisdiction, photo GPS.
// Uploads happen only after every check passed.
func (s *ReportService) Create(ctx context.Context, req CreateReportRequest, photos, videos []models.MediaFile, citizenID primitive.ObjectID) (*models.Report, error) {
	report, err := s.create(ctx, req, photos, videos, citizenID)
	s.recorder.ReportSubmitted(submissionOutcome(err))
	return report, err
}

func submissionOutcome(err error) string {
	if err == nil {
		return metrics.OutcomeAccepted
	}
	if appErr, ok := apperrors.As(err); ok {
		switch appErr.Data.(type) {
		case DuplicateReportData:
			return metrics.OutcomeDuplicate
		case OutsideBoundaryData:
			return metrics.OutcomeOutsideBoundary
		case InvalidImagesData:
			return metrics.OutcomeInvalidPhotoGPS
		}
	}
	return metrics.OutcomeRejected
}

// DuplicateReportData identifies the open report a submission duplicates.
type DuplicateReportData struct {
	ExistingReportID primitive.ObjectID  `json:"existingReportId"`
	SubmittedAt      time.Time           `json:"submittedAt"`
	Status           models.ReportStatus `json:"status"`
}

// OutsideBoundaryData accompanies a jurisdiction rejection.
type OutsideBoundaryData struct {
	MunicipalityName string              `json:"municipalityName"`
	BoundaryBox      *models.BoundaryBox `json:"boundaryBox"`
}

// InvalidImagesData lists photos whose GPS fix lies outside the jurisdiction.
type InvalidImagesData struct {
	InvalidImages []PhotoCheck `json:"invalidImages"`
}

func (s *ReportService) create(ctx context.Context, req CreateReportRequest, photos, videos []models.MediaFile, citizenID primitive.ObjectID) (*models.Report, error) {
	category := models.ReportCategory(req.Category)
	var coords *models.Coordinates
	if req.Latitude != nil && req.Longitude != nil {
		coords = &models.Coordinates{Lat: *req.Latitude, Lng: *req.Longitude}
	}

	duplicate, err := s.reports.FindDuplicate(ctx, repositories.DuplicateQuery{
		CitizenID:      citizenID,
		Category:       category,
		Since:          time.Now().AddDate(0, 0, -DuplicateWindowDays),
		Coordinates:    coords,
		Tolerance:      DuplicateCoordinateTolerance,
		AddressPattern: FuzzyPrefixPattern(req.Address),
		TitlePattern:   FuzzyPrefixPattern(req.Title),
	})
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, apperrors.NewInternal("Failed to check for duplicate reports", err)
	}
	if duplicate != nil {
		return nil, apperrors.NewValidation("You already have an active report for this issue/location. Please check your existing reports.").
			WithData(DuplicateReportData{
				ExistingReportID: duplicate.ID,
				SubmittedAt:      duplicate.CreatedAt,
				Status:           duplicate.Status,
			})
	}

	municipalityID, err := primitive.ObjectIDFromHex(req.MunicipalityID)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid municipality ID")
	}
	municipality, err := s.municipalities.FindByID(ctx, municipalityID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation("Municipality not found")
		}
		return nil, apperrors.NewInternal("Failed to load municipality", err)
	}
	if !municipality.AcceptsCategory(category) {
		return nil, apperrors.NewValidation(categoryRejection(municipality, category))
	}

	if coords == nil {
		return nil, apperrors.NewValidation("Report coordinates are required for location validation")
	}
	if !municipality.BoundaryBox.Contains(coords.Lat, coords.Lng) {
		return nil, apperrors.NewValidation("Report location is outside the municipality's jurisdiction.").
			WithData(OutsideBoundaryData{MunicipalityName: municipality.Name, BoundaryBox: municipality.BoundaryBox})
	}

	checks := ClassifyPhotos(s.gps, photos, municipality.BoundaryBox)
	if len(checks.Invalid) > 0 {
		msg := fmt.Sprintf("%d image(s) were taken outside %s. Please upload images taken within the municipality.",
			len(checks.Invalid), municipality.Name)
		return nil, apperrors.NewValidation(msg).WithData(InvalidImagesData{InvalidImages: checks.Invalid})
	}

	photoURLs, err := s.uploadAll(ctx, photos, storage.FolderReportImages, models.MediaImage)
	if err != nil {
		return nil, err
	}
	videoURLs, err := s.uploadAll(ctx, videos, storage.FolderReportVideos, models.MediaVideo)
	if err != nil {
		return nil, err
	}

	severity := models.SeverityMedium
	if req.Severity != "" {
		severity = models.Severity(req.Severity)
	}
	report := &models.Report{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    category,
		Severity:    severity,
		Priority:    models.PriorityMedium,
		Location: models.ReportLocation{
			Address:     req.Address,
			Coordinates: coords,
			Ward:        req.Ward,
		},
		Photos:         photoURLs,
		Videos:         videoURLs,
		Status:         models.StatusPending,
		CitizenID:      citizenID,
		MunicipalityID: municipality.ID,
		ValidationInfo: &models.ValidationInfo{
			LocationValidated: true,
			BoundaryBox:       municipality.BoundaryBox,
			ImageValidation: models.ImageValidation{
				TotalImages:       len(photos),
				ImagesWithGPS:     len(checks.Valid),
				ImagesNoGPS:       len(checks.NoGPS),
				AllWithinBoundary: true,
			},
		},
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, wrapPersistence(err, "Failed to create report")
	}
	return report, nil
}

func categoryRejection(m *models.Municipality, c models.ReportCategory) string {
	accepted := make([]string, len(m.ReportCategories))
	for i, rc := range m.ReportCategories {
		accepted[i] = string(rc)
	}
	return fmt.Sprintf("This municipality doesn't accept %s reports. Available categories: %s", c, strings.Join(accepted, ", "))
}

// uploadAll uploads files one at a time. Files uploaded before a failure
// stay in storage.
func (s *ReportService) uploadAll(ctx context.Context, files []models.MediaFile, folder string, kind models.MediaKind) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		res, err := s.media.Upload(ctx, f.Path, folder, kind)
		if err != nil {
			return nil, apperrors.NewInternal("Failed to upload media", err)
		}
		urls = append(urls, res.URL)
	}
	return urls, nil
}

// Update edits a citizen's own report while it is still pending.
func (s *ReportService) Update(ctx context.Context, id primitive.ObjectID, req UpdateReportRequest, photos, videos []models.MediaFile, citizenID primitive.ObjectID) (*models.Report, error) {
	report, err := s.reports.FindOwned(ctx, id, citizenID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Report not found or you don't have permission")
		}
		return nil, apperrors.NewInternal("Failed to load report", err)
	}
	if report.Status != models.StatusPending {
		return nil, apperrors.NewValidation("Cannot update report after it has been processed")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, apperrors.NewValidation("Latitude and longitude must be provided together")
	}

	municipality, err := s.municipalities.FindByID(ctx, report.MunicipalityID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation("Municipality not found")
		}
		return nil, apperrors.NewInternal("Failed to load municipality", err)
	}

	set := bson.M{}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		category := models.ReportCategory(*req.Category)
		if !municipality.AcceptsCategory(category) {
			return nil, apperrors.NewValidation(categoryRejection(municipality, category))
		}
		set["category"] = category
	}
	if req.Severity != nil {
		set["severity"] = models.Severity(*req.Severity)
	}
	if req.Address != nil {
		set["location.address"] = *req.Address
	}
	if req.Ward != nil {
		set["location.ward"] = *req.Ward
	}
	if req.Latitude != nil && req.Longitude != nil {
		coords := &models.Coordinates{Lat: *req.Latitude, Lng: *req.Longitude}
		if !municipality.BoundaryBox.Contains(coords.Lat, coords.Lng) {
			return nil, apperrors.NewValidation("Updated location is outside the municipality's jurisdiction").
				WithData(OutsideBoundaryData{MunicipalityName: municipality.Name, BoundaryBox: municipality.BoundaryBox})
		}
		set["location.coordinates"] = coords
	}

	checks := ClassifyPhotos(s.gps, photos, municipality.BoundaryBox)
	if len(checks.Invalid) > 0 {
		msg := fmt.Sprintf("%d new image(s) are outside municipality jurisdiction", len(checks.Invalid))
		return nil, apperrors.NewValidation(msg).WithData(InvalidImagesData{InvalidImages: checks.Invalid})
	}

	photoURLs, err := s.uploadAll(ctx, photos, storage.FolderReportImages, models.MediaImage)
	if err != nil {
		return nil, err
	}
	videoURLs, err := s.uploadAll(ctx, videos, storage.FolderReportVideos, models.MediaVideo)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": set}
	push := bson.M{}
	if len(photoURLs) > 0 {
		push["photos"] = bson.M{"$each": photoURLs}
	}
	if len(videoURLs) > 0 {
		push["videos"] = bson.M{"$each": videoURLs}
	}
	if len(push) > 0 {
		update["$push"] = push
	}
	if len(set) == 0 && len(push) == 0 {
		return report, nil
	}

	updated, err := s.reports.Update(ctx, id, update)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to update report", err)
	}
	return updated, nil
}

// Delete removes a citizen's own pending report and, best-effort, its media.
func (s *ReportService) Delete(ctx context.Context, id, citizenID primitive.ObjectID) error {
	report, err := s.reports.FindOwned(ctx, id, citizenID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("Report not found or you don't have permission")
		}
		return apperrors.NewInternal("Failed to load report", err)
	}
	if report.Status != models.StatusPending {
		return apperrors.NewValidation("Cannot delete report after it has been processed")
	}
	if err := s.reports.Delete(ctx, id); err != nil {
		return apperrors.NewInternal("Failed to delete report", err)
	}

	for _, url := range report.Photos {
		removeMedia(ctx, s.media, s.log, url, models.MediaImage)
	}
	for _, url := range report.Videos {
		removeMedia(ctx, s.media, s.log, url, models.MediaVideo)
	}
	return nil
}

func (s *ReportService) Get(ctx context.Context, id primitive.ObjectID, identity *models.Identity) (*models.Report, error) {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Report not found")
		}
		return nil, apperrors.NewInternal("Failed to load report", err)
	}
	if identity.Role.IsStaffRole() && !identity.InMunicipality(report.MunicipalityID) {
		return nil, apperrors.NewAccessDenied("Access denied. You can only view reports from your municipality")
	}
	return report, nil
}

func (q ReportListQuery) filter() models.ReportFilter {
	return models.ReportFilter{
		Category: models.ReportCategory(q.Category),
		Status:   models.ReportStatus(q.Status),
		Severity: models.Severity(q.Severity),
		Priority: models.Priority(q.Priority),
		From:     q.From,
		To:       q.To,
		Search:   q.Search,
		Sort:     q.Sort,
	}
}

// List returns reports visible to the identity. Staff and citizens are
// scoped to their municipality; system admins see everything.
func (s *ReportService) List(ctx context.Context, q ReportListQuery, identity *models.Identity) ([]models.Report, *models.Pagination, error) {
	filter := q.filter()
	switch {
	case identity.Role == models.RoleSystemAdmin:
	case identity.MunicipalityID != nil:
		filter.MunicipalityID = identity.MunicipalityID
	case identity.Role == models.RoleCitizen:
		filter.CitizenID = &identity.ID
	default:
		return nil, nil, apperrors.NewAccessDenied("No municipality associated with this account")
	}
	return s.list(ctx, filter, q.PageQuery)
}

func (s *ReportService) ListMine(ctx context.Context, citizenID primitive.ObjectID, q ReportListQuery) ([]models.Report, *models.Pagination, error) {
	filter := q.filter()
	filter.CitizenID = &citizenID
	return s.list(ctx, filter, q.PageQuery)
}

func (s *ReportService) ListAssigned(ctx context.Context, staffUserID primitive.ObjectID, q ReportListQuery) ([]models.Report, *models.Pagination, error) {
	filter := q.filter()
	filter.AssignedStaffID = &staffUserID
	return s.list(ctx, filter, q.PageQuery)
}

func (s *ReportService) list(ctx context.Context, filter models.ReportFilter, q models.PageQuery) ([]models.Report, *models.Pagination, error) {
	page := q.Normalize(models.DefaultPageLimit)
	items, total, err := s.reports.List(ctx, filter, page)
	if err != nil {
		return nil, nil, apperrors.NewInternal("Failed to list reports", err)
	}
	return items, models.NewPagination(page, total), nil
}

// Nearby lists reports around a point, nearest first.
func (s *ReportService) Nearby(ctx context.Context, q NearbyQuery, identity *models.Identity) ([]models.Report, error) {
	radius := q.Radius
	if radius <= 0 {
		radius = DefaultNearbyRadius
	}
	limit := q.Limit
	if limit <= 0 {
		limit = models.DefaultPageLimit
	}
	var scope *primitive.ObjectID
	if identity.Role != models.RoleSystemAdmin {
		scope = identity.MunicipalityID
	}
	items, err := s.reports.Nearby(ctx, models.Coordinates{Lat: *q.Lat, Lng: *q.Lng}, radius, limit, scope)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to search nearby reports", err)
	}
	return items, nil
}

// UpdateStatus moves a report along the status graph and optionally
// reassigns it, on behalf of staff of the report's municipality.
func (s *ReportService) UpdateStatus(ctx context.Context, id primitive.ObjectID, req UpdateStatusRequest, staffUserID primitive.ObjectID) (*models.Report, error) {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Report not found")
		}
		return nil, apperrors.NewInternal("Failed to load report", err)
	}

	actor, err := s.users.FindByID(ctx, staffUserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Staff user not found")
		}
		return nil, apperrors.NewInternal("Failed to load staff user", err)
	}
	if actor.MunicipalityID == nil || report.MunicipalityID.IsZero() {
		return nil, apperrors.NewInternal("Municipality data missing", nil)
	}
	if *actor.MunicipalityID != report.MunicipalityID {
		return nil, apperrors.NewAccessDenied("Access denied. You can only manage reports from your municipality")
	}

	set := bson.M{}
	if req.AssignedStaffID != "" {
		assigneeID, err := primitive.ObjectIDFromHex(req.AssignedStaffID)
		if err != nil {
			return nil, apperrors.NewValidation("Invalid staff ID")
		}
		assignee, err := s.users.FindByID(ctx, assigneeID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.NewValidation("Assigned staff member not found")
			}
			return nil, apperrors.NewInternal("Failed to load assigned staff", err)
		}
		if assignee.MunicipalityID == nil {
			return nil, apperrors.NewValidation("Assigned staff has no municipality")
		}
		if *assignee.MunicipalityID != report.MunicipalityID {
			return nil, apperrors.NewValidation("Cannot assign report to staff from different municipality")
		}
		set["assignedStaffId"] = assigneeID
	}

	next := models.ReportStatus(req.Status)
	now := time.Now()
	if next != "" {
		if !models.CanTransition(report.Status, next) {
			return nil, apperrors.NewValidation(fmt.Sprintf("Invalid status transition from %s to %s", report.Status, next))
		}
		set["status"] = next
		switch next {
		case models.StatusAssigned:
			set["assignedAt"] = now
		case models.StatusInProgress:
			set["inProgressAt"] = now
		case models.StatusResolved:
			set["resolvedAt"] = now
			set["pointsAwarded"] = models.ResolvePoints(report.Category)
		}
	}
	if len(set) == 0 {
		return nil, apperrors.NewValidation("Nothing to update")
	}

	updated, err := s.reports.Update(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, apperrors.NewInternal("Failed to update report", err)
	}

	if next != "" {
		s.afterTransition(ctx, report, updated)
	}
	return updated, nil
}

// afterTransition updates staff counters and citizen rewards. All of it is
// best-effort: the status change has already been committed.
func (s *ReportService) afterTransition(ctx context.Context, before, after *models.Report) {
	log := s.log.WithContext(ctx).WithField("report_id", after.ID.Hex())

	if after.AssignedStaffID != nil {
		var inc bson.M
		switch after.Status {
		case models.StatusInProgress:
			inc = bson.M{"tasksInProgress": 1}
		case models.StatusResolved:
			inc = bson.M{"tasksCompleted": 1}
			if before.Status == models.StatusInProgress {
				inc["tasksInProgress"] = -1
			}
		}
		if inc != nil {
			if err := s.staffs.IncrementCounters(ctx, *after.AssignedStaffID, inc); err != nil {
				log.WithError(err).Warn("updating staff counters failed")
			}
		}
	}

	if after.Status != models.StatusResolved {
		return
	}

	municipality, err := s.municipalities.FindByID(ctx, after.MunicipalityID)
	if err != nil {
		log.WithError(err).Warn("loading municipality for rewards failed")
		return
	}
	reward := 0
	if municipality.Settings.CitizenRewards {
		reward = after.PointsAwarded * municipality.Settings.PointValue
		if reward > 0 {
			if err := s.users.IncrementPoints(ctx, after.CitizenID, reward); err != nil {
				log.WithError(err).Warn("awarding citizen points failed")
			}
		}
	}

	citizen, err := s.users.FindByID(ctx, after.CitizenID)
	if err != nil {
		log.WithError(err).Warn("loading citizen for notification failed")
		return
	}
	s.notifier.Resolved(ctx, citizen.Name, citizen.Email, after.Title, reward)
}

// AssignmentRejection accompanies a resolved-report assignment attempt.
type AssignmentRejection struct {
	CurrentStatus models.ReportStatus `json:"currentStatus"`
	ResolvedAt    *time.Time          `json:"resolvedAt,omitempty"`
}

// UnavailableStaffData names the staff member who cannot take the report.
type UnavailableStaffData struct {
	StaffName  string `json:"staffName"`
	Department string `json:"department"`
}

// Assign hands a report in the admin's municipality to a staff member.
func (s *ReportService) Assign(ctx context.Context, id primitive.ObjectID, req AssignReportRequest, adminMunicipalityID primitive.ObjectID) (*models.Report, error) {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, apperrors.NewInternal("Failed to load report", err)
	}
	if report == nil || report.MunicipalityID != adminMunicipalityID {
		return nil, apperrors.NewNotFound("Report not found")
	}
	if report.Status == models.StatusResolved {
		return nil, apperrors.NewValidation("Cannot assign a report that has already been resolved").
			WithData(AssignmentRejection{CurrentStatus: report.Status, ResolvedAt: report.ResolvedAt})
	}
	if !report.Status.IsOpen() {
		return nil, apperrors.NewValidation(fmt.Sprintf("Cannot assign a report with status %s", report.Status)).
			WithData(AssignmentRejection{CurrentStatus: report.Status})
	}

	staffID, err := primitive.ObjectIDFromHex(req.AssignedStaffID)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid staff ID")
	}
	if report.AssignedStaffID != nil && *report.AssignedStaffID == staffID {
		return nil, apperrors.NewValidation("Report is already assigned to this staff member")
	}

	staffUser, err := s.users.FindByID(ctx, staffID)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, apperrors.NewInternal("Failed to load staff member", err)
	}
	if staffUser == nil || !staffUser.Role.IsStaffRole() || staffUser.MunicipalityID == nil || *staffUser.MunicipalityID != adminMunicipalityID {
		return nil, apperrors.NewValidation("Staff member not found or invalid")
	}

	staffRecord, err := s.staffs.FindByUserID(ctx, staffID)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, apperrors.NewInternal("Failed to load staff profile", err)
	}
	if staffRecord != nil && !staffRecord.Availability {
		return nil, apperrors.NewValidation("Staff member is currently unavailable for assignments").
			WithData(UnavailableStaffData{StaffName: staffUser.Name, Department: staffRecord.Department})
	}

	now := time.Now()
	dueDate := req.DueDate
	if dueDate == nil {
		dueDate = report.DueDate
	}
	if dueDate != nil && dueDate.After(now.Add(maxDueDateWindow)) {
		return nil, apperrors.NewValidation("Due date cannot be more than 30 days in the future")
	}

	priority := report.Priority
	if req.Priority != "" {
		priority = models.Priority(req.Priority)
	}
	set := bson.M{
		"assignedStaffId": staffID,
		"priority":        priority,
		"assignmentNotes": req.Notes,
	}
	// reassignment keeps the report where it is in the status graph
	if report.Status == models.StatusPending {
		set["status"] = models.StatusAssigned
		set["assignedAt"] = now
	}
	if dueDate == nil {
		defaultDue := now.Add(defaultDueDateGap)
		dueDate = &defaultDue
	}
	set["dueDate"] = *dueDate

	updated, err := s.reports.Update(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, apperrors.NewInternal("Failed to assign report", err)
	}

	log := s.log.WithContext(ctx).WithField("report_id", id.Hex())
	inc := bson.M{"totalTasksAssigned": 1}
	if report.Status == models.StatusInProgress {
		inc["tasksInProgress"] = 1
		if report.AssignedStaffID != nil {
			if err := s.staffs.IncrementCounters(ctx, *report.AssignedStaffID, bson.M{"tasksInProgress": -1}); err != nil {
				log.WithError(err).Warn("updating previous assignee counters failed")
			}
		}
	}
	if err := s.staffs.IncrementCounters(ctx, staffID, inc); err != nil {
		log.WithError(err).Warn("updating staff counters failed")
	}
	s.notifier.StaffAssignment(ctx, staffUser.Name, staffUser.Email, updated.Title, string(priority), *dueDate, req.Notes)
	if citizen, err := s.users.FindByID(ctx, report.CitizenID); err == nil {
		s.notifier.CitizenAssignment(ctx, citizen.Name, citizen.Email, updated.Title)
	} else {
		log.WithError(err).Warn("loading citizen for notification failed")
	}
	return updated, nil
}
