package services

import (
	"context"
	"strings"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/logger"
	"nagaralert-be/models"
	"nagaralert-be/repositories"
	"nagaralert-be/storage"
	authUtils "nagaralert-be/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const recentAssignmentsLimit = 5

// CreateStaffRequest is the multipart form an admin submits to onboard staff
type CreateStaffRequest struct {
	Name           string   `form:"name" json:"name" binding:"required,min=2,max=50"`
	Email          string   `form:"email" json:"email" binding:"required,email"`
	Phone          string   `form:"phone" json:"phone" binding:"required,npphone"`
	Role           string   `form:"role" json:"role" binding:"omitempty,oneof=field_staff municipality_admin"`
	MunicipalityID string   `form:"municipalityId" json:"municipalityId" binding:"omitempty,objectid"`
	EmployeeID     string   `form:"employeeId" json:"employeeId" binding:"required,max=30,employeeid"`
	Department     string   `form:"department" json:"department" binding:"required,department"`
	Designation    string   `form:"designation" json:"designation" binding:"required,designation"`
	AssignedWards  []string `form:"assignedWards" json:"assignedWards" binding:"omitempty,dive,digits"`
	AssignedZones  []string `form:"assignedZones" json:"assignedZones"`
	Skills         []string `form:"skills" json:"skills" binding:"omitempty,dive,skill"`
	Tools          []string `form:"tools" json:"tools"`
	VehicleNumber  string   `form:"vehicleNumber" json:"vehicleNumber"`
	VehicleType    string   `form:"vehicleType" json:"vehicleType" binding:"omitempty,oneof=none bicycle motorcycle car truck van"`
	ShiftStart     string   `form:"shiftStart" json:"shiftStart" binding:"omitempty,datetime=15:04"`
	ShiftEnd       string   `form:"shiftEnd" json:"shiftEnd" binding:"omitempty,datetime=15:04"`
	SupervisorID   string   `form:"supervisorId" json:"supervisorId" binding:"omitempty,objectid"`
	SalaryGrade    string   `form:"salaryGrade" json:"salaryGrade"`
}

// UpdateStaffRequest edits a staff member. User fields and staff fields are
// written separately.
type UpdateStaffRequest struct {
	Name          *string             `form:"name" json:"name" binding:"omitempty,min=2,max=50"`
	Phone         *string             `form:"phone" json:"phone" binding:"omitempty,npphone"`
	UserStatus    *models.UserStatus  `form:"userStatus" json:"userStatus" binding:"omitempty,oneof=active inactive suspended"`
	Department    *string             `form:"department" json:"department" binding:"omitempty,department"`
	Designation   *string             `form:"designation" json:"designation" binding:"omitempty,designation"`
	AssignedWards []string            `form:"assignedWards" json:"assignedWards" binding:"omitempty,dive,digits"`
	AssignedZones []string            `form:"assignedZones" json:"assignedZones"`
	Skills        []string            `form:"skills" json:"skills" binding:"omitempty,dive,skill"`
	Tools         []string            `form:"tools" json:"tools"`
	VehicleNumber *string             `form:"vehicleNumber" json:"vehicleNumber"`
	VehicleType   *string             `form:"vehicleType" json:"vehicleType" binding:"omitempty,oneof=none bicycle motorcycle car truck van"`
	Availability  *bool               `form:"availability" json:"availability"`
	WorkStatus    *models.WorkStatus  `form:"workStatus" json:"workStatus" binding:"omitempty,oneof=available on_duty on_break off_duty emergency"`
	Status        *models.StaffStatus `form:"status" json:"status" binding:"omitempty,oneof=active inactive on_leave suspended training"`
	SupervisorID  *string             `form:"supervisorId" json:"supervisorId" binding:"omitempty,objectid"`
	SalaryGrade   *string             `form:"salaryGrade" json:"salaryGrade"`
}

// UpdateMyStaffRequest is what staff may change about themselves.
type UpdateMyStaffRequest struct {
	Name          *string  `form:"name" json:"name" binding:"omitempty,min=2,max=50"`
	Phone         *string  `form:"phone" json:"phone" binding:"omitempty,npphone"`
	Skills        []string `form:"skills" json:"skills" binding:"omitempty,dive,skill"`
	Tools         []string `form:"tools" json:"tools"`
	VehicleNumber *string  `form:"vehicleNumber" json:"vehicleNumber"`
	Availability  *bool    `form:"availability" json:"availability"`
}

type StaffListQuery struct {
	models.PageQuery
	Department   string `form:"department" binding:"omitempty,department"`
	Availability *bool  `form:"availability"`
	Status       string `form:"status" binding:"omitempty,oneof=active inactive on_leave suspended training"`
}

type AvailabilityRequest struct {
	Availability *bool `json:"availability" binding:"required"`
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	Accuracy  *float64 `json:"accuracy" binding:"omitempty,min=0"`
}

// CreateStaffResult pairs the staff record with its new user account.
type CreateStaffResult struct {
	Staff *models.Staff      `json:"staff"`
	User  *models.UserDetail `json:"user"`
}

// StaffDetail is a staff record with its workload summary.
type StaffDetail struct {
	Staff             *models.Staff      `json:"staff"`
	User              *models.UserDetail `json:"user,omitempty"`
	ActiveAssignments int64              `json:"activeAssignments"`
	CompletionRate    int                `json:"completionRate"`
	RecentReports     []models.Report    `json:"recentReports"`
}

type AssignedReportStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Resolved int64 `json:"resolved"`
}

// StaffService manages municipal staff and their self-service endpoints
type StaffService struct {
	staffs         repositories.StaffRepositoryInterface
	users          repositories.UserRepositoryInterface
	municipalities repositories.MunicipalityRepositoryInterface
	reports        repositories.ReportRepositoryInterface
	media          MediaStorage
	notifier       *Notifier
	passwordCost   int
	log            *logger.Logger
}

func NewStaffService(
	staffs repositories.StaffRepositoryInterface,
	users repositories.UserRepositoryInterface,
	municipalities repositories.MunicipalityRepositoryInterface,
	reports repositories.ReportRepositoryInterface,
	media MediaStorage,
	notifier *Notifier,
	passwordCost int,
	log *logger.Logger,
) *StaffService {
	return &StaffService{
		staffs:         staffs,
		users:          users,
		municipalities: municipalities,
		reports:        reports,
		media:          media,
		notifier:       notifier,
		passwordCost:   passwordCost,
		log:            log,
	}
}

// targetMunicipality resolves which municipality an admin acts on.
func targetMunicipality(identity *models.Identity, requested string) (primitive.ObjectID, error) {
	if identity.Role == models.RoleSystemAdmin {
		if requested == "" {
			return primitive.NilObjectID, apperrors.NewValidation("Municipality ID is required")
		}
		id, err := primitive.ObjectIDFromHex(requested)
		if err != nil {
			return primitive.NilObjectID, apperrors.NewValidation("Invalid municipality ID")
		}
		return id, nil
	}
	if identity.MunicipalityID == nil {
		return primitive.NilObjectID, apperrors.NewAccessDenied("No municipality associated with this account")
	}
	if requested != "" && requested != identity.MunicipalityID.Hex() {
		return primitive.NilObjectID, apperrors.NewAccessDenied("You can only manage staff of your own municipality")
	}
	return *identity.MunicipalityID, nil
}

// Create onboards a staff member: an active user account, then the staff
// record, then the user's staff profile back-reference.
func (s *StaffService) Create(ctx context.Context, req CreateStaffRequest, image *models.MediaFile, identity *models.Identity) (*CreateStaffResult, error) {
	municipalityID, err := targetMunicipality(identity, req.MunicipalityID)
	if err != nil {
		return nil, err
	}
	if _, err := s.municipalities.FindByID(ctx, municipalityID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation("Municipality not found")
		}
		return nil, apperrors.NewInternal("Failed to load municipality", err)
	}

	taken, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to check email", err)
	}
	if taken {
		return nil, apperrors.NewValidation("Email already registered")
	}
	employeeID := strings.ToUpper(strings.TrimSpace(req.EmployeeID))
	taken, err = s.staffs.ExistsByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to check employee ID", err)
	}
	if taken {
		return nil, apperrors.NewValidation("Employee ID already exists")
	}

	var supervisorID *primitive.ObjectID
	if req.SupervisorID != "" {
		id, _ := primitive.ObjectIDFromHex(req.SupervisorID)
		supervisor, err := s.staffs.FindByID(ctx, id)
		if err != nil || supervisor.MunicipalityID != municipalityID {
			if err != nil && !apperrors.IsNotFound(err) {
				return nil, apperrors.NewInternal("Failed to load supervisor", err)
			}
			return nil, apperrors.NewValidation("Supervisor not found in this municipality")
		}
		supervisorID = &id
	}

	role := models.RoleFieldStaff
	if req.Role != "" {
		role = models.Role(req.Role)
	}
	password, err := authUtils.TemporaryPassword()
	if err != nil {
		return nil, apperrors.NewInternal("Failed to generate password", err)
	}
	user := &models.User{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Password:       password,
		Phone:          req.Phone,
		Role:           role,
		Status:         models.UserActive,
		MunicipalityID: &municipalityID,
	}
	if err := user.HashPassword(s.passwordCost); err != nil {
		return nil, apperrors.NewInternal("Failed to hash password", err)
	}
	tx := newSaga("create_staff", s.log)
	if image != nil {
		uploaded, err := s.media.Upload(ctx, image.Path, storage.FolderStaff, models.MediaImage)
		if err != nil {
			return nil, apperrors.NewInternal("Failed to upload profile image", err)
		}
		user.ProfileImage = uploaded.URL
		tx.onUndo("delete profile image", func(ctx context.Context) error {
			return s.media.Delete(ctx, uploaded.PublicID, models.MediaImage)
		})
	}

	if err := s.users.Create(ctx, user); err != nil {
		tx.rollback(ctx)
		return nil, wrapPersistence(err, "Failed to create staff user")
	}
	tx.onUndo("delete staff user", func(ctx context.Context) error {
		return s.users.Delete(ctx, user.ID)
	})

	staff := &models.Staff{
		UserID:         user.ID,
		EmployeeID:     employeeID,
		Department:     req.Department,
		Designation:    req.Designation,
		MunicipalityID: municipalityID,
		AssignedWards:  orEmpty(req.AssignedWards),
		AssignedZones:  orEmpty(req.AssignedZones),
		Skills:         orEmpty(req.Skills),
		Tools:          orEmpty(req.Tools),
		VehicleNumber:  req.VehicleNumber,
		VehicleType:    req.VehicleType,
		Availability:   true,
		WorkStatus:     models.WorkAvailable,
		SupervisorID:   supervisorID,
		SalaryGrade:    req.SalaryGrade,
		Status:         models.StaffActive,
	}
	if staff.VehicleType == "" {
		staff.VehicleType = "none"
	}
	if req.ShiftStart != "" || req.ShiftEnd != "" {
		staff.Shift = &models.Shift{Start: req.ShiftStart, End: req.ShiftEnd}
	}
	if err := s.staffs.Create(ctx, staff); err != nil {
		tx.rollback(ctx)
		return nil, wrapPersistence(err, "Failed to create staff profile")
	}

	if role == models.RoleFieldStaff {
		if err := user.SetProfile(models.FieldStaffProfile{
			StaffID:     staff.ID,
			EmployeeID:  staff.EmployeeID,
			Department:  staff.Department,
			Designation: staff.Designation,
		}); err == nil {
			if updated, err := s.users.Update(ctx, user.ID, bson.M{"profile": user.RawProfile}); err != nil {
				s.log.WithContext(ctx).WithError(err).Warn("linking staff profile failed")
			} else {
				user = updated
			}
		}
	}

	s.notifier.StaffWelcome(ctx, user.Name, user.Email, password)

	detail, err := userDetail(user)
	if err != nil {
		return nil, err
	}
	return &CreateStaffResult{Staff: staff, User: detail}, nil
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// List returns staff of the identity's municipality; system admins may
// list any municipality, or all when none is given.
func (s *StaffService) List(ctx context.Context, q StaffListQuery, municipalityID *primitive.ObjectID) ([]models.StaffWithUser, *models.Pagination, error) {
	page := q.PageQuery.Normalize(models.DefaultPageLimit)
	items, total, err := s.staffs.List(ctx, models.StaffFilter{
		MunicipalityID: municipalityID,
		Department:     q.Department,
		Availability:   q.Availability,
		Status:         models.StaffStatus(q.Status),
	}, page)
	if err != nil {
		return nil, nil, apperrors.NewInternal("Failed to list staff", err)
	}
	return items, models.NewPagination(page, total), nil
}

// scopedStaff loads a staff record the identity may manage.
func (s *StaffService) scopedStaff(ctx context.Context, id primitive.ObjectID, identity *models.Identity) (*models.Staff, error) {
	staff, err := s.staffs.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Staff not found")
		}
		return nil, apperrors.NewInternal("Failed to load staff", err)
	}
	if identity.Role != models.RoleSystemAdmin && !identity.InMunicipality(staff.MunicipalityID) {
		return nil, apperrors.NewAccessDenied("You can only manage staff of your own municipality")
	}
	return staff, nil
}

func (s *StaffService) Get(ctx context.Context, id primitive.ObjectID, identity *models.Identity) (*StaffDetail, error) {
	staff, err := s.scopedStaff(ctx, id, identity)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, staff)
}

func (s *StaffService) detail(ctx context.Context, staff *models.Staff) (*StaffDetail, error) {
	out := &StaffDetail{Staff: staff, CompletionRate: staff.CompletionRate()}

	user, err := s.users.FindByID(ctx, staff.UserID)
	switch {
	case err == nil:
		if out.User, err = userDetail(user); err != nil {
			return nil, err
		}
	case !apperrors.IsNotFound(err):
		return nil, apperrors.NewInternal("Failed to load staff user", err)
	}

	assigned := models.ReportFilter{AssignedStaffID: &staff.UserID}
	out.ActiveAssignments, err = s.reports.Count(ctx, assigned, models.AssignedWorkStatuses...)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to count assignments", err)
	}
	out.RecentReports, _, err = s.reports.List(ctx, assigned, models.PageQuery{Page: 1, Limit: recentAssignmentsLimit})
	if err != nil {
		return nil, apperrors.NewInternal("Failed to load recent reports", err)
	}
	return out, nil
}

// Update edits a staff member. A supervisor change must keep the chain acyclic.
func (s *StaffService) Update(ctx context.Context, id primitive.ObjectID, req UpdateStaffRequest, image *models.MediaFile, identity *models.Identity) (*StaffDetail, error) {
	staff, err := s.scopedStaff(ctx, id, identity)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Department != nil {
		set["department"] = *req.Department
	}
	if req.Designation != nil {
		set["designation"] = *req.Designation
	}
	if req.AssignedWards != nil {
		set["assignedWards"] = req.AssignedWards
	}
	if req.AssignedZones != nil {
		set["assignedZones"] = req.AssignedZones
	}
	if req.Skills != nil {
		set["skills"] = req.Skills
	}
	if req.Tools != nil {
		set["tools"] = req.Tools
	}
	if req.VehicleNumber != nil {
		set["vehicleNumber"] = *req.VehicleNumber
	}
	if req.VehicleType != nil {
		set["vehicleType"] = *req.VehicleType
	}
	if req.Availability != nil {
		set["availability"] = *req.Availability
	}
	if req.WorkStatus != nil {
		set["workStatus"] = *req.WorkStatus
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.SalaryGrade != nil {
		set["salaryGrade"] = *req.SalaryGrade
	}
	if req.SupervisorID != nil {
		if *req.SupervisorID == "" {
			set["supervisorId"] = nil
		} else {
			supervisorID, _ := primitive.ObjectIDFromHex(*req.SupervisorID)
			if err := s.checkSupervisor(ctx, staff, supervisorID); err != nil {
				return nil, err
			}
			set["supervisorId"] = supervisorID
		}
	}

	userSet := bson.M{}
	if req.Name != nil {
		userSet["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		userSet["phone"] = *req.Phone
	}
	if req.UserStatus != nil {
		userSet["status"] = *req.UserStatus
	}
	if image != nil {
		uploaded, err := s.media.Upload(ctx, image.Path, storage.FolderStaff, models.MediaImage)
		if err != nil {
			return nil, apperrors.NewInternal("Failed to upload profile image", err)
		}
		userSet["profileImage"] = uploaded.URL
	}

	if len(userSet) > 0 {
		if _, err := s.users.Update(ctx, staff.UserID, userSet); err != nil {
			return nil, wrapPersistence(err, "Failed to update staff user")
		}
	}
	if len(set) > 0 {
		if staff, err = s.staffs.Update(ctx, staff.ID, set); err != nil {
			return nil, wrapPersistence(err, "Failed to update staff")
		}
		_, department := set["department"]
		_, designation := set["designation"]
		if department || designation {
			s.syncStaffProfile(ctx, staff)
		}
	}
	return s.detail(ctx, staff)
}

// syncStaffProfile refreshes the copy of staff fields held on the user.
func (s *StaffService) syncStaffProfile(ctx context.Context, staff *models.Staff) {
	user, err := s.users.FindByID(ctx, staff.UserID)
	if err != nil || user.Role != models.RoleFieldStaff {
		return
	}
	if err := user.SetProfile(models.FieldStaffProfile{
		StaffID:     staff.ID,
		EmployeeID:  staff.EmployeeID,
		Department:  staff.Department,
		Designation: staff.Designation,
	}); err != nil {
		return
	}
	if _, err := s.users.Update(ctx, user.ID, bson.M{"profile": user.RawProfile}); err != nil {
		s.log.WithContext(ctx).WithError(err).Warn("syncing staff profile failed")
	}
}

// checkSupervisor walks the candidate's supervisor chain. The walk fails
// when it reaches the subordinate or exceeds MaxSupervisorDepth.
func (s *StaffService) checkSupervisor(ctx context.Context, subordinate *models.Staff, candidateID primitive.ObjectID) error {
	if candidateID == subordinate.ID {
		return apperrors.NewValidation("Staff member cannot supervise themselves")
	}
	current := candidateID
	for depth := 0; ; depth++ {
		if depth >= models.MaxSupervisorDepth {
			return apperrors.NewValidation("Supervisor chain is too deep")
		}
		next, err := s.staffs.FindByID(ctx, current)
		if err != nil {
			if apperrors.IsNotFound(err) {
				if depth == 0 {
					return apperrors.NewValidation("Supervisor not found")
				}
				return nil
			}
			return apperrors.NewInternal("Failed to load supervisor", err)
		}
		if depth == 0 && next.MunicipalityID != subordinate.MunicipalityID {
			return apperrors.NewValidation("Supervisor not found in this municipality")
		}
		if next.SupervisorID == nil {
			return nil
		}
		if *next.SupervisorID == subordinate.ID {
			return apperrors.NewValidation("Supervisor assignment would create a cycle")
		}
		current = *next.SupervisorID
	}
}

// Delete removes a staff member without open assignments.
func (s *StaffService) Delete(ctx context.Context, id primitive.ObjectID, identity *models.Identity) error {
	staff, err := s.scopedStaff(ctx, id, identity)
	if err != nil {
		return err
	}
	if staff.UserID == identity.ID {
		return apperrors.NewValidation("You cannot delete your own staff account")
	}
	active, err := s.reports.Count(ctx, models.ReportFilter{AssignedStaffID: &staff.UserID}, models.AssignedWorkStatuses...)
	if err != nil {
		return apperrors.NewInternal("Failed to count assignments", err)
	}
	if active > 0 {
		return apperrors.NewValidation("Cannot delete staff member with active assignments")
	}

	if err := s.users.Delete(ctx, staff.UserID); err != nil && !apperrors.IsNotFound(err) {
		return apperrors.NewInternal("Failed to delete staff user", err)
	}
	if err := s.staffs.Delete(ctx, staff.ID); err != nil && !apperrors.IsNotFound(err) {
		return apperrors.NewInternal("Failed to delete staff", err)
	}
	return nil
}

func (s *StaffService) own(ctx context.Context, userID primitive.ObjectID) (*models.Staff, error) {
	staff, err := s.staffs.FindByUserID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Staff profile not found")
		}
		return nil, apperrors.NewInternal("Failed to load staff profile", err)
	}
	return staff, nil
}

func (s *StaffService) MyProfile(ctx context.Context, userID primitive.ObjectID) (*StaffDetail, error) {
	staff, err := s.own(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, staff)
}

func (s *StaffService) UpdateMyProfile(ctx context.Context, userID primitive.ObjectID, req UpdateMyStaffRequest, image *models.MediaFile) (*StaffDetail, error) {
	staff, err := s.own(ctx, userID)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Skills != nil {
		set["skills"] = req.Skills
	}
	if req.Tools != nil {
		set["tools"] = req.Tools
	}
	if req.VehicleNumber != nil {
		set["vehicleNumber"] = *req.VehicleNumber
	}
	if req.Availability != nil {
		set["availability"] = *req.Availability
	}
	userSet := bson.M{}
	if req.Name != nil {
		userSet["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		userSet["phone"] = *req.Phone
	}
	if image != nil {
		uploaded, err := s.media.Upload(ctx, image.Path, storage.FolderStaff, models.MediaImage)
		if err != nil {
			return nil, apperrors.NewInternal("Failed to upload profile image", err)
		}
		userSet["profileImage"] = uploaded.URL
	}

	if len(userSet) > 0 {
		if _, err := s.users.Update(ctx, userID, userSet); err != nil {
			return nil, wrapPersistence(err, "Failed to update profile")
		}
	}
	if len(set) > 0 {
		if staff, err = s.staffs.Update(ctx, staff.ID, set); err != nil {
			return nil, wrapPersistence(err, "Failed to update staff profile")
		}
	}
	return s.detail(ctx, staff)
}

// MyAssignedReports lists the caller's assignments with a status summary.
func (s *StaffService) MyAssignedReports(ctx context.Context, userID primitive.ObjectID, q ReportListQuery) ([]models.Report, *models.Pagination, *AssignedReportStats, error) {
	filter := q.filter()
	filter.AssignedStaffID = &userID
	page := q.PageQuery.Normalize(models.DefaultPageLimit)

	items, total, err := s.reports.List(ctx, filter, page)
	if err != nil {
		return nil, nil, nil, apperrors.NewInternal("Failed to list assigned reports", err)
	}

	mine := models.ReportFilter{AssignedStaffID: &userID}
	stats := &AssignedReportStats{}
	if stats.Total, err = s.reports.Count(ctx, mine); err != nil {
		return nil, nil, nil, apperrors.NewInternal("Failed to count assigned reports", err)
	}
	if stats.Pending, err = s.reports.Count(ctx, mine, models.AssignedWorkStatuses...); err != nil {
		return nil, nil, nil, apperrors.NewInternal("Failed to count assigned reports", err)
	}
	if stats.Resolved, err = s.reports.Count(ctx, mine, models.StatusResolved); err != nil {
		return nil, nil, nil, apperrors.NewInternal("Failed to count assigned reports", err)
	}
	return items, models.NewPagination(page, total), stats, nil
}

func (s *StaffService) UpdateAvailability(ctx context.Context, userID primitive.ObjectID, available bool) (*models.Staff, error) {
	staff, err := s.own(ctx, userID)
	if err != nil {
		return nil, err
	}
	workStatus := models.WorkAvailable
	if !available {
		workStatus = models.WorkOffDuty
	}
	updated, err := s.staffs.Update(ctx, staff.ID, bson.M{"availability": available, "workStatus": workStatus})
	if err != nil {
		return nil, apperrors.NewInternal("Failed to update availability", err)
	}
	return updated, nil
}

func (s *StaffService) UpdateLocation(ctx context.Context, userID primitive.ObjectID, req LocationRequest) (*models.Staff, error) {
	staff, err := s.own(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	location := models.StaffLocation{
		Type:        "Point",
		Coordinates: []float64{*req.Longitude, *req.Latitude},
		LastUpdated: &now,
		Accuracy:    req.Accuracy,
	}
	updated, err := s.staffs.Update(ctx, staff.ID, bson.M{"currentLocation": location})
	if err != nil {
		return nil, apperrors.NewInternal("Failed to update location", err)
	}
	return updated, nil
}
