package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/cache"
	"nagaralert-be/logger"
	"nagaralert-be/models"
	"nagaralert-be/repositories"
	authUtils "nagaralert-be/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MunicipalityListCacheKey holds the public municipality listing.
const MunicipalityListCacheKey = "municipalities:list"

type MunicipalityLocationInput struct {
	City        string              `json:"city" binding:"required"`
	Province    string              `json:"province" binding:"required"`
	Coordinates *models.Coordinates `json:"coordinates"`
}

type AdminUserInput struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required,npphone"`
}

type SettingsInput struct {
	AutoAssignReports *bool `json:"autoAssignReports"`
	CitizenRewards    *bool `json:"citizenRewards"`
	PointValue        *int  `json:"pointValue" binding:"omitempty,min=0"`
}

type CreateMunicipalityRequest struct {
	Name             string                    `json:"name" binding:"required,min=2,max=100"`
	Location         MunicipalityLocationInput `json:"location" binding:"required"`
	BoundaryBox      *models.BoundaryBox       `json:"boundaryBox"`
	AdminUser        AdminUserInput            `json:"adminUser" binding:"required"`
	ContactEmail     string                    `json:"contactEmail" binding:"required,email"`
	ContactPhone     string                    `json:"contactPhone" binding:"required,npphone"`
	Settings         *SettingsInput            `json:"settings"`
	ReportCategories []models.ReportCategory   `json:"reportCategories" binding:"omitempty,dive,oneof=road electricity water sanitation safety emergency illegal_activity"`
}

type UpdateMunicipalityRequest struct {
	Name             *string                 `json:"name" binding:"omitempty,min=2,max=100"`
	City             *string                 `json:"city"`
	Province         *string                 `json:"province"`
	Coordinates      *models.Coordinates     `json:"coordinates"`
	BoundaryBox      *models.BoundaryBox     `json:"boundaryBox"`
	ContactEmail     *string                 `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone     *string                 `json:"contactPhone" binding:"omitempty,npphone"`
	Settings         *SettingsInput          `json:"settings"`
	ReportCategories []models.ReportCategory `json:"reportCategories" binding:"omitempty,dive,oneof=road electricity water sanitation safety emergency illegal_activity"`
	IsActive         *bool                   `json:"isActive"`
}

type MunicipalityListQuery struct {
	models.PageQuery
	City     string `form:"city"`
	Province string `form:"province"`
	Search   string `form:"search"`
}

// CreateMunicipalityResult pairs the new tenant with its admin account.
type CreateMunicipalityResult struct {
	Municipality *models.Municipality `json:"municipality"`
	AdminUser    *models.UserDetail   `json:"adminUser"`
}

type MunicipalityStats struct {
	ID                primitive.ObjectID          `json:"id"`
	Name              string                      `json:"name"`
	Location          models.MunicipalityLocation `json:"location"`
	IsActive          bool                        `json:"isActive"`
	Settings          models.MunicipalitySettings `json:"settings"`
	ReportCategories  []models.ReportCategory     `json:"reportCategories"`
	BoundaryBox       *models.BoundaryBox         `json:"boundaryBox,omitempty"`
	TotalReports      int64                       `json:"totalReports"`
	ReportsByStatus   []models.CountByKey         `json:"reportsByStatus"`
	ReportsByCategory []models.CountByKey         `json:"reportsByCategory"`
}

// MunicipalityService provisions and manages tenants
type MunicipalityService struct {
	municipalities repositories.MunicipalityRepositoryInterface
	users          repositories.UserRepositoryInterface
	reports        repositories.ReportRepositoryInterface
	cache          Cache
	cacheTTL       time.Duration
	notifier       *Notifier
	passwordCost   int
	log            *logger.Logger
}

func NewMunicipalityService(
	municipalities repositories.MunicipalityRepositoryInterface,
	users repositories.UserRepositoryInterface,
	reports repositories.ReportRepositoryInterface,
	cache Cache,
	cacheTTL time.Duration,
	notifier *Notifier,
	passwordCost int,
	log *logger.Logger,
) *MunicipalityService {
	return &MunicipalityService{
		municipalities: municipalities,
		users:          users,
		reports:        reports,
		cache:          cache,
		cacheTTL:       cacheTTL,
		notifier:       notifier,
		passwordCost:   passwordCost,
		log:            log,
	}
}

// Create provisions a municipality and its admin. The three writes run as a
// saga: any failure removes what was already written.
func (s *MunicipalityService) Create(ctx context.Context, req CreateMunicipalityRequest) (*CreateMunicipalityResult, error) {
	taken, err := s.users.ExistsByEmail(ctx, req.AdminUser.Email)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to check admin email", err)
	}
	if taken {
		return nil, apperrors.NewValidation("Admin email already exists")
	}

	duplicate, err := s.municipalities.ExistsByNameAndCity(ctx, req.Name, req.Location.City)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to check municipality", err)
	}
	if duplicate {
		return nil, apperrors.NewValidation("Municipality already exists in this city")
	}

	box := req.BoundaryBox
	if box == nil && req.Location.Coordinates != nil {
		box = models.DefaultBoundaryBox(*req.Location.Coordinates)
	}
	if !box.Valid() {
		return nil, apperrors.NewValidation("Boundary box minimum must not exceed maximum")
	}

	code, expiry, err := newOTP()
	if err != nil {
		return nil, apperrors.NewInternal("Failed to generate activation code", err)
	}
	admin := &models.User{
		Name:            strings.TrimSpace(req.AdminUser.Name),
		Email:           strings.ToLower(strings.TrimSpace(req.AdminUser.Email)),
		Password:        req.AdminUser.Password,
		Phone:           req.AdminUser.Phone,
		Role:            models.RoleMunicipalityAdmin,
		Status:          models.UserPending,
		ActivationToken: code,
		TokenExpiry:     &expiry,
	}
	if err := admin.SetProfile(models.MunicipalityAdminProfile{Office: req.Name}); err != nil {
		return nil, apperrors.NewInternal("Failed to build admin profile", err)
	}
	if err := admin.HashPassword(s.passwordCost); err != nil {
		return nil, apperrors.NewInternal("Failed to hash password", err)
	}

	settings := models.DefaultMunicipalitySettings()
	applySettings(&settings, req.Settings)
	categories := req.ReportCategories
	if len(categories) == 0 {
		categories = append([]models.ReportCategory(nil), models.AllReportCategories...)
	}

	tx := newSaga("create_municipality", s.log)

	if err := s.users.Create(ctx, admin); err != nil {
		return nil, wrapPersistence(err, "Failed to create admin user")
	}
	tx.onUndo("delete admin user", func(ctx context.Context) error {
		return s.users.Delete(ctx, admin.ID)
	})

	municipality := &models.Municipality{
		Name: strings.TrimSpace(req.Name),
		Location: models.MunicipalityLocation{
			City:        strings.TrimSpace(req.Location.City),
			Province:    strings.TrimSpace(req.Location.Province),
			Coordinates: req.Location.Coordinates,
		},
		BoundaryBox:      box,
		AdminID:          admin.ID,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		Settings:         settings,
		ReportCategories: categories,
		IsActive:         true,
	}
	if err := s.municipalities.Create(ctx, municipality); err != nil {
		tx.rollback(ctx)
		return nil, wrapPersistence(err, "Failed to create municipality")
	}
	tx.onUndo("delete municipality", func(ctx context.Context) error {
		return s.municipalities.Delete(ctx, municipality.ID)
	})

	updatedAdmin, err := s.users.Update(ctx, admin.ID, bson.M{"municipalityId": municipality.ID})
	if err != nil {
		tx.rollback(ctx)
		return nil, apperrors.NewInternal("Failed to link admin to municipality", err)
	}

	s.invalidateList(ctx)
	s.notifier.Activation(ctx, updatedAdmin.Name, updatedAdmin.Email, code, authUtils.OTPValidity)

	detail, err := userDetail(updatedAdmin)
	if err != nil {
		return nil, err
	}
	return &CreateMunicipalityResult{Municipality: municipality, AdminUser: detail}, nil
}

func applySettings(settings *models.MunicipalitySettings, in *SettingsInput) {
	if in == nil {
		return
	}
	if in.AutoAssignReports != nil {
		settings.AutoAssignReports = *in.AutoAssignReports
	}
	if in.CitizenRewards != nil {
		settings.CitizenRewards = *in.CitizenRewards
	}
	if in.PointValue != nil {
		settings.PointValue = *in.PointValue
	}
}

// wrapPersistence passes through app errors (duplicate keys) and wraps the rest.
func wrapPersistence(err error, message string) error {
	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}
	return apperrors.NewInternal(message, err)
}

func (s *MunicipalityService) List(ctx context.Context, q MunicipalityListQuery) ([]models.Municipality, *models.Pagination, error) {
	page := q.PageQuery.Normalize(models.DefaultPageLimit)
	items, total, err := s.municipalities.List(ctx, models.MunicipalityFilter{
		City:     q.City,
		Province: q.Province,
		Search:   q.Search,
	}, page)
	if err != nil {
		return nil, nil, apperrors.NewInternal("Failed to list municipalities", err)
	}
	return items, models.NewPagination(page, total), nil
}

// ListAll returns the cached public listing of active municipalities.
func (s *MunicipalityService) ListAll(ctx context.Context) ([]models.MunicipalitySummary, error) {
	var cached []models.MunicipalitySummary
	err := s.cache.Get(ctx, MunicipalityListCacheKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.log.WithContext(ctx).WithError(err).Warn("reading municipality cache failed")
	}

	items, err := s.municipalities.ListSummaries(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to list municipalities", err)
	}
	if err := s.cache.Set(ctx, MunicipalityListCacheKey, items, s.cacheTTL); err != nil {
		s.log.WithContext(ctx).WithError(err).Warn("writing municipality cache failed")
	}
	return items, nil
}

func (s *MunicipalityService) invalidateList(ctx context.Context) {
	if err := s.cache.Delete(ctx, MunicipalityListCacheKey); err != nil {
		s.log.WithContext(ctx).WithError(err).Warn("invalidating municipality cache failed")
	}
}

func (s *MunicipalityService) Get(ctx context.Context, id primitive.ObjectID) (*models.Municipality, error) {
	m, err := s.municipalities.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Municipality not found")
		}
		return nil, apperrors.NewInternal("Failed to load municipality", err)
	}
	return m, nil
}

// Update applies a partial edit. Municipality admins may only edit their own.
func (s *MunicipalityService) Update(ctx context.Context, id primitive.ObjectID, req UpdateMunicipalityRequest, identity *models.Identity) (*models.Municipality, error) {
	if identity.Role == models.RoleMunicipalityAdmin && !identity.InMunicipality(id) {
		return nil, apperrors.NewAccessDenied("You can only update your own municipality")
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.City != nil {
		set["location.city"] = strings.TrimSpace(*req.City)
	}
	if req.Province != nil {
		set["location.province"] = strings.TrimSpace(*req.Province)
	}
	if req.Coordinates != nil {
		set["location.coordinates"] = req.Coordinates
	}
	if req.BoundaryBox != nil {
		if !req.BoundaryBox.Valid() {
			return nil, apperrors.NewValidation("Boundary box minimum must not exceed maximum")
		}
		set["boundaryBox"] = req.BoundaryBox
	}
	if req.ContactEmail != nil {
		set["contactEmail"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		set["contactPhone"] = *req.ContactPhone
	}
	if req.Settings != nil {
		settings := current.Settings
		applySettings(&settings, req.Settings)
		set["settings"] = settings
	}
	if len(req.ReportCategories) > 0 {
		set["reportCategories"] = req.ReportCategories
	}
	if req.IsActive != nil {
		if identity.Role != models.RoleSystemAdmin {
			return nil, apperrors.NewAccessDenied("Only system admins can change activation")
		}
		set["isActive"] = *req.IsActive
	}
	if len(set) == 0 {
		return current, nil
	}

	updated, err := s.municipalities.Update(ctx, id, set)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Municipality not found")
		}
		return nil, wrapPersistence(err, "Failed to update municipality")
	}
	s.invalidateList(ctx)
	return updated, nil
}

// Delete deactivates the municipality. Its documents are kept.
func (s *MunicipalityService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.municipalities.Update(ctx, id, bson.M{"isActive": false}); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("Municipality not found")
		}
		return apperrors.NewInternal("Failed to delete municipality", err)
	}
	s.invalidateList(ctx)
	return nil
}

// Stats summarises a municipality and its report counts.
func (s *MunicipalityService) Stats(ctx context.Context, id primitive.ObjectID, identity *models.Identity) (*MunicipalityStats, error) {
	if identity.Role != models.RoleSystemAdmin && !identity.InMunicipality(id) {
		return nil, apperrors.NewAccessDenied("You can only view statistics of your own municipality")
	}
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.reports.CountBy(ctx, id, "status")
	if err != nil {
		return nil, apperrors.NewInternal("Failed to count reports", err)
	}
	byCategory, err := s.reports.CountBy(ctx, id, "category")
	if err != nil {
		return nil, apperrors.NewInternal("Failed to count reports", err)
	}
	var total int64
	for _, row := range byStatus {
		total += row.Count
	}

	return &MunicipalityStats{
		ID:                m.ID,
		Name:              m.Name,
		Location:          m.Location,
		IsActive:          m.IsActive,
		Settings:          m.Settings,
		ReportCategories:  m.ReportCategories,
		BoundaryBox:       m.BoundaryBox,
		TotalReports:      total,
		ReportsByStatus:   byStatus,
		ReportsByCategory: byCategory,
	}, nil
}

func (s *MunicipalityService) SearchByLocation(ctx context.Context, city, province string) ([]models.Municipality, error) {
	if city == "" && province == "" {
		return nil, apperrors.NewValidation("City or province is required")
	}
	items, err := s.municipalities.SearchByLocation(ctx, city, province)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to search municipalities", err)
	}
	return items, nil
}
