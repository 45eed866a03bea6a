package services

import (
	"context"
	"strings"

	"nagaralert-be/apperrors"
	"nagaralert-be/logger"
	"nagaralert-be/models"
	"nagaralert-be/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const emergencyPageLimit = 20

type ServiceLocationInput struct {
	Address string   `json:"address"`
	City    string   `json:"city"`
	Lat     *float64 `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng     *float64 `json:"lng" binding:"omitempty,min=-180,max=180"`
}

type CreateEmergencyServiceRequest struct {
	Name            string                `json:"name" binding:"required,emergencyname"`
	Phone           string                `json:"phone" binding:"required,len=10,digits"`
	AltPhone        string                `json:"altPhone" binding:"omitempty,len=10,digits"`
	Whatsapp        string                `json:"whatsapp" binding:"omitempty,len=10,digits"`
	Email           string                `json:"email" binding:"omitempty,email"`
	Logo            string                `json:"logo" binding:"omitempty,url"`
	Description     string                `json:"description" binding:"omitempty,max=500"`
	Location        *ServiceLocationInput `json:"location"`
	MunicipalityID  string                `json:"municipalityId" binding:"omitempty,objectid"`
	Category        string                `json:"category" binding:"required,oneof=police medical fire helpline traffic disaster"`
	IsActive        *bool                 `json:"isActive"`
	Is24x7          *bool                 `json:"is24x7"`
	AvgResponseTime *float64              `json:"avgResponseTime" binding:"omitempty,min=0"`
}

type UpdateEmergencyServiceRequest struct {
	Name            *string               `json:"name" binding:"omitempty,emergencyname"`
	Phone           *string               `json:"phone" binding:"omitempty,len=10,digits"`
	AltPhone        *string               `json:"altPhone" binding:"omitempty,len=10,digits"`
	Whatsapp        *string               `json:"whatsapp" binding:"omitempty,len=10,digits"`
	Email           *string               `json:"email" binding:"omitempty,email"`
	Logo            *string               `json:"logo" binding:"omitempty,url"`
	Description     *string               `json:"description" binding:"omitempty,max=500"`
	Location        *ServiceLocationInput `json:"location"`
	MunicipalityID  *string               `json:"municipalityId" binding:"omitempty,objectid"`
	Category        *string               `json:"category" binding:"omitempty,oneof=police medical fire helpline traffic disaster"`
	IsActive        *bool                 `json:"isActive"`
	Is24x7          *bool                 `json:"is24x7"`
	AvgResponseTime *float64              `json:"avgResponseTime" binding:"omitempty,min=0"`
}

type EmergencyServiceListQuery struct {
	models.PageQuery
	MunicipalityID string `form:"municipalityId" binding:"omitempty,objectid"`
	Category       string `form:"category" binding:"omitempty,oneof=police medical fire helpline traffic disaster"`
	IsActive       *bool  `form:"isActive"`
	Search         string `form:"search"`
}

// EmergencyService manages the emergency contact directory
type EmergencyService struct {
	services       repositories.EmergencyServiceRepositoryInterface
	municipalities repositories.MunicipalityRepositoryInterface
	log            *logger.Logger
}

func NewEmergencyService(
	services repositories.EmergencyServiceRepositoryInterface,
	municipalities repositories.MunicipalityRepositoryInterface,
	log *logger.Logger,
) *EmergencyService {
	return &EmergencyService{services: services, municipalities: municipalities, log: log}
}

func (s *EmergencyService) resolveMunicipality(ctx context.Context, hex string) (*primitive.ObjectID, error) {
	if hex == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, apperrors.NewValidation("Invalid municipality ID")
	}
	if _, err := s.municipalities.FindByID(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation("Municipality not found")
		}
		return nil, apperrors.NewInternal("Failed to load municipality", err)
	}
	return &id, nil
}

func locationFrom(in *ServiceLocationInput) models.ServiceLocation {
	if in == nil {
		return models.ServiceLocation{}
	}
	return models.ServiceLocation{Address: in.Address, City: in.City, Lat: in.Lat, Lng: in.Lng}
}

func (s *EmergencyService) Create(ctx context.Context, req CreateEmergencyServiceRequest) (*models.EmergencyService, error) {
	municipalityID, err := s.resolveMunicipality(ctx, req.MunicipalityID)
	if err != nil {
		return nil, err
	}
	service := &models.EmergencyService{
		Name:            req.Name,
		Phone:           req.Phone,
		AltPhone:        req.AltPhone,
		Whatsapp:        req.Whatsapp,
		Email:           req.Email,
		Logo:            req.Logo,
		Description:     strings.TrimSpace(req.Description),
		Location:        locationFrom(req.Location),
		MunicipalityID:  municipalityID,
		Category:        req.Category,
		IsActive:        req.IsActive == nil || *req.IsActive,
		Is24x7:          req.Is24x7 == nil || *req.Is24x7,
		AvgResponseTime: req.AvgResponseTime,
	}
	if err := s.services.Create(ctx, service); err != nil {
		return nil, wrapPersistence(err, "Failed to create emergency service")
	}
	return service, nil
}

func (s *EmergencyService) Get(ctx context.Context, id primitive.ObjectID) (*models.EmergencyService, error) {
	service, err := s.services.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Emergency service not found")
		}
		return nil, apperrors.NewInternal("Failed to load emergency service", err)
	}
	return service, nil
}

func (s *EmergencyService) Update(ctx context.Context, id primitive.ObjectID, req UpdateEmergencyServiceRequest) (*models.EmergencyService, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.AltPhone != nil {
		set["altPhone"] = *req.AltPhone
	}
	if req.Whatsapp != nil {
		set["whatsapp"] = *req.Whatsapp
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Logo != nil {
		set["logo"] = *req.Logo
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Location != nil {
		set["location"] = locationFrom(req.Location)
	}
	if req.MunicipalityID != nil {
		municipalityID, err := s.resolveMunicipality(ctx, *req.MunicipalityID)
		if err != nil {
			return nil, err
		}
		set["municipalityId"] = municipalityID
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	if req.Is24x7 != nil {
		set["is24x7"] = *req.Is24x7
	}
	if req.AvgResponseTime != nil {
		set["avgResponseTime"] = *req.AvgResponseTime
	}
	if len(set) == 0 {
		return s.Get(ctx, id)
	}

	updated, err := s.services.Update(ctx, id, set)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Emergency service not found")
		}
		return nil, wrapPersistence(err, "Failed to update emergency service")
	}
	return updated, nil
}

func (s *EmergencyService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.services.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NewNotFound("Emergency service not found")
		}
		return apperrors.NewInternal("Failed to delete emergency service", err)
	}
	return nil
}

// ListAll is the public directory listing. Only active entries are shown
// unless the caller filters on isActive explicitly.
func (s *EmergencyService) ListAll(ctx context.Context, q EmergencyServiceListQuery) ([]models.EmergencyService, *models.Pagination, error) {
	if q.IsActive == nil {
		active := true
		q.IsActive = &active
	}
	return s.list(ctx, q)
}

// AdminList shows every entry, active or not.
func (s *EmergencyService) AdminList(ctx context.Context, q EmergencyServiceListQuery) ([]models.EmergencyService, *models.Pagination, error) {
	return s.list(ctx, q)
}

// MunicipalityAdminList restricts the listing to the admin's municipality.
func (s *EmergencyService) MunicipalityAdminList(ctx context.Context, q EmergencyServiceListQuery, municipalityID primitive.ObjectID) ([]models.EmergencyService, *models.Pagination, error) {
	q.MunicipalityID = municipalityID.Hex()
	return s.list(ctx, q)
}

func (s *EmergencyService) list(ctx context.Context, q EmergencyServiceListQuery) ([]models.EmergencyService, *models.Pagination, error) {
	filter := models.EmergencyServiceFilter{
		Category: q.Category,
		IsActive: q.IsActive,
		Search:   q.Search,
	}
	if q.MunicipalityID != "" {
		id, err := primitive.ObjectIDFromHex(q.MunicipalityID)
		if err != nil {
			return nil, nil, apperrors.NewValidation("Invalid municipality ID")
		}
		filter.MunicipalityID = &id
	}
	page := q.PageQuery.Normalize(emergencyPageLimit)
	items, total, err := s.services.List(ctx, filter, page)
	if err != nil {
		return nil, nil, apperrors.NewInternal("Failed to list emergency services", err)
	}
	return items, models.NewPagination(page, total), nil
}

func (s *EmergencyService) ByCategory(ctx context.Context, category string, q models.PageQuery) ([]models.EmergencyService, *models.Pagination, error) {
	valid := false
	for _, c := range models.EmergencyCategories {
		if c == category {
			valid = true
			break
		}
	}
	if !valid {
		return nil, nil, apperrors.NewValidation("Invalid emergency service category")
	}
	return s.ListAll(ctx, EmergencyServiceListQuery{PageQuery: q, Category: category})
}

// ByMunicipality lists the municipality's own active services plus nationwide ones.
func (s *EmergencyService) ByMunicipality(ctx context.Context, municipalityID primitive.ObjectID) ([]models.EmergencyService, error) {
	items, err := s.services.ListForMunicipality(ctx, municipalityID)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to list emergency services", err)
	}
	return items, nil
}
