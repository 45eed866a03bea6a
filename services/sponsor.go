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

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateSponsorRequest struct {
	Name           string    `form:"name" json:"name" binding:"required,min=2,max=100"`
	ContactEmail   string    `form:"contactEmail" json:"contactEmail" binding:"required,email"`
	ContactPhone   string    `form:"contactPhone" json:"contactPhone" binding:"required,npphone"`
	SponsorType    string    `form:"sponsorType" json:"sponsorType" binding:"required,sponsortype"`
	Title          string    `form:"title" json:"title" binding:"required,min=3,max=150"`
	Description    string    `form:"description" json:"description" binding:"omitempty,max=1000"`
	Website        string    `form:"website" json:"website" binding:"omitempty,url"`
	Scope          string    `form:"scope" json:"scope" binding:"omitempty,oneof=global municipality"`
	MunicipalityID string    `form:"municipalityId" json:"municipalityId" binding:"required_if=Scope municipality,omitempty,objectid"`
	StartDate      time.Time `form:"startDate" json:"startDate" time_format:"2006-01-02" binding:"required"`
	EndDate        time.Time `form:"endDate" json:"endDate" time_format:"2006-01-02" binding:"required,gtfield=StartDate"`
	Status         string    `form:"status" json:"status" binding:"omitempty,oneof=pending active inactive"`
}

type UpdateSponsorRequest struct {
	Name         *string    `form:"name" json:"name" binding:"omitempty,min=2,max=100"`
	ContactPhone *string    `form:"contactPhone" json:"contactPhone" binding:"omitempty,npphone"`
	SponsorType  *string    `form:"sponsorType" json:"sponsorType" binding:"omitempty,sponsortype"`
	Title        *string    `form:"title" json:"title" binding:"omitempty,min=3,max=150"`
	Description  *string    `form:"description" json:"description" binding:"omitempty,max=1000"`
	Website      *string    `form:"website" json:"website" binding:"omitempty,url"`
	StartDate    *time.Time `form:"startDate" json:"startDate" time_format:"2006-01-02"`
	EndDate      *time.Time `form:"endDate" json:"endDate" time_format:"2006-01-02"`
	Status       *string    `form:"status" json:"status" binding:"omitempty,oneof=pending active inactive"`
}

type SponsorListQuery struct {
	models.PageQuery
	SponsorType string `form:"sponsorType" binding:"omitempty,sponsortype"`
	Scope       string `form:"scope" binding:"omitempty,oneof=global municipality"`
	Status      string `form:"status" binding:"omitempty,oneof=pending active inactive"`
}

// SponsorService manages sponsor campaigns
type SponsorService struct {
	sponsors       repositories.SponsorRepositoryInterface
	municipalities repositories.MunicipalityRepositoryInterface
	media          MediaStorage
	log            *logger.Logger
	now            func() time.Time
}

func NewSponsorService(
	sponsors repositories.SponsorRepositoryInterface,
	municipalities repositories.MunicipalityRepositoryInterface,
	media MediaStorage,
	log *logger.Logger,
) *SponsorService {
	return &SponsorService{
		sponsors:       sponsors,
		municipalities: municipalities,
		media:          media,
		log:            log,
		now:            time.Now,
	}
}

func (s *SponsorService) Create(ctx context.Context, req CreateSponsorRequest, banner *models.MediaFile, createdBy primitive.ObjectID) (*models.Sponsor, error) {
	taken, err := s.sponsors.ExistsByContactEmail(ctx, req.ContactEmail)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to check sponsor email", err)
	}
	if taken {
		return nil, apperrors.NewValidation("Sponsor with this email already exists")
	}

	scope := models.ScopeGlobal
	if req.Scope != "" {
		scope = models.SponsorScope(req.Scope)
	}
	var municipalityID *primitive.ObjectID
	if scope == models.ScopeMunicipality {
		id, err := primitive.ObjectIDFromHex(req.MunicipalityID)
		if err != nil {
			return nil, apperrors.NewValidation("Municipality ID is required for municipality sponsors")
		}
		if _, err := s.municipalities.FindByID(ctx, id); err != nil {
			if apperrors.IsNotFound(err) {
				return nil, apperrors.NewValidation("Municipality not found")
			}
			return nil, apperrors.NewInternal("Failed to load municipality", err)
		}
		municipalityID = &id
	}

	status := models.SponsorPending
	if req.Status != "" {
		status = models.SponsorStatus(req.Status)
	}
	sponsor := &models.Sponsor{
		Name:           strings.TrimSpace(req.Name),
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		SponsorType:    req.SponsorType,
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Website:        req.Website,
		Scope:          scope,
		MunicipalityID: municipalityID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Status:         status,
		CreatedBy:      createdBy,
	}
	if banner != nil {
		uploaded, err := s.media.Upload(ctx, banner.Path, storage.FolderSponsors, models.MediaImage)
		if err != nil {
			return nil, apperrors.NewInternal("Failed to upload banner", err)
		}
		sponsor.BannerImage = uploaded.URL
	}

	if err := s.sponsors.Create(ctx, sponsor); err != nil {
		return nil, wrapPersistence(err, "Failed to create sponsor")
	}
	return sponsor, nil
}

func (s *SponsorService) List(ctx context.Context, q SponsorListQuery) ([]models.Sponsor, *models.Pagination, error) {
	page := q.PageQuery.Normalize(models.DefaultPageLimit)
	items, total, err := s.sponsors.List(ctx, models.SponsorFilter{
		SponsorType: q.SponsorType,
		Scope:       models.SponsorScope(q.Scope),
		Status:      models.SponsorStatus(q.Status),
	}, page)
	if err != nil {
		return nil, nil, apperrors.NewInternal("Failed to list sponsors", err)
	}
	return items, models.NewPagination(page, total), nil
}

func (s *SponsorService) Get(ctx context.Context, id primitive.ObjectID) (*models.Sponsor, error) {
	sponsor, err := s.sponsors.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("Sponsor not found")
		}
		return nil, apperrors.NewInternal("Failed to load sponsor", err)
	}
	return sponsor, nil
}

func (s *SponsorService) Update(ctx context.Context, id primitive.ObjectID, req UpdateSponsorRequest, banner *models.MediaFile) (*models.Sponsor, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.ContactPhone != nil {
		set["contactPhone"] = *req.ContactPhone
	}
	if req.SponsorType != nil {
		set["sponsorType"] = *req.SponsorType
	}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Website != nil {
		set["website"] = *req.Website
	}
	if req.Status != nil {
		set["status"] = models.SponsorStatus(*req.Status)
	}
	start, end := current.StartDate, current.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
		set["startDate"] = start
	}
	if req.EndDate != nil {
		end = *req.EndDate
		set["endDate"] = end
	}
	if !end.After(start) {
		return nil, apperrors.NewValidation("End date must be after start date")
	}
	if banner != nil {
		uploaded, err := s.media.Upload(ctx, banner.Path, storage.FolderSponsors, models.MediaImage)
		if err != nil {
			return nil, apperrors.NewInternal("Failed to upload banner", err)
		}
		set["bannerImage"] = uploaded.URL
		removeMedia(ctx, s.media, s.log, current.BannerImage, models.MediaImage)
	}
	if len(set) == 0 {
		return current, nil
	}

	updated, err := s.sponsors.Update(ctx, id, set)
	if err != nil {
		return nil, wrapPersistence(err, "Failed to update sponsor")
	}
	return updated, nil
}

func (s *SponsorService) Delete(ctx context.Context, id primitive.ObjectID) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.sponsors.Delete(ctx, id); err != nil {
		return apperrors.NewInternal("Failed to delete sponsor", err)
	}
	removeMedia(ctx, s.media, s.log, current.BannerImage, models.MediaImage)
	return nil
}

// ActiveForMunicipality returns global campaigns plus the municipality's
// own, active and within their window.
func (s *SponsorService) ActiveForMunicipality(ctx context.Context, municipalityID primitive.ObjectID) ([]models.Sponsor, error) {
	items, err := s.sponsors.FindVisible(ctx, &municipalityID, s.now())
	if err != nil {
		return nil, apperrors.NewInternal("Failed to list sponsors", err)
	}
	return items, nil
}

func (s *SponsorService) GlobalActive(ctx context.Context) ([]models.Sponsor, error) {
	items, err := s.sponsors.FindVisible(ctx, nil, s.now())
	if err != nil {
		return nil, apperrors.NewInternal("Failed to list sponsors", err)
	}
	return items, nil
}
