package services_test

import (
	"context"
	"testing"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/logger"
	"nagaralert-be/mocks"
	"nagaralert-be/models"
	"nagaralert-be/services"
	"nagaralert-be/storage"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type SponsorServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	sponsors       *mocks.MockSponsorRepositoryInterface
	municipalities *mocks.MockMunicipalityRepositoryInterface
	media          *mocks.MockMediaStorage
	service        *services.SponsorService
	ctx            context.Context
}

func (suite *SponsorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.sponsors = mocks.NewMockSponsorRepositoryInterface(suite.ctrl)
	suite.municipalities = mocks.NewMockMunicipalityRepositoryInterface(suite.ctrl)
	suite.media = mocks.NewMockMediaStorage(suite.ctrl)
	suite.service = services.NewSponsorService(suite.sponsors, suite.municipalities, suite.media, logger.Discard())
	suite.ctx = context.Background()
}

func (suite *SponsorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func sponsorRequest() services.CreateSponsorRequest {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return services.CreateSponsorRequest{
		Name:         "Himalayan Traders",
		ContactEmail: "hello@himalayan.com.np",
		ContactPhone: "9801112233",
		SponsorType:  "local_business",
		Title:        "Clean streets week",
		StartDate:    start,
		EndDate:      start.AddDate(0, 1, 0),
	}
}

func (suite *SponsorServiceTestSuite) TestCreateDefaultsToGlobalPending() {
	creator := primitive.NewObjectID()
	suite.sponsors.EXPECT().ExistsByContactEmail(gomock.Any(), "hello@himalayan.com.np").Return(false, nil)
	suite.media.EXPECT().Upload(gomock.Any(), "/tmp/banner.png", storage.FolderSponsors, models.MediaImage).
		Return(&storage.UploadResult{URL: "https://cdn/banner.png"}, nil)
	suite.sponsors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	sponsor, err := suite.service.Create(suite.ctx, sponsorRequest(), &models.MediaFile{Path: "/tmp/banner.png"}, creator)

	suite.Require().NoError(err)
	suite.Equal(models.ScopeGlobal, sponsor.Scope)
	suite.Equal(models.SponsorPending, sponsor.Status)
	suite.Nil(sponsor.MunicipalityID)
	suite.Equal("https://cdn/banner.png", sponsor.BannerImage)
	suite.Equal(creator, sponsor.CreatedBy)
}

func (suite *SponsorServiceTestSuite) TestCreateMunicipalityScopeNeedsKnownMunicipality() {
	req := sponsorRequest()
	req.Scope = "municipality"
	req.MunicipalityID = primitive.NewObjectID().Hex()
	suite.sponsors.EXPECT().ExistsByContactEmail(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.municipalities.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrDocumentNotFound)

	_, err := suite.service.Create(suite.ctx, req, nil, primitive.NewObjectID())

	appErr := appError(&suite.Suite, err)
	suite.Equal("Municipality not found", appErr.Message)
}

func (suite *SponsorServiceTestSuite) TestCreateRejectsTakenEmail() {
	suite.sponsors.EXPECT().ExistsByContactEmail(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err := suite.service.Create(suite.ctx, sponsorRequest(), nil, primitive.NewObjectID())

	suite.True(apperrors.IsValidation(err))
}

func (suite *SponsorServiceTestSuite) TestUpdateValidatesWindow() {
	id := primitive.NewObjectID()
	req := sponsorRequest()
	suite.sponsors.EXPECT().FindByID(gomock.Any(), id).
		Return(&models.Sponsor{ID: id, StartDate: req.StartDate, EndDate: req.EndDate}, nil)

	end := req.StartDate.AddDate(0, 0, -1)
	_, err := suite.service.Update(suite.ctx, id, services.UpdateSponsorRequest{EndDate: &end}, nil)

	appErr := appError(&suite.Suite, err)
	suite.Equal("End date must be after start date", appErr.Message)
}

func (suite *SponsorServiceTestSuite) TestUpdateSwapsBanner() {
	id := primitive.NewObjectID()
	req := sponsorRequest()
	current := &models.Sponsor{
		ID: id, StartDate: req.StartDate, EndDate: req.EndDate,
		BannerImage: "https://res.cloudinary.com/demo/image/upload/v9/nagaralert/sponsors/old.png",
	}
	suite.sponsors.EXPECT().FindByID(gomock.Any(), id).Return(current, nil)
	suite.media.EXPECT().Upload(gomock.Any(), "/tmp/new.png", storage.FolderSponsors, models.MediaImage).
		Return(&storage.UploadResult{URL: "https://cdn/new.png"}, nil)
	suite.media.EXPECT().Delete(gomock.Any(), "nagaralert/sponsors/old", models.MediaImage).Return(nil)
	suite.sponsors.EXPECT().Update(gomock.Any(), id, bson.M{"bannerImage": "https://cdn/new.png", "status": models.SponsorActive}).
		Return(current, nil)

	status := "active"
	_, err := suite.service.Update(suite.ctx, id, services.UpdateSponsorRequest{Status: &status}, &models.MediaFile{Path: "/tmp/new.png"})

	suite.NoError(err)
}

func (suite *SponsorServiceTestSuite) TestVisibleQueries() {
	municipalityID := primitive.NewObjectID()
	suite.sponsors.EXPECT().FindVisible(gomock.Any(), &municipalityID, gomock.Any()).Return([]models.Sponsor{{}, {}}, nil)
	suite.sponsors.EXPECT().FindVisible(gomock.Any(), (*primitive.ObjectID)(nil), gomock.Any()).Return([]models.Sponsor{{}}, nil)

	local, err := suite.service.ActiveForMunicipality(suite.ctx, municipalityID)
	suite.Require().NoError(err)
	suite.Len(local, 2)

	global, err := suite.service.GlobalActive(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(global, 1)
}

func (suite *SponsorServiceTestSuite) TestDeleteUnknownSponsor() {
	id := primitive.NewObjectID()
	suite.sponsors.EXPECT().FindByID(gomock.Any(), id).Return(nil, apperrors.ErrDocumentNotFound)

	suite.True(apperrors.IsNotFound(suite.service.Delete(suite.ctx, id)))
}

func TestSponsorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SponsorServiceTestSuite))
}
