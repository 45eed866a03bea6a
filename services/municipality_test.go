package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/cache"
	"nagaralert-be/logger"
	"nagaralert-be/mocks"
	"nagaralert-be/models"
	"nagaralert-be/services"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type MunicipalityServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	municipalities *mocks.MockMunicipalityRepositoryInterface
	users          *mocks.MockUserRepositoryInterface
	reports        *mocks.MockReportRepositoryInterface
	cache          *mocks.MockCache
	mailer         *mocks.MockMailer
	service        *services.MunicipalityService
	ctx            context.Context
}

func (suite *MunicipalityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.municipalities = mocks.NewMockMunicipalityRepositoryInterface(suite.ctrl)
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.reports = mocks.NewMockReportRepositoryInterface(suite.ctrl)
	suite.cache = mocks.NewMockCache(suite.ctrl)
	suite.mailer = mocks.NewMockMailer(suite.ctrl)

	log := logger.Discard()
	suite.service = services.NewMunicipalityService(suite.municipalities, suite.users, suite.reports,
		suite.cache, time.Minute, services.NewNotifier(suite.mailer, log), testPasswordCost, log)
	suite.ctx = context.Background()
}

func (suite *MunicipalityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func createMunicipalityRequest() services.CreateMunicipalityRequest {
	return services.CreateMunicipalityRequest{
		Name: "Lalitpur Metropolitan City",
		Location: services.MunicipalityLocationInput{
			City:        "Lalitpur",
			Province:    "Bagmati",
			Coordinates: &models.Coordinates{Lat: 27.6588, Lng: 85.3247},
		},
		AdminUser: services.AdminUserInput{
			Name:     "Hari Admin",
			Email:    "Admin@Lalitpur.gov.np",
			Password: "secret123",
			Phone:    "9801234567",
		},
		ContactEmail: "info@lalitpur.gov.np",
		ContactPhone: "015521234",
	}
}

func (suite *MunicipalityServiceTestSuite) TestCreateProvisionsTenantAndAdmin() {
	req := createMunicipalityRequest()
	adminID := primitive.NewObjectID()
	municipalityID := primitive.NewObjectID()

	suite.users.EXPECT().ExistsByEmail(gomock.Any(), req.AdminUser.Email).Return(false, nil)
	suite.municipalities.EXPECT().ExistsByNameAndCity(gomock.Any(), req.Name, "Lalitpur").Return(false, nil)
	suite.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		suite.Equal(models.RoleMunicipalityAdmin, u.Role)
		suite.Equal(models.UserPending, u.Status)
		suite.Equal("admin@lalitpur.gov.np", u.Email)
		u.ID = adminID
		return nil
	})
	suite.municipalities.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *models.Municipality) error {
		suite.Equal(adminID, m.AdminID)
		suite.Equal(models.AllReportCategories, m.ReportCategories)
		suite.Equal(models.DefaultMunicipalitySettings(), m.Settings)
		suite.InDelta(27.5588, m.BoundaryBox.MinLat, 1e-9)
		suite.InDelta(85.4247, m.BoundaryBox.MaxLng, 1e-9)
		m.ID = municipalityID
		return nil
	})
	suite.users.EXPECT().Update(gomock.Any(), adminID, bson.M{"municipalityId": municipalityID}).
		Return(&models.User{ID: adminID, Name: "Hari Admin", Email: "admin@lalitpur.gov.np", Role: models.RoleMunicipalityAdmin, MunicipalityID: &municipalityID}, nil)
	suite.cache.EXPECT().Delete(gomock.Any(), services.MunicipalityListCacheKey).Return(nil)
	suite.mailer.EXPECT().Send(gomock.Any(), "admin@lalitpur.gov.np", gomock.Any(), gomock.Any()).Return(nil)

	result, err := suite.service.Create(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(municipalityID, result.Municipality.ID)
	suite.Require().NotNil(result.AdminUser.MunicipalityID)
	suite.Equal(municipalityID, *result.AdminUser.MunicipalityID)
}

func (suite *MunicipalityServiceTestSuite) TestCreateRollsBackOnLinkFailure() {
	req := createMunicipalityRequest()
	adminID := primitive.NewObjectID()
	municipalityID := primitive.NewObjectID()

	suite.users.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.municipalities.EXPECT().ExistsByNameAndCity(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	suite.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		u.ID = adminID
		return nil
	})
	suite.municipalities.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *models.Municipality) error {
		m.ID = municipalityID
		return nil
	})
	suite.users.EXPECT().Update(gomock.Any(), adminID, gomock.Any()).Return(nil, errors.New("write conflict"))
	gomock.InOrder(
		suite.municipalities.EXPECT().Delete(gomock.Any(), municipalityID).Return(nil),
		suite.users.EXPECT().Delete(gomock.Any(), adminID).Return(errors.New("still failing")),
	)

	_, err := suite.service.Create(suite.ctx, req)

	appErr := appError(&suite.Suite, err)
	suite.Equal(apperrors.StatusInternal, appErr.Status)
}

func (suite *MunicipalityServiceTestSuite) TestCreateRollsBackAdminWhenMunicipalityFails() {
	req := createMunicipalityRequest()
	adminID := primitive.NewObjectID()

	suite.users.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.municipalities.EXPECT().ExistsByNameAndCity(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	suite.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		u.ID = adminID
		return nil
	})
	suite.municipalities.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(apperrors.NewValidation("name must be unique"))
	suite.users.EXPECT().Delete(gomock.Any(), adminID).Return(nil)

	_, err := suite.service.Create(suite.ctx, req)

	suite.True(apperrors.IsValidation(err))
}

func (suite *MunicipalityServiceTestSuite) TestCreateRejectsInvertedBoundary() {
	req := createMunicipalityRequest()
	req.BoundaryBox = &models.BoundaryBox{MinLat: 28, MaxLat: 27, MinLng: 85, MaxLng: 86}
	suite.users.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.municipalities.EXPECT().ExistsByNameAndCity(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := suite.service.Create(suite.ctx, req)

	suite.True(apperrors.IsValidation(err))
}

func (suite *MunicipalityServiceTestSuite) TestCreateRejectsDuplicateCity() {
	req := createMunicipalityRequest()
	suite.users.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.municipalities.EXPECT().ExistsByNameAndCity(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	_, err := suite.service.Create(suite.ctx, req)

	appErr := appError(&suite.Suite, err)
	suite.Equal("Municipality already exists in this city", appErr.Message)
}

func (suite *MunicipalityServiceTestSuite) TestListAllServesFromCache() {
	suite.cache.EXPECT().Get(gomock.Any(), services.MunicipalityListCacheKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}) error {
			*dest.(*[]models.MunicipalitySummary) = []models.MunicipalitySummary{{Name: "Cached"}}
			return nil
		})

	items, err := suite.service.ListAll(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal("Cached", items[0].Name)
}

func (suite *MunicipalityServiceTestSuite) TestListAllFillsCacheOnMiss() {
	summaries := []models.MunicipalitySummary{{ID: primitive.NewObjectID(), Name: "Pokhara"}}
	suite.cache.EXPECT().Get(gomock.Any(), services.MunicipalityListCacheKey, gomock.Any()).Return(cache.ErrMiss)
	suite.municipalities.EXPECT().ListSummaries(gomock.Any()).Return(summaries, nil)
	suite.cache.EXPECT().Set(gomock.Any(), services.MunicipalityListCacheKey, summaries, time.Minute).Return(errors.New("redis down"))

	items, err := suite.service.ListAll(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(summaries, items)
}

func (suite *MunicipalityServiceTestSuite) TestUpdateScopesMunicipalityAdmins() {
	own := primitive.NewObjectID()
	admin := &models.Identity{Role: models.RoleMunicipalityAdmin, MunicipalityID: &own}

	_, err := suite.service.Update(suite.ctx, primitive.NewObjectID(), services.UpdateMunicipalityRequest{}, admin)
	suite.True(apperrors.IsAccessDenied(err))

	suite.municipalities.EXPECT().FindByID(gomock.Any(), own).Return(&models.Municipality{ID: own}, nil)
	active := false
	_, err = suite.service.Update(suite.ctx, own, services.UpdateMunicipalityRequest{IsActive: &active}, admin)
	suite.True(apperrors.IsAccessDenied(err))
}

func (suite *MunicipalityServiceTestSuite) TestUpdateMergesSettingsAndInvalidatesCache() {
	id := primitive.NewObjectID()
	current := &models.Municipality{ID: id, Settings: models.DefaultMunicipalitySettings()}
	rewards := false
	suite.municipalities.EXPECT().FindByID(gomock.Any(), id).Return(current, nil)
	suite.municipalities.EXPECT().Update(gomock.Any(), id, bson.M{
		"settings": models.MunicipalitySettings{AutoAssignReports: false, CitizenRewards: false, PointValue: 1},
	}).Return(current, nil)
	suite.cache.EXPECT().Delete(gomock.Any(), services.MunicipalityListCacheKey).Return(nil)

	_, err := suite.service.Update(suite.ctx, id, services.UpdateMunicipalityRequest{
		Settings: &services.SettingsInput{CitizenRewards: &rewards},
	}, &models.Identity{Role: models.RoleSystemAdmin})

	suite.NoError(err)
}

func (suite *MunicipalityServiceTestSuite) TestDeleteDeactivates() {
	id := primitive.NewObjectID()
	suite.municipalities.EXPECT().Update(gomock.Any(), id, bson.M{"isActive": false}).Return(&models.Municipality{ID: id}, nil)
	suite.cache.EXPECT().Delete(gomock.Any(), services.MunicipalityListCacheKey).Return(nil)

	suite.NoError(suite.service.Delete(suite.ctx, id))
}

func (suite *MunicipalityServiceTestSuite) TestStatsTotalsStatusCounts() {
	id := primitive.NewObjectID()
	suite.municipalities.EXPECT().FindByID(gomock.Any(), id).Return(&models.Municipality{ID: id, Name: "Bharatpur"}, nil)
	suite.reports.EXPECT().CountBy(gomock.Any(), id, "status").
		Return([]models.CountByKey{{Key: "pending", Count: 4}, {Key: "resolved", Count: 6}}, nil)
	suite.reports.EXPECT().CountBy(gomock.Any(), id, "category").
		Return([]models.CountByKey{{Key: "road", Count: 10}}, nil)

	stats, err := suite.service.Stats(suite.ctx, id, &models.Identity{Role: models.RoleMunicipalityAdmin, MunicipalityID: &id})

	suite.Require().NoError(err)
	suite.Equal(int64(10), stats.TotalReports)
	suite.Len(stats.ReportsByCategory, 1)

	other := primitive.NewObjectID()
	_, err = suite.service.Stats(suite.ctx, id, &models.Identity{Role: models.RoleMunicipalityAdmin, MunicipalityID: &other})
	suite.True(apperrors.IsAccessDenied(err))
}

func (suite *MunicipalityServiceTestSuite) TestSearchByLocationNeedsCriteria() {
	_, err := suite.service.SearchByLocation(suite.ctx, "", "")

	suite.True(apperrors.IsValidation(err))
}

func TestMunicipalityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MunicipalityServiceTestSuite))
}
