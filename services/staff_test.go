package services_test

import (
	"context"
	"errors"
	"testing"

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

type StaffServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	staffs         *mocks.MockStaffRepositoryInterface
	users          *mocks.MockUserRepositoryInterface
	municipalities *mocks.MockMunicipalityRepositoryInterface
	reports        *mocks.MockReportRepositoryInterface
	media          *mocks.MockMediaStorage
	mailer         *mocks.MockMailer
	service        *services.StaffService

	ctx            context.Context
	municipalityID primitive.ObjectID
	admin          *models.Identity
}

func (suite *StaffServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.staffs = mocks.NewMockStaffRepositoryInterface(suite.ctrl)
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.municipalities = mocks.NewMockMunicipalityRepositoryInterface(suite.ctrl)
	suite.reports = mocks.NewMockReportRepositoryInterface(suite.ctrl)
	suite.media = mocks.NewMockMediaStorage(suite.ctrl)
	suite.mailer = mocks.NewMockMailer(suite.ctrl)

	log := logger.Discard()
	suite.service = services.NewStaffService(suite.staffs, suite.users, suite.municipalities, suite.reports,
		suite.media, services.NewNotifier(suite.mailer, log), testPasswordCost, log)

	suite.ctx = context.Background()
	suite.municipalityID = primitive.NewObjectID()
	suite.admin = &models.Identity{ID: primitive.NewObjectID(), Role: models.RoleMunicipalityAdmin, MunicipalityID: &suite.municipalityID}
}

func (suite *StaffServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *StaffServiceTestSuite) createRequest() services.CreateStaffRequest {
	return services.CreateStaffRequest{
		Name:        "Ram Bahadur",
		Email:       "Ram@Ktm.gov.np",
		Phone:       "9812345678",
		EmployeeID:  "emp-001",
		Department:  "road_maintenance",
		Designation: "field_officer",
		Skills:      []string{"pothole_repair"},
	}
}

func (suite *StaffServiceTestSuite) TestCreateOnboardsFieldStaff() {
	userID := primitive.NewObjectID()
	staffID := primitive.NewObjectID()

	suite.municipalities.EXPECT().FindByID(gomock.Any(), suite.municipalityID).Return(&models.Municipality{ID: suite.municipalityID}, nil)
	suite.users.EXPECT().ExistsByEmail(gomock.Any(), "Ram@Ktm.gov.np").Return(false, nil)
	suite.staffs.EXPECT().ExistsByEmployeeID(gomock.Any(), "EMP-001").Return(false, nil)
	suite.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		suite.Equal(models.RoleFieldStaff, u.Role)
		suite.Equal(models.UserActive, u.Status)
		suite.Equal(&suite.municipalityID, u.MunicipalityID)
		u.ID = userID
		return nil
	})
	suite.staffs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.Staff) error {
		suite.Equal(userID, s.UserID)
		suite.Equal("EMP-001", s.EmployeeID)
		suite.True(s.Availability)
		suite.Equal(models.WorkAvailable, s.WorkStatus)
		suite.Equal("none", s.VehicleType)
		suite.Equal([]string{}, s.AssignedWards)
		s.ID = staffID
		return nil
	})
	suite.users.EXPECT().Update(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, set bson.M) (*models.User, error) {
			linked := &models.User{ID: userID, Name: "Ram Bahadur", Email: "ram@ktm.gov.np", Role: models.RoleFieldStaff, RawProfile: set["profile"].(bson.Raw)}
			profile, err := linked.Profile()
			suite.Require().NoError(err)
			suite.Equal(staffID, profile.(models.FieldStaffProfile).StaffID)
			return linked, nil
		})
	suite.mailer.EXPECT().Send(gomock.Any(), "ram@ktm.gov.np", "Your NagarAlert staff account", gomock.Any()).Return(nil)

	result, err := suite.service.Create(suite.ctx, suite.createRequest(), nil, suite.admin)

	suite.Require().NoError(err)
	suite.Equal(staffID, result.Staff.ID)
	suite.Equal(userID, result.User.ID)
}

func (suite *StaffServiceTestSuite) TestCreateRollsBackUserWhenStaffFails() {
	userID := primitive.NewObjectID()
	suite.municipalities.EXPECT().FindByID(gomock.Any(), suite.municipalityID).Return(&models.Municipality{ID: suite.municipalityID}, nil)
	suite.users.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.staffs.EXPECT().ExistsByEmployeeID(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		u.ID = userID
		return nil
	})
	suite.staffs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
	suite.users.EXPECT().Delete(gomock.Any(), userID).Return(nil)

	_, err := suite.service.Create(suite.ctx, suite.createRequest(), nil, suite.admin)

	appErr := appError(&suite.Suite, err)
	suite.Equal("Failed to create staff profile", appErr.Message)
}

func (suite *StaffServiceTestSuite) TestCreateRemovesUploadedImageOnFailure() {
	tests := []struct {
		name    string
		persist func(userID primitive.ObjectID) []any
	}{
		{
			name: "user create fails",
			persist: func(primitive.ObjectID) []any {
				return []any{
					suite.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("write timeout")),
				}
			},
		},
		{
			name: "staff create fails",
			persist: func(userID primitive.ObjectID) []any {
				return []any{
					suite.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
						u.ID = userID
						return nil
					}),
					suite.staffs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset")),
					suite.users.EXPECT().Delete(gomock.Any(), userID).Return(nil),
				}
			},
		},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			image := &models.MediaFile{Filename: "ram.jpg", Path: "/tmp/ram.jpg"}
			suite.municipalities.EXPECT().FindByID(gomock.Any(), suite.municipalityID).Return(&models.Municipality{ID: suite.municipalityID}, nil)
			suite.users.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
			suite.staffs.EXPECT().ExistsByEmployeeID(gomock.Any(), gomock.Any()).Return(false, nil)
			suite.media.EXPECT().Upload(gomock.Any(), "/tmp/ram.jpg", storage.FolderStaff, models.MediaImage).
				Return(&storage.UploadResult{URL: "https://cdn/staff/ram.jpg", PublicID: "nagaralert/staff/ram"}, nil)

			calls := tt.persist(primitive.NewObjectID())
			calls = append(calls, suite.media.EXPECT().Delete(gomock.Any(), "nagaralert/staff/ram", models.MediaImage).Return(nil))
			gomock.InOrder(calls...)

			_, err := suite.service.Create(suite.ctx, suite.createRequest(), image, suite.admin)

			suite.Error(err)
		})
	}
}

func (suite *StaffServiceTestSuite) TestCreateScopesMunicipality() {
	req := suite.createRequest()
	req.MunicipalityID = primitive.NewObjectID().Hex()

	_, err := suite.service.Create(suite.ctx, req, nil, suite.admin)
	suite.True(apperrors.IsAccessDenied(err))

	_, err = suite.service.Create(suite.ctx, suite.createRequest(), nil, &models.Identity{Role: models.RoleSystemAdmin})
	suite.True(apperrors.IsValidation(err))
}

func (suite *StaffServiceTestSuite) TestUpdateRejectsSupervisorCycle() {
	// a <- b <- c: making c supervise a closes the loop.
	a := &models.Staff{ID: primitive.NewObjectID(), MunicipalityID: suite.municipalityID}
	b := &models.Staff{ID: primitive.NewObjectID(), MunicipalityID: suite.municipalityID, SupervisorID: &a.ID}
	c := &models.Staff{ID: primitive.NewObjectID(), MunicipalityID: suite.municipalityID, SupervisorID: &b.ID}

	suite.staffs.EXPECT().FindByID(gomock.Any(), a.ID).Return(a, nil)
	suite.staffs.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil)
	suite.staffs.EXPECT().FindByID(gomock.Any(), b.ID).Return(b, nil)

	supervisor := c.ID.Hex()
	_, err := suite.service.Update(suite.ctx, a.ID, services.UpdateStaffRequest{SupervisorID: &supervisor}, nil, suite.admin)

	appErr := appError(&suite.Suite, err)
	suite.Equal("Supervisor assignment would create a cycle", appErr.Message)
}

func (suite *StaffServiceTestSuite) TestUpdateRejectsSelfSupervision() {
	a := &models.Staff{ID: primitive.NewObjectID(), MunicipalityID: suite.municipalityID}
	suite.staffs.EXPECT().FindByID(gomock.Any(), a.ID).Return(a, nil)

	supervisor := a.ID.Hex()
	_, err := suite.service.Update(suite.ctx, a.ID, services.UpdateStaffRequest{SupervisorID: &supervisor}, nil, suite.admin)

	appErr := appError(&suite.Suite, err)
	suite.Equal("Staff member cannot supervise themselves", appErr.Message)
}

func (suite *StaffServiceTestSuite) TestUpdateSyncsStaffProfile() {
	staff := &models.Staff{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), EmployeeID: "EMP-9", MunicipalityID: suite.municipalityID}
	updated := *staff
	updated.Department = "drainage"
	user := &models.User{ID: staff.UserID, Role: models.RoleFieldStaff, Name: "Ram"}
	department := "drainage"

	suite.staffs.EXPECT().FindByID(gomock.Any(), staff.ID).Return(staff, nil)
	suite.staffs.EXPECT().Update(gomock.Any(), staff.ID, bson.M{"department": "drainage"}).Return(&updated, nil)
	suite.users.EXPECT().FindByID(gomock.Any(), staff.UserID).Return(user, nil).Times(2)
	suite.users.EXPECT().Update(gomock.Any(), staff.UserID, gomock.Any()).Return(user, nil)
	suite.reports.EXPECT().Count(gomock.Any(), gomock.Any(), models.StatusAssigned, models.StatusInProgress).Return(int64(2), nil)
	suite.reports.EXPECT().List(gomock.Any(), gomock.Any(), models.PageQuery{Page: 1, Limit: 5}).Return(nil, int64(0), nil)

	detail, err := suite.service.Update(suite.ctx, staff.ID, services.UpdateStaffRequest{Department: &department}, nil, suite.admin)

	suite.Require().NoError(err)
	suite.Equal("drainage", detail.Staff.Department)
	suite.Equal(int64(2), detail.ActiveAssignments)
}

func (suite *StaffServiceTestSuite) TestDeleteBlockedByActiveAssignments() {
	staff := &models.Staff{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), MunicipalityID: suite.municipalityID}
	suite.staffs.EXPECT().FindByID(gomock.Any(), staff.ID).Return(staff, nil)
	suite.reports.EXPECT().Count(gomock.Any(), models.ReportFilter{AssignedStaffID: &staff.UserID}, models.StatusAssigned, models.StatusInProgress).
		Return(int64(1), nil)

	err := suite.service.Delete(suite.ctx, staff.ID, suite.admin)

	appErr := appError(&suite.Suite, err)
	suite.Equal("Cannot delete staff member with active assignments", appErr.Message)
}

func (suite *StaffServiceTestSuite) TestDeleteRejectsOwnAccount() {
	staff := &models.Staff{ID: primitive.NewObjectID(), UserID: suite.admin.ID, MunicipalityID: suite.municipalityID}
	suite.staffs.EXPECT().FindByID(gomock.Any(), staff.ID).Return(staff, nil)

	err := suite.service.Delete(suite.ctx, staff.ID, suite.admin)

	suite.True(apperrors.IsValidation(err))
}

func (suite *StaffServiceTestSuite) TestDeleteRemovesUserAndStaff() {
	staff := &models.Staff{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), MunicipalityID: suite.municipalityID}
	suite.staffs.EXPECT().FindByID(gomock.Any(), staff.ID).Return(staff, nil)
	suite.reports.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	gomock.InOrder(
		suite.users.EXPECT().Delete(gomock.Any(), staff.UserID).Return(apperrors.ErrDocumentNotFound),
		suite.staffs.EXPECT().Delete(gomock.Any(), staff.ID).Return(nil),
	)

	suite.NoError(suite.service.Delete(suite.ctx, staff.ID, suite.admin))
}

func (suite *StaffServiceTestSuite) TestGetDeniesOtherMunicipality() {
	staff := &models.Staff{ID: primitive.NewObjectID(), MunicipalityID: primitive.NewObjectID()}
	suite.staffs.EXPECT().FindByID(gomock.Any(), staff.ID).Return(staff, nil)

	_, err := suite.service.Get(suite.ctx, staff.ID, suite.admin)

	suite.True(apperrors.IsAccessDenied(err))
}

func (suite *StaffServiceTestSuite) TestUpdateAvailabilitySetsWorkStatus() {
	userID := primitive.NewObjectID()
	staff := &models.Staff{ID: primitive.NewObjectID(), UserID: userID}
	suite.staffs.EXPECT().FindByUserID(gomock.Any(), userID).Return(staff, nil)
	suite.staffs.EXPECT().Update(gomock.Any(), staff.ID, bson.M{"availability": false, "workStatus": models.WorkOffDuty}).Return(staff, nil)

	_, err := suite.service.UpdateAvailability(suite.ctx, userID, false)

	suite.NoError(err)
}

func (suite *StaffServiceTestSuite) TestUpdateLocationStoresGeoJSON() {
	userID := primitive.NewObjectID()
	staff := &models.Staff{ID: primitive.NewObjectID(), UserID: userID}
	suite.staffs.EXPECT().FindByUserID(gomock.Any(), userID).Return(staff, nil)
	suite.staffs.EXPECT().Update(gomock.Any(), staff.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, set bson.M) (*models.Staff, error) {
			location := set["currentLocation"].(models.StaffLocation)
			suite.Equal("Point", location.Type)
			suite.Equal([]float64{85.32, 27.71}, location.Coordinates)
			suite.NotNil(location.LastUpdated)
			return staff, nil
		})

	_, err := suite.service.UpdateLocation(suite.ctx, userID, services.LocationRequest{Latitude: ptr(27.71), Longitude: ptr(85.32)})

	suite.NoError(err)
}

func (suite *StaffServiceTestSuite) TestMyProfileWithoutStaffRecord() {
	userID := primitive.NewObjectID()
	suite.staffs.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, apperrors.ErrDocumentNotFound)

	_, err := suite.service.MyProfile(suite.ctx, userID)

	suite.True(apperrors.IsNotFound(err))
}

func (suite *StaffServiceTestSuite) TestMyAssignedReportsStats() {
	userID := primitive.NewObjectID()
	mine := models.ReportFilter{AssignedStaffID: &userID}
	suite.reports.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Report{{}, {}}, int64(2), nil)
	suite.reports.EXPECT().Count(gomock.Any(), mine).Return(int64(7), nil)
	suite.reports.EXPECT().Count(gomock.Any(), mine, models.StatusAssigned, models.StatusInProgress).Return(int64(3), nil)
	suite.reports.EXPECT().Count(gomock.Any(), mine, models.StatusResolved).Return(int64(4), nil)

	items, pagination, stats, err := suite.service.MyAssignedReports(suite.ctx, userID, services.ReportListQuery{})

	suite.Require().NoError(err)
	suite.Len(items, 2)
	suite.Equal(int64(1), pagination.Pages)
	suite.Equal(&services.AssignedReportStats{Total: 7, Pending: 3, Resolved: 4}, stats)
}

func TestStaffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StaffServiceTestSuite))
}
