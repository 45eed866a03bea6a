package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/logger"
	"nagaralert-be/mocks"
	"nagaralert-be/models"
	"nagaralert-be/services"
	"nagaralert-be/storage"
	authUtils "nagaralert-be/utils"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	users          *mocks.MockUserRepositoryInterface
	municipalities *mocks.MockMunicipalityRepositoryInterface
	media          *mocks.MockMediaStorage
	mailer         *mocks.MockMailer
	tokens         *authUtils.TokenManager
	service        *services.AuthService
	ctx            context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.municipalities = mocks.NewMockMunicipalityRepositoryInterface(suite.ctrl)
	suite.media = mocks.NewMockMediaStorage(suite.ctrl)
	suite.mailer = mocks.NewMockMailer(suite.ctrl)
	suite.tokens = authUtils.NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	log := logger.Discard()
	suite.service = services.NewAuthService(suite.users, suite.municipalities, suite.media,
		services.NewNotifier(suite.mailer, log), suite.tokens, testPasswordCost, log)
	suite.ctx = context.Background()
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) activeUser(password string) *models.User {
	user := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Sita Sharma",
		Email:    "sita@example.com",
		Password: password,
		Role:     models.RoleCitizen,
		Status:   models.UserActive,
	}
	suite.Require().NoError(user.HashPassword(testPasswordCost))
	return user
}

func (suite *AuthServiceTestSuite) TestRegisterCreatesPendingCitizen() {
	municipalityID := primitive.NewObjectID()
	suite.municipalities.EXPECT().FindByID(gomock.Any(), municipalityID).Return(&models.Municipality{ID: municipalityID}, nil)
	suite.users.EXPECT().ExistsByEmail(gomock.Any(), "Sita@Example.com").Return(false, nil)

	var created *models.User
	suite.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		u.ID = primitive.NewObjectID()
		created = u
		return nil
	})
	suite.mailer.EXPECT().Send(gomock.Any(), "sita@example.com", "Activate your NagarAlert account", gomock.Any()).Return(nil)

	detail, err := suite.service.Register(suite.ctx, services.RegisterRequest{
		Name:           " Sita Sharma ",
		Email:          "Sita@Example.com",
		Password:       "secret123",
		Phone:          "9812345678",
		MunicipalityID: municipalityID.Hex(),
		Address:        "Baneshwor, Kathmandu",
		Ward:           "10",
	}, nil)

	suite.Require().NoError(err)
	suite.Equal(models.UserPending, detail.Status)
	suite.Equal("sita@example.com", detail.Email)
	suite.Require().NotNil(created)
	suite.Len(created.ActivationToken, authUtils.OTPLength)
	suite.NotEqual("secret123", created.Password)
	suite.True(created.ComparePassword("secret123"))
	cost, err := bcrypt.Cost([]byte(created.Password))
	suite.Require().NoError(err)
	suite.Equal(testPasswordCost, cost)
	profile, err := created.Profile()
	suite.Require().NoError(err)
	suite.Equal(models.CitizenProfile{Address: "Baneshwor, Kathmandu", Ward: "10"}, profile)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsTakenEmail() {
	municipalityID := primitive.NewObjectID()
	suite.municipalities.EXPECT().FindByID(gomock.Any(), municipalityID).Return(&models.Municipality{ID: municipalityID}, nil)
	suite.users.EXPECT().ExistsByEmail(gomock.Any(), "sita@example.com").Return(true, nil)

	_, err := suite.service.Register(suite.ctx, services.RegisterRequest{
		Email:          "sita@example.com",
		MunicipalityID: municipalityID.Hex(),
	}, nil)

	suite.True(apperrors.IsValidation(err))
}

func (suite *AuthServiceTestSuite) TestRegisterRemovesImageWhenUserCreateFails() {
	municipalityID := primitive.NewObjectID()
	image := &models.MediaFile{Filename: "me.jpg", Path: "/tmp/me.jpg"}
	suite.municipalities.EXPECT().FindByID(gomock.Any(), municipalityID).Return(&models.Municipality{ID: municipalityID}, nil)
	suite.users.EXPECT().ExistsByEmail(gomock.Any(), "sita@example.com").Return(false, nil)
	suite.media.EXPECT().Upload(gomock.Any(), "/tmp/me.jpg", storage.FolderUsers, models.MediaImage).
		Return(&storage.UploadResult{URL: "https://cdn/users/me.jpg", PublicID: "nagaralert/users/me"}, nil)
	gomock.InOrder(
		suite.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("write timeout")),
		suite.media.EXPECT().Delete(gomock.Any(), "nagaralert/users/me", models.MediaImage).Return(nil),
	)

	_, err := suite.service.Register(suite.ctx, services.RegisterRequest{
		Name:           "Sita Sharma",
		Email:          "sita@example.com",
		Password:       "secret123",
		MunicipalityID: municipalityID.Hex(),
	}, image)

	appErr := appError(&suite.Suite, err)
	suite.Equal(apperrors.StatusInternal, appErr.Status)
}

func (suite *AuthServiceTestSuite) TestActivate() {
	future := time.Now().Add(time.Minute)
	past := time.Now().Add(-time.Minute)

	testCases := []struct {
		name     string
		user     *models.User
		otp      string
		expected string
	}{
		{
			name:     "already active",
			user:     &models.User{Status: models.UserActive},
			otp:      "ABC123",
			expected: "Account already activated or not eligible",
		},
		{
			name:     "wrong code",
			user:     &models.User{Status: models.UserPending, ActivationToken: "ABC123", TokenExpiry: &future},
			otp:      "XYZ999",
			expected: "Invalid activation code",
		},
		{
			name:     "expired code",
			user:     &models.User{Status: models.UserPending, ActivationToken: "ABC123", TokenExpiry: &past},
			otp:      "ABC123",
			expected: "Activation code expired",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.users.EXPECT().FindByEmail(gomock.Any(), "sita@example.com").Return(tc.user, nil)

			err := suite.service.Activate(suite.ctx, "sita@example.com", tc.otp)

			appErr := appError(&suite.Suite, err)
			suite.Equal(tc.expected, appErr.Message)
		})
	}
}

func (suite *AuthServiceTestSuite) TestActivateClearsCode() {
	expiry := time.Now().Add(time.Minute)
	user := &models.User{ID: primitive.NewObjectID(), Status: models.UserPending, ActivationToken: "ABC123", TokenExpiry: &expiry}
	suite.users.EXPECT().FindByEmail(gomock.Any(), "sita@example.com").Return(user, nil)
	suite.users.EXPECT().Update(gomock.Any(), user.ID, bson.M{
		"status":          models.UserActive,
		"activationToken": "",
		"tokenExpiry":     nil,
	}).Return(user, nil)

	suite.NoError(suite.service.Activate(suite.ctx, "sita@example.com", " abc123 "))
}

func (suite *AuthServiceTestSuite) TestLoginRequiresActiveAccount() {
	user := suite.activeUser("secret123")
	user.Status = models.UserPending
	suite.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err := suite.service.Login(suite.ctx, user.Email, "secret123")

	appErr := appError(&suite.Suite, err)
	suite.Equal(apperrors.StatusNotActivated, appErr.Status)
}

func (suite *AuthServiceTestSuite) TestLoginRejectsWrongPassword() {
	user := suite.activeUser("secret123")
	suite.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err := suite.service.Login(suite.ctx, user.Email, "wrong-password")

	appErr := appError(&suite.Suite, err)
	suite.Equal(apperrors.StatusCredentialsMismatch, appErr.Status)
}

func (suite *AuthServiceTestSuite) TestLoginIssuesTokens() {
	user := suite.activeUser("secret123")
	municipalityID := primitive.NewObjectID()
	user.MunicipalityID = &municipalityID
	suite.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	suite.users.EXPECT().Update(gomock.Any(), user.ID, gomock.Any()).Return(user, nil)

	result, err := suite.service.Login(suite.ctx, user.Email, "secret123")

	suite.Require().NoError(err)
	claims, err := suite.tokens.Parse(result.Token, authUtils.AccessToken)
	suite.Require().NoError(err)
	suite.Equal(user.ID.Hex(), claims.Subject)
	suite.Equal(string(models.RoleCitizen), claims.Role)
	suite.Equal(municipalityID.Hex(), claims.MunicipalityID)

	_, err = suite.tokens.Parse(result.RefreshToken, authUtils.RefreshToken)
	suite.NoError(err)
	suite.Equal(user.Email, result.Detail.Email)
}

func (suite *AuthServiceTestSuite) TestResetPasswordIsSingleUse() {
	user := suite.activeUser("secret123")
	suite.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

	err := suite.service.ResetPassword(suite.ctx, services.ResetPasswordRequest{
		Email: user.Email, OTP: "ABC123", NewPassword: "newsecret",
	})

	appErr := appError(&suite.Suite, err)
	suite.Equal("Reset code not requested or already used", appErr.Message)
}

func (suite *AuthServiceTestSuite) TestResetPasswordStoresNewHash() {
	user := suite.activeUser("secret123")
	expiry := time.Now().Add(time.Minute)
	user.ResetToken = "RST123"
	user.TokenExpiry = &expiry
	suite.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	suite.users.EXPECT().Update(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, set bson.M) (*models.User, error) {
			suite.Equal("", set["resetToken"])
			suite.Nil(set["tokenExpiry"])
			stored := &models.User{Password: set["password"].(string)}
			suite.True(stored.ComparePassword("newsecret"))
			return user, nil
		})

	suite.NoError(suite.service.ResetPassword(suite.ctx, services.ResetPasswordRequest{
		Email: user.Email, OTP: "rst123", NewPassword: "newsecret",
	}))
}

func (suite *AuthServiceTestSuite) TestForgetPasswordEmailsCode() {
	user := suite.activeUser("secret123")
	suite.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	suite.users.EXPECT().Update(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, set bson.M) (*models.User, error) {
			suite.Len(set["resetToken"], authUtils.OTPLength)
			suite.WithinDuration(time.Now().Add(authUtils.OTPValidity), set["tokenExpiry"].(time.Time), time.Minute)
			return user, nil
		})
	suite.mailer.EXPECT().Send(gomock.Any(), user.Email, "NagarAlert password reset", gomock.Any()).Return(nil)

	suite.NoError(suite.service.ForgetPassword(suite.ctx, user.Email))
}

func (suite *AuthServiceTestSuite) TestChangePasswordChecksCurrent() {
	user := suite.activeUser("secret123")
	suite.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

	err := suite.service.ChangePassword(suite.ctx, user.ID, services.ChangePasswordRequest{
		CurrentPassword: "not-it", NewPassword: "newsecret",
	})

	appErr := appError(&suite.Suite, err)
	suite.Equal("Current password is incorrect", appErr.Message)
}

func (suite *AuthServiceTestSuite) TestAdminUpdateUserRequiresChanges() {
	_, err := suite.service.AdminUpdateUser(suite.ctx, primitive.NewObjectID(), services.AdminUpdateUserRequest{})

	suite.True(apperrors.IsValidation(err))
}

func (suite *AuthServiceTestSuite) TestSeedSystemAdmin() {
	suite.users.EXPECT().ExistsByEmail(gomock.Any(), "admin@nagaralert.gov.np").Return(false, nil)
	suite.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		suite.Equal(models.RoleSystemAdmin, u.Role)
		suite.Equal(models.UserActive, u.Status)
		suite.True(u.ComparePassword("admin-pass"))
		return nil
	})
	suite.NoError(services.SeedSystemAdmin(suite.ctx, suite.users, " Admin@NagarAlert.gov.np ", "admin-pass", testPasswordCost, logger.Discard()))

	suite.users.EXPECT().ExistsByEmail(gomock.Any(), "admin@nagaralert.gov.np").Return(true, nil)
	suite.NoError(services.SeedSystemAdmin(suite.ctx, suite.users, "admin@nagaralert.gov.np", "admin-pass", testPasswordCost, logger.Discard()))

	suite.NoError(services.SeedSystemAdmin(suite.ctx, suite.users, "", "", testPasswordCost, logger.Discard()))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
