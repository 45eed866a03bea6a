package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nagaralert-be/apperrors"
	"nagaralert-be/middlewares"
	"nagaralert-be/mocks"
	"nagaralert-be/models"
	authUtils "nagaralert-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	users  *mocks.MockUserRepositoryInterface
	tokens *authUtils.TokenManager
	router *gin.Engine
	user   *models.User
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.tokens = authUtils.NewTokenManager("middleware-secret", time.Hour, 24*time.Hour)
	suite.user = &models.User{
		ID:     primitive.NewObjectID(),
		Name:   "Sita Sharma",
		Email:  "sita@example.com",
		Role:   models.RoleCitizen,
		Status: models.UserActive,
	}

	suite.router = newRouter(middlewares.Authenticate(suite.tokens, suite.users), func(c *gin.Context) {
		who, ok := middlewares.CurrentIdentity(c)
		suite.Require().True(ok)
		suite.Equal(suite.user.ID, who.ID)
		suite.Equal(suite.user.ID.Hex(), c.GetString(middlewares.UserIDKey))
		c.Next()
	})
}

func (suite *AuthMiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthMiddlewareTestSuite) request(header string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

func (suite *AuthMiddlewareTestSuite) pair() *authUtils.TokenPair {
	pair, err := suite.tokens.GeneratePair(suite.user.ID.Hex(), string(suite.user.Role), "")
	suite.Require().NoError(err)
	return pair
}

func (suite *AuthMiddlewareTestSuite) TestMissingToken() {
	w, body := serve(suite.T(), suite.router, suite.request(""))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(apperrors.StatusUnauthenticated, body.Status)
	suite.Equal("No authorization token provided", body.Message)
}

func (suite *AuthMiddlewareTestSuite) TestBearerToken() {
	suite.users.EXPECT().FindByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)

	w, body := serve(suite.T(), suite.router, suite.request("Bearer "+suite.pair().Token))

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(apperrors.StatusSuccess, body.Status)
}

func (suite *AuthMiddlewareTestSuite) TestBareToken() {
	suite.users.EXPECT().FindByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)

	w, _ := serve(suite.T(), suite.router, suite.request(suite.pair().Token))

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestRefreshTokenRejected() {
	w, body := serve(suite.T(), suite.router, suite.request("Bearer "+suite.pair().RefreshToken))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid token.", body.Message)
}

func (suite *AuthMiddlewareTestSuite) TestGarbageToken() {
	w, body := serve(suite.T(), suite.router, suite.request("Bearer not-a-jwt"))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid token.", body.Message)
}

func (suite *AuthMiddlewareTestSuite) TestUnknownUser() {
	suite.users.EXPECT().FindByID(gomock.Any(), suite.user.ID).Return(nil, apperrors.ErrDocumentNotFound)

	w, body := serve(suite.T(), suite.router, suite.request("Bearer "+suite.pair().Token))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("User not found", body.Message)
}

func (suite *AuthMiddlewareTestSuite) TestInactiveUser() {
	suite.user.Status = models.UserPending
	suite.users.EXPECT().FindByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)

	w, body := serve(suite.T(), suite.router, suite.request("Bearer "+suite.pair().Token))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(apperrors.StatusNotActivated, body.Status)
}

func (suite *AuthMiddlewareTestSuite) TestRefreshAllowsPendingUser() {
	suite.user.Status = models.UserPending
	suite.users.EXPECT().FindByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)

	router := newRouter(middlewares.RefreshAuthenticate(suite.tokens, suite.users))
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("refresh", "Bearer "+suite.pair().RefreshToken)

	w, _ := serve(suite.T(), router, req)

	suite.Equal(http.StatusOK, w.Code)
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func TestRequireRoles(t *testing.T) {
	municipalityID := primitive.NewObjectID()
	staff := &models.Identity{ID: primitive.NewObjectID(), Role: models.RoleFieldStaff, MunicipalityID: &municipalityID}
	citizen := &models.Identity{ID: primitive.NewObjectID(), Role: models.RoleCitizen}

	tests := []struct {
		name   string
		chain  []gin.HandlerFunc
		status int
		code   string
	}{
		{"staff passes staff routes", []gin.HandlerFunc{as(staff), middlewares.StaffOnly()}, http.StatusOK, apperrors.StatusSuccess},
		{"citizen blocked from admin routes", []gin.HandlerFunc{as(citizen), middlewares.AdminOnly()}, http.StatusForbidden, apperrors.StatusAccessDenied},
		{"no identity", []gin.HandlerFunc{middlewares.CitizenOnly()}, http.StatusUnauthorized, apperrors.StatusUnauthenticated},
		{"no roles configured", []gin.HandlerFunc{as(citizen), middlewares.RequireRoles()}, http.StatusBadRequest, apperrors.StatusBadRequest},
		{"everyone logged in", []gin.HandlerFunc{as(citizen), middlewares.AllLoggedIn()}, http.StatusOK, apperrors.StatusSuccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serve(t, newRouter(tt.chain...), httptest.NewRequest(http.MethodGet, "/test", nil))
			if w.Code != tt.status || body.Status != tt.code {
				t.Fatalf("got %d %s, want %d %s", w.Code, body.Status, tt.status, tt.code)
			}
		})
	}
}

func TestRequireRolesDenialData(t *testing.T) {
	citizen := &models.Identity{ID: primitive.NewObjectID(), Role: models.RoleCitizen}

	_, body := serve(t, newRouter(as(citizen), middlewares.SystemAdminOnly()), httptest.NewRequest(http.MethodGet, "/test", nil))

	if string(body.Data) != `{"requiredRoles":["system_admin"],"userRole":"citizen"}` {
		t.Fatalf("unexpected denial data %s", body.Data)
	}
}
