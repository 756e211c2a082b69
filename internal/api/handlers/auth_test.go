package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Niraj123466/saas-notes-backend/internal/api/handlers"
	"github.com/Niraj123466/saas-notes-backend/internal/database/models"
	apperrors "github.com/Niraj123466/saas-notes-backend/internal/errors"
	"github.com/Niraj123466/saas-notes-backend/internal/mocks"
	"github.com/Niraj123466/saas-notes-backend/internal/service"
	"github.com/Niraj123466/saas-notes-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAuthServiceInterface
	handler     *handlers.AuthHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAuthServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAuthHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.POST("/login", suite.handler.Login)
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestLogin tests a successful login over HTTP
func (suite *AuthHandlerTestSuite) TestLogin() {
	userID := uuid.New()
	tenantID := uuid.New()

	expected := &service.LoginResponse{
		Token: "signed-token",
		User: service.UserResponse{
			ID:       userID,
			Email:    "admin@acme.test",
			Role:     models.UserRoleAdmin,
			TenantID: tenantID,
		},
	}

	suite.mockService.EXPECT().
		Login(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/login", map[string]string{
		"email":    "admin@acme.test",
		"password": "password",
	})

	var response service.LoginResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "signed-token", response.Token)
	assert.Equal(suite.T(), "admin@acme.test", response.User.Email)

	// The sanitized view has no password field at all
	assert.NotContains(suite.T(), recorder.Body.String(), "password")
}

// TestLoginInvalidCredentials tests login with bad credentials
func (suite *AuthHandlerTestSuite) TestLoginInvalidCredentials() {
	suite.mockService.EXPECT().
		Login(gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/login", map[string]string{
		"email":    "admin@acme.test",
		"password": "wrong",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "invalid email or password")
}

// TestLoginValidationError tests login with missing fields
func (suite *AuthHandlerTestSuite) TestLoginValidationError() {
	suite.mockService.EXPECT().
		Login(gomock.Any()).
		Return(nil, apperrors.NewValidationError("", "email and password are required")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/login", map[string]string{
		"email": "admin@acme.test",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Email and password are required")
}

// TestLoginMalformedBody tests login with a non-JSON body
func (suite *AuthHandlerTestSuite) TestLoginMalformedBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/login", "not-json")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Email and password are required")
}

// TestLoginInternalError tests that unexpected errors hide their details
func (suite *AuthHandlerTestSuite) TestLoginInternalError() {
	suite.mockService.EXPECT().
		Login(gomock.Any()).
		Return(nil, assert.AnError).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/login", map[string]string{
		"email":    "admin@acme.test",
		"password": "password",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(suite.T(), recorder.Body.String(), assert.AnError.Error())
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
