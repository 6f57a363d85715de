package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-tracker-api/internal/dto"
	"expense-tracker-api/internal/services"
	"expense-tracker-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) postJSON(path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func sampleAuthResponse(email string) *dto.AuthResponse {
	return &dto.AuthResponse{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().Add(time.Hour),
		User: dto.UserResponse{
			ID:        uuid.New().String(),
			Email:     email,
			FirstName: "John",
			LastName:  "Doe",
		},
	}
}

func (s *AuthHandlerSuite) TestRegister_Success() {
	reqBody := map[string]string{
		"email":      "test@example.com",
		"password":   "SecurePassword123",
		"first_name": "John",
		"last_name":  "Doe",
	}

	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(req *dto.RegisterRequest, ip, userAgent string) (*dto.AuthResponse, error) {
			s.Equal("test@example.com", req.Email)
			s.Equal("John", req.FirstName)
			return sampleAuthResponse(req.Email), nil
		})

	c, rec := s.postJSON("/api/v1/auth/register", reqBody)

	err := s.handler.Register(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "test@example.com")
	s.Contains(rec.Body.String(), "User registered successfully")
}

func (s *AuthHandlerSuite) TestRegister_DuplicateEmail() {
	reqBody := map[string]string{
		"email":      "taken@example.com",
		"password":   "SecurePassword123",
		"first_name": "John",
		"last_name":  "Doe",
	}

	s.authService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrUserAlreadyExists)

	c, rec := s.postJSON("/api/v1/auth/register", reqBody)

	err := s.handler.Register(c)
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "USER_002")
}

func (s *AuthHandlerSuite) TestRegister_InvalidPayload() {
	// Missing password and malformed email; validation errors propagate
	// to the HTTP error handler as raw errors
	reqBody := map[string]string{
		"email":      "not-an-email",
		"first_name": "John",
		"last_name":  "Doe",
	}

	c, _ := s.postJSON("/api/v1/auth/register", reqBody)

	err := s.handler.Register(c)
	s.Error(err)
}

func (s *AuthHandlerSuite) TestLogin_Success() {
	reqBody := map[string]string{
		"email":    "test@example.com",
		"password": "SecurePassword123",
	}

	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sampleAuthResponse("test@example.com"), nil)

	c, rec := s.postJSON("/api/v1/auth/login", reqBody)

	err := s.handler.Login(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "signed.jwt.token")
}

func (s *AuthHandlerSuite) TestLogin_InvalidCredentials() {
	reqBody := map[string]string{
		"email":    "test@example.com",
		"password": "WrongPassword",
	}

	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidCredentials)

	c, rec := s.postJSON("/api/v1/auth/login", reqBody)

	err := s.handler.Login(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthHandlerSuite) TestLogin_ServiceFailure() {
	reqBody := map[string]string{
		"email":    "test@example.com",
		"password": "SecurePassword123",
	}

	s.authService.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database unavailable"))

	c, rec := s.postJSON("/api/v1/auth/login", reqBody)

	err := s.handler.Login(c)
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	// Internal failure details must not leak to the client
	s.NotContains(rec.Body.String(), "database unavailable")
}
