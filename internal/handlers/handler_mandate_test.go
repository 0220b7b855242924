package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finovabank/direct_debit_engine/internal/apperrors"
	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	portssvc "github.com/finovabank/direct_debit_engine/internal/core/ports/services"
	"github.com/finovabank/direct_debit_engine/internal/dto"
	"github.com/finovabank/direct_debit_engine/internal/handlers"
	"github.com/finovabank/direct_debit_engine/internal/middleware"
)

const testJWTSecret = "test-secret-key-for-handlers"

// generateTestToken creates a signed HS256 token for the given subject.
func generateTestToken(t *testing.T, subject string) string {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

// --- Mock MandateSvcFacade ---
type MockMandateService struct {
	mock.Mock
}

var _ portssvc.MandateSvcFacade = (*MockMandateService)(nil)

func (m *MockMandateService) CreateMandate(ctx context.Context, req dto.CreateMandateRequest, creatorUserID string) (*domain.Mandate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mandate), args.Error(1)
}

func (m *MockMandateService) ListMandatesByCustomer(ctx context.Context, customerID string) ([]domain.Mandate, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mandate), args.Error(1)
}

func (m *MockMandateService) SetMandateActive(ctx context.Context, mandateID string, active bool, updaterUserID string) (*domain.Mandate, error) {
	args := m.Called(ctx, mandateID, active, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mandate), args.Error(1)
}

// --- Test Suite ---
type MandateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockMandateService
	authToken   string
}

func (suite *MandateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockMandateService)
	suite.authToken = generateTestToken(suite.T(), "admin-user")

	suite.router = gin.New()
	api := suite.router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterMandateRoutes(api, suite.mockService)
}

func (suite *MandateHandlerTestSuite) request(method, path string, body interface{}, withAuth bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		suite.Require().NoError(err)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if withAuth {
		req.Header.Set("Authorization", "Bearer "+suite.authToken)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validCreateBody() map[string]interface{} {
	return map[string]interface{}{
		"customerID":   "3b4c1c0a-41f5-4f3c-9f3e-1f4e3d2c1b0a",
		"creditorName": "Telefonica SA",
		"payerIBAN":    "ES7730046576085345979538",
		"creditorIBAN": "ES9121000418450200051332",
		"amount":       "3999",
		"periodicity":  "MONTHLY",
	}
}

func (suite *MandateHandlerTestSuite) TestCreateMandateSuccess() {
	created := &domain.Mandate{
		MandateID:   "mandate-1",
		PublicID:    "ab12cd34ef56",
		CustomerID:  "3b4c1c0a-41f5-4f3c-9f3e-1f4e3d2c1b0a",
		Amount:      decimal.NewFromInt(3999),
		Periodicity: domain.Monthly,
		IsActive:    true,
	}
	suite.mockService.On("CreateMandate", mock.Anything, mock.MatchedBy(func(req dto.CreateMandateRequest) bool {
		return req.Periodicity == domain.Monthly && req.Amount.Equal(decimal.NewFromInt(3999))
	}), "admin-user").Return(created, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/mandates", validCreateBody(), true)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.MandateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("mandate-1", resp.MandateID)
	suite.True(resp.IsActive)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MandateHandlerTestSuite) TestCreateMandateUnauthorized() {
	w := suite.request(http.MethodPost, "/api/v1/mandates", validCreateBody(), false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateMandate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MandateHandlerTestSuite) TestCreateMandateInvalidBody() {
	body := validCreateBody()
	body["periodicity"] = "SOMETIMES"

	w := suite.request(http.MethodPost, "/api/v1/mandates", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateMandate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MandateHandlerTestSuite) TestCreateMandateValidationError() {
	suite.mockService.On("CreateMandate", mock.Anything, mock.Anything, "admin-user").
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.request(http.MethodPost, "/api/v1/mandates", validCreateBody(), true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *MandateHandlerTestSuite) TestDeactivateMandate() {
	updated := &domain.Mandate{MandateID: "mandate-1", IsActive: false}
	suite.mockService.On("SetMandateActive", mock.Anything, "mandate-1", false, "admin-user").
		Return(updated, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/mandates/mandate-1/deactivate", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MandateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.IsActive)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MandateHandlerTestSuite) TestActivateMandateNotFound() {
	suite.mockService.On("SetMandateActive", mock.Anything, "missing", true, "admin-user").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodPost, "/api/v1/mandates/missing/activate", nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *MandateHandlerTestSuite) TestListMandatesByCustomer() {
	mandates := []domain.Mandate{
		{MandateID: "mandate-1", CustomerID: "customer-1", Amount: decimal.NewFromInt(3999)},
		{MandateID: "mandate-2", CustomerID: "customer-1", Amount: decimal.NewFromInt(2500)},
	}
	suite.mockService.On("ListMandatesByCustomer", mock.Anything, "customer-1").
		Return(mandates, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/customers/customer-1/mandates", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.MandateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
}

func TestMandateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MandateHandlerTestSuite))
}
