package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	portssvc "github.com/finovabank/direct_debit_engine/internal/core/ports/services"
	"github.com/finovabank/direct_debit_engine/internal/dto"
	"github.com/finovabank/direct_debit_engine/internal/handlers"
	"github.com/finovabank/direct_debit_engine/internal/middleware"
)

// --- Mock MovementSvcFacade ---
type MockMovementService struct {
	mock.Mock
}

var _ portssvc.MovementSvcFacade = (*MockMovementService)(nil)

func (m *MockMovementService) ListMovementsByCustomer(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	args := m.Called(ctx, customerID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		token = &tokenVal
	}
	return args.Get(0).([]domain.Movement), token, args.Error(2)
}

// --- Test Suite ---
type MovementHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockMovementService
	authToken   string
}

func (suite *MovementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockMovementService)
	suite.authToken = generateTestToken(suite.T(), "admin-user")

	suite.router = gin.New()
	api := suite.router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterMovementRoutes(api, suite.mockService)
}

func (suite *MovementHandlerTestSuite) get(path string, withAuth bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if withAuth {
		req.Header.Set("Authorization", "Bearer "+suite.authToken)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *MovementHandlerTestSuite) TestListMovements() {
	movements := []domain.Movement{
		{
			MovementID:  "mv-1",
			CustomerID:  "customer-1",
			Kind:        domain.MandateExecution,
			Amount:      decimal.NewFromInt(3999),
			Concept:     "Direct debit: Telefonica SA",
			AccountIBAN: "ES7730046576085345979538",
			CreatedAt:   time.Now().UTC(),
		},
	}
	nextToken := "opaque-token"
	suite.mockService.On("ListMovementsByCustomer", mock.Anything, "customer-1", 0, (*string)(nil)).
		Return(movements, nextToken, nil).Once()

	w := suite.get("/api/v1/customers/customer-1/movements", true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListMovementsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Movements, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(nextToken, *resp.NextToken)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MovementHandlerTestSuite) TestListMovementsWithLimitAndToken() {
	suite.mockService.On("ListMovementsByCustomer", mock.Anything, "customer-1", 10, mock.MatchedBy(func(token *string) bool {
		return token != nil && *token == "abc"
	})).Return([]domain.Movement{}, nil, nil).Once()

	w := suite.get("/api/v1/customers/customer-1/movements?limit=10&nextToken=abc", true)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MovementHandlerTestSuite) TestListMovementsBadLimit() {
	w := suite.get("/api/v1/customers/customer-1/movements?limit=ten", true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListMovementsByCustomer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MovementHandlerTestSuite) TestListMovementsUnauthorized() {
	w := suite.get("/api/v1/customers/customer-1/movements", false)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *MovementHandlerTestSuite) TestListMovementsStoreFailure() {
	suite.mockService.On("ListMovementsByCustomer", mock.Anything, "customer-1", 0, (*string)(nil)).
		Return(nil, nil, errors.New("movement store unavailable")).Once()

	w := suite.get("/api/v1/customers/customer-1/movements", true)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func TestMovementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MovementHandlerTestSuite))
}
