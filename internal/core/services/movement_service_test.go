package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	portssvc "github.com/finovabank/direct_debit_engine/internal/core/ports/services"
	"github.com/finovabank/direct_debit_engine/internal/core/services"
)

type MovementServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMovementRepository
	service  portssvc.MovementSvcFacade
	ctx      context.Context
}

func (suite *MovementServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMovementRepository)
	suite.service = services.NewMovementService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *MovementServiceTestSuite) TestListMovementsDefaultsLimit() {
	suite.mockRepo.On("ListMovementsByCustomer", suite.ctx, "customer-1", 50, (*string)(nil)).
		Return([]domain.Movement{}, nil, nil).Once()

	_, _, err := suite.service.ListMovementsByCustomer(suite.ctx, "customer-1", 0, nil)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestListMovementsClampsOversizedLimit() {
	suite.mockRepo.On("ListMovementsByCustomer", suite.ctx, "customer-1", 50, (*string)(nil)).
		Return([]domain.Movement{}, nil, nil).Once()

	_, _, err := suite.service.ListMovementsByCustomer(suite.ctx, "customer-1", 1000, nil)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestListMovementsPassesLimitAndToken() {
	token := "opaque"
	suite.mockRepo.On("ListMovementsByCustomer", suite.ctx, "customer-1", 25, &token).
		Return([]domain.Movement{{MovementID: "mv-1"}}, "next", nil).Once()

	movements, nextToken, err := suite.service.ListMovementsByCustomer(suite.ctx, "customer-1", 25, &token)

	suite.Require().NoError(err)
	suite.Len(movements, 1)
	suite.Require().NotNil(nextToken)
	suite.Equal("next", *nextToken)
}

func TestMovementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MovementServiceTestSuite))
}
