package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"propertyhub/internal/models"
	"propertyhub/internal/repositories"
)

type MockBuildingRepository struct {
	mock.Mock
}

func (m *MockBuildingRepository) Create(ctx context.Context, building *models.Building) error {
	args := m.Called(ctx, building)
	return args.Error(0)
}

func (m *MockBuildingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Building, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Building), args.Error(1)
}

func (m *MockBuildingRepository) Update(ctx context.Context, building *models.Building) error {
	args := m.Called(ctx, building)
	return args.Error(0)
}

func (m *MockBuildingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBuildingRepository) List(ctx context.Context, filter *repositories.BuildingFilter, limit, offset int) ([]*models.Building, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]*models.Building), args.Error(1)
}

func (m *MockBuildingRepository) Count(ctx context.Context, filter *repositories.BuildingFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

type BuildingServiceTestSuite struct {
	suite.Suite
	mockBuildingRepo *MockBuildingRepository
	mockUserRepo     *MockUserRepository
	mockCache        *MockCacheService
	service          BuildingService
	ctx              context.Context
	ownerID          uuid.UUID
}

func (suite *BuildingServiceTestSuite) SetupTest() {
	suite.mockBuildingRepo = &MockBuildingRepository{}
	suite.mockUserRepo = &MockUserRepository{}
	suite.mockCache = &MockCacheService{}
	suite.service = NewBuildingService(suite.mockBuildingRepo, suite.mockUserRepo, suite.mockCache)
	suite.ctx = context.Background()
	suite.ownerID = uuid.New()
}

func (suite *BuildingServiceTestSuite) TearDownTest() {
	suite.mockBuildingRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func TestBuildingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BuildingServiceTestSuite))
}

func (suite *BuildingServiceTestSuite) owner() *models.User {
	return &models.User{
		ID:       suite.ownerID,
		Email:    "owner@example.com",
		Role:     models.RoleOwner,
		IsActive: true,
	}
}

func (suite *BuildingServiceTestSuite) newBuilding() *models.Building {
	return &models.Building{
		Name:         "Maple Court",
		AddressLine1: "12 Maple Street",
		City:         "Springfield",
		State:        "IL",
		PostalCode:   "62704",
		OwnerID:      suite.ownerID,
	}
}

func (suite *BuildingServiceTestSuite) TestCreate_Success() {
	building := suite.newBuilding()

	suite.mockUserRepo.On("GetByID", suite.ctx, suite.ownerID).Return(suite.owner(), nil)
	suite.mockBuildingRepo.On("Create", suite.ctx, building).Return(nil)

	err := suite.service.Create(suite.ctx, building)

	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, building.ID)
}

func (suite *BuildingServiceTestSuite) TestCreate_OwnerWrongRole() {
	building := suite.newBuilding()
	tenant := suite.owner()
	tenant.Role = models.RoleTenant

	suite.mockUserRepo.On("GetByID", suite.ctx, suite.ownerID).Return(tenant, nil)

	err := suite.service.Create(suite.ctx, building)

	assert.EqualError(suite.T(), err, "owner must be a user with the OWNER role")
	suite.mockBuildingRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *BuildingServiceTestSuite) TestCreate_OwnerNotFound() {
	building := suite.newBuilding()

	suite.mockUserRepo.On("GetByID", suite.ctx, suite.ownerID).Return(nil, errors.New("no rows"))

	err := suite.service.Create(suite.ctx, building)

	assert.EqualError(suite.T(), err, "owner not found")
	suite.mockBuildingRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *BuildingServiceTestSuite) TestCreate_MissingName() {
	building := suite.newBuilding()
	building.Name = ""

	err := suite.service.Create(suite.ctx, building)

	assert.EqualError(suite.T(), err, "building name is required")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

func (suite *BuildingServiceTestSuite) TestUpdate_Success() {
	building := suite.newBuilding()
	building.ID = uuid.New()

	suite.mockUserRepo.On("GetByID", suite.ctx, suite.ownerID).Return(suite.owner(), nil)
	suite.mockBuildingRepo.On("Update", suite.ctx, building).Return(nil)
	suite.mockCache.On("DeleteBuilding", suite.ctx, building.ID).Return(nil)

	err := suite.service.Update(suite.ctx, building)

	assert.NoError(suite.T(), err)
}

func (suite *BuildingServiceTestSuite) TestUpdate_OwnerWrongRole() {
	building := suite.newBuilding()
	building.ID = uuid.New()
	admin := suite.owner()
	admin.Role = models.RoleAdmin

	suite.mockUserRepo.On("GetByID", suite.ctx, suite.ownerID).Return(admin, nil)

	err := suite.service.Update(suite.ctx, building)

	assert.EqualError(suite.T(), err, "owner must be a user with the OWNER role")
	suite.mockBuildingRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *BuildingServiceTestSuite) TestUpdate_OwnerNotFound() {
	building := suite.newBuilding()
	building.ID = uuid.New()

	suite.mockUserRepo.On("GetByID", suite.ctx, suite.ownerID).Return(nil, errors.New("no rows"))

	err := suite.service.Update(suite.ctx, building)

	assert.EqualError(suite.T(), err, "owner not found")
	suite.mockBuildingRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *BuildingServiceTestSuite) TestDelete_InvalidatesCache() {
	id := uuid.New()

	suite.mockBuildingRepo.On("Delete", suite.ctx, id).Return(nil)
	suite.mockCache.On("DeleteBuilding", suite.ctx, id).Return(nil)

	err := suite.service.Delete(suite.ctx, id)

	assert.NoError(suite.T(), err)
}
