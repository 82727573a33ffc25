package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"propertyhub/internal/models"
	"propertyhub/internal/repositories"
)

// Mock repositories and services

type MockTenancyRepository struct {
	mock.Mock
}

func (m *MockTenancyRepository) Create(ctx context.Context, tenancy *models.Tenancy) error {
	args := m.Called(ctx, tenancy)
	return args.Error(0)
}

func (m *MockTenancyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenancy), args.Error(1)
}

func (m *MockTenancyRepository) Update(ctx context.Context, tenancy *models.Tenancy) error {
	args := m.Called(ctx, tenancy)
	return args.Error(0)
}

func (m *MockTenancyRepository) End(ctx context.Context, id uuid.UUID, endDate time.Time, reason *string) error {
	args := m.Called(ctx, id, endDate, reason)
	return args.Error(0)
}

func (m *MockTenancyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTenancyRepository) List(ctx context.Context, filter *repositories.TenancyFilter, limit, offset int) ([]*models.Tenancy, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]*models.Tenancy), args.Error(1)
}

func (m *MockTenancyRepository) Count(ctx context.Context, filter *repositories.TenancyFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockTenancyRepository) GetActiveByUnit(ctx context.Context, unitID uuid.UUID) (*models.Tenancy, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenancy), args.Error(1)
}

func (m *MockTenancyRepository) ListExpired(ctx context.Context, limit int) ([]*models.Tenancy, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*models.Tenancy), args.Error(1)
}

type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) Create(ctx context.Context, unit *models.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockUnitRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Unit), args.Error(1)
}

func (m *MockUnitRepository) Update(ctx context.Context, unit *models.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockUnitRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUnitRepository) List(ctx context.Context, filter *repositories.UnitFilter, limit, offset int) ([]*models.Unit, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]*models.Unit), args.Error(1)
}

func (m *MockUnitRepository) Count(ctx context.Context, filter *repositories.UnitFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockUnitRepository) ListRentedByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Unit, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]*models.Unit), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, filter *repositories.UserFilter, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter *repositories.UserFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetUnit(ctx context.Context, unitID uuid.UUID) (*models.Unit, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Unit), args.Error(1)
}

func (m *MockCacheService) SetUnit(ctx context.Context, unit *models.Unit, ttl time.Duration) error {
	args := m.Called(ctx, unit, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteUnit(ctx context.Context, unitID uuid.UUID) error {
	args := m.Called(ctx, unitID)
	return args.Error(0)
}

func (m *MockCacheService) GetBuilding(ctx context.Context, buildingID uuid.UUID) (*models.Building, error) {
	args := m.Called(ctx, buildingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Building), args.Error(1)
}

func (m *MockCacheService) SetBuilding(ctx context.Context, building *models.Building, ttl time.Duration) error {
	args := m.Called(ctx, building, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteBuilding(ctx context.Context, buildingID uuid.UUID) error {
	args := m.Called(ctx, buildingID)
	return args.Error(0)
}

func (m *MockCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetString(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type TenancyServiceTestSuite struct {
	suite.Suite
	mockTenancyRepo *MockTenancyRepository
	mockUnitRepo    *MockUnitRepository
	mockUserRepo    *MockUserRepository
	mockCache       *MockCacheService
	service         TenancyService
	ctx             context.Context
	tenantID        uuid.UUID
	unitID          uuid.UUID
}

func (suite *TenancyServiceTestSuite) SetupTest() {
	suite.mockTenancyRepo = &MockTenancyRepository{}
	suite.mockUnitRepo = &MockUnitRepository{}
	suite.mockUserRepo = &MockUserRepository{}
	suite.mockCache = &MockCacheService{}
	suite.service = NewTenancyService(suite.mockTenancyRepo, suite.mockUnitRepo, suite.mockUserRepo, suite.mockCache)
	suite.ctx = context.Background()
	suite.tenantID = uuid.New()
	suite.unitID = uuid.New()
}

func (suite *TenancyServiceTestSuite) TearDownTest() {
	suite.mockTenancyRepo.AssertExpectations(suite.T())
	suite.mockUnitRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func TestTenancyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenancyServiceTestSuite))
}

func (suite *TenancyServiceTestSuite) tenant() *models.User {
	return &models.User{
		ID:       suite.tenantID,
		Email:    "tenant@example.com",
		Role:     models.RoleTenant,
		IsActive: true,
	}
}

func (suite *TenancyServiceTestSuite) availableUnit() *models.Unit {
	return &models.Unit{
		ID:         suite.unitID,
		BuildingID: uuid.New(),
		UnitNumber: "4A",
		RentAmount: 1200,
		UnitType:   models.UnitTypeApartment,
		Status:     models.UnitStatusAvailable,
	}
}

func (suite *TenancyServiceTestSuite) newTenancy() *models.Tenancy {
	return &models.Tenancy{
		TenantID:  suite.tenantID,
		UnitID:    suite.unitID,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(1, 0, 0),
	}
}

func (suite *TenancyServiceTestSuite) TestCreate_Success() {
	tenancy := suite.newTenancy()

	suite.mockUserRepo.On("GetByID", suite.ctx, suite.tenantID).Return(suite.tenant(), nil)
	suite.mockUnitRepo.On("GetByID", suite.ctx, suite.unitID).Return(suite.availableUnit(), nil)
	suite.mockTenancyRepo.On("Create", suite.ctx, tenancy).Return(nil)
	suite.mockUnitRepo.On("UpdateStatus", suite.ctx, suite.unitID, models.UnitStatusOccupied).Return(nil)
	suite.mockCache.On("DeleteUnit", suite.ctx, suite.unitID).Return(nil)

	err := suite.service.Create(suite.ctx, tenancy)

	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, tenancy.ID)
	assert.True(suite.T(), tenancy.IsActive)
}

func (suite *TenancyServiceTestSuite) TestCreate_RentDefaultsFromUnit() {
	tenancy := suite.newTenancy()
	tenancy.MonthlyRent = 0

	suite.mockUserRepo.On("GetByID", suite.ctx, suite.tenantID).Return(suite.tenant(), nil)
	suite.mockUnitRepo.On("GetByID", suite.ctx, suite.unitID).Return(suite.availableUnit(), nil)
	suite.mockTenancyRepo.On("Create", suite.ctx, tenancy).Return(nil)
	suite.mockUnitRepo.On("UpdateStatus", suite.ctx, suite.unitID, models.UnitStatusOccupied).Return(nil)
	suite.mockCache.On("DeleteUnit", suite.ctx, suite.unitID).Return(nil)

	err := suite.service.Create(suite.ctx, tenancy)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1200.0, tenancy.MonthlyRent)
}

func (suite *TenancyServiceTestSuite) TestCreate_UnitNotAvailable() {
	tenancy := suite.newTenancy()
	unit := suite.availableUnit()
	unit.Status = models.UnitStatusOccupied

	suite.mockUserRepo.On("GetByID", suite.ctx, suite.tenantID).Return(suite.tenant(), nil)
	suite.mockUnitRepo.On("GetByID", suite.ctx, suite.unitID).Return(unit, nil)

	err := suite.service.Create(suite.ctx, tenancy)

	assert.EqualError(suite.T(), err, "unit is not available")
	suite.mockTenancyRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *TenancyServiceTestSuite) TestCreate_TenantWrongRole() {
	tenancy := suite.newTenancy()
	owner := suite.tenant()
	owner.Role = models.RoleOwner

	suite.mockUserRepo.On("GetByID", suite.ctx, suite.tenantID).Return(owner, nil)

	err := suite.service.Create(suite.ctx, tenancy)

	assert.EqualError(suite.T(), err, "tenant must be a user with the TENANT role")
}

func (suite *TenancyServiceTestSuite) TestCreate_InvertedDates() {
	tenancy := suite.newTenancy()
	tenancy.StartDate, tenancy.EndDate = tenancy.EndDate, tenancy.StartDate

	err := suite.service.Create(suite.ctx, tenancy)

	assert.EqualError(suite.T(), err, "start date must precede end date")
}

func (suite *TenancyServiceTestSuite) TestEnd_Success() {
	tenancyID := uuid.New()
	reason := "tenant moved out"
	endDate := time.Now()
	active := suite.newTenancy()
	active.ID = tenancyID
	active.IsActive = true

	ended := suite.newTenancy()
	ended.ID = tenancyID
	ended.IsActive = false
	ended.EndReason = &reason

	suite.mockTenancyRepo.On("GetByID", suite.ctx, tenancyID).Return(active, nil).Once()
	suite.mockTenancyRepo.On("End", suite.ctx, tenancyID, endDate, &reason).Return(nil)
	suite.mockUnitRepo.On("UpdateStatus", suite.ctx, suite.unitID, models.UnitStatusAvailable).Return(nil)
	suite.mockCache.On("DeleteUnit", suite.ctx, suite.unitID).Return(nil)
	suite.mockTenancyRepo.On("GetByID", suite.ctx, tenancyID).Return(ended, nil).Once()

	got, err := suite.service.End(suite.ctx, tenancyID, endDate, &reason)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), got.IsActive)
	assert.Equal(suite.T(), &reason, got.EndReason)
}

func (suite *TenancyServiceTestSuite) TestEnd_AlreadyEnded() {
	tenancyID := uuid.New()
	ended := suite.newTenancy()
	ended.ID = tenancyID
	ended.IsActive = false

	suite.mockTenancyRepo.On("GetByID", suite.ctx, tenancyID).Return(ended, nil)

	got, err := suite.service.End(suite.ctx, tenancyID, time.Now(), nil)

	assert.Nil(suite.T(), got)
	assert.EqualError(suite.T(), err, "tenancy is already ended")
	suite.mockUnitRepo.AssertNotCalled(suite.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TenancyServiceTestSuite) TestDelete_ActiveFreesUnit() {
	tenancyID := uuid.New()
	active := suite.newTenancy()
	active.ID = tenancyID
	active.IsActive = true

	suite.mockTenancyRepo.On("GetByID", suite.ctx, tenancyID).Return(active, nil)
	suite.mockTenancyRepo.On("Delete", suite.ctx, tenancyID).Return(nil)
	suite.mockUnitRepo.On("UpdateStatus", suite.ctx, suite.unitID, models.UnitStatusAvailable).Return(nil)
	suite.mockCache.On("DeleteUnit", suite.ctx, suite.unitID).Return(nil)

	err := suite.service.Delete(suite.ctx, tenancyID)
	assert.NoError(suite.T(), err)
}

func (suite *TenancyServiceTestSuite) TestList_ReturnsTotal() {
	filter := &repositories.TenancyFilter{TenantID: &suite.tenantID}
	tenancies := []*models.Tenancy{suite.newTenancy()}

	suite.mockTenancyRepo.On("List", suite.ctx, filter, 10, 0).Return(tenancies, nil)
	suite.mockTenancyRepo.On("Count", suite.ctx, filter).Return(7, nil)

	got, total, err := suite.service.List(suite.ctx, filter, 10, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), 7, total)
}

func (suite *TenancyServiceTestSuite) TestList_RepoError() {
	suite.mockTenancyRepo.On("List", suite.ctx, (*repositories.TenancyFilter)(nil), 10, 0).
		Return([]*models.Tenancy{}, errors.New("db down"))

	_, _, err := suite.service.List(suite.ctx, nil, 10, 0)
	assert.Error(suite.T(), err)
}
