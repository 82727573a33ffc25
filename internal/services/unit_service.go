package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"propertyhub/internal/caching"
	"propertyhub/internal/models"
	"propertyhub/internal/repositories"
)

const unitCacheTTL = 10 * time.Minute

type UnitService interface {
	Create(ctx context.Context, unit *models.Unit) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	Update(ctx context.Context, unit *models.Unit) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *repositories.UnitFilter, limit, offset int) ([]*models.Unit, int, error)
}

type unitService struct {
	unitRepo     repositories.UnitRepository
	buildingRepo repositories.BuildingRepository
	tenancyRepo  repositories.TenancyRepository
	cacheSvc     caching.CacheService
}

func NewUnitService(unitRepo repositories.UnitRepository, buildingRepo repositories.BuildingRepository,
	tenancyRepo repositories.TenancyRepository, cacheSvc caching.CacheService) UnitService {
	return &unitService{
		unitRepo:     unitRepo,
		buildingRepo: buildingRepo,
		tenancyRepo:  tenancyRepo,
		cacheSvc:     cacheSvc,
	}
}

func (s *unitService) validate(unit *models.Unit) error {
	if unit.UnitNumber == "" {
		return errors.New("unit number is required")
	}
	if unit.RentAmount <= 0 {
		return errors.New("rent amount must be greater than 0")
	}
	if !models.ValidUnitType(unit.UnitType) {
		return errors.New("invalid unit type")
	}
	if !models.ValidUnitStatus(unit.Status) {
		return errors.New("invalid unit status")
	}
	return nil
}

func (s *unitService) Create(ctx context.Context, unit *models.Unit) error {
	if unit.Status == "" {
		unit.Status = models.UnitStatusAvailable
	}
	if err := s.validate(unit); err != nil {
		return err
	}
	if _, err := s.buildingRepo.GetByID(ctx, unit.BuildingID); err != nil {
		return errors.New("building not found")
	}

	unit.ID = uuid.New()
	return s.unitRepo.Create(ctx, unit)
}

func (s *unitService) GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	if cached, err := s.cacheSvc.GetUnit(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.cacheSvc.SetUnit(ctx, unit, unitCacheTTL)
	return unit, nil
}

func (s *unitService) Update(ctx context.Context, unit *models.Unit) error {
	if err := s.validate(unit); err != nil {
		return err
	}

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		return err
	}
	return s.cacheSvc.DeleteUnit(ctx, unit.ID)
}

func (s *unitService) Delete(ctx context.Context, id uuid.UUID) error {
	// A unit with an active tenancy cannot be removed.
	if active, err := s.tenancyRepo.GetActiveByUnit(ctx, id); err == nil && active != nil {
		return errors.New("unit has an active tenancy")
	}

	if err := s.unitRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.cacheSvc.DeleteUnit(ctx, id)
}

func (s *unitService) List(ctx context.Context, filter *repositories.UnitFilter, limit, offset int) ([]*models.Unit, int, error) {
	units, err := s.unitRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.unitRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return units, total, nil
}
