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

type TenancyService interface {
	Create(ctx context.Context, tenancy *models.Tenancy) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenancy, error)
	Update(ctx context.Context, tenancy *models.Tenancy) error
	End(ctx context.Context, id uuid.UUID, endDate time.Time, reason *string) (*models.Tenancy, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *repositories.TenancyFilter, limit, offset int) ([]*models.Tenancy, int, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Tenancy, error)
}

type tenancyService struct {
	tenancyRepo repositories.TenancyRepository
	unitRepo    repositories.UnitRepository
	userRepo    repositories.UserRepository
	cacheSvc    caching.CacheService
}

func NewTenancyService(tenancyRepo repositories.TenancyRepository, unitRepo repositories.UnitRepository,
	userRepo repositories.UserRepository, cacheSvc caching.CacheService) TenancyService {
	return &tenancyService{
		tenancyRepo: tenancyRepo,
		unitRepo:    unitRepo,
		userRepo:    userRepo,
		cacheSvc:    cacheSvc,
	}
}

func (s *tenancyService) Create(ctx context.Context, tenancy *models.Tenancy) error {
	if !tenancy.StartDate.Before(tenancy.EndDate) {
		return errors.New("start date must precede end date")
	}

	tenant, err := s.userRepo.GetByID(ctx, tenancy.TenantID)
	if err != nil {
		return errors.New("tenant not found")
	}
	if tenant.Role != models.RoleTenant {
		return errors.New("tenant must be a user with the TENANT role")
	}

	unit, err := s.unitRepo.GetByID(ctx, tenancy.UnitID)
	if err != nil {
		return errors.New("unit not found")
	}
	// A unit only enters a tenancy while it sits available.
	if unit.Status != models.UnitStatusAvailable {
		return errors.New("unit is not available")
	}

	// Monthly rent defaults from the unit's asking rent; editable afterwards.
	if tenancy.MonthlyRent <= 0 {
		tenancy.MonthlyRent = unit.RentAmount
	}

	tenancy.ID = uuid.New()
	tenancy.IsActive = true

	if err := s.tenancyRepo.Create(ctx, tenancy); err != nil {
		return err
	}

	if err := s.unitRepo.UpdateStatus(ctx, tenancy.UnitID, models.UnitStatusOccupied); err != nil {
		return err
	}
	return s.cacheSvc.DeleteUnit(ctx, tenancy.UnitID)
}

func (s *tenancyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenancy, error) {
	return s.tenancyRepo.GetByID(ctx, id)
}

func (s *tenancyService) Update(ctx context.Context, tenancy *models.Tenancy) error {
	if !tenancy.StartDate.Before(tenancy.EndDate) {
		return errors.New("start date must precede end date")
	}

	existing, err := s.tenancyRepo.GetByID(ctx, tenancy.ID)
	if err != nil {
		return errors.New("tenancy not found")
	}

	// Moving the tenancy to another unit requires that unit to be available.
	if tenancy.UnitID != existing.UnitID {
		unit, err := s.unitRepo.GetByID(ctx, tenancy.UnitID)
		if err != nil {
			return errors.New("unit not found")
		}
		if unit.Status != models.UnitStatusAvailable {
			return errors.New("unit is not available")
		}
	}

	if tenancy.MonthlyRent <= 0 {
		return errors.New("monthly rent must be greater than 0")
	}

	return s.tenancyRepo.Update(ctx, tenancy)
}

func (s *tenancyService) End(ctx context.Context, id uuid.UUID, endDate time.Time, reason *string) (*models.Tenancy, error) {
	tenancy, err := s.tenancyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("tenancy not found")
	}
	if !tenancy.IsActive {
		return nil, errors.New("tenancy is already ended")
	}

	if endDate.IsZero() {
		endDate = time.Now()
	}

	if err := s.tenancyRepo.End(ctx, id, endDate, reason); err != nil {
		return nil, err
	}

	if err := s.unitRepo.UpdateStatus(ctx, tenancy.UnitID, models.UnitStatusAvailable); err != nil {
		return nil, err
	}
	if err := s.cacheSvc.DeleteUnit(ctx, tenancy.UnitID); err != nil {
		return nil, err
	}

	return s.tenancyRepo.GetByID(ctx, id)
}

func (s *tenancyService) Delete(ctx context.Context, id uuid.UUID) error {
	tenancy, err := s.tenancyRepo.GetByID(ctx, id)
	if err != nil {
		return errors.New("tenancy not found")
	}

	if err := s.tenancyRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Deleting an active tenancy frees its unit.
	if tenancy.IsActive {
		if err := s.unitRepo.UpdateStatus(ctx, tenancy.UnitID, models.UnitStatusAvailable); err != nil {
			return err
		}
		return s.cacheSvc.DeleteUnit(ctx, tenancy.UnitID)
	}
	return nil
}

func (s *tenancyService) List(ctx context.Context, filter *repositories.TenancyFilter, limit, offset int) ([]*models.Tenancy, int, error) {
	tenancies, err := s.tenancyRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.tenancyRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return tenancies, total, nil
}

func (s *tenancyService) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Tenancy, error) {
	filter := &repositories.TenancyFilter{TenantID: &tenantID}
	return s.tenancyRepo.List(ctx, filter, 100, 0)
}
