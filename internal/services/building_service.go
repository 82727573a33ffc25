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

const buildingCacheTTL = 10 * time.Minute

type BuildingService interface {
	Create(ctx context.Context, building *models.Building) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Building, error)
	Update(ctx context.Context, building *models.Building) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *repositories.BuildingFilter, limit, offset int) ([]*models.Building, int, error)
}

type buildingService struct {
	buildingRepo repositories.BuildingRepository
	userRepo     repositories.UserRepository
	cacheSvc     caching.CacheService
}

func NewBuildingService(buildingRepo repositories.BuildingRepository, userRepo repositories.UserRepository, cacheSvc caching.CacheService) BuildingService {
	return &buildingService{
		buildingRepo: buildingRepo,
		userRepo:     userRepo,
		cacheSvc:     cacheSvc,
	}
}

// validateOwner checks that the owner reference resolves to an OWNER-role user.
func (s *buildingService) validateOwner(ctx context.Context, ownerID uuid.UUID) error {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return errors.New("owner not found")
	}
	if owner.Role != models.RoleOwner {
		return errors.New("owner must be a user with the OWNER role")
	}
	return nil
}

func (s *buildingService) Create(ctx context.Context, building *models.Building) error {
	if building.Name == "" {
		return errors.New("building name is required")
	}
	if building.AddressLine1 == "" {
		return errors.New("address is required")
	}
	if err := s.validateOwner(ctx, building.OwnerID); err != nil {
		return err
	}

	building.ID = uuid.New()
	return s.buildingRepo.Create(ctx, building)
}

func (s *buildingService) GetByID(ctx context.Context, id uuid.UUID) (*models.Building, error) {
	if cached, err := s.cacheSvc.GetBuilding(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	building, err := s.buildingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.cacheSvc.SetBuilding(ctx, building, buildingCacheTTL)
	return building, nil
}

func (s *buildingService) Update(ctx context.Context, building *models.Building) error {
	if building.Name == "" {
		return errors.New("building name is required")
	}
	if err := s.validateOwner(ctx, building.OwnerID); err != nil {
		return err
	}

	if err := s.buildingRepo.Update(ctx, building); err != nil {
		return err
	}
	return s.cacheSvc.DeleteBuilding(ctx, building.ID)
}

func (s *buildingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.buildingRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.cacheSvc.DeleteBuilding(ctx, id)
}

func (s *buildingService) List(ctx context.Context, filter *repositories.BuildingFilter, limit, offset int) ([]*models.Building, int, error) {
	buildings, err := s.buildingRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.buildingRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return buildings, total, nil
}
