package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"propertyhub/internal/models"
	"propertyhub/internal/repositories"
)

const attachmentURLTTL = 15 * time.Minute

type MaintenanceService interface {
	Create(ctx context.Context, request *models.MaintenanceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error)
	Update(ctx context.Context, request *models.MaintenanceRequest) error
	Cancel(ctx context.Context, id, tenantID uuid.UUID) (*models.MaintenanceRequest, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *repositories.MaintenanceFilter, limit, offset int) ([]*models.MaintenanceRequest, int, error)
	RentedUnits(ctx context.Context, tenantID uuid.UUID) ([]*models.Unit, error)

	AddAttachment(ctx context.Context, requestID uuid.UUID, fileName, contentType string, size int64, reader io.Reader) (*models.Attachment, error)
	ListAttachments(ctx context.Context, requestID uuid.UUID) ([]*models.Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentID uuid.UUID) error
}

type maintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepository
	attachmentRepo  repositories.AttachmentRepository
	tenancyRepo     repositories.TenancyRepository
	unitRepo        repositories.UnitRepository
	storageSvc      StorageService
}

func NewMaintenanceService(maintenanceRepo repositories.MaintenanceRepository,
	attachmentRepo repositories.AttachmentRepository, tenancyRepo repositories.TenancyRepository,
	unitRepo repositories.UnitRepository, storageSvc StorageService) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		attachmentRepo:  attachmentRepo,
		tenancyRepo:     tenancyRepo,
		unitRepo:        unitRepo,
		storageSvc:      storageSvc,
	}
}

func (s *maintenanceService) Create(ctx context.Context, request *models.MaintenanceRequest) error {
	if request.Title == "" {
		return errors.New("title is required")
	}
	if request.Description == "" {
		return errors.New("description is required")
	}
	if !models.ValidMaintenanceCategory(request.Category) {
		return errors.New("invalid category")
	}
	if request.Priority == "" {
		request.Priority = models.MaintenancePriorityMedium
	}
	if !models.ValidMaintenancePriority(request.Priority) {
		return errors.New("invalid priority")
	}

	// Requests are filed by the tenant currently renting the unit.
	tenancy, err := s.tenancyRepo.GetActiveByUnit(ctx, request.UnitID)
	if err != nil || tenancy == nil {
		return errors.New("unit has no active tenancy")
	}
	if tenancy.TenantID != request.TenantID {
		return errors.New("unit is not rented by this tenant")
	}

	request.ID = uuid.New()
	request.Status = models.MaintenanceStatusPending
	request.ResolutionNotes = nil
	request.ResolvedAt = nil

	return s.maintenanceRepo.Create(ctx, request)
}

func (s *maintenanceService) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error) {
	return s.maintenanceRepo.GetByID(ctx, id)
}

func (s *maintenanceService) Update(ctx context.Context, request *models.MaintenanceRequest) error {
	existing, err := s.maintenanceRepo.GetByID(ctx, request.ID)
	if err != nil {
		return errors.New("maintenance request not found")
	}

	if !models.ValidMaintenanceStatus(request.Status) {
		return errors.New("invalid status")
	}
	if request.Status != existing.Status &&
		!models.ValidMaintenanceTransition(existing.Status, request.Status) {
		return fmt.Errorf("cannot move request from %s to %s", existing.Status, request.Status)
	}
	if !models.ValidMaintenancePriority(request.Priority) {
		return errors.New("invalid priority")
	}

	// Resolution fields only exist on completed requests.
	if request.Status == models.MaintenanceStatusCompleted {
		if request.ResolvedAt == nil {
			now := time.Now()
			request.ResolvedAt = &now
		}
	} else {
		request.ResolutionNotes = nil
		request.ResolvedAt = nil
	}

	// Unit and tenant bindings never change after filing.
	request.UnitID = existing.UnitID
	request.TenantID = existing.TenantID

	return s.maintenanceRepo.Update(ctx, request)
}

// Cancel lets the filing tenant withdraw a request, but only while it
// still sits in PENDING.
func (s *maintenanceService) Cancel(ctx context.Context, id, tenantID uuid.UUID) (*models.MaintenanceRequest, error) {
	request, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("maintenance request not found")
	}
	if request.TenantID != tenantID {
		return nil, errors.New("request was not filed by this tenant")
	}
	if request.Status != models.MaintenanceStatusPending {
		return nil, errors.New("only pending requests can be cancelled")
	}

	request.Status = models.MaintenanceStatusCancelled
	if err := s.maintenanceRepo.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *maintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	attachments, err := s.attachmentRepo.ListByRequest(ctx, id)
	if err == nil {
		for _, attachment := range attachments {
			_ = s.storageSvc.Delete(ctx, attachment.ObjectKey)
			_ = s.attachmentRepo.Delete(ctx, attachment.ID)
		}
	}
	return s.maintenanceRepo.Delete(ctx, id)
}

func (s *maintenanceService) List(ctx context.Context, filter *repositories.MaintenanceFilter, limit, offset int) ([]*models.MaintenanceRequest, int, error) {
	requests, err := s.maintenanceRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.maintenanceRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// RentedUnits returns the units a tenant can file requests against.
func (s *maintenanceService) RentedUnits(ctx context.Context, tenantID uuid.UUID) ([]*models.Unit, error) {
	return s.unitRepo.ListRentedByTenant(ctx, tenantID)
}

func (s *maintenanceService) AddAttachment(ctx context.Context, requestID uuid.UUID, fileName, contentType string, size int64, reader io.Reader) (*models.Attachment, error) {
	if _, err := s.maintenanceRepo.GetByID(ctx, requestID); err != nil {
		return nil, errors.New("maintenance request not found")
	}

	attachment := &models.Attachment{
		ID:          uuid.New(),
		RequestID:   requestID,
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
	}
	attachment.ObjectKey = fmt.Sprintf("maintenance/%s/%s-%s", requestID, attachment.ID, fileName)

	if err := s.storageSvc.Upload(ctx, attachment.ObjectKey, reader, size, contentType); err != nil {
		return nil, err
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		// Keep storage and database consistent on a failed insert.
		_ = s.storageSvc.Delete(ctx, attachment.ObjectKey)
		return nil, err
	}

	url, err := s.storageSvc.PresignedURL(ctx, attachment.ObjectKey, attachmentURLTTL)
	if err == nil {
		attachment.URL = url
	}
	return attachment, nil
}

func (s *maintenanceService) ListAttachments(ctx context.Context, requestID uuid.UUID) ([]*models.Attachment, error) {
	attachments, err := s.attachmentRepo.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	for _, attachment := range attachments {
		url, err := s.storageSvc.PresignedURL(ctx, attachment.ObjectKey, attachmentURLTTL)
		if err != nil {
			return nil, err
		}
		attachment.URL = url
	}
	return attachments, nil
}

func (s *maintenanceService) DeleteAttachment(ctx context.Context, attachmentID uuid.UUID) error {
	attachment, err := s.attachmentRepo.GetByID(ctx, attachmentID)
	if err != nil {
		return errors.New("attachment not found")
	}
	if err := s.storageSvc.Delete(ctx, attachment.ObjectKey); err != nil {
		return err
	}
	return s.attachmentRepo.Delete(ctx, attachmentID)
}
