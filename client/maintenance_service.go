package client

import (
	"context"
	"io"
	"time"
)

type MaintenanceService struct {
	client *Client
}

func NewMaintenanceService(client *Client) *MaintenanceService {
	return &MaintenanceService{client: client}
}

func (s *MaintenanceService) List(ctx context.Context, filter MaintenanceFilter) (*ListResult[MaintenanceRequest], error) {
	env, err := s.client.Get(ctx, "/maintenance", filter.query())
	if err != nil {
		return nil, err
	}
	return decodeList[MaintenanceRequest](env)
}

func (s *MaintenanceService) Get(ctx context.Context, id string) (*MaintenanceRequest, error) {
	env, err := s.client.Get(ctx, "/maintenance/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeItem[MaintenanceRequest](env)
}

// MyUnits returns the tenant's active-tenancy units, used to populate
// the new-request form's unit selector.
func (s *MaintenanceService) MyUnits(ctx context.Context) ([]Unit, error) {
	env, err := s.client.Get(ctx, "/maintenance/my-units", nil)
	if err != nil {
		return nil, err
	}
	result, err := decodeList[Unit](env)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

type CreateMaintenancePayload struct {
	UnitID      string `json:"unitId" validate:"required,uuid"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=PLUMBING ELECTRICAL HVAC APPLIANCE STRUCTURAL OTHER"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}

func (s *MaintenanceService) Create(ctx context.Context, payload CreateMaintenancePayload) (*MaintenanceRequest, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	env, err := s.client.Post(ctx, "/maintenance", payload)
	if err != nil {
		return nil, err
	}
	return decodeItem[MaintenanceRequest](env)
}

type UpdateMaintenancePayload struct {
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description" validate:"required"`
	Priority        string     `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH URGENT"`
	Status          string     `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	ResolutionNotes *string    `json:"resolutionNotes,omitempty"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
}

func (s *MaintenanceService) Update(ctx context.Context, id string, payload UpdateMaintenancePayload) (*MaintenanceRequest, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	env, err := s.client.Put(ctx, "/maintenance/"+id, payload)
	if err != nil {
		return nil, err
	}
	return decodeItem[MaintenanceRequest](env)
}

// Cancel withdraws the tenant's own request while it is still pending.
func (s *MaintenanceService) Cancel(ctx context.Context, id string) (*MaintenanceRequest, error) {
	env, err := s.client.Patch(ctx, "/maintenance/"+id+"/cancel", nil)
	if err != nil {
		return nil, err
	}
	return decodeItem[MaintenanceRequest](env)
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, "/maintenance/"+id)
	return err
}

func (s *MaintenanceService) UploadAttachment(ctx context.Context, id, fileName string, content io.Reader) (*Attachment, error) {
	env, err := s.client.Upload(ctx, "/maintenance/"+id+"/attachments", fileName, content)
	if err != nil {
		return nil, err
	}
	return decodeItem[Attachment](env)
}

func (s *MaintenanceService) ListAttachments(ctx context.Context, id string) ([]Attachment, error) {
	env, err := s.client.Get(ctx, "/maintenance/"+id+"/attachments", nil)
	if err != nil {
		return nil, err
	}
	result, err := decodeList[Attachment](env)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (s *MaintenanceService) DeleteAttachment(ctx context.Context, id, attachmentID string) error {
	_, err := s.client.Delete(ctx, "/maintenance/"+id+"/attachments/"+attachmentID)
	return err
}
