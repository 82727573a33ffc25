package client

import (
	"context"
	"time"
)

type TenanciesService struct {
	client *Client
}

func NewTenanciesService(client *Client) *TenanciesService {
	return &TenanciesService{client: client}
}

func (s *TenanciesService) List(ctx context.Context, filter TenancyFilter) (*ListResult[Tenancy], error) {
	env, err := s.client.Get(ctx, "/tenancies", filter.query())
	if err != nil {
		return nil, err
	}
	return decodeList[Tenancy](env)
}

// MyTenancies returns the calling tenant's own tenancy history.
func (s *TenanciesService) MyTenancies(ctx context.Context) ([]Tenancy, error) {
	env, err := s.client.Get(ctx, "/tenancies/my-tenancies", nil)
	if err != nil {
		return nil, err
	}
	result, err := decodeList[Tenancy](env)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (s *TenanciesService) Get(ctx context.Context, id string) (*Tenancy, error) {
	env, err := s.client.Get(ctx, "/tenancies/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeItem[Tenancy](env)
}

type TenancyPayload struct {
	TenantID      string    `json:"tenantId" validate:"required,uuid"`
	UnitID        string    `json:"unitId" validate:"required,uuid"`
	StartDate     time.Time `json:"startDate" validate:"required"`
	EndDate       time.Time `json:"endDate" validate:"required,gtfield=StartDate"`
	MonthlyRent   float64   `json:"monthlyRent" validate:"min=0"`
	DepositAmount float64   `json:"depositAmount" validate:"min=0"`
}

func (s *TenanciesService) Create(ctx context.Context, payload TenancyPayload) (*Tenancy, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	env, err := s.client.Post(ctx, "/tenancies", payload)
	if err != nil {
		return nil, err
	}
	return decodeItem[Tenancy](env)
}

func (s *TenanciesService) Update(ctx context.Context, id string, payload TenancyPayload) (*Tenancy, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	env, err := s.client.Put(ctx, "/tenancies/"+id, payload)
	if err != nil {
		return nil, err
	}
	return decodeItem[Tenancy](env)
}

type EndTenancyPayload struct {
	EndDate time.Time `json:"endDate"`
	Reason  *string   `json:"reason,omitempty"`
}

// End closes a tenancy early and frees its unit.
func (s *TenanciesService) End(ctx context.Context, id string, payload EndTenancyPayload) (*Tenancy, error) {
	env, err := s.client.Patch(ctx, "/tenancies/"+id+"/end", payload)
	if err != nil {
		return nil, err
	}
	return decodeItem[Tenancy](env)
}

func (s *TenanciesService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, "/tenancies/"+id)
	return err
}
