package client

import "context"

type BuildingsService struct {
	client *Client
}

func NewBuildingsService(client *Client) *BuildingsService {
	return &BuildingsService{client: client}
}

func (s *BuildingsService) List(ctx context.Context, filter BuildingFilter) (*ListResult[Building], error) {
	env, err := s.client.Get(ctx, "/buildings", filter.query())
	if err != nil {
		return nil, err
	}
	return decodeList[Building](env)
}

func (s *BuildingsService) Get(ctx context.Context, id string) (*Building, error) {
	env, err := s.client.Get(ctx, "/buildings/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeItem[Building](env)
}

type BuildingPayload struct {
	Name         string  `json:"name" validate:"required"`
	AddressLine1 string  `json:"addressLine1" validate:"required"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         string  `json:"city" validate:"required"`
	State        string  `json:"state" validate:"required"`
	PostalCode   string  `json:"postalCode" validate:"required"`
	OwnerID      string  `json:"ownerId" validate:"required,uuid"`
}

func (s *BuildingsService) Create(ctx context.Context, payload BuildingPayload) (*Building, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	env, err := s.client.Post(ctx, "/buildings", payload)
	if err != nil {
		return nil, err
	}
	return decodeItem[Building](env)
}

func (s *BuildingsService) Update(ctx context.Context, id string, payload BuildingPayload) (*Building, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	env, err := s.client.Put(ctx, "/buildings/"+id, payload)
	if err != nil {
		return nil, err
	}
	return decodeItem[Building](env)
}

func (s *BuildingsService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, "/buildings/"+id)
	return err
}
