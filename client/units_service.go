package client

import "context"

type UnitsService struct {
	client *Client
}

func NewUnitsService(client *Client) *UnitsService {
	return &UnitsService{client: client}
}

func (s *UnitsService) List(ctx context.Context, filter UnitFilter) (*ListResult[Unit], error) {
	env, err := s.client.Get(ctx, "/units", filter.query())
	if err != nil {
		return nil, err
	}
	return decodeList[Unit](env)
}

func (s *UnitsService) Get(ctx context.Context, id string) (*Unit, error) {
	env, err := s.client.Get(ctx, "/units/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeItem[Unit](env)
}

type UnitPayload struct {
	BuildingID string   `json:"buildingId" validate:"required,uuid"`
	UnitNumber string   `json:"unitNumber" validate:"required"`
	Floor      *int     `json:"floor,omitempty"`
	Bedrooms   int      `json:"bedrooms" validate:"min=0"`
	Bathrooms  int      `json:"bathrooms" validate:"min=0"`
	AreaSqft   *float64 `json:"areaSqft,omitempty"`
	RentAmount float64  `json:"rentAmount" validate:"required,gt=0"`
	UnitType   string   `json:"unitType" validate:"required,oneof=APARTMENT STUDIO TOWNHOUSE COMMERCIAL"`
	Status     string   `json:"status,omitempty" validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
}

func (s *UnitsService) Create(ctx context.Context, payload UnitPayload) (*Unit, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	env, err := s.client.Post(ctx, "/units", payload)
	if err != nil {
		return nil, err
	}
	return decodeItem[Unit](env)
}

func (s *UnitsService) Update(ctx context.Context, id string, payload UnitPayload) (*Unit, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	env, err := s.client.Put(ctx, "/units/"+id, payload)
	if err != nil {
		return nil, err
	}
	return decodeItem[Unit](env)
}

func (s *UnitsService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, "/units/"+id)
	return err
}
