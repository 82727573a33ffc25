package client

import (
	"context"
	"sync"
)

// Typed stores pair a resource service with the shared lifecycle
// container. Every operation runs pending -> fulfilled/rejected and
// returns the underlying error so the dispatch site can surface a
// notification.

type UsersStore struct {
	*Store[User]
	svc *UsersService
}

func NewUsersStore(svc *UsersService) *UsersStore {
	return &UsersStore{
		Store: NewStore(func(u User) string { return u.ID }),
		svc:   svc,
	}
}

func (s *UsersStore) Fetch(ctx context.Context, filter UserFilter) error {
	s.Pending(true)
	result, err := s.svc.List(ctx, filter)
	if err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledList(result.Items, result.Pagination)
	return nil
}

func (s *UsersStore) FetchByID(ctx context.Context, id string) error {
	s.Pending(false)
	user, err := s.svc.Get(ctx, id)
	if err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledCurrent(user)
	return nil
}

func (s *UsersStore) Create(ctx context.Context, payload CreateUserPayload) (*User, error) {
	s.Pending(true)
	user, err := s.svc.Create(ctx, payload)
	if err != nil {
		s.settle(err)
		return nil, err
	}
	s.FulfilledCreate(*user)
	return user, nil
}

func (s *UsersStore) Update(ctx context.Context, id string, payload UpdateUserPayload) (*User, error) {
	s.Pending(false)
	user, err := s.svc.Update(ctx, id, payload)
	if err != nil {
		s.settle(err)
		return nil, err
	}
	s.FulfilledUpdate(*user)
	return user, nil
}

func (s *UsersStore) Delete(ctx context.Context, id string) error {
	s.Pending(false)
	if err := s.svc.Delete(ctx, id); err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledDelete(id)
	return nil
}

// Activate applies a fulfilled update even when the user was already
// active; the server reports success either way.
func (s *UsersStore) Activate(ctx context.Context, id string) error {
	s.Pending(false)
	user, err := s.svc.Activate(ctx, id)
	if err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledUpdate(*user)
	return nil
}

func (s *UsersStore) Deactivate(ctx context.Context, id string) error {
	s.Pending(false)
	user, err := s.svc.Deactivate(ctx, id)
	if err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledUpdate(*user)
	return nil
}

type BuildingsStore struct {
	*Store[Building]
	svc *BuildingsService
}

func NewBuildingsStore(svc *BuildingsService) *BuildingsStore {
	return &BuildingsStore{
		Store: NewStore(func(b Building) string { return b.ID }),
		svc:   svc,
	}
}

func (s *BuildingsStore) Fetch(ctx context.Context, filter BuildingFilter) error {
	s.Pending(true)
	result, err := s.svc.List(ctx, filter)
	if err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledList(result.Items, result.Pagination)
	return nil
}

func (s *BuildingsStore) FetchByID(ctx context.Context, id string) error {
	s.Pending(false)
	building, err := s.svc.Get(ctx, id)
	if err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledCurrent(building)
	return nil
}

func (s *BuildingsStore) Create(ctx context.Context, payload BuildingPayload) (*Building, error) {
	s.Pending(true)
	building, err := s.svc.Create(ctx, payload)
	if err != nil {
		s.settle(err)
		return nil, err
	}
	s.FulfilledCreate(*building)
	return building, nil
}

func (s *BuildingsStore) Update(ctx context.Context, id string, payload BuildingPayload) (*Building, error) {
	s.Pending(false)
	building, err := s.svc.Update(ctx, id, payload)
	if err != nil {
		s.settle(err)
		return nil, err
	}
	s.FulfilledUpdate(*building)
	return building, nil
}

func (s *BuildingsStore) Delete(ctx context.Context, id string) error {
	s.Pending(false)
	if err := s.svc.Delete(ctx, id); err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledDelete(id)
	return nil
}

type UnitsStore struct {
	*Store[Unit]
	svc *UnitsService
}

func NewUnitsStore(svc *UnitsService) *UnitsStore {
	return &UnitsStore{
		Store: NewStore(func(u Unit) string { return u.ID }),
		svc:   svc,
	}
}

func (s *UnitsStore) Fetch(ctx context.Context, filter UnitFilter) error {
	s.Pending(true)
	result, err := s.svc.List(ctx, filter)
	if err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledList(result.Items, result.Pagination)
	return nil
}

func (s *UnitsStore) FetchByID(ctx context.Context, id string) error {
	s.Pending(false)
	unit, err := s.svc.Get(ctx, id)
	if err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledCurrent(unit)
	return nil
}

func (s *UnitsStore) Create(ctx context.Context, payload UnitPayload) (*Unit, error) {
	s.Pending(true)
	unit, err := s.svc.Create(ctx, payload)
	if err != nil {
		s.settle(err)
		return nil, err
	}
	s.FulfilledCreate(*unit)
	return unit, nil
}

func (s *UnitsStore) Update(ctx context.Context, id string, payload UnitPayload) (*Unit, error) {
	s.Pending(false)
	unit, err := s.svc.Update(ctx, id, payload)
	if err != nil {
		s.settle(err)
		return nil, err
	}
	s.FulfilledUpdate(*unit)
	return unit, nil
}

func (s *UnitsStore) Delete(ctx context.Context, id string) error {
	s.Pending(false)
	if err := s.svc.Delete(ctx, id); err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledDelete(id)
	return nil
}

// TenanciesStore additionally tracks the tenant-self collection filled
// by FetchMyTenancies; it is separate from the admin/owner list.
type TenanciesStore struct {
	*Store[Tenancy]
	svc *TenanciesService

	myMu        sync.Mutex
	myTenancies []Tenancy
}

func NewTenanciesStore(svc *TenanciesService) *TenanciesStore {
	return &TenanciesStore{
		Store: NewStore(func(t Tenancy) string { return t.ID }),
		svc:   svc,
	}
}

func (s *TenanciesStore) MyTenancies() []Tenancy {
	s.myMu.Lock()
	defer s.myMu.Unlock()
	out := make([]Tenancy, len(s.myTenancies))
	copy(out, s.myTenancies)
	return out
}

func (s *TenanciesStore) Fetch(ctx context.Context, filter TenancyFilter) error {
	s.Pending(true)
	result, err := s.svc.List(ctx, filter)
	if err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledList(result.Items, result.Pagination)
	return nil
}

func (s *TenanciesStore) FetchMyTenancies(ctx context.Context) error {
	s.Pending(false)
	tenancies, err := s.svc.MyTenancies(ctx)
	if err != nil {
		s.settle(err)
		return err
	}
	s.myMu.Lock()
	s.myTenancies = tenancies
	s.myMu.Unlock()
	s.Fulfilled()
	return nil
}

func (s *TenanciesStore) FetchByID(ctx context.Context, id string) error {
	s.Pending(false)
	tenancy, err := s.svc.Get(ctx, id)
	if err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledCurrent(tenancy)
	return nil
}

func (s *TenanciesStore) Create(ctx context.Context, payload TenancyPayload) (*Tenancy, error) {
	s.Pending(true)
	tenancy, err := s.svc.Create(ctx, payload)
	if err != nil {
		s.settle(err)
		return nil, err
	}
	s.FulfilledCreate(*tenancy)
	return tenancy, nil
}

func (s *TenanciesStore) Update(ctx context.Context, id string, payload TenancyPayload) (*Tenancy, error) {
	s.Pending(false)
	tenancy, err := s.svc.Update(ctx, id, payload)
	if err != nil {
		s.settle(err)
		return nil, err
	}
	s.FulfilledUpdate(*tenancy)
	return tenancy, nil
}

// End patches the local row from the mutation response rather than
// refetching the whole list.
func (s *TenanciesStore) End(ctx context.Context, id string, payload EndTenancyPayload) (*Tenancy, error) {
	s.Pending(false)
	tenancy, err := s.svc.End(ctx, id, payload)
	if err != nil {
		s.settle(err)
		return nil, err
	}
	s.FulfilledUpdate(*tenancy)
	return tenancy, nil
}

func (s *TenanciesStore) Delete(ctx context.Context, id string) error {
	s.Pending(false)
	if err := s.svc.Delete(ctx, id); err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledDelete(id)
	return nil
}

// MaintenanceStore additionally tracks the tenant's rentable units used
// by the new-request form.
type MaintenanceStore struct {
	*Store[MaintenanceRequest]
	svc *MaintenanceService

	myMu    sync.Mutex
	myUnits []Unit
}

func NewMaintenanceStore(svc *MaintenanceService) *MaintenanceStore {
	return &MaintenanceStore{
		Store: NewStore(func(m MaintenanceRequest) string { return m.ID }),
		svc:   svc,
	}
}

func (s *MaintenanceStore) MyUnits() []Unit {
	s.myMu.Lock()
	defer s.myMu.Unlock()
	out := make([]Unit, len(s.myUnits))
	copy(out, s.myUnits)
	return out
}

func (s *MaintenanceStore) Fetch(ctx context.Context, filter MaintenanceFilter) error {
	s.Pending(true)
	result, err := s.svc.List(ctx, filter)
	if err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledList(result.Items, result.Pagination)
	return nil
}

func (s *MaintenanceStore) FetchMyUnits(ctx context.Context) error {
	units, err := s.svc.MyUnits(ctx)
	if err != nil {
		s.settle(err)
		return err
	}
	s.myMu.Lock()
	s.myUnits = units
	s.myMu.Unlock()
	return nil
}

func (s *MaintenanceStore) FetchByID(ctx context.Context, id string) error {
	s.Pending(false)
	request, err := s.svc.Get(ctx, id)
	if err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledCurrent(request)
	return nil
}

func (s *MaintenanceStore) Create(ctx context.Context, payload CreateMaintenancePayload) (*MaintenanceRequest, error) {
	s.Pending(true)
	request, err := s.svc.Create(ctx, payload)
	if err != nil {
		s.settle(err)
		return nil, err
	}
	s.FulfilledCreate(*request)
	return request, nil
}

func (s *MaintenanceStore) Update(ctx context.Context, id string, payload UpdateMaintenancePayload) (*MaintenanceRequest, error) {
	s.Pending(false)
	request, err := s.svc.Update(ctx, id, payload)
	if err != nil {
		s.settle(err)
		return nil, err
	}
	s.FulfilledUpdate(*request)
	return request, nil
}

func (s *MaintenanceStore) Cancel(ctx context.Context, id string) (*MaintenanceRequest, error) {
	s.Pending(false)
	request, err := s.svc.Cancel(ctx, id)
	if err != nil {
		s.settle(err)
		return nil, err
	}
	s.FulfilledUpdate(*request)
	return request, nil
}

func (s *MaintenanceStore) Delete(ctx context.Context, id string) error {
	s.Pending(false)
	if err := s.svc.Delete(ctx, id); err != nil {
		s.settle(err)
		return err
	}
	s.FulfilledDelete(id)
	return nil
}
