package client

import "context"

type UsersService struct {
	client *Client
}

func NewUsersService(client *Client) *UsersService {
	return &UsersService{client: client}
}

func (s *UsersService) List(ctx context.Context, filter UserFilter) (*ListResult[User], error) {
	env, err := s.client.Get(ctx, "/users", filter.query())
	if err != nil {
		return nil, err
	}
	return decodeList[User](env)
}

func (s *UsersService) Get(ctx context.Context, id string) (*User, error) {
	env, err := s.client.Get(ctx, "/users/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeItem[User](env)
}

type CreateUserPayload struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role" validate:"required,oneof=ADMIN OWNER TENANT"`
}

func (s *UsersService) Create(ctx context.Context, payload CreateUserPayload) (*User, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	env, err := s.client.Post(ctx, "/users", payload)
	if err != nil {
		return nil, err
	}
	return decodeItem[User](env)
}

// UpdateUserPayload carries no email: email is immutable after creation.
type UpdateUserPayload struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role" validate:"required,oneof=ADMIN OWNER TENANT"`
}

func (s *UsersService) Update(ctx context.Context, id string, payload UpdateUserPayload) (*User, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	env, err := s.client.Put(ctx, "/users/"+id, payload)
	if err != nil {
		return nil, err
	}
	return decodeItem[User](env)
}

func (s *UsersService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, "/users/"+id)
	return err
}

// Activate is an idempotent state-only PATCH with no body.
func (s *UsersService) Activate(ctx context.Context, id string) (*User, error) {
	env, err := s.client.Patch(ctx, "/users/"+id+"/activate", nil)
	if err != nil {
		return nil, err
	}
	return decodeItem[User](env)
}

func (s *UsersService) Deactivate(ctx context.Context, id string) (*User, error) {
	env, err := s.client.Patch(ctx, "/users/"+id+"/deactivate", nil)
	if err != nil {
		return nil, err
	}
	return decodeItem[User](env)
}

func (s *UsersService) GetProfile(ctx context.Context) (*User, error) {
	env, err := s.client.Get(ctx, "/users/profile", nil)
	if err != nil {
		return nil, err
	}
	return decodeItem[User](env)
}

type UpdateProfilePayload struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Phone     *string `json:"phone,omitempty"`
}

func (s *UsersService) UpdateProfile(ctx context.Context, payload UpdateProfilePayload) (*User, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	env, err := s.client.Put(ctx, "/users/profile", payload)
	if err != nil {
		return nil, err
	}
	return decodeItem[User](env)
}
