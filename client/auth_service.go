package client

import "context"

// AuthSession is the login payload's response: the bearer token plus the
// authenticated user.
type AuthSession struct {
	Token        string `json:"token"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

type AuthService struct {
	client  *Client
	session SessionStore
}

func NewAuthService(client *Client, session SessionStore) *AuthService {
	return &AuthService{client: client, session: session}
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates and persists the token and user into the session.
func (s *AuthService) Login(ctx context.Context, payload LoginPayload) (*AuthSession, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	env, err := s.client.Post(ctx, "/auth/login", payload)
	if err != nil {
		return nil, err
	}
	auth, err := decodeItem[AuthSession](env)
	if err != nil {
		return nil, err
	}

	s.session.SetToken(auth.Token)
	s.session.SetUser(auth.User)
	return auth, nil
}

// Logout clears local persistence regardless of the server's outcome;
// the server call is best effort.
func (s *AuthService) Logout(ctx context.Context) {
	_, _ = s.client.Post(ctx, "/auth/logout", nil)
	s.session.Clear()
}

// Me fetches the authenticated user's own record.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	env, err := s.client.Get(ctx, "/auth/me", nil)
	if err != nil {
		return nil, err
	}
	return decodeItem[User](env)
}

type ChangePasswordPayload struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	ConfirmPassword string `json:"-" validate:"eqfield=NewPassword"`
}

func (s *AuthService) ChangePassword(ctx context.Context, payload ChangePasswordPayload) error {
	if err := validatePayload(payload); err != nil {
		return err
	}
	_, err := s.client.Post(ctx, "/auth/change-password", payload)
	return err
}
