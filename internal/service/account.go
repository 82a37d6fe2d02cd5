package service

import (
	"context"
	"net/url"

	"github.com/forkful/client/internal/notify"
	"github.com/forkful/client/internal/store"
	"github.com/forkful/client/internal/transport"
	"github.com/forkful/client/internal/types"
)

// AccountService handles registration, cookie-based login/logout, and the
// session check. It is the only writer of the auth store.
type AccountService struct {
	api      *transport.Client
	auth     *store.AuthStore
	notifier notify.Notifier
}

// NewAccountService creates a new AccountService instance
func NewAccountService(api *transport.Client, auth *store.AuthStore, n notify.Notifier) *AccountService {
	return &AccountService{api: api, auth: auth, notifier: n}
}

// Register creates a new account. Validation failures surface as a
// StatusError whose Fields carry the API's field-level messages; the caller
// logs in separately afterwards.
func (s *AccountService) Register(ctx context.Context, req types.RegisterRequest) error {
	return s.api.Post(ctx, "/api/accounts/register", nil, req, nil)
}

// Login establishes a cookie session and loads the session user into the
// auth store
func (s *AccountService) Login(ctx context.Context, email, password string) (*types.User, error) {
	q := url.Values{"useCookies": {"true"}}
	body := types.LoginRequest{Email: email, Password: password}
	if err := s.api.Post(ctx, "/api/login", q, body, nil); err != nil {
		return nil, err
	}

	var user types.User
	if err := s.api.Get(ctx, "/api/accounts/user-info", nil, &user); err != nil {
		return nil, err
	}
	s.auth.SetUser(&user)
	return &user, nil
}

// Logout ends the session and clears the auth store
func (s *AccountService) Logout(ctx context.Context) error {
	if err := s.api.Post(ctx, "/api/accounts/logout", nil, nil, nil); err != nil {
		s.notifier.Error("Failed to log out")
		return err
	}
	s.auth.ClearUser()
	return nil
}

// SessionCheck asks the API who the cookie belongs to. A 401 is not an
// error; it is the defined signal for "no authenticated user" and clears
// the auth store silently.
func (s *AccountService) SessionCheck(ctx context.Context) (*types.User, error) {
	var user types.User
	if err := s.api.Get(ctx, "/api/accounts/user-info", nil, &user); err != nil {
		if transport.IsUnauthorized(err) {
			s.auth.ClearUser()
			return nil, nil
		}
		return nil, err
	}
	s.auth.SetUser(&user)
	return &user, nil
}
