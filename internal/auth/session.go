package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/samgau/atelier-storefront/pkg/enums"
	"github.com/samgau/atelier-storefront/pkg/logger"
	"github.com/samgau/atelier-storefront/pkg/types"
)

type authAPI interface {
	Me(ctx context.Context) (*types.Identity, error)
	Login(ctx context.Context, creds Credentials) error
	Register(ctx context.Context, input RegisterInput) error
	Logout(ctx context.Context) error
}

// Store is the single source of truth for "who is logged in". It holds
// only the resulting identity; the credential lives in the transport's
// cookie jar and is never inspected here.
type Store struct {
	mu       sync.RWMutex
	state    enums.SessionState
	identity *types.Identity

	auth authAPI
	logg *logger.Logger
}

func NewStore(auth authAPI, logg *logger.Logger) (*Store, error) {
	if auth == nil {
		return nil, fmt.Errorf("auth client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Store{
		state: enums.SessionStateLoading,
		auth:  auth,
		logg:  logg,
	}, nil
}

func (s *Store) State() enums.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Current returns a copy of the identity; callers never share the
// store's pointer.
func (s *Store) Current() (types.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return types.Identity{}, false
	}
	return *s.identity, true
}

// Refresh re-fetches the identity from the server. It never returns an
// error: any failure, network or 401 alike, degrades to signed-out.
func (s *Store) Refresh(ctx context.Context) *types.Identity {
	identity, err := s.auth.Me(ctx)
	if err != nil {
		s.logg.Debug(s.logg.WithField(ctx, "error", err.Error()), "identity fetch failed, treating as signed out")
		s.set(nil)
		return nil
	}
	snapshot := *identity
	s.set(&snapshot)
	return &snapshot
}

// Login submits credentials and, on success, refreshes the identity.
// On failure the current identity is left untouched.
func (s *Store) Login(ctx context.Context, creds Credentials) error {
	if err := s.auth.Login(ctx, creds); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

// Register creates the account, logs in with the same credentials, and
// refreshes the identity. Registration implies auto-login.
func (s *Store) Register(ctx context.Context, input RegisterInput) error {
	if err := s.auth.Register(ctx, input); err != nil {
		return err
	}
	if err := s.auth.Login(ctx, Credentials{Email: input.Email, Password: input.Password}); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

// Logout invalidates the server-side session best-effort and clears
// the local identity unconditionally. A failed invalidation leaves a
// dangling server session, which the server is left to expire.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "server-side logout failed, clearing local session anyway")
	}
	s.set(nil)
}

func (s *Store) set(identity *types.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	if identity == nil {
		s.state = enums.SessionStateUnauthenticated
		return
	}
	s.state = enums.SessionStateAuthenticated
}
