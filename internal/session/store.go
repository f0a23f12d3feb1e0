// Package session tracks whether the portal viewer is logged in. State
// lives in a Storage under the authToken and userData keys.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"internportal/internal/domain"
)

const (
	TokenKey = "authToken"
	UserKey  = "userData"
)

// State is the navigation-relevant session state.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Store is the session of one viewer.
type Store struct {
	storage Storage
	token   string
	user    *domain.User
}

// Open reads the session from storage. Both keys must be present and the
// user must decode; an undecodable user clears both keys.
func Open(storage Storage) *Store {
	s := &Store{storage: storage}
	token, hasToken := storage.GetItem(TokenKey)
	raw, hasUser := storage.GetItem(UserKey)
	if !hasToken || !hasUser || token == "" || raw == "" {
		return s
	}
	var user *domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.clear()
		return s
	}
	if user != nil {
		s.token = token
		s.user = user
	}
	return s
}

func (s *Store) State() State {
	if s.user != nil {
		return Authenticated
	}
	return Anonymous
}

// User returns the cached user when authenticated.
func (s *Store) User() (domain.User, bool) {
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

func (s *Store) Token() string {
	return s.token
}

// Login persists token and user and makes the session authenticated.
func (s *Store) Login(token string, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := s.storage.SetItem(TokenKey, token); err != nil {
		return fmt.Errorf("session: store token: %w", err)
	}
	if err := s.storage.SetItem(UserKey, string(raw)); err != nil {
		s.storage.RemoveItem(TokenKey)
		return fmt.Errorf("session: store user: %w", err)
	}
	s.token = token
	s.user = &user
	return nil
}

// Logout removes both keys and makes the session anonymous.
func (s *Store) Logout() {
	s.clear()
}

func (s *Store) clear() {
	s.storage.RemoveItem(TokenKey)
	s.storage.RemoveItem(UserKey)
	s.token = ""
	s.user = nil
}

type ctxKey struct{}

// NewContext returns a context carrying s.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the store put in ctx by NewContext.
func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	return s, ok
}
