package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/upstream"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store holds the console session: the bearer token, the decoded user
// profile and the sidebar preference. All navigation decisions hang off
// its state; the store itself never redirects.
type Store struct {
	mu         sync.RWMutex
	client     *upstream.Client
	storage    Storage
	id         string
	user       *models.User
	token      string
	loading    bool
	generation uint64
}

// NewStore creates a store in the loading state. Bootstrap resolves it.
func NewStore(client *upstream.Client, storage Storage) *Store {
	return &Store{
		client:  client,
		storage: storage,
		id:      uuid.NewString(),
		loading: true,
	}
}

// Bootstrap validates a previously stored token by fetching the
// profile. A failed fetch is swallowed: the token is cleared and the
// console starts logged out. Route guards handle the redirect.
func (s *Store) Bootstrap(ctx context.Context) {
	token, ok := s.storage.Get(KeyAuthToken)
	if !ok || token == "" {
		s.resolve(nil, "")
		return
	}

	s.mu.RLock()
	generation := s.generation
	s.mu.RUnlock()

	user, err := s.client.FetchProfile(ctx, token)
	if err != nil {
		logrus.Warnf("Session %s: stored token rejected, clearing: %v", s.id, err)
		if delErr := s.storage.Delete(KeyAuthToken); delErr != nil {
			logrus.Errorf("Failed to clear stored token: %v", delErr)
		}
		s.resolve(nil, "")
		return
	}

	// A logout during the fetch wins over the stale profile.
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if s.generation != generation {
		return
	}
	s.user = user
	s.token = token
	logrus.Infof("Session %s: restored for %s (%s)", s.id, user.Name, user.Role)
}

// Login authenticates against the remote API, stores the token and
// fetches the profile. On any failure the session is left untouched
// and the error is returned for the caller to display.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user := resp.User
	if user.ID == "" {
		// Some deployments return only the token; the profile
		// endpoint is the source of truth either way.
		fetched, err := s.client.FetchProfile(ctx, resp.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch profile after login: %w", err)
		}
		user = *fetched
	}

	if err := s.storage.Set(KeyAuthToken, resp.Token); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.token = resp.Token
	s.loading = false
	s.mu.Unlock()

	logrus.Infof("Session %s: %s logged in", s.id, user.Email)
	return &user, nil
}

// Logout clears the session and the stored token
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.generation++
	s.mu.Unlock()

	if err := s.storage.Delete(KeyAuthToken); err != nil {
		logrus.Errorf("Failed to clear stored token: %v", err)
	}
	logrus.Infof("Session %s: logged out", s.id)
}

// User returns the signed-in user, or nil
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the bearer token, or empty when logged out
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Loading is true until the initial profile check resolves
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetUser replaces the cached profile after an own-profile edit
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// SidebarExpanded returns the persisted sidebar preference, defaulting
// to expanded when never set.
func (s *Store) SidebarExpanded() bool {
	raw, ok := s.storage.Get(KeySidebarExpanded)
	if !ok {
		return true
	}
	var expanded bool
	if err := json.Unmarshal([]byte(raw), &expanded); err != nil {
		return true
	}
	return expanded
}

// SetSidebarExpanded persists the sidebar preference
func (s *Store) SetSidebarExpanded(expanded bool) error {
	data, err := json.Marshal(expanded)
	if err != nil {
		return err
	}
	return s.storage.Set(KeySidebarExpanded, string(data))
}

// resolve finishes the loading phase with the given state
func (s *Store) resolve(user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
	s.loading = false
}
