package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/together-notify/internal/domain"
	"github.com/bnema/together-notify/internal/ports"
)

const (
	dirMode  = 0o700
	fileMode = 0o600
)

// Store reads the profile document the web UI persists. The engine only reads
// it; Save exists for the CLI.
type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.ProfileStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) Get(ctx context.Context) (domain.Profile, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Profile{}, false, nil
		}
		return domain.Profile{}, false, fmt.Errorf("read profile: %w", err)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return domain.Profile{}, false, nil
	}

	profile, err := domain.ParseProfile(raw)
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("parse profile %s: %w", s.path, err)
	}

	return profile, true, nil
}

type profileDocument struct {
	Name    string          `json:"name,omitempty"`
	Partner partnerDocument `json:"partner"`
}

type partnerDocument struct {
	Name string `json:"name"`
}

func (s *Store) Save(ctx context.Context, profile domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !profile.HasPartner() {
		return fmt.Errorf("%w: partner name is required", domain.ErrProfileInvalid)
	}

	data, err := json.Marshal(profileDocument{
		Name:    strings.TrimSpace(profile.Name),
		Partner: partnerDocument{Name: strings.TrimSpace(profile.Partner)},
	})
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, fileMode); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}

	return nil
}
