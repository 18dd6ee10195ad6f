package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/models"
)

type settingsService struct {
	kv store.KeyValueStore
}

func NewSettingsService(kv store.KeyValueStore) SettingsService {
	return &settingsService{kv: kv}
}

// ToggleDefaultPrivate flips the default privacy of new bookmarks and
// returns the new value. An absent key counts as false.
func (s *settingsService) ToggleDefaultPrivate(ctx context.Context) (bool, error) {
	current, _, err := readKey[bool](ctx, s.kv, models.KeyDefaultPrivate)
	if err != nil {
		return false, err
	}

	if err = s.kv.Set(ctx, map[string]any{models.KeyDefaultPrivate: !current}); err != nil {
		return current, fmt.Errorf("store default privacy: %w", err)
	}

	return !current, nil
}

func (s *settingsService) ClearError(ctx context.Context) error {
	if err := s.kv.Remove(ctx, models.KeyPinboardError); err != nil {
		return fmt.Errorf("clear last error: %w", err)
	}
	return nil
}

func (s *settingsService) SetError(ctx context.Context, msg string) error {
	if err := s.kv.Set(ctx, map[string]any{models.KeyPinboardError: msg}); err != nil {
		return fmt.Errorf("store last error: %w", err)
	}
	return nil
}
