package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/models"
)

type credentialService struct {
	kv     store.KeyValueStore
	logger *logger.Logger
}

func NewCredentialService(kv store.KeyValueStore, log *logger.Logger) CredentialService {
	return &credentialService{kv: kv, logger: log}
}

func (c *credentialService) Get(ctx context.Context) (models.Credential, bool, error) {
	token, ok, err := readKey[models.Credential](ctx, c.kv, models.KeyToken)
	if err != nil {
		return "", false, err
	}

	return token, ok && token != "", nil
}

func (c *credentialService) Set(ctx context.Context, token models.Credential) error {
	if err := c.kv.Set(ctx, map[string]any{models.KeyToken: token}); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "credentialService.Set").Str("user", token.Username()).Msg("token stored")
	return nil
}

func (c *credentialService) Clear(ctx context.Context) error {
	if err := c.kv.Remove(ctx, models.KeyToken, models.KeyBookmarks, models.KeyUpdateTime); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "credentialService.Clear").Msg("token and bookmarks cleared")
	return nil
}
