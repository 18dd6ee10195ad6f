package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/validators"
	"github.com/MKhiriev/go-pin-keeper/models"
)

type bookmarkService struct {
	remote    adapter.RemoteClient
	sync      SyncService
	validator validators.Validator

	logger *logger.Logger
}

func NewBookmarkService(remote adapter.RemoteClient, sync SyncService, log *logger.Logger) BookmarkService {
	return &bookmarkService{
		remote:    remote,
		sync:      sync,
		validator: validators.NewBookmarkValidator(),
		logger:    log,
	}
}

// Add implements BookmarkService. A failing follow-up sync does not fail
// the save; its error is already persisted by the sync service.
func (b *bookmarkService) Add(ctx context.Context, bookmark models.NewBookmark) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	bookmark.Tags = models.DedupTags(bookmark.Tags)
	if err := b.validator.Validate(ctx, bookmark); err != nil {
		return models.SyncResult{}, fmt.Errorf("%w: %w", ErrInvalidBookmark, err)
	}

	if err := b.remote.AddBookmark(ctx, bookmark); err != nil {
		log.Err(err).Str("func", "bookmarkService.Add").Str("url", bookmark.URL).Msg("failed to save bookmark")
		return models.SyncResult{}, fmt.Errorf("save bookmark: %w", err)
	}

	result, err := b.sync.Sync(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "bookmarkService.Add").Msg("bookmark saved, follow-up sync failed")
	}

	return result, nil
}

func (b *bookmarkService) SuggestTags(ctx context.Context, url string) ([]string, error) {
	tags, err := b.remote.SuggestTags(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("suggest tags: %w", err)
	}
	return tags, nil
}
