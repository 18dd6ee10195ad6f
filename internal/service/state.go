package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/store"
)

// readKey decodes one persisted key. ok is false when the key is absent.
func readKey[T any](ctx context.Context, kv store.KeyValueStore, key string) (value T, ok bool, err error) {
	values, err := kv.Get(ctx, key)
	if err != nil {
		return value, false, fmt.Errorf("read %s: %w", key, err)
	}

	raw, ok := values[key]
	if !ok {
		return value, false, nil
	}

	if err = json.Unmarshal(raw, &value); err != nil {
		return value, false, fmt.Errorf("%w (key=%s): %w", ErrDecodingState, key, err)
	}

	return value, true, nil
}
