package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pin-keeper/internal/mock"
	"github.com/MKhiriev/go-pin-keeper/models"
)

func TestToggleDefaultPrivate(t *testing.T) {
	tests := []struct {
		name   string
		stored map[string]json.RawMessage
		want   bool
	}{
		{"absent becomes true", map[string]json.RawMessage{}, true},
		{"false becomes true", map[string]json.RawMessage{models.KeyDefaultPrivate: json.RawMessage(`false`)}, true},
		{"true becomes false", map[string]json.RawMessage{models.KeyDefaultPrivate: json.RawMessage(`true`)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			kv := mock.NewMockKeyValueStore(ctrl)
			ctx := context.Background()

			kv.EXPECT().Get(ctx, models.KeyDefaultPrivate).Return(tt.stored, nil)
			kv.EXPECT().Set(ctx, map[string]any{models.KeyDefaultPrivate: tt.want}).Return(nil)

			got, err := NewSettingsService(kv).ToggleDefaultPrivate(ctx)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettings_LastError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueStore(ctrl)
	ctx := context.Background()
	svc := NewSettingsService(kv)

	kv.EXPECT().Set(ctx, map[string]any{models.KeyPinboardError: "oops"}).Return(nil)
	kv.EXPECT().Remove(ctx, models.KeyPinboardError).Return(nil)

	require.NoError(t, svc.SetError(ctx, "oops"))
	require.NoError(t, svc.ClearError(ctx))
}
