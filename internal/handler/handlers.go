package handler

import (
	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/handler/http"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(dispatcher http.Dispatcher, cfg config.RouterConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(dispatcher, cfg.HashKey, logger)}, nil
}
