package http

import (
	"context"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/router"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// Dispatcher executes decoded commands. *router.Dispatcher implements it.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd router.Command) (models.MessageResponse, error)
}

type Handler struct {
	dispatcher Dispatcher
	hasher     *utils.Hasher
	traceIDs   *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler returns a Handler. An empty hashKey disables signature checks.
func NewHandler(dispatcher Dispatcher, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		dispatcher: dispatcher,
		traceIDs:   utils.NewUUIDGenerator(),
		logger:     logger,
	}
	if hashKey != "" {
		h.hasher = utils.NewHasher(hashKey)
	}
	return h
}
