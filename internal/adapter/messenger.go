package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/utils"
	"github.com/MKhiriev/go-pin-keeper/models"
)

const messagesPath = "/api/messages"

// HTTPMessenger posts router messages to the background process. Bodies are
// signed with the shared hash key.
type HTTPMessenger struct {
	client   *utils.HTTPClient
	hasher   *utils.Hasher
	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewHTTPMessenger constructs an [HTTPMessenger] for the router address.
func NewHTTPMessenger(cfg config.RouterConfig, log *logger.Logger) (*HTTPMessenger, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid router address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL).SetTimeout(cfg.RequestTimeout)

	return &HTTPMessenger{
		client:   client,
		hasher:   utils.NewHasher(cfg.HashKey),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   log,
	}, nil
}

func (m *HTTPMessenger) Send(ctx context.Context, message any) (models.MessageResponse, error) {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(message)
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("encode message: %w", err)
	}

	req := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(utils.HashHeader, m.hasher.HexSum(body)).
		SetBody(body)
	traceID, ok := utils.TraceIDFromContext(ctx)
	if !ok {
		traceID = m.traceIDs.Generate()
	}
	req.SetHeader(utils.TraceIDHeader, traceID)

	resp, err := req.Post(messagesPath)
	if err != nil {
		log.Err(err).Str("func", "HTTPMessenger.Send").Msg("background is unreachable")
		return models.MessageResponse{}, fmt.Errorf("send message: %w", err)
	}

	if resp.StatusCode() == http.StatusNoContent {
		return models.MessageResponse{}, nil
	}

	if err = mapHTTPError(resp); err != nil {
		var answer models.MessageResponse
		if json.Unmarshal(resp.Body(), &answer) == nil && answer.Error != "" {
			err = &RemoteRequestFailedError{StatusCode: resp.StatusCode(), Body: answer.Error}
		}
		log.Warn().Err(err).Str("func", "HTTPMessenger.Send").Msg("background rejected the message")
		return models.MessageResponse{}, err
	}

	var answer models.MessageResponse
	if err = json.Unmarshal(resp.Body(), &answer); err != nil {
		return models.MessageResponse{}, decodeError(fmt.Errorf("decode message response: %w", err))
	}

	return answer, nil
}
