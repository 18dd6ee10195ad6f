package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
)

type authService struct {
	remote      adapter.RemoteClient
	harvester   adapter.TokenHarvester
	credentials CredentialService

	logger *logger.Logger
}

func NewAuthService(remote adapter.RemoteClient, harvester adapter.TokenHarvester, credentials CredentialService, log *logger.Logger) AuthService {
	return &authService{
		remote:      remote,
		harvester:   harvester,
		credentials: credentials,
		logger:      log,
	}
}

// Authenticate implements AuthService. When the web session is logged in
// and no token is held, the harvester delivers the token through report; a
// nil report stores it directly.
func (a *authService) Authenticate(ctx context.Context, report adapter.TokenReporter) (AuthOutcome, error) {
	log := logger.FromContext(ctx)

	loggedIn, err := a.remote.CheckSessionLoggedIn(ctx)
	if err != nil {
		return "", fmt.Errorf("check session: %w", err)
	}
	if !loggedIn {
		log.Warn().Str("func", "authService.Authenticate").Msg("not logged in to the bookmarking service")
		return AuthNotLoggedIn, ErrSessionNotLoggedIn
	}

	_, held, err := a.credentials.Get(ctx)
	if err != nil {
		return "", err
	}
	if held {
		return AuthAlreadyAuthenticated, nil
	}

	if report == nil {
		report = a.credentials.Set
	}
	if err = a.harvester.Harvest(ctx, report); err != nil {
		return "", fmt.Errorf("harvest token: %w", err)
	}

	log.Info().Str("func", "authService.Authenticate").Msg("token harvested from the web session")
	return AuthTokenHarvested, nil
}

func (a *authService) CheckLoggedIn(ctx context.Context) (bool, error) {
	return a.remote.CheckSessionLoggedIn(ctx)
}
