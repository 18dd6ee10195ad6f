package config

import "time"

const (
	DefaultAPIBaseURL         = "https://api.pinboard.in/v1"
	DefaultSettingsURL        = "https://pinboard.in/settings/password"
	DefaultRouterAddress      = "localhost:8765"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultRouterTimeout      = 45 * time.Second
	DefaultRetryCount         = 3
	DefaultRetryWaitTime      = time.Second
	DefaultRetryMaxWaitTime   = 30 * time.Second
	DefaultMinRequestInterval = 3 * time.Second
	DefaultPollInterval       = 2 * time.Second
	DefaultDatabaseFile       = "pinkeeper.db"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN:          DefaultDatabaseFile,
				PollInterval: DefaultPollInterval,
			},
		},
		Remote: Remote{
			APIBaseURL:         DefaultAPIBaseURL,
			SettingsURL:        DefaultSettingsURL,
			RequestTimeout:     DefaultRequestTimeout,
			RetryCount:         DefaultRetryCount,
			RetryWaitTime:      DefaultRetryWaitTime,
			RetryMaxWaitTime:   DefaultRetryMaxWaitTime,
			MinRequestInterval: DefaultMinRequestInterval,
		},
		Router: Router{
			HTTPAddress:    DefaultRouterAddress,
			RequestTimeout: DefaultRouterTimeout,
		},
	}
}
