package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		HashKey string `json:"hash_key"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string   `json:"dsn"`
			PollInterval Duration `json:"poll_interval"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		APIBaseURL         string   `json:"api_url"`
		SettingsURL        string   `json:"settings_url"`
		SessionCookies     string   `json:"session_cookies"`
		RequestTimeout     Duration `json:"request_timeout"`
		RetryCount         int      `json:"retry_count"`
		RetryWaitTime      Duration `json:"retry_wait_time"`
		RetryMaxWaitTime   Duration `json:"retry_max_wait_time"`
		MinRequestInterval Duration `json:"min_request_interval"`
	} `json:"remote,omitempty"`

	Router struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"router,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		FilePath string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			HashKey: jsonCfg.App.HashKey,
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				PollInterval: time.Duration(jsonCfg.Storage.DB.PollInterval),
			},
		},
		Remote: Remote{
			APIBaseURL:         jsonCfg.Remote.APIBaseURL,
			SettingsURL:        jsonCfg.Remote.SettingsURL,
			SessionCookies:     jsonCfg.Remote.SessionCookies,
			RequestTimeout:     time.Duration(jsonCfg.Remote.RequestTimeout),
			RetryCount:         jsonCfg.Remote.RetryCount,
			RetryWaitTime:      time.Duration(jsonCfg.Remote.RetryWaitTime),
			RetryMaxWaitTime:   time.Duration(jsonCfg.Remote.RetryMaxWaitTime),
			MinRequestInterval: time.Duration(jsonCfg.Remote.MinRequestInterval),
		},
		Router: Router{
			HTTPAddress:    jsonCfg.Router.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Router.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		Log: Log{
			FilePath: jsonCfg.Log.FilePath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
