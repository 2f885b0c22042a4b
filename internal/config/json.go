package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string   `json:"token_sign_key"`
		TokenIssuer  string   `json:"token_issuer"`
		SessionTTL   Duration `json:"session_ttl"`
		LogLevel     string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Notes struct {
		DeletePolicy string `json:"delete_policy"`
	} `json:"notes,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
	} `json:"workers,omitempty"`
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
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			SessionTTL:   time.Duration(jsonCfg.App.SessionTTL),
			LogLevel:     jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Notes: Notes{
			DeletePolicy: jsonCfg.Notes.DeletePolicy,
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
