package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SessionSecret      string   `json:"session_secret"`
		SessionIssuer      string   `json:"session_issuer"`
		SessionDuration    Duration `json:"session_duration"`
		SessionCookie      string   `json:"session_cookie"`
		InsecureCookie     bool     `json:"insecure_cookie"`
		HashCost           int      `json:"hash_cost"`
		LoginDelay         Duration `json:"login_delay"`
		MaxLoginAttempts   int      `json:"max_login_attempts"`
		LockoutDuration    Duration `json:"lockout_duration"`
		MinPasswordEntropy float64  `json:"min_password_entropy"`
		LogLevel           string   `json:"log_level"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TLSCertFile    string   `json:"tls_cert_file"`
		TLSKeyFile     string   `json:"tls_key_file"`
	} `json:"server,omitempty"`
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

	app := jsonCfg.App
	cfg := &StructuredConfig{
		App: App{
			SessionSecret:      app.SessionSecret,
			SessionIssuer:      app.SessionIssuer,
			SessionDuration:    time.Duration(app.SessionDuration),
			SessionCookie:      app.SessionCookie,
			InsecureCookie:     app.InsecureCookie,
			HashCost:           app.HashCost,
			LoginDelay:         time.Duration(app.LoginDelay),
			MaxLoginAttempts:   app.MaxLoginAttempts,
			LockoutDuration:    time.Duration(app.LockoutDuration),
			MinPasswordEntropy: app.MinPasswordEntropy,
			LogLevel:           app.LogLevel,
			Version:            app.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			TLSCertFile:    jsonCfg.Server.TLSCertFile,
			TLSKeyFile:     jsonCfg.Server.TLSKeyFile,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
