package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Environment         string `json:"environment"`
		LogLevel            string `json:"log_level"`
		APIToken            string `json:"api_token"`
		HealthPath          string `json:"health_path"`
		PBKDF2Iterations    int    `json:"pbkdf2_iterations"`
		PBKDF2MaxIterations int    `json:"pbkdf2_max_iterations"`
		Version             string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Web struct {
		HTTPAddress    string   `json:"http_address"`
		APIURL         string   `json:"api_url"`
		APIToken       string   `json:"api_token"`
		StaticDir      string   `json:"static_dir"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"web,omitempty"`

	Workers struct {
		HashWorkers int `json:"hash_workers"`
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
			Environment:         jsonCfg.App.Environment,
			LogLevel:            jsonCfg.App.LogLevel,
			APIToken:            jsonCfg.App.APIToken,
			HealthPath:          jsonCfg.App.HealthPath,
			PBKDF2Iterations:    jsonCfg.App.PBKDF2Iterations,
			PBKDF2MaxIterations: jsonCfg.App.PBKDF2MaxIterations,
			Version:             jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
		},
		Web: Web{
			HTTPAddress:    jsonCfg.Web.HTTPAddress,
			APIURL:         jsonCfg.Web.APIURL,
			APIToken:       jsonCfg.Web.APIToken,
			StaticDir:      jsonCfg.Web.StaticDir,
			RequestTimeout: time.Duration(jsonCfg.Web.RequestTimeout),
		},
		Workers: Workers{
			HashWorkers: jsonCfg.Workers.HashWorkers,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
