package config

import (
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      "8000",
			Namespace: "themepick",
			Database:  "main",
		},
		Sampler: SamplerConfig{
			PageSize: 1000,
			BatchCap: 1000,
		},
		Jobs: JobsConfig{
			IntegritySweepInterval: time.Hour,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingPort(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
	}
}

func TestConfig_Validate_MissingDatabaseHost(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Host = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing DB_HOST")
	}
	if !strings.Contains(err.Error(), "DB_HOST") {
		t.Errorf("expected error to mention DB_HOST, got: %v", err)
	}
}

func TestConfig_Validate_SamplerCapBelowPageSize(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Sampler.PageSize = 500
	cfg.Sampler.BatchCap = 100

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for batch cap below page size")
	}
	if !strings.Contains(err.Error(), "SAMPLER_BATCH_CAP") {
		t.Errorf("expected error to mention SAMPLER_BATCH_CAP, got: %v", err)
	}
}

func TestConfig_Validate_NonPositiveSweepInterval(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Jobs.IntegritySweepInterval = 0

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for zero INTEGRITY_SWEEP_INTERVAL")
	}
	if !strings.Contains(err.Error(), "INTEGRITY_SWEEP_INTERVAL") {
		t.Errorf("expected error to mention INTEGRITY_SWEEP_INTERVAL, got: %v", err)
	}
}

func TestConfig_Validate_CollectsMultipleErrors(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""
	cfg.Database.Namespace = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "SERVER_PORT") || !strings.Contains(msg, "DB_NAMESPACE") {
		t.Errorf("expected both failures reported, got: %v", msg)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port == "" {
		t.Error("expected default server port")
	}
	if cfg.Sampler.PageSize != 1000 {
		t.Errorf("expected default page size 1000, got %d", cfg.Sampler.PageSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}
