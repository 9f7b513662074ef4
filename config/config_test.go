package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.API.BaseURL != "http://localhost:3000" {
		t.Errorf("API.BaseURL = %q, want http://localhost:3000", config.API.BaseURL)
	}
	if config.API.TimeoutSeconds != 30 {
		t.Errorf("API.TimeoutSeconds = %d, want 30", config.API.TimeoutSeconds)
	}
	if config.QR.Size != 256 || config.QR.Level != "medium" {
		t.Errorf("QR defaults = %+v, want size 256 level medium", config.QR)
	}
	if config.Shorten.DefaultExpiryHours != 24 {
		t.Errorf("Shorten.DefaultExpiryHours = %d, want 24", config.Shorten.DefaultExpiryHours)
	}
	if config.Shorten.MinSlugLength != 3 || config.Shorten.MaxSlugLength != 20 {
		t.Errorf("slug length bounds = %d-%d, want 3-20", config.Shorten.MinSlugLength, config.Shorten.MaxSlugLength)
	}
	if config.Password.MinLength != 8 || !config.Password.RequireDigit {
		t.Errorf("Password defaults = %+v", config.Password)
	}
	if config.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", config.Logging.Level)
	}
}

func TestLoadConfig_StateDirFallsBackToUserConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.State.Dir == "" {
		t.Error("State.Dir empty, want user config dir fallback")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SHORTDASH_API_TIMEOUT_SECONDS", "5")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.API.TimeoutSeconds != 5 {
		t.Errorf("API.TimeoutSeconds = %d, want env override 5", config.API.TimeoutSeconds)
	}
}
