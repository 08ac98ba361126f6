package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	c := Default()
	if c.HTTPTimeout() != 3500*time.Millisecond {
		t.Errorf("Expected 3500ms timeout, got %v", c.HTTPTimeout())
	}
	if c.HTTPRetries != 2 {
		t.Errorf("Expected 2 retries, got %d", c.HTTPRetries)
	}
	if c.HTTPBackoff() != 150*time.Millisecond {
		t.Errorf("Expected 150ms backoff, got %v", c.HTTPBackoff())
	}
	if c.DeviceTag != "ESP32-" {
		t.Errorf("Expected ESP32- tag, got %q", c.DeviceTag)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoadConfigYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "device.yaml")
	data := []byte("ai_url: http://backend.local/ai\nhttp_retries: 4\ndevice_mac: \"AA:BB:CC:DD:EE:FF\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HTTP_RETRIES", "1")
	t.Setenv("MQTT_ENABLED", "true")

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.BackendURL != "http://backend.local/ai" {
		t.Errorf("Expected URL from yaml, got %q", c.BackendURL)
	}
	if c.HTTPRetries != 1 {
		t.Errorf("Expected env to override retries, got %d", c.HTTPRetries)
	}
	if c.DeviceMAC != "AA:BB:CC:DD:EE:FF" {
		t.Errorf("Unexpected MAC %q", c.DeviceMAC)
	}
	if !c.MQTTEnabled {
		t.Error("Expected MQTT to be enabled from env")
	}
	if c.MQTTAddress() != "tcp://localhost:1883" {
		t.Errorf("Unexpected broker address %q", c.MQTTAddress())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty url", func(c *Config) { c.BackendURL = " " }},
		{"zero timeout", func(c *Config) { c.HTTPTimeoutMS = 0 }},
		{"negative retries", func(c *Config) { c.HTTPRetries = -1 }},
		{"negative backoff", func(c *Config) { c.HTTPBackoffMS = -5 }},
		{"zero body limit", func(c *Config) { c.MaxResponseBytes = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestInvalidEnvNumberKeepsDefault(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_MS", "soon")
	c := Default()
	applyEnv(c)
	if c.HTTPTimeoutMS != 3500 {
		t.Errorf("Expected default timeout to survive bad env, got %d", c.HTTPTimeoutMS)
	}
}
