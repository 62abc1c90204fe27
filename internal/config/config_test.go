package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingSecretIsFatal(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestLoad_SecretFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.JWT.Secret != "test-secret" {
		t.Errorf("Secret = %q, expected %q", cfg.JWT.Secret, "test-secret")
	}
	if cfg.JWT.ExpireHour != 24 {
		t.Errorf("ExpireHour = %d, expected default 24", cfg.JWT.ExpireHour)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q, expected default sqlite", cfg.Database.Driver)
	}
}

func TestLoad_FromFile(t *testing.T) {
	data := `
server:
  port: "8081"
  mode: release
database:
  driver: mysql
  dsn: "user:pass@tcp(localhost:3306)/fintrack?parseTime=true"
jwt:
  secret: file-secret
  expire_hour: 12
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("DB_DRIVER")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8081" {
		t.Errorf("Port = %q, expected %q", cfg.Server.Port, "8081")
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("Driver = %q, expected %q", cfg.Database.Driver, "mysql")
	}
	if cfg.JWT.ExpireHour != 12 {
		t.Errorf("ExpireHour = %d, expected 12", cfg.JWT.ExpireHour)
	}
	// unset fields still get defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Host = %q, expected default", cfg.Server.Host)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	data := `
jwt:
  secret: file-secret
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_DRIVER", "postgres")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("Secret = %q, env should win over file", cfg.JWT.Secret)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Driver = %q, env should win over file", cfg.Database.Driver)
	}
}
