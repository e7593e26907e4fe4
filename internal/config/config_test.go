package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9000
postgres:
  host: db.internal
  user: app
kafka:
  enabled: true
  topic: results-test
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Fatalf("expected explicit port, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Fatalf("expected default read timeout, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Postgres.Host != "db.internal" || cfg.Postgres.Port != 5432 {
		t.Fatalf("unexpected postgres config: %+v", cfg.Postgres)
	}
	if !cfg.Kafka.Enabled || cfg.Kafka.Topic != "results-test" {
		t.Fatalf("unexpected kafka config: %+v", cfg.Kafka)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("expected default redis addr, got %s", cfg.Redis.Addr)
	}
	if cfg.Stats.DefaultLimit != 50 || cfg.Stats.MaxLimit != 500 {
		t.Fatalf("unexpected stats limits: %+v", cfg.Stats)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("MATCHDAY_DB_PASSWORD", "hunter2")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "postgres:\n  password: ${MATCHDAY_DB_PASSWORD}\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Postgres.Password != "hunter2" {
		t.Fatalf("expected env expansion, got %q", cfg.Postgres.Password)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestConnectionString(t *testing.T) {
	cfg := PostgresConfig{Host: "localhost", Port: 5432, User: "app", Password: "pw", Database: "matchday"}
	want := "postgres://app:pw@localhost:5432/matchday?sslmode=disable"
	if got := cfg.ConnectionString(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port, got %d", cfg.Server.Port)
	}
	if !cfg.Sync.Enabled {
		t.Fatal("expected sync enabled by default")
	}
	if cfg.Sync.Interval != 15*time.Minute {
		t.Fatalf("expected default sync interval, got %v", cfg.Sync.Interval)
	}
}
