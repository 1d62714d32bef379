package graph

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NEO4J_URI", "")
	t.Setenv("NEO4J_USERNAME", "")
	t.Setenv("NEO4J_PASSWORD", "")
	t.Setenv("NEO4J_DATABASE", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()
	if cfg.URI != DefaultURI {
		t.Errorf("Expected URI %q, got %q", DefaultURI, cfg.URI)
	}
	if cfg.Username != DefaultUsername {
		t.Errorf("Expected Username %q, got %q", DefaultUsername, cfg.Username)
	}
	if cfg.Password != DefaultPassword {
		t.Errorf("Expected Password %q, got %q", DefaultPassword, cfg.Password)
	}
	if cfg.Database != DefaultDatabase {
		t.Errorf("Expected Database %q, got %q", DefaultDatabase, cfg.Database)
	}
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("NEO4J_URI", "bolt://env:7687")
	t.Setenv("NEO4J_USERNAME", "envuser")
	t.Setenv("NEO4J_PASSWORD", "envpass")
	t.Setenv("NEO4J_DATABASE", "envdb")

	cfg := LoadConfig()
	if cfg.URI != "bolt://env:7687" {
		t.Errorf("Expected env URI, got %q", cfg.URI)
	}
	if cfg.Username != "envuser" {
		t.Errorf("Expected env Username, got %q", cfg.Username)
	}
	if cfg.Password != "envpass" {
		t.Errorf("Expected env Password, got %q", cfg.Password)
	}
	if cfg.Database != "envdb" {
		t.Errorf("Expected env Database, got %q", cfg.Database)
	}
}

func TestConfigPrecedence(t *testing.T) {
	// Explicit override beats the environment, environment beats the
	// default, and the untouched field falls back to the default.
	clearEnv(t)
	t.Setenv("NEO4J_URI", "bolt://env:7687")
	t.Setenv("NEO4J_USERNAME", "envuser")

	cfg := LoadConfig().WithURI("bolt://explicit:7687")

	if cfg.URI != "bolt://explicit:7687" {
		t.Errorf("Explicit URI should win over env, got %q", cfg.URI)
	}
	if cfg.Username != "envuser" {
		t.Errorf("Env Username should win over default, got %q", cfg.Username)
	}
	if cfg.Password != DefaultPassword {
		t.Errorf("Password should fall back to default, got %q", cfg.Password)
	}
}

func TestConfigWithMethods(t *testing.T) {
	cfg := Config{
		URI:      DefaultURI,
		Username: DefaultUsername,
		Password: DefaultPassword,
		Database: DefaultDatabase,
	}

	modified := cfg.
		WithURI("bolt://test:7687").
		WithUsername("testuser").
		WithPassword("testpass").
		WithDatabase("testdb")

	if modified.URI != "bolt://test:7687" || modified.Username != "testuser" ||
		modified.Password != "testpass" || modified.Database != "testdb" {
		t.Errorf("With methods did not apply: %+v", modified)
	}

	// Original must be untouched.
	if cfg.URI != DefaultURI || cfg.Username != DefaultUsername {
		t.Error("With methods mutated the original config")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		URI:      DefaultURI,
		Username: DefaultUsername,
		Password: DefaultPassword,
		Database: DefaultDatabase,
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid config", cfg: valid, wantErr: false},
		{name: "missing URI", cfg: valid.WithURI(""), wantErr: true},
		{name: "missing username", cfg: valid.WithUsername(""), wantErr: true},
		{name: "missing password", cfg: valid.WithPassword(""), wantErr: true},
		{name: "missing database", cfg: valid.WithDatabase(""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigStringRedactsPassword(t *testing.T) {
	cfg := Config{
		URI:      "bolt://test:7687",
		Username: "testuser",
		Password: "supersecret",
		Database: "testdb",
	}

	s := cfg.String()
	if strings.Contains(s, "supersecret") {
		t.Errorf("String() leaked the password: %s", s)
	}
	for _, want := range []string{"bolt://test:7687", "testuser", "testdb"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q: %s", want, s)
		}
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "URI", Message: "must not be empty"}

	expected := "config error: URI must not be empty"
	if err.Error() != expected {
		t.Errorf("Expected error %q, got %q", expected, err.Error())
	}
}
