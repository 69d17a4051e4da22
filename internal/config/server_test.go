package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/saintserge/jodconverter/internal/officeurl"
)

func TestLoadServerConfigDefaultsAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	if err := WriteTemplate(path, "server", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := LoadServerConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Node != "officeurld" {
		t.Fatalf("unexpected node: %q", cfg.Node)
	}
	if cfg.ListenAddr != "127.0.0.1:9200" {
		t.Fatalf("unexpected listen addr: %q", cfg.ListenAddr)
	}
	if len(cfg.CorsOrigins) != 1 || cfg.CorsOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected cors origins: %+v", cfg.CorsOrigins)
	}
	if cfg.Default.Port() != 2002 || !cfg.Default.TCPNoDelay() {
		t.Fatalf("unexpected default descriptor: %q", cfg.Default)
	}
}

func TestLoadServerConfigOfficeTable(t *testing.T) {
	path := writeConfig(t, `
listen_addr = ":9300"
auth_token = " secret "
cors_origins = ["", " http://a "]

[office]
pipe_name = "office"
`)
	cfg, err := LoadServerConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ListenAddr != ":9300" || cfg.Node != "officeurld" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.CorsOrigins) != 1 || cfg.CorsOrigins[0] != "http://a" {
		t.Fatalf("unexpected cors origins: %+v", cfg.CorsOrigins)
	}
	if cfg.AuthToken != "secret" {
		t.Fatalf("unexpected auth token: %q", cfg.AuthToken)
	}
	if cfg.Default.PipeName() != "office" {
		t.Fatalf("unexpected default: %q", cfg.Default)
	}
}

func TestLoadServerConfigEmptyKeepsDefaults(t *testing.T) {
	cfg, err := LoadServerConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Default.IsZero() || cfg.ListenAddr != "127.0.0.1:9200" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadServerConfigRejects(t *testing.T) {
	cases := []string{
		"default = \"bogus,foo=1;urp;X\"\n",
		"default = \"pipe,name=a;urp;X\"\n[office]\nport = 2002\n",
		"listen_addr = \"  \"\n",
		"[office]\nport = -4\n",
	}
	for _, content := range cases {
		if _, err := LoadServerConfig(writeConfig(t, content)); err == nil {
			t.Fatalf("expected error for %q", content)
		}
	}
}

func TestLoadServerConfigInvalidOfficeIsDescriptorError(t *testing.T) {
	_, err := LoadServerConfig(writeConfig(t, "[office]\nurl = \"socket,host=a;urp;X\"\n"))
	if !errors.Is(err, officeurl.ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}
}

func TestLoadServerConfigMissingFile(t *testing.T) {
	if _, err := LoadServerConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
}
