package main

import (
	"path/filepath"
	"testing"

	"github.com/saintserge/jodconverter/internal/config"
)

func TestValidateGeneratedTemplates(t *testing.T) {
	dir := t.TempDir()
	for _, kind := range []string{"office", "server"} {
		path := filepath.Join(dir, kind+".toml")
		if err := config.WriteTemplate(path, kind, false); err != nil {
			t.Fatalf("write %s template: %v", kind, err)
		}
		if err := validateConfig(kind, path); err != nil {
			t.Fatalf("validate %s template: %v", kind, err)
		}
	}
}
