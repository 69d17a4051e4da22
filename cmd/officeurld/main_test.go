package main

import (
	"testing"

	"github.com/saintserge/jodconverter/internal/config"
)

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := config.LoadServerConfig("ex.config.toml")
	if err != nil {
		t.Fatalf("load example config: %v", err)
	}
	if cfg.Node != "officeurld.local" {
		t.Fatalf("unexpected node: %q", cfg.Node)
	}
	want := "socket,host=127.0.0.1,port=2002,tcpNoDelay=1;urp;StarOffice.ServiceManager"
	if cfg.Default.String() != want {
		t.Fatalf("unexpected default: %q", cfg.Default)
	}
}
