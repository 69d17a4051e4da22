package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/saintserge/jodconverter/internal/officeurl"
	"github.com/saintserge/jodconverter/internal/server"
)

type serverFileConfig struct {
	Node        string               `toml:"node"`
	ListenAddr  string               `toml:"listen_addr"`
	CorsOrigins []string             `toml:"cors_origins"`
	AuthToken   string               `toml:"auth_token"`
	Default     officeurl.Descriptor `toml:"default"`
	Office      OfficeConfig         `toml:"office"`
}

// LoadServerConfig overlays the file at path onto server.DefaultConfig.
// The default descriptor comes from either "default" or an [office] table.
func LoadServerConfig(path string) (server.Config, error) {
	cfg := server.DefaultConfig()

	var raw serverFileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return server.Config{}, fmt.Errorf("load server config: %w", err)
	}

	if meta.IsDefined("node") {
		if node := strings.TrimSpace(raw.Node); node != "" {
			cfg.Node = node
		}
	}
	if meta.IsDefined("listen_addr") {
		cfg.ListenAddr = strings.TrimSpace(raw.ListenAddr)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}
	if meta.IsDefined("auth_token") {
		cfg.AuthToken = strings.TrimSpace(raw.AuthToken)
	}

	switch {
	case meta.IsDefined("default") && meta.IsDefined("office"):
		return server.Config{}, fmt.Errorf("server config: default and [office] are mutually exclusive")
	case meta.IsDefined("default"):
		cfg.Default = raw.Default
	case meta.IsDefined("office"):
		d, err := raw.Office.Descriptor()
		if err != nil {
			return server.Config{}, fmt.Errorf("server config office: %w", err)
		}
		cfg.Default = d
	}

	if err := ValidateServerConfig(cfg); err != nil {
		return server.Config{}, err
	}
	return cfg, nil
}

func ValidateServerConfig(cfg server.Config) error {
	if strings.TrimSpace(cfg.Node) == "" {
		return fmt.Errorf("server config missing node")
	}
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return fmt.Errorf("server config missing listen_addr")
	}
	return nil
}

func normalizeOrigins(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
