package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/saintserge/jodconverter/internal/officeurl"
)

// DefaultOfficePort is used when an office section names no connection.
const DefaultOfficePort = 2002

type FileConfig struct {
	Office OfficeConfig `toml:"office"`
}

// OfficeConfig selects one way to reach the office process: a full url,
// a pipe name, or a host/port pair.
type OfficeConfig struct {
	URL      string `toml:"url"`
	PipeName string `toml:"pipe_name"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
}

func LoadOfficeConfig(path string) (OfficeConfig, error) {
	var cfg FileConfig
	if err := loadToml(path, &cfg); err != nil {
		return OfficeConfig{}, err
	}
	office := cfg.Office
	if office.URL == "" && office.PipeName == "" && office.Port == 0 {
		office.Port = DefaultOfficePort
	}
	if err := ValidateOfficeConfig(office); err != nil {
		return OfficeConfig{}, err
	}
	return office, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateOfficeConfig(cfg OfficeConfig) error {
	if _, err := cfg.Descriptor(); err != nil {
		return fmt.Errorf("office config invalid: %w", err)
	}
	return nil
}

// Descriptor builds the connection descriptor named by cfg.
func (cfg OfficeConfig) Descriptor() (officeurl.Descriptor, error) {
	url := strings.TrimSpace(cfg.URL)
	pipe := strings.TrimSpace(cfg.PipeName)
	host := strings.TrimSpace(cfg.Host)

	sources := 0
	for _, set := range []bool{url != "", pipe != "", cfg.Port != 0} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return officeurl.Descriptor{}, fmt.Errorf("one of url, pipe_name or port is required")
	case sources > 1:
		return officeurl.Descriptor{}, fmt.Errorf("url, pipe_name and port are mutually exclusive")
	case host != "" && cfg.Port == 0:
		return officeurl.Descriptor{}, fmt.Errorf("host requires port")
	}

	switch {
	case url != "":
		return officeurl.Parse(url)
	case pipe != "":
		return officeurl.ForPipe(pipe)
	default:
		return officeurl.ForSocket(host, cfg.Port)
	}
}
