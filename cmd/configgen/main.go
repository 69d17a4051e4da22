package main

import (
	"flag"
	"log"

	"github.com/saintserge/jodconverter/internal/config"
)

func main() {
	kind := flag.String("kind", "office", "config kind: office|server")
	output := flag.String("output", "", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "", "config path for validation (defaults to per-kind path)")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = defaultPath(*kind)
		}
		if err := validateConfig(*kind, path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated %s config at %s", *kind, path)
		return
	}

	target := *output
	if target == "" {
		target = defaultPath(*kind)
	}

	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s config template to %s", *kind, target)
}

func defaultPath(kind string) string {
	switch kind {
	case "office":
		return "office.toml"
	case "server":
		return "cmd/officeurld/config.toml"
	default:
		log.Fatalf("unknown kind: %s", kind)
		return ""
	}
}

func validateConfig(kind, path string) error {
	switch kind {
	case "office":
		_, err := config.LoadOfficeConfig(path)
		return err
	case "server":
		_, err := config.LoadServerConfig(path)
		return err
	default:
		log.Fatalf("unknown kind: %s", kind)
		return nil
	}
}
