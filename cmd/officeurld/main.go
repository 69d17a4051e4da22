package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/saintserge/jodconverter/internal/config"
	"github.com/saintserge/jodconverter/internal/logging"
	"github.com/saintserge/jodconverter/internal/observability"
	"github.com/saintserge/jodconverter/internal/server"
)

func main() {
	configPath := flag.String("config", "", "server config path (toml)")
	listen := flag.String("listen", "", "override listen_addr")
	flag.Parse()

	logging.ConfigureRuntime()

	cfg := server.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadServerConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "officeurld: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *listen != "" {
		cfg.ListenAddr = *listen
	}
	logger := observability.InitLogger("officeurld", cfg.Node, nil)
	if !cfg.Default.IsZero() {
		logging.Infof("officeurld default descriptor=%q", cfg.Default.String())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, logger).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "officeurld: %v\n", err)
		os.Exit(1)
	}
}
