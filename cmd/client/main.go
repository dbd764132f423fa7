package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/voy/internal/adapter"
	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("voy-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := newCLI(serverAdapter, os.Stdout, log)
	if err = c.run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Err(err).Strs("args", commandName(os.Args[1:])).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		stop()
		os.Exit(1)
	}
}

// commandName keeps only the sub-command so flag values such as passwords
// never reach the log file.
func commandName(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	return args[:1]
}
