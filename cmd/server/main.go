package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/hangterm/pkg"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := pkg.LoadServerConfig()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "hangterm-server: %v\n", err)
		os.Exit(2)
	}
	log, err := pkg.ConsoleLog(os.Stderr, cfg.LogLevel, "server")
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "hangterm-server: %v\n", err)
		os.Exit(2)
	}

	s, err := pkg.NewServer(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create server")
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("binary", cfg.Binary).Msg("Server started")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for terminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	sig := <-sigc
	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}
