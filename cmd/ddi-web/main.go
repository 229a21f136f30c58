// Command ddi-web serves the ISOBUS data dictionary over HTTP.
//
// It offers:
//   - a JSON API for identifier lookups, value formatting and name search
//   - the generation history recorded by ddi-gen -db
//   - mDNS advertisement as _isobus-ddi._tcp
//
// Usage:
//
//	ddi-web [flags]
//
// Examples:
//
//	# Serve the built-in table
//	ddi-web -listen :8080
//
//	# Serve the latest generated table and announce it on the LAN
//	ddi-web -db history.db -advertise -instance "Workshop"
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/open-agriculture/isobus-ddi/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Configuration file path (YAML)")
	listen := flag.String("listen", "", "Listen address (default from config)")
	dbPath := flag.String("db", "", "History database to serve the latest table from")
	advertise := flag.Bool("advertise", false, "Announce the server via mDNS")
	instance := flag.String("instance", "", "mDNS instance name (default from config)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", *logLevel)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	wc := cfg.Web
	if *listen != "" {
		wc.Listen = *listen
	}
	if *advertise {
		wc.Advertise = true
	}
	if *instance != "" {
		wc.Instance = *instance
	}
	db := *dbPath
	if db == "" {
		db = cfg.Generator.HistoryDB
	}

	srv, err := NewServer(ServerConfig{
		Listen:    wc.Listen,
		DBPath:    db,
		Advertise: wc.Advertise,
		Instance:  wc.Instance,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer srv.Close()

	l, err := net.Listen("tcp", wc.Listen)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("serving", "addr", l.Addr().String(), "db", db)
	return srv.Serve(ctx, l)
}
