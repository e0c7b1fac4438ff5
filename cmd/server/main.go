// Command server runs the mannequin image proxy.
//
// Configuration is read from the environment (a .env file in the working
// directory is loaded first) and optionally from a YAML file passed with
// -config:
//
//	GEMINI_API_KEY      - Gemini API key (required)
//	PORT                - Listen port (default: 3000)
//	IMAGEN_MODEL        - Pinned Imagen model (default: imagen-2.5-generate-002)
//	APP_ENV             - local, dev or prod (default: local)
//	MAX_BODY_BYTES      - Request body limit (default: 1048576)
//	SHUTDOWN_TIMEOUT    - Graceful shutdown deadline (default: 10s)
//	READ_HEADER_TIMEOUT - HTTP read header timeout (default: 10s)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/shouni/gemini-mannequin-proxy/pkg/adapters"
	"github.com/shouni/gemini-mannequin-proxy/pkg/config"
	"github.com/shouni/gemini-mannequin-proxy/pkg/generator"
	"github.com/shouni/gemini-mannequin-proxy/pkg/server"
	"github.com/shouni/gemini-mannequin-proxy/pkg/sl"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", sl.Err(err))
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	dotenvErr := godotenv.Load()
	if dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", dotenvErr)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log := sl.SetupLogger(cfg.Env, os.Stdout)
	slog.SetDefault(log)
	log.With(
		slog.String("env", cfg.Env),
		slog.String("model", cfg.Model),
		sl.Secret(cfg.GeminiAPIKey),
	).Info("starting mannequin proxy")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := generator.NewClient(ctx, cfg.GeminiAPIKey, nil)
	if err != nil {
		return err
	}

	gen, err := generator.NewImagenGeneratorFromClient(client, cfg.Model)
	if err != nil {
		return err
	}

	handler, err := adapters.NewMannequinHandler(gen, cfg.Model, cfg.MaxBodyBytes, log)
	if err != nil {
		return err
	}

	srv := server.New(handler, server.Config{
		Addr:              cfg.Addr(),
		ShutdownTimeout:   cfg.ShutdownTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}, log)

	log.Info(fmt.Sprintf("proxy listening on http://localhost:%d", cfg.Port))
	return srv.Run(ctx)
}
