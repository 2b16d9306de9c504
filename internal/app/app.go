package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vidseo/backend/internal/config"
	"github.com/vidseo/backend/internal/handlers"
	"github.com/vidseo/backend/internal/httpserver"
	"github.com/vidseo/backend/internal/logging"
	"github.com/vidseo/backend/internal/middleware"
	"github.com/vidseo/backend/internal/thumbnails"
	"github.com/vidseo/backend/internal/videos"
)

// Run bootstraps the vidseo backend application.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout)
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New("expected command: serve, resolve, or thumbnail")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	switch args[0] {
	case "serve":
		logger := logging.New(os.Stdout, level)
		slog.SetDefault(logger)
		return serve(ctx, cfg, logger)
	case "resolve":
		logger := logging.New(os.Stderr, level)
		return resolve(logging.WithLogger(ctx, logger), cfg, args[1:], stdout)
	case "thumbnail":
		logger := logging.New(os.Stderr, level)
		return renderThumbnail(logging.WithLogger(ctx, logger), cfg, args[1:], stdout)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, deps)

	handler := middleware.RequestLogger(logger)(mux)

	srv := httpserver.New(cfg.AppPort, handler)

	logger.Info("starting http server",
		"port", cfg.AppPort,
		"generation", deps.Generator != nil,
		"storage", deps.Storage != nil,
	)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.Start()
	}()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalCh)

	select {
	case <-ctx.Done():
		logger.Info("context canceled, shutting down server")
	case sig := <-signalCh:
		logger.Info("received signal, shutting down", "signal", sig.String())
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpserver.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// resolve prints the metadata record for a single URL.
func resolve(ctx context.Context, cfg config.Config, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	timeout := fs.Duration("timeout", cfg.FetchTimeout, "overall lookup timeout, 0 for none")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	if fs.NArg() != 1 {
		return errors.New("usage: resolve [-timeout d] <url>")
	}

	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	resolver := videos.NewResolver(videos.NewHTTPGetter(nil), cfg.UserAgent)
	md, err := resolver.Lookup(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(md)
}

// renderThumbnail renders a preview for a concept file, writing a PNG or
// uploading it when -publish is set.
func renderThumbnail(ctx context.Context, cfg config.Config, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("thumbnail", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	conceptPath := fs.String("concept", "", "path to a JSON thumbnail concept")
	baseURL := fs.String("base", "", "optional base image URL")
	outPath := fs.String("out", "thumbnail.png", "output PNG path")
	publish := fs.Bool("publish", false, "upload to the configured bucket instead of writing a file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("thumbnail: %w", err)
	}
	if *conceptPath == "" {
		return errors.New("usage: thumbnail -concept file.json [-base url] [-out file.png] [-publish]")
	}

	concept, err := readConcept(*conceptPath)
	if err != nil {
		return err
	}

	renderCtx := ctx
	if cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, cfg.FetchTimeout)
		defer cancel()
	}

	renderer := thumbnails.NewRenderer(videos.NewHTTPGetter(nil))
	img := renderer.Preview(renderCtx, concept, *baseURL)

	if *publish {
		store, err := newAssetStorage(ctx, cfg)
		if err != nil {
			return err
		}
		if store == nil {
			return fmt.Errorf("thumbnail: %w", thumbnails.ErrStorageUnavailable)
		}
		location, err := thumbnails.Publish(ctx, store, img)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, location)
		return err
	}

	f, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", *outPath, err)
	}
	if err := thumbnails.EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", *outPath, err)
	}

	_, err = fmt.Fprintln(stdout, *outPath)
	return err
}

func readConcept(path string) (thumbnails.Concept, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return thumbnails.Concept{}, fmt.Errorf("read concept %s: %w", path, err)
	}
	var concept thumbnails.Concept
	if err := json.Unmarshal(data, &concept); err != nil {
		return thumbnails.Concept{}, fmt.Errorf("parse concept %s: %w", path, err)
	}
	return concept, nil
}
