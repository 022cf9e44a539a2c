package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"football-client/internal/config"
	"football-client/internal/logging"
	"football-client/internal/metrics"
	"football-client/internal/providers"
	"football-client/internal/providers/apisports"
	"football-client/internal/providers/fixture"
	"football-client/internal/serializer"
	"football-client/internal/world"
)

const (
	serviceName     = "football"
	shutdownTimeout = 5 * time.Second
)

// session is everything one resolving command needs, built from config plus flags.
type session struct {
	world    *world.World
	logger   *slog.Logger
	gatherer prometheus.Gatherer
	shutdown func(context.Context) error
	textfile string
}

func (a *App) open(ctx context.Context, req requestOptions) (*session, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	a.applyOverrides(&cfg, req)

	format, err := serializer.ParseFormat(cfg.Serializer)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: serviceName,
		Version: Version,
		Output:  a.stderr,
	})

	recorder, gatherer, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return nil, fmt.Errorf("setup metrics: %w", err)
	}

	w, err := world.New(world.Options{
		DataDir:  cfg.DataDir,
		Format:   format,
		Provider: newProvider(cfg, logger, recorder),
		Logger:   logger,
		Recorder: recorder,
	})
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	logging.Debug(logger, "session ready",
		slog.String(logging.FieldProvider, cfg.Provider),
		slog.String(logging.FieldFormat, format.String()),
		slog.String(logging.FieldPath, cfg.DataDir),
	)
	return &session{
		world:    w,
		logger:   logger,
		gatherer: gatherer,
		shutdown: shutdown,
		textfile: cfg.Metrics.Textfile,
	}, nil
}

func (a *App) applyOverrides(cfg *config.Config, req requestOptions) {
	if a.root.dataDir != "" {
		cfg.DataDir = a.root.dataDir
	}
	if a.root.logLevel != "" {
		cfg.Logging.Level = a.root.logLevel
	}
	if a.root.logFormat != "" {
		cfg.Logging.Format = a.root.logFormat
	}
	if req.serializer != "" {
		cfg.Serializer = req.serializer
	}
}

func newProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	if cfg.Provider == config.ProviderFixture {
		p := fixture.New()
		return providers.NewObservedProvider(p, p.Name(), logger, recorder)
	}
	client := apisports.NewClient(apisports.Config{
		BaseURL: cfg.APIFootball.BaseURL,
		Host:    cfg.APIFootball.Host,
		APIKey:  cfg.APIFootball.APIKey,
		Timeout: cfg.APIFootball.Timeout,
	})
	return providers.NewObservedProvider(client, client.Name(), logger, recorder)
}

// close exports metrics to the textfile, if configured, and flushes telemetry.
func (s *session) close(ctx context.Context) {
	if err := metrics.WriteTextfile(s.textfile, s.gatherer); err != nil {
		logging.Warn(s.logger, "metrics export failed", slog.Any("error", err))
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := s.shutdown(ctx); err != nil {
		logging.Warn(s.logger, "metrics shutdown failed", slog.Any("error", err))
	}
}
