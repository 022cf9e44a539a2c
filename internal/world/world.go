package world

import (
	"fmt"
	"log/slog"
	"os"

	"football-client/internal/domain"
	"football-client/internal/domain/countries"
	"football-client/internal/domain/leagues"
	"football-client/internal/logging"
	"football-client/internal/metrics"
	"football-client/internal/providers"
	"football-client/internal/resolver"
	"football-client/internal/serializer"
)

// Options configures a World. DataDir and Provider are required.
type Options struct {
	DataDir  string
	Format   serializer.Format
	Provider providers.DataProvider
	Logger   *slog.Logger
	Recorder *metrics.Recorder
}

// World is the client over every supported entity kind. Each entity is resolved
// at most once per World; build a new World to force re-resolution.
type World struct {
	Leagues   *resolver.Resolver[leagues.League]
	Countries *resolver.Resolver[countries.Country]

	dataDir string
	format  serializer.Format
}

// New ensures the data directory exists and wires one resolver per entity with the
// JSON caching serializer and the serializer for the requested output format.
func New(opts Options) (*World, error) {
	if opts.DataDir == "" {
		return nil, fmt.Errorf("%w: data directory is required", serializer.ErrInvalidConfiguration)
	}
	if opts.Provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	format := opts.Format
	if format == "" {
		format = serializer.FormatJSON
	}
	if !format.Valid() {
		return nil, fmt.Errorf("%w: unsupported serializer %q", serializer.ErrInvalidConfiguration, format)
	}

	if err := os.MkdirAll(opts.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", opts.DataDir, err)
	}
	logging.Debug(opts.Logger, "data directory ready", slog.String(logging.FieldPath, opts.DataDir))

	leagueResolver, err := newResolver[leagues.League](opts, format, leagues.Entity, opts.Provider.FetchLeagues,
		serializer.NewFactory(opts.DataDir, LeaguesProfile()))
	if err != nil {
		return nil, err
	}
	countryResolver, err := newResolver[countries.Country](opts, format, countries.Entity, opts.Provider.FetchCountries,
		serializer.NewFactory[countries.Country](opts.DataDir))
	if err != nil {
		return nil, err
	}

	return &World{
		Leagues:   leagueResolver,
		Countries: countryResolver,
		dataDir:   opts.DataDir,
		format:    format,
	}, nil
}

// DataDir returns the directory all serializers write into.
func (w *World) DataDir() string {
	return w.dataDir
}

// Format returns the user-selected output format.
func (w *World) Format() serializer.Format {
	return w.format
}

func newResolver[T domain.Record](opts Options, format serializer.Format, entity string, fetch resolver.FetchFunc[T], factory *serializer.Factory[T]) (*resolver.Resolver[T], error) {
	cache, err := factory.CreateCache(entity)
	if err != nil {
		return nil, err
	}
	output, err := factory.Create(format, entity)
	if err != nil {
		return nil, err
	}
	return resolver.New(resolver.Config[T]{
		Entity:   entity,
		Fetch:    fetch,
		Cache:    cache,
		Output:   output,
		Logger:   opts.Logger,
		Recorder: opts.Recorder,
	}), nil
}
