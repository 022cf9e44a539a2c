package providers

import (
	"context"
	"log/slog"
	"time"

	"football-client/internal/domain"
	"football-client/internal/domain/countries"
	"football-client/internal/domain/leagues"
	"football-client/internal/logging"
	"football-client/internal/metrics"
)

// observedProvider wraps a DataProvider with fetch logging and metrics.
type observedProvider struct {
	inner    DataProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewObservedProvider wraps inner so that every fetch is timed, logged and recorded under name.
func NewObservedProvider(inner DataProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &observedProvider{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

func (p *observedProvider) FetchLeagues(ctx context.Context) (domain.Collection[leagues.League], error) {
	if p.inner == nil {
		return domain.Collection[leagues.League]{}, ErrProviderUnavailable
	}
	return observe(ctx, p, leagues.Entity, p.inner.FetchLeagues)
}

func (p *observedProvider) FetchCountries(ctx context.Context) (domain.Collection[countries.Country], error) {
	if p.inner == nil {
		return domain.Collection[countries.Country]{}, ErrProviderUnavailable
	}
	return observe(ctx, p, countries.Entity, p.inner.FetchCountries)
}

func observe[T any](ctx context.Context, p *observedProvider, entity string, fetch func(context.Context) (domain.Collection[T], error)) (domain.Collection[T], error) {
	start := p.now()
	c, err := fetch(ctx)
	elapsed := p.now().Sub(start)
	p.recorder.RecordFetch(p.name, entity, elapsed, err)

	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider fetch failed",
			slog.String(logging.FieldEntity, entity),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return c, err
	}

	logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "provider fetch complete",
		slog.String(logging.FieldEntity, entity),
		slog.Int(logging.FieldCount, len(c.Response)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return c, nil
}
