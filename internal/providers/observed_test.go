package providers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"football-client/internal/domain"
	"football-client/internal/domain/countries"
	"football-client/internal/domain/leagues"
	"football-client/internal/metrics"
)

type staticProvider struct {
	err   error
	calls int
}

func (s *staticProvider) FetchLeagues(ctx context.Context) (domain.Collection[leagues.League], error) {
	_ = ctx
	s.calls++
	if s.err != nil {
		return domain.Collection[leagues.League]{}, s.err
	}
	return domain.NewCollection(leagues.Entity, []leagues.League{{League: leagues.Info{ID: 39, Name: "Premier League"}}}), nil
}

func (s *staticProvider) FetchCountries(ctx context.Context) (domain.Collection[countries.Country], error) {
	_ = ctx
	s.calls++
	if s.err != nil {
		return domain.Collection[countries.Country]{}, s.err
	}
	return domain.NewCollection(countries.Entity, []countries.Country{{Name: "England", Code: countries.Optional("GB")}}), nil
}

func TestDataProviderInterfaceImplemented(t *testing.T) {
	var _ DataProvider = (*staticProvider)(nil)
	var _ DataProvider = (*observedProvider)(nil)
}

func TestObservedProviderRecordsSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	rec := metrics.NewRecorder()
	inner := &staticProvider{}

	p := NewObservedProvider(inner, "static", logger, rec)
	c, err := p.FetchLeagues(context.Background())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(c.Response) != 1 || inner.calls != 1 {
		t.Fatalf("expected passthrough of one league, got %+v calls=%d", c, inner.calls)
	}
	if rec.FetchCalls("static", leagues.Entity) != 1 || rec.FetchErrors("static", leagues.Entity) != 0 {
		t.Fatalf("unexpected metrics %+v", rec.Snapshot("static", leagues.Entity))
	}
	if !strings.Contains(buf.String(), "provider=static") || !strings.Contains(buf.String(), "count=1") {
		t.Fatalf("expected provider log fields, got %q", buf.String())
	}
}

func TestObservedProviderRecordsFailure(t *testing.T) {
	rec := metrics.NewRecorder()
	boom := errors.New("boom")
	p := NewObservedProvider(&staticProvider{err: boom}, "static", nil, rec)

	if _, err := p.FetchCountries(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected error passthrough, got %v", err)
	}
	if rec.FetchErrors("static", countries.Entity) != 1 {
		t.Fatalf("expected recorded error")
	}
}

func TestObservedProviderWithoutInner(t *testing.T) {
	p := NewObservedProvider(nil, "none", nil, nil)
	if _, err := p.FetchLeagues(context.Background()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if _, err := p.FetchCountries(context.Background()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
