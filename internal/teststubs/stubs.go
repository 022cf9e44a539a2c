package teststubs

import (
	"context"
	"sync/atomic"

	"football-client/internal/domain"
	"football-client/internal/domain/countries"
	"football-client/internal/domain/leagues"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Leagues   domain.Collection[leagues.League]
	Countries domain.Collection[countries.Country]
	Err       error
	Calls     atomic.Int32
}

// FetchLeagues returns the configured leagues and error while tracking calls.
func (s *StubProvider) FetchLeagues(ctx context.Context) (domain.Collection[leagues.League], error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Err != nil {
		return domain.Collection[leagues.League]{}, s.Err
	}
	return s.Leagues, nil
}

// FetchCountries returns the configured countries and error while tracking calls.
func (s *StubProvider) FetchCountries(ctx context.Context) (domain.Collection[countries.Country], error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Err != nil {
		return domain.Collection[countries.Country]{}, s.Err
	}
	return s.Countries, nil
}

// StubFetcher is a generic fetch function double for a single entity kind.
type StubFetcher[T any] struct {
	Collection domain.Collection[T]
	Err        error
	Calls      atomic.Int32
}

// Fetch returns the configured collection and error while tracking calls.
func (s *StubFetcher[T]) Fetch(ctx context.Context) (domain.Collection[T], error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Err != nil {
		return domain.Collection[T]{}, s.Err
	}
	return s.Collection, nil
}
