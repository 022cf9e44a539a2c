package providers

import (
	"context"

	"football-client/internal/domain"
	"football-client/internal/domain/countries"
	"football-client/internal/domain/leagues"
)

// LeagueProvider fetches the full /leagues collection from upstream.
type LeagueProvider interface {
	FetchLeagues(ctx context.Context) (domain.Collection[leagues.League], error)
}

// CountryProvider fetches the full /countries collection from upstream.
type CountryProvider interface {
	FetchCountries(ctx context.Context) (domain.Collection[countries.Country], error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	LeagueProvider
	CountryProvider
}
