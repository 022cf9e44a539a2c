package fixture

import (
	"context"

	"football-client/internal/domain"
	"football-client/internal/domain/countries"
	"football-client/internal/domain/leagues"
)

const providerName = "fixture"

var (
	england = countries.Country{Name: "England", Code: countries.Optional("GB"), Flag: countries.Optional("https://media.api-sports.io/flags/gb.svg")}
	spain   = countries.Country{Name: "Spain", Code: countries.Optional("ES"), Flag: countries.Optional("https://media.api-sports.io/flags/es.svg")}
	germany = countries.Country{Name: "Germany", Code: countries.Optional("DE"), Flag: countries.Optional("https://media.api-sports.io/flags/de.svg")}
)

// Provider returns a static set of leagues and countries useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return providerName
}

// FetchLeagues returns a deterministic set of example leagues.
func (p *Provider) FetchLeagues(ctx context.Context) (domain.Collection[leagues.League], error) {
	_ = ctx
	items := []leagues.League{
		{
			League:  leagues.Info{ID: 39, Name: "Premier League", Type: "League", Logo: "https://media.api-sports.io/football/leagues/39.png"},
			Country: england,
			Seasons: []leagues.Season{
				{Year: 2021, Start: "2021-08-13", End: "2022-05-22"},
				{Year: 2022, Start: "2022-08-05", End: "2023-05-28", Current: true},
			},
		},
		{
			League:  leagues.Info{ID: 140, Name: "La Liga", Type: "League", Logo: "https://media.api-sports.io/football/leagues/140.png"},
			Country: spain,
			Seasons: []leagues.Season{
				{Year: 2021, Start: "2021-08-13", End: "2022-05-22"},
				{Year: 2022, Start: "2022-08-12", End: "2023-06-04", Current: true},
			},
		},
		{
			League:  leagues.Info{ID: 78, Name: "Bundesliga", Type: "League", Logo: "https://media.api-sports.io/football/leagues/78.png"},
			Country: germany,
			Seasons: []leagues.Season{
				{Year: 2022, Start: "2022-08-05", End: "2023-05-27", Current: true},
			},
		},
	}
	return domain.NewCollection(leagues.Entity, items), nil
}

// FetchCountries returns a deterministic set of countries.
func (p *Provider) FetchCountries(ctx context.Context) (domain.Collection[countries.Country], error) {
	_ = ctx
	return domain.NewCollection(countries.Entity, []countries.Country{england, spain, germany}), nil
}
