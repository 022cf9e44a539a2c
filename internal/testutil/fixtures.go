package testutil

import (
	"football-client/internal/domain"
	"football-client/internal/domain/countries"
	"football-client/internal/domain/leagues"
)

// SampleLeague builds a league with two seasons in the given country.
func SampleLeague(id int, name, country string) leagues.League {
	return leagues.League{
		League:  leagues.Info{ID: id, Name: name, Type: "League"},
		Country: countries.Country{Name: country},
		Seasons: []leagues.Season{
			{Year: 2021, Start: "2021-08-13", End: "2022-05-22"},
			{Year: 2022, Start: "2022-08-05", End: "2023-05-28", Current: true},
		},
	}
}

// SampleLeagues returns a leagues envelope with Premier League (39) and La Liga (140).
func SampleLeagues() domain.Collection[leagues.League] {
	return domain.NewCollection(leagues.Entity, []leagues.League{
		SampleLeague(39, "Premier League", "England"),
		SampleLeague(140, "La Liga", "Spain"),
	})
}

// SampleCountries returns a countries envelope with England (GB) and Spain (ES).
func SampleCountries() domain.Collection[countries.Country] {
	return domain.NewCollection(countries.Entity, []countries.Country{
		{Name: "England", Code: countries.Optional("GB")},
		{Name: "Spain", Code: countries.Optional("ES")},
	})
}
