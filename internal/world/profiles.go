package world

import (
	"strconv"
	"strings"

	"football-client/internal/domain"
	"football-client/internal/domain/leagues"
	"football-client/internal/serializer"
)

const (
	leaguesSimplified = "leagues_simplified"
	seasonsSimplified = "seasons_simplified"

	seasonSeparator = ", "
)

// LeaguesProfile adds the simplified projections to structured league writes and
// fixes the delimited columns to ID, Name, Type, Country, Seasons.
func LeaguesProfile() serializer.Profile[leagues.League] {
	structured := serializer.Options[leagues.League]{Projections: leagueProjections()}
	return serializer.Profile[leagues.League]{
		Entity: leagues.Entity,
		Overrides: map[serializer.Format]serializer.Options[leagues.League]{
			serializer.FormatJSON: structured,
			serializer.FormatYAML: structured,
			serializer.FormatTSV:  {Columns: leagueColumns()},
		},
	}
}

func leagueProjections() []serializer.Projection[leagues.League] {
	return []serializer.Projection[leagues.League]{
		{
			Name:  leaguesSimplified,
			Build: func(c domain.Collection[leagues.League]) any { return leagues.Simplify(c.Response) },
		},
		{
			Name:  seasonsSimplified,
			Build: func(c domain.Collection[leagues.League]) any { return leagues.SeasonRows(c.Response) },
		},
	}
}

func leagueColumns() []serializer.Column[leagues.League] {
	return []serializer.Column[leagues.League]{
		{Header: "ID", Value: func(l leagues.League) string { return strconv.Itoa(l.League.ID) }},
		{Header: "Name", Value: func(l leagues.League) string { return l.League.Name }},
		{Header: "Type", Value: func(l leagues.League) string { return l.League.Type }},
		{Header: "Country", Value: func(l leagues.League) string { return l.Country.Name }},
		{Header: "Seasons", Value: joinSeasons},
	}
}

func joinSeasons(l leagues.League) string {
	years := l.Years()
	parts := make([]string, 0, len(years))
	for _, y := range years {
		parts = append(parts, strconv.Itoa(y))
	}
	return strings.Join(parts, seasonSeparator)
}
