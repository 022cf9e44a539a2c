package leagues

import (
	"strconv"

	"football-client/internal/domain/countries"
)

// Entity is the collection key and endpoint name for leagues.
const Entity = "leagues"

// Info is the league block of a /leagues entry.
type Info struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Logo string `json:"logo" yaml:"logo"`
}

// Season is one season a league has coverage for.
type Season struct {
	Year     int       `json:"year" yaml:"year"`
	Start    string    `json:"start" yaml:"start"`
	End      string    `json:"end" yaml:"end"`
	Current  bool      `json:"current" yaml:"current"`
	Coverage *Coverage `json:"coverage,omitempty" yaml:"coverage,omitempty"`
}

// Coverage lists which data the provider holds for a season.
type Coverage struct {
	Fixtures    FixtureCoverage `json:"fixtures" yaml:"fixtures"`
	Standings   bool            `json:"standings" yaml:"standings"`
	Players     bool            `json:"players" yaml:"players"`
	TopScorers  bool            `json:"top_scorers" yaml:"top_scorers"`
	TopAssists  bool            `json:"top_assists" yaml:"top_assists"`
	TopCards    bool            `json:"top_cards" yaml:"top_cards"`
	Injuries    bool            `json:"injuries" yaml:"injuries"`
	Predictions bool            `json:"predictions" yaml:"predictions"`
	Odds        bool            `json:"odds" yaml:"odds"`
}

// FixtureCoverage is the per-fixture part of Coverage.
type FixtureCoverage struct {
	Events             bool `json:"events" yaml:"events"`
	Lineups            bool `json:"lineups" yaml:"lineups"`
	StatisticsFixtures bool `json:"statistics_fixtures" yaml:"statistics_fixtures"`
	StatisticsPlayers  bool `json:"statistics_players" yaml:"statistics_players"`
}

// League is one entry of the /leagues response.
type League struct {
	League  Info              `json:"league" yaml:"league"`
	Country countries.Country `json:"country" yaml:"country"`
	Seasons []Season          `json:"seasons" yaml:"seasons"`
}

// RecordID returns the numeric league id in decimal form.
func (l League) RecordID() string {
	return strconv.Itoa(l.League.ID)
}

// RecordName returns the league name.
func (l League) RecordName() string {
	return l.League.Name
}

// Years lists the season years in provider order.
func (l League) Years() []int {
	years := make([]int, 0, len(l.Seasons))
	for _, s := range l.Seasons {
		years = append(years, s.Year)
	}
	return years
}
