package leagues

// Simplified is the reduced league view written to leagues_simplified.json.
type Simplified struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Seasons []int  `json:"seasons"`
}

// SeasonRow is one league x season row written to seasons_simplified.json.
type SeasonRow struct {
	LeagueID   int    `json:"league_id"`
	LeagueName string `json:"league_name"`
	Country    string `json:"country"`
	Year       int    `json:"year"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// Simplify keeps only id, name, country and season years of each league.
func Simplify(items []League) []Simplified {
	out := make([]Simplified, 0, len(items))
	for _, lg := range items {
		out = append(out, Simplified{
			ID:      lg.League.ID,
			Name:    lg.League.Name,
			Country: lg.Country.Name,
			Seasons: lg.Years(),
		})
	}
	return out
}

// SeasonRows flattens every league season into its own row.
func SeasonRows(items []League) []SeasonRow {
	out := make([]SeasonRow, 0, len(items))
	for _, lg := range items {
		for _, s := range lg.Seasons {
			out = append(out, SeasonRow{
				LeagueID:   lg.League.ID,
				LeagueName: lg.League.Name,
				Country:    lg.Country.Name,
				Year:       s.Year,
				Start:      s.Start,
				End:        s.End,
			})
		}
	}
	return out
}
