package cli

import (
	"github.com/spf13/pflag"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	dataDir   string
	logLevel  string
	logFormat string
}

func (o *rootOptions) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.dataDir, "data-dir", "", "Data directory for cached collections (default: $FOOTBALL_DATA_DIR or ~/.football_client/data)")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn or error (default: $LOG_LEVEL or info)")
	fs.StringVar(&o.logFormat, "log-format", "", "Log format: text or json (default: $LOG_FORMAT or text)")
}

// requestOptions are the flags accepted by get and all.
type requestOptions struct {
	leagueID   int
	season     int
	serializer string
}

func (o *requestOptions) bind(fs *pflag.FlagSet) {
	fs.IntVar(&o.leagueID, "league-id", 0, "League id (required for teams and players)")
	fs.IntVar(&o.season, "season", 0, "Season year (required for teams and players)")
	fs.StringVar(&o.serializer, "serializer", "", "Output format: json, tsv or yaml (default: $FOOTBALL_SERIALIZER or json)")
}

// scopeGiven reports which of --league-id and --season were passed.
func scopeGiven(fs *pflag.FlagSet) (leagueID, season bool) {
	return fs.Changed("league-id"), fs.Changed("season")
}
