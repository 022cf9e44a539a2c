package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"football-client/internal/resolver"
)

// ErrNotImplemented is returned for entity kinds the client cannot resolve yet.
var ErrNotImplemented = errors.New("not implemented")

// ErrMissingScope is returned when a team or player request lacks --league-id or --season.
var ErrMissingScope = errors.New("--league-id and --season are required")

type entityKind string

const (
	entityLeague  entityKind = "league"
	entityCountry entityKind = "country"
	entityTeam    entityKind = "team"
	entityPlayer  entityKind = "player"
)

// entityNames lists every accepted spelling, singular first.
var entityNames = []string{"league", "leagues", "country", "countries", "team", "teams", "player", "players"}

func parseEntity(raw string) (entityKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "league", "leagues":
		return entityLeague, nil
	case "country", "countries":
		return entityCountry, nil
	case "team", "teams":
		return entityTeam, nil
	case "player", "players":
		return entityPlayer, nil
	default:
		return "", fmt.Errorf("unknown entity %q (expected one of %s)", raw, strings.Join(entityNames, ", "))
	}
}

// scoped reports whether the entity only makes sense within a league season.
func (k entityKind) scoped() bool {
	return k == entityTeam || k == entityPlayer
}

// parseIdentifier treats an integer as an id and anything else as a name.
func parseIdentifier(raw string) resolver.Lookup {
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return resolver.Lookup{ID: strconv.Itoa(n)}
	}
	return resolver.Lookup{Name: trimmed}
}
