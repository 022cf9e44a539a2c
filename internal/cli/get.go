package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"football-client/internal/domain/countries"
	"football-client/internal/resolver"
	"football-client/internal/world"
)

func (a *App) newGetCmd() *cobra.Command {
	var req requestOptions
	cmd := &cobra.Command{
		Use:       "get <entity> <identifier>",
		Short:     "Look up one record by numeric id or by name",
		Args:      cobra.ExactArgs(2),
		ValidArgs: entityNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGet(cmd, req, args[0], args[1])
		},
	}
	req.bind(cmd.Flags())
	return cmd
}

func (a *App) runGet(cmd *cobra.Command, req requestOptions, rawEntity, identifier string) error {
	kind, err := a.checkRequest(cmd, rawEntity)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	s, err := a.open(ctx, req)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	lookup := parseIdentifier(identifier)
	switch kind {
	case entityLeague:
		lg, found, err := s.world.Leagues.Get(ctx, lookup)
		return a.printRecord(lg, found, err)
	default:
		c, found, err := getCountry(ctx, s.world, lookup)
		return a.printRecord(c, found, err)
	}
}

// getCountry looks a country up by name and, on a miss, by code.
// Both matches run over one resolution of the collection.
func getCountry(ctx context.Context, w *world.World, lookup resolver.Lookup) (countries.Country, bool, error) {
	if lookup.Name == "" {
		return w.Countries.Get(ctx, lookup)
	}
	records, err := w.Countries.All(ctx)
	if err != nil {
		return countries.Country{}, false, err
	}
	for _, c := range records {
		if c.RecordName() == lookup.Name {
			return c, true, nil
		}
	}
	code := strings.ToUpper(lookup.Name)
	for _, c := range records {
		if c.RecordID() == code {
			return c, true, nil
		}
	}
	return countries.Country{}, false, nil
}

func (a *App) printRecord(record any, found bool, err error) error {
	if err != nil {
		return err
	}
	if !found {
		return writeNotFound(a.stdout)
	}
	return writeJSON(a.stdout, record)
}

// checkRequest validates the entity and its scope flags before any config or network work.
func (a *App) checkRequest(cmd *cobra.Command, rawEntity string) (entityKind, error) {
	kind, err := parseEntity(rawEntity)
	if err != nil {
		return "", err
	}

	hasLeague, hasSeason := scopeGiven(cmd.Flags())
	if kind.scoped() {
		if !hasLeague || !hasSeason {
			return "", fmt.Errorf("%s requests: %w", kind, ErrMissingScope)
		}
		return "", fmt.Errorf("%s requests: %w", kind, ErrNotImplemented)
	}
	if hasLeague || hasSeason {
		fmt.Fprintf(a.stderr, "Warning: --league-id and --season are ignored for %s requests\n", kind)
	}
	return kind, nil
}
