package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) newAllCmd() *cobra.Command {
	var req requestOptions
	cmd := &cobra.Command{
		Use:       "all <entity>",
		Short:     "List every record of an entity",
		Args:      cobra.ExactArgs(1),
		ValidArgs: entityNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAll(cmd, req, args[0])
		},
	}
	req.bind(cmd.Flags())
	return cmd
}

func (a *App) runAll(cmd *cobra.Command, req requestOptions, rawEntity string) error {
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

	switch kind {
	case entityLeague:
		items, err := s.world.Leagues.All(ctx)
		if err != nil {
			return err
		}
		return writeJSON(a.stdout, items)
	default:
		items, err := s.world.Countries.All(ctx)
		if err != nil {
			return err
		}
		return writeJSON(a.stdout, items)
	}
}
