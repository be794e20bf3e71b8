package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brooddecode/bwrep"
)

func newInfoCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info <replay>",
		Short: "Print header and matchup information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := bwrep.DecodeFileConfig(args[0], configFromFlags(cmd))
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(r.Header)
			}
			h := r.Header
			fmt.Fprintf(cmd.OutOrStdout(), "engine:    %s\n", h.Engine)
			fmt.Fprintf(cmd.OutOrStdout(), "map:       %s (%dx%d walk-tiles)\n", h.MapName, h.MapWidth, h.MapHeight)
			fmt.Fprintf(cmd.OutOrStdout(), "game:      %s\n", h.GameName)
			fmt.Fprintf(cmd.OutOrStdout(), "duration:  %s\n", h.Duration())
			fmt.Fprintf(cmd.OutOrStdout(), "matchup:   %s\n", h.Matchup())
			fmt.Fprintf(cmd.OutOrStdout(), "players:   %v\n", h.PlayerNames())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the header as JSON")
	return cmd
}
