package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brooddecode/bwrep"
)

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map <replay>",
		Short: "Print the map's unit count and its start locations, mineral fields and geysers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := bwrep.DecodeFileConfig(args[0], configFromFlags(cmd))
			if err != nil {
				return err
			}
			md := r.Map()
			units := md.Units()
			fmt.Fprintf(cmd.OutOrStdout(), "units: %d\n", len(units))
			for _, u := range units {
				switch {
				case u.IsStartLocation():
					fmt.Fprintf(cmd.OutOrStdout(), "  start location  player=%d  x=%d y=%d\n", u.PlayerID, u.X, u.Y)
				case u.IsMineralField():
					fmt.Fprintf(cmd.OutOrStdout(), "  mineral field   x=%d y=%d  amount=%d\n", u.X, u.Y, u.ResourceAmount)
				case u.IsGeyser():
					fmt.Fprintf(cmd.OutOrStdout(), "  geyser          x=%d y=%d  amount=%d\n", u.X, u.Y, u.ResourceAmount)
				}
			}
			return nil
		},
	}
	return cmd
}
