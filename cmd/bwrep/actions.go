package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brooddecode/bwrep"
)

func newActionsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "actions <replay>",
		Short: "Print the decoded action stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := bwrep.DecodeFileConfig(args[0], configFromFlags(cmd))
			if err != nil {
				return err
			}
			stream := r.Actions()
			n := 0
			for {
				if limit > 0 && n >= limit {
					break
				}
				a, ok := stream.Next()
				if !ok {
					break
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%8d  player=%-2d  %-16s %v\n",
					a.Frame, a.Player, a.Opcode, a.Params)
				n++
			}
			if stream.Truncated() {
				fmt.Fprintln(cmd.ErrOrStderr(), "bwrep: action stream truncated (frame gap or corrupt trailing block)")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many actions (0 = no limit)")
	return cmd
}
