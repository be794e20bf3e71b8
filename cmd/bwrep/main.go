// Command bwrep prints information decoded from a StarCraft: Brood War
// replay file.
//
// Grounded on icza/screp/cmd/screp/screp.go's feature set (header / map /
// commands / computed output toggles, JSON output) translated from its
// flag-based CLI into cobra subcommands, per condortango/w3g-parser's go.mod
// (the pack's cobra-using CLI exemplar).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brooddecode/bwrep"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bwrep:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bwrep",
		Short:         "Decode StarCraft: Brood War replay files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("commands", true, "decode the commands section")
	root.PersistentFlags().Bool("map-data", true, "decode the map section")
	root.PersistentFlags().Bool("debug", false, "retain each section's raw framed bytes for inspection")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newActionsCmd())
	root.AddCommand(newMapCmd())
	return root
}

// configFromFlags builds a bwrep.Config from the root command's persistent
// --commands/--map-data/--debug flags, the same knobs repparser.Config
// exposes as a library parameter.
func configFromFlags(cmd *cobra.Command) bwrep.Config {
	commands, _ := cmd.Flags().GetBool("commands")
	mapData, _ := cmd.Flags().GetBool("map-data")
	debug, _ := cmd.Flags().GetBool("debug")
	return bwrep.Config{Commands: commands, MapData: mapData, Debug: debug}
}
