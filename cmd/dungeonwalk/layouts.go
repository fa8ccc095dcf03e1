package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/dungeonwalk/internal/gamedata"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the built-in map layouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := gamedata.LoadLayoutRegistry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available layouts:")
		for _, l := range registry.All() {
			fmt.Fprintf(out, "  %-16s %s - %s\n", l.ID, l.Name, l.Description)
		}
		return nil
	},
}
