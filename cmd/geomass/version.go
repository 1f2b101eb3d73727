package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/geomass"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of geomass",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "geomass version %s\n", strings.TrimSpace(geomass.Version))
		},
	}
}
