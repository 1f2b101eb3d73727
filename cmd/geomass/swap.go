package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/geomass/internal/cli"
	"github.com/aretw0/geomass/internal/swap"
)

func newSwapCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap <input> <output>",
		Short: "Exchange two lines of a file",
		Long:  `Copies input to output with the lines at the two 0-based indices exchanged. Every other line is kept in place.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log")
			logger, err := cli.NewLogger(a.stderr, level)
			if err != nil {
				return err
			}
			a.logger = logger

			first, _ := cmd.Flags().GetInt("first")
			second, _ := cmd.Flags().GetInt("second")

			return cli.RunSwap(cmd.Context(), cli.SwapOptions{
				Input:  args[0],
				Output: args[1],
				First:  first,
				Second: second,
				Logger: logger,
			})
		},
	}

	cmd.Flags().Int("first", swap.DefaultFirst, "0-based index of the first line")
	cmd.Flags().Int("second", swap.DefaultSecond, "0-based index of the second line")
	return cmd
}
