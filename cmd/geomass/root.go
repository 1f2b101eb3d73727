package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/geomass/internal/cli"
	"github.com/aretw0/geomass/internal/config"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geomass [flags] <input.out>",
		Short: "Extract the Cartesian geometry of a quantum-chemistry output",
		Long: `Locates the block two lines below the 'CARTESIAN COORDINATES (ANGSTROEM)' header,
replaces each row's element symbol with its integer mass and writes the rows to
geometry.txt in the output directory. Spacing and trailing columns are preserved.

Exit codes: 0 success, 2 input file not found, 1 any other failure.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, args[0])
			if err != nil {
				return err
			}

			logger, err := cli.NewLogger(a.stderr, cfg.LogLevel)
			if err != nil {
				return err
			}
			a.logger = logger

			return cli.RunExtract(cmd.Context(), cli.RunOptions{
				Config: cfg,
				Stdout: a.stdout,
				Logger: logger,
			})
		},
	}

	// Persistent flags (available to all commands)
	cmd.PersistentFlags().String("log", "INFO", "Logging level: DEBUG, INFO, WARNING, ERROR or CRITICAL")

	cmd.Flags().String("outdir", ".", "Directory for generated outputs")
	cmd.Flags().Bool("strict", false, "Treat unknown first tokens in geometry rows as errors instead of leaving them unchanged")
	cmd.Flags().String("config", "", "YAML run configuration (flags override its values)")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics in textfile format to this path")

	cmd.AddCommand(newSwapCmd(a), newVersionCmd())
	return cmd
}

// resolveConfig layers explicitly set flags over the config file (or defaults).
func resolveConfig(cmd *cobra.Command, input string) (config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Defaults()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if flags.Changed("outdir") {
		cfg.OutDir, _ = flags.GetString("outdir")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("log") {
		cfg.LogLevel, _ = flags.GetString("log")
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}
	cfg.Input = input

	return cfg, config.Validate(cfg)
}
