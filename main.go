package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	clear      bool
	stats      bool
	bounded    bool
	parallel   bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "go-lifesim <pattern-file> <generation-count>",
		Short: "Run Conway's Game of Life on a Life 1.05, Life 1.06 or RLE pattern",
		Long: "Reads a starting position, advances it the given number of generations " +
			"on a bordered grid and prints the final generation to standard output.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			generations, err := parseGenerations(args[1])
			if err != nil {
				return err
			}

			config, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("clear") {
				config.ClearScreen = flags.clear
			}
			if cmd.Flags().Changed("bounded") {
				config.UseBoundedGrid = flags.bounded
			}
			if cmd.Flags().Changed("parallel") {
				config.UseParallel = flags.parallel
			}

			// Arguments are fine from here on, failures are not usage problems
			cmd.SilenceUsage = true
			return runSimulation(config, args[0], generations, cmd.OutOrStdout(), cmd.ErrOrStderr(), flags.stats)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "JSON config file (grid size, step mode)")
	cmd.Flags().BoolVar(&flags.clear, "clear", false, "Clear the terminal before printing the grid")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "Print run statistics to stderr")
	cmd.Flags().BoolVar(&flags.bounded, "bounded", false, "Only recompute the live region each generation")
	cmd.Flags().BoolVar(&flags.parallel, "parallel", true, "Split each generation across CPU cores; ignored with --bounded")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
