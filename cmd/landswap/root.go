package main

import (
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	pairsFlag int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:     "landswap",
	Version: version,
	Short:   "Paired land-use swap optimizer",
	Long: `landswap rebalances farmland placement by repeatedly swapping paired
parcels (farmland to forest, forest to farmland) so the farmland average
slope drops and spatial contiguity rises, while the total farmland count
never changes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "run.yaml", "run configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(runCmd, inspectCmd)
}

func execute() error {
	return rootCmd.Execute()
}
