// Command ripplec is a thin driver over the checker library: it loads a
// JSON program fixture, runs CheckAll, and prints the resulting
// diagnostics. It does not parse real source, build, or orchestrate
// incremental compilation — those stay out of scope, per the library's own
// charter (grounded on the teacher's cmd/surge root command setup, trimmed
// to the one subcommand this repository can honestly drive end-to-end).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ripplec",
	Short: "Type table and checker driver",
	Long:  `ripplec runs the semantic checker against a JSON program fixture and prints diagnostics.`,
}

func main() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 200, "maximum number of diagnostics to collect")
	rootCmd.PersistentFlags().String("config", "", "path to a ripple.toml overriding checker defaults")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
