package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"chisel/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "chisel",
	Short: "Chisel source formatter",
	Long:  `Chisel rewrites declaration headers and import lists into a canonical layout`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cleanCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of parallel workers (0 = all CPUs)")
	rootCmd.PersistentFlags().String("ui", "auto", "progress UI (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
