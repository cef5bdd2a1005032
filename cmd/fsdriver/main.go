package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fsdriver/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "fsdriver",
	Short: "In-process compiler driver and diagnostic reporting harness",
	Long:  `fsdriver runs a linked-in compiler backend without spawning a process and reproduces the exact diagnostic text a command-line invocation would print`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
