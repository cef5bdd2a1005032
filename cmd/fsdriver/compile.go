package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fsdriver/internal/driver"
	"fsdriver/internal/engine"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] -- <compiler arguments>",
	Short: "Run one in-process compilation and print its report",
	Long:  `Compile hands the given arguments to the linked-in compiler backend, captures everything it prints, and writes the combined diagnostic report to stdout in the legacy line format selected by the compatibility switches in the arguments`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().String("dir", ".", "working directory for the invocation (not restored afterwards)")
}

func runCompile(cmd *cobra.Command, args []string) error {
	if engine.Default() == nil {
		return fmt.Errorf("no compiler backend linked into this binary")
	}

	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("failed to get dir flag: %w", err)
	}

	commandLine := strings.Join(args, " ")
	var exe string
	if manifest, ok, err := loadDriverManifest(dir); err != nil {
		return err
	} else if ok {
		exe = manifest.Config.Compiler.Executable
		commandLine = applyFormatDefaults(commandLine, manifest.Config.Format)
	}

	d := driver.New(&driver.Options{Executable: exe})
	code, lines, stderrLines, err := d.CompileFromCommandLine(dir, commandLine)
	if err != nil {
		return fmt.Errorf("compilation setup failed: %w", err)
	}

	printReport(cmd, lines, stderrLines)
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

func printReport(cmd *cobra.Command, lines, stderrLines []string) {
	colorize := useColor(cmd, os.Stdout)
	for _, line := range lines {
		fmt.Println(colorizeLine(line, colorize))
	}
	for _, line := range stderrLines {
		fmt.Fprintln(os.Stderr, line)
	}
}

var (
	errorLineColor   = color.New(color.FgRed)
	warningLineColor = color.New(color.FgYellow)
)

// colorizeLine tints whole report lines by their kind without touching
// the text itself; the uncolored bytes stay exactly what the harness
// would compare against.
func colorizeLine(line string, enabled bool) string {
	if !enabled {
		return line
	}
	switch {
	case strings.Contains(line, " error "):
		return errorLineColor.Sprint(line)
	case strings.Contains(line, " warning "):
		return warningLineColor.Sprint(line)
	}
	return line
}
