package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fsdriver/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay file",
	Short: "Print runs recorded by batch --record",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	records, err := replay.Read(args[0])
	if err != nil {
		return err
	}
	for i, rec := range records {
		label := rec.Name
		if label == "" {
			label = rec.Args
		}
		fmt.Printf("== [%d] %s (dir %s, exit %d)\n", i, label, rec.Dir, rec.ExitCode)
		for _, line := range rec.Lines {
			fmt.Println(line)
		}
		for _, line := range rec.StderrLines {
			fmt.Fprintln(os.Stderr, line)
		}
	}
	return nil
}
