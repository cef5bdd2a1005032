package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fsdriver/internal/batch"
	"fsdriver/internal/driver"
	"fsdriver/internal/engine"
	"fsdriver/internal/replay"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] script.toml",
	Short: "Run a scripted sequence of compilations",
	Long:  `Batch reads a TOML run script ([[job]] blocks with dir and args) and executes every job in order through the in-process driver. Jobs run strictly one at a time: the console capture is process-global state`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Bool("ui", false, "show interactive progress while running")
	batchCmd.Flags().Bool("check", false, "preflight the script without compiling anything")
	batchCmd.Flags().Int("jobs", 0, "max parallel workers for --check (0=auto)")
	batchCmd.Flags().String("record", "", "write finished runs to this replay file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	script, err := batch.LoadScript(args[0])
	if err != nil {
		return err
	}
	if len(script.Jobs) == 0 {
		return fmt.Errorf("run script %q contains no jobs", args[0])
	}

	checkOnly, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	if checkOnly {
		return runBatchCheck(cmd, script.Jobs)
	}

	if engine.Default() == nil {
		return fmt.Errorf("no compiler backend linked into this binary")
	}

	var exe string
	if manifest, ok, err := loadDriverManifest("."); err != nil {
		return err
	} else if ok {
		exe = manifest.Config.Compiler.Executable
		for i := range script.Jobs {
			script.Jobs[i].Args = applyFormatDefaults(script.Jobs[i].Args, manifest.Config.Format)
		}
	}

	req := &batch.Request{
		Jobs:   script.Jobs,
		Driver: driver.New(&driver.Options{Executable: exe}),
	}

	withUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}

	var res *batch.Result
	if withUI {
		res, err = runBatchWithUI(cmd.Context(), args[0], req)
	} else {
		res, err = runBatchPlain(cmd, req)
	}
	if err != nil {
		return err
	}

	if recordPath, ferr := cmd.Flags().GetString("record"); ferr != nil {
		return fmt.Errorf("failed to get record flag: %w", ferr)
	} else if recordPath != "" {
		if err := replay.Write(recordPath, recordsOf(res)); err != nil {
			return err
		}
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Printf("%d job(s), %d failure(s)\n", len(res.Jobs), res.Failures)
	}
	if res.Failures > 0 {
		os.Exit(1)
	}
	return nil
}

func runBatchPlain(cmd *cobra.Command, req *batch.Request) (*batch.Result, error) {
	res, err := batch.Run(cmd.Context(), req)
	if err != nil {
		return nil, err
	}
	for _, jr := range res.Jobs {
		fmt.Printf("== %s (exit %d)\n", jr.Job.Label(), jr.ExitCode)
		printReport(cmd, jr.Lines, jr.StderrLines)
	}
	return res, nil
}

func runBatchCheck(cmd *cobra.Command, jobs []batch.Job) error {
	workers, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	issues, err := batch.Check(cmd.Context(), jobs, workers)
	if err != nil {
		return err
	}
	for _, issue := range issues {
		fmt.Printf("job %d (%s): %s\n", issue.Index, issue.Job.Label(), issue.Msg)
	}
	if len(issues) > 0 {
		os.Exit(1)
	}
	fmt.Printf("%d job(s) ok\n", len(jobs))
	return nil
}

func recordsOf(res *batch.Result) []replay.Record {
	records := make([]replay.Record, 0, len(res.Jobs))
	for _, jr := range res.Jobs {
		records = append(records, replay.Record{
			Name:        jr.Job.Name,
			Dir:         jr.Job.Dir,
			Args:        jr.Job.Args,
			ExitCode:    jr.ExitCode,
			Lines:       jr.Lines,
			StderrLines: jr.StderrLines,
		})
	}
	return records
}
