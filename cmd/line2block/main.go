package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"github.com/maciejjwojcik/line2block/internal/driver"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "line2block [flags] <file> [file...]",
		Short: "Rewrite // comments as /* */ block comments",
		Long: `line2block converts single-line // comments in C-family source files
into block comment form. Runs of consecutive comment lines are grouped
into one /* */ block; code lines pass through unchanged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}
	cmd.Flags().BoolP("verbose", "v", false, "log progress and duplicate-file warnings to stderr")
	cmd.Flags().BoolP("inplace", "i", false, "rewrite files instead of printing to stdout")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	inplace, err := cmd.Flags().GetBool("inplace")
	if err != nil {
		return err
	}

	if verbose {
		log.SetLogLevelQuiet(log.Verbose)
	}

	results, err := driver.ProcessPaths(cmd.Context(), args, driver.Options{InPlace: inplace})
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	errOut := cmd.ErrOrStderr()

	hasErrors := false
	for _, res := range results {
		switch {
		case res.Skipped:
			log.LogVf("Skipping duplicate file %s", res.Path)
		case res.Err != nil:
			hasErrors = true
			if errors.Is(res.Err, fs.ErrNotExist) {
				fmt.Fprintf(errOut, "Error: File '%s' was not found\n", res.Path)
			} else {
				fmt.Fprintf(errOut, "Error: %v\n", res.Err)
			}
		case inplace:
			log.LogVf("Rewrote %s", res.Path)
		default:
			log.LogVf("Formatted %s", res.Path)
			if _, err := out.WriteString(res.Output); err != nil {
				return err
			}
		}
	}
	if err := out.Flush(); err != nil {
		return err
	}

	if hasErrors {
		fmt.Fprintln(errOut, "Note: errors occurred while formatting")
		return errors.New("some files could not be formatted")
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
