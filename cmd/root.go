package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.olrik.dev/tinit/internal/core"
	"go.olrik.dev/tinit/internal/supervisor"
)

// Execute runs the root command and returns the process exit code: the
// supervised child's exit code on a normal run, 0 for --help/--version,
// 1 for argument errors or a supervisor failure.
func Execute() int {
	var exitCode int
	root := NewRootCommand(&exitCode)
	if err := root.Execute(); err != nil {
		// Cobra has already printed the error and usage to stderr
		return 1
	}
	return exitCode
}

func NewRootCommand(exitCode *int) *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "tinit [flags] program [args...]",
		Short: "tinit - a tiny init for containers",
		Long: `tinit - a tiny init for containers

Runs the given program as the only child of a PID-1 supervisor. tinit
forwards the signals it receives to the child, reaps any orphaned
descendants, and exits with the child's exit code (128 + the signal
number if the child was killed by a signal).`,
		Version: core.FormatVersion(core.Version),
		// Cobra prints only the error line for argument-count failures,
		// so a forgotten program name writes the usage text itself.
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return errors.New("missing program to run")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := core.NewLogger(verbose)
			code, err := supervisor.New(logger).Run(args)
			if err != nil {
				// Fatal supervisor conditions exit 1 with a diagnostic,
				// not a usage dump.
				logger.Error(err.Error())
				*exitCode = 1
				return nil
			}
			*exitCode = code
			return nil
		},
	}
	rootCmd.Flags().CountVarP(&verbose, "verbose", "v", "more output, repeat for even more (up to 4)")

	// Everything after the program name belongs to the child, even if it
	// looks like one of our flags.
	rootCmd.Flags().SetInterspersed(false)

	return rootCmd
}
