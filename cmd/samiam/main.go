package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"samiam/sam"
)

// Exit codes beyond the program's own coerced stack-bottom value.
// EMPTY_STACK (-1) is produced directly by sam.Run's Result.ExitCode,
// not by a constant here.
const (
	exitParseError = -2
	exitUsage      = -3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var quiet, debug bool

	rootCmd := &cobra.Command{
		Use:           "samiam [FILE]",
		Short:         "samiam — the SaM abstract machine interpreter",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress human-readable diagnostics")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "single-step: list the program and print registers/stack after every instruction")
	rootCmd.SetArgs(args)

	exitCode := 0
	rootCmd.RunE = func(cmd *cobra.Command, cmdArgs []string) error {
		source, err := readSource(cmdArgs)
		if err != nil {
			return err
		}

		opts := sam.OptNone
		if quiet {
			opts = sam.OptQuiet
		}

		vtable := sam.NewDefaultIO()
		es, err := sam.NewExecutionState(source, opts, vtable)
		if err != nil {
			if !quiet {
				fmt.Fprintln(os.Stderr, err)
			}
			exitCode = exitParseError
			return nil
		}

		var result sam.Result
		if debug {
			result = sam.RunDebug(es)
		} else {
			result = sam.Run(es)
		}
		exitCode = int(result.ExitCode)
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	return exitCode
}

func readSource(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
