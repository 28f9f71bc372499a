package cmdgif

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Usage is printed for --help and on any argument error.
const Usage = "convert_gif.py --extension=[] -i <inputfile> -o <outputfile>"

// UsageError reports a malformed command line. The usage text has already
// been printed when it is returned.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var uerr *UsageError
	if errors.As(err, &uerr) {
		return 2
	}
	return 1
}

// env holds what Run takes from the process so tests can swap it.
type env struct {
	dir    string
	stdout io.Writer
	stderr io.Writer
	runner Runner
}

// Run parses args (program name at index 0, as in os.Args), collects the
// matching frames from the working directory and hands them to convert.
func Run(ctx context.Context, args []string) error {
	e := env{
		dir:    ".",
		stdout: os.Stdout,
		stderr: os.Stderr,
		runner: &execRunner{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr},
	}
	return run(ctx, args, e)
}

func run(ctx context.Context, args []string, e env) error {
	// Drop program name if present
	if len(args) > 0 {
		args = args[1:]
	}
	// cobra falls back to os.Args on a nil slice
	if args == nil {
		args = []string{}
	}
	args, err := expandLongOptions(args, longOptions)
	if err != nil {
		fmt.Fprintln(e.stdout, Usage)
		return &UsageError{Err: err}
	}

	var opts Options
	root := &cobra.Command{
		Use:           "convert-gif",
		Short:         "Assemble the frames in the current directory into an animated image",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			opts.ExtensionSet = cmd.Flags().Changed("extension")
			return assemble(cmd.Context(), e, opts)
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.Flags()
	// getopt stops at the first operand; everything after it is ignored.
	flags.SetInterspersed(false)
	// pflag wants a long name; expandLongOptions never lets --ifile through.
	flags.StringVarP(&opts.InputFile, "ifile", "i", "", "input file (accepted, not used for discovery)")
	_ = flags.MarkHidden("ifile")
	flags.StringVarP(&opts.OutputFile, "ofile", "o", "", "output file")
	flags.StringVar(&opts.Extension, "extension", "", "extension of the frames to collect")
	flags.StringVar(&opts.Delay, "delay", "", "frame delay passed to convert")

	printUsage := func(cmd *cobra.Command) {
		fmt.Fprintln(cmd.OutOrStdout(), Usage)
	}
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) { printUsage(cmd) })
	root.SetUsageFunc(func(cmd *cobra.Command) error {
		printUsage(cmd)
		return nil
	})
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		printUsage(cmd)
		return &UsageError{Err: err}
	})

	root.SetOut(e.stdout)
	root.SetErr(e.stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
