package cmdgif

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jlrickert/cmd-convert-gif/internal/logger"
	"github.com/jlrickert/cmd-convert-gif/internal/natsort"
	"github.com/jlrickert/cmd-convert-gif/internal/ui"
)

// Converter is the ImageMagick binary that assembles the frames.
const Converter = "convert"

// Options are the parsed command line.
type Options struct {
	// Extension is the frame suffix without its leading dot.
	Extension string
	// ExtensionSet records whether --extension was given at all; an empty
	// value given explicitly still narrows the pattern to "*.".
	ExtensionSet bool
	// InputFile is accepted for compatibility and otherwise ignored.
	InputFile  string
	OutputFile string
	Delay      string
}

// Pattern returns the glob used to find frames.
func (o Options) Pattern() string {
	if !o.ExtensionSet {
		return "*"
	}
	return "*." + o.Extension
}

// Command is a single external invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
}

// String renders the command line with single spaces, unquoted.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// BuildCommand assembles
//
//	convert -delay <delay> -loop 0 <files...> <output>
//
// Empty delay or output values are kept as empty arguments.
func BuildCommand(opts Options, files []string) Command {
	args := make([]string, 0, len(files)+5)
	args = append(args, "-delay", opts.Delay, "-loop", "0")
	args = append(args, files...)
	args = append(args, opts.OutputFile)
	return Command{Name: Converter, Args: args}
}

// Discover lists the entries of dir whose names match the shell glob
// pattern, in natural order. Subdirectories are not descended into, but a
// directory whose name matches is listed like any file. As with a shell
// glob, names starting with a dot only match a pattern that starts with
// one. The pattern is never rejected: brackets that do not form a class
// match themselves.
func Discover(dir, pattern string) ([]string, error) {
	glob := shellPattern(pattern)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s failed: %w", dir, err)
	}

	hidden := strings.HasPrefix(pattern, ".")
	var files []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") && !hidden {
			continue
		}
		if ok, _ := filepath.Match(glob, name); ok {
			files = append(files, name)
		}
	}

	natsort.Sort(files)
	return files, nil
}

// Runner executes an external command to completion.
type Runner interface {
	Run(ctx context.Context, c Command) error
}

// execRunner runs commands with the caller's terminal attached.
type execRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (r *execRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if r.stdout != nil {
		cmd.Stdout = r.stdout
	} else {
		cmd.Stdout = os.Stdout
	}
	if r.stderr != nil {
		cmd.Stderr = r.stderr
	} else {
		cmd.Stderr = os.Stderr
	}
	cmd.Stdin = r.stdin
	return cmd.Run()
}

// assemble discovers the frames and runs the converter once. A failing
// converter is reported but does not fail the run.
func assemble(ctx context.Context, e env, opts Options) error {
	logger.Debug("options",
		"extension", opts.Extension,
		"output", opts.OutputFile,
		"delay", opts.Delay,
	)
	if opts.InputFile != "" {
		logger.Debug("input file is not used for discovery", "input", opts.InputFile)
	}

	pattern := opts.Pattern()
	files, err := Discover(e.dir, pattern)
	if err != nil {
		// An unreadable directory matches nothing, like a shell glob.
		logger.Warn("listing frames failed", "dir", e.dir, "err", err)
		ui.WarnMsg(e.stderr, err.Error())
	}
	logger.Debug("discovered frames", "pattern", pattern, "count", len(files))
	if len(files) == 0 {
		ui.WarnMsg(e.stderr, fmt.Sprintf("no files match %s", pattern))
	}

	c := BuildCommand(opts, files)
	if e.dir != "." {
		c.Dir = e.dir
	}
	logger.Debug("running", "cmd", c.String())

	if err := e.runner.Run(ctx, c); err != nil {
		logger.Warn("converter failed", "cmd", c.Name, "err", err)
		if errors.Is(err, exec.ErrNotFound) {
			ui.ErrorMsg(e.stderr, c.Name+" could not be started", err, "install ImageMagick and make sure convert is on PATH")
		} else {
			ui.ErrorMsg(e.stderr, c.Name+" failed", err)
		}
	}
	return nil
}
