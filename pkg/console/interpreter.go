// Package console implements a line-oriented command interpreter that edits
// and renders a raytracer scene.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"

	"github.com/df07/go-mrt-raytracer/pkg/core"
	"github.com/df07/go-mrt-raytracer/pkg/renderer"
)

var (
	// ErrUnknownCommand is returned for a line whose first word names no command
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command's arguments are missing or malformed
	ErrUsage = errors.New("usage")
	// ErrSceneFull is returned when a primitive could not be added to the scene
	ErrSceneFull = errors.New("scene is full")

	// errStop ends Run without an error; see quit and uioff
	errStop = errors.New("stop")
)

// Interpreter reads commands and applies them to a raytracer
type Interpreter struct {
	rt     *renderer.Raytracer
	out    io.Writer
	logger core.Logger
	reg    *registry

	// Prompt is written before each line is read; empty disables it
	Prompt string
	// OutputScale enlarges images written by save
	OutputScale int

	quit bool
}

// NewInterpreter creates an interpreter driving rt and writing replies to out
func NewInterpreter(rt *renderer.Raytracer, out io.Writer, logger core.Logger) (*Interpreter, error) {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	in := &Interpreter{rt: rt, out: out, logger: logger, OutputScale: 1}

	r := newRegistry()
	for _, register := range []func(r *registry) error{
		registerSceneCommands,
		registerCameraCommands,
		registerSessionCommands,
	} {
		if err := register(r); err != nil {
			return nil, err
		}
	}
	in.reg = r
	return in, nil
}

// QuitRequested reports whether the session ended with quit rather than uioff or end of input
func (in *Interpreter) QuitRequested() bool {
	return in.quit
}

// Run executes lines from r until end of input, quit, uioff or cancellation.
// Command errors are reported to the output and do not stop the loop.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		in.printf("%s", in.Prompt)
		if !scanner.Scan() {
			break
		}
		lineNo++

		err := in.Execute(ctx, scanner.Text())
		switch {
		case err == nil:
		case errors.Is(err, errStop):
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			in.printf("error: %v\n", err)
			in.logger.Printf("Command on line %d failed: %v\n", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}

// Execute runs a single command line. Blank lines and comments do nothing.
func (in *Interpreter) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	words, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(words) == 0 {
		return nil
	}

	cmd, ok := in.reg.resolve(words[0])
	if !ok {
		return fmt.Errorf("%w: %s (try help)", ErrUnknownCommand, words[0])
	}

	args := words[1:]
	if !cmd.acceptsArgs(len(args)) {
		return fmt.Errorf("%w: %s", ErrUsage, cmd.Usage)
	}
	return cmd.Run(ctx, in, args)
}

func (in *Interpreter) printf(format string, args ...interface{}) {
	fmt.Fprintf(in.out, format, args...)
}
