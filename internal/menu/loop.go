// Package menu runs the interactive roll/quit loop.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"unicode"

	"github.com/KirkDiggler/mcg/internal/errors"
	"github.com/KirkDiggler/mcg/internal/orchestrators/generator"
)

// State is the loop state
type State int

// Loop states
const (
	StateActive State = iota
	StateTerminated
)

// Menu choices and messages
const (
	ChoiceRoll = '1'
	ChoiceQuit = '2'

	Prompt        = "\n1) Roll\n2) Quit\n"
	InvalidChoice = "Please enter 1 or 2."
)

// Config holds the dependencies for the loop
type Config struct {
	Generator generator.Service
	Input     io.Reader
	Output    io.Writer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Input == nil {
		vb.RequiredField("Input")
	}
	if c.Output == nil {
		vb.RequiredField("Output")
	}

	return vb.Build()
}

// Loop reads one choice per iteration until the user quits or input ends
type Loop struct {
	generator generator.Service
	in        *bufio.Reader
	out       io.Writer
	state     State
	rolls     int
}

// New creates a loop in the active state
func New(cfg *Config) (*Loop, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Loop{
		generator: cfg.Generator,
		in:        bufio.NewReader(cfg.Input),
		out:       cfg.Output,
		state:     StateActive,
	}, nil
}

// State returns the current loop state
func (l *Loop) State() State {
	return l.state
}

// Rolls returns how many characters the loop has displayed
func (l *Loop) Rolls() int {
	return l.rolls
}

// Run drives the loop until it terminates. Quitting and end of input both
// return nil.
func (l *Loop) Run(ctx context.Context) error {
	for l.state == StateActive {
		if err := ctx.Err(); err != nil {
			return errors.WrapWithCode(err, errors.CodeCanceled, "menu interrupted")
		}

		if _, err := io.WriteString(l.out, Prompt); err != nil {
			return errors.Wrap(err, "failed to write menu")
		}

		choice, err := l.readChoice()
		if errors.Is(err, io.EOF) {
			slog.Debug("Input closed, leaving menu")
			l.state = StateTerminated
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to read menu choice")
		}

		if err := l.handle(ctx, choice); err != nil {
			return err
		}
	}

	return nil
}

func (l *Loop) handle(ctx context.Context, choice rune) error {
	switch choice {
	case ChoiceRoll:
		return l.roll(ctx)
	case ChoiceQuit:
		slog.Debug("Quit selected", "rolls", l.rolls)
		l.state = StateTerminated
		return nil
	default:
		// Other digits get the same prompt as any other key.
		slog.Debug("Invalid menu choice", "choice", string(choice))
		if _, err := fmt.Fprintln(l.out, InvalidChoice); err != nil {
			return errors.Wrap(err, "failed to write prompt")
		}
		return nil
	}
}

func (l *Loop) roll(ctx context.Context) error {
	output, err := l.generator.Roll(ctx, &generator.RollInput{})
	if err != nil {
		return errors.Wrap(err, "failed to roll character")
	}

	for _, line := range output.Lines {
		if _, err := fmt.Fprintln(l.out, line); err != nil {
			return errors.Wrap(err, "failed to write character")
		}
	}
	l.rolls++
	return nil
}

// readChoice returns the next non-whitespace character of input
func (l *Loop) readChoice() (rune, error) {
	for {
		r, _, err := l.in.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}
