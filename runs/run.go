package runs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/simpleparser/backends"
	"github.com/reusee/simpleparser/debugs"
	"github.com/reusee/simpleparser/logs"
	"github.com/reusee/simpleparser/modes"
	"github.com/reusee/simpleparser/simplang"
)

type Run func(ctx context.Context) error

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	loadOptions LoadOptions,
	stdin Stdin,
	stdout Stdout,
	newBackend backends.New,
	tap debugs.Tap,
	mode modes.Mode,
) Run {
	return func(ctx context.Context) (err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			if err != nil {
				logger.DebugContext(ctx, "run failed",
					"error", logs.WrapSpan(ctx, err),
				)
			}
		}()

		options, err := loadOptions()
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "run",
			"mode", mode,
			"source", options.Source,
			"output", options.Output,
			"backend", options.Backend,
		)

		name, err := backends.ParseName(options.Backend)
		if err != nil {
			return err
		}

		source, err := readSource(options.Source, stdin)
		if err != nil {
			return err
		}

		instructions, err := simplang.ParseSource(source)
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "parsed",
			"instructions", len(instructions),
		)

		if options.List {
			if err := WriteList(stdout, instructions); err != nil {
				return err
			}
		}

		var output io.Writer = stdout
		if options.Output != "" {
			f, createErr := os.Create(options.Output)
			if createErr != nil {
				return fmt.Errorf("invalid output file %s: %w", options.Output, createErr)
			}
			counter := &countingWriter{Writer: f}
			defer func() {
				if e := f.Close(); e != nil && err == nil {
					err = e
				}
				// failed runs leave no empty file behind
				if err != nil && counter.n == 0 {
					_ = os.Remove(options.Output)
				}
			}()
			output = counter
		}

		backend, err := newBackend(name, output)
		if err != nil {
			return err
		}

		variables := simplang.NewContext()
		interpreter, isInterpreter := backend.(*backends.Interpreter)
		if isInterpreter {
			interpreter.Context = variables
		}

		execErr := backend.Execute(ctx, instructions)

		if options.Tap {
			if !isInterpreter {
				logger.WarnContext(ctx, "tap needs the interpreter backend",
					"backend", name,
				)
			} else if options.Source == "" {
				logger.WarnContext(ctx, "tap needs a source file, stdin was read as the program")
			} else {
				tap(ctx, "variables", variables)
			}
		}

		return execErr
	}
}

func readSource(path string, stdin io.Reader) (*simplang.Source, error) {
	if path == "" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return simplang.NewSource("<stdin>", string(content)), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("invalid input file %s: %w", path, err)
	}
	return simplang.NewSource(path, string(content)), nil
}

type countingWriter struct {
	io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.Writer.Write(p)
	c.n += int64(n)
	return n, err
}
