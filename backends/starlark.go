package backends

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/simpleparser/logs"
	"github.com/reusee/simpleparser/simplang"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Starlark compiles the program to Python and runs the script on a starlark thread.
type Starlark struct {
	Output io.Writer
	Logger logs.Logger
}

var _ Backend = new(Starlark)

var fileOptions = &syntax.FileOptions{}

func (s *Starlark) Execute(ctx context.Context, instructions []simplang.Instruction) error {
	script, err := CompilePython(instructions)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var writeErr error
	thread := &starlark.Thread{
		Name: "simpleparser",
		Print: func(_ *starlark.Thread, msg string) {
			if writeErr != nil {
				return
			}
			if _, err := fmt.Fprintln(s.Output, msg); err != nil {
				writeErr = fmt.Errorf("write output: %w", err)
			}
		},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	if s.Logger != nil {
		s.Logger.DebugContext(ctx, "starlark exec",
			"instructions", len(instructions),
		)
	}
	if _, err := starlark.ExecFileOptions(fileOptions, thread, "main.py", script, nil); err != nil {
		return fmt.Errorf("starlark: %w", err)
	}
	return writeErr
}
