package backends

import (
	"context"
	"io"

	"github.com/reusee/simpleparser/logs"
	"github.com/reusee/simpleparser/simplang"
)

type Interpreter struct {
	Output io.Writer
	Logger logs.Logger
	// Context receives the variables of the run. A fresh one is used if nil.
	Context *simplang.Context
}

var _ Backend = new(Interpreter)

func (i *Interpreter) Execute(ctx context.Context, instructions []simplang.Instruction) error {
	interpreter := simplang.NewInterpreter(i.Output)
	if i.Context != nil {
		interpreter.Context = i.Context
	}
	if i.Logger != nil {
		interpreter.OnExec = func(index int, inst simplang.Instruction) {
			i.Logger.DebugContext(ctx, "execute",
				"index", index,
				"instruction", inst.String(),
			)
		}
	}
	err := interpreter.Run(instructions)
	if i.Logger != nil {
		i.Logger.DebugContext(ctx, "variables",
			"values", interpreter.Context.Snapshot(),
		)
	}
	return err
}
