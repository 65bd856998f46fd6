package debugs

import (
	"context"

	"github.com/reusee/simpleparser/logs"
	"github.com/reusee/simpleparser/simplang"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin over the variables of a run.
type Tap func(ctx context.Context, what string, variables *simplang.Context)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, variables *simplang.Context) {
		logger.InfoContext(ctx, "tap: "+what,
			"variables", variables.Len(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, tapGlobals(variables))
	}
}
