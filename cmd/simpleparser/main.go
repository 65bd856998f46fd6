package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/simpleparser/cmds"
	"github.com/reusee/simpleparser/modes"
	"github.com/reusee/simpleparser/runs"
)

const header = `SimpleParser

Runs programs made of whitespace separated words:
  stampa <text>
  crea_variabile <name> <value>
  stampa_variabile <name>

Backends:
  Interpreter  run the program in the interpreter
  Python       write an equivalent Python script
  Starlark     run the equivalent script on starlark
  X86_64       compile to x86_64 assembly (not implemented)

Arguments:`

func main() {
	cmds.SetHeader(header)
	cmds.Execute(os.Args[1:])

	dscope.New(
		new(runs.Module),
		modes.ForProduction(),
	).Call(func(
		run runs.Run,
	) {
		if err := run(context.Background()); err != nil {
			msg := err.Error()
			if !strings.HasSuffix(msg, "\n") {
				msg += "\n"
			}
			fmt.Fprint(os.Stderr, msg)
			os.Exit(1)
		}
	})
}
