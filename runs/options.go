package runs

import (
	"github.com/reusee/simpleparser/backends"
	"github.com/reusee/simpleparser/cmds"
	"github.com/reusee/simpleparser/configs"
	"github.com/reusee/simpleparser/vars"
)

var (
	sourceFlag  = cmds.Var[string]("-s", "source file, stdin if absent", "--source")
	outputFlag  = cmds.Var[string]("-o", "output file, stdout if absent", "--output")
	backendFlag = cmds.Var[string]("-b", "backend: Interpreter, Python, Starlark or X86_64", "--backend")
	listFlag    = cmds.Switch("-l", "print the parsed instructions", "--list")
	tapFlag     = cmds.Switch("-tap", "open a starlark REPL over the variables after the run")
)

type Options struct {
	Source  string
	Output  string
	Backend string
	List    bool
	Tap     bool
}

// LoadOptions merges flags, config files and defaults, in that priority.
type LoadOptions func() (Options, error)

func (Module) LoadOptions(
	loader configs.Loader,
) LoadOptions {
	return func() (Options, error) {
		if err := loader.Validate(); err != nil {
			return Options{}, err
		}
		return Options{
			Source: vars.FirstNonZero(
				*sourceFlag,
				configs.First[string](loader, "source"),
			),
			Output: vars.FirstNonZero(
				*outputFlag,
				configs.First[string](loader, "output"),
			),
			Backend: vars.FirstNonZero(
				*backendFlag,
				configs.First[string](loader, "backend"),
				string(backends.NameInterpreter),
			),
			List: *listFlag,
			Tap:  *tapFlag,
		}, nil
	}
}
