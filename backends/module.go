package backends

import (
	"fmt"
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/simpleparser/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// New returns the backend called name, writing to output.
type New func(name Name, output io.Writer) (Backend, error)

func (Module) New(
	logger logs.Logger,
) New {
	return func(name Name, output io.Writer) (Backend, error) {
		switch name {
		case NameInterpreter:
			return &Interpreter{
				Output: output,
				Logger: logger,
			}, nil
		case NamePython:
			return &Python{
				Output: output,
				Logger: logger,
			}, nil
		case NameStarlark:
			return &Starlark{
				Output: output,
				Logger: logger,
			}, nil
		case NameX86_64:
			return X86_64{}, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidBackend, name)
	}
}
