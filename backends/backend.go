package backends

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/simpleparser/simplang"
)

// Backend executes or compiles a parsed program.
type Backend interface {
	Execute(ctx context.Context, instructions []simplang.Instruction) error
}

type Name string

const (
	NameInterpreter Name = "Interpreter"
	NamePython      Name = "Python"
	NameStarlark    Name = "Starlark"
	NameX86_64      Name = "X86_64"
)

var Names = []Name{
	NameInterpreter,
	NamePython,
	NameStarlark,
	NameX86_64,
}

var (
	ErrInvalidBackend = errors.New("invalid backend")
	ErrNotImplemented = errors.New("not implemented")
)

func ParseName(str string) (Name, error) {
	for _, name := range Names {
		if string(name) == str {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidBackend, str)
}
