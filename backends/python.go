package backends

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/reusee/simpleparser/logs"
	"github.com/reusee/simpleparser/simplang"
	"go.starlark.net/syntax"
)

// Python writes a Python script equivalent to the program.
type Python struct {
	Output io.Writer
	Logger logs.Logger
}

var _ Backend = new(Python)

func (p *Python) Execute(ctx context.Context, instructions []simplang.Instruction) error {
	script, err := CompilePython(instructions)
	if err != nil {
		return err
	}
	if p.Logger != nil {
		p.Logger.DebugContext(ctx, "python script",
			"instructions", len(instructions),
			"bytes", len(script),
		)
	}
	_, err = p.Output.Write(script)
	return err
}

const pythonVariables = "variables"

// CompilePython translates instructions to a script that also runs on starlark.
// Variable rules and operand encoding are checked at compile time, so the script itself never fails.
func CompilePython(instructions []simplang.Instruction) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString("# generated by simpleparser\n")
	buf.WriteString(pythonVariables + " = {}\n")

	defined := simplang.NewContext()
	for idx, inst := range instructions {
		if err := compilePython(buf, defined, inst); err != nil {
			return nil, &simplang.InstructionError{
				Index:       idx,
				Instruction: inst,
				Err:         err,
			}
		}
	}

	return buf.Bytes(), nil
}

// ErrInvalidText reports an operand that has no string literal in Python or starlark.
var ErrInvalidText = errors.New("operand is not valid UTF-8")

func compilePython(buf *bytes.Buffer, defined *simplang.Context, inst simplang.Instruction) error {
	if inst != nil {
		for _, operand := range inst.Operands() {
			if !utf8.ValidString(operand) {
				return fmt.Errorf("%w: %q", ErrInvalidText, operand)
			}
		}
	}

	switch inst := inst.(type) {

	case simplang.Print:
		fmt.Fprintf(buf, "print(%s)\n", syntax.Quote(inst.Text, false))
		return nil

	case simplang.CreateVariable:
		if err := defined.Define(inst.Name, inst.Value); err != nil {
			return err
		}
		fmt.Fprintf(buf, "%s[%s] = %s\n", pythonVariables, syntax.Quote(inst.Name, false), syntax.Quote(inst.Value, false))
		return nil

	case simplang.PrintVariable:
		if _, err := defined.Lookup(inst.Name); err != nil {
			return err
		}
		fmt.Fprintf(buf, "print(%s[%s])\n", pythonVariables, syntax.Quote(inst.Name, false))
		return nil

	}

	return fmt.Errorf("unknown instruction: %T", inst)
}
