package simplang

import (
	"fmt"
	"io"
)

type Interpreter struct {
	Output  io.Writer
	Context *Context

	// OnExec is called before each instruction, if not nil
	OnExec func(index int, inst Instruction)
}

func NewInterpreter(output io.Writer) *Interpreter {
	return &Interpreter{
		Output:  output,
		Context: NewContext(),
	}
}

// Run executes instructions with a fresh context.
func Run(instructions []Instruction, output io.Writer) error {
	return NewInterpreter(output).Run(instructions)
}

// Run stops at the first failing instruction and returns an *InstructionError.
func (i *Interpreter) Run(instructions []Instruction) error {
	for idx, inst := range instructions {
		if i.OnExec != nil {
			i.OnExec(idx, inst)
		}
		if err := i.Exec(inst); err != nil {
			return &InstructionError{
				Index:       idx,
				Instruction: inst,
				Err:         err,
			}
		}
	}
	return nil
}

func (i *Interpreter) Exec(inst Instruction) error {
	if i.Context == nil {
		i.Context = NewContext()
	}

	switch inst := inst.(type) {

	case Print:
		return i.emit(inst.Text)

	case CreateVariable:
		return i.Context.Define(inst.Name, inst.Value)

	case PrintVariable:
		value, err := i.Context.Lookup(inst.Name)
		if err != nil {
			return err
		}
		return i.emit(value)

	}

	return fmt.Errorf("unknown instruction: %T", inst)
}

func (i *Interpreter) emit(text string) error {
	if _, err := io.WriteString(i.Output, text+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
