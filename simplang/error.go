package simplang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

var ErrMissingParameter = errors.New("missing parameter")

type InvalidInstructionError struct {
	Token string
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction: %s", e.Token)
}

type RedefinedVariableError struct {
	Name string
}

func (e *RedefinedVariableError) Error() string {
	return fmt.Sprintf("variable %s is already defined", e.Name)
}

type VariableDoesNotExistError struct {
	Name string
}

func (e *VariableDoesNotExistError) Error() string {
	return fmt.Sprintf("variable %s does not exist", e.Name)
}

// InstructionError reports which instruction of a run failed. Index is 0-based.
type InstructionError struct {
	Index       int
	Instruction Instruction
	Err         error
}

func (e *InstructionError) Error() string {
	return fmt.Sprintf("instruction %d (%v): %s", e.Index, e.Instruction, e.Err.Error())
}

func (e *InstructionError) Unwrap() error {
	return e.Err
}

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	if p.Pos.Source.Name == "" {
		sb.WriteString(fmt.Sprintf("%s at %d:%d\n", p.Err.Error(), p.Pos.Line, p.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Pos.Source.Name, p.Pos.Line, p.Pos.Column))
	}

	// line content
	lines := p.Pos.Source.Lines
	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret
		col := p.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
