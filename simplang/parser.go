package simplang

import (
	"fmt"
)

type keyword struct {
	op    Op
	arity int
	build func(operands []string) Instruction
}

var grammar = []keyword{
	{
		op:    OpPrint,
		arity: 1,
		build: func(operands []string) Instruction {
			return Print{Text: operands[0]}
		},
	},
	{
		op:    OpCreateVariable,
		arity: 2,
		build: func(operands []string) Instruction {
			return CreateVariable{Name: operands[0], Value: operands[1]}
		},
	},
	{
		op:    OpPrintVariable,
		arity: 1,
		build: func(operands []string) Instruction {
			return PrintVariable{Name: operands[0]}
		},
	},
}

var keywords = func() map[string]keyword {
	ret := make(map[string]keyword, len(grammar))
	for _, kw := range grammar {
		ret[kw.op.String()] = kw
	}
	return ret
}()

// Parse converts source text to instructions.
func Parse(source string) ([]Instruction, error) {
	return ParseSource(NewSource("", source))
}

func ParseSource(source *Source) ([]Instruction, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return ParseStream(NewSliceTokenStream(tokens))
}

// ParseStream reads instructions until the stream is exhausted.
// On error no instructions are returned.
func ParseStream(stream TokenStream) ([]Instruction, error) {
	var ret []Instruction
	for {
		token, err := stream.Current()
		if err != nil {
			return nil, err
		}
		if token.Kind == TokenEOF {
			return ret, nil
		}
		stream.Consume()

		inst, err := parseInstruction(stream, token)
		if err != nil {
			return nil, WithPos(err, token.Pos)
		}
		ret = append(ret, inst)
	}
}

func parseInstruction(stream TokenStream, token *Token) (Instruction, error) {
	kw, ok := keywords[token.Text]
	if !ok {
		return nil, &InvalidInstructionError{
			Token: token.Text,
		}
	}

	operands := make([]string, 0, kw.arity)
	for len(operands) < kw.arity {
		operand, err := stream.Current()
		if err != nil {
			return nil, err
		}
		if operand.Kind == TokenEOF {
			return nil, fmt.Errorf("%w: %s expects %d, got %d",
				ErrMissingParameter, token.Text, kw.arity, len(operands))
		}
		stream.Consume()
		operands = append(operands, operand.Text)
	}

	return kw.build(operands), nil
}
