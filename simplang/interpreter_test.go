package simplang

import (
	"bytes"
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	instructions, err := Parse("crea_variabile x 5 stampa_variabile x stampa ciao")
	if err != nil {
		t.Fatal(err)
	}
	buf := new(bytes.Buffer)
	if err := Run(instructions, buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "5\nciao\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestRunEmpty(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := Run(nil, buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("got %q", buf.String())
	}
}

func TestRunRedefinedVariable(t *testing.T) {
	interpreter := NewInterpreter(new(bytes.Buffer))
	err := interpreter.Run([]Instruction{
		CreateVariable{Name: "x", Value: "1"},
		CreateVariable{Name: "x", Value: "2"},
		PrintVariable{Name: "x"},
	})

	var redefined *RedefinedVariableError
	if !errors.As(err, &redefined) {
		t.Fatalf("got %v", err)
	}
	if redefined.Name != "x" {
		t.Fatalf("got %q", redefined.Name)
	}

	var instErr *InstructionError
	if !errors.As(err, &instErr) {
		t.Fatalf("got %v", err)
	}
	if instErr.Index != 1 {
		t.Fatalf("got %d", instErr.Index)
	}
	if instErr.Instruction != (CreateVariable{Name: "x", Value: "2"}) {
		t.Fatalf("got %v", instErr.Instruction)
	}
	if err.Error() != "instruction 1 (crea_variabile x 2): variable x is already defined" {
		t.Fatalf("got %q", err.Error())
	}

	// second binding never applied
	value, err := interpreter.Context.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	if value != "1" {
		t.Fatalf("got %q", value)
	}
}

func TestRunVariableDoesNotExist(t *testing.T) {
	err := Run([]Instruction{
		PrintVariable{Name: "y"},
	}, new(bytes.Buffer))
	var notExist *VariableDoesNotExistError
	if !errors.As(err, &notExist) {
		t.Fatalf("got %v", err)
	}
	if notExist.Name != "y" {
		t.Fatalf("got %q", notExist.Name)
	}
}

func TestRunHaltsAtFirstError(t *testing.T) {
	buf := new(bytes.Buffer)
	var executed []int
	interpreter := NewInterpreter(buf)
	interpreter.OnExec = func(index int, inst Instruction) {
		executed = append(executed, index)
	}
	err := interpreter.Run([]Instruction{
		Print{Text: "a"},
		Print{Text: "b"},
		PrintVariable{Name: "y"},
		Print{Text: "c"},
		CreateVariable{Name: "z", Value: "1"},
	})
	var instErr *InstructionError
	if !errors.As(err, &instErr) {
		t.Fatalf("got %v", err)
	}
	if instErr.Index != 2 {
		t.Fatalf("got %d", instErr.Index)
	}
	if buf.String() != "a\nb\n" {
		t.Fatalf("got %q", buf.String())
	}
	if len(executed) != 3 {
		t.Fatalf("got %v", executed)
	}
	if interpreter.Context.Len() != 0 {
		t.Fatalf("got %d", interpreter.Context.Len())
	}
}

func TestRunFreshContext(t *testing.T) {
	instructions := []Instruction{
		CreateVariable{Name: "x", Value: "1"},
	}
	// each run starts from an empty context
	for range 2 {
		if err := Run(instructions, new(bytes.Buffer)); err != nil {
			t.Fatal(err)
		}
	}
}

var errBoom = errors.New("boom")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBoom
}

func TestRunOutputError(t *testing.T) {
	err := Run([]Instruction{
		CreateVariable{Name: "x", Value: "1"},
		Print{Text: "a"},
	}, failingWriter{})
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v", err)
	}
	var instErr *InstructionError
	if !errors.As(err, &instErr) || instErr.Index != 1 {
		t.Fatalf("got %v", err)
	}
}

func TestExecNil(t *testing.T) {
	interpreter := &Interpreter{
		Output: new(bytes.Buffer),
	}
	if err := interpreter.Exec(nil); err == nil {
		t.Fatal("should error")
	}
	// zero interpreter gets a context on first use
	if err := interpreter.Exec(CreateVariable{Name: "x", Value: "1"}); err != nil {
		t.Fatal(err)
	}
	if interpreter.Context.Len() != 1 {
		t.Fatal()
	}
}

func TestRunKeepsBytes(t *testing.T) {
	instructions, err := Parse("stampa \xffab")
	if err != nil {
		t.Fatal(err)
	}
	buf := new(bytes.Buffer)
	if err := Run(instructions, buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0xff, 'a', 'b', '\n'}) {
		t.Fatalf("got % x", buf.Bytes())
	}
}
