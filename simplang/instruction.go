package simplang

import "strings"

type Op uint8

const (
	OpInvalid Op = iota
	OpPrint
	OpCreateVariable
	OpPrintVariable
)

var opKeywords = [...]string{
	OpPrint:          "stampa",
	OpCreateVariable: "crea_variabile",
	OpPrintVariable:  "stampa_variabile",
}

// String returns the source keyword of the op.
func (o Op) String() string {
	if o == OpInvalid || int(o) >= len(opKeywords) {
		return "invalid"
	}
	return opKeywords[o]
}

// Instruction is one of Print, CreateVariable or PrintVariable.
type Instruction interface {
	Op() Op
	Operands() []string
	String() string
	instruction()
}

type Print struct {
	Text string
}

type CreateVariable struct {
	Name  string
	Value string
}

type PrintVariable struct {
	Name string
}

var (
	_ Instruction = Print{}
	_ Instruction = CreateVariable{}
	_ Instruction = PrintVariable{}
)

func (Print) instruction()          {}
func (CreateVariable) instruction() {}
func (PrintVariable) instruction()  {}

func (Print) Op() Op          { return OpPrint }
func (CreateVariable) Op() Op { return OpCreateVariable }
func (PrintVariable) Op() Op  { return OpPrintVariable }

func (p Print) Operands() []string {
	return []string{p.Text}
}

func (c CreateVariable) Operands() []string {
	return []string{c.Name, c.Value}
}

func (p PrintVariable) Operands() []string {
	return []string{p.Name}
}

func (p Print) String() string          { return format(p) }
func (c CreateVariable) String() string { return format(c) }
func (p PrintVariable) String() string  { return format(p) }

func format(inst Instruction) string {
	return strings.Join(append([]string{inst.Op().String()}, inst.Operands()...), " ")
}
