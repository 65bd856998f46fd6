package cmds

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/simpleparser/vars"
)

var (
	ErrUnrecognizedArgument = errors.New("unrecognized argument")
	ErrMissingArgument      = errors.New("argument without its parameter")
)

type Executor struct {
	// Header is printed before the command list
	Header string

	commands map[string]*Command
	names    []string
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}

	usage := Func(func() {
		ret.PrintUsage(os.Stdout)
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help")
	ret.Define("-h", usage)

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	if _, ok := p.commands[name]; ok {
		panic(fmt.Errorf("duplicated command %s", name))
	}
	p.commands[name] = command
	p.names = append(p.names, name)
	for _, alias := range command.Aliases {
		if _, ok := p.commands[alias]; ok {
			panic(fmt.Errorf("duplicated command %s", alias))
		}
		p.commands[alias] = command
	}
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	for {
		if len(args) == 0 {
			return nil
		}

		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := p.commands[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnrecognizedArgument, name)
		}

		var callArgs []reflect.Value
		for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
			value, err := getArg(command.Func.Type().In(i), args)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if len(args) > 0 {
				args = args[1:]
			}
			callArgs = append(callArgs, value)
		}
		rets := command.Func.Call(callArgs)
		if len(rets) > 0 && !rets[0].IsNil() {
			return rets[0].Interface().(error)
		}
	}
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}

func getArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if len(args) == 0 {

		if t.Kind() == reflect.Pointer {
			// optional, use zero value
			return reflect.New(t.Elem()), nil
		}

		return ret, ErrMissingArgument
	}

	if t.Kind() == reflect.Pointer {
		elemValue, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elemValue)
		return ptr, nil
	}

	str := args[0]

	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return ret, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return ret, nil

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}
