package cmds

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

func (p *Executor) PrintUsage(w io.Writer) {
	if p.Header != "" {
		fmt.Fprintln(w, p.Header)
		fmt.Fprintln(w)
	}

	names := slices.Clone(p.names)
	slices.Sort(names)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateHeader = false
	for _, name := range names {
		command := p.commands[name]
		tw.AppendRow(table.Row{
			usageLine(name, command),
			command.Description,
		})
	}
	fmt.Fprintln(w, tw.Render())
}

func usageLine(name string, command *Command) string {
	line := strings.Join(append([]string{name}, command.Aliases...), ", ")
	for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
		t := command.Func.Type().In(i)
		if t.Kind() == reflect.Pointer {
			line += " [" + t.Elem().Kind().String() + "]"
		} else {
			line += " <" + t.Kind().String() + ">"
		}
	}
	return line
}
