package runs

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/reusee/simpleparser/simplang"
)

func WriteList(w io.Writer, instructions []simplang.Instruction) error {
	tw := table.NewWriter()
	tw.SetTitle("Instructions")
	tw.AppendHeader(table.Row{"#", "Op", "Operands"})
	for i, inst := range instructions {
		tw.AppendRow(table.Row{
			i,
			inst.Op().String(),
			strings.Join(inst.Operands(), " "),
		})
	}
	// Render does not end with a newline
	_, err := fmt.Fprintln(w, tw.Render())
	return err
}
