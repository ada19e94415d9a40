package formaters

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"golang.org/x/term"
)

const (
	OUTPUT_TABLE = "table"
	OUTPUT_JSON  = "json"
)

// Setup disables colors when out is not a terminal.
func Setup(out *os.File) {
	color.NoColor = color.NoColor || !term.IsTerminal(int(out.Fd()))
}

func NewTable(w io.Writer, headers ...interface{}) table.Table {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	return table.New(headers...).
		WithWriter(w).
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt)
}
