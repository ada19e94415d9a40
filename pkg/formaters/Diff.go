package formaters

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/wI2L/jsondiff"
)

// Diff prints patch one operation per line: additions green, removals red, the rest yellow.
func Diff(w io.Writer, patch jsondiff.Patch) {
	if len(patch) == 0 {
		fmt.Fprintln(w, "no changes")
		return
	}

	for _, operation := range patch {
		value, _ := json.Marshal(operation.Value)

		switch operation.Type {
		case jsondiff.OperationAdd:
			fmt.Fprintln(w, color.GreenString("+ %s %s", operation.Path, value))
		case jsondiff.OperationRemove:
			fmt.Fprintln(w, color.RedString("- %s", operation.Path))
		default:
			fmt.Fprintln(w, color.YellowString("~ %s %s %s", operation.Type, operation.Path, value))
		}
	}
}
