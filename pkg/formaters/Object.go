package formaters

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dxtoolkit/dxgo/pkg/kinds/project"
	"github.com/dxtoolkit/dxgo/pkg/objects"
)

func Description(w io.Writer, description *objects.Description) {
	tbl := NewTable(w, "FIELD", "VALUE")

	tbl.AddRow("ID", description.ID)
	tbl.AddRow("Class", description.Class)
	tbl.AddRow("Project", dash(description.Project))
	tbl.AddRow("Name", dash(description.Name))
	tbl.AddRow("Folder", dash(description.Folder))
	tbl.AddRow("State", dash(description.State))
	tbl.AddRow("Visibility", visibility(description.Hidden))
	tbl.AddRow("Types", dash(strings.Join(description.Types, ", ")))
	tbl.AddRow("Tags", dash(strings.Join(description.Tags, ", ")))
	tbl.AddRow("Created", Timestamp(description.Created))

	if description.Modified != 0 {
		tbl.AddRow("Modified", Timestamp(description.Modified))
	}

	for _, key := range sortedKeys(description.Properties) {
		tbl.AddRow(fmt.Sprintf("Property %s", key), description.Properties[key])
	}

	if len(description.Details) > 0 {
		tbl.AddRow("Details", string(description.Details))
	}

	tbl.Print()
}

func Properties(w io.Writer, properties map[string]string) {
	tbl := NewTable(w, "PROPERTY", "VALUE")

	for _, key := range sortedKeys(properties) {
		tbl.AddRow(key, properties[key])
	}

	tbl.Print()
}

func Projects(w io.Writer, projects []string) {
	tbl := NewTable(w, "PROJECT")

	for _, id := range projects {
		tbl.AddRow(id)
	}

	tbl.Print()
}

func Folder(w io.Writer, folder *project.Folder) {
	tbl := NewTable(w, "KIND", "ENTRY")

	for _, name := range folder.Folders {
		tbl.AddRow("folder", name)
	}

	for _, entry := range folder.Objects {
		tbl.AddRow("object", entry.ID)
	}

	tbl.Print()
}

func dash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}

func visibility(hidden bool) string {
	if hidden {
		return "hidden"
	}

	return "visible"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))

	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
