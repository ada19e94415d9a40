package formaters

import (
	"bytes"
	"testing"
	"time"

	"github.com/dxtoolkit/dxgo/pkg/kinds/project"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/wI2L/jsondiff"
)

func init() {
	color.NoColor = true
}

func TestDescription(t *testing.T) {
	var out bytes.Buffer

	Description(&out, &objects.Description{
		ID:         "record-1",
		Class:      "record",
		Name:       "sample",
		Types:      []string{"Sample", "Reads"},
		Hidden:     true,
		Properties: map[string]string{"b": "2", "a": "1"},
	})

	text := out.String()

	assert.Contains(t, text, "record-1")
	assert.Contains(t, text, "Sample, Reads")
	assert.Contains(t, text, "hidden")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Property a")), bytes.Index(out.Bytes(), []byte("Property b")))
}

func TestProjectsAndFolder(t *testing.T) {
	var out bytes.Buffer

	Projects(&out, []string{"project-1", "project-2"})
	Folder(&out, &project.Folder{Folders: []string{"/raw"}, Objects: []project.Entry{{ID: "file-1"}}})

	assert.Contains(t, out.String(), "project-2")
	assert.Contains(t, out.String(), "/raw")
	assert.Contains(t, out.String(), "file-1")
}

func TestDiff(t *testing.T) {
	var out bytes.Buffer

	patch, err := jsondiff.CompareJSON([]byte(`{"a":1,"b":2}`), []byte(`{"a":3,"c":4}`))
	assert.NoError(t, err)

	Diff(&out, patch)

	assert.Contains(t, out.String(), "- /b")
	assert.Contains(t, out.String(), "+ /c 4")
	assert.Contains(t, out.String(), "~ replace /a 3")

	out.Reset()
	Diff(&out, nil)
	assert.Equal(t, "no changes\n", out.String())
}

func TestJson(t *testing.T) {
	var out bytes.Buffer

	assert.NoError(t, Json(&out, map[string]string{"id": "record-1"}))
	assert.Equal(t, "{\n  \"id\": \"record-1\"\n}\n", out.String())
}

func TestRoundAndFormatDuration(t *testing.T) {
	assert.Equal(t, "42s", RoundAndFormatDuration(42*time.Second))
	assert.Equal(t, "2m5s", RoundAndFormatDuration(125*time.Second))
	assert.Equal(t, "3h", RoundAndFormatDuration(3*time.Hour+time.Minute))
	assert.Equal(t, "2d", RoundAndFormatDuration(50*time.Hour))
	assert.Equal(t, "-", Timestamp(0))
}
