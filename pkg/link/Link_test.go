package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	testCases := []struct {
		name    string
		id      string
		project string
		wanted  string
	}{
		{"Without project", "record-123", "", `{"$dnanexus_link":{"id":"record-123"}}`},
		{"With project", "file-123", "project-456", `{"$dnanexus_link":{"id":"file-123","project":"project-456"}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bytes, err := json.Marshal(New(tc.id, tc.project))

			require.NoError(t, err)
			assert.JSONEq(t, tc.wanted, string(bytes))

			var decoded Link
			require.NoError(t, json.Unmarshal(bytes, &decoded))
			assert.Equal(t, New(tc.id, tc.project), decoded)
		})
	}
}

func TestValue(t *testing.T) {
	assert.Equal(t, map[string]any{"$dnanexus_link": map[string]any{"id": "record-1"}}, New("record-1", "").Value())
	assert.Equal(t, map[string]any{"$dnanexus_link": map[string]any{"id": "record-1", "project": "project-1"}}, New("record-1", "project-1").Value())
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name   string
		value  any
		wanted Link
		ok     bool
	}{
		{"Hash form", map[string]any{"$dnanexus_link": map[string]any{"id": "file-1", "project": "project-1"}}, Link{ID: "file-1", Project: "project-1"}, true},
		{"String form", map[string]any{"$dnanexus_link": "file-1"}, Link{ID: "file-1"}, true},
		{"Extra keys", map[string]any{"$dnanexus_link": "file-1", "other": 1}, Link{}, false},
		{"Missing id", map[string]any{"$dnanexus_link": map[string]any{"project": "project-1"}}, Link{Project: "project-1"}, false},
		{"Not a hash", []any{"file-1"}, Link{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, ok := Parse(tc.value)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.wanted, l)
		})
	}
}

func TestCollect(t *testing.T) {
	var details any
	require.NoError(t, json.Unmarshal([]byte(`{
		"reads": [{"$dnanexus_link": "file-1"}, {"$dnanexus_link": {"id": "file-2", "project": "project-1"}}],
		"name": "sample",
		"reference": {"$dnanexus_link": {"id": "record-1"}}
	}`), &details))

	assert.Equal(t, []Link{
		{ID: "file-1"},
		{ID: "file-2", Project: "project-1"},
		{ID: "record-1"},
	}, Collect(details))
}
