package link

import (
	"github.com/dxtoolkit/dxgo/pkg/static"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Link is a reference to a data object that can be embedded in any JSON value.
// It encodes as {"$dnanexus_link": {"id": ..., "project": ...}} with project omitted when empty.
type Link struct {
	ID      string `json:"id"`
	Project string `json:"project,omitempty"`
}

func New(id string, project string) Link {
	return Link{ID: id, Project: project}
}

// Value returns the link as a generic JSON value, suitable for nesting in maps.
func (l Link) Value() map[string]any {
	inner := map[string]any{"id": l.ID}

	if l.Project != "" {
		inner["project"] = l.Project
	}

	return map[string]any{static.LINK_KEY: inner}
}

func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Value())
}

func (l *Link) UnmarshalJSON(data []byte) error {
	var e struct {
		Link struct {
			ID      string `json:"id"`
			Project string `json:"project,omitempty"`
		} `json:"$dnanexus_link"`
	}

	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}

	l.ID, l.Project = e.Link.ID, e.Link.Project
	return nil
}

// Parse recognizes a link in a decoded JSON value. The bare-string form
// {"$dnanexus_link": "record-xxxx"} is accepted as well.
func Parse(v any) (Link, bool) {
	m, ok := v.(map[string]any)

	if !ok || len(m) != 1 {
		return Link{}, false
	}

	switch inner := m[static.LINK_KEY].(type) {
	case string:
		return Link{ID: inner}, inner != ""
	case map[string]any:
		id, _ := inner["id"].(string)
		project, _ := inner["project"].(string)

		return Link{ID: id, Project: project}, id != ""
	}

	return Link{}, false
}

// Collect walks a decoded JSON value and returns every link found in it, depth first.
func Collect(v any) []Link {
	links := make([]Link, 0)
	collect(v, &links)
	return links
}

func collect(v any, links *[]Link) {
	if l, ok := Parse(v); ok {
		*links = append(*links, l)
		return
	}

	switch t := v.(type) {
	case map[string]any:
		for _, key := range sortedKeys(t) {
			collect(t[key], links)
		}
	case []any:
		for _, item := range t {
			collect(item, links)
		}
	}
}
