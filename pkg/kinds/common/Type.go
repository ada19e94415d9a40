package common

import (
	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
)

// Endpoint routes object hooks to /<id>/<method> for one class. Hooks missing
// from Hooks fail with apierrors.ErrUnsupported before anything is sent.
type Endpoint struct {
	Invoker iinvoker.Invoker
	Kind    string
	Hooks   map[string]bool
}

// Container routes clone, move and removeObjects to /<project>/<method>.
type Container struct {
	Invoker iinvoker.Invoker
}

// CreateOptions are the fields every /<class>/new call understands.
type CreateOptions struct {
	Project    string            `json:"project,omitempty"`
	Name       string            `json:"name,omitempty"`
	Folder     string            `json:"folder,omitempty"`
	Parents    bool              `json:"parents,omitempty"`
	Types      []string          `json:"types,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	Details    any               `json:"details,omitempty"`
	Hidden     bool              `json:"hidden,omitempty"`
	Close      bool              `json:"close,omitempty"`
}

type Created struct {
	ID string `json:"id"`
}

// RunOptions are the fields of /<executable>/run.
type RunOptions struct {
	Input     any      `json:"input"`
	Project   string   `json:"project,omitempty"`
	Name      string   `json:"name,omitempty"`
	Folder    string   `json:"folder,omitempty"`
	DependsOn []string `json:"dependsOn,omitempty"`
}
