package objects

import (
	"context"
	json2 "encoding/json"
	"time"

	"github.com/dxtoolkit/dxgo/pkg/configuration"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iobjects"
	"k8s.io/utils/clock"
)

// Object is a handle on one remote data object as seen through one project.
//
// Distinct handles are safe for concurrent use. A single handle must be
// synchronized externally whenever SetIdentifiers or Remove can run alongside
// other calls, since both rewrite the identifiers read by every operation.
type Object struct {
	ObjectID  string
	ProjectID string

	router    iobjects.Router
	container iobjects.Container
	workspace string

	clock   clock.PassiveClock
	sleep   SleepFunc
	polling configuration.Polling
	timeout time.Duration
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// PollFunc reports the current state of whatever is being waited on.
type PollFunc func(ctx context.Context) (string, error)

type Option func(obj *Object)

type DescribeOptions struct {
	Properties bool
	Details    bool
}

type Description struct {
	ID         string            `json:"id"`
	Class      string            `json:"class"`
	Project    string            `json:"project,omitempty"`
	Name       string            `json:"name,omitempty"`
	Folder     string            `json:"folder,omitempty"`
	State      string            `json:"state,omitempty"`
	Hidden     bool              `json:"hidden"`
	Types      []string          `json:"types"`
	Tags       []string          `json:"tags"`
	Created    int64             `json:"created"`
	Modified   int64             `json:"modified,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	Details    json2.RawMessage  `json:"details,omitempty"`

	// Raw is the full response, including class-specific fields.
	Raw json2.RawMessage `json:"-"`
}

type describeInput struct {
	Project    string `json:"project,omitempty"`
	Properties bool   `json:"properties"`
	Details    bool   `json:"details"`
}

type typesInput struct {
	Types []string `json:"types"`
}

type visibilityInput struct {
	Project string `json:"project,omitempty"`
	Hidden  bool   `json:"hidden"`
}

type renameInput struct {
	Project string `json:"project,omitempty"`
	Name    string `json:"name"`
}

type propertiesInput struct {
	Project    string             `json:"project,omitempty"`
	Properties map[string]*string `json:"properties"`
}

type tagsInput struct {
	Project string   `json:"project,omitempty"`
	Tags    []string `json:"tags"`
}

type moveInput struct {
	Objects     []string `json:"objects"`
	Destination string   `json:"destination"`
}

type cloneInput struct {
	Objects     []string `json:"objects"`
	Project     string   `json:"project"`
	Destination string   `json:"destination"`
}

type removeInput struct {
	Objects []string `json:"objects"`
}
