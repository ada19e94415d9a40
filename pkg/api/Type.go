package api

import (
	json2 "encoding/json"
	"sync"

	"github.com/dxtoolkit/dxgo/pkg/version"
	"go.uber.org/zap"
	"k8s.io/utils/clock"
)

type Api struct {
	Store   *Store
	Version *version.Version
	Logger  *zap.Logger
}

// Store is the emulator's whole state. Every exported method takes the lock.
type Store struct {
	lock    sync.Mutex
	clock   clock.PassiveClock
	closing int

	projects map[string]*Project
	objects  map[string]*Object
	nonces   map[string]string
}

type Project struct {
	ID         string
	Name       string
	Created    int64
	Modified   int64
	Tags       []string
	Properties map[string]string
	Folders    map[string]bool
}

// Object is one data object, job or app. Annotations hold what differs per project copy;
// jobs and apps keep a single annotation under the empty project.
type Object struct {
	ID       string
	Class    string
	State    string
	Types    []string
	Details  json2.RawMessage
	Created  int64
	Modified int64

	// Closing counts the describes left before a closing object reports closed, or a running
	// job reports done.
	Closing int

	// Extra holds class-specific fields echoed back by describe.
	Extra map[string]any

	Annotations map[string]*Annotation
}

type Annotation struct {
	Name       string
	Folder     string
	Hidden     bool
	Tags       []string
	Properties map[string]string
}

type operation func(store *Store, id string, body []byte) (any, error)

type createRequest struct {
	Project    string            `json:"project"`
	Name       string            `json:"name"`
	Folder     string            `json:"folder"`
	Parents    bool              `json:"parents"`
	Types      []string          `json:"types"`
	Tags       []string          `json:"tags"`
	Properties map[string]string `json:"properties"`
	Details    json2.RawMessage  `json:"details"`
	Hidden     bool              `json:"hidden"`
	Close      bool              `json:"close"`
	Nonce      string            `json:"nonce"`

	Media      string           `json:"media"`
	Columns    []map[string]any `json:"columns"`
	DXAPI      string           `json:"dxapi"`
	RunSpec    map[string]any   `json:"runSpec"`
	InputSpec  []map[string]any `json:"inputSpec"`
	OutputSpec []map[string]any `json:"outputSpec"`
}

type projectRequest struct {
	Name string `json:"name" binding:"required"`
}

type jobRequest struct {
	Input    any    `json:"input"`
	Function string `json:"function" binding:"required"`
	Name     string `json:"name"`
	Nonce    string `json:"nonce"`
}

type describeRequest struct {
	Project    string `json:"project"`
	Properties bool   `json:"properties"`
	Details    bool   `json:"details"`
}

type typesRequest struct {
	Types []string `json:"types"`
}

type visibilityRequest struct {
	Project string `json:"project"`
	Hidden  *bool  `json:"hidden" binding:"required"`
}

type renameRequest struct {
	Project string `json:"project"`
	Name    string `json:"name" binding:"required"`
}

type propertiesRequest struct {
	Project    string             `json:"project"`
	Properties map[string]*string `json:"properties" binding:"required"`
}

type tagsRequest struct {
	Project string   `json:"project"`
	Tags    []string `json:"tags"`
}

type containerRequest struct {
	Objects     []string `json:"objects" binding:"required,min=1"`
	Project     string   `json:"project"`
	Destination string   `json:"destination"`
}

type folderRequest struct {
	Folder  string `json:"folder" binding:"required"`
	Parents bool   `json:"parents"`
}

type runRequest struct {
	Input     any      `json:"input"`
	Project   string   `json:"project"`
	Name      string   `json:"name"`
	Folder    string   `json:"folder"`
	DependsOn []string `json:"dependsOn"`
}
