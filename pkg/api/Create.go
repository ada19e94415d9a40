package api

import (
	"bytes"
	json2 "encoding/json"

	"github.com/dxtoolkit/dxgo/pkg/static"
)

const DEFAULT_NAME = "Untitled"

// AddProject registers a project under a fixed ID. An existing project is left as it is.
func (store *Store) AddProject(id string, name string) {
	store.lock.Lock()
	defer store.lock.Unlock()

	store.addProject(id, name)
}

func (store *Store) addProject(id string, name string) *Project {
	if project, ok := store.projects[id]; ok {
		return project
	}

	now := store.now()

	project := &Project{
		ID:         id,
		Name:       name,
		Created:    now,
		Modified:   now,
		Tags:       []string{},
		Properties: make(map[string]string),
		Folders:    map[string]bool{static.ROOTPROJECT: true},
	}

	store.projects[id] = project
	store.refreshGauge()

	return project
}

func (store *Store) CreateProject(_ string, body []byte) (any, error) {
	request := projectRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	project := store.addProject(newID(static.CLASS_PROJECT), request.Name)

	return created(project.ID), nil
}

// Create handles /<class>/new for records, files, gtables, applets and apps.
func (store *Store) Create(class string, body []byte) (any, error) {
	request := createRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	if err := validateCreate(class, request); err != nil {
		return nil, err
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	if id, ok := store.nonces[request.Nonce]; ok && request.Nonce != "" {
		return created(id), nil
	}

	annotation := &Annotation{
		Name:       request.Name,
		Folder:     static.ROOTPROJECT,
		Hidden:     request.Hidden,
		Tags:       addUnique([]string{}, request.Tags),
		Properties: copyProperties(request.Properties),
	}

	if annotation.Name == "" {
		annotation.Name = DEFAULT_NAME
	}

	key := ""

	if scoped(class) {
		project, err := store.project(request.Project)

		if err != nil {
			return nil, err
		}

		folder, err := cleanFolder(request.Folder)

		if err != nil {
			return nil, err
		}

		if err = ensureFolder(project, folder, request.Parents); err != nil {
			return nil, err
		}

		key = project.ID
		annotation.Folder = folder
	}

	now := store.now()

	obj := &Object{
		ID:          newID(class),
		Class:       class,
		State:       static.STATE_OPEN,
		Types:       addUnique([]string{}, request.Types),
		Details:     request.Details,
		Created:     now,
		Modified:    now,
		Extra:       extraFields(class, request),
		Annotations: map[string]*Annotation{key: annotation},
	}

	if class == static.CLASS_APPLET || class == static.CLASS_APP || request.Close {
		store.close(obj)
	}

	store.objects[obj.ID] = obj
	store.remember(request.Nonce, obj.ID)
	store.refreshGauge()

	return created(obj.ID), nil
}

func validateCreate(class string, request createRequest) error {
	if scoped(class) && request.Project == "" {
		return invalidInput("%s/new needs a project", class)
	}

	if len(request.Details) > 0 && !isContainer(request.Details) {
		return invalidInput("details must be a JSON object or array")
	}

	switch class {
	case static.CLASS_GTABLE:
		if len(request.Columns) == 0 {
			return invalidInput("a gtable needs at least one column")
		}
	case static.CLASS_APPLET, static.CLASS_APP:
		if request.RunSpec == nil {
			return invalidInput("%s/new needs a runSpec", class)
		}
	}

	return nil
}

func extraFields(class string, request createRequest) map[string]any {
	extra := make(map[string]any)

	switch class {
	case static.CLASS_FILE:
		if request.Media != "" {
			extra["media"] = request.Media
		}
	case static.CLASS_GTABLE:
		extra["columns"] = request.Columns
	case static.CLASS_APPLET, static.CLASS_APP:
		extra["runSpec"] = request.RunSpec
		extra["dxapi"] = request.DXAPI

		if request.InputSpec != nil {
			extra["inputSpec"] = request.InputSpec
		}

		if request.OutputSpec != nil {
			extra["outputSpec"] = request.OutputSpec
		}
	}

	return extra
}

// close moves obj out of the open state. Files and gtables finalize over several describes.
func (store *Store) close(obj *Object) {
	switch obj.Class {
	case static.CLASS_FILE, static.CLASS_GTABLE:
		obj.State = static.STATE_CLOSING
		obj.Closing = store.closing
	default:
		obj.State = static.STATE_CLOSED
	}
}

func (store *Store) remember(nonce string, id string) {
	if nonce != "" {
		store.nonces[nonce] = id
	}
}

func created(id string) map[string]string {
	return map[string]string{"id": id}
}

func isContainer(raw json2.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') && json2.Valid(trimmed)
}
