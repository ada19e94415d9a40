package api

import (
	"bytes"
	json2 "encoding/json"

	"github.com/dxtoolkit/dxgo/pkg/static"
)

func (store *Store) Describe(id string, body []byte) (any, error) {
	request := describeRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	obj, err := store.object(id)

	if err != nil {
		return nil, err
	}

	project, annotation, err := store.annotation(obj, request.Project)

	if err != nil {
		return nil, err
	}

	store.advance(obj)

	return describe(obj, project, annotation, request), nil
}

// advance moves a closing object or a running job one describe closer to its final state.
func (store *Store) advance(obj *Object) {
	var final string

	switch obj.State {
	case static.STATE_CLOSING:
		final = static.STATE_CLOSED
	case static.JOB_STATE_RUNNING:
		final = static.JOB_STATE_DONE
	default:
		return
	}

	if obj.Closing <= 0 {
		obj.State = final
		obj.touch(store.now())
		return
	}

	obj.Closing--
}

func describe(obj *Object, project string, annotation *Annotation, request describeRequest) map[string]any {
	description := make(map[string]any, len(obj.Extra)+12)

	for key, value := range obj.Extra {
		description[key] = value
	}

	description["id"] = obj.ID
	description["class"] = obj.Class
	description["state"] = obj.State
	description["hidden"] = annotation.Hidden
	description["types"] = nonNil(obj.Types)
	description["name"] = annotation.Name
	description["tags"] = nonNil(annotation.Tags)
	description["created"] = obj.Created
	description["modified"] = obj.Modified

	if project != "" {
		description["project"] = project
		description["folder"] = annotation.Folder
	}

	if request.Properties {
		description["properties"] = copyProperties(annotation.Properties)
	}

	if request.Details {
		description["details"] = details(obj)
	}

	return description
}

func (store *Store) AddTypes(id string, body []byte) (any, error) {
	return store.updateTypes(id, body, addUnique)
}

func (store *Store) RemoveTypes(id string, body []byte) (any, error) {
	return store.updateTypes(id, body, removeAll)
}

func (store *Store) updateTypes(id string, body []byte, update func([]string, []string) []string) (any, error) {
	request := typesRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	obj, err := store.open(id)

	if err != nil {
		return nil, err
	}

	obj.Types = update(obj.Types, request.Types)
	obj.touch(store.now())

	return created(id), nil
}

func (store *Store) GetDetails(id string, _ []byte) (any, error) {
	store.lock.Lock()
	defer store.lock.Unlock()

	obj, err := store.object(id)

	if err != nil {
		return nil, err
	}

	return details(obj), nil
}

// SetDetails takes the new details document itself as the request body.
func (store *Store) SetDetails(id string, body []byte) (any, error) {
	if !isContainer(body) {
		return nil, invalidInput("details must be a JSON object or array")
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	obj, err := store.open(id)

	if err != nil {
		return nil, err
	}

	obj.Details = append(json2.RawMessage{}, bytes.TrimSpace(body)...)
	obj.touch(store.now())

	return created(id), nil
}

func (store *Store) SetVisibility(id string, body []byte) (any, error) {
	request := visibilityRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	return store.annotate(id, request.Project, func(annotation *Annotation) {
		annotation.Hidden = *request.Hidden
	})
}

func (store *Store) Rename(id string, body []byte) (any, error) {
	request := renameRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	return store.annotate(id, request.Project, func(annotation *Annotation) {
		annotation.Name = request.Name
	})
}

func (store *Store) SetProperties(id string, body []byte) (any, error) {
	request := propertiesRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	return store.annotate(id, request.Project, func(annotation *Annotation) {
		applyProperties(annotation.Properties, request.Properties)
	})
}

func (store *Store) AddTags(id string, body []byte) (any, error) {
	request := tagsRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	return store.annotate(id, request.Project, func(annotation *Annotation) {
		annotation.Tags = addUnique(annotation.Tags, request.Tags)
	})
}

func (store *Store) RemoveTags(id string, body []byte) (any, error) {
	request := tagsRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	return store.annotate(id, request.Project, func(annotation *Annotation) {
		annotation.Tags = removeAll(annotation.Tags, request.Tags)
	})
}

func (store *Store) Close(id string, _ []byte) (any, error) {
	store.lock.Lock()
	defer store.lock.Unlock()

	obj, err := store.open(id)

	if err != nil {
		return nil, err
	}

	store.close(obj)
	obj.touch(store.now())

	return created(id), nil
}

func (store *Store) ListProjects(id string, _ []byte) (any, error) {
	store.lock.Lock()
	defer store.lock.Unlock()

	obj, err := store.object(id)

	if err != nil {
		return nil, err
	}

	access := make(map[string]string)

	for _, project := range obj.projects() {
		access[project] = "ADMINISTER"
	}

	return access, nil
}

// annotate applies update to the project copy of object id.
func (store *Store) annotate(id string, project string, update func(annotation *Annotation)) (any, error) {
	store.lock.Lock()
	defer store.lock.Unlock()

	obj, err := store.object(id)

	if err != nil {
		return nil, err
	}

	_, annotation, err := store.annotation(obj, project)

	if err != nil {
		return nil, err
	}

	update(annotation)
	obj.touch(store.now())

	return created(id), nil
}

func (store *Store) open(id string) (*Object, error) {
	obj, err := store.object(id)

	if err != nil {
		return nil, err
	}

	if obj.State != static.STATE_OPEN {
		return nil, invalidState("%s is %s, expected %s", id, obj.State, static.STATE_OPEN)
	}

	return obj, nil
}

func details(obj *Object) json2.RawMessage {
	if len(obj.Details) == 0 {
		return json2.RawMessage("{}")
	}

	return obj.Details
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
