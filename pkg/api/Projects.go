package api

import (
	"path"
	"sort"

	"github.com/dxtoolkit/dxgo/pkg/static"
)

type entry struct {
	ID string `json:"id"`
}

type listing struct {
	Objects []entry  `json:"objects"`
	Folders []string `json:"folders"`
}

func (store *Store) DescribeProject(id string, body []byte) (any, error) {
	request := describeRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	project, err := store.project(id)

	if err != nil {
		return nil, err
	}

	description := map[string]any{
		"id":       project.ID,
		"class":    static.CLASS_PROJECT,
		"name":     project.Name,
		"project":  project.ID,
		"tags":     nonNil(project.Tags),
		"created":  project.Created,
		"modified": project.Modified,
		"hidden":   false,
		"types":    []string{},
	}

	if request.Properties {
		description["properties"] = copyProperties(project.Properties)
	}

	return description, nil
}

// UpdateProject renames a project. The request shares its shape with object renames.
func (store *Store) UpdateProject(id string, body []byte) (any, error) {
	request := renameRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	return store.updateProject(id, func(project *Project) {
		project.Name = request.Name
	})
}

func (store *Store) SetProjectProperties(id string, body []byte) (any, error) {
	request := propertiesRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	return store.updateProject(id, func(project *Project) {
		applyProperties(project.Properties, request.Properties)
	})
}

func (store *Store) AddProjectTags(id string, body []byte) (any, error) {
	request := tagsRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	return store.updateProject(id, func(project *Project) {
		project.Tags = addUnique(project.Tags, request.Tags)
	})
}

func (store *Store) RemoveProjectTags(id string, body []byte) (any, error) {
	request := tagsRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	return store.updateProject(id, func(project *Project) {
		project.Tags = removeAll(project.Tags, request.Tags)
	})
}

func (store *Store) updateProject(id string, update func(project *Project)) (any, error) {
	store.lock.Lock()
	defer store.lock.Unlock()

	project, err := store.project(id)

	if err != nil {
		return nil, err
	}

	update(project)
	project.Modified = store.now()

	return created(id), nil
}

// Clone copies closed objects of project id into a folder of another project. Objects the
// destination already holds are reported under exists and left untouched.
func (store *Store) Clone(id string, body []byte) (any, error) {
	request := containerRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	if request.Project == "" {
		return nil, invalidInput("clone needs a destination project")
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	if _, err := store.project(id); err != nil {
		return nil, err
	}

	destination, err := store.project(request.Project)

	if err != nil {
		return nil, err
	}

	folder, err := cleanFolder(request.Destination)

	if err != nil {
		return nil, err
	}

	if err = ensureFolder(destination, folder, false); err != nil {
		return nil, err
	}

	sources, err := store.members(id, request.Objects)

	if err != nil {
		return nil, err
	}

	for _, obj := range sources {
		if obj.State != static.STATE_CLOSED {
			return nil, invalidState("%s must be closed before it can be cloned", obj.ID)
		}
	}

	exists := make([]string, 0)

	for _, obj := range sources {
		if _, ok := obj.Annotations[destination.ID]; ok {
			exists = append(exists, obj.ID)
			continue
		}

		source := obj.Annotations[id]

		obj.Annotations[destination.ID] = &Annotation{
			Name:       source.Name,
			Folder:     folder,
			Hidden:     source.Hidden,
			Tags:       append([]string{}, source.Tags...),
			Properties: copyProperties(source.Properties),
		}
	}

	return map[string]any{
		"id":      id,
		"project": destination.ID,
		"exists":  exists,
	}, nil
}

func (store *Store) Move(id string, body []byte) (any, error) {
	request := containerRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	project, err := store.project(id)

	if err != nil {
		return nil, err
	}

	folder, err := cleanFolder(request.Destination)

	if err != nil {
		return nil, err
	}

	if err = ensureFolder(project, folder, false); err != nil {
		return nil, err
	}

	members, err := store.members(id, request.Objects)

	if err != nil {
		return nil, err
	}

	for _, obj := range members {
		obj.Annotations[id].Folder = folder
	}

	return created(id), nil
}

// RemoveObjects drops the project id copy of each object. An object left in no project is gone.
func (store *Store) RemoveObjects(id string, body []byte) (any, error) {
	request := containerRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	if _, err := store.project(id); err != nil {
		return nil, err
	}

	members, err := store.members(id, request.Objects)

	if err != nil {
		return nil, err
	}

	for _, obj := range members {
		delete(obj.Annotations, id)

		if len(obj.Annotations) == 0 {
			delete(store.objects, obj.ID)
		}
	}

	store.refreshGauge()

	return created(id), nil
}

func (store *Store) NewFolder(id string, body []byte) (any, error) {
	request := folderRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	project, err := store.project(id)

	if err != nil {
		return nil, err
	}

	folder, err := cleanFolder(request.Folder)

	if err != nil {
		return nil, err
	}

	if project.Folders[folder] {
		if request.Parents {
			return created(id), nil
		}

		return nil, invalidInput("folder %s already exists in %s", folder, id)
	}

	if err = ensureFolder(project, path.Dir(folder), request.Parents); err != nil {
		return nil, err
	}

	project.Folders[folder] = true
	project.Modified = store.now()

	return created(id), nil
}

func (store *Store) ListFolder(id string, body []byte) (any, error) {
	request := folderRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	project, err := store.project(id)

	if err != nil {
		return nil, err
	}

	folder, err := cleanFolder(request.Folder)

	if err != nil {
		return nil, err
	}

	if err = ensureFolder(project, folder, false); err != nil {
		return nil, err
	}

	result := listing{Objects: []entry{}, Folders: []string{}}

	for _, obj := range store.objects {
		if annotation, ok := obj.Annotations[id]; ok && annotation.Folder == folder {
			result.Objects = append(result.Objects, entry{ID: obj.ID})
		}
	}

	for candidate := range project.Folders {
		if candidate != folder && path.Dir(candidate) == folder {
			result.Folders = append(result.Folders, candidate)
		}
	}

	sort.Slice(result.Objects, func(i, j int) bool {
		return result.Objects[i].ID < result.Objects[j].ID
	})

	sort.Strings(result.Folders)

	return result, nil
}

// members resolves ids to objects held by project, failing before any change if one is missing.
func (store *Store) members(project string, ids []string) ([]*Object, error) {
	members := make([]*Object, 0, len(ids))

	for _, id := range ids {
		obj, err := store.object(id)

		if err != nil {
			return nil, err
		}

		if _, ok := obj.Annotations[project]; !ok {
			return nil, notFound("%s could not be found in %s", id, project)
		}

		members = append(members, obj)
	}

	return members, nil
}
