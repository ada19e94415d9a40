package api

import (
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/dxtoolkit/dxgo/pkg/metrics"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"k8s.io/utils/clock"
)

// NewStore returns an empty store. Files and gtables report closing for closing describes
// after close; jobs run for as many describes.
func NewStore(c clock.PassiveClock, closing int) *Store {
	if c == nil {
		c = clock.RealClock{}
	}

	if closing < 0 {
		closing = 0
	}

	return &Store{
		clock:    c,
		closing:  closing,
		projects: make(map[string]*Project),
		objects:  make(map[string]*Object),
		nonces:   make(map[string]string),
	}
}

func (store *Store) now() int64 {
	return store.clock.Now().UnixMilli()
}

func newID(class string) string {
	return class + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
}

func bind(body []byte, request any) error {
	if len(body) == 0 {
		body = []byte("{}")
	}

	if err := binding.JSON.BindBody(body, request); err != nil {
		return invalidInput("%s", err.Error())
	}

	return nil
}

func (store *Store) project(id string) (*Project, error) {
	project, ok := store.projects[id]

	if !ok {
		return nil, notFound("project %s could not be found", id)
	}

	return project, nil
}

func (store *Store) object(id string) (*Object, error) {
	obj, ok := store.objects[id]

	if !ok {
		return nil, notFound("%s could not be found", id)
	}

	return obj, nil
}

// annotation resolves the project copy of obj a request refers to. An empty project picks
// the first project holding a copy.
func (store *Store) annotation(obj *Object, project string) (string, *Annotation, error) {
	if !scoped(obj.Class) {
		return "", obj.Annotations[""], nil
	}

	if project == "" {
		projects := obj.projects()

		if len(projects) == 0 {
			return "", nil, notFound("%s is not in any project", obj.ID)
		}

		project = projects[0]
	}

	annotation, ok := obj.Annotations[project]

	if !ok {
		return "", nil, notFound("%s could not be found in %s", obj.ID, project)
	}

	return project, annotation, nil
}

func (obj *Object) projects() []string {
	projects := make([]string, 0, len(obj.Annotations))

	for project := range obj.Annotations {
		if project != "" {
			projects = append(projects, project)
		}
	}

	sort.Strings(projects)

	return projects
}

func (obj *Object) touch(now int64) {
	obj.Modified = now
}

func scoped(class string) bool {
	return class != static.CLASS_JOB && class != static.CLASS_APP
}

func cleanFolder(folder string) (string, error) {
	if folder == "" {
		return static.ROOTPROJECT, nil
	}

	if !strings.HasPrefix(folder, "/") {
		return "", invalidInput("folder %q must be an absolute path", folder)
	}

	return path.Clean(folder), nil
}

// ensureFolder checks folder exists in project, creating it and its parents when parents is set.
func ensureFolder(project *Project, folder string, parents bool) error {
	if project.Folders[folder] {
		return nil
	}

	if !parents {
		return notFound("folder %s does not exist in %s", folder, project.ID)
	}

	for current := folder; !project.Folders[current]; current = path.Dir(current) {
		project.Folders[current] = true
	}

	return nil
}

func (store *Store) refreshGauge() {
	counts := make(map[string]int)

	for _, obj := range store.objects {
		counts[obj.Class]++
	}

	counts[static.CLASS_PROJECT] = len(store.projects)

	for _, class := range static.CLASSES {
		metrics.EmulatorObjects.Set(float64(counts[class]), class)
	}
}

func addUnique(values []string, additions []string) []string {
	for _, addition := range additions {
		if !slices.Contains(values, addition) {
			values = append(values, addition)
		}
	}

	return values
}

func removeAll(values []string, removals []string) []string {
	return slices.DeleteFunc(slices.Clone(values), func(value string) bool {
		return slices.Contains(removals, value)
	})
}

func copyProperties(properties map[string]string) map[string]string {
	copied := make(map[string]string, len(properties))

	for key, value := range properties {
		copied[key] = value
	}

	return copied
}

func applyProperties(properties map[string]string, changes map[string]*string) {
	for key, value := range changes {
		if value == nil {
			delete(properties, key)
			continue
		}

		properties[key] = *value
	}
}
