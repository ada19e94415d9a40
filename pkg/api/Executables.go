package api

import (
	"github.com/dxtoolkit/dxgo/pkg/static"
)

// CreateJob handles /job/new, which starts a subjob running one function.
func (store *Store) CreateJob(_ string, body []byte) (any, error) {
	request := jobRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	if id, ok := store.nonces[request.Nonce]; ok && request.Nonce != "" {
		return created(id), nil
	}

	name := request.Name

	if name == "" {
		name = request.Function
	}

	job := store.newJob(name, map[string]any{
		"function": request.Function,
		"input":    input(request.Input),
	})

	store.remember(request.Nonce, job.ID)

	return created(job.ID), nil
}

// Run starts a closed applet or app. Applets default to running in their own project.
func (store *Store) Run(id string, body []byte) (any, error) {
	request := runRequest{}

	if err := bind(body, &request); err != nil {
		return nil, err
	}

	store.lock.Lock()
	defer store.lock.Unlock()

	executable, err := store.object(id)

	if err != nil {
		return nil, err
	}

	if executable.State != static.STATE_CLOSED {
		return nil, invalidState("%s must be closed before it can run", id)
	}

	project := request.Project

	if project == "" && scoped(executable.Class) {
		project, _, err = store.annotation(executable, "")

		if err != nil {
			return nil, err
		}
	}

	if project != "" {
		if _, err = store.project(project); err != nil {
			return nil, err
		}
	}

	for _, dependency := range request.DependsOn {
		if _, err = store.object(dependency); err != nil {
			return nil, err
		}
	}

	name := request.Name

	if name == "" {
		_, annotation, _ := store.annotation(executable, project)

		if annotation != nil {
			name = annotation.Name
		}
	}

	job := store.newJob(name, map[string]any{
		"function":   "main",
		"input":      input(request.Input),
		"executable": id,
		"project":    project,
		"folder":     request.Folder,
		"dependsOn":  nonNil(request.DependsOn),
	})

	return created(job.ID), nil
}

func (store *Store) Terminate(id string, _ []byte) (any, error) {
	store.lock.Lock()
	defer store.lock.Unlock()

	job, err := store.object(id)

	if err != nil {
		return nil, err
	}

	if job.State != static.JOB_STATE_RUNNING {
		return nil, invalidState("%s is %s and cannot be terminated", id, job.State)
	}

	job.State = static.JOB_STATE_TERMINATED
	job.touch(store.now())

	return created(id), nil
}

func (store *Store) newJob(name string, extra map[string]any) *Object {
	now := store.now()

	job := &Object{
		ID:       newID(static.CLASS_JOB),
		Class:    static.CLASS_JOB,
		State:    static.JOB_STATE_RUNNING,
		Types:    []string{},
		Created:  now,
		Modified: now,
		Closing:  store.closing,
		Extra:    extra,
		Annotations: map[string]*Annotation{"": {
			Name:       name,
			Tags:       []string{},
			Properties: make(map[string]string),
		}},
	}

	store.objects[job.ID] = job
	store.refreshGauge()

	return job
}

func input(value any) any {
	if value == nil {
		return map[string]any{}
	}

	return value
}
