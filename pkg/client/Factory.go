package client

import (
	"github.com/dxtoolkit/dxgo/pkg/kinds"
	"github.com/dxtoolkit/dxgo/pkg/kinds/app"
	"github.com/dxtoolkit/dxgo/pkg/kinds/applet"
	"github.com/dxtoolkit/dxgo/pkg/kinds/common"
	"github.com/dxtoolkit/dxgo/pkg/kinds/file"
	"github.com/dxtoolkit/dxgo/pkg/kinds/gtable"
	"github.com/dxtoolkit/dxgo/pkg/kinds/job"
	"github.com/dxtoolkit/dxgo/pkg/kinds/project"
	"github.com/dxtoolkit/dxgo/pkg/kinds/record"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/dxtoolkit/dxgo/pkg/static"
)

func (client *Client) Record(id string, options ...objects.Option) *record.Record {
	return record.New(client.Invoker, id, client.Workspace, client.options(options)...)
}

func (client *Client) File(id string, options ...objects.Option) *file.File {
	return file.New(client.Invoker, id, client.Workspace, client.options(options)...)
}

func (client *Client) GTable(id string, options ...objects.Option) *gtable.GTable {
	return gtable.New(client.Invoker, id, client.Workspace, client.options(options)...)
}

func (client *Client) Applet(id string, options ...objects.Option) *applet.Applet {
	return applet.New(client.Invoker, id, client.Workspace, client.options(options)...)
}

func (client *Client) App(id string, options ...objects.Option) *app.App {
	return app.New(client.Invoker, id, client.Workspace, client.options(options)...)
}

func (client *Client) Job(id string, options ...objects.Option) *job.Job {
	return job.New(client.Invoker, id, client.Workspace, client.options(options)...)
}

func (client *Client) Project(id string, options ...objects.Option) *project.Project {
	return project.New(client.Invoker, id, client.options(options)...)
}

// Object builds a handle for id, routed by the class its prefix names.
func (client *Client) Object(id string, options ...objects.Option) (*objects.Object, error) {
	class, err := kinds.ClassOf(id)

	if err != nil {
		return nil, err
	}

	if class == static.CLASS_PROJECT {
		return client.Project(id, options...).Object, nil
	}

	router, err := kinds.New(class, client.Invoker)

	if err != nil {
		return nil, err
	}

	return objects.New(router, common.NewContainer(client.Invoker), id, client.Workspace, client.options(options)...), nil
}

func (client *Client) options(options []objects.Option) []objects.Option {
	merged := make([]objects.Option, 0, len(client.Options)+len(options))
	merged = append(merged, client.Options...)

	return append(merged, options...)
}
