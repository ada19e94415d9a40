package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/client"
	"github.com/dxtoolkit/dxgo/pkg/command"
	"github.com/dxtoolkit/dxgo/pkg/formaters"
	"github.com/dxtoolkit/dxgo/pkg/objects"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func Annotations() {
	Commands = append(Commands,
		command.NewBuilder().Name("tag").Short("Manage tags of an object in the current project").BuildWithValidation(),
		command.NewBuilder().
			Parent("tag").
			Name("add").
			Short("Add tags").
			Args(cobra.MinimumNArgs(2)).
			DependsOn(Connect).
			Function(withObject(func(ctx context.Context, obj *objects.Object, values []string) error {
				return obj.AddTags(ctx, values)
			})).
			BuildWithValidation(),
		command.NewBuilder().
			Parent("tag").
			Name("remove").
			Short("Remove tags").
			Args(cobra.MinimumNArgs(2)).
			DependsOn(Connect).
			Function(withObject(func(ctx context.Context, obj *objects.Object, values []string) error {
				return obj.RemoveTags(ctx, values)
			})).
			BuildWithValidation(),

		command.NewBuilder().Name("type").Short("Manage types of an object").BuildWithValidation(),
		command.NewBuilder().
			Parent("type").
			Name("add").
			Short("Add types").
			Args(cobra.MinimumNArgs(2)).
			DependsOn(Connect).
			Function(withObject(func(ctx context.Context, obj *objects.Object, values []string) error {
				return obj.AddTypes(ctx, values)
			})).
			BuildWithValidation(),
		command.NewBuilder().
			Parent("type").
			Name("remove").
			Short("Remove types").
			Args(cobra.MinimumNArgs(2)).
			DependsOn(Connect).
			Function(withObject(func(ctx context.Context, obj *objects.Object, values []string) error {
				return obj.RemoveTypes(ctx, values)
			})).
			BuildWithValidation(),

		command.NewBuilder().Name("property").Short("Manage properties of an object in the current project").BuildWithValidation(),
		command.NewBuilder().
			Parent("property").
			Name("set").
			Short("Set properties given as key=value").
			Args(cobra.MinimumNArgs(2)).
			DependsOn(Connect).
			Function(withObject(func(ctx context.Context, obj *objects.Object, values []string) error {
				properties, err := parseProperties(values)

				if err != nil {
					return err
				}

				return obj.SetProperties(ctx, properties)
			})).
			BuildWithValidation(),
		command.NewBuilder().
			Parent("property").
			Name("unset").
			Short("Remove properties by key").
			Args(cobra.MinimumNArgs(2)).
			DependsOn(Connect).
			Function(withObject(func(ctx context.Context, obj *objects.Object, values []string) error {
				properties := make(map[string]*string, len(values))

				for _, key := range values {
					properties[key] = nil
				}

				return obj.SetProperties(ctx, properties)
			})).
			BuildWithValidation(),
		command.NewBuilder().
			Parent("property").
			Name("get").
			Short("Show the properties").
			Args(cobra.ExactArgs(1)).
			DependsOn(Connect).
			Function(func(cli *client.Client, args []string) error {
				obj, err := cli.Object(args[0])

				if err != nil {
					return err
				}

				properties, err := obj.GetProperties(context.Background())

				if err != nil {
					return err
				}

				return render(cli, properties, func(w io.Writer) {
					formaters.Properties(w, properties)
				})
			}).
			BuildWithValidation(),
	)
}

// withObject adapts fn to a command taking an object ID followed by values.
func withObject(fn func(ctx context.Context, obj *objects.Object, values []string) error) func(*client.Client, []string) error {
	return func(cli *client.Client, args []string) error {
		obj, err := cli.Object(args[0])

		if err != nil {
			return err
		}

		return fn(context.Background(), obj, args[1:])
	}
}

func parseProperties(values []string) (map[string]*string, error) {
	properties := make(map[string]*string, len(values))

	for _, value := range values {
		key, property, found := strings.Cut(value, "=")

		if !found || key == "" {
			return nil, errors.Wrap(apierrors.ErrInvalidInput, fmt.Sprintf("%q is not key=value", value))
		}

		properties[key] = &property
	}

	return properties, nil
}
