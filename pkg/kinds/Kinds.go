package kinds

import (
	"fmt"
	"strings"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iinvoker"
	"github.com/dxtoolkit/dxgo/pkg/contracts/iobjects"
	"github.com/dxtoolkit/dxgo/pkg/kinds/app"
	"github.com/dxtoolkit/dxgo/pkg/kinds/applet"
	"github.com/dxtoolkit/dxgo/pkg/kinds/file"
	"github.com/dxtoolkit/dxgo/pkg/kinds/gtable"
	"github.com/dxtoolkit/dxgo/pkg/kinds/job"
	"github.com/dxtoolkit/dxgo/pkg/kinds/project"
	"github.com/dxtoolkit/dxgo/pkg/kinds/record"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/pkg/errors"
)

func New(class string, invoker iinvoker.Invoker) (iobjects.Router, error) {
	switch class {
	case static.CLASS_RECORD:
		return record.NewRouter(invoker), nil
	case static.CLASS_FILE:
		return file.NewRouter(invoker), nil
	case static.CLASS_GTABLE:
		return gtable.NewRouter(invoker), nil
	case static.CLASS_APPLET:
		return applet.NewRouter(invoker), nil
	case static.CLASS_APP:
		return app.NewRouter(invoker), nil
	case static.CLASS_PROJECT:
		return project.NewRouter(invoker), nil
	case static.CLASS_JOB:
		return job.NewRouter(invoker), nil
	default:
		return nil, errors.Wrap(apierrors.ErrInvalidInput, fmt.Sprintf("%s class does not exist", class))
	}
}

// ClassOf reads the class from an object ID such as record-B5bK7Jv0jvj6Qzzq7xyz.
func ClassOf(id string) (string, error) {
	class, _, found := strings.Cut(id, "-")

	if !found {
		return "", errors.Wrapf(apierrors.ErrInvalidInput, "%q is not an object id", id)
	}

	for _, known := range static.CLASSES {
		if class == known {
			return class, nil
		}
	}

	return "", errors.Wrapf(apierrors.ErrInvalidInput, "%q has unknown class %q", id, class)
}
