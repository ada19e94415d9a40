package kinds

import (
	"errors"
	"testing"

	"github.com/dxtoolkit/dxgo/pkg/apierrors"
	"github.com/dxtoolkit/dxgo/pkg/static"
	"github.com/go-playground/assert/v2"
)

func TestNew(t *testing.T) {
	for _, class := range static.CLASSES {
		router, err := New(class, nil)

		assert.Equal(t, err, nil)
		assert.Equal(t, router.Class(), class)
	}

	_, err := New("workflow", nil)
	assert.Equal(t, errors.Is(err, apierrors.ErrInvalidInput), true)
}

func TestClassOf(t *testing.T) {
	testCases := []struct {
		name   string
		id     string
		wanted string
		err    error
	}{
		{"Record", "record-B5bK7Jv0jvj6Qzzq7xyz", "record", nil},
		{"Job", "job-B5bK7Jv0jvj6Qzzq7xyz", "job", nil},
		{"Project", "project-B5bK7Jv0jvj6Qzzq7xyz", "project", nil},
		{"Unknown class", "workflow-B5bK7Jv0jvj6Qzzq7xyz", "", apierrors.ErrInvalidInput},
		{"Not an id", "sample", "", apierrors.ErrInvalidInput},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			class, err := ClassOf(tc.id)

			assert.Equal(t, class, tc.wanted)
			assert.Equal(t, errors.Is(err, tc.err), true)
		})
	}
}
