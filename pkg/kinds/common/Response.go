package common

import (
	"github.com/pkg/errors"
)

// DecodeID reads the "id" field of a create or run response.
func DecodeID(response []byte) (string, error) {
	created := Created{}

	if err := json.Unmarshal(response, &created); err != nil {
		return "", errors.Wrap(err, "malformed response")
	}

	if created.ID == "" {
		return "", errors.New("response carries no id")
	}

	return created.ID, nil
}
