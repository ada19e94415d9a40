package formaters

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Json(w io.Writer, v interface{}) error {
	bytes, err := json.MarshalIndent(v, "", "  ")

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(bytes))
	return err
}
