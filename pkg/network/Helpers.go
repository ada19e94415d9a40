package network

import (
	"encoding/json"
)

// ToJson marshals data for a request body; strings and raw messages are passed through untouched.
func ToJson(data interface{}) (json.RawMessage, error) {
	switch v := data.(type) {
	case nil:
		return json.RawMessage("{}"), nil
	case string:
		return json.RawMessage(v), nil
	case []byte:
		return json.RawMessage(v), nil
	case json.RawMessage:
		return v, nil
	default:
		return jsonAPI.Marshal(v)
	}
}
