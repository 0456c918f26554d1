package webhook

import (
	"bytes"
	"encoding/json"
)

// checkPayload rejects bodies that are not JSON, and JSON values that carry nothing
// (null, {}, [], "", 0, false).
func checkPayload(body []byte) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ErrNoPayload
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return ErrInvalidJSON
	}

	switch t := v.(type) {
	case nil:
		return ErrNoPayload
	case map[string]any:
		if len(t) == 0 {
			return ErrNoPayload
		}
	case []any:
		if len(t) == 0 {
			return ErrNoPayload
		}
	case string:
		if t == "" {
			return ErrNoPayload
		}
	case float64:
		if t == 0 {
			return ErrNoPayload
		}
	case bool:
		if !t {
			return ErrNoPayload
		}
	}
	return nil
}
