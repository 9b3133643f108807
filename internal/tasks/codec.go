package tasks

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sandeepkv93/tasklite/internal/model"
)

// Encode serializes the whole collection as a JSON array.
func Encode(c model.Collection) (string, error) {
	b, err := json.Marshal(c.Clone())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses a stored collection. Anything that is not an array of
// valid tasks with distinct ids yields a *CorruptionError.
func Decode(raw string) (model.Collection, error) {
	if strings.TrimSpace(raw) == "" {
		return model.Collection{}, &CorruptionError{Err: fmt.Errorf("empty payload")}
	}
	var out model.Collection
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return model.Collection{}, &CorruptionError{Err: err}
	}
	if out == nil {
		return model.Collection{}, nil
	}
	seen := make(map[int64]struct{}, len(out))
	for i, t := range out {
		if err := t.Validate(); err != nil {
			return model.Collection{}, &CorruptionError{Err: fmt.Errorf("task %d: %w", i, err)}
		}
		if _, dup := seen[t.ID]; dup {
			return model.Collection{}, &CorruptionError{Err: fmt.Errorf("duplicate id %d", t.ID)}
		}
		seen[t.ID] = struct{}{}
	}
	return out, nil
}
