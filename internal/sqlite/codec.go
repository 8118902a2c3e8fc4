package sqlite

import (
	"encoding/json"
	"fmt"
)

// Structured-to-scalar encoding for fields without a native column type.
// Every encode/decode pair must round-trip exactly.

// encodeStringList serializes a list of strings into a single TEXT cell.
// Nil and empty lists both encode to the explicit empty-array marker "[]",
// never to NULL, so decode never fails on an empty collection.
func encodeStringList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode string list: %w", err)
	}
	return string(data), nil
}

// decodeStringList reverses encodeStringList. An empty cell (a NULL written
// before the empty-array marker was enforced) decodes to an empty list.
func decodeStringList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode string list %q: %w", raw, err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// encodeBool stores booleans in the smallest integer representation.
func encodeBool(b bool) int {
	if b {
		return 1
	}
	return 0
}

// decodeBool treats any nonzero value as true.
func decodeBool(n int64) bool { return n != 0 }
