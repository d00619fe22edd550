package gateway

import (
	"bytes"
	"encoding/json"
)

// valuesKey is the reference-preserving wrapper the backend's serializer
// wraps every collection in when cycles are possible.
const valuesKey = "$values"

// unwrapList reduces any of the three envelope shapes the backend has been
// observed to use down to the raw JSON array:
//
//	[ ... ]
//	{ "$values": [ ... ] }
//	{ "<resource>": [ ... ] } or { "<resource>": { "$values": [ ... ] } }
//
// Anything else yields nil. Callers treat nil as an empty sequence; a
// surprising payload must keep list screens renderable, not crash them.
func unwrapList(raw json.RawMessage, resource string) json.RawMessage {
	return unwrap(raw, resource, true)
}

func unwrap(raw json.RawMessage, resource string, descend bool) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '[' {
		return trimmed
	}
	if trimmed[0] != '{' {
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil
	}
	if descend && resource != "" {
		if inner, ok := obj[resource]; ok {
			// One recursive level: the named property may itself carry the
			// wrapper key.
			return unwrap(inner, "", false)
		}
	}
	if inner, ok := obj[valuesKey]; ok {
		return unwrap(inner, "", false)
	}
	return nil
}

// decodeList normalizes the envelope and unmarshals the records. Malformed
// payloads fail closed to an empty slice; screens render a "no records" row
// instead of propagating a decode failure.
func decodeList[T any](body []byte, resource string) []T {
	arr := unwrapList(body, resource)
	if arr == nil {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(arr, &out); err != nil {
		return []T{}
	}
	if out == nil {
		return []T{}
	}
	return out
}
