// Package casing converts JSON object keys between the wire convention
// (snake_case) and the in-memory convention (camelCase).
package casing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type undefined struct{}

// Undefined marks a map entry that must not be sent to the API at all.
// Encode drops keys holding it; an explicit nil is kept and encodes as null.
var Undefined = undefined{}

// ToCamel converts a single snake_case key. An underscore followed by a
// lowercase ASCII letter becomes that letter uppercased; every other
// character is copied unchanged.
func ToCamel(key string) string {
	if strings.IndexByte(key, '_') < 0 {
		return key
	}

	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '_' && i+1 < len(key) && isLower(key[i+1]) {
			b.WriteByte(key[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ToSnake converts a single camelCase key. Every uppercase ASCII letter is
// lowercased and preceded by an underscore.
func ToSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if isUpper(c) {
			b.WriteByte('_')
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Decode renames every object key in v from snake_case to camelCase.
func Decode(v any) any {
	return transcode(v, ToCamel, false)
}

// Encode renames every object key in v from camelCase to snake_case and
// drops entries whose value is Undefined.
func Encode(v any) any {
	return transcode(v, ToSnake, true)
}

// transcode never mutates v. Maps and slices are always rebuilt; anything
// that is not a JSON object or array (strings, json.Number, time.Time,
// decimals...) is returned as is.
func transcode(v any, rename func(string) string, outbound bool) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if outbound && val == Undefined {
				continue
			}
			out[rename(k)] = transcode(val, rename, outbound)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = transcode(item, rename, outbound)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			if outbound && item == Undefined {
				out[i] = nil
				continue
			}
			out[i] = transcode(item, rename, outbound)
		}
		return out
	default:
		return v
	}
}

// DecodeJSON rewrites a snake_case JSON document into camelCase.
func DecodeJSON(data []byte) ([]byte, error) {
	return rewriteJSON(data, Decode)
}

// EncodeJSON rewrites a camelCase JSON document into snake_case.
func EncodeJSON(data []byte) ([]byte, error) {
	return rewriteJSON(data, Encode)
}

// MarshalSnake marshals v with its camelCase JSON tags and returns the
// snake_case wire form.
func MarshalSnake(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return EncodeJSON(data)
}

// UnmarshalCamel decodes a snake_case wire document into v, whose JSON
// tags use camelCase.
func UnmarshalCamel(data []byte, v any) error {
	camel, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(camel, v)
}

func rewriteJSON(data []byte, fn func(any) any) ([]byte, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return data, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	out, err := json.Marshal(fn(v))
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return out, nil
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
