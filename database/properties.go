package database

import (
	"encoding/json"
	"fmt"
	"graphdb/models"
	"sort"
	"strings"
)

// encodeProperty returns the stored type tag and JSON text of a value.
func encodeProperty(v any) (string, string, error) {
	t, err := models.TypeOf(v)
	if err != nil {
		return "", "", err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", "", fmt.Errorf("encoding %s property: %w", t, err)
	}
	return t.String(), string(raw), nil
}

// decodeProperty restores a value written by encodeProperty. Arrays come
// back as []any.
func decodeProperty(typeTag, raw string) (any, error) {
	t, err := models.ParsePropertyType(typeTag)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding %s property: %w", t, err)
	}

	if !t.Array {
		return convertScalar(t.Kind, v)
	}
	elems, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("stored %s property is not an array", t)
	}
	out := make([]any, len(elems))
	for i, e := range elems {
		if out[i], err = convertScalar(t.Kind, e); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func convertScalar(kind models.PropertyKind, v any) (any, error) {
	switch kind {
	case models.KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case models.KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case models.KindInt:
		if n, ok := v.(json.Number); ok {
			return n.Int64()
		}
	case models.KindFloat:
		if n, ok := v.(json.Number); ok {
			return n.Float64()
		}
	}
	return nil, fmt.Errorf("stored value %v does not match type %s", v, kind)
}

func sortedKeys(props map[string]any) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
