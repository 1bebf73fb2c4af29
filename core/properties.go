package core

import (
	"graphdb/models"
	"sort"
)

// ValidatePropertyValue accepts strings, booleans, integers, floats and
// non-empty arrays whose elements all share one of those kinds.
func ValidatePropertyValue(key string, value any) error {
	if lit, ok := findOutOfRangeInteger(value); ok {
		return NewError(InvalidPropertyValue, nil, "property %q: integer %s does not fit in 64 bits", key, lit)
	}
	if _, err := models.TypeOf(value); err != nil {
		return NewError(InvalidPropertyValue, err, "property %q has an unsupported value", key)
	}
	return nil
}

// ValidateProperties checks every value of props. Keys are visited in sorted
// order so the reported key is deterministic.
func ValidateProperties(props map[string]any) error {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == "" {
			return NewError(InvalidPropertyValue, nil, "property keys must not be empty")
		}
		if err := ValidatePropertyValue(k, props[k]); err != nil {
			return err
		}
	}
	return nil
}

func findOutOfRangeInteger(value any) (outOfRangeInteger, bool) {
	switch v := value.(type) {
	case outOfRangeInteger:
		return v, true
	case []any:
		for _, e := range v {
			if lit, ok := e.(outOfRangeInteger); ok {
				return lit, true
			}
		}
	}
	return "", false
}
