package models

import (
	"errors"
	"fmt"
	"reflect"
)

// PropertyKind is the element kind of a property value.
type PropertyKind string

const (
	KindString PropertyKind = "string"
	KindBool   PropertyKind = "bool"
	KindInt    PropertyKind = "int"
	KindFloat  PropertyKind = "float"
)

// PropertyType describes a stored property value: a scalar kind, or an
// array whose elements all share that kind.
type PropertyType struct {
	Kind  PropertyKind
	Array bool
}

func (t PropertyType) String() string {
	if t.Array {
		return string(t.Kind) + "[]"
	}
	return string(t.Kind)
}

// ParsePropertyType is the inverse of PropertyType.String.
func ParsePropertyType(s string) (PropertyType, error) {
	var t PropertyType
	if len(s) > 2 && s[len(s)-2:] == "[]" {
		t.Array = true
		s = s[:len(s)-2]
	}
	switch PropertyKind(s) {
	case KindString, KindBool, KindInt, KindFloat:
		t.Kind = PropertyKind(s)
		return t, nil
	}
	return PropertyType{}, fmt.Errorf("unknown property type %q", s)
}

var ErrUnsupportedPropertyValue = errors.New("unsupported property value")

// scalarKind reports the kind of a scalar value. Unsigned types wider than
// 32 bits are refused since they may not fit an int64.
func scalarKind(v any) (PropertyKind, bool) {
	switch v.(type) {
	case string:
		return KindString, true
	case bool:
		return KindBool, true
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return KindInt, true
	case float32, float64:
		return KindFloat, true
	}
	return "", false
}

// TypeOf classifies a property value. It fails with an error wrapping
// ErrUnsupportedPropertyValue for nulls, maps, nested or empty arrays and
// arrays mixing element kinds.
func TypeOf(v any) (PropertyType, error) {
	if v == nil {
		return PropertyType{}, fmt.Errorf("%w: null", ErrUnsupportedPropertyValue)
	}
	if k, ok := scalarKind(v); ok {
		return PropertyType{Kind: k}, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return PropertyType{}, fmt.Errorf("%w: %T", ErrUnsupportedPropertyValue, v)
	}
	if rv.Len() == 0 {
		return PropertyType{}, fmt.Errorf("%w: empty array has no element type", ErrUnsupportedPropertyValue)
	}

	var kind PropertyKind
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		k, ok := scalarKind(elem)
		if !ok {
			return PropertyType{}, fmt.Errorf("%w: array element %d is %T", ErrUnsupportedPropertyValue, i, elem)
		}
		if i == 0 {
			kind = k
		} else if k != kind {
			return PropertyType{}, fmt.Errorf("%w: array mixes %s and %s", ErrUnsupportedPropertyValue, kind, k)
		}
	}
	return PropertyType{Kind: kind, Array: true}, nil
}

// CloneProperties deep-copies a property map so the copy shares no slices
// with the original.
func CloneProperties(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		c := make([]any, len(t))
		for i := range t {
			c[i] = cloneValue(t[i])
		}
		return c
	case map[string]any:
		return CloneProperties(t)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && !rv.IsNil() {
		c := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(c, rv)
		return c.Interface()
	}
	return v
}
