package core

import (
	"bytes"
	"fmt"
	"graphdb/models"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// DecodeRelationshipRequest parses the body of a relationship creation
// request. Bodies that are not JSON fail with MalformedInput; JSON missing a
// usable "to" or "type" fails with InvalidRequest. Property values are
// returned as decoded and are not validated here.
func DecodeRelationshipRequest(body []byte) (models.RelationshipCreationRequest, error) {
	var req models.RelationshipCreationRequest
	if !gjson.ValidBytes(body) {
		return req, NewError(MalformedInput, nil, "request body is not valid JSON")
	}
	if !utf8.Valid(body) {
		return req, NewError(MalformedInput, nil, "request body is not valid UTF-8")
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return req, NewError(InvalidRequest, nil, "request body must be a JSON object")
	}

	to := doc.Get("to")
	if to.Type != gjson.String || strings.TrimSpace(to.Str) == "" {
		return req, NewError(InvalidRequest, nil, `"to" is required and must be a node URI`)
	}
	endID, err := ParseNodeReference(to.Str)
	if err != nil {
		return req, NewError(InvalidRequest, err, `"to" does not reference a node: %q`, to.Str)
	}
	req.To = to.Str
	req.EndNodeID = endID

	typ := doc.Get("type")
	if typ.Type != gjson.String || strings.TrimSpace(typ.Str) == "" {
		return req, NewError(InvalidRequest, nil, `"type" is required and must be a non-empty string`)
	}
	req.Type = typ.Str

	req.Data, err = decodePropertyObject(doc.Get("data"))
	if err != nil {
		return req, err
	}
	return req, nil
}

// DecodeProperties parses a body that is expected to hold a property map.
// An empty body yields an empty map.
func DecodeProperties(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}
	if !gjson.ValidBytes(body) {
		return nil, NewError(MalformedInput, nil, "request body is not valid JSON")
	}
	if !utf8.Valid(body) {
		return nil, NewError(MalformedInput, nil, "request body is not valid UTF-8")
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, NewError(InvalidRequest, nil, "request body must be a JSON object of properties")
	}
	return decodePropertyObject(doc)
}

// ParseNodeReference extracts the node id from a reference whose trailing
// path segment is the id, e.g. "http://host/db/data/node/42" or "42".
func ParseNodeReference(ref string) (int64, error) {
	ref = strings.TrimSpace(ref)
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	ref = strings.TrimRight(ref, "/")
	segment := ref[strings.LastIndex(ref, "/")+1:]
	// Digits only: ParseInt would also take a sign.
	if segment == "" || strings.TrimLeft(segment, "0123456789") != "" {
		return 0, fmt.Errorf("trailing segment %q is not a node id", segment)
	}
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("node id %s is out of range", segment)
	}
	return id, nil
}

func decodePropertyObject(r gjson.Result) (map[string]any, error) {
	props := map[string]any{}
	if !r.Exists() || r.Type == gjson.Null {
		return props, nil
	}
	if !r.IsObject() {
		return nil, NewError(InvalidRequest, nil, `"data" must be a JSON object`)
	}
	var err error
	r.ForEach(func(key, value gjson.Result) bool {
		var v any
		v, err = decodeValue(value)
		if err != nil {
			return false
		}
		props[key.String()] = v
		return true
	})
	if err != nil {
		return nil, err
	}
	return props, nil
}

// outOfRangeInteger is an integer literal that does not fit in int64. It is
// kept as decoded so the property validator rejects it in its usual place.
type outOfRangeInteger string

// decodeValue converts a JSON value into plain Go values. Number literals
// without a fraction or exponent become int64 so integer properties keep
// their kind.
func decodeValue(r gjson.Result) (any, error) {
	switch r.Type {
	case gjson.String:
		return r.Str, nil
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	case gjson.Null:
		return nil, nil
	case gjson.Number:
		if !strings.ContainsAny(r.Raw, ".eE") {
			i, err := strconv.ParseInt(r.Raw, 10, 64)
			if err != nil {
				return outOfRangeInteger(r.Raw), nil
			}
			return i, nil
		}
		f, err := strconv.ParseFloat(r.Raw, 64)
		if err != nil {
			return nil, NewError(MalformedInput, err, "invalid number %s", r.Raw)
		}
		return f, nil
	}

	if r.IsArray() {
		elems := r.Array()
		out := make([]any, len(elems))
		for i, e := range elems {
			v, err := decodeValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	out := map[string]any{}
	var err error
	r.ForEach(func(key, value gjson.Result) bool {
		var v any
		v, err = decodeValue(value)
		if err != nil {
			return false
		}
		out[key.String()] = v
		return true
	})
	return out, err
}
