package events

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ModelRef tells how a request payload names its model.
type ModelRef int

const (
	// ModelNoContent means the payload has no nested content.
	ModelNoContent ModelRef = iota
	// ModelUnnamed means the nested content carries no model.
	ModelUnnamed
	// ModelNamed means the nested content names a model.
	ModelNamed
)

// RequestModel reads content.model from a request payload. Missing, null,
// false, zero and empty values count as absent. A non-string model is
// returned as its raw JSON text.
func RequestModel(content string) (string, ModelRef, error) {
	if !gjson.Valid(content) {
		return "", ModelNoContent, ErrInvalidContent
	}
	root := gjson.Parse(content)
	if root.Type == gjson.Null {
		return "", ModelNoContent, fmt.Errorf("%w: top-level null", ErrInvalidContent)
	}

	inner := lastField(root, "content")
	if !truthy(inner) {
		return "", ModelNoContent, nil
	}
	model := lastField(inner, "model")
	if !truthy(model) {
		return "", ModelUnnamed, nil
	}
	if model.Type == gjson.String {
		return model.Str, ModelNamed, nil
	}
	return model.Raw, ModelNamed, nil
}

// lastField returns the last member of obj named key. Duplicate keys
// resolve to the final occurrence, as standard JSON decoders do.
func lastField(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	if !obj.IsObject() {
		return found
	}
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			found = v
		}
		return true
	})
	return found
}

func truthy(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return true
	}
}
