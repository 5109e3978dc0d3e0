package domain

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const bucketListKey = "bucketList"

// GlobalState is the shared remote document: one member per participant plus
// root-level shared collections such as the bucket list.
type GlobalState struct {
	doc gjson.Result
}

// ParseGlobalState accepts an empty body as an empty state. Anything other
// than a JSON object at the top level is malformed.
func ParseGlobalState(body []byte) (GlobalState, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return GlobalState{}, nil
	}

	if !gjson.ValidBytes(trimmed) {
		return GlobalState{}, fmt.Errorf("%w: body is not valid JSON", ErrMalformedState)
	}

	doc := gjson.ParseBytes(trimmed)
	if !doc.IsObject() {
		return GlobalState{}, fmt.Errorf("%w: expected a JSON object, got %s", ErrMalformedState, doc.Type)
	}

	return GlobalState{doc: doc}, nil
}

func (g GlobalState) IsEmpty() bool {
	empty := true
	g.doc.ForEach(func(_, _ gjson.Result) bool {
		empty = false
		return false
	})
	return empty
}

// Partner returns the compact serialized sub-state of the named participant.
// Members that are not objects are treated as absent.
func (g GlobalState) Partner(name string) (string, bool) {
	member, ok := g.member(name)
	if !ok || !member.IsObject() {
		return "", false
	}

	return Compact(member.Raw), true
}

func (g GlobalState) BucketListCount() (int, bool) {
	member, ok := g.member(bucketListKey)
	if !ok || !member.IsArray() {
		return 0, false
	}

	return len(member.Array()), true
}

// member looks keys up by iteration so participant names containing gjson
// path syntax (dots, wildcards) resolve literally.
func (g GlobalState) member(key string) (gjson.Result, bool) {
	var found gjson.Result
	ok := false
	g.doc.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Compact strips insignificant whitespace while keeping key order, so two
// serializations of the same state compare equal as text.
func Compact(raw string) string {
	return string(pretty.Ugly([]byte(raw)))
}
