package svg

import (
	"bytes"
	"fmt"
	"slices"
)

// Attributes is a set of free-form attributes keyed by name.
//
// Setting an existing key replaces its value but keeps its position, so
// attributes are written in the order their keys first appeared. The zero
// value is an empty set ready to use. Attributes is a value type: a plain
// copy is independent, and Set on one copy never shows up in another.
type Attributes struct {
	entries []attr
}

type attr struct {
	key, value string
}

// Attrs builds an attribute set from alternating key/value pairs.
// It panics if given an odd number of arguments.
func Attrs(kv ...string) Attributes {
	if len(kv)%2 == 1 {
		panic("svg.Attrs: odd argument count")
	}
	var a Attributes
	for i := 0; i < len(kv); i += 2 {
		a.Set(kv[i], kv[i+1])
	}
	return a
}

// Set stores value under key, overwriting any previous value.
//
// Copies of a may share its backing array, so Set never writes into it.
func (a *Attributes) Set(key, value string) {
	if i := a.index(key); i >= 0 {
		a.entries = slices.Clone(a.entries)
		a.entries[i].value = value
		return
	}
	a.entries = append(slices.Clip(a.entries), attr{key: key, value: value})
}

func (a Attributes) index(key string) int {
	return slices.IndexFunc(a.entries, func(e attr) bool { return e.key == key })
}

// Get returns the value stored under key.
func (a Attributes) Get(key string) (string, bool) {
	if i := a.index(key); i >= 0 {
		return a.entries[i].value, true
	}
	return "", false
}

// Len returns the number of distinct keys.
func (a Attributes) Len() int { return len(a.entries) }

// Keys returns the keys in output order.
func (a Attributes) Keys() []string {
	keys := make([]string, len(a.entries))
	for i, e := range a.entries {
		keys[i] = e.key
	}
	return keys
}

// Clone returns a copy that shares no state with a.
func (a Attributes) Clone() Attributes {
	return Attributes{entries: slices.Clone(a.entries)}
}

// String returns the rendered attributes, each preceded by a space.
func (a Attributes) String() string {
	var buf bytes.Buffer
	a.writeTo(&buf)
	return buf.String()
}

func (a Attributes) writeTo(buf *bytes.Buffer) {
	for _, e := range a.entries {
		fmt.Fprintf(buf, ` %s="%s"`, e.key, e.value)
	}
}
