package axis

import (
	"bytes"
	"encoding/json"
	"iter"
	"strings"

	"github.com/teranos/condax/errors"
)

// Assignment is the immutable, insertion-ordered result of one generation
// call. The zero value is an empty assignment.
type Assignment struct {
	keys   []string
	values map[string]string
}

// AssignmentOf builds an Assignment from pairs in the given order.
// A repeated axis keeps its first position and its last value.
func AssignmentOf(pairs ...Pair) Assignment {
	sel := NewSelection()
	for _, p := range pairs {
		sel.Set(p.Axis, p.Value)
	}
	return sel.Snapshot()
}

// Get returns the value for axis and whether it is present
func (a Assignment) Get(axis string) (string, bool) {
	v, ok := a.values[axis]
	return v, ok
}

// Value returns the value for axis, or "" when absent
func (a Assignment) Value(axis string) string {
	return a.values[axis]
}

// Has reports whether axis is present
func (a Assignment) Has(axis string) bool {
	_, ok := a.values[axis]
	return ok
}

func (a Assignment) Len() int {
	return len(a.keys)
}

// Axes returns the axis names in insertion order
func (a Assignment) Axes() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Values returns the values in insertion order
func (a Assignment) Values() []string {
	out := make([]string, len(a.keys))
	for i, k := range a.keys {
		out[i] = a.values[k]
	}
	return out
}

// Pairs returns the entries in insertion order
func (a Assignment) Pairs() []Pair {
	out := make([]Pair, len(a.keys))
	for i, k := range a.keys {
		out[i] = Pair{Axis: k, Value: a.values[k]}
	}
	return out
}

// All iterates axis/value entries in insertion order
func (a Assignment) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Map returns an unordered copy of the entries
func (a Assignment) Map() map[string]string {
	out := make(map[string]string, len(a.values))
	for k, v := range a.values {
		out[k] = v
	}
	return out
}

// Equal reports whether both assignments hold the same entries in the same order
func (a Assignment) Equal(other Assignment) bool {
	if len(a.keys) != len(other.keys) {
		return false
	}
	for i, k := range a.keys {
		if other.keys[i] != k || other.values[k] != a.values[k] {
			return false
		}
	}
	return true
}

// Prompt renders the values as a comma-separated fragment
func (a Assignment) Prompt() string {
	return Serialize(a)
}

func (a Assignment) String() string {
	parts := make([]string, len(a.keys))
	for i, k := range a.keys {
		parts[i] = k + "=" + a.values[k]
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// MarshalJSON encodes the assignment as a JSON object preserving axis order
func (a Assignment) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string values, keeping key order
func (a *Assignment) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "decode assignment")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.NewInvalidInputError("assignment must be a JSON object, got %v", tok)
	}

	sel := NewSelection()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "decode assignment key")
		}
		key, _ := keyTok.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return errors.Wrapf(err, "decode value of axis %q", key)
		}
		sel.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return errors.Wrap(err, "decode assignment")
	}

	*a = sel.Snapshot()
	return nil
}
