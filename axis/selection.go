package axis

// Selection is the mutable, insertion-ordered axis -> value mapping built
// during one generation call. It is not safe for concurrent use.
type Selection struct {
	keys   []string
	values map[string]string
}

// NewSelection creates an empty Selection
func NewSelection() *Selection {
	return &Selection{values: make(map[string]string)}
}

// Set stores value for axis. A new axis is appended to the order; an
// existing axis keeps its position.
func (s *Selection) Set(axis, value string) {
	if _, ok := s.values[axis]; !ok {
		s.keys = append(s.keys, axis)
	}
	s.values[axis] = value
}

// Get returns the value chosen for axis
func (s *Selection) Get(axis string) (string, bool) {
	v, ok := s.values[axis]
	return v, ok
}

// Delete removes axis and returns the value it held
func (s *Selection) Delete(axis string) (string, bool) {
	v, ok := s.values[axis]
	if !ok {
		return "", false
	}
	delete(s.values, axis)
	for i, k := range s.keys {
		if k == axis {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return v, true
}

// Len returns the number of chosen axes
func (s *Selection) Len() int {
	return len(s.keys)
}

// Snapshot returns an immutable copy of the current state
func (s *Selection) Snapshot() Assignment {
	a := Assignment{
		keys:   make([]string, len(s.keys)),
		values: make(map[string]string, len(s.values)),
	}
	copy(a.keys, s.keys)
	for k, v := range s.values {
		a.values[k] = v
	}
	return a
}
