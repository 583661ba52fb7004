// Package domains maps domain names to validated condition tables.
//
// The built-in tables live in subpackages (character, occupation, facial).
// Additional tables can be registered from YAML or TOML files.
package domains

import (
	"sort"
	"sync"

	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/domains/character"
	"github.com/teranos/condax/domains/facial"
	"github.com/teranos/condax/domains/occupation"
	"github.com/teranos/condax/errors"
	"github.com/teranos/condax/logger"
)

// Source values for Entry.Source
const (
	SourceBuiltin = "builtin"
)

// Entry is one registered domain
type Entry struct {
	Domain     *axis.Domain
	Source     string // "builtin" or the table file path
	Deprecated bool
}

// Registry manages all available domains
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Builtin returns a registry holding the character, occupation and
// deprecated facial domains
func Builtin() *Registry {
	r := NewRegistry()
	r.mustAdd(Entry{Domain: character.Domain(), Source: SourceBuiltin})
	r.mustAdd(Entry{Domain: occupation.Domain(), Source: SourceBuiltin})
	r.mustAdd(Entry{Domain: facial.Domain(), Source: SourceBuiltin, Deprecated: true})
	return r
}

func (r *Registry) mustAdd(e Entry) {
	if err := r.add(e); err != nil {
		panic(err)
	}
}

// Register adds a domain.
// Returns ErrConflict if the name is already taken.
func (r *Registry) Register(d *axis.Domain) error {
	return r.add(Entry{Domain: d, Source: SourceBuiltin})
}

// RegisterFile loads a table file and registers the resulting domain
func (r *Registry) RegisterFile(path string, opts ...axis.DomainOption) (*axis.Domain, error) {
	d, err := axis.LoadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	if err := r.add(Entry{Domain: d, Source: path}); err != nil {
		return nil, errors.WithHintf(err, "rename the domain in %s", path)
	}
	logger.ComponentLogger("domains").Infow("Registered domain from file",
		logger.FieldDomain, d.Name(),
		logger.FieldFile, path)
	return d, nil
}

// RegisterFiles registers every path in order, stopping at the first error
func (r *Registry) RegisterFiles(paths []string) error {
	for _, p := range paths {
		if _, err := r.RegisterFile(p); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) add(e Entry) error {
	if e.Domain == nil {
		return errors.NewInvalidInputError("cannot register nil domain")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := e.Domain.Name()
	if existing, exists := r.entries[name]; exists {
		return errors.WithDetailf(
			errors.NewConflictError("domain already registered: %s", name),
			"existing source: %s", existing.Source,
		)
	}

	r.entries[name] = e
	return nil
}

// Get retrieves a domain by name
func (r *Registry) Get(name string) (*axis.Domain, error) {
	e, err := r.Entry(name)
	if err != nil {
		return nil, err
	}
	return e.Domain, nil
}

// Entry retrieves a registration by name
func (r *Registry) Entry(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return Entry{}, errors.WithHintf(
			errors.NewNotFoundError("domain %q", name),
			"available domains: %v", r.namesLocked(),
		)
	}
	return e, nil
}

// List returns all registered domain names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global registry instance
var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, seeded with the built-ins on
// first use
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = Builtin()
	})
	return defaultRegistry
}
