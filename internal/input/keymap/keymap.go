package keymap

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/braillepad/internal/input/key"
)

// Errors returned by keymap operations.
var (
	// ErrEmptyPhysical indicates a binding without a physical key name.
	ErrEmptyPhysical = errors.New("empty physical key")

	// ErrMissingDot indicates a keymap that leaves a dot unreachable.
	ErrMissingDot = errors.New("dot key not bound")

	// ErrReservedKey indicates a binding on a key the application reserves.
	ErrReservedKey = errors.New("physical key is reserved")
)

// Unbound is the logical name that removes a physical binding.
const Unbound = "none"

// Keymap maps physical key names to logical keys.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Source indicates where this keymap was defined.
	// Examples: "default", "config".
	Source string

	bindings map[string]key.Key
}

// NewKeymap creates an empty keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		bindings: make(map[string]key.Key),
	}
}

// WithSource sets the source for this keymap.
func (m *Keymap) WithSource(source string) *Keymap {
	m.Source = source
	return m
}

// Bind maps physical to k, replacing any previous binding.
func (m *Keymap) Bind(physical string, k key.Key) *Keymap {
	m.bindings[Normalize(physical)] = k
	return m
}

// Add parses logical and binds it to physical. A logical name of
// "none" removes the binding.
func (m *Keymap) Add(physical, logical string) error {
	p := Normalize(physical)
	if p == "" {
		return ErrEmptyPhysical
	}
	if strings.EqualFold(strings.TrimSpace(logical), Unbound) {
		m.Unbind(p)
		return nil
	}
	k, err := key.Parse(logical)
	if err != nil {
		return fmt.Errorf("binding %q: %w", physical, err)
	}
	m.bindings[p] = k
	return nil
}

// Unbind removes the binding for physical.
func (m *Keymap) Unbind(physical string) {
	delete(m.bindings, Normalize(physical))
}

// Lookup returns the logical key for physical.
func (m *Keymap) Lookup(physical string) (key.Key, bool) {
	k, ok := m.bindings[Normalize(physical)]
	return k, ok
}

// PhysicalFor returns the physical names bound to k, sorted.
func (m *Keymap) PhysicalFor(k key.Key) []string {
	var names []string
	for p, bound := range m.bindings {
		if bound == k {
			names = append(names, p)
		}
	}
	slices.Sort(names)
	return names
}

// Len returns the number of bindings.
func (m *Keymap) Len() int {
	return len(m.bindings)
}

// Bindings returns all bindings ordered by logical key, then physical name.
func (m *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(m.bindings))
	for p, k := range m.bindings {
		out = append(out, Binding{Physical: p, Key: k})
	}
	slices.SortFunc(out, func(a, b Binding) int {
		if a.Key != b.Key {
			return int(a.Key) - int(b.Key)
		}
		return strings.Compare(a.Physical, b.Physical)
	})
	return out
}

// Merge copies every binding of other into m. Bindings in other win.
func (m *Keymap) Merge(other *Keymap) *Keymap {
	if other == nil {
		return m
	}
	for p, k := range other.bindings {
		m.bindings[p] = k
	}
	return m
}

// Validate checks that every dot is reachable and that no reserved key
// is bound.
func (m *Keymap) Validate(reserved ...string) error {
	for _, r := range reserved {
		if k, ok := m.Lookup(r); ok {
			return fmt.Errorf("%w: %q bound to %v", ErrReservedKey, Normalize(r), k)
		}
	}
	for n := 1; n <= 6; n++ {
		if len(m.PhysicalFor(key.Dot(n))) == 0 {
			return fmt.Errorf("%w: dot%d", ErrMissingDot, n)
		}
	}
	return nil
}

// Clone creates a deep copy of the keymap.
func (m *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     m.Name,
		Source:   m.Source,
		bindings: make(map[string]key.Key, len(m.bindings)),
	}
	for p, k := range m.bindings {
		clone.bindings[p] = k
	}
	return clone
}
