package model

import (
	"strings"

	"github.com/google/uuid"

	"github.com/npillmayer/cascade/value"
)

// InstanceID identifies a component instance of the document tree.
type InstanceID string

// StyleSourceID identifies a style source.
type StyleSourceID string

// BreakpointID identifies a breakpoint.
type BreakpointID string

// BaseBreakpoint is the universal breakpoint without a width threshold. It
// always matches and always ranks lowest.
const BaseBreakpoint BreakpointID = "base"

// NewStyleSourceID creates a fresh, globally unique style source identifier.
func NewStyleSourceID() StyleSourceID {
	return StyleSourceID(uuid.NewString())
}

// Selector is a chain of instance identifiers from a queried instance up to
// the root of the tree (leaf first). Identifiers not known to a model, e.g.
// synthetic collection items, are legal.
type Selector []InstanceID

// Leaf returns the queried instance, i.e. the first entry.
func (sel Selector) Leaf() InstanceID {
	if len(sel) == 0 {
		return ""
	}
	return sel[0]
}

// Parent returns the selector of the parent instance, which may be empty.
func (sel Selector) Parent() Selector {
	if len(sel) == 0 {
		return sel
	}
	return sel[1:]
}

func (sel Selector) String() string {
	s := make([]string, len(sel))
	for i, id := range sel {
		s[i] = string(id)
	}
	return strings.Join(s, " < ")
}

// Instance carries the identity of an instance needed for styling: the
// component it instantiates and the HTML tag it renders to.
type Instance struct {
	ID        InstanceID
	Component string // e.g. "Box"
	Tag       string // e.g. "div"
}

// StyleSourceKind tells local rule sets from reusable tokens.
type StyleSourceKind uint8

// Kinds of style sources.
const (
	LocalSource StyleSourceKind = iota // rule set private to one instance
	TokenSource                        // named, reusable token
)

func (k StyleSourceKind) String() string {
	if k == TokenSource {
		return "token"
	}
	return "local"
}

// StyleSource describes a style source.
type StyleSource struct {
	ID   StyleSourceID
	Kind StyleSourceKind
	Name string // display name of tokens, empty for local sources
}

// Breakpoint is a media condition with a minimum viewport width.
// Breakpoints are ordered by MinWidth ascending; the base breakpoint has
// a MinWidth of 0.
type Breakpoint struct {
	ID       BreakpointID
	MinWidth float64
}

// DeclKey is the key of a declaration within a style source.
// State is empty for declarations not guarded by a state.
type DeclKey struct {
	Breakpoint BreakpointID
	State      string
	Property   string
}

// DeclarationMap holds the declarations of one style source. Clients must
// treat it as read-only.
type DeclarationMap map[DeclKey]value.Value

// Declaration is a single style declaration.
type Declaration struct {
	StyleSource StyleSourceID
	Breakpoint  BreakpointID
	State       string
	Property    string
	Value       value.Value
}

// Key returns the declaration's key within its style source.
func (d Declaration) Key() DeclKey {
	return DeclKey{Breakpoint: d.Breakpoint, State: d.State, Property: d.Property}
}

// PresetKey is the key of a preset declaration for a (component, tag) pair.
type PresetKey struct {
	State    string
	Property string
}

// PresetMap holds preset declarations of one (component, tag) pair.
// Clients must treat it as read-only.
type PresetMap map[PresetKey]value.Value

// Model is the read-only view of a style object model the cascade resolver
// works on. Lookup failures return empty results, never errors: absence is a
// valid, common case.
type Model interface {
	Instance(InstanceID) (Instance, bool)           // tag/component identity
	StyleSources(InstanceID) []StyleSourceID        // attachments, ordered
	Declarations(StyleSourceID) DeclarationMap      // declarations of a style source
	Presets(component string, tag string) PresetMap // design-system presets
	TagDefaults(tag string) map[string]value.Value  // built-in element defaults
}
