package model

import (
	"sort"

	"github.com/npillmayer/cascade/value"
)

type componentTag struct {
	component, tag string
}

// Snapshot is an immutable style object model. Snapshots are created with a
// Builder, and every change to a snapshot results in a new one, leaving the
// original unchanged. It is therefore safe to share a snapshot between
// goroutines.
//
// Snapshot implements interface Model.
type Snapshot struct {
	instances   map[InstanceID]Instance
	parents     map[InstanceID]InstanceID
	attachments map[InstanceID][]StyleSourceID
	sources     map[StyleSourceID]StyleSource
	decls       map[StyleSourceID]DeclarationMap
	presets     map[componentTag]PresetMap
	tagDefaults map[string]map[string]value.Value // overrides of browser defaults
	breakpoints map[BreakpointID]Breakpoint
}

var _ Model = (*Snapshot)(nil)

// Empty returns a snapshot without any instances. It knows the base
// breakpoint only.
func Empty() *Snapshot {
	return NewBuilder().Build()
}

// Instance returns the identity of an instance.
func (s *Snapshot) Instance(id InstanceID) (Instance, bool) {
	if s == nil {
		return Instance{}, false
	}
	inst, ok := s.instances[id]
	return inst, ok
}

// StyleSources returns the style sources attached to an instance, in
// attachment order.
func (s *Snapshot) StyleSources(id InstanceID) []StyleSourceID {
	if s == nil {
		return nil
	}
	return s.attachments[id]
}

// StyleSource returns the description of a style source.
func (s *Snapshot) StyleSource(id StyleSourceID) (StyleSource, bool) {
	if s == nil {
		return StyleSource{}, false
	}
	src, ok := s.sources[id]
	return src, ok
}

// Declarations returns the declarations of a style source.
func (s *Snapshot) Declarations(id StyleSourceID) DeclarationMap {
	if s == nil {
		return nil
	}
	return s.decls[id]
}

// Presets returns the preset declarations of a (component, tag) pair.
func (s *Snapshot) Presets(component string, tag string) PresetMap {
	if s == nil {
		return nil
	}
	return s.presets[componentTag{component, tag}]
}

// TagDefaults returns the built-in default declarations for an HTML tag.
// A snapshot may override the browser defaults per tag, see
// Builder.TagDefault.
func (s *Snapshot) TagDefaults(tag string) map[string]value.Value {
	if s != nil {
		if td, ok := s.tagDefaults[tag]; ok {
			return td
		}
	}
	return BrowserDefaults(tag)
}

// Parent returns the parent of an instance. For the root and for unknown
// instances the second return value is false.
func (s *Snapshot) Parent(id InstanceID) (InstanceID, bool) {
	if s == nil {
		return "", false
	}
	p, ok := s.parents[id]
	return p, ok
}

// Selector builds the instance selector of an instance by following parent
// links up to the root. The selector of an unknown instance consists of that
// instance only.
func (s *Snapshot) Selector(id InstanceID) Selector {
	sel := Selector{id}
	seen := map[InstanceID]struct{}{id: {}}
	for {
		p, ok := s.Parent(id)
		if !ok {
			return sel
		}
		if _, cycle := seen[p]; cycle {
			tracer().Errorf("parent links of %s form a cycle", sel.Leaf())
			return sel
		}
		seen[p] = struct{}{}
		sel = append(sel, p)
		id = p
	}
}

// Children returns the children of an instance, sorted by ID.
func (s *Snapshot) Children(id InstanceID) []InstanceID {
	if s == nil {
		return nil
	}
	var ch []InstanceID
	for c, p := range s.parents {
		if p == id {
			ch = append(ch, c)
		}
	}
	sortIDs(ch)
	return ch
}

// Instances returns the IDs of all instances, sorted.
func (s *Snapshot) Instances() []InstanceID {
	if s == nil {
		return nil
	}
	ids := make([]InstanceID, 0, len(s.instances))
	for id := range s.instances {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// Breakpoints returns all breakpoints ordered by minimum width, base
// breakpoint first.
func (s *Snapshot) Breakpoints() []Breakpoint {
	if s == nil {
		return []Breakpoint{{ID: BaseBreakpoint}}
	}
	bps := make([]Breakpoint, 0, len(s.breakpoints))
	for _, bp := range s.breakpoints {
		bps = append(bps, bp)
	}
	sort.Slice(bps, func(i, j int) bool {
		return breakpointLess(bps[i], bps[j])
	})
	return bps
}

// MatchingBreakpoints returns the IDs of the breakpoints matching a viewport
// width, in ascending order. The result may be used as an option to the
// cascade resolver.
func (s *Snapshot) MatchingBreakpoints(width float64) []BreakpointID {
	var ids []BreakpointID
	for _, bp := range s.Breakpoints() {
		if bp.ID == BaseBreakpoint || bp.MinWidth <= width {
			ids = append(ids, bp.ID)
		}
	}
	return ids
}

// Edit returns a builder which starts out from s. s itself remains unchanged,
// whatever is done with the builder.
func (s *Snapshot) Edit() *Builder {
	if s == nil {
		return NewBuilder()
	}
	return &Builder{snap: *s, owned: make(map[interface{}]bool)}
}

func breakpointLess(a, b Breakpoint) bool {
	if a.ID == BaseBreakpoint || b.ID == BaseBreakpoint {
		return a.ID == BaseBreakpoint && b.ID != BaseBreakpoint
	}
	if a.MinWidth != b.MinWidth {
		return a.MinWidth < b.MinWidth
	}
	return a.ID < b.ID
}

func sortIDs(ids []InstanceID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
