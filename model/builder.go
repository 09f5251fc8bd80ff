package model

import (
	"github.com/npillmayer/cascade/value"
)

// Builder creates and patches snapshots. A builder started from a snapshot
// (see Snapshot.Edit) copies every part of the snapshot it changes, on first
// write. Snapshots returned from Build are never modified by subsequent calls
// to the builder.
//
// Builder methods are chainable:
//
//     snap := model.NewBuilder().
//         Instance("body", "Body", "body").
//         Child("body", "box", "Box", "div").
//         Build()
//
// Builders are not safe for concurrent use.
type Builder struct {
	snap  Snapshot
	owned map[interface{}]bool // parts of snap already copied by this builder
}

// Top-level parts of a snapshot, as keys into Builder.owned.
type part uint8

const (
	partInstances part = iota
	partParents
	partAttachments
	partSources
	partDecls
	partPresets
	partTagDefaults
	partBreakpoints
)

// NewBuilder creates a builder for an empty snapshot which knows the base
// breakpoint only.
func NewBuilder() *Builder {
	b := &Builder{
		snap: Snapshot{
			instances:   make(map[InstanceID]Instance),
			parents:     make(map[InstanceID]InstanceID),
			attachments: make(map[InstanceID][]StyleSourceID),
			sources:     make(map[StyleSourceID]StyleSource),
			decls:       make(map[StyleSourceID]DeclarationMap),
			presets:     make(map[componentTag]PresetMap),
			tagDefaults: make(map[string]map[string]value.Value),
			breakpoints: make(map[BreakpointID]Breakpoint),
		},
		owned: make(map[interface{}]bool),
	}
	for _, p := range []part{partInstances, partParents, partAttachments, partSources,
		partDecls, partPresets, partTagDefaults, partBreakpoints} {
		b.owned[p] = true
	}
	b.snap.breakpoints[BaseBreakpoint] = Breakpoint{ID: BaseBreakpoint}
	return b
}

// own returns true if part p has to be copied before it may be written to,
// and marks it as owned.
func (b *Builder) own(p interface{}) bool {
	if b.owned[p] {
		return false
	}
	b.owned[p] = true
	return true
}

// Instance adds an instance without a parent, or replaces the identity of an
// existing one.
func (b *Builder) Instance(id InstanceID, component, tag string) *Builder {
	assertThat(id != "", "instance ID must not be empty")
	if b.own(partInstances) {
		b.snap.instances = cloneMap(b.snap.instances)
	}
	b.snap.instances[id] = Instance{ID: id, Component: component, Tag: tag}
	return b
}

// Child adds an instance as a child of parent. The parent does not have to
// exist yet.
func (b *Builder) Child(parent, id InstanceID, component, tag string) *Builder {
	assertThat(parent != "", "parent ID must not be empty")
	assertThat(parent != id, "instance %s cannot be its own parent", id)
	b.Instance(id, component, tag)
	if b.own(partParents) {
		b.snap.parents = cloneMap(b.snap.parents)
	}
	b.snap.parents[id] = parent
	return b
}

// Breakpoint adds or replaces a breakpoint. The minimum width of the base
// breakpoint cannot be changed.
func (b *Builder) Breakpoint(id BreakpointID, minWidth float64) *Builder {
	assertThat(id != "", "breakpoint ID must not be empty")
	if id == BaseBreakpoint {
		return b
	}
	if b.own(partBreakpoints) {
		b.snap.breakpoints = cloneMap(b.snap.breakpoints)
	}
	b.snap.breakpoints[id] = Breakpoint{ID: id, MinWidth: minWidth}
	return b
}

// StyleSource registers a style source.
func (b *Builder) StyleSource(src StyleSource) *Builder {
	assertThat(src.ID != "", "style source ID must not be empty")
	if b.own(partSources) {
		b.snap.sources = cloneMap(b.snap.sources)
	}
	b.snap.sources[src.ID] = src
	return b
}

// Attach appends style sources to the attachment list of an instance.
// Sources attached later take precedence over earlier ones. Attaching a
// source a second time moves it to the end.
func (b *Builder) Attach(id InstanceID, srcs ...StyleSourceID) *Builder {
	assertThat(id != "", "instance ID must not be empty")
	if b.own(partAttachments) {
		b.snap.attachments = cloneMap(b.snap.attachments)
	}
	old := b.snap.attachments[id]
	list := make([]StyleSourceID, 0, len(old)+len(srcs))
	for _, s := range old {
		if !containsSource(srcs, s) {
			list = append(list, s)
		}
	}
	list = append(list, srcs...)
	b.snap.attachments[id] = list
	return b
}

// Detach removes a style source from the attachment list of an instance.
func (b *Builder) Detach(id InstanceID, src StyleSourceID) *Builder {
	old := b.snap.attachments[id]
	if !containsSource(old, src) {
		return b
	}
	if b.own(partAttachments) {
		b.snap.attachments = cloneMap(b.snap.attachments)
	}
	list := make([]StyleSourceID, 0, len(old))
	for _, s := range old {
		if s != src {
			list = append(list, s)
		}
	}
	b.snap.attachments[id] = list
	return b
}

// LocalStyleSource creates a fresh local style source and attaches it to an
// instance. It returns the ID of the new source.
func (b *Builder) LocalStyleSource(id InstanceID) StyleSourceID {
	src := NewStyleSourceID()
	b.StyleSource(StyleSource{ID: src, Kind: LocalSource})
	b.Attach(id, src)
	return src
}

// Declare adds or replaces a declaration. An empty breakpoint is taken to
// be the base breakpoint.
func (b *Builder) Declare(d Declaration) *Builder {
	assertThat(d.StyleSource != "", "declaration needs a style source")
	assertThat(d.Property != "", "declaration needs a property name")
	if d.Breakpoint == "" {
		d.Breakpoint = BaseBreakpoint
	}
	if d.Value == nil {
		d.Value = value.Invalid{}
	}
	dm := b.declsForWrite(d.StyleSource)
	dm[d.Key()] = d.Value
	tracer().Debugf("declare %s: %s[%s:%s] = %v", d.StyleSource, d.Property,
		d.Breakpoint, d.State, d.Value)
	return b
}

// Remove deletes a declaration from a style source, if present.
func (b *Builder) Remove(src StyleSourceID, key DeclKey) *Builder {
	if key.Breakpoint == "" {
		key.Breakpoint = BaseBreakpoint
	}
	if _, ok := b.snap.decls[src][key]; !ok {
		return b
	}
	delete(b.declsForWrite(src), key)
	return b
}

func (b *Builder) declsForWrite(src StyleSourceID) DeclarationMap {
	if b.own(partDecls) {
		b.snap.decls = cloneMap(b.snap.decls)
	}
	dm := b.snap.decls[src]
	if b.own(src) || dm == nil {
		dm = cloneMap(dm)
		b.snap.decls[src] = dm
	}
	return dm
}

// Preset adds or replaces a design-system preset declaration for a
// (component, tag) pair.
func (b *Builder) Preset(component, tag, state, property string, v value.Value) *Builder {
	assertThat(property != "", "preset needs a property name")
	if v == nil {
		v = value.Invalid{}
	}
	if b.own(partPresets) {
		b.snap.presets = cloneMap(b.snap.presets)
	}
	ct := componentTag{component, tag}
	pm := b.snap.presets[ct]
	if b.own(ct) || pm == nil {
		pm = cloneMap(pm)
		b.snap.presets[ct] = pm
	}
	pm[PresetKey{State: state, Property: property}] = v
	return b
}

// TagDefault overrides a browser default declaration for an HTML tag.
// All other browser defaults of the tag are kept.
func (b *Builder) TagDefault(tag, property string, v value.Value) *Builder {
	assertThat(tag != "", "tag must not be empty")
	if v == nil {
		v = value.Invalid{}
	}
	if b.own(partTagDefaults) {
		b.snap.tagDefaults = cloneMap(b.snap.tagDefaults)
	}
	td, ok := b.snap.tagDefaults[tag]
	if !ok {
		td = BrowserDefaults(tag)
	}
	if b.own("tag:"+tag) || !ok {
		td = cloneMap(td)
		b.snap.tagDefaults[tag] = td
	}
	td[property] = v
	return b
}

// Build returns the snapshot. The builder may be used further on, starting
// out from the returned snapshot.
func (b *Builder) Build() *Snapshot {
	s := b.snap
	b.owned = make(map[interface{}]bool)
	return &s
}

func containsSource(srcs []StyleSourceID, src StyleSourceID) bool {
	for _, s := range srcs {
		if s == src {
			return true
		}
	}
	return false
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
