package cascade

import (
	"fmt"
	"sort"

	"github.com/npillmayer/cascade/maybe"
	"github.com/npillmayer/cascade/model"
	"github.com/npillmayer/cascade/value"
)

// Layer is the origin of a declaration.
type Layer uint8

// Layers, lowest precedence first.
const (
	LayerTagDefault Layer = iota // built-in browser default for a tag
	LayerPreset                  // design-system preset
	LayerUser                    // declaration of an attached style source
)

func (l Layer) String() string {
	switch l {
	case LayerTagDefault:
		return "tag-default"
	case LayerPreset:
		return "preset"
	}
	return "user"
}

// Declared is a declaration visible to an instance, together with its
// position in the cascade.
type Declared struct {
	Layer       Layer
	Instance    model.InstanceID
	StyleSource model.StyleSourceID // empty for tag defaults and presets
	Breakpoint  model.BreakpointID  // empty for tag defaults and presets
	State       string
	Property    string
	Value       value.Value
	bpRank      int // position of Breakpoint in the matching breakpoints
	srcRank     int // position of StyleSource in the attachment list
}

func (d Declared) String() string {
	switch d.Layer {
	case LayerTagDefault:
		return fmt.Sprintf("%s: %v [%s]", d.Property, d.Value, d.Layer)
	case LayerPreset:
		return fmt.Sprintf("%s%s: %v [%s]", d.Property, stateSuffix(d.State), d.Value, d.Layer)
	}
	return fmt.Sprintf("%s%s: %v [%s@%s]", d.Property, stateSuffix(d.State), d.Value,
		d.StyleSource, d.Breakpoint)
}

func stateSuffix(state string) string {
	if state == "" {
		return ""
	}
	return "(" + state + ")"
}

// less orders declarations by ascending precedence.
func (d Declared) less(o Declared) bool {
	if d.Layer != o.Layer {
		return d.Layer < o.Layer
	}
	if dq, oq := d.State != "", o.State != ""; dq != oq {
		return oq
	}
	if d.bpRank != o.bpRank {
		return d.bpRank < o.bpRank
	}
	return d.srcRank < o.srcRank
}

// candidates collects every declaration for a property which is visible to an
// instance under the resolver's matching breakpoints and states, sorted by
// ascending precedence. A missing instance has no declarations.
func (r *Resolver) candidates(id model.InstanceID, prop string) []Declared {
	inst, ok := r.model.Instance(id)
	if !ok {
		return nil
	}
	var cands []Declared
	if v, ok := r.model.TagDefaults(inst.Tag)[prop]; ok {
		cands = append(cands, Declared{
			Layer:    LayerTagDefault,
			Instance: id,
			Property: prop,
			Value:    v,
		})
	}
	presets := r.model.Presets(inst.Component, inst.Tag)
	r.eachState(func(state string) {
		if v, ok := presets[model.PresetKey{State: state, Property: prop}]; ok {
			cands = append(cands, Declared{
				Layer:    LayerPreset,
				Instance: id,
				State:    state,
				Property: prop,
				Value:    v,
			})
		}
	})
	for srcRank, src := range r.model.StyleSources(id) {
		decls := r.model.Declarations(src)
		if len(decls) == 0 {
			continue
		}
		for bpRank, bp := range r.breakpoints {
			r.eachState(func(state string) {
				key := model.DeclKey{Breakpoint: bp, State: state, Property: prop}
				if v, ok := decls[key]; ok {
					cands = append(cands, Declared{
						Layer:       LayerUser,
						Instance:    id,
						StyleSource: src,
						Breakpoint:  bp,
						State:       state,
						Property:    prop,
						Value:       v,
						bpRank:      bpRank,
						srcRank:     srcRank,
					})
				}
			})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].less(cands[j])
	})
	return cands
}

// eachState calls f for the empty state, then for every matching state in
// lexical order.
func (r *Resolver) eachState(f func(string)) {
	f("")
	for _, s := range r.states {
		f(s)
	}
}

// winner returns the winning declaration among the candidates, if any.
func winner(cands []Declared) maybe.Maybe[Declared] {
	if len(cands) == 0 {
		return maybe.Nothing[Declared]()
	}
	return maybe.Just(cands[len(cands)-1])
}
