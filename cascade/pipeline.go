package cascade

import (
	"fmt"

	"github.com/npillmayer/cascade/maybe"
	"github.com/npillmayer/cascade/model"
	"github.com/npillmayer/cascade/property"
	"github.com/npillmayer/cascade/value"
)

// query holds the state of one top-level resolution.
//
// visiting is the dependency graph of custom property resolution: for every
// instance the names of the custom properties currently being resolved
// through it. It lives for a single query only.
type query struct {
	r        *Resolver
	visiting map[model.InstanceID]map[string]struct{}
	depth    int          // nesting of custom property resolution
	explain  *Explanation // records the levels of the outermost walk, may be nil
	notes    []string     // notes for the level currently being recorded
}

func (r *Resolver) newQuery(ex *Explanation) *query {
	return &query{
		r:        r,
		visiting: make(map[model.InstanceID]map[string]struct{}),
		explain:  ex,
	}
}

func (q *query) recording() bool {
	return q.explain != nil && q.depth == 0
}

func (q *query) notef(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	tracer().Debugf("%s", msg)
	if q.recording() {
		q.notes = append(q.notes, msg)
	}
}

// computed walks sel from the root down to the leaf and returns the computed
// value of prop at the leaf. The inherited value of the root is the initial
// value of prop.
func (q *query) computed(sel model.Selector, prop string) value.Value {
	rec := property.Lookup(q.r.props, prop)
	inherited := rec.Initial
	for i := len(sel) - 1; i >= 0; i-- {
		inherited = q.level(sel[i:], i == 0, prop, rec, inherited)
	}
	return inherited
}

// level computes prop for the leaf of sel, given the computed value of the
// parent level. Instances unknown to the model are passed through
// transparently, except for the leaf, which is treated as an instance without
// declarations.
func (q *query) level(sel model.Selector, isLeaf bool, prop string, rec property.Record,
	parent value.Value) value.Value {
	//
	id := sel.Leaf()
	if _, ok := q.r.model.Instance(id); !ok && !isLeaf {
		if q.recording() {
			q.explain.Levels = append(q.explain.Levels, Level{
				Instance:  id,
				Missing:   true,
				Winner:    maybe.Nothing[Declared](),
				Inherited: parent,
				Specified: parent,
				Computed:  parent,
			})
		}
		return parent
	}
	cands := q.r.candidates(id, prop)
	w := winner(cands)
	spec := specified(w, prop, rec, parent)
	comp := q.compute(sel, prop, rec, spec, parent)
	if q.recording() {
		_, known := q.r.model.Instance(id)
		q.explain.Levels = append(q.explain.Levels, Level{
			Instance:   id,
			Missing:    !known,
			Candidates: cands,
			Winner:     w,
			Inherited:  parent,
			Specified:  spec,
			Computed:   comp,
			Notes:      q.notes,
		})
		q.notes = nil
	}
	return comp
}

// specified applies the defaulting keywords to the winning declaration.
func specified(w maybe.Maybe[Declared], prop string, rec property.Record, parent value.Value) value.Value {
	var d Declared
	switch m := w.Match(); m {
	case m.Just(&d):
		return defaulting(d.Value, prop, rec, parent)
	case m.Nothing():
	}
	return unset(rec, parent)
}

func defaulting(v value.Value, prop string, rec property.Record, parent value.Value) value.Value {
	switch value.DefaultingOf(v) {
	case value.DefaultInitial:
		return rec.Initial
	case value.DefaultInherit:
		return parent
	case value.DefaultUnset:
		return unset(rec, parent)
	case value.DefaultCurrentColor:
		if prop == "color" {
			return parent
		}
	}
	return v
}

// unset is the value of a property without a declaration.
func unset(rec property.Record, parent value.Value) value.Value {
	if rec.Inherited {
		return parent
	}
	return rec.Initial
}

// compute substitutes custom property references in a specified value.
func (q *query) compute(sel model.Selector, prop string, rec property.Record,
	v value.Value, parent value.Value) value.Value {
	//
	switch x := v.(type) {
	case value.Var:
		return q.substitute(sel, prop, rec, x, parent)
	case value.Tuple, value.Func:
		if !containsRef(v) {
			return v
		}
		r, ok, invalid := q.substituteNested(sel, prop, v)
		if ok {
			return r
		}
		if invalid {
			q.notef("%s: %v references a cycle", prop, v)
			return value.Invalid{}
		}
		q.notef("%s: %v is invalid at computed-value time", prop, v)
		return unset(rec, parent)
	}
	return v
}

// substitute resolves a var() reference which makes up a complete value.
func (q *query) substitute(sel model.Selector, prop string, rec property.Record,
	ref value.Var, parent value.Value) value.Value {
	//
	v, cycle := q.lookup(sel, ref.Name)
	if cycle {
		return value.Invalid{}
	}
	if !failed(v, prop) {
		return v
	}
	if ref.HasFallback() {
		q.notef("%s: %s is %v, using fallback %v", prop, ref.Name, v, ref.Fallback)
		return q.compute(sel, prop, rec, ref.Fallback, parent)
	}
	q.notef("%s: %s is %v and has no fallback", prop, ref.Name, v)
	return unset(rec, parent)
}

// substituteNested resolves references within tuples and function arguments.
// If a reference cannot be resolved and has no fallback, the value as a whole
// is invalid at computed-value time and ok is false. invalid is true if a
// reference is part of a cycle, or if a custom property references an
// invalid value; then fallbacks do not apply, as for a plain reference.
func (q *query) substituteNested(sel model.Selector, prop string, v value.Value) (r value.Value, ok, invalid bool) {
	switch x := v.(type) {
	case value.Var:
		s, cycle := q.lookup(sel, x.Name)
		if cycle {
			return nil, false, true
		}
		if failed(s, prop) {
			if x.HasFallback() {
				return q.substituteNested(sel, prop, x.Fallback)
			}
			return nil, false, false
		}
		if _, inv := s.(value.Invalid); inv {
			return nil, false, true
		}
		return s, true, false
	case value.Tuple:
		items, ok, invalid := q.substituteAll(sel, prop, x.Items)
		return value.Tuple{Items: items}, ok, invalid
	case value.Func:
		args, ok, invalid := q.substituteAll(sel, prop, x.Args)
		return value.Func{Name: x.Name, Args: args}, ok, invalid
	}
	return v, true, false
}

func (q *query) substituteAll(sel model.Selector, prop string, vals []value.Value) ([]value.Value, bool, bool) {
	r := make([]value.Value, len(vals))
	for i, v := range vals {
		s, ok, invalid := q.substituteNested(sel, prop, v)
		if !ok {
			return nil, false, invalid
		}
		r[i] = s
	}
	return r, true, false
}

// lookup resolves custom property name re-rooted at the leaf of sel, i.e.
// where the reference is used. If name is already being resolved through
// this instance, the reference is part of a cycle.
func (q *query) lookup(sel model.Selector, name string) (v value.Value, cycle bool) {
	id := sel.Leaf()
	inProgress := q.visiting[id]
	if _, ok := inProgress[name]; ok {
		q.notef("cycle detected: %s references itself through %s", name, id)
		return value.Invalid{}, true
	}
	if inProgress == nil {
		inProgress = make(map[string]struct{})
		q.visiting[id] = inProgress
	}
	inProgress[name] = struct{}{}
	q.depth++
	v = q.computed(sel, name)
	q.depth--
	delete(inProgress, name)
	return v, false
}

// failed is true if the substitution of a reference did not produce a value.
func failed(v value.Value, prop string) bool {
	switch v.(type) {
	case nil, value.GuaranteedInvalid:
		return true
	case value.Invalid:
		return !property.IsCustom(prop)
	}
	return false
}

func containsRef(v value.Value) bool {
	switch x := v.(type) {
	case value.Var:
		return true
	case value.Tuple:
		for _, item := range x.Items {
			if containsRef(item) {
				return true
			}
		}
	case value.Func:
		for _, arg := range x.Args {
			if containsRef(arg) {
				return true
			}
		}
	}
	return false
}
