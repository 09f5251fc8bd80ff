package cascade

import (
	"github.com/npillmayer/cascade/model"
	"github.com/npillmayer/cascade/property"
	"github.com/npillmayer/cascade/value"
)

// Result is the outcome of resolving a property for an instance.
type Result struct {
	Computed value.Value // value inherited by children
	Used     value.Value // value to render with, currentcolor resolved
}

// Resolver resolves property values for instances of a model.
// A resolver is immutable and may be shared between goroutines.
type Resolver struct {
	model       model.Model
	props       property.Table
	breakpoints []model.BreakpointID // matching breakpoints, base first
	states      []string             // matching states, sorted
	memo        *Memo
	key         string // configuration key for the memo
}

// NewResolver creates a resolver for a model. Without options, only the base
// breakpoint and no state matches, and property metadata is taken from
// property.Defaults().
func NewResolver(m model.Model, opts ...Option) *Resolver {
	r := &Resolver{
		model:       m,
		props:       property.Defaults(),
		breakpoints: []model.BreakpointID{model.BaseBreakpoint},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.model == nil {
		r.model = model.Empty()
	}
	r.key = r.configKey()
	return r
}

// Resolve is a shortcut for NewResolver(m, opts...).Resolve(sel, prop).
func Resolve(m model.Model, sel model.Selector, prop string, opts ...Option) Result {
	return NewResolver(m, opts...).Resolve(sel, prop)
}

// Resolve computes the value of a property for the leaf of an instance
// selector. Resolve never fails: unresolvable values are reported as
// value.Invalid or value.GuaranteedInvalid.
//
// An empty selector results in the initial value of the property.
func (r *Resolver) Resolve(sel model.Selector, prop string) Result {
	if r.memo != nil {
		if res, ok := r.memo.get(r.key, sel, prop); ok {
			return res
		}
	}
	res := r.resolve(sel, prop, nil)
	if r.memo != nil {
		r.memo.put(r.key, sel, prop, res)
	}
	return res
}

func (r *Resolver) resolve(sel model.Selector, prop string, ex *Explanation) Result {
	if len(sel) == 0 {
		tracer().Infof("resolve %s: empty instance selector", prop)
		initial := property.Lookup(r.props, prop).Initial
		return Result{Computed: initial, Used: initial}
	}
	computed := r.newQuery(ex).computed(sel, prop)
	used := computed
	if prop != "color" && value.IsCurrentColor(computed) {
		used = r.newQuery(nil).computed(sel, "color")
		tracer().Debugf("resolve %s: currentcolor is %v", prop, used)
	}
	tracer().Debugf("resolve %s for %s = %v", prop, sel.Leaf(), computed)
	return Result{Computed: computed, Used: used}
}
