package cascade

import (
	"sort"
	"strings"

	"github.com/npillmayer/cascade/model"
	"github.com/npillmayer/cascade/property"
)

// Option configures a resolver.
type Option func(*Resolver)

// WithBreakpoints sets the matching breakpoints, ordered by ascending minimum
// width. The base breakpoint always matches and is put in front, whether it
// is part of ids or not. The default is to match the base breakpoint only.
func WithBreakpoints(ids ...model.BreakpointID) Option {
	return func(r *Resolver) {
		bps := []model.BreakpointID{model.BaseBreakpoint}
		seen := map[model.BreakpointID]bool{model.BaseBreakpoint: true}
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				bps = append(bps, id)
			}
		}
		r.breakpoints = bps
	}
}

// WithStates sets the matching states, e.g. ":hover". Order is irrelevant.
func WithStates(states ...string) Option {
	return func(r *Resolver) {
		set := make(map[string]bool, len(states))
		var list []string
		for _, s := range states {
			if s != "" && !set[s] {
				set[s] = true
				list = append(list, s)
			}
		}
		sort.Strings(list)
		r.states = list
	}
}

// WithProperties replaces the property metadata table.
// The default is property.Defaults().
func WithProperties(t property.Table) Option {
	return func(r *Resolver) {
		if t != nil {
			r.props = t
		}
	}
}

// WithMemo makes the resolver remember results in m. A memo is owned by the
// caller, who has to invalidate it whenever the model changes.
func WithMemo(m *Memo) Option {
	return func(r *Resolver) {
		r.memo = m
	}
}

// configKey identifies the matching breakpoints and states of a resolver.
// Resolvers with different configurations may share a memo.
func (r *Resolver) configKey() string {
	var b strings.Builder
	for _, bp := range r.breakpoints {
		b.WriteString(string(bp))
		b.WriteByte(0)
	}
	b.WriteByte(1)
	for _, s := range r.states {
		b.WriteString(s)
		b.WriteByte(0)
	}
	return b.String()
}
