package preview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aymerick/douceur/css"

	"github.com/npillmayer/cascade/cascade"
	"github.com/npillmayer/cascade/model"
	"github.com/npillmayer/cascade/value"
)

// Entry is the resolved value of one property of one instance.
type Entry struct {
	Instance model.InstanceID
	Property string
	Result   cascade.Result
}

// Declared lists every property with a declaration visible to an instance:
// declarations of attached style sources (for any breakpoint and state),
// presets and tag defaults. The list is sorted.
func Declared(m model.Model, id model.InstanceID) []string {
	inst, ok := m.Instance(id)
	if !ok {
		return nil
	}
	set := make(map[string]struct{})
	for prop := range m.TagDefaults(inst.Tag) {
		set[prop] = struct{}{}
	}
	for key := range m.Presets(inst.Component, inst.Tag) {
		set[key.Property] = struct{}{}
	}
	for _, src := range m.StyleSources(id) {
		for key := range m.Declarations(src) {
			set[key.Property] = struct{}{}
		}
	}
	props := make([]string, 0, len(set))
	for prop := range set {
		props = append(props, prop)
	}
	sort.Strings(props)
	return props
}

// Compute resolves every declared property of every instance of a snapshot.
// Entries are ordered by instance, then by property.
func Compute(snap *model.Snapshot, opts ...cascade.Option) []Entry {
	r := cascade.NewResolver(snap, opts...)
	var entries []Entry
	for _, id := range snap.Instances() {
		sel := snap.Selector(id)
		for _, prop := range Declared(snap, id) {
			entries = append(entries, Entry{
				Instance: id,
				Property: prop,
				Result:   r.Resolve(sel, prop),
			})
		}
	}
	tracer().Debugf("preview: resolved %d properties", len(entries))
	return entries
}

// Selector returns the CSS selector of an instance.
func Selector(id model.InstanceID) string {
	return "[data-ws-id=" + quote(string(id)) + "]"
}

// quote renders s as a CSS string. Quotes and backslashes are escaped,
// control characters are written as hex escapes, all other characters
// literally.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Stylesheet creates a style sheet from resolved entries, one rule per
// instance in the order of first appearance. Used values are rendered;
// entries resolving to an invalid value are left out.
func Stylesheet(entries []Entry) *Sheet {
	sheet := css.NewStylesheet()
	rules := make(map[model.InstanceID]*css.Rule)
	for _, e := range entries {
		if value.IsSentinel(e.Result.Used) {
			tracer().Debugf("preview: %s of %s is %v, left out", e.Property, e.Instance, e.Result.Used)
			continue
		}
		rule, ok := rules[e.Instance]
		if !ok {
			rule = css.NewRule(css.QualifiedRule)
			rule.Prelude = Selector(e.Instance)
			rule.Selectors = []string{rule.Prelude}
			rules[e.Instance] = rule
			sheet.Rules = append(sheet.Rules, rule)
		}
		rule.Declarations = append(rule.Declarations, &css.Declaration{
			Property: e.Property,
			Value:    e.Result.Used.String(),
		})
	}
	return Wrap(sheet)
}

// Text renders the CSS preview of a snapshot.
func Text(snap *model.Snapshot, opts ...cascade.Option) string {
	return Stylesheet(Compute(snap, opts...)).String()
}
