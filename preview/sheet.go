package preview

import (
	"github.com/aymerick/douceur/css"
)

// Sheet wraps a douceur style sheet.
type Sheet struct {
	css *css.Stylesheet
}

// Wrap a douceur css.Stylesheet into a Sheet.
// The style sheet is now managed by the wrapper.
func Wrap(sheet *css.Stylesheet) *Sheet {
	if sheet == nil {
		sheet = css.NewStylesheet()
	}
	return &Sheet{css: sheet}
}

// Empty checks if this style sheet contains any rules.
func (sheet *Sheet) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends the rules of another style sheet.
func (sheet *Sheet) AppendRules(other *Sheet) {
	sheet.css.Rules = append(sheet.css.Rules, other.css.Rules...)
}

// Rules returns all the rules of a style sheet.
func (sheet *Sheet) Rules() []Rule {
	rules := make([]Rule, len(sheet.css.Rules))
	for i, r := range sheet.css.Rules {
		rules[i] = Rule{r}
	}
	return rules
}

// Rule returns the rule for a selector, if present.
func (sheet *Sheet) Rule(selector string) (Rule, bool) {
	for _, r := range sheet.css.Rules {
		if r.Prelude == selector {
			return Rule{r}, true
		}
	}
	return Rule{}, false
}

// CSS returns the wrapped douceur style sheet.
func (sheet *Sheet) CSS() *css.Stylesheet {
	return sheet.css
}

func (sheet *Sheet) String() string {
	return sheet.css.String()
}

// Rule is a rule of a style sheet.
type Rule struct {
	r *css.Rule
}

// Selector returns the prelude of the rule.
func (r Rule) Selector() string {
	return r.r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.r.Declarations))
	for _, d := range r.r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for a given key, e.g. "15px".
func (r Rule) Value(key string) string {
	for _, d := range r.r.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}
