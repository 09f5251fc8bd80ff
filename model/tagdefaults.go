package model

import (
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/npillmayer/cascade/value"
)

// Values for the browser default style sheet. Only a subset of a real
// user-agent style sheet is covered: the properties which are visible in a
// builder's style panel.
var (
	block     = value.K("block")
	bold      = value.K("bold")
	italic    = value.K("italic")
	em1       = value.Unit{Number: 1, Unit: "em"}
	px8       = value.Px(8)
	px40      = value.Px(40)
	hidden    = value.K("none")
	underline = value.K("underline")
)

func blockWith(props map[string]value.Value) map[string]value.Value {
	props["display"] = block
	return props
}

func heading(size float64, margin float64) map[string]value.Value {
	m := value.Unit{Number: margin, Unit: "em"}
	return map[string]value.Value{
		"display":       block,
		"font-weight":   bold,
		"font-size":     value.Unit{Number: size, Unit: "em"},
		"margin-top":    m,
		"margin-bottom": m,
	}
}

var browserStyles = map[atom.Atom]map[string]value.Value{
	atom.Html: {"display": block},
	atom.Body: blockWith(map[string]value.Value{
		"margin-top": px8, "margin-right": px8, "margin-bottom": px8, "margin-left": px8,
	}),
	atom.Head:       {"display": hidden},
	atom.Script:     {"display": hidden},
	atom.Style:      {"display": hidden},
	atom.Template:   {"display": hidden},
	atom.Div:        {"display": block},
	atom.Section:    {"display": block},
	atom.Article:    {"display": block},
	atom.Aside:      {"display": block},
	atom.Header:     {"display": block},
	atom.Footer:     {"display": block},
	atom.Nav:        {"display": block},
	atom.Main:       {"display": block},
	atom.Figure:     {"display": block},
	atom.Form:       {"display": block},
	atom.Address:    {"display": block, "font-style": italic},
	atom.P:          blockWith(map[string]value.Value{"margin-top": em1, "margin-bottom": em1}),
	atom.Blockquote: blockWith(map[string]value.Value{"margin-top": em1, "margin-bottom": em1, "margin-left": px40, "margin-right": px40}),
	atom.H1:         heading(2, 0.67),
	atom.H2:         heading(1.5, 0.83),
	atom.H3:         heading(1.17, 1),
	atom.H4:         heading(1, 1.33),
	atom.H5:         heading(0.83, 1.67),
	atom.H6:         heading(0.67, 2.33),
	atom.Ul: blockWith(map[string]value.Value{
		"list-style-type": value.K("disc"), "margin-top": em1, "margin-bottom": em1, "padding-left": px40,
	}),
	atom.Ol: blockWith(map[string]value.Value{
		"list-style-type": value.K("decimal"), "margin-top": em1, "margin-bottom": em1, "padding-left": px40,
	}),
	atom.Li: {"display": value.K("list-item")},
	atom.A: {
		"color":                value.Unparsed{Text: "#0000ee"},
		"text-decoration-line": underline,
		"cursor":               value.K("pointer"),
	},
	atom.B:      {"font-weight": bold},
	atom.Strong: {"font-weight": bold},
	atom.I:      {"font-style": italic},
	atom.Em:     {"font-style": italic},
	atom.Img:    {"display": value.K("inline-block")},
	atom.Button: {"display": value.K("inline-block")},
	atom.Input:  {"display": value.K("inline-block")},
	atom.Hr: blockWith(map[string]value.Value{
		"border-top-style": value.K("inset"), "border-top-width": value.Px(1),
		"margin-top": value.Unit{Number: 0.5, Unit: "em"}, "margin-bottom": value.Unit{Number: 0.5, Unit: "em"},
	}),
	atom.Table: {"display": value.K("table"), "box-sizing": value.K("border-box")},
}

// BrowserDefaults returns the built-in default declarations of a browser for
// an HTML element, given its tag name. Unknown tags and tags without defaults
// return an empty map. The result must not be modified.
func BrowserDefaults(tag string) map[string]value.Value {
	if tag == "" {
		return nil
	}
	a := atom.Lookup([]byte(strings.ToLower(tag)))
	if a == 0 {
		tracer().Infof("unknown HTML element <%s> has no browser defaults", tag)
		return nil
	}
	return browserStyles[a]
}
