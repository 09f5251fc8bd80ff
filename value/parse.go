package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// ErrEmptyValue is returned by Parse for blank input.
var ErrEmptyValue = errors.New("value: empty value text")

// Parse converts the text of a single CSS property value into a structured
// Value. It is meant for tools seeding a style model (fixtures, imports);
// the cascade itself never parses.
//
// Recognized are identifiers, numbers, percentages and dimensions,
// function calls, var(…) references with optional fallback and whitespace
// separated sequences. Everything else (hashes, strings, URIs, top level
// comma lists) is kept as Unparsed text.
func Parse(text string) (Value, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyValue
	}
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	items, stop := p.sequence(false)
	if p.err != nil {
		return nil, fmt.Errorf("value: cannot parse %q: %w", text, p.err)
	}
	if isChar(stop, ",") {
		tracer().Debugf("value: comma list %q kept unparsed", text)
		return Unparsed{Text: text}, nil
	}
	if stop.Type != scanner.TokenEOF {
		return nil, fmt.Errorf("value: unexpected %q in %q", stop.Value, text)
	}
	if len(items) == 0 {
		return nil, ErrEmptyValue
	}
	return collapse(items), nil
}

// MustParse is like Parse, but panics on error. Intended for tests and for
// static tables.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err.Error())
	}
	return v
}

func tokenize(text string) ([]*scanner.Token, error) {
	s := scanner.New(text)
	var toks []*scanner.Token
	for {
		t := s.Next()
		switch t.Type {
		case scanner.TokenError:
			return nil, fmt.Errorf("value: scanning %q: %s", text, t.Value)
		case scanner.TokenComment:
			continue
		}
		toks = append(toks, t)
		if t.Type == scanner.TokenEOF {
			return toks, nil
		}
	}
}

type parser struct {
	toks []*scanner.Token
	pos  int
	err  error
}

func (p *parser) peek() *scanner.Token {
	if p.pos >= len(p.toks) {
		return &scanner.Token{Type: scanner.TokenEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) next() *scanner.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) skipSpace() {
	for p.peek().Type == scanner.TokenS {
		p.pos++
	}
}

func isChar(t *scanner.Token, c string) bool {
	return t.Type == scanner.TokenChar && t.Value == c
}

// sequence reads whitespace separated terms. It stops at EOF, at ')' and at
// ','. The stopping token is returned but not consumed.
func (p *parser) sequence(inFunc bool) ([]Value, *scanner.Token) {
	var items []Value
	for p.err == nil {
		p.skipSpace()
		t := p.peek()
		if t.Type == scanner.TokenEOF || isChar(t, ")") || isChar(t, ",") {
			return items, t
		}
		items = append(items, p.term())
	}
	return items, p.peek()
}

func (p *parser) term() Value {
	t := p.next()
	switch t.Type {
	case scanner.TokenIdent:
		return K(t.Value)
	case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
		return p.number(t.Value, 1)
	case scanner.TokenFunction:
		name := strings.ToLower(strings.TrimSuffix(t.Value, "("))
		if name == "var" {
			return p.reference()
		}
		return p.function(name)
	case scanner.TokenChar:
		if t.Value == "-" || t.Value == "+" {
			switch n := p.peek(); n.Type {
			case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
				p.next()
				sign := 1.0
				if t.Value == "-" {
					sign = -1.0
				}
				return p.number(n.Value, sign)
			case scanner.TokenIdent:
				p.next()
				return K(t.Value + n.Value)
			}
		}
	}
	return Unparsed{Text: t.Value}
}

func (p *parser) number(text string, sign float64) Value {
	i := 0
	if i < len(text) && (text[i] == '-' || text[i] == '+') {
		i++
	}
	for i < len(text) && (text[i] == '.' || (text[i] >= '0' && text[i] <= '9')) {
		i++
	}
	n, err := strconv.ParseFloat(text[:i], 64)
	if err != nil {
		p.err = err
		return Invalid{}
	}
	return Unit{Number: sign * n, Unit: strings.ToLower(text[i:])}
}

func (p *parser) function(name string) Value {
	f := Func{Name: name}
	for p.err == nil {
		items, stop := p.sequence(true)
		if len(items) > 0 {
			f.Args = append(f.Args, collapse(items))
		}
		p.next()
		switch {
		case isChar(stop, ")"):
			return f
		case isChar(stop, ","):
			continue
		default:
			p.err = fmt.Errorf("unterminated function %s(", name)
		}
	}
	return Invalid{}
}

// reference reads the rest of var(--name[, fallback]).
func (p *parser) reference() Value {
	p.skipSpace()
	var name strings.Builder
	for {
		t := p.peek()
		if t.Type == scanner.TokenEOF || t.Type == scanner.TokenS || isChar(t, ",") || isChar(t, ")") {
			break
		}
		name.WriteString(p.next().Value)
	}
	v := Var{Name: name.String()}
	if !strings.HasPrefix(v.Name, "--") {
		p.err = fmt.Errorf("var() expects a custom property name, have %q", v.Name)
		return Invalid{}
	}
	p.skipSpace()
	switch t := p.next(); {
	case isChar(t, ")"):
		return v
	case isChar(t, ","):
		start := p.pos
		items, stop := p.sequence(true)
		if isChar(stop, ",") && p.err == nil {
			p.pos = start
			return p.listFallback(v)
		}
		if !isChar(stop, ")") {
			p.err = fmt.Errorf("unterminated var(%s", v.Name)
			return Invalid{}
		}
		p.next()
		if len(items) == 0 {
			v.Fallback = Unparsed{}
		} else {
			v.Fallback = collapse(items)
		}
		return v
	}
	p.err = fmt.Errorf("unterminated var(%s", v.Name)
	return Invalid{}
}

// listFallback reads a fallback containing top level commas, e.g. a font
// list, up to the closing parenthesis of var(). It is kept as Unparsed text.
func (p *parser) listFallback(v Var) Value {
	var text strings.Builder
	depth := 0
	for {
		t := p.next()
		switch {
		case t.Type == scanner.TokenEOF:
			p.err = fmt.Errorf("unterminated var(%s", v.Name)
			return Invalid{}
		case t.Type == scanner.TokenFunction || isChar(t, "("):
			depth++
		case isChar(t, ")"):
			if depth == 0 {
				v.Fallback = Unparsed{Text: strings.TrimSpace(text.String())}
				return v
			}
			depth--
		case t.Type == scanner.TokenS:
			text.WriteString(" ")
			continue
		}
		text.WriteString(t.Value)
	}
}

func collapse(items []Value) Value {
	if len(items) == 1 {
		return items[0]
	}
	return Tuple{Items: items}
}
