package cascade

import (
	"github.com/npillmayer/cascade/maybe"
	"github.com/npillmayer/cascade/model"
	"github.com/npillmayer/cascade/property"
	"github.com/npillmayer/cascade/value"
)

// Explanation tells how the value of a property came about.
type Explanation struct {
	Selector  model.Selector
	Property  string
	Inherited bool        // metadata of the property
	Initial   value.Value // metadata of the property
	Levels    []Level     // root first
	Result    Result
}

// Level is one step of the walk from the root to the queried instance.
type Level struct {
	Instance   model.InstanceID
	Missing    bool       // instance unknown to the model
	Candidates []Declared // visible declarations, ascending precedence
	Winner     maybe.Maybe[Declared]
	Inherited  value.Value // computed value of the parent level
	Specified  value.Value
	Computed   value.Value
	Notes      []string // fallback substitutions, cycles etc.
}

// Explain resolves a property like Resolve does, and records the
// provenance of the value at every level. Explain never consults a memo.
func (r *Resolver) Explain(sel model.Selector, prop string) Explanation {
	rec := property.Lookup(r.props, prop)
	ex := Explanation{
		Selector:  sel,
		Property:  prop,
		Inherited: rec.Inherited,
		Initial:   rec.Initial,
	}
	ex.Result = r.resolve(sel, prop, &ex)
	return ex
}

// WinnerAt returns the winning declaration at the queried instance, if any.
func (ex Explanation) WinnerAt() maybe.Maybe[Declared] {
	if len(ex.Levels) == 0 {
		return maybe.Nothing[Declared]()
	}
	return ex.Levels[len(ex.Levels)-1].Winner
}

// Origin returns the declaration the value stems from: the winner of the
// nearest level, going from the queried instance up to the root, which has
// one. Nothing means the value is the initial value.
func (ex Explanation) Origin() maybe.Maybe[Declared] {
	winners := make([]maybe.Maybe[Declared], len(ex.Levels))
	for i, lv := range ex.Levels {
		winners[len(ex.Levels)-1-i] = lv.Winner
	}
	return maybe.First(winners...)
}
