package cascade

import (
	"strings"
	"sync"

	"github.com/npillmayer/cascade/model"
)

// Memo remembers resolution results, keyed by selector and property.
// Resolvers with different matching breakpoints or states may share a memo,
// but all of them must work on the same model and property table. Whenever
// the model changes, the owner of the memo has to call Invalidate.
//
// A Memo is safe for concurrent use.
type Memo struct {
	mx      sync.RWMutex
	results map[memoKey]Result
}

type memoKey struct {
	config, selector, property string
}

// NewMemo creates an empty memo.
func NewMemo() *Memo {
	return &Memo{results: make(map[memoKey]Result)}
}

// Invalidate forgets all results.
func (m *Memo) Invalidate() {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.results = make(map[memoKey]Result)
}

// Len returns the number of results remembered.
func (m *Memo) Len() int {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return len(m.results)
}

func (m *Memo) get(config string, sel model.Selector, prop string) (Result, bool) {
	m.mx.RLock()
	defer m.mx.RUnlock()
	res, ok := m.results[makeKey(config, sel, prop)]
	return res, ok
}

func (m *Memo) put(config string, sel model.Selector, prop string, res Result) {
	m.mx.Lock()
	defer m.mx.Unlock()
	if m.results == nil {
		m.results = make(map[memoKey]Result)
	}
	m.results[makeKey(config, sel, prop)] = res
}

func makeKey(config string, sel model.Selector, prop string) memoKey {
	ids := make([]string, len(sel))
	for i, id := range sel {
		ids[i] = string(id)
	}
	return memoKey{config: config, selector: strings.Join(ids, "\x00"), property: prop}
}
