/*
Package maybe implements optional values: a Maybe[T] is either Just a T or
Nothing.

Maybes are unwrapped by matching:

    var d Declared
    switch m := winner.Match(); m {
    case m.Just(&d):
        …
    case m.Nothing():
        …
    }

Matching works for every payload type, including types which are not
comparable with ==.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// First returns the first of a list of maybes which is not Nothing.
func First[T any](mm ...Maybe[T]) Maybe[T] {
	for _, m := range mm {
		if m != nil && !m.IsNothing() {
			return m
		}
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to unwrap a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher is handled by pointer, so that comparing matchers in a switch never
// compares payloads.
type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
