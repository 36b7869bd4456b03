package fmtby

import (
	"cmp"
	"io"
	"iter"
	"maps"
	"slices"
)

// Pair is a single key-value pair.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// DebugMap renders key-value pairs as a map literal, {"k1": 1, "k2": 2},
// in iteration order. String keys and values are quoted, and nested
// slices and maps are written as ["a", "b"] and {"k": 1}.
type DebugMap[K, V any] struct{}

// Render writes the pairs of seq as a map literal.
func (DebugMap[K, V]) Render(s Sink, seq iter.Seq2[K, V]) error {
	m := newMapWriter(s)
	if seq != nil {
		for k, v := range seq {
			if !m.entry(k, v) {
				break
			}
		}
	}
	return m.close()
}

// PairsDebugMap is [DebugMap] for a slice of pairs, read in place.
type PairsDebugMap[K, V any] struct{}

// Render writes pairs as a map literal.
func (PairsDebugMap[K, V]) Render(s Sink, pairs []Pair[K, V]) error {
	m := newMapWriter(s)
	for i := range pairs {
		p := &pairs[i]
		if !m.entry(p.Key, p.Value) {
			break
		}
	}
	return m.close()
}

// SortedDebugMap is [DebugMap] for a Go map. Map iteration order is random,
// so the keys are copied out and sorted first.
type SortedDebugMap[K cmp.Ordered, V any] struct{}

// Render writes data as a map literal in key order.
func (SortedDebugMap[K, V]) Render(s Sink, data map[K]V) error {
	m := newMapWriter(s)
	for _, k := range slices.Sorted(maps.Keys(data)) {
		if !m.entry(k, data[k]) {
			break
		}
	}
	return m.close()
}

type mapWriter struct {
	s   Sink
	n   int
	err error
}

func newMapWriter(s Sink) *mapWriter {
	m := &mapWriter{s: s}
	_, m.err = io.WriteString(s, "{")
	return m
}

func (m *mapWriter) entry(k, v any) bool {
	if m.err != nil {
		return false
	}
	if m.n > 0 {
		if _, m.err = io.WriteString(m.s, ", "); m.err != nil {
			return false
		}
	}
	m.n++
	if m.err = debug(m.s, k); m.err != nil {
		return false
	}
	if _, m.err = io.WriteString(m.s, ": "); m.err != nil {
		return false
	}
	m.err = debug(m.s, v)
	return m.err == nil
}

func (m *mapWriter) close() error {
	if m.err != nil {
		return m.err
	}
	_, err := io.WriteString(m.s, "}")
	return err
}
