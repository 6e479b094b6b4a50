// Package matcher runs subset simulation over an automaton.Automaton: an
// epsilon-closure (a recursive walk guarded by a per-generation visited set,
// not an explicit worklist) followed by a one-byte step, repeated once
// per input byte. It answers only "does the automaton accept this string",
// matching spec-level semantics with no capture groups and no match
// priority; Matcher.Accepts is the entire public surface.
package matcher

import (
	"github.com/coregx/nfaregex/automaton"
	"github.com/coregx/nfaregex/internal/conv"
	"github.com/coregx/nfaregex/internal/sparse"
)

// Matcher runs simulation over a single compiled automaton.Automaton. It
// holds its active-state working set as per-invocation storage (queue,
// visited) so one Matcher can be reused across calls to Accepts without
// reallocating, and several Matchers over different automatons never share
// state.
type Matcher struct {
	start *automaton.Node
	end   *automaton.Node

	queue     []*automaton.Node
	nextQueue []*automaton.Node
	visited   *sparse.SparseSet
}

// New builds a Matcher for a. a must not be mutated afterward; the sparse
// set's capacity is sized from a.IDSpace() (the largest reachable node id
// plus one, at least 16) at this point.
func New(a automaton.Automaton) *Matcher {
	capacity := a.IDSpace()
	if capacity < 16 {
		capacity = 16
	}
	return &Matcher{
		start:     a.Start,
		end:       a.End,
		queue:     make([]*automaton.Node, 0, capacity),
		nextQueue: make([]*automaton.Node, 0, capacity),
		visited:   sparse.NewSparseSet(conv.IntToUint32(capacity)),
	}
}

// Accepts reports whether the automaton accepts s in full: every byte of s
// is consumed and the end node is reachable in the resulting active set.
// Rejection is early: once the active set empties, Accepts returns false
// without scanning the remainder of s.
func (m *Matcher) Accepts(s string) bool {
	m.queue = m.queue[:0]
	m.visited.Clear()
	m.addNode(m.start)

	for i := 0; i < len(s); i++ {
		if len(m.queue) == 0 {
			return false
		}
		c := s[i]
		m.nextQueue = m.nextQueue[:0]
		m.visited.Clear()
		for _, n := range m.queue {
			m.step(n, c)
		}
		m.queue, m.nextQueue = m.nextQueue, m.queue
	}

	for _, n := range m.queue {
		if n == m.end {
			return true
		}
	}
	return false
}

// addNode adds n to the current active set (m.queue) and recursively closes
// over its epsilon neighbours. A visited check comes first so a diamond of
// epsilon edges is only ever walked once per generation.
func (m *Matcher) addNode(n *automaton.Node) {
	if m.visited.Contains(uint32(n.ID())) {
		return
	}
	m.visited.Insert(uint32(n.ID()))
	m.queue = append(m.queue, n)
	for next := range n.EpsilonNeighbours() {
		m.addNode(next)
	}
}

// step consumes byte c from n and closes the resulting targets into the next
// generation's active set.
func (m *Matcher) step(n *automaton.Node, c byte) {
	for next := range n.StepByte(c) {
		m.addNodeToNext(next)
	}
}

func (m *Matcher) addNodeToNext(n *automaton.Node) {
	if m.visited.Contains(uint32(n.ID())) {
		return
	}
	m.visited.Insert(uint32(n.ID()))
	m.nextQueue = append(m.nextQueue, n)
	for next := range n.EpsilonNeighbours() {
		m.addNodeToNext(next)
	}
}
