// Package automaton implements the NFA primitive and the combinators used to
// assemble it: Empty, Literal, Dot, NegatedClass, Concat, Choice, Kleene and
// Clone. These Builder methods are the only way an Automaton is ever built;
// the parser package is the sole caller.
//
// A Node's identity is its pointer, never its content: two nodes with
// identical edge sets are still distinct vertices, and epsilon-closure
// correctness depends on that (see NodeSet).
package automaton

import (
	"fmt"
	"strings"
)

// NodeID is a per-Builder-scoped identifier. It plays no role in equality or
// hashing of NodeSets (Node pointers do); String() uses it to name a node
// without printing a pointer address, mirroring the teacher's State.id /
// StateID convention, and the matcher keys its per-generation visited set on
// it (see Automaton.IDSpace).
type NodeID uint32

// Node is a vertex in the NFA graph with three kinds of outgoing edges:
//
//  1. Labeled transitions: byte -> set of successor nodes. A set (not a
//     single successor) is required because alternation can produce more
//     than one successor for the same byte at the same node, e.g. (a|a)b.
//  2. Epsilon (trivial) neighbours: reachable without consuming input.
//  3. Negative-class edges: (excluded byteSet, successor) pairs, traversable
//     by any byte not in excluded. The dot metacharacter is the case where
//     excluded is empty.
//
// A Node is never mutated once the Automaton that owns it has been returned
// from the combinator call that created it, except by further combinators
// applied at that level (Concat/Kleene splice edges into end nodes on
// purpose).
type Node struct {
	id NodeID

	trans   map[byte]NodeSet
	epsilon NodeSet
	negated []negEdge
}

// negEdge is one (excluded, successor) pair of a negative-class edge list.
type negEdge struct {
	excluded byteSet
	next     *Node
}

// NodeSet is a set of nodes keyed by pointer identity.
type NodeSet map[*Node]struct{}

// ID returns the node's debug identifier.
func (n *Node) ID() NodeID { return n.id }

// StepByte returns the set of nodes reachable from n by consuming the byte c,
// via either a labeled transition on c or a negative-class edge that does
// not exclude c. The returned set is freshly allocated per call.
func (n *Node) StepByte(c byte) NodeSet {
	var out NodeSet
	if targets, ok := n.trans[c]; ok {
		out = make(NodeSet, len(targets))
		for t := range targets {
			out[t] = struct{}{}
		}
	}
	for _, e := range n.negated {
		if !e.excluded.contains(c) {
			if out == nil {
				out = make(NodeSet, 1)
			}
			out[e.next] = struct{}{}
		}
	}
	return out
}

// EpsilonNeighbours returns the node's trivial neighbours.
func (n *Node) EpsilonNeighbours() NodeSet {
	return n.epsilon
}

func (n *Node) addLabeled(c byte, next *Node) {
	if n.trans == nil {
		n.trans = make(map[byte]NodeSet)
	}
	set, ok := n.trans[c]
	if !ok {
		set = make(NodeSet, 1)
		n.trans[c] = set
	}
	set[next] = struct{}{}
}

func (n *Node) addEpsilon(next *Node) {
	if n.epsilon == nil {
		n.epsilon = make(NodeSet, 1)
	}
	n.epsilon[next] = struct{}{}
}

func (n *Node) addNegated(excluded byteSet, next *Node) {
	n.negated = append(n.negated, negEdge{excluded: excluded, next: next})
}

// String renders a compact, single-line debug summary of the node's outgoing
// edges. Used only by tests and the demo CLI's -debug flag.
func (n *Node) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "n%d{", n.id)
	first := true
	sep := func() {
		if !first {
			b.WriteString(", ")
		}
		first = false
	}
	for c, targets := range n.trans {
		for t := range targets {
			sep()
			fmt.Fprintf(&b, "%q->n%d", rune(c), t.id)
		}
	}
	for t := range n.epsilon {
		sep()
		fmt.Fprintf(&b, "eps->n%d", t.id)
	}
	for _, e := range n.negated {
		sep()
		if e.excluded.empty() {
			fmt.Fprintf(&b, "dot->n%d", e.next.id)
		} else {
			fmt.Fprintf(&b, "^excl->n%d", e.next.id)
		}
	}
	b.WriteByte('}')
	return b.String()
}
