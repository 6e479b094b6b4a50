package automaton

// Automaton is the (start, end) pair denoting an NFA fragment. A string s is
// accepted iff end lies in the epsilon-closure of the states reachable from
// start after stepping through s (see package matcher).
type Automaton struct {
	Start *Node
	End   *Node
}

// Builder mints nodes for exactly one compile. Its id counter is private and
// scoped to the Builder instance, never a package-level global, so that two
// concurrent compiles never race on id allocation (spec: "per-automaton
// counters... to avoid serialization").
type Builder struct {
	nextID NodeID
}

// NewBuilder creates a Builder with a fresh id counter.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) newNode() *Node {
	n := &Node{id: b.nextID}
	b.nextID++
	return n
}

// Empty returns an automaton accepting only the empty string: a single node
// that is both start and end.
func (b *Builder) Empty() Automaton {
	n := b.newNode()
	return Automaton{Start: n, End: n}
}

// Literal returns a two-node automaton connected by a single labeled
// transition on c.
func (b *Builder) Literal(c byte) Automaton {
	start, end := b.newNode(), b.newNode()
	start.addLabeled(c, end)
	return Automaton{Start: start, End: end}
}

// Dot returns a two-node automaton connected by a negative-class edge with an
// empty excluded set: it matches any single byte.
func (b *Builder) Dot() Automaton {
	start, end := b.newNode(), b.newNode()
	start.addNegated(byteSet{}, end)
	return Automaton{Start: start, End: end}
}

// NegatedClass returns a two-node automaton matching any single byte not in
// excluded.
func (b *Builder) NegatedClass(excluded []byte) Automaton {
	start, end := b.newNode(), b.newNode()
	var set byteSet
	for _, c := range excluded {
		set.add(c)
	}
	start.addNegated(set, end)
	return Automaton{Start: start, End: end}
}

// Concat adds an epsilon edge a.End -> b.Start and returns (a.Start, b.End).
// It mutates a.End in place: callers must not reuse a afterwards unless they
// Clone it first.
func (b *Builder) Concat(a, other Automaton) Automaton {
	a.End.addEpsilon(other.Start)
	return Automaton{Start: a.Start, End: other.End}
}

// Choice builds a fresh start/end pair with epsilons to/from every
// alternative, so alternatives never cross-talk and the single-entry/
// single-exit invariant is preserved for further composition. An empty
// alternatives list still works: start and end are joined only through
// whatever alternatives are passed.
func (b *Builder) Choice(alts ...Automaton) Automaton {
	start, end := b.newNode(), b.newNode()
	for _, alt := range alts {
		start.addEpsilon(alt.Start)
		alt.End.addEpsilon(end)
	}
	return Automaton{Start: start, End: end}
}

// Kleene adds epsilon edges a.End -> a.Start and a.Start -> a.End in place,
// producing zero-or-more repetition of a, and returns a itself.
func (b *Builder) Kleene(a Automaton) Automaton {
	a.End.addEpsilon(a.Start)
	a.Start.addEpsilon(a.End)
	return a
}

// Clone performs a deep, breadth-first copy of a: one fresh node per
// original node, every edge (labeled, epsilon, negative-class) rewritten to
// point into the new graph. Required whenever a sub-pattern is used more
// than once (+, {m,n} with m>1 or n>m, variable substitution in more than
// one place). Implemented with an explicit worklist, never recursion, so it
// terminates on the cyclic graphs Kleene/plus introduce.
func (b *Builder) Clone(a Automaton) Automaton {
	oldToNew := make(map[*Node]*Node)
	fresh := func(old *Node) *Node {
		if n, ok := oldToNew[old]; ok {
			return n
		}
		n := b.newNode()
		oldToNew[old] = n
		return n
	}

	start := fresh(a.Start)
	queue := []*Node{a.Start}
	visited := map[*Node]bool{a.Start: true}

	for len(queue) > 0 {
		old := queue[0]
		queue = queue[1:]
		cur := oldToNew[old]

		for c, targets := range old.trans {
			for t := range targets {
				cur.addLabeled(c, fresh(t))
				if !visited[t] {
					visited[t] = true
					queue = append(queue, t)
				}
			}
		}
		for t := range old.epsilon {
			cur.addEpsilon(fresh(t))
			if !visited[t] {
				visited[t] = true
				queue = append(queue, t)
			}
		}
		for _, e := range old.negated {
			cur.addNegated(e.excluded, fresh(e.next))
			if !visited[e.next] {
				visited[e.next] = true
				queue = append(queue, e.next)
			}
		}
	}

	return Automaton{Start: start, End: fresh(a.End)}
}
