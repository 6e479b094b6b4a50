package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// String renders a compact, deterministic debug dump of every node
// reachable from Start, one line per node, ordered by id. Mirrors the
// teacher's NFA.String()/State.String() convention of a terse one-liner per
// graph element; used by tests and the demo CLI's -debug flag only, never by
// the matcher.
func (a Automaton) String() string {
	visited := map[*Node]bool{}
	var order []*Node
	queue := []*Node{a.Start}
	visited[a.Start] = true
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for _, t := range n.neighbours() {
			if !visited[t] {
				visited[t] = true
				queue = append(queue, t)
			}
		}
	}
	sort.Slice(order, func(i, j int) bool { return order[i].id < order[j].id })

	var b strings.Builder
	fmt.Fprintf(&b, "Automaton{start:n%d, end:n%d, nodes:%d}\n", a.Start.id, a.End.id, len(order))
	for _, n := range order {
		b.WriteString("  ")
		b.WriteString(n.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// neighbours returns every node directly reachable from n along any edge
// kind, used only for graph traversal in String().
func (n *Node) neighbours() []*Node {
	var out []*Node
	for _, targets := range n.trans {
		for t := range targets {
			out = append(out, t)
		}
	}
	for t := range n.epsilon {
		out = append(out, t)
	}
	for _, e := range n.negated {
		out = append(out, e.next)
	}
	return out
}
