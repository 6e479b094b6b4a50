package automaton

// IDSpace returns one past the largest NodeID reachable from a.Start. The
// matcher uses it to size a dense per-compile sparse set for the active
// state set, keyed directly by Node.id rather than Node pointers.
func (a Automaton) IDSpace() int {
	return len(a.Nodes())
}

// Nodes returns every node reachable from a.Start, indexed by NodeID (so
// Nodes()[i].id == i for every non-nil entry; ids not reachable from a.Start
// are left nil). IDSpace uses it to find the largest reachable id.
func (a Automaton) Nodes() []*Node {
	visited := map[*Node]bool{a.Start: true}
	queue := []*Node{a.Start}
	maxID := a.Start.id
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.id > maxID {
			maxID = n.id
		}
		for _, t := range n.neighbours() {
			if !visited[t] {
				visited[t] = true
				queue = append(queue, t)
			}
		}
	}
	byID := make([]*Node, maxID+1)
	for n := range visited {
		byID[n.id] = n
	}
	return byID
}
