package gen

// Order returns the emission order: every declared type exactly once, each
// type strictly after everything it depends on. Types with no relative
// constraint keep their original declaration order, so the same input text
// always resolves to the same order.
//
// If the graph contains a cycle, including a type with a field of its own
// type, no partial order is returned; the whole compilation fails with a
// CyclicDependencyError naming the cycle's members.
func (g *Graph) Order() ([]*Type, error) {
	blocked := make(map[*Type]int, len(g.Nodes))
	waiting := make(map[*Type][]*Type, len(g.Nodes))
	for _, t := range g.Nodes {
		blocked[t] = len(t.deps)
		for _, dep := range t.deps {
			waiting[dep] = append(waiting[dep], t)
		}
	}

	var ready []*Type
	for _, t := range g.Nodes {
		if blocked[t] == 0 {
			ready = append(ready, t)
		}
	}

	order := make([]*Type, 0, len(g.Nodes))
	emitted := make(map[*Type]bool, len(g.Nodes))
	for len(ready) > 0 {
		// Pick the ready type declared earliest. Graphs are small, a
		// linear scan beats maintaining a heap.
		min := 0
		for i, t := range ready {
			if t.index < ready[min].index {
				min = i
			}
		}
		next := ready[min]
		ready = append(ready[:min], ready[min+1:]...)

		order = append(order, next)
		emitted[next] = true
		for _, t := range waiting[next] {
			blocked[t]--
			if blocked[t] == 0 {
				ready = append(ready, t)
			}
		}
	}

	if len(order) < len(g.Nodes) {
		return nil, &CyclicDependencyError{Members: g.cycle(emitted)}
	}
	return order, nil
}

// cycle extracts one concrete cycle from the types left unemitted. Every
// such type still has an unemitted dependency, so walking those links from
// any of them must close a loop.
func (g *Graph) cycle(emitted map[*Type]bool) []string {
	var start *Type
	for _, t := range g.Nodes {
		if !emitted[t] {
			start = t
			break
		}
	}

	onPath := make(map[*Type]int)
	var path []*Type
	for t := start; ; {
		onPath[t] = len(path)
		path = append(path, t)
		var next *Type
		for _, dep := range t.deps {
			if !emitted[dep] {
				next = dep
				break
			}
		}
		if i, ok := onPath[next]; ok {
			members := make([]string, 0, len(path)-i)
			for _, m := range path[i:] {
				members = append(members, m.Name)
			}
			return members
		}
		t = next
	}
}
