package menu

// The arena flattens the item tree into one index-addressed slice so that
// counting, validation, and traversal are iterative with O(1) bounds checks.
// Child links are stored as index ranges into the same slice.

// Node is one arena entry. First and Last delimit the node's children as a
// half-open range [First, Last) of arena indices; a leaf has First == Last.
type Node struct {
	Item   Item
	Parent int // -1 for a root-level node
	Depth  int
	First  int
	Last   int
}

// Arena is the flattened, immutable form of a menu tree.
type Arena struct {
	nodes []Node
	roots []int
}

// Flatten builds an arena from root-level items breadth-first. The input
// tree is assumed to have passed construction-time validation.
func Flatten(items []Item) *Arena {
	a := &Arena{}

	type job struct {
		item   Item
		parent int
		depth  int
	}

	queue := make([]job, 0, len(items))
	for _, it := range items {
		queue = append(queue, job{item: it, parent: -1, depth: 0})
	}

	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]

		idx := len(a.nodes)
		a.nodes = append(a.nodes, Node{Item: j.item, Parent: j.parent, Depth: j.depth, First: -1, Last: -1})
		if j.parent == -1 {
			a.roots = append(a.roots, idx)
		} else {
			p := &a.nodes[j.parent]
			if p.First == -1 {
				p.First = idx
			}
			p.Last = idx + 1
		}

		for _, child := range j.item.Children {
			queue = append(queue, job{item: child, parent: idx, depth: j.depth + 1})
		}
	}

	// Normalize leaves so First == Last == 0 ranges are never negative.
	for i := range a.nodes {
		if a.nodes[i].First == -1 {
			a.nodes[i].First = 0
			a.nodes[i].Last = 0
		}
	}
	return a
}

// Len returns the total number of items in the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Node returns the node at idx, or a zero node when idx is out of range.
func (a *Arena) Node(idx int) (Node, bool) {
	if idx < 0 || idx >= len(a.nodes) {
		return Node{}, false
	}
	return a.nodes[idx], true
}

// Roots returns the arena indices of the root-level items.
func (a *Arena) Roots() []int {
	return a.roots
}

// MaxDepth returns the deepest nesting level present, zero-based.
func (a *Arena) MaxDepth() int {
	max := 0
	for i := range a.nodes {
		if a.nodes[i].Depth > max {
			max = a.nodes[i].Depth
		}
	}
	return max
}

// WidestLevel returns the largest sibling count anywhere in the tree.
func (a *Arena) WidestLevel() int {
	widest := len(a.roots)
	for i := range a.nodes {
		if n := a.nodes[i].Last - a.nodes[i].First; n > widest {
			widest = n
		}
	}
	return widest
}
