package label

// dsu is a disjoint-set forest over provisional labels, held as parallel
// index slices: no node pointers, and find/union stay allocation-free
// after construction. Label 0 (background) is a permanent singleton.
type dsu struct {
	parent []int32
	rank   []int8
}

func newDSU(capacity int) *dsu {
	return &dsu{
		parent: make([]int32, 1, capacity+1),
		rank:   make([]int8, 1, capacity+1),
	}
}

// makeSet appends a fresh singleton and returns its label.
func (d *dsu) makeSet() int32 {
	l := int32(len(d.parent))
	d.parent = append(d.parent, l)
	d.rank = append(d.rank, 0)

	return l
}

// find returns the canonical root of l, compressing the path behind it.
// find is idempotent: find(find(l)) == find(l).
func (d *dsu) find(l int32) int32 {
	root := l
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[l] != root {
		d.parent[l], l = root, d.parent[l]
	}

	return root
}

// union merges the sets containing a and b by rank.
func (d *dsu) union(a, b int32) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
}
