package trie

// node is a single point in the tree. hasValue is the presence flag for value,
// so that the zero V can be stored.
type node[K comparable, V any] struct {
	value    V
	hasValue bool
	children map[K]*node[K, V]
}

func newNode[K comparable, V any]() *node[K, V] {
	return &node[K, V]{children: make(map[K]*node[K, V])}
}

// child returns the child for segment k, or nil.
func (n *node[K, V]) child(k K) *node[K, V] {
	return n.children[k]
}

// ensureChild returns the child for segment k, creating it if needed. created
// reports whether a new node was added.
func (n *node[K, V]) ensureChild(k K) (c *node[K, V], created bool) {
	if c = n.children[k]; c != nil {
		return c, false
	}
	c = newNode[K, V]()
	n.children[k] = c
	return c, true
}

// descend walks path from n and returns the node it names. If a segment has
// no child, descend returns nil and the depth of that segment.
func (n *node[K, V]) descend(path []K) (*node[K, V], int) {
	cur := n
	for i, k := range path {
		if cur = cur.child(k); cur == nil {
			return nil, i
		}
	}
	return cur, len(path)
}
