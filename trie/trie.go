package trie

import (
	"fmt"
)

// Trie maps paths of K segments to values of type V.
//
// The zero Trie is not usable, use New.
type Trie[K comparable, V any] struct {
	opts  Options
	root  *node[K, V]
	count int
}

// New returns an empty trie: no value at the root and no children.
func New[K comparable, V any](opts ...Option) *Trie[K, V] {
	return &Trie[K, V]{
		opts: NewOptions(opts...),
		root: newNode[K, V](),
	}
}

// Insert associates v with path, creating every missing node along the way.
// The empty path addresses the root.
//
// Returns ErrDuplicateKey if a value is already stored at exactly path. The
// stored value is not changed.
func (t *Trie[K, V]) Insert(path []K, v V) error {

	// A duplicate always has a complete chain of nodes, so check before
	// creating anything. A rejected insert leaves the tree untouched.
	if n, _ := t.root.descend(path); n != nil && n.hasValue {
		t.debugf("insert: duplicate key at depth %d", len(path))
		return fmt.Errorf("%w: depth=%d", ErrDuplicateKey, len(path))
	}

	cur := t.root
	var created int
	for _, k := range path {
		var isNew bool
		cur, isNew = cur.ensureChild(k)
		if isNew {
			created++
		}
	}
	if created > 0 {
		t.debugf("insert: created %d node(s) for path of depth %d", created, len(path))
	}

	cur.value = v
	cur.hasValue = true
	t.count++
	return nil
}

// MustInsert is Insert, but panics on ErrDuplicateKey.
func (t *Trie[K, V]) MustInsert(path []K, v V) {
	if err := t.Insert(path, v); err != nil {
		panic(err)
	}
}

// Fetch returns the value stored at exactly path.
//
// If the path ends at an existing node, ok reports whether that node holds a
// value and err is nil. If traversal reaches a segment with no child, Fetch
// returns ErrMissingPath, annotated with the depth of that segment.
func (t *Trie[K, V]) Fetch(path []K) (v V, ok bool, err error) {
	n, depth := t.root.descend(path)
	if n == nil {
		t.debugf("fetch: missing segment at depth %d of %d", depth, len(path))
		return v, false, fmt.Errorf("%w: depth=%d", ErrMissingPath, depth)
	}
	return n.value, n.hasValue, nil
}

// MustFetch is Fetch, but panics on ErrMissingPath.
func (t *Trie[K, V]) MustFetch(path []K) (V, bool) {
	v, ok, err := t.Fetch(path)
	if err != nil {
		panic(err)
	}
	return v, ok
}

// Get returns the value stored at exactly path. Unlike Fetch, a path that
// leaves the tree is simply absent.
func (t *Trie[K, V]) Get(path []K) (v V, ok bool) {
	n, _ := t.root.descend(path)
	if n == nil {
		return v, false
	}
	return n.value, n.hasValue
}

// Len returns the number of values stored in the trie.
func (t *Trie[K, V]) Len() int {
	return t.count
}

func (t *Trie[K, V]) debugf(format string, args ...any) {
	if t.opts.Log == nil {
		return
	}
	t.opts.Log.Debugf(format, args...)
}
