package trie

/*

# Path tries for arbitrary comparable keys

This package provides a small, generic trie (prefix tree) that maps ordered
sequences of keys, called paths, to values.

	t := trie.New[int, string]()
	_ = t.Insert([]int{1, 2, 3}, "hello")
	v, ok, err := t.Fetch([]int{1, 2, 3}) // "hello", true, nil

Each node holds an optional value and a map from a single path segment to an
exclusively owned child. The root represents the empty path, so an empty path
is a valid key.

## Core invariants

1. a value slot is written at most once (re-inserting a path is ErrDuplicateKey)
2. nodes are created only by Insert, for every missing node along the path
3. nodes are never removed; the structure only grows

## Lookups

Fetch distinguishes two kinds of miss:

- the path reaches an existing node that has no value: (zero, false, nil)
- the path leaves the tree at some segment: ErrMissingPath

Get collapses both into (zero, false). MustInsert and MustFetch panic where
Insert and Fetch would return an error, for callers that treat either
condition as a programming error.

## Concurrency

A Trie is not go routine safe. Callers sharing a Trie must guard every call,
reads included, with a single external lock.

*/
