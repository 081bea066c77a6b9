package trie

import "errors"

var (
	ErrDuplicateKey = errors.New("trie: duplicate key")
	ErrMissingPath  = errors.New("trie: missing path")
)
