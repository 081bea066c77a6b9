package trie

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/require"
)

func TestNewOptions(t *testing.T) {
	o := NewOptions()
	require.Nil(t, o.Log)
}

func TestTrieWithLogger(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	log := logger.Sugar.WithServiceName("TestTrieWithLogger")
	o := NewOptions(WithLogger(log))
	require.NotNil(t, o.Log)

	// Logging is tracing only, results match an unlogged trie.
	tr := New[int, int](WithLogger(log))
	require.NoError(t, tr.Insert([]int{1, 2, 3}, 4))
	require.ErrorIs(t, tr.Insert([]int{1, 2, 3}, 5), ErrDuplicateKey)

	v, ok, err := tr.Fetch([]int{1, 2, 3})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, v)

	_, _, err = tr.Fetch([]int{7})
	require.ErrorIs(t, err, ErrMissingPath)
}
