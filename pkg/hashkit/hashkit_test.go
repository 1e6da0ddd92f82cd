package hashkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/datastruct/pkg/hashkit"
)

func TestNew(t *testing.T) {
	t.Run("deterministic within an instance", func(t *testing.T) {
		hash := hashkit.New[string]()
		require.Equal(t, hash("foo"), hash("foo"))
		require.Equal(t, hash(""), hash(""))
	})

	t.Run("distributes distinct keys", func(t *testing.T) {
		hash := hashkit.New[int]()
		seen := map[uint64]struct{}{}
		for i := 0; i < 128; i++ {
			seen[hash(i)] = struct{}{}
		}
		// 128 keys hashing to less than 64 distinct values would mean a broken hasher
		require.Greater(t, len(seen), 64)
	})

	t.Run("works with struct keys", func(t *testing.T) {
		type key struct {
			Name string
			N    int
		}
		hash := hashkit.New[key]()
		require.Equal(t, hash(key{Name: "a", N: 1}), hash(key{Name: "a", N: 1}))
	})
}

func TestDJB(t *testing.T) {
	t.Run("String is deterministic", func(t *testing.T) {
		require.Equal(t, hashkit.String("foo"), hashkit.String("foo"))
		require.NotEqual(t, hashkit.String("foo"), hashkit.String("bar"))
	})

	t.Run("empty string hashes to the init value", func(t *testing.T) {
		require.Equal(t, hashkit.DJBInit, hashkit.String(""))
	})

	t.Run("DJB folds values in order", func(t *testing.T) {
		exp := hashkit.DJBCombine(hashkit.DJBCombine(hashkit.DJBInit, 1), 2)
		require.Equal(t, exp, hashkit.DJB(1, 2))
		require.NotEqual(t, hashkit.DJB(1, 2), hashkit.DJB(2, 1))
	})

	t.Run("Uint64 is the identity", func(t *testing.T) {
		require.Equal(t, uint64(42), hashkit.Uint64(42))
	})
}
