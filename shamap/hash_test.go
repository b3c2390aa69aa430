package shamap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xrplf/go-shamap/common"
	"github.com/xrplf/go-shamap/item"
	"github.com/xrplf/go-shamap/serializer"
)

func TestEmptyInnerHashIsZero(t *testing.T) {
	n := NewEmpty(1, testID(0))
	n.MakeInner()
	require.True(t, n.Hash().IsZero(), "an empty inner must not hash to HP(INNER_NODE, 16 zero words)")
}

func TestInnerHashMatchesDirectComputation(t *testing.T) {
	n := NewEmpty(1, testID(0))
	n.MakeInner()
	h := common.BytesToHash256([]byte("child-0"))
	_, err := n.SetChildHash(0, h)
	require.NoError(t, err)

	parts := make([][]byte, branchFactor)
	for i := 0; i < branchFactor; i++ {
		parts[i] = n.BranchHash(i).Bytes()
	}
	want := serializer.PrefixHash(common.PrefixInnerNode, parts...)
	require.Equal(t, want, n.Hash())
}

func TestAccountStateHashIncludesTag(t *testing.T) {
	payload := []byte("deadbeefdeadbeef")
	tagA := common.BytesToHash256([]byte("a"))
	tagB := common.BytesToHash256([]byte("b"))

	na, err := NewLeaf(testID(0), item.New(tagA, payload), TypeAccountState, 1)
	require.NoError(t, err)
	nb, err := NewLeaf(testID(0), item.New(tagB, payload), TypeAccountState, 1)
	require.NoError(t, err)

	require.NotEqual(t, na.Hash(), nb.Hash())
}

func TestTxNoMetaHashExcludesTag(t *testing.T) {
	payload := []byte("deadbeefdeadbeef")
	n, err := NewLeaf(testID(0), item.New(common.Hash256{}, payload), TypeTxNoMeta, 1)
	require.NoError(t, err)
	require.Equal(t, serializer.PrefixHash(common.PrefixTransactionID, payload), n.Hash())
}

func TestRecomputeHashIsIdempotent(t *testing.T) {
	n := NewEmpty(1, testID(0))
	n.MakeInner()
	_, err := n.SetChildHash(2, common.BytesToHash256([]byte("x")))
	require.NoError(t, err)

	require.False(t, n.RecomputeHash(), "a second recompute with no mutation must report no change")
}
