package shamap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xrplf/go-shamap/common"
	"github.com/xrplf/go-shamap/item"
)

func testID(depth uint8) NodeID {
	return NodeID{Depth: depth, Path: common.BytesToHash256([]byte{depth})}
}

func TestNewLeafRejectsShortPayload(t *testing.T) {
	it := item.New(common.BytesToHash256([]byte("tag")), []byte("short"))
	_, err := NewLeaf(testID(0), it, TypeAccountState, 1)
	require.ErrorIs(t, err, ErrShortPayload)
}

func TestNewLeafRejectsNonLeafType(t *testing.T) {
	it := item.New(common.BytesToHash256([]byte("tag")), make([]byte, 16))
	_, err := NewLeaf(testID(0), it, TypeInner, 1)
	require.ErrorIs(t, err, ErrInvalidLeafType)
}

func TestNewLeafComputesHash(t *testing.T) {
	it := item.New(common.BytesToHash256([]byte("tag")), make([]byte, 16))
	n, err := NewLeaf(testID(0), it, TypeAccountState, 1)
	require.NoError(t, err)
	require.False(t, n.Hash().IsZero())
	require.True(t, n.IsLeaf())
	require.False(t, n.IsInner())
}

func TestMakeInnerResetsNode(t *testing.T) {
	it := item.New(common.BytesToHash256([]byte("tag")), make([]byte, 16))
	n, err := NewLeaf(testID(0), it, TypeAccountState, 1)
	require.NoError(t, err)

	n.MakeInner()
	require.True(t, n.IsInner())
	require.True(t, n.IsEmpty())
	require.True(t, n.Hash().IsZero())
}

func TestSetChildHashUpdatesMaskAndHash(t *testing.T) {
	n := NewEmpty(1, testID(0))
	n.MakeInner()

	h := common.BytesToHash256([]byte("child"))
	changed, err := n.SetChildHash(3, h)
	require.NoError(t, err)
	require.True(t, changed)
	require.False(t, n.IsEmptyBranch(3))
	require.Equal(t, h, n.BranchHash(3))
	require.Equal(t, 1, n.BranchCount())
	require.False(t, n.Hash().IsZero())

	changed, err = n.SetChildHash(3, h)
	require.NoError(t, err)
	require.False(t, changed, "setting the same hash again should be a no-op")
}

func TestSetChildHashOnLeafErrors(t *testing.T) {
	it := item.New(common.BytesToHash256([]byte("tag")), make([]byte, 16))
	n, err := NewLeaf(testID(0), it, TypeAccountState, 1)
	require.NoError(t, err)

	_, err = n.SetChildHash(0, common.Hash256{})
	require.ErrorIs(t, err, ErrNotInner)
}

func TestSetChildHashOutOfRange(t *testing.T) {
	n := NewEmpty(1, testID(0))
	n.MakeInner()
	_, err := n.SetChildHash(16, common.Hash256{})
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBranchQueryOutOfRangePanics(t *testing.T) {
	n := NewEmpty(1, testID(0))
	n.MakeInner()
	require.Panics(t, func() { n.BranchHash(16) })
	require.Panics(t, func() { n.IsEmptyBranch(-1) })
}

func TestItemOnInnerNodeErrors(t *testing.T) {
	n := NewEmpty(1, testID(0))
	n.MakeInner()
	_, err := n.Item()
	require.ErrorIs(t, err, ErrNotLeaf)
}

func TestCloneIsIndependentOfSource(t *testing.T) {
	it := item.New(common.BytesToHash256([]byte("tag")), []byte("deadbeefdeadbeef"))
	n, err := NewLeaf(testID(0), it, TypeAccountState, 1)
	require.NoError(t, err)

	c := n.Clone(2)
	require.Equal(t, n.Hash(), c.Hash())
	require.Equal(t, uint32(2), c.Seq())

	cloned, err := c.Item()
	require.NoError(t, err)
	cloned.Payload[0] ^= 0xFF

	original, err := n.Item()
	require.NoError(t, err)
	require.NotEqual(t, cloned.Payload[0], original.Payload[0])
}

func TestCloneOfInnerCopiesBranchesByValue(t *testing.T) {
	n := NewEmpty(1, testID(0))
	n.MakeInner()
	_, err := n.SetChildHash(5, common.BytesToHash256([]byte("x")))
	require.NoError(t, err)

	c := n.Clone(2)
	_, err = c.SetChildHash(5, common.Hash256{})
	require.NoError(t, err)

	require.False(t, n.IsEmptyBranch(5), "mutating the clone must not affect the source")
}
