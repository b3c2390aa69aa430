package item

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xrplf/go-shamap/common"
)

func TestCloneIsIndependent(t *testing.T) {
	orig := New(common.BytesToHash256([]byte{1}), []byte("payload"))
	clone := orig.Clone()

	clone.Payload[0] = 'P'

	require.Equal(t, byte('p'), orig.Payload[0])
	require.Equal(t, orig.Tag, clone.Tag)
	require.NotSame(t, &orig.Payload[0], &clone.Payload[0])
}

func TestCloneOfNilIsNil(t *testing.T) {
	var it *Item
	require.Nil(t, it.Clone())
	require.Equal(t, 0, it.Len())
}
