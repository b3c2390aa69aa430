package shamap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xrplf/go-shamap/common"
	"github.com/xrplf/go-shamap/item"
)

func TestItemCacheInternsByTag(t *testing.T) {
	c, err := NewItemCache(4)
	require.NoError(t, err)

	tag := common.BytesToHash256([]byte("tag"))
	a := item.New(tag, []byte("payload-a"))
	b := item.New(tag, []byte("payload-b"))

	got := c.Intern(a)
	require.Same(t, a, got)

	got = c.Intern(b)
	require.Same(t, a, got, "a later item with the same tag should be discarded in favor of the cached one")
}

func TestItemCacheGetMissReturnsFalse(t *testing.T) {
	c, err := NewItemCache(4)
	require.NoError(t, err)
	_, ok := c.Get(common.BytesToHash256([]byte("missing")))
	require.False(t, ok)
}

func TestItemCachePurgeClearsEntries(t *testing.T) {
	c, err := NewItemCache(4)
	require.NoError(t, err)
	c.Intern(item.New(common.BytesToHash256([]byte("tag")), []byte("x")))
	require.Equal(t, 1, c.Len())

	c.Purge()
	require.Equal(t, 0, c.Len())
}

func TestNewItemCacheNonPositiveSizeUsesDefault(t *testing.T) {
	c, err := NewItemCache(0)
	require.NoError(t, err)
	require.NotNil(t, c)
}
