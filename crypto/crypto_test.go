package crypto

import (
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSha512HalfMatchesTruncatedSha512(t *testing.T) {
	data := []byte("the quick brown fox")
	full := sha512.Sum512(data)

	got := Sha512Half(data)
	require.Equal(t, full[:32], got)
}

func TestSha512HalfConcatenatesParts(t *testing.T) {
	whole := Sha512Half([]byte("abcdef"))
	parts := Sha512Half([]byte("abc"), []byte("def"))
	require.Equal(t, whole, parts)
}

func TestSha512HalfHashLength(t *testing.T) {
	h := Sha512HalfHash([]byte("x"))
	require.Len(t, h.Bytes(), DigestLength)
}
