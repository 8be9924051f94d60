package komihash_test

import (
	"hash"
	"testing"

	"github.com/stretchr/testify/require"

	komihash "github.com/avaneev/komihash"
)

var _ hash.Hash64 = (*komihash.Stream)(nil)

func testMessage(n int) []byte {
	m := make([]byte, n)
	for i := range m {
		m[i] = byte(i*17 + 3)
	}
	return m
}

// partitions mirrors the teacher's verifyReaderSizeAndCommP strategy of
// feeding a message through a hasher in a handful of differently-sized
// chunks, generalized to arbitrary chunk-size lists instead of a single
// fixed read size.
func partitions(n int) [][]int {
	return [][]int{
		{n},
		splitEvery(n, 1),
		splitEvery(n, 3),
		splitEvery(n, 7),
		splitEvery(n, 63),
		splitEvery(n, 64),
		splitEvery(n, 65),
		splitEvery(n, 127),
		splitEvery(n, 768),
	}
}

func splitEvery(n, chunk int) []int {
	if chunk <= 0 {
		return []int{n}
	}
	var sizes []int
	for n > 0 {
		c := chunk
		if c > n {
			c = n
		}
		sizes = append(sizes, c)
		n -= c
	}
	if len(sizes) == 0 {
		sizes = append(sizes, 0)
	}
	return sizes
}

func TestStreamMatchesOneShotAcrossPartitions(t *testing.T) {
	const seed = 0x0123456789ABCDEF
	lengths := []int{0, 1, 15, 16, 31, 32, 63, 64, 65, 127, 128, 255, 256, 767, 768, 769, 2000}

	for _, n := range lengths {
		msg := testMessage(n)
		want := komihash.Hash(msg, seed)

		for _, sizes := range partitions(n) {
			s := komihash.New(seed)
			pos := 0
			for _, c := range sizes {
				nw, err := s.Write(msg[pos : pos+c])
				require.NoError(t, err)
				require.Equal(t, c, nw)
				pos += c
			}
			require.Equal(t, n, pos)
			require.Equalf(t, want, s.Sum64(), "length %d, partition %v", n, sizes)
		}
	}
}

func TestStreamOneshotMatchesHash(t *testing.T) {
	for _, n := range []int{0, 1, 16, 63, 64, 768, 2000} {
		msg := testMessage(n)
		require.Equal(t, komihash.Hash(msg, 99), komihash.StreamOneshot(msg, 99))
	}
}

func TestStreamSum64IsNonDestructive(t *testing.T) {
	s := komihash.New(1)
	msg := testMessage(500)

	_, _ = s.Write(msg[:200])
	a := s.Sum64()
	b := s.Sum64()
	require.Equal(t, a, b, "repeated Sum64 with no Write between must agree")

	_, _ = s.Write(msg[200:])
	c := s.Sum64()
	require.Equal(t, komihash.Hash(msg, 1), c)
}

func TestStreamInterleavedWriteAndSum64MatchesPrefixHash(t *testing.T) {
	s := komihash.New(55)
	msg := testMessage(1600)

	cuts := []int{0, 1, 17, 100, 768, 769, 1000, 1600}
	for i := 1; i < len(cuts); i++ {
		n, err := s.Write(msg[cuts[i-1]:cuts[i]])
		require.NoError(t, err)
		require.Equal(t, cuts[i]-cuts[i-1], n)
		require.Equal(t, komihash.Hash(msg[:cuts[i]], 55), s.Sum64())
	}
}

func TestStreamReset(t *testing.T) {
	s := komihash.New(7)
	_, _ = s.Write(testMessage(300))
	_ = s.Sum64()

	s.Reset()
	msg := testMessage(90)
	_, _ = s.Write(msg)
	require.Equal(t, komihash.Hash(msg, 7), s.Sum64())
}

func TestStreamDifferentBufSizesAgree(t *testing.T) {
	const seed = 0xDEADBEEF
	msg := testMessage(3000)
	want := komihash.Hash(msg, seed)

	for _, bufSize := range []int{128, 192, 256, 320, komihash.DefaultBufSize, 1024, 4096} {
		s, err := komihash.NewWithBufSize(seed, bufSize)
		require.NoError(t, err)
		_, _ = s.Write(msg)
		require.Equalf(t, want, s.Sum64(), "bufSize %d", bufSize)
	}
}

func TestNewWithBufSizeRejectsInvalidSizes(t *testing.T) {
	for _, bad := range []int{0, 1, 64, 100, 127, 129, 200} {
		_, err := komihash.NewWithBufSize(0, bad)
		require.ErrorIsf(t, err, komihash.ErrInvalidBufSize, "bufSize %d", bad)
	}
}

func TestStreamSizeAndBlockSize(t *testing.T) {
	s := komihash.New(0)
	require.Equal(t, 8, s.Size())
	require.Equal(t, 64, s.BlockSize())
}

func TestStreamSumAppendsBigEndianDigest(t *testing.T) {
	s := komihash.New(3)
	msg := testMessage(40)
	_, _ = s.Write(msg)

	prefix := []byte{0xff, 0xee}
	got := s.Sum(prefix)
	require.Len(t, got, len(prefix)+8)
	require.Equal(t, prefix, got[:len(prefix)])

	v := s.Sum64()
	for i := 0; i < 8; i++ {
		require.Equal(t, byte(v>>uint(56-8*i)), got[len(prefix)+i])
	}
}

func TestUninitializedStreamWriteErrors(t *testing.T) {
	var s komihash.Stream
	n, err := s.Write([]byte("x"))
	require.Zero(t, n)
	require.ErrorIs(t, err, komihash.ErrUninitializedStream)
}

func TestUninitializedStreamSum64IsEmptyHash(t *testing.T) {
	var s komihash.Stream
	require.Equal(t, komihash.Hash(nil, 0), s.Sum64())
}
