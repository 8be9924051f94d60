package komihash

import "golang.org/x/xerrors"

// minBufSize is the smallest legal streaming buffer size (spec §3/§6):
// a multiple of 64, at least 128 bytes, so the direct bulk-processing
// path (triggered above 127 contiguous bytes) always has room to drain
// a full buffer's worth of 64-byte blocks.
const minBufSize = 128

// ErrInvalidBufSize is returned by NewWithBufSize when the requested
// buffer size does not satisfy spec §6's constraint (a multiple of 64,
// at least 128). Changing B only affects where the lazy bulk-loop
// boundary falls; an invalid B is rejected here rather than silently
// clamped, since a clamp would quietly mean the caller's chosen B was
// never actually used.
var ErrInvalidBufSize = xerrors.New("komihash: buffer size must be a multiple of 64 and at least 128")

// ErrUninitializedStream is returned by Write when called on a Stream
// that was not produced by New or NewWithBufSize. A zero-value Stream's
// Sum64 still returns a well-defined result (the hash of an empty
// message under seed 0), since hash.Hash64 leaves Sum64 no room to
// report an error; Write is where the missing buffer actually matters.
var ErrUninitializedStream = xerrors.New("komihash: stream used before init")

func newInvalidBufSizeError(n int) error {
	return xerrors.Errorf("komihash: invalid buffer size %d: %w", n, ErrInvalidBufSize)
}
