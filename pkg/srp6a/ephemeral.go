package srp6a

import (
	"context"
	"io"
	"math/big"

	"github.com/fzdarsky/srp6a/internal/randsrc"
)

// DefaultEphemeralBytes is the recommended width, in bytes, of an ephemeral
// secret drawn with GenKey. GenKey has no implicit width; callers pass this
// constant as n.
const DefaultEphemeralBytes = 32

// minEphemeralBytes is the size below which this design warns the caller
// (spec §4.3 note 3, §9 Open Question (b)): ephemeral secrets shorter than
// 256 bits are accepted but flagged.
const minEphemeralBytes = 32

// source is the package-level CSPRNG seam; tests may override it via
// setRandSource to exercise the random-source-failure path.
var source randsrc.Source = randsrc.Default()

func setRandSource(s randsrc.Source) (restore func()) {
	prev := source
	source = s
	return func() { source = prev }
}

// GenKey draws n cryptographically random bytes, blocking until the read
// completes. A failure in the underlying source propagates verbatim; the
// caller never observes a partially-filled buffer (spec §4.6, §7).
func GenKey(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(source, buf); err != nil {
		return nil, newError(KindRandomSource, "GenKey", "failed to read random bytes", err)
	}
	return buf, nil
}

// GenKeyContext is the asynchronous/cancellable variant of GenKey: it
// delivers the same never-partial result, waiting for it on an internal
// channel, and returns early if ctx is done first. The draw itself is not interruptible once
// started (crypto/rand.Read does not accept a context), so a cancellation
// races with, rather than interrupts, an in-flight read.
func GenKeyContext(ctx context.Context, n int) ([]byte, error) {
	type result struct {
		buf []byte
		err error
	}
	ch := make(chan result, 1)
	go func() {
		buf, err := GenKey(n)
		ch <- result{buf, err}
	}()

	select {
	case <-ctx.Done():
		return nil, newError(KindRandomSource, "GenKeyContext", "context canceled before random bytes were ready", ctx.Err())
	case r := <-ch:
		return r.buf, r.err
	}
}

// ephemeralWarning reports whether the supplied ephemeral secret is shorter
// than the recommended 256 bits. The design accepts short ephemerals (spec
// §9 Open Question (b)) but callers SHOULD override this by always
// supplying 32-byte secrets; this flag lets a caller surface that warning
// rather than silently swallowing it.
func ephemeralWarning(secret []byte) bool {
	return len(secret) < minEphemeralBytes
}

// ephemeralToInt decodes a caller-supplied ephemeral secret into the
// integer a (or b) used as the private exponent. It is never itself reduced
// mod N: it is a uniformly random exponent, not a residue.
func ephemeralToInt(secret []byte) *big.Int {
	return new(big.Int).SetBytes(secret)
}
