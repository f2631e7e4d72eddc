// Package randsrc wraps the system CSPRNG behind a small interface so tests
// can substitute a failing source without touching the global
// crypto/rand.Reader. Production code should use Default.
package randsrc

import "crypto/rand"

// Source draws cryptographically secure random bytes. Read has the same
// contract as io.Reader: it fills p and returns the number of bytes read,
// or an error if the source is exhausted or unavailable.
type Source interface {
	Read(p []byte) (n int, err error)
}

// systemSource delegates to crypto/rand.Reader.
type systemSource struct{}

func (systemSource) Read(p []byte) (int, error) {
	return rand.Read(p)
}

// Default returns the system CSPRNG.
func Default() Source {
	return systemSource{}
}
