package srp6a

import "math/big"

// hashConcat feeds each element of parts into a fresh hasher from
// params.NewHash, in order, and returns the digest. This is H(x1 || x2 || ...)
// from spec §4.2: a single streaming hasher rather than a materialized
// concatenation, while remaining byte-for-byte identical to hashing the
// concatenation directly.
func (p *SRPParams) hashConcat(parts ...[]byte) []byte {
	h := p.NewHash()
	for _, part := range parts {
		h.Write(part)
	}
	return h.Sum(nil)
}

// hashInt is hashConcat reduced to a big.Int, used wherever a hash output
// feeds back into modular arithmetic (x, k, u).
func (p *SRPParams) hashInt(parts ...[]byte) *big.Int {
	return decode(p.hashConcat(parts...))
}
