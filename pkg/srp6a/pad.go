package srp6a

import "math/big"

// pad encodes n as a width-byte unsigned big-endian buffer, left-padded
// with zeros. n must already be reduced so its minimal encoding fits in
// width bytes; a caller passing an integer that doesn't fit has a bug, not
// a runtime-recoverable condition (spec §4.1: "a programming error").
func pad(n *big.Int, width int) []byte {
	b := n.Bytes()
	if len(b) > width {
		panic("srp6a: integer does not fit in padded width")
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return out
}

// padN encodes n to the N-width (|N| bytes) of params.
func (p *SRPParams) padN(n *big.Int) []byte {
	return pad(n, p.nBytes())
}

// decode interprets buf as an unsigned big-endian integer.
func decode(buf []byte) *big.Int {
	return new(big.Int).SetBytes(buf)
}
