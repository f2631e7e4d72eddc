// Package srp6a implements the SRP-6a password-authenticated key exchange
// (RFC 5054). It provides the group registry, the padding and hashing
// primitives the protocol is built from, the number-theoretic derivations of
// x, v, k, A, B, u, S, K, M1 and M2, and the Client/Server state machines
// that sequence a single protocol run.
//
// The package never transmits or stores a password; it turns one into a
// verifier (ComputeVerifier) that a server can safely hold instead. Wire
// transport, session persistence and side-channel hardening of the
// underlying modular exponentiation are the caller's concern.
package srp6a

import "math/big"

// deriveX computes x = H(salt || H(I || ":" || P)), the private key a
// client derives from its identity, password and salt (spec §4.3).
func (p *SRPParams) deriveX(salt, identity, password []byte) *big.Int {
	inner := p.hashConcat(identity, []byte(":"), password)
	return p.hashInt(salt, inner)
}

// deriveVerifier computes v = g^x mod N.
func (p *SRPParams) deriveVerifier(x *big.Int) *big.Int {
	return new(big.Int).Exp(p.G, x, p.N)
}

// deriveK computes the multiplier k = H(PAD(N) || PAD(g)).
func (p *SRPParams) deriveK() *big.Int {
	return p.hashInt(p.padN(p.N), p.padN(p.G))
}

// deriveU computes the scrambling parameter u = H(PAD(A) || PAD(B)).
func (p *SRPParams) deriveU(a, b *big.Int) *big.Int {
	return p.hashInt(p.padN(a), p.padN(b))
}

// clientS computes the client's view of the shared secret:
// S = (B - k*g^x)^(a + u*x) mod N.
//
// The intermediate (B - k*g^x) can be negative in unbounded arithmetic; it
// is reduced into [0, N) before the exponentiation, per spec §4.3 note (1).
func (p *SRPParams) clientS(k, x, a, u, b *big.Int) *big.Int {
	gx := new(big.Int).Exp(p.G, x, p.N)
	kgx := new(big.Int).Mod(new(big.Int).Mul(k, gx), p.N)

	base := new(big.Int).Mod(new(big.Int).Sub(b, kgx), p.N)

	exponent := new(big.Int).Add(a, new(big.Int).Mul(u, x))

	return new(big.Int).Exp(base, exponent, p.N)
}

// serverS computes the server's view of the shared secret:
// S = (A * v^u)^b mod N.
func (p *SRPParams) serverS(a, v, u, b *big.Int) *big.Int {
	vu := new(big.Int).Exp(v, u, p.N)
	avu := new(big.Int).Mod(new(big.Int).Mul(a, vu), p.N)
	return new(big.Int).Exp(avu, b, p.N)
}

// deriveSessionKey computes the session key K = H(PAD(S)).
func (p *SRPParams) deriveSessionKey(s *big.Int) []byte {
	return p.hashConcat(p.padN(s))
}

// deriveM1 computes M1 = H(PAD(A) || PAD(B) || PAD(S)).
func (p *SRPParams) deriveM1(a, b, s *big.Int) []byte {
	return p.hashConcat(p.padN(a), p.padN(b), p.padN(s))
}

// deriveM2 computes M2 = H(PAD(A) || M1 || K).
func (p *SRPParams) deriveM2(a *big.Int, m1, k []byte) []byte {
	return p.hashConcat(p.padN(a), m1, k)
}

// inRange reports whether n is in [1, N-1] — the acceptance range for a
// decoded public value A or B (spec §3: "accepted only if 1 <= A <= N-1").
func (p *SRPParams) inRange(n *big.Int) bool {
	return n.Sign() > 0 && n.Cmp(p.N) < 0
}
