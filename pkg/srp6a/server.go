package srp6a

import "math/big"

// serverState is the Server's position in the INIT -> AWAITING_A -> COMPLETE
// state machine of spec §4.8.
type serverState int

const (
	serverInit serverState = iota
	serverAwaitingA
	serverComplete
)

// Server is one side of a single SRP-6a protocol run, holding the verifier
// in place of the password. A Server is not safe for concurrent use and
// must not be reused across runs.
type Server struct {
	params *SRPParams

	state serverState

	k *big.Int
	v *big.Int
	b *big.Int
	B *big.Int

	// Populated exactly once, by SetA.
	a  *big.Int // client's A
	u  *big.Int
	s  *big.Int // raw shared secret, test-only
	k_ []byte   // session key K
	m1 []byte
	m2 []byte

	// authenticated is set only by a successful CheckM1. It is tracked
	// separately from state because a failed CheckM1 must not roll the
	// state machine back to AWAITING_A, and ComputeM2 must not be gateable
	// by state alone (spec §4.8, §7): a caller must not be able to skip
	// CheckM1, or retry it with a bogus proof, and still get M2.
	authenticated bool
}

// NewServer constructs a Server and advances it INIT -> AWAITING_A: it
// precomputes k, decodes the stored verifier, and computes the public value
// B = (k*v + g^b) mod N from the caller-supplied ephemeral secret
// (spec §4.8).
//
// secret2 is interpreted as a big-endian integer and used directly as the
// private exponent b; it is the caller's responsibility to draw it from a
// CSPRNG (see GenKey).
func NewServer(params *SRPParams, verifierBuf, secret2 []byte) (*Server, error) {
	if len(secret2) == 0 {
		return nil, newError(KindInputShape, "NewServer", "ephemeral secret must be non-empty", nil)
	}
	if len(verifierBuf) == 0 {
		return nil, newError(KindInputShape, "NewServer", "verifier must be non-empty", nil)
	}

	b := ephemeralToInt(secret2)
	if b.Sign() == 0 || new(big.Int).Mod(b, params.N).Sign() == 0 {
		return nil, newError(KindInputShape, "NewServer", "ephemeral secret b must be non-zero mod N", nil)
	}

	s := &Server{
		params: params,
		state:  serverAwaitingA,
		k:      params.deriveK(),
		v:      decode(verifierBuf),
		b:      b,
	}

	gb := new(big.Int).Exp(params.G, s.b, params.N)
	kv := new(big.Int).Mul(s.k, s.v)
	s.B = new(big.Int).Mod(new(big.Int).Add(kv, gb), params.N)

	return s, nil
}

// ShortEphemeral reports whether secret2 is shorter than the recommended
// 256 bits. It checks only the argument it is given; the Server does not
// keep the secret it was constructed with.
func (s *Server) ShortEphemeral(secret2 []byte) bool {
	return ephemeralWarning(secret2)
}

// ComputeB returns the server's public value B, PAD-encoded to |N| bytes,
// for transmission to the client.
func (s *Server) ComputeB() []byte {
	return s.params.padN(s.B)
}

// SetA ingests the client's public value A and advances the Server
// AWAITING_A -> COMPLETE, deriving u, S, K and the expected client proof
// M1. It fails with an input-shape error if A decodes to 0 mod N or falls
// outside [1, N-1] (spec §4.8, §8 range-check property).
func (s *Server) SetA(aBuf []byte) error {
	if s.state != serverAwaitingA {
		return newError(KindProtocolState, "SetA", "setA called outside the AWAITING_A state", nil)
	}

	a := decode(aBuf)
	if !s.params.inRange(a) {
		return newError(KindInputShape, "SetA", "A must satisfy 1 <= A <= N-1", nil)
	}

	s.a = a
	s.u = s.params.deriveU(s.a, s.B)
	s.s = s.params.serverS(s.a, s.v, s.u, s.b)
	s.k_ = s.params.deriveSessionKey(s.s)
	s.m1 = s.params.deriveM1(s.a, s.B, s.s)
	s.m2 = s.params.deriveM2(s.a, s.m1, s.k_)
	s.state = serverComplete

	return nil
}

// CheckM1 verifies the client's proof M1 against the value this Server
// computed locally, in constant time. A mismatch means the peer did not
// derive the same x from the same password, i.e. authentication failed
// (spec §4.8).
func (s *Server) CheckM1(clientM1 []byte) error {
	if s.state != serverComplete {
		return newError(KindProtocolState, "CheckM1", "called before SetA completed", nil)
	}
	if !constantTimeEqual(s.m1, clientM1) {
		return newError(KindAuthenticationFailed, "CheckM1", "client proof did not match", nil)
	}
	s.authenticated = true
	return nil
}

// ComputeM2 returns the server proof M2, to be sent to the client only
// after CheckM1 has succeeded (spec §4.8: the server must not emit M2 to a
// peer it has not authenticated). Calling it before CheckM1 has succeeded —
// including after CheckM1 has rejected a bogus proof — fails without
// revealing M2, so a failing client learns nothing useful from one round.
func (s *Server) ComputeM2() ([]byte, error) {
	if s.state != serverComplete {
		return nil, newError(KindProtocolState, "ComputeM2", "called before SetA completed", nil)
	}
	if !s.authenticated {
		return nil, newError(KindProtocolState, "ComputeM2", "called before CheckM1 succeeded", nil)
	}
	return s.m2, nil
}

// ComputeK returns the derived session key K. Calling it before SetA has
// completed is a protocol-usage error.
func (s *Server) ComputeK() ([]byte, error) {
	if s.state != serverComplete {
		return nil, newError(KindProtocolState, "ComputeK", "called before SetA completed", nil)
	}
	return s.k_, nil
}

// testOnlyU and testOnlyS expose the scrambler and raw shared secret for the
// test suite only; production callers should use ComputeK.
func (s *Server) testOnlyU() *big.Int { return s.u }
func (s *Server) testOnlyS() *big.Int { return s.s }
