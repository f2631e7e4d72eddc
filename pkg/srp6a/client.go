package srp6a

import "math/big"

// clientState is the Client's position in the INIT -> AWAITING_B -> COMPLETE
// state machine of spec §4.7.
type clientState int

const (
	clientInit clientState = iota
	clientAwaitingB
	clientComplete
)

// Client is one side of a single SRP-6a protocol run. A Client is not safe
// for concurrent use and must not be reused across runs (spec §3: "Lifetime
// = one protocol run").
type Client struct {
	params *SRPParams

	state clientState

	k *big.Int
	x *big.Int
	a *big.Int
	A *big.Int

	// Populated exactly once, by SetB.
	b  *big.Int // server's B
	u  *big.Int
	s  *big.Int // raw shared secret, test-only
	k_ []byte   // session key K
	m1 []byte
	m2 []byte
}

// NewClient constructs a Client and advances it INIT -> AWAITING_B: it
// precomputes k from params, x from salt/identity/password, and the public
// value A from the caller-supplied ephemeral secret (spec §4.7).
//
// secret1 is interpreted as a big-endian integer and used directly as the
// private exponent a; it is the caller's responsibility to draw it from a
// CSPRNG (see GenKey). Ephemerals shorter than 256 bits are accepted per
// spec §9 Open Question (b); ShortEphemeral(secret1) reports whether
// secret1 is that short.
func NewClient(params *SRPParams, salt, identity, password, secret1 []byte) (*Client, error) {
	if len(secret1) == 0 {
		return nil, newError(KindInputShape, "NewClient", "ephemeral secret must be non-empty", nil)
	}

	a := ephemeralToInt(secret1)
	if a.Sign() == 0 || new(big.Int).Mod(a, params.N).Sign() == 0 {
		return nil, newError(KindInputShape, "NewClient", "ephemeral secret a must be non-zero mod N", nil)
	}

	c := &Client{
		params: params,
		state:  clientAwaitingB,
		k:      params.deriveK(),
		x:      params.deriveX(salt, identity, password),
		a:      a,
	}
	c.A = new(big.Int).Exp(params.G, c.a, params.N)
	return c, nil
}

// ShortEphemeral reports whether secret1 is shorter than the recommended
// 256 bits. It checks only the argument it is given; the Client does not
// keep the secret it was constructed with.
func (c *Client) ShortEphemeral(secret1 []byte) bool {
	return ephemeralWarning(secret1)
}

// ComputeA returns the client's public value A, PAD-encoded to |N| bytes,
// for transmission to the server.
func (c *Client) ComputeA() []byte {
	return c.params.padN(c.A)
}

// SetB ingests the server's public value B and advances the Client
// AWAITING_B -> COMPLETE, deriving u, S, K, M1 and M2. It fails with an
// input-shape error if B decodes to 0 mod N or falls outside [1, N-1]
// (spec §4.7, §8 range-check property).
func (c *Client) SetB(bBuf []byte) error {
	if c.state != clientAwaitingB {
		return newError(KindProtocolState, "SetB", "setB called outside the AWAITING_B state", nil)
	}

	b := decode(bBuf)
	if !c.params.inRange(b) {
		return newError(KindInputShape, "SetB", "B must satisfy 1 <= B <= N-1", nil)
	}

	c.b = b
	c.u = c.params.deriveU(c.A, c.b)
	c.s = c.params.clientS(c.k, c.x, c.a, c.u, c.b)
	c.k_ = c.params.deriveSessionKey(c.s)
	c.m1 = c.params.deriveM1(c.A, c.b, c.s)
	c.m2 = c.params.deriveM2(c.A, c.m1, c.k_)
	c.state = clientComplete

	return nil
}

// ComputeM1 returns the client proof M1. Calling it before SetB has
// completed is a protocol-usage error, distinct from an authentication
// failure (spec §4.7).
func (c *Client) ComputeM1() ([]byte, error) {
	if c.state != clientComplete {
		return nil, newError(KindProtocolState, "ComputeM1", "called before SetB completed", nil)
	}
	return c.m1, nil
}

// ComputeK returns the derived session key K. Calling it before SetB has
// completed is a protocol-usage error.
func (c *Client) ComputeK() ([]byte, error) {
	if c.state != clientComplete {
		return nil, newError(KindProtocolState, "ComputeK", "called before SetB completed", nil)
	}
	return c.k_, nil
}

// CheckM2 verifies the server's proof M2 against the value this Client
// computed locally, in constant time. A mismatch is the only channel by
// which the client learns the server did not hold the same verifier
// (spec §4.7).
func (c *Client) CheckM2(serverM2 []byte) error {
	if c.state != clientComplete {
		return newError(KindProtocolState, "CheckM2", "called before SetB completed", nil)
	}
	if !constantTimeEqual(c.m2, serverM2) {
		return newError(KindAuthenticationFailed, "CheckM2", "server proof did not match", nil)
	}
	return nil
}

// testOnlyU and testOnlyS expose the scrambler and raw shared secret for the
// test suite only (spec §9: "test-only fields ... available through a
// guarded accessor used only by the test suite, not part of the public
// contract"). Production callers should use ComputeK.
func (c *Client) testOnlyU() *big.Int { return c.u }
func (c *Client) testOnlyS() *big.Int { return c.s }
