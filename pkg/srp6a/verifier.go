package srp6a

// ComputeVerifier derives the password verifier a server stores in lieu of
// the password itself: v = g^x mod N, where x = H(salt || H(I || ":" || P))
// (spec §4.5). It is a pure, deterministic function of its inputs — calling
// it twice with identical arguments yields byte-identical output.
//
// salt, identity and password are treated as opaque byte strings; no
// normalization is applied.
func ComputeVerifier(params *SRPParams, salt, identity, password []byte) []byte {
	x := params.deriveX(salt, identity, password)
	v := params.deriveVerifier(x)
	return params.padN(v)
}
