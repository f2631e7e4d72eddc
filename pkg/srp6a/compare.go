package srp6a

import "crypto/subtle"

// constantTimeEqual reports whether a and b hold the same bytes, in time
// depending only on their lengths, never on the position of the first
// differing byte. Used for every comparison of M1/M2 against an expected
// value (spec §4.9); it does not make the modular exponentiations upstream
// constant-time, but it closes the cheapest timing oracle available to an
// attacker probing the proof check itself.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
