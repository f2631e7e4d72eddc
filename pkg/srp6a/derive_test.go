package srp6a

import (
	"bytes"
	"math/big"
	"testing"
)

func testParams(t *testing.T) *SRPParams {
	t.Helper()
	p, err := Params(2048)
	if err != nil {
		t.Fatalf("Params(2048): %v", err)
	}
	return p
}

func TestPad_RoundTrip(t *testing.T) {
	p := testParams(t)
	n := big.NewInt(12345)

	buf := p.padN(n)
	if len(buf) != p.nBytes() {
		t.Fatalf("padded length = %d, want %d", len(buf), p.nBytes())
	}
	if got := decode(buf); got.Cmp(n) != 0 {
		t.Fatalf("decode(pad(n)) = %v, want %v", got, n)
	}
}

func TestPad_PanicsOnOversizedInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic encoding an oversized integer")
		}
	}()
	huge := new(big.Int).Lsh(big.NewInt(1), 4096)
	pad(huge, 4)
}

func TestDeriveX_IsDeterministic(t *testing.T) {
	p := testParams(t)
	salt := []byte("salt-bytes")
	identity := []byte("alice")
	password := []byte("hunter2")

	x1 := p.deriveX(salt, identity, password)
	x2 := p.deriveX(salt, identity, password)
	if x1.Cmp(x2) != 0 {
		t.Fatal("deriveX is not deterministic")
	}
}

func TestDeriveX_DiffersByInput(t *testing.T) {
	p := testParams(t)
	base := p.deriveX([]byte("salt"), []byte("alice"), []byte("hunter2"))

	if other := p.deriveX([]byte("salt2"), []byte("alice"), []byte("hunter2")); other.Cmp(base) == 0 {
		t.Fatal("deriveX did not change with salt")
	}
	if other := p.deriveX([]byte("salt"), []byte("bob"), []byte("hunter2")); other.Cmp(base) == 0 {
		t.Fatal("deriveX did not change with identity")
	}
	if other := p.deriveX([]byte("salt"), []byte("alice"), []byte("hunter3")); other.Cmp(base) == 0 {
		t.Fatal("deriveX did not change with password")
	}
}

func TestDeriveK_MatchesHashOfPaddedNAndG(t *testing.T) {
	p := testParams(t)
	want := p.hashInt(p.padN(p.N), p.padN(p.G))
	if got := p.deriveK(); got.Cmp(want) != 0 {
		t.Fatalf("deriveK() = %v, want %v", got, want)
	}
}

func TestClientAndServerSecretsAgree(t *testing.T) {
	p := testParams(t)

	x := p.deriveX([]byte("salt"), []byte("alice"), []byte("hunter2"))
	v := p.deriveVerifier(x)
	k := p.deriveK()

	a := big.NewInt(998877)
	b := big.NewInt(112233)

	A := new(big.Int).Exp(p.G, a, p.N)
	gb := new(big.Int).Exp(p.G, b, p.N)
	kv := new(big.Int).Mod(new(big.Int).Mul(k, v), p.N)
	B := new(big.Int).Mod(new(big.Int).Add(kv, gb), p.N)

	u := p.deriveU(A, B)

	clientSecret := p.clientS(k, x, a, u, B)
	serverSecret := p.serverS(A, v, u, b)

	if clientSecret.Cmp(serverSecret) != 0 {
		t.Fatalf("client and server secrets disagree:\nclient=%x\nserver=%x", clientSecret, serverSecret)
	}

	clientM1 := p.deriveM1(A, B, clientSecret)
	serverM1 := p.deriveM1(A, B, serverSecret)
	if !bytes.Equal(clientM1, serverM1) {
		t.Fatal("M1 values disagree between client and server views of S")
	}

	clientK := p.deriveSessionKey(clientSecret)
	serverK := p.deriveSessionKey(serverSecret)
	if !bytes.Equal(clientK, serverK) {
		t.Fatal("session keys disagree")
	}

	clientM2 := p.deriveM2(A, clientM1, clientK)
	serverM2 := p.deriveM2(A, serverM1, serverK)
	if !bytes.Equal(clientM2, serverM2) {
		t.Fatal("M2 values disagree")
	}
}

func TestInRange(t *testing.T) {
	p := testParams(t)

	if p.inRange(big.NewInt(0)) {
		t.Fatal("0 must be rejected")
	}
	if !p.inRange(big.NewInt(1)) {
		t.Fatal("1 must be accepted")
	}
	if p.inRange(p.N) {
		t.Fatal("N itself must be rejected")
	}
	nMinus1 := new(big.Int).Sub(p.N, big.NewInt(1))
	if !p.inRange(nMinus1) {
		t.Fatal("N-1 must be accepted")
	}
}
