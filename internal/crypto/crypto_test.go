package crypto_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"bitkitcore/internal/crypto"
	"bitkitcore/internal/domain"
)

const testMnemonic = "stable inch effort skull suggest circle charge lemon amazing clean giant quantum party grow visa best rule icon gown disagree win drop smile love"

var lud05HashingKey = domain.HashingKey{
	0x7d, 0x41, 0x7a, 0x6a, 0x5e, 0x9a, 0x6a, 0x4a,
	0x87, 0x9a, 0xea, 0xba, 0x11, 0xa1, 0x18, 0x38,
	0x76, 0x4c, 0x8f, 0xa2, 0xb9, 0x59, 0xc2, 0x42,
	0xd4, 0x3d, 0xea, 0x68, 0x2b, 0x3e, 0x40, 0x9b,
}

func TestDerivationPath_LUD05Vector(t *testing.T) {
	path := crypto.DerivationPath(lud05HashingKey, "site.com")

	want := "138'/1588488367/511787106'/38110259/1988853114'"
	if got := path.String(); got != want {
		t.Fatalf("want path %s, got %s", want, got)
	}
	if again := crypto.DerivationPath(lud05HashingKey, "site.com"); again.String() != want {
		t.Fatal("derivation path is not deterministic")
	}
}

func TestDeriveLinkingKey_PerDomain(t *testing.T) {
	a, err := crypto.DeriveLinkingKey(lud05HashingKey, "site.com")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	a2, err := crypto.DeriveLinkingKey(lud05HashingKey, "site.com")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	b, err := crypto.DeriveLinkingKey(lud05HashingKey, "other.com")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if len(a.PublicKey()) != 33 {
		t.Fatalf("want compressed key, got %d bytes", len(a.PublicKey()))
	}
	if hex.EncodeToString(a.PublicKey()) != hex.EncodeToString(a2.PublicKey()) {
		t.Fatal("linking key is not deterministic")
	}
	if hex.EncodeToString(a.PublicKey()) == hex.EncodeToString(b.PublicKey()) {
		t.Fatal("different domains must yield different linking keys")
	}
}

func TestSignAndVerifyChallenge(t *testing.T) {
	k1 := "e2af6254a8df433264fa23f67eb8188635d15ce883e8fc020989d5f82ae6f11e"
	key, err := crypto.DeriveLinkingKey(lud05HashingKey, "site.com")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	sig, err := key.Sign(k1)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	pub := hex.EncodeToString(key.PublicKey())
	if !crypto.VerifyChallenge(pub, k1, hex.EncodeToString(sig)) {
		t.Fatal("signature did not verify")
	}

	other := "00" + k1[2:]
	if crypto.VerifyChallenge(pub, other, hex.EncodeToString(sig)) {
		t.Fatal("signature verified for a different k1")
	}
	if crypto.VerifyChallenge("zz", k1, hex.EncodeToString(sig)) {
		t.Fatal("bad key hex must not verify")
	}
}

func TestSign_BadK1(t *testing.T) {
	key, err := crypto.DeriveLinkingKey(domain.HashingKey{1}, "example.com")
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	for _, k1 := range []string{"invalid_hex", "abcdef1234567890", ""} {
		if _, err := key.Sign(k1); !errors.Is(err, domain.ErrAuthenticationFailed) {
			t.Fatalf("k1 %q: want ErrAuthenticationFailed, got %v", k1, err)
		}
	}
}

func TestHashingKeyFromMnemonic(t *testing.T) {
	a, err := crypto.HashingKeyFromMnemonic(testMnemonic, "")
	if err != nil {
		t.Fatalf("from mnemonic: %v", err)
	}
	b, err := crypto.HashingKeyFromMnemonic(testMnemonic, "")
	if err != nil {
		t.Fatalf("from mnemonic: %v", err)
	}
	if a != b {
		t.Fatal("hashing key is not deterministic")
	}
	if a == (domain.HashingKey{}) {
		t.Fatal("hashing key is zero")
	}
	c, err := crypto.HashingKeyFromMnemonic(testMnemonic, "TREZOR")
	if err != nil {
		t.Fatalf("from mnemonic: %v", err)
	}
	if a == c {
		t.Fatal("passphrase must change the hashing key")
	}
}

func TestHashingKeyFromMnemonic_Invalid(t *testing.T) {
	if _, err := crypto.HashingKeyFromMnemonic("not a valid mnemonic at all", ""); err == nil {
		t.Fatal("expected error for invalid mnemonic")
	}
}

func TestParseHashingKey(t *testing.T) {
	enc := hex.EncodeToString(lud05HashingKey[:])
	got, err := crypto.ParseHashingKey(enc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != lud05HashingKey {
		t.Fatal("round trip mismatch")
	}
	if _, err := crypto.ParseHashingKey("abcd"); !errors.Is(err, crypto.ErrBadHashingKey) {
		t.Fatalf("want ErrBadHashingKey, got %v", err)
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	crypto.Wipe(b)
	for _, v := range b {
		if v != 0 {
			t.Fatal("buffer not wiped")
		}
	}
}
