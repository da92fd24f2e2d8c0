package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "secret123" {
		t.Fatal("digest must not equal the plaintext")
	}

	if !CheckPassword("secret123", digest) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword("wrong-password", digest) {
		t.Fatal("expected non-matching password to fail")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatal("two digests of the same input must differ (per-call salt)")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	if CheckPassword("anything", "not-a-bcrypt-digest") {
		t.Fatal("malformed digest must not verify")
	}
	if CheckPassword("anything", "") {
		t.Fatal("empty digest must not verify")
	}
}
