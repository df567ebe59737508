package usercrypt

import "testing"

func TestDigestNormalizes(t *testing.T) {
	c := New("test-secret")
	if c.Digest("Alice ") != c.Digest("alice") {
		t.Fatal("expected case and whitespace variants to share a digest")
	}
	if c.Digest("alice") == c.Digest("bob") {
		t.Fatal("expected distinct users to have distinct digests")
	}
}

func TestDigestDependsOnSecret(t *testing.T) {
	a := New("secret-a")
	b := New("secret-b")
	if a.Digest("alice") == b.Digest("alice") {
		t.Fatal("expected digest to be keyed by secret")
	}
}

func TestSealRoundTrip(t *testing.T) {
	c := New("test-secret")
	sealed, err := c.Seal("Alice")
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	got, err := c.Open(sealed)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if got != "Alice" {
		t.Fatalf("expected original casing back, got %q", got)
	}
}

func TestOpenRejectsTampering(t *testing.T) {
	c := New("test-secret")
	sealed, err := c.Seal("alice")
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	sealed[len(sealed)-1] ^= 0xff
	if _, err := c.Open(sealed); err == nil {
		t.Fatal("expected tampered cipher to fail authentication")
	}
}

func TestOpenRejectsWrongKey(t *testing.T) {
	sealed, err := New("secret-a").Seal("alice")
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if _, err := New("secret-b").Open(sealed); err == nil {
		t.Fatal("expected wrong key to fail")
	}
}

func TestOpenRejectsShortCipher(t *testing.T) {
	c := New("test-secret")
	if _, err := c.Open([]byte("short")); err != ErrCipherTooShort {
		t.Fatalf("expected ErrCipherTooShort, got %v", err)
	}
}
