package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, salt, iterations, err := Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if iterations != DefaultIterations {
		t.Fatalf("expected %d iterations, got %d", DefaultIterations, iterations)
	}
	if !Verify(hash, salt, iterations, "hunter2") {
		t.Fatal("expected correct password to verify")
	}
	if Verify(hash, salt, iterations, "hunter3") {
		t.Fatal("expected wrong password to fail")
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	h1, s1, _, err := Hash("same")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	h2, s2, _, err := Hash("same")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if s1 == s2 {
		t.Fatal("expected distinct salts")
	}
	if h1 == h2 {
		t.Fatal("expected distinct hashes for distinct salts")
	}
}

func TestEmptyPassword(t *testing.T) {
	if _, _, _, err := Hash(""); err != ErrEmptyPassword {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestVerifyRejectsBadStoredValues(t *testing.T) {
	if Verify("not-hex", "00", 1000, "x") {
		t.Fatal("expected bad hash encoding to fail")
	}
	if Verify("00", "not-hex", 1000, "x") {
		t.Fatal("expected bad salt encoding to fail")
	}
	if Verify("00", "00", 0, "x") {
		t.Fatal("expected zero iterations to fail")
	}
}
