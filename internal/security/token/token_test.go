package token

import (
	"strings"
	"testing"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret")
	tok, err := m.Issue(42, "alice", "0.3.0")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	uid, sub, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if uid != 42 || sub != "alice" {
		t.Fatalf("expected claims (42, alice), got (%d, %s)", uid, sub)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tok, err := NewManager("secret-a").Issue(1, "alice", "0.3.0")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, _, err := NewManager("secret-b").Verify(tok); err == nil {
		t.Fatal("expected verification under another secret to fail")
	}
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	m := NewManager("test-secret")
	tok, err := m.Issue(1, "alice", "0.3.0")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	parts := strings.Split(tok, ".")
	forged := "x" + parts[0][1:] + "." + parts[1]
	if _, _, err := m.Verify(forged); err == nil {
		t.Fatal("expected tampered payload to fail")
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	m := NewManager("test-secret")
	for _, tok := range []string{"", "nodot", "a.b.c"} {
		if _, _, err := m.Verify(tok); err == nil {
			t.Fatalf("expected malformed token %q to fail", tok)
		}
	}
}

func TestTokensAreUnique(t *testing.T) {
	m := NewManager("test-secret")
	t1, err := m.Issue(1, "alice", "0.3.0")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	t2, err := m.Issue(1, "alice", "0.3.0")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if t1 == t2 {
		t.Fatal("expected a fresh nonce per token")
	}
}
