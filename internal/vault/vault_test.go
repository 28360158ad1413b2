package vault

import (
	"errors"
	"testing"

	"tinkerbox/internal/store"
)

// testN keeps scrypt cheap in tests; must stay a power of two.
const testN = 1024

func newVault(t *testing.T) (*store.LocalStore, *Vault) {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if err := Init(st, "hunter22", testN); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	v, err := Open(st, "hunter22")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return st, v
}

func TestInitAndOpen(t *testing.T) {
	st, _ := newVault(t)

	// Re-init fails
	if err := Init(st, "other", testN); err == nil {
		t.Error("Expected error on second init")
	}

	// Wrong password fails cleanly
	if _, err := Open(st, "wrong"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("Expected ErrWrongPassword, got %v", err)
	}
}

func TestOpenUninitialized(t *testing.T) {
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	if _, err := Open(st, "whatever"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestInitRejectsShortMaster(t *testing.T) {
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	if err := Init(st, "abc", testN); err == nil {
		t.Error("Expected rejection of short master password")
	}
}

func TestSealRoundtrip(t *testing.T) {
	_, v := newVault(t)

	id, err := v.Add("github", "octocat", "tr0ub4dor&3", "https://github.com", "work account")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := v.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Password != "tr0ub4dor&3" {
		t.Errorf("Password mismatch: %q", got.Password)
	}
	if got.Service != "github" || got.Username != "octocat" {
		t.Errorf("Metadata mismatch: %+v", got)
	}
}

func TestSearchDoesNotDecrypt(t *testing.T) {
	_, v := newVault(t)

	if _, err := v.Add("github", "octocat", "pw1", "", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := v.Add("gitlab", "octocat", "pw2", "", ""); err != nil {
		t.Fatal(err)
	}

	hits, err := v.Search("git")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}
	for _, h := range hits {
		if h.Password != "" {
			t.Error("Search results must not contain plaintext passwords")
		}
	}
}

func TestKeysAreVaultSpecific(t *testing.T) {
	st1, v1 := newVault(t)
	_ = st1

	// A second vault with the same master password derives a different key
	// because the salt differs; its verifier still opens fine.
	st2, err := store.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer st2.Close()
	if err := Init(st2, "hunter22", testN); err != nil {
		t.Fatal(err)
	}
	v2, err := Open(st2, "hunter22")
	if err != nil {
		t.Fatal(err)
	}

	id, err := v1.Add("svc", "u", "secret", "", "")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := st1.GetVaultEntry(id)
	if err != nil {
		t.Fatal(err)
	}

	// Decrypting v1's ciphertext with v2's key must fail
	if _, err := v2.reveal(raw); err == nil {
		t.Error("Expected decryption failure with a different vault key")
	}
}

func TestDeleteEntry(t *testing.T) {
	_, v := newVault(t)

	id, err := v.Add("svc", "u", "pw", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := v.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := v.Get(id); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
