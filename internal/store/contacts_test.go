package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestContactCRUD(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddContact(Contact{Name: "Ada Lovelace", Phone: "555-0001", Email: "ada@example.org"})
	if err != nil {
		t.Fatalf("AddContact failed: %v", err)
	}

	c, err := s.GetContact(id)
	if err != nil {
		t.Fatalf("GetContact failed: %v", err)
	}
	if c.Name != "Ada Lovelace" {
		t.Errorf("Unexpected name %q", c.Name)
	}

	if err := s.UpdateContact(id, Contact{Address: "12 Analytical Way"}); err != nil {
		t.Fatalf("UpdateContact failed: %v", err)
	}
	c, _ = s.GetContact(id)
	if c.Address != "12 Analytical Way" {
		t.Errorf("Address not updated: %q", c.Address)
	}
	if c.Phone != "555-0001" {
		t.Errorf("Phone should be unchanged, got %q", c.Phone)
	}

	if err := s.DeleteContact(id); err != nil {
		t.Fatalf("DeleteContact failed: %v", err)
	}
	if _, err := s.GetContact(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestContactDuplicateRejected(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddContact(Contact{Name: "Bob", Phone: "1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddContact(Contact{Name: "Bob", Phone: "1"}); err == nil {
		t.Error("Expected unique constraint violation for duplicate name+phone")
	}
	// Same name, different phone is fine
	if _, err := s.AddContact(Contact{Name: "Bob", Phone: "2"}); err != nil {
		t.Errorf("Same name with new phone should be allowed: %v", err)
	}
}

func TestSearchContacts(t *testing.T) {
	s := newTestStore(t)

	mustContact(t, s, Contact{Name: "Grace Hopper", Phone: "555-0100", Email: "grace@navy.mil"})
	mustContact(t, s, Contact{Name: "Alan Turing", Phone: "555-0200", Email: "alan@bletchley.uk"})

	hits, err := s.SearchContacts("grace")
	if err != nil {
		t.Fatalf("SearchContacts failed: %v", err)
	}
	if len(hits) != 1 || hits[0].Name != "Grace Hopper" {
		t.Errorf("Unexpected search result: %+v", hits)
	}

	// Phone fragments match too
	hits, _ = s.SearchContacts("0200")
	if len(hits) != 1 || hits[0].Name != "Alan Turing" {
		t.Errorf("Expected phone search hit, got %+v", hits)
	}

	all, _ := s.SearchContacts("")
	if len(all) != 2 {
		t.Errorf("Empty query should return all contacts, got %d", len(all))
	}
	// Sorted by name
	if all[0].Name != "Alan Turing" {
		t.Errorf("Expected alphabetical order, got %q first", all[0].Name)
	}
}

func TestContactExportImport(t *testing.T) {
	s := newTestStore(t)
	mustContact(t, s, Contact{Name: "A", Phone: "1", Email: "a@x.com"})
	mustContact(t, s, Contact{Name: "B", Phone: "2", Email: "b@y.com"})

	file := filepath.Join(t.TempDir(), "contacts.json")
	n, err := s.ExportContacts(file)
	if err != nil {
		t.Fatalf("ExportContacts failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 exported, got %d", n)
	}

	// Import into a fresh store
	s2 := newTestStore(t)
	mustContact(t, s2, Contact{Name: "A", Phone: "1"}) // collides with export

	imported, skipped, err := s2.ImportContacts(file)
	if err != nil {
		t.Fatalf("ImportContacts failed: %v", err)
	}
	if imported != 1 || skipped != 1 {
		t.Errorf("Expected 1 imported / 1 skipped, got %d / %d", imported, skipped)
	}

	all, _ := s2.SearchContacts("")
	if len(all) != 2 {
		t.Errorf("Expected 2 contacts after import, got %d", len(all))
	}
}

func TestContactStatistics(t *testing.T) {
	s := newTestStore(t)
	mustContact(t, s, Contact{Name: "A", Phone: "1", Email: "a@example.org", Address: "here"})
	mustContact(t, s, Contact{Name: "B", Phone: "2", Email: "b@example.org"})
	mustContact(t, s, Contact{Name: "C", Phone: "3"})

	stats, err := s.ContactStatistics()
	if err != nil {
		t.Fatalf("ContactStatistics failed: %v", err)
	}
	if stats.Total != 3 || stats.WithEmail != 2 || stats.WithAddress != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.EmailDomains["example.org"] != 2 {
		t.Errorf("Unexpected domain counts: %v", stats.EmailDomains)
	}
}

func mustContact(t *testing.T, s *LocalStore, c Contact) int64 {
	t.Helper()
	id, err := s.AddContact(c)
	if err != nil {
		t.Fatalf("AddContact failed: %v", err)
	}
	return id
}
