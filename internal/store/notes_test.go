package store

import (
	"errors"
	"testing"
)

func TestNoteCRUD(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateNote("Shopping", "milk, eggs", "Personal")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	note, err := s.GetNote(id)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if note.Category != "Personal" {
		t.Errorf("Unexpected category %q", note.Category)
	}

	// Empty fields keep old values
	if err := s.UpdateNote(id, "", "milk, eggs, bread", ""); err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	note, _ = s.GetNote(id)
	if note.Title != "Shopping" {
		t.Errorf("Title should be unchanged, got %q", note.Title)
	}
	if note.Content != "milk, eggs, bread" {
		t.Errorf("Content not updated: %q", note.Content)
	}

	if err := s.DeleteNote(id); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	if _, err := s.GetNote(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := s.DeleteNote(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on double delete, got %v", err)
	}
}

func TestNoteDefaultCategory(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateNote("untitled category", "x", "")
	if err != nil {
		t.Fatal(err)
	}
	note, _ := s.GetNote(id)
	if note.Category != "General" {
		t.Errorf("Expected default category General, got %q", note.Category)
	}
}

func TestSearchNotes(t *testing.T) {
	s := newTestStore(t)

	mustNote(t, s, "Go tips", "use gofmt", "Work")
	mustNote(t, s, "Dinner ideas", "tacos with gofmt sauce", "Personal")
	mustNote(t, s, "Unrelated", "nothing here", "Personal")

	hits, err := s.SearchNotes("gofmt")
	if err != nil {
		t.Fatalf("SearchNotes failed: %v", err)
	}
	if len(hits) != 2 {
		t.Errorf("Expected 2 hits, got %d", len(hits))
	}

	// Empty term returns everything
	all, err := s.SearchNotes("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 notes, got %d", len(all))
	}

	personal, err := s.NotesByCategory("Personal")
	if err != nil {
		t.Fatal(err)
	}
	if len(personal) != 2 {
		t.Errorf("Expected 2 personal notes, got %d", len(personal))
	}

	counts, err := s.NoteCategories()
	if err != nil {
		t.Fatal(err)
	}
	if counts["Personal"] != 2 || counts["Work"] != 1 {
		t.Errorf("Unexpected category counts: %v", counts)
	}
}

func mustNote(t *testing.T, s *LocalStore, title, content, category string) int64 {
	t.Helper()
	id, err := s.CreateNote(title, content, category)
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	return id
}
