package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tinkerbox/internal/logging"
)

// Note is a row in the notes table.
type Note struct {
	ID        int64
	Title     string
	Content   string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateNote inserts a note and returns its id.
func (s *LocalStore) CreateNote(title, content, category string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(title) == "" {
		return 0, fmt.Errorf("note title required")
	}
	if category == "" {
		category = "General"
	}

	res, err := s.db.Exec(
		"INSERT INTO notes (title, content, category) VALUES (?, ?, ?)",
		title, content, category,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create note: %w", err)
	}
	id, _ := res.LastInsertId()
	logging.StoreDebug("Created note %d (%s)", id, category)
	return id, nil
}

// GetNote fetches a note by id.
func (s *LocalStore) GetNote(id int64) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		"SELECT id, title, content, category, created_at, updated_at FROM notes WHERE id = ?", id)
	return scanNote(row)
}

// UpdateNote updates any non-empty field of a note. Empty strings leave the
// stored value untouched, matching the edit flow of the notes app.
func (s *LocalStore) UpdateNote(id int64, title, content, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		`UPDATE notes SET
			title = COALESCE(NULLIF(?, ''), title),
			content = COALESCE(NULLIF(?, ''), content),
			category = COALESCE(NULLIF(?, ''), category),
			updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		title, content, category, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteNote removes a note by id.
func (s *LocalStore) DeleteNote(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return nil
}

// SearchNotes matches term against title and content, case-insensitively.
// An empty term returns all notes, newest first.
func (s *LocalStore) SearchNotes(term string) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pattern := "%" + strings.TrimSpace(term) + "%"
	rows, err := s.db.Query(
		`SELECT id, title, content, category, created_at, updated_at
		 FROM notes
		 WHERE title LIKE ? OR content LIKE ?
		 ORDER BY updated_at DESC`,
		pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}
	defer rows.Close()
	return collectNotes(rows)
}

// NotesByCategory returns notes in the given category, newest first.
func (s *LocalStore) NotesByCategory(category string) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, title, content, category, created_at, updated_at
		 FROM notes WHERE category = ? ORDER BY updated_at DESC`,
		category,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()
	return collectNotes(rows)
}

// NoteCategories returns the distinct categories with note counts.
func (s *LocalStore) NoteCategories() (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT category, COUNT(*) FROM notes GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			continue
		}
		counts[cat] = n
	}
	return counts, rows.Err()
}

func scanNote(row *sql.Row) (Note, error) {
	var n Note
	var created, updated string
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &created, &updated)
	if err == sql.ErrNoRows {
		return n, ErrNotFound
	}
	if err != nil {
		return n, fmt.Errorf("failed to scan note: %w", err)
	}
	n.CreatedAt = parseTimestamp(created)
	n.UpdatedAt = parseTimestamp(updated)
	return n, nil
}

func collectNotes(rows *sql.Rows) ([]Note, error) {
	var notes []Note
	for rows.Next() {
		var n Note
		var created, updated string
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		n.CreatedAt = parseTimestamp(created)
		n.UpdatedAt = parseTimestamp(updated)
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
