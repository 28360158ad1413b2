package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"tinkerbox/internal/logging"
)

// Contact is a row in the contacts table. Name+phone is unique.
type Contact struct {
	ID        int64     `json:"id,omitempty"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// AddContact inserts a contact and returns its id. A duplicate name+phone
// pair is rejected by the unique constraint.
func (s *LocalStore) AddContact(c Contact) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addContactLocked(c)
}

func (s *LocalStore) addContactLocked(c Contact) (int64, error) {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Phone) == "" {
		return 0, fmt.Errorf("contact name and phone required")
	}

	res, err := s.db.Exec(
		"INSERT INTO contacts (name, phone, email, address, notes) VALUES (?, ?, ?, ?, ?)",
		c.Name, c.Phone, c.Email, c.Address, c.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add contact: %w", err)
	}
	id, _ := res.LastInsertId()
	logging.StoreDebug("Added contact %d: %s", id, c.Name)
	return id, nil
}

// GetContact fetches a contact by id.
func (s *LocalStore) GetContact(id int64) (Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		`SELECT id, name, phone, email, address, notes, created_at, updated_at
		 FROM contacts WHERE id = ?`, id)
	return scanContact(row)
}

// SearchContacts matches the query against name, phone and email. An empty
// query returns every contact, sorted by name.
func (s *LocalStore) SearchContacts(query string) ([]Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pattern := "%" + strings.TrimSpace(query) + "%"
	rows, err := s.db.Query(
		`SELECT id, name, phone, email, address, notes, created_at, updated_at
		 FROM contacts
		 WHERE name LIKE ? OR phone LIKE ? OR email LIKE ?
		 ORDER BY name COLLATE NOCASE`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}
	defer rows.Close()
	return collectContacts(rows)
}

// UpdateContact overwrites the mutable fields of a contact. Empty strings
// leave the stored value untouched.
func (s *LocalStore) UpdateContact(id int64, c Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		`UPDATE contacts SET
			name = COALESCE(NULLIF(?, ''), name),
			phone = COALESCE(NULLIF(?, ''), phone),
			email = COALESCE(NULLIF(?, ''), email),
			address = COALESCE(NULLIF(?, ''), address),
			notes = COALESCE(NULLIF(?, ''), notes),
			updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		c.Name, c.Phone, c.Email, c.Address, c.Notes, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("contact %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteContact removes a contact by id.
func (s *LocalStore) DeleteContact(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("contact %d: %w", id, ErrNotFound)
	}
	return nil
}

// ExportContacts writes all contacts to a JSON file.
func (s *LocalStore) ExportContacts(filename string) (int, error) {
	contacts, err := s.SearchContacts("")
	if err != nil {
		return 0, err
	}

	data, err := json.MarshalIndent(contacts, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal contacts: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write export: %w", err)
	}

	logging.Store("Exported %d contacts to %s", len(contacts), filename)
	return len(contacts), nil
}

// ImportContacts reads contacts from a JSON file inside one transaction.
// Duplicates (same name+phone) are skipped; the skip count is reported.
func (s *LocalStore) ImportContacts(filename string) (imported, skipped int, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read import file: %w", err)
	}

	var contacts []Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return 0, 0, fmt.Errorf("failed to parse import file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	for _, c := range contacts {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Phone) == "" {
			skipped++
			continue
		}
		res, err := tx.Exec(
			"INSERT OR IGNORE INTO contacts (name, phone, email, address, notes) VALUES (?, ?, ?, ?, ?)",
			c.Name, c.Phone, c.Email, c.Address, c.Notes,
		)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to import %q: %w", c.Name, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			skipped++
		} else {
			imported++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit import: %w", err)
	}

	logging.Store("Imported %d contacts (%d skipped) from %s", imported, skipped, filename)
	return imported, skipped, nil
}

// ContactStats summarizes the contacts table.
type ContactStats struct {
	Total        int
	WithEmail    int
	WithAddress  int
	EmailDomains map[string]int
}

// ContactStatistics aggregates completeness and email-domain counts.
func (s *LocalStore) ContactStatistics() (ContactStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := ContactStats{EmailDomains: make(map[string]int)}

	row := s.db.QueryRow(
		`SELECT COUNT(*),
		        SUM(CASE WHEN email != '' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN address != '' THEN 1 ELSE 0 END)
		 FROM contacts`)
	var withEmail, withAddress sql.NullInt64
	if err := row.Scan(&stats.Total, &withEmail, &withAddress); err != nil {
		return stats, fmt.Errorf("failed to aggregate contacts: %w", err)
	}
	stats.WithEmail = int(withEmail.Int64)
	stats.WithAddress = int(withAddress.Int64)

	rows, err := s.db.Query(`SELECT email FROM contacts WHERE email != ''`)
	if err != nil {
		return stats, fmt.Errorf("failed to query emails: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			continue
		}
		if at := strings.LastIndex(email, "@"); at >= 0 && at < len(email)-1 {
			stats.EmailDomains[strings.ToLower(email[at+1:])]++
		}
	}
	return stats, rows.Err()
}

func scanContact(row *sql.Row) (Contact, error) {
	var c Contact
	var created, updated string
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Notes, &created, &updated)
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	if err != nil {
		return c, fmt.Errorf("failed to scan contact: %w", err)
	}
	c.CreatedAt = parseTimestamp(created)
	c.UpdatedAt = parseTimestamp(updated)
	return c, nil
}

func collectContacts(rows *sql.Rows) ([]Contact, error) {
	var contacts []Contact
	for rows.Next() {
		var c Contact
		var created, updated string
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Notes, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		c.CreatedAt = parseTimestamp(created)
		c.UpdatedAt = parseTimestamp(updated)
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
