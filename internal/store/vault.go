package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tinkerbox/internal/logging"
)

// VaultEntry is a row in vault_entries. The password itself only exists as
// AES-GCM ciphertext; sealing and opening live in internal/vault.
type VaultEntry struct {
	ID         string
	Service    string
	Username   string
	Ciphertext []byte
	Nonce      []byte
	Website    string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VaultMeta holds the key-derivation salt and master-password verifier.
type VaultMeta struct {
	Salt          []byte
	Verifier      []byte
	VerifierNonce []byte
	ScryptN       int
}

// InitVaultMeta stores salt and verifier once. A second call fails; the
// vault master password cannot be silently replaced.
func (s *LocalStore) InitVaultMeta(m VaultMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ScryptN <= 0 {
		m.ScryptN = 32768
	}
	_, err := s.db.Exec(
		"INSERT INTO vault_meta (id, salt, verifier, verifier_nonce, scrypt_n) VALUES (1, ?, ?, ?, ?)",
		m.Salt, m.Verifier, m.VerifierNonce, m.ScryptN,
	)
	if err != nil {
		return fmt.Errorf("vault already initialized or insert failed: %w", err)
	}
	logging.Vault("Vault metadata initialized")
	return nil
}

// GetVaultMeta loads the vault metadata. ErrNotFound means the vault has
// not been initialized yet.
func (s *LocalStore) GetVaultMeta() (VaultMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var m VaultMeta
	err := s.db.QueryRow("SELECT salt, verifier, verifier_nonce, scrypt_n FROM vault_meta WHERE id = 1").
		Scan(&m.Salt, &m.Verifier, &m.VerifierNonce, &m.ScryptN)
	if err == sql.ErrNoRows {
		return m, fmt.Errorf("vault not initialized: %w", ErrNotFound)
	}
	if err != nil {
		return m, fmt.Errorf("failed to load vault meta: %w", err)
	}
	return m, nil
}

// PutVaultEntry inserts or replaces an entry by id.
func (s *LocalStore) PutVaultEntry(e VaultEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" || strings.TrimSpace(e.Service) == "" {
		return fmt.Errorf("vault entry id and service required")
	}
	_, err := s.db.Exec(
		`INSERT INTO vault_entries (id, service, username, ciphertext, nonce, website, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			service = excluded.service,
			username = excluded.username,
			ciphertext = excluded.ciphertext,
			nonce = excluded.nonce,
			website = excluded.website,
			notes = excluded.notes,
			updated_at = CURRENT_TIMESTAMP`,
		e.ID, e.Service, e.Username, e.Ciphertext, e.Nonce, e.Website, e.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to store vault entry: %w", err)
	}
	logging.Vault("Stored vault entry for service %s", e.Service)
	return nil
}

// GetVaultEntry fetches one entry by id.
func (s *LocalStore) GetVaultEntry(id string) (VaultEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		`SELECT id, service, username, ciphertext, nonce, website, notes, created_at, updated_at
		 FROM vault_entries WHERE id = ?`, id)
	return scanVaultEntry(row)
}

// SearchVaultEntries matches service, username and website. Empty query
// returns everything, sorted by service.
func (s *LocalStore) SearchVaultEntries(query string) ([]VaultEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pattern := "%" + strings.TrimSpace(query) + "%"
	rows, err := s.db.Query(
		`SELECT id, service, username, ciphertext, nonce, website, notes, created_at, updated_at
		 FROM vault_entries
		 WHERE service LIKE ? OR username LIKE ? OR website LIKE ?
		 ORDER BY service COLLATE NOCASE`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search vault: %w", err)
	}
	defer rows.Close()

	var entries []VaultEntry
	for rows.Next() {
		var e VaultEntry
		var created, updated string
		if err := rows.Scan(&e.ID, &e.Service, &e.Username, &e.Ciphertext, &e.Nonce, &e.Website, &e.Notes, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan vault row: %w", err)
		}
		e.CreatedAt = parseTimestamp(created)
		e.UpdatedAt = parseTimestamp(updated)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteVaultEntry removes an entry by id.
func (s *LocalStore) DeleteVaultEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM vault_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete vault entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("vault entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanVaultEntry(row *sql.Row) (VaultEntry, error) {
	var e VaultEntry
	var created, updated string
	err := row.Scan(&e.ID, &e.Service, &e.Username, &e.Ciphertext, &e.Nonce, &e.Website, &e.Notes, &created, &updated)
	if err == sql.ErrNoRows {
		return e, ErrNotFound
	}
	if err != nil {
		return e, fmt.Errorf("failed to scan vault entry: %w", err)
	}
	e.CreatedAt = parseTimestamp(created)
	e.UpdatedAt = parseTimestamp(updated)
	return e, nil
}
