package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"tinkerbox/internal/logging"
)

// sqliteMagic is the 16-byte header every SQLite database starts with.
var sqliteMagic = []byte("SQLite format 3\x00")

// Backup writes a compact copy of the live database to dst using
// VACUUM INTO, which is safe while the database is open.
func (s *LocalStore) Backup(dst string) error {
	timer := logging.StartTimer(logging.CategoryStore, "Backup")
	defer timer.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dbPath == ":memory:" {
		return fmt.Errorf("cannot back up an in-memory database")
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}
	// VACUUM INTO refuses to overwrite
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("backup target %s already exists", dst)
	}

	if _, err := s.db.Exec("VACUUM INTO ?", dst); err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	logging.Store("Backed up database to %s", dst)
	return nil
}

// Restore replaces the live database file with src. The store must be
// reopened afterwards; Restore closes the connection.
func (s *LocalStore) Restore(src string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	if len(data) < len(sqliteMagic) || !bytes.Equal(data[:len(sqliteMagic)], sqliteMagic) {
		return fmt.Errorf("%s is not a SQLite database", src)
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close live database: %w", err)
		}
		s.db = nil
	}

	// Drop WAL leftovers so the restored file is authoritative
	os.Remove(s.dbPath + "-wal")
	os.Remove(s.dbPath + "-shm")

	if err := os.WriteFile(s.dbPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write restored database: %w", err)
	}

	logging.Store("Restored database from %s", src)
	return nil
}
