// Package vault implements the password manager on top of the store.
// Entries are sealed with AES-256-GCM; the key is derived from the master
// password with scrypt. A verifier blob detects a wrong master password
// without touching any entry.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"tinkerbox/internal/logging"
	"tinkerbox/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
)

// ErrWrongPassword is returned when the master password does not match.
var ErrWrongPassword = errors.New("wrong master password")

// ErrNotInitialized is returned when the vault has no metadata yet.
var ErrNotInitialized = errors.New("vault not initialized; run vault init")

const (
	saltSize = 16
	keySize  = 32
	scryptR  = 8
	scryptP  = 1

	// verifierPlain is sealed at init and opened on every unlock.
	verifierPlain = "tinkerbox-vault-v1"
)

// Vault is an unlocked password vault.
type Vault struct {
	st  *store.LocalStore
	key []byte
}

// Entry is a decryptable vault entry. Password is empty until Reveal.
type Entry struct {
	ID       string
	Service  string
	Username string
	Password string
	Website  string
	Notes    string
}

// Init creates vault metadata with a fresh salt and verifier. Fails if the
// vault already exists.
func Init(st *store.LocalStore, master string, scryptN int) error {
	if len(master) < 4 {
		return fmt.Errorf("master password too short (minimum 4 characters)")
	}
	if _, err := st.GetVaultMeta(); err == nil {
		return fmt.Errorf("vault already initialized")
	}
	if scryptN <= 0 {
		scryptN = 32768
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := deriveKey(master, salt, scryptN)
	if err != nil {
		return err
	}

	nonce, sealed, err := seal(key, []byte(verifierPlain))
	if err != nil {
		return fmt.Errorf("failed to create verifier: %w", err)
	}

	meta := store.VaultMeta{Salt: salt, Verifier: sealed, VerifierNonce: nonce, ScryptN: scryptN}
	if err := st.InitVaultMeta(meta); err != nil {
		return err
	}

	logging.Vault("Vault initialized (scrypt N=%d)", scryptN)
	return nil
}

// Open unlocks the vault with the master password.
func Open(st *store.LocalStore, master string) (*Vault, error) {
	meta, err := st.GetVaultMeta()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotInitialized
		}
		return nil, err
	}

	key, err := deriveKey(master, meta.Salt, meta.ScryptN)
	if err != nil {
		return nil, err
	}

	plain, err := open(key, meta.VerifierNonce, meta.Verifier)
	if err != nil || string(plain) != verifierPlain {
		return nil, ErrWrongPassword
	}

	return &Vault{st: st, key: key}, nil
}

// Add seals a password and stores the entry, returning its id.
func (v *Vault) Add(service, username, password, website, notes string) (string, error) {
	if strings.TrimSpace(service) == "" {
		return "", fmt.Errorf("service required")
	}
	if password == "" {
		return "", fmt.Errorf("password required")
	}

	nonce, sealed, err := seal(v.key, []byte(password))
	if err != nil {
		return "", fmt.Errorf("failed to seal password: %w", err)
	}

	id := uuid.NewString()
	entry := store.VaultEntry{
		ID:         id,
		Service:    service,
		Username:   username,
		Ciphertext: sealed,
		Nonce:      nonce,
		Website:    website,
		Notes:      notes,
	}
	if err := v.st.PutVaultEntry(entry); err != nil {
		return "", err
	}
	return id, nil
}

// Get fetches and decrypts one entry.
func (v *Vault) Get(id string) (Entry, error) {
	raw, err := v.st.GetVaultEntry(id)
	if err != nil {
		return Entry{}, err
	}
	return v.reveal(raw)
}

// Search returns matching entries without decrypting passwords.
func (v *Vault) Search(query string) ([]Entry, error) {
	raws, err := v.st.SearchVaultEntries(query)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(raws))
	for _, r := range raws {
		entries = append(entries, Entry{
			ID:       r.ID,
			Service:  r.Service,
			Username: r.Username,
			Website:  r.Website,
			Notes:    r.Notes,
		})
	}
	return entries, nil
}

// Delete removes an entry.
func (v *Vault) Delete(id string) error {
	return v.st.DeleteVaultEntry(id)
}

func (v *Vault) reveal(raw store.VaultEntry) (Entry, error) {
	plain, err := open(v.key, raw.Nonce, raw.Ciphertext)
	if err != nil {
		// Corrupt row or foreign key material; never return partial plaintext
		return Entry{}, fmt.Errorf("failed to decrypt entry %s: %w", raw.ID, err)
	}
	return Entry{
		ID:       raw.ID,
		Service:  raw.Service,
		Username: raw.Username,
		Password: string(plain),
		Website:  raw.Website,
		Notes:    raw.Notes,
	}, nil
}

func deriveKey(master string, salt []byte, n int) ([]byte, error) {
	key, err := scrypt.Key([]byte(master), salt, n, scryptR, scryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("key derivation failed: %w", err)
	}
	return key, nil
}

func seal(key, plaintext []byte) (nonce, ciphertext []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}
	nonce = make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}
	return nonce, gcm.Seal(nil, nonce, plaintext, nil), nil
}

func open(key, nonce, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return gcm.Open(nil, nonce, ciphertext, nil)
}
