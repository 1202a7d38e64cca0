package mint

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// RecordStore persists the per-(contract, wallet) mint flag.
//
// This is a local substitute for authoritative on-chain mint status: another
// device or wallet instance will not see it, and the design accepts that.
// A production system replaces it with a contract-state read. Once a key is
// marked minted it is never unset.
type RecordStore interface {
	Minted(contract, address string) (bool, error)
	MarkMinted(contract, address string) error
}

// recordKey namespaces the flag by contract and wallet address.
func recordKey(contract, address string) string {
	return strings.ToLower(contract) + ":" + strings.ToLower(address)
}

// --- JSON file store ---

// FileRecordStore keeps mint records in a JSON file. Concurrent writers
// (two processes) are not coordinated; last write wins.
type FileRecordStore struct {
	path string
}

// NewFileRecordStore creates a file-backed record store.
func NewFileRecordStore(path string) *FileRecordStore {
	return &FileRecordStore{path: path}
}

func (s *FileRecordStore) Minted(contract, address string) (bool, error) {
	m, err := s.load()
	if err != nil {
		return false, err
	}
	return m[recordKey(contract, address)], nil
}

func (s *FileRecordStore) MarkMinted(contract, address string) error {
	m, err := s.load()
	if err != nil {
		return err
	}
	m[recordKey(contract, address)] = true
	return s.save(m)
}

func (s *FileRecordStore) load() (map[string]bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string]bool), nil
	}
	if err != nil {
		return nil, err
	}
	var m map[string]bool
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]bool)
	}
	return m, nil
}

func (s *FileRecordStore) save(m map[string]bool) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// --- in-memory store ---

// MemRecordStore is an in-memory record store for tests.
type MemRecordStore struct {
	m map[string]bool
}

// NewMemRecordStore creates an empty in-memory record store.
func NewMemRecordStore() *MemRecordStore {
	return &MemRecordStore{m: make(map[string]bool)}
}

func (s *MemRecordStore) Minted(contract, address string) (bool, error) {
	return s.m[recordKey(contract, address)], nil
}

func (s *MemRecordStore) MarkMinted(contract, address string) error {
	s.m[recordKey(contract, address)] = true
	return nil
}
