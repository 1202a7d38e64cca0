package mint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *FileRecordStore {
	t.Helper()
	return NewFileRecordStore(filepath.Join(t.TempDir(), "mints.json"))
}

func TestRecordStoreEmpty(t *testing.T) {
	s := tempStore(t)
	minted, err := s.Minted(testContract, testAddress)
	require.NoError(t, err)
	assert.False(t, minted)
}

func TestRecordStoreMarkAndRead(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.MarkMinted(testContract, testAddress))

	minted, err := s.Minted(testContract, testAddress)
	require.NoError(t, err)
	assert.True(t, minted)
}

func TestRecordStoreKeyIsCaseInsensitive(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.MarkMinted(testContract, testAddress))

	minted, err := s.Minted(
		"0x7BF34DB30E8723C4AEE67B3C8F84A4DB1A30E6C8",
		"0xF39FD6E51AAD88F6F4CE6AB8827279CFFFB92266")
	require.NoError(t, err)
	assert.True(t, minted)
}

func TestRecordStoreScopedPerWallet(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.MarkMinted(testContract, testAddress))

	minted, err := s.Minted(testContract, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	require.NoError(t, err)
	assert.False(t, minted, "another wallet has not minted")
}

func TestRecordStoreMarkIsIdempotent(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.MarkMinted(testContract, testAddress))
	require.NoError(t, s.MarkMinted(testContract, testAddress))

	minted, err := s.Minted(testContract, testAddress)
	require.NoError(t, err)
	assert.True(t, minted)
}

func TestRecordStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mints.json")
	require.NoError(t, NewFileRecordStore(path).MarkMinted(testContract, testAddress))

	minted, err := NewFileRecordStore(path).Minted(testContract, testAddress)
	require.NoError(t, err)
	assert.True(t, minted)
}

func TestRecordStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mints.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := NewFileRecordStore(path).Minted(testContract, testAddress)
	assert.Error(t, err)
}

func TestMemRecordStore(t *testing.T) {
	s := NewMemRecordStore()
	minted, err := s.Minted(testContract, testAddress)
	require.NoError(t, err)
	require.False(t, minted)

	require.NoError(t, s.MarkMinted(testContract, testAddress))
	minted, err = s.Minted(testContract, testAddress)
	require.NoError(t, err)
	assert.True(t, minted)
}
