package wallet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempSessionStore(t *testing.T) *SessionStore {
	t.Helper()
	return NewSessionStore(filepath.Join(t.TempDir(), "mintpad", "session.json"))
}

func TestSessionLoadMissing(t *testing.T) {
	s := tempSessionStore(t)
	sess := s.Load()
	assert.False(t, sess.Connected)
	assert.Empty(t, sess.Address)
}

func TestSessionSaveAndLoad(t *testing.T) {
	s := tempSessionStore(t)
	want := Session{Connected: true, Address: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", ActiveChainID: 8453}
	require.NoError(t, s.Save(want))

	assert.Equal(t, want, s.Load())
}

func TestSessionSaveRestrictsPermissions(t *testing.T) {
	s := tempSessionStore(t)
	require.NoError(t, s.Save(Session{Connected: true}))

	info, err := os.Stat(s.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSessionClear(t *testing.T) {
	s := tempSessionStore(t)
	require.NoError(t, s.Save(Session{Connected: true, ActiveChainID: 8453}))
	require.NoError(t, s.Clear())

	assert.False(t, s.Load().Connected)
	// Clearing an already-clear store is fine.
	require.NoError(t, s.Clear())
}

func TestSessionCorruptFileLoadsDisconnected(t *testing.T) {
	s := tempSessionStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.path), 0o700))
	require.NoError(t, os.WriteFile(s.path, []byte("{broken"), 0o600))

	assert.False(t, s.Load().Connected)
}
