package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "session.json"))

	sess, err := s.Load()
	require.NoError(t, err)
	assert.False(t, sess.LoggedIn())
}

func TestStore_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	s := NewStore(path)
	assert.Equal(t, path, s.Path())

	in := &Session{Username: "alice", AccessToken: "A", RefreshToken: "R"}
	require.NoError(t, s.Save(in))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.True(t, out.LoggedIn())

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	out, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, &Session{}, out)
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := NewStore(path).Load()
	require.ErrorContains(t, err, "parse session")
}
