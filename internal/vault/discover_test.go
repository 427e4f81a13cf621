package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("savedata"), 0644))
	return path
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "user2.dat.bak1")
	writeFile(t, dir, "user1.dat")
	writeFile(t, dir, "user2.dat")
	writeFile(t, dir, "__pin__user4_1.0.28650.dat")
	writeFile(t, dir, "settings.json")
	writeFile(t, dir, "user9.sav")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "user3.dat"), 0755))

	entries, skipped, err := Discover(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, filepath.Base(e.Path))
	}
	assert.Equal(t, []string{
		"__pin__user4_1.0.28650.dat",
		"user1.dat",
		"user2.dat",
		"user2.dat.bak1",
	}, names)
	assert.Equal(t, []string{"settings.json", "user9.sav"}, skipped)
}

func TestDiscoverParsesFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "user4_1.0.28650.dat.bak13")

	entries, skipped, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, skipped)

	n := entries[0].Name
	assert.Equal(t, "4", n.Tag)
	assert.Equal(t, "1.0.28650", n.Version)
	assert.Equal(t, "13", n.BackupID)
	assert.True(t, n.Backup)
}

func TestDiscoverMissingDir(t *testing.T) {
	_, _, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
