package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/savekeeper/internal/config"
	"github.com/backmassage/savekeeper/internal/logging"
)

func setupSaves(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("savedata"), 0644))
	}
	cfg = config.Default()
	cfg.SavesDir = dir
	logger = logging.New(false, true)
	return dir
}

func TestLoadSlots(t *testing.T) {
	setupSaves(t, "user1.dat", "user1.dat.bak2", "notes.txt")

	slots, skipped, err := loadSlots()
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "1", slots[0].Tag)
	assert.Len(t, slots[0].Backups, 1)
	assert.Equal(t, []string{"notes.txt"}, skipped)
}

func TestFindSlotMissing(t *testing.T) {
	setupSaves(t, "user1.dat")

	_, err := findSlot("7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"7"`)
}

func TestBackupCommandEndToEnd(t *testing.T) {
	dir := setupSaves(t, "user3.dat")

	slot, err := findSlot("3")
	require.NoError(t, err)
	assert.NotNil(t, slot.Primary)

	require.NoError(t, backupCmd.RunE(backupCmd, []string{"3"}))

	_, statErr := os.Stat(filepath.Join(dir, "user3.dat.bak0"))
	require.NoError(t, statErr)
}
