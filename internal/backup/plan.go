// Package backup plans and executes save backup, restore, and prune
// operations. Planning is pure — it turns a slot into copy steps with
// destination names built by the save-name formatter — so dry runs and tests
// can inspect exactly what would happen without touching the filesystem.
package backup

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/backmassage/savekeeper/internal/vault"
)

// ErrNoPrimary is returned when an operation needs a slot's primary save and
// only backups remain on disk.
var ErrNoPrimary = errors.New("slot has no primary save")

// ErrNoBackups is returned when a restore or prune finds nothing to work on.
var ErrNoBackups = errors.New("slot has no backups")

// Step is a single planned file copy. Overwrite is set only for restore
// targets; backup destinations must never exist yet.
type Step struct {
	Source    string
	Dest      string
	Overwrite bool
}

// NextID returns the next free numeric backup id for a slot: one past the
// highest id on disk. A bare ".bak" counts as id 0 for this purpose, so a
// slot whose only backup is "user2.dat.bak" gets 1.
func NextID(s vault.Slot) int {
	next := 0
	for _, b := range s.Backups {
		id := 0
		if b.Name.BackupID != "" {
			id, _ = strconv.Atoi(b.Name.BackupID)
		}
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// PlanBackup plans copying the slot's primary save to its next free backup
// name, in the same directory.
func PlanBackup(s vault.Slot) (Step, error) {
	if s.Primary == nil {
		return Step{}, fmt.Errorf("backup slot %q: %w", s.Tag, ErrNoPrimary)
	}

	dest := s.Primary.Name
	dest.Backup = true
	dest.BackupID = strconv.Itoa(NextID(s))

	return Step{
		Source: s.Primary.Path,
		Dest:   filepath.Join(filepath.Dir(s.Primary.Path), dest.String()),
	}, nil
}

// PlanRestore plans bringing the backup with the given id back as the slot's
// primary save. When the slot still has a primary, it is first snapshotted
// to the next free backup id so a bad restore loses nothing. id "" selects
// the bare ".bak" copy.
func PlanRestore(s vault.Slot, id string) ([]Step, error) {
	if len(s.Backups) == 0 {
		return nil, fmt.Errorf("restore slot %q: %w", s.Tag, ErrNoBackups)
	}

	var chosen *vault.Entry
	for i := range s.Backups {
		if s.Backups[i].Name.BackupID == id {
			chosen = &s.Backups[i]
			break
		}
	}
	if chosen == nil {
		return nil, fmt.Errorf("restore slot %q: no backup with id %q", s.Tag, id)
	}

	primaryName := chosen.Name
	primaryName.Backup = false
	primaryName.BackupID = ""
	primaryPath := filepath.Join(filepath.Dir(chosen.Path), primaryName.String())

	var steps []Step
	if s.Primary != nil {
		snap, err := PlanBackup(s)
		if err != nil {
			return nil, err
		}
		steps = append(steps, snap)
	}
	steps = append(steps, Step{
		Source:    chosen.Path,
		Dest:      primaryPath,
		Overwrite: true,
	})
	return steps, nil
}

// PlanPrune returns the paths of backups to delete, keeping the keep newest
// (highest-id) backups of the slot. The bare ".bak" copy counts as the
// oldest. keep <= 0 deletes every backup.
func PlanPrune(s vault.Slot, keep int) ([]string, error) {
	if len(s.Backups) == 0 {
		return nil, fmt.Errorf("prune slot %q: %w", s.Tag, ErrNoBackups)
	}
	if keep < 0 {
		keep = 0
	}
	if len(s.Backups) <= keep {
		return nil, nil
	}

	var doomed []string
	for _, b := range s.Backups[:len(s.Backups)-keep] {
		doomed = append(doomed, b.Path)
	}
	return doomed, nil
}

// Latest returns the newest backup of a slot, relying on the inventory's
// id ordering.
func Latest(s vault.Slot) (vault.Entry, bool) {
	if len(s.Backups) == 0 {
		return vault.Entry{}, false
	}
	return s.Backups[len(s.Backups)-1], true
}
