package vault

import (
	"sort"
	"strconv"
)

// Slot groups a primary save with its backup copies. Internally tagged files
// form their own slots, distinct from the untagged slot with the same tag.
type Slot struct {
	Tag         string
	InternalTag string
	Primary     *Entry  // nil when only backups remain on disk
	Backups     []Entry // ordered by backup id, bare ".bak" first
}

// BuildInventory groups discovered entries into slots, sorted by internal
// tag then slot tag. Backups within a slot are ordered by numeric id; a bare
// ".bak" marker sorts before every numbered backup.
func BuildInventory(entries []Entry) []Slot {
	type key struct{ internal, tag string }

	byKey := make(map[key]*Slot)
	var order []key
	for _, e := range entries {
		k := key{e.Name.InternalTag, e.Name.Tag}
		s, ok := byKey[k]
		if !ok {
			s = &Slot{Tag: e.Name.Tag, InternalTag: e.Name.InternalTag}
			byKey[k] = s
			order = append(order, k)
		}
		if e.Name.Backup {
			s.Backups = append(s.Backups, e)
		} else {
			s.Primary = &e
		}
	}

	slots := make([]Slot, 0, len(order))
	for _, k := range order {
		s := byKey[k]
		sort.SliceStable(s.Backups, func(i, j int) bool {
			return backupOrd(s.Backups[i]) < backupOrd(s.Backups[j])
		})
		slots = append(slots, *s)
	}
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].InternalTag != slots[j].InternalTag {
			return slots[i].InternalTag < slots[j].InternalTag
		}
		return slots[i].Tag < slots[j].Tag
	})
	return slots
}

// FindSlot returns the untagged slot with the given tag.
func FindSlot(slots []Slot, tag string) (Slot, bool) {
	for _, s := range slots {
		if s.Tag == tag && s.InternalTag == "" {
			return s, true
		}
	}
	return Slot{}, false
}

// backupOrd maps a backup entry to its ordering key. The bare ".bak" marker
// counts as -1 so it sorts before ".bak0".
func backupOrd(e Entry) int {
	if e.Name.BackupID == "" {
		return -1
	}
	n, err := strconv.Atoi(e.Name.BackupID)
	if err != nil {
		return -1
	}
	return n
}
