package savename

import (
	"errors"
	"fmt"
	"strings"
)

// ParsedName holds the structured fields of a save file name. It is a plain
// immutable value: build one with Parse or by field assignment, and turn it
// back into a name with String.
type ParsedName struct {
	Tag         string // slot identifier after the "user" prefix; never empty
	Version     string // dotted numeric producer version; "" when the name has none
	BackupID    string // digits after ".bak"; meaningful only when Backup is set
	Backup      bool   // the name carries a ".bak" marker (an empty id still does)
	InternalTag string // management marker between double underscores; "" when absent
}

// String reconstructs the canonical file name:
//
//	[__<internal>__]user<tag>[_<version>].dat[.bak<id>]
//
// emitting each bracketed segment only when its field is present. It is
// total — every ParsedName formats — though only values passing Validate
// survive a round trip through Parse.
func (p ParsedName) String() string {
	var b strings.Builder
	if p.InternalTag != "" {
		b.WriteString(internalMark)
		b.WriteString(p.InternalTag)
		b.WriteString(internalMark)
	}
	b.WriteString("user")
	b.WriteString(p.Tag)
	if p.Version != "" {
		b.WriteString("_")
		b.WriteString(p.Version)
	}
	b.WriteString(".dat")
	if p.Backup {
		b.WriteString(".bak")
		b.WriteString(p.BackupID)
	}
	return b.String()
}

// Validate checks the invariants that make a ParsedName round-trip cleanly
// through String and Parse: non-empty tag, digit-only backup id, well-formed
// version, and an internal tag that cannot collide with its own delimiter.
//
// The final check reparses the formatted name. The slot tag has no closing
// delimiter, so a tag whose own text satisfies the version+suffix look-ahead
// at the wrong place (say a tag ending in "_1") would reparse with a
// different boundary. Such values are outside the scheme and are rejected
// here rather than silently rewritten.
func (p ParsedName) Validate() error {
	if p.Tag == "" {
		return errors.New("slot tag must not be empty")
	}
	if p.InternalTag != "" && strings.Contains(p.InternalTag, internalMark) {
		return fmt.Errorf("internal tag %q must not contain %q", p.InternalTag, internalMark)
	}
	if p.Version != "" && !validVersion(p.Version) {
		return fmt.Errorf("version %q is not a dotted digit sequence", p.Version)
	}
	if !allDigits(p.BackupID) {
		return fmt.Errorf("backup id %q must be digits only", p.BackupID)
	}
	if p.BackupID != "" && !p.Backup {
		return errors.New("backup id set without backup marker")
	}

	rt, err := Parse(p.String())
	if err != nil {
		return fmt.Errorf("name %q does not reparse: %w", p.String(), err)
	}
	if rt != p {
		return fmt.Errorf("name %q reparses with a different field split", p.String())
	}
	return nil
}

// validVersion reports whether v is one or more non-empty digit groups
// separated by single dots, with nothing left over.
func validVersion(v string) bool {
	version, rest, ok := parseVersion("_" + v)
	return ok && rest == "" && version == v
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
