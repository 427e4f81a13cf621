// Package display renders the slot inventory for terminal output.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	slotStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	internalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	missingStyle  = lipgloss.NewStyle().Faint(true)
)

// Row is one inventory line: a slot and what is on disk for it.
type Row struct {
	Slot        string
	InternalTag string
	Version     string
	Backups     int
	Size        int64 // primary save size in bytes; < 0 when no primary exists
}

// RenderInventory renders rows as an aligned table. An empty row set renders
// a single notice line instead.
func RenderInventory(rows []Row) string {
	if len(rows) == 0 {
		return missingStyle.Render("no save files found")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"%-12s %-14s %-10s %8s  %s", "SLOT", "VERSION", "BACKUPS", "SIZE", "")))
	b.WriteString("\n")

	for _, r := range rows {
		slot := slotStyle.Render(fmt.Sprintf("%-12s", r.Slot))
		note := ""
		if r.InternalTag != "" {
			slot = internalStyle.Render(fmt.Sprintf("%-12s", r.Slot))
			note = internalStyle.Render("[" + r.InternalTag + "]")
		}

		version := r.Version
		if version == "" {
			version = "-"
		}
		size := missingStyle.Render("missing")
		if r.Size >= 0 {
			size = FormatBytes(r.Size)
		}

		b.WriteString(fmt.Sprintf("%s %-14s %-10d %8s  %s\n",
			slot, version, r.Backups, size, note))
	}
	return strings.TrimRight(b.String(), "\n")
}
