package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/savekeeper/internal/display"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List save slots with version, backup count, and size",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		slots, skipped, err := loadSlots()
		if err != nil {
			return err
		}
		for _, name := range skipped {
			logger.Debug("skipping non-save file", "name", name)
		}

		rows := make([]display.Row, 0, len(slots))
		for _, s := range slots {
			row := display.Row{
				Slot:        s.Tag,
				InternalTag: s.InternalTag,
				Backups:     len(s.Backups),
				Size:        -1,
			}
			if s.Primary != nil {
				row.Version = s.Primary.Name.Version
				if fi, err := os.Stat(s.Primary.Path); err == nil {
					row.Size = fi.Size()
				}
			}
			rows = append(rows, row)
		}

		fmt.Println(display.RenderInventory(rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
