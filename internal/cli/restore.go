package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/savekeeper/internal/backup"
)

var restoreID string

var restoreCmd = &cobra.Command{
	Use:   "restore <slot>",
	Short: "Bring a backup back as the slot's primary save",
	Long: `Restore copies a backup over the slot's primary save. The current
primary, if present, is snapshotted to a fresh backup first. Without --id the
newest backup is restored; --id "" selects a bare ".bak" copy.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := findSlot(args[0])
		if err != nil {
			return err
		}

		id := restoreID
		if !cmd.Flags().Changed("id") {
			latest, ok := backup.Latest(slot)
			if !ok {
				return fmt.Errorf("restore slot %q: %w", slot.Tag, backup.ErrNoBackups)
			}
			id = latest.Name.BackupID
		}

		steps, err := backup.PlanRestore(slot, id)
		if err != nil {
			return err
		}

		if cfg.DryRun {
			for _, s := range steps {
				logger.Info("dry run: would copy",
					"from", filepath.Base(s.Source), "to", filepath.Base(s.Dest))
			}
			return nil
		}
		if err := backup.ExecuteAll(steps); err != nil {
			return err
		}
		logger.Info("restored", "slot", slot.Tag, "from", filepath.Base(steps[len(steps)-1].Source))
		return nil
	},
}

func init() {
	restoreCmd.Flags().StringVar(&restoreID, "id", "", "backup id to restore (default: newest)")
	rootCmd.AddCommand(restoreCmd)
}
