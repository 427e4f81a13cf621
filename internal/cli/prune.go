package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/savekeeper/internal/backup"
)

var pruneKeep int

var pruneCmd = &cobra.Command{
	Use:   "prune <slot>",
	Short: "Delete a slot's oldest backups, keeping the newest N",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := findSlot(args[0])
		if err != nil {
			return err
		}

		keep := cfg.KeepBackups
		if cmd.Flags().Changed("keep") {
			keep = pruneKeep
		}

		doomed, err := backup.PlanPrune(slot, keep)
		if err != nil {
			return err
		}
		if len(doomed) == 0 {
			logger.Info("nothing to prune", "slot", slot.Tag, "backups", len(slot.Backups))
			return nil
		}

		if cfg.DryRun {
			for _, p := range doomed {
				logger.Info("dry run: would delete", "file", filepath.Base(p))
			}
			return nil
		}
		if err := backup.Remove(doomed); err != nil {
			return err
		}
		logger.Info("pruned", "slot", slot.Tag, "deleted", len(doomed), "kept", keep)
		return nil
	},
}

func init() {
	pruneCmd.Flags().IntVar(&pruneKeep, "keep", 5, "number of newest backups to keep")
	rootCmd.AddCommand(pruneCmd)
}
