package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/savekeeper/internal/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup <slot>",
	Short: "Copy a slot's save to its next numbered backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		slot, err := findSlot(args[0])
		if err != nil {
			return err
		}

		step, err := backup.PlanBackup(slot)
		if err != nil {
			return err
		}

		if cfg.DryRun {
			logger.Info("dry run: would copy",
				"from", filepath.Base(step.Source), "to", filepath.Base(step.Dest))
			return nil
		}
		if err := backup.Execute(step); err != nil {
			return err
		}
		logger.Info("backup created", "file", filepath.Base(step.Dest))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
