package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/savekeeper/internal/savename"
	"github.com/backmassage/savekeeper/internal/vault"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report files in the saves directory that do not match the naming scheme",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, skipped, err := vault.Discover(cfg.SavesDir)
		if err != nil {
			return fmt.Errorf("scan saves: %w", err)
		}
		if len(skipped) == 0 {
			logger.Info("all file names conform", "dir", cfg.SavesDir)
			return nil
		}

		for _, name := range skipped {
			_, perr := savename.Parse(name)
			var pe *savename.ParseError
			if errors.As(perr, &pe) {
				logger.Warn("unrecognized name",
					"file", name, "expected", pe.Expected, "at", pe.Remainder)
			} else {
				logger.Warn("unrecognized name", "file", name)
			}
		}
		return fmt.Errorf("%d file(s) do not match the save naming scheme", len(skipped))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
