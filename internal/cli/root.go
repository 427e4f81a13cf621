// Package cli wires the savekeeper command tree: global flags, config
// loading, logger setup, and the subcommands for listing, backing up,
// restoring, pruning, and checking save files.
package cli

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/backmassage/savekeeper/internal/config"
	"github.com/backmassage/savekeeper/internal/logging"
	"github.com/backmassage/savekeeper/internal/vault"
)

// version is shown by --version; override at build time with
// -ldflags "-X .../internal/cli.version=...".
var version = "0.1.0-dev"

var (
	cfg    config.Config
	logger *charmlog.Logger

	flagDir     string
	flagDryRun  bool
	flagVerbose bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:     "savekeeper",
	Short:   "Manage Hollow Knight save files and their backups",
	Version: version,
	Long: `Savekeeper lists, backs up, restores, and prunes Hollow Knight save
files. It understands the game's naming scheme — user2.dat,
user2_1.0.28891.dat, user2.dat.bak3, __pin__user4.dat — and never renames or
deletes a primary save.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.FromEnv()
		if err != nil {
			return err
		}
		if flagDir != "" {
			cfg.SavesDir = config.NormalizeDirArg(flagDir)
		}
		if flagDryRun {
			cfg.DryRun = true
		}
		if flagVerbose {
			cfg.Verbose = true
		}
		if flagNoColor {
			cfg.NoColor = true
		}
		logger = logging.New(cfg.Verbose, cfg.NoColor)
		return cfg.Validate()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagDir, "dir", "d", "", "saves directory (default: the game's save location)")
	pf.BoolVarP(&flagDryRun, "dry-run", "n", false, "plan operations without touching any file")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

// Execute runs the command tree. Errors are logged (or printed, when the
// failure precedes logger setup) and reported via exit code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error(err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "savekeeper: %v\n", err)
		}
		os.Exit(1)
	}
}

// loadSlots scans the saves directory and groups it into slots. Skipped
// (non-conforming) names come back too so commands can surface them.
func loadSlots() ([]vault.Slot, []string, error) {
	entries, skipped, err := vault.Discover(cfg.SavesDir)
	if err != nil {
		return nil, nil, fmt.Errorf("scan saves: %w", err)
	}
	return vault.BuildInventory(entries), skipped, nil
}

// findSlot resolves a slot argument to an untagged slot on disk.
func findSlot(tag string) (vault.Slot, error) {
	slots, _, err := loadSlots()
	if err != nil {
		return vault.Slot{}, err
	}
	s, ok := vault.FindSlot(slots, tag)
	if !ok {
		return vault.Slot{}, fmt.Errorf("no save slot %q in %s", tag, cfg.SavesDir)
	}
	return s, nil
}
