package backup

import (
	"fmt"
	"io"
	"os"
)

// Execute performs one planned copy. Saves are always copied, never renamed,
// so the source stays intact if the write fails partway. A backup
// destination that already exists is an error unless the step says
// Overwrite (restore targets do).
func Execute(step Step) error {
	src, err := os.Open(step.Source)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if !step.Overwrite {
		flags = os.O_CREATE | os.O_WRONLY | os.O_EXCL
	}
	dst, err := os.OpenFile(step.Dest, flags, 0644)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("copy %s: %w", step.Source, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}
	return nil
}

// ExecuteAll runs steps in order, stopping at the first failure.
func ExecuteAll(steps []Step) error {
	for _, s := range steps {
		if err := Execute(s); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the given files, stopping at the first failure.
func Remove(paths []string) error {
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			return fmt.Errorf("remove backup: %w", err)
		}
	}
	return nil
}
