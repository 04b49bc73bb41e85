package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CristovaoMNunes/tmpkeep/internal/tempres"
)

// Purge removes leftover workspaces under the temp root whose names match the
// configured pattern. Unlike exit-time cleanup this reports failures: the
// caller asked for the removal explicitly and can still react.
func (a *App) Purge() error {
	pattern := filepath.Join(a.cfg.TempRoot, a.cfg.PurgePattern)

	matches, err := a.globber.Glob(pattern)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to glob [%s]: %w", pattern, err)
		}
		matches = nil
	}

	if len(matches) == 0 {
		a.logger.Info("No leftover temporary resources found")
		return nil
	}

	a.logger.Infof("===> Purging %d leftover path(s) under [%s]", len(matches), cyan(a.cfg.TempRoot))

	var failed int
	for _, match := range matches {
		if err := tempres.ForceRemove(a.fs, match); err != nil {
			a.logger.Warningf("▶ failed to remove [%s]: %v", yellow(match), err)
			failed++
			continue
		}
		a.logger.Infof("▶ removed [%s]", match)
	}

	if failed > 0 {
		return fmt.Errorf("failed to remove %d path(s)", failed)
	}

	return nil
}
