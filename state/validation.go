package state

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
)

var namePattern, _ = regexp.Compile("^[0-9A-Za-z._][0-9A-Za-z._-]*$")

func PathValidator(s string) error {
	_, err := os.Stat(path.Dir(s))
	if err != nil {
		return err
	}
	_, err = filepath.Abs(s)
	return err
}

// InputValidator checks that s names a readable regular file
func InputValidator(s string) error {
	info, err := os.Stat(s)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", s)
	}
	return nil
}

func NameValidator(s string) error {
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%s is not a valid node id, must match pattern %s", s, namePattern.String())
	}
	if len(s) > 100 {
		return fmt.Errorf("len(\"%s\") = %d > 100 is too long", s, len(s))
	}
	return nil
}

func TieBreakValidator(tb TieBreak) error {
	if !slices.Contains(TieBreaks, tb) {
		return fmt.Errorf("unknown tie break policy %q, expected one of %v", tb, TieBreaks)
	}
	return nil
}

func SimConfigValidator(cfg *SimCfg) error {
	var errs []error
	for _, p := range []string{cfg.TopologyPath, cfg.MessagesPath, cfg.ChangesPath} {
		if p == "" {
			errs = append(errs, errors.New("topology, messages and changes paths are required"))
			break
		}
		if err := InputValidator(p); err != nil {
			errs = append(errs, err)
		}
	}
	if err := PathValidator(cfg.OutputPath); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}
	if cfg.LogPath != "" {
		if err := PathValidator(cfg.LogPath); err != nil {
			errs = append(errs, fmt.Errorf("log: %w", err))
		}
	}
	if err := TieBreakValidator(cfg.TieBreak); err != nil {
		errs = append(errs, err)
	}
	if cfg.MaxSweeps < 0 {
		errs = append(errs, fmt.Errorf("max_sweeps must not be negative, got %d", cfg.MaxSweeps))
	}
	return errors.Join(errs...)
}
