// Package store loads and saves question banks as JSON files. A bank is a
// flat mapping from chapter name to question list; saves overwrite the
// whole document, so a save at any point reflects every weight mutation
// made in memory up to that point.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/akashpai/quizdrill/internal/quiz"
)

const bankFileName = "bank.json"

// ErrInvalid marks a bank file that exists but fails validation or
// decoding.
var ErrInvalid = errors.New("invalid bank file")

// Read loads and validates the bank at path. Unlike Load it has no
// fallback: a missing or malformed file is an error. The merge and check
// commands use it because silently substituting sample data there would
// corrupt real banks. Questions without a weight field decode with the
// default weight.
func Read(path string) (*quiz.Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}

	if err := ValidateBank(raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}

	b := quiz.NewBank()
	if err := json.Unmarshal(raw, b); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	return b, nil
}

// Load reads and validates the bank at path. A missing or unparseable file
// is never fatal: Load logs a notice, substitutes the seed bank, and
// persists it so the next run finds a real file.
func Load(path string, log *zap.Logger) (*quiz.Bank, error) {
	b, err := Read(path)
	if err == nil {
		return b, nil
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn("bank file not found, creating sample bank",
			zap.String("path", path))
	case errors.Is(err, ErrInvalid):
		log.Warn("bank file invalid, substituting sample bank",
			zap.String("path", path), zap.Error(err))
	default:
		// Unreadable for some other reason (permissions, I/O); seeding
		// over it would be destructive.
		return nil, err
	}
	return seedAndSave(path, log), nil
}

// Save writes the full bank to path, replacing any existing file. The
// write goes through a temp file and rename so a crash mid-save keeps the
// previous document intact.
func Save(path string, b *quiz.Bank) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write bank: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace bank: %w", err)
	}
	return nil
}

func seedAndSave(path string, log *zap.Logger) *quiz.Bank {
	b := SeedBank()
	if err := Save(path, b); err != nil {
		// Still usable in memory; weights just won't survive the run.
		log.Warn("could not persist sample bank", zap.Error(err))
	}
	return b
}

// DefaultBankPath resolves the bank file path in priority order:
// 1. QUIZDRILL_BANK environment variable
// 2. $XDG_DATA_HOME/quizdrill/bank.json
// 3. ~/.local/share/quizdrill/bank.json
func DefaultBankPath() (string, error) {
	if p := os.Getenv("QUIZDRILL_BANK"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizdrill", bankFileName)
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it does not exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
