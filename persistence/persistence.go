// Package persistence stores VDF artifacts (setups, challenges and solutions) as JSON files.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/spacemeshos/vdf/shared"
)

const ownerReadWrite = 0o600

var ErrFileMissing = errors.New("file is missing")

// Save writes v as JSON to filename. The file is first written next to its final location and then
// moved into place, so readers never observe a partially written file.
func Save(filename string, v any) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	tmp, err := os.OpenFile(fmt.Sprintf("%s.tmp", filename), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, ownerReadWrite)
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	defer tmp.Close()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close tmp file %s: %w", tmp.Name(), err)
	}

	if err := atomic.ReplaceFile(tmp.Name(), filename); err != nil {
		return fmt.Errorf("atomic replace: %w", err)
	}
	return nil
}

// Load decodes the JSON file filename into v. A missing file is reported as ErrFileMissing.
func Load(filename string, v any) error {
	data, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrFileMissing, filename)
	case err != nil:
		return fmt.Errorf("read %s: %w", filename, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filename, err)
	}
	return nil
}

func SaveSetup(filename string, setup shared.SetupForVDF) error {
	if err := setup.Validate(); err != nil {
		return err
	}
	return Save(filename, setup)
}

func LoadSetup(filename string) (shared.SetupForVDF, error) {
	var setup shared.SetupForVDF
	if err := Load(filename, &setup); err != nil {
		return shared.SetupForVDF{}, err
	}
	return setup, nil
}

func SaveChallenge(filename string, unsolved shared.UnsolvedVDF) error {
	if err := unsolved.Validate(); err != nil {
		return err
	}
	return Save(filename, unsolved)
}

func LoadChallenge(filename string) (shared.UnsolvedVDF, error) {
	var unsolved shared.UnsolvedVDF
	if err := Load(filename, &unsolved); err != nil {
		return shared.UnsolvedVDF{}, err
	}
	return unsolved, nil
}

func SaveSolution(filename string, solved shared.SolvedVDF) error {
	if err := solved.Instance.Validate(); err != nil {
		return err
	}
	return Save(filename, solved)
}

func LoadSolution(filename string) (shared.SolvedVDF, error) {
	var solved shared.SolvedVDF
	if err := Load(filename, &solved); err != nil {
		return shared.SolvedVDF{}, err
	}
	return solved, nil
}
