package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NewDir returns a record store backed by a directory of JSON files.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

type Dir struct {
	path string
}

// Write stores one record as <keyword>_<playlist id>.json, creating the
// directory if necessary.
func (d *Dir) Write(keyword string, rec *Record) error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("error creating record dir '%s': %w", d.path, err)
	}

	bs, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("error encoding record '%s': %w", rec.PlaylistID, err)
	}

	filename := filepath.Join(d.path, fmt.Sprintf("%s_%s.json", keyword, rec.PlaylistID))
	if err := os.WriteFile(filename, bs, 0o666); err != nil {
		return fmt.Errorf("error writing record '%s': %w", filename, err)
	}

	return nil
}

// Each reads every *.json file in the directory. os.ReadDir returns entries
// sorted by filename, which keeps first-seen ordering downstream stable
// across filesystems.
func (d *Dir) Each(fn func(*Record) error) error {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return fmt.Errorf("error listing record dir '%s': %w", d.path, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		filename := filepath.Join(d.path, entry.Name())
		bs, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("error reading record '%s': %w", filename, err)
		}

		var rec Record
		if err := json.Unmarshal(bs, &rec); err != nil {
			return fmt.Errorf("error decoding record '%s': %w", filename, err)
		}

		if err := fn(&rec); err != nil {
			return err
		}
	}

	return nil
}
