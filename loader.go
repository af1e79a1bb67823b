package tracker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultSaveName is the save used when no name is given.
const DefaultSaveName = "default"

const saveExt = ".json"

// ListSaves returns the names of every save file in the directory, sorted by
// name. A missing directory is an empty list, not an error.
func ListSaves(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not read saves directory %q: %w", ErrPersistence, dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), saveExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), saveExt))
	}
	sort.Strings(names)
	return names, nil
}

// ResolveSaveName maps a name-or-index argument to a save name. A positive
// integer is a 1-based index into the ListSaves ordering; anything else is
// taken as a literal name.
func ResolveSaveName(dir, nameOrIndex string) (string, error) {
	idx, err := strconv.Atoi(nameOrIndex)
	if err != nil {
		return nameOrIndex, nil
	}
	names, err := ListSaves(dir)
	if err != nil {
		return "", err
	}
	if idx < 1 || idx > len(names) {
		return "", fmt.Errorf("%w: save index %d out of range, have %d saves", ErrPersistence, idx, len(names))
	}
	return names[idx-1], nil
}

// SaveLedger writes the full ledger snapshot to "<dir>/<name>.json". The
// write goes to a temporary file first and is renamed into place, so a crash
// mid-save leaves the prior snapshot intact.
func SaveLedger(dir, name string, l *Ledger) error {
	if name == "" {
		name = DefaultSaveName
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: invalid save name %q", ErrPersistence, name)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: could not create saves directory %q: %w", ErrPersistence, dir, err)
	}

	tmp, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: could not create temporary save file: %w", ErrPersistence, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := EncodeSnapshot(tmp, l.Snapshot()); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: could not write save %q: %w", ErrPersistence, name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: could not write save %q: %w", ErrPersistence, name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name+saveExt)); err != nil {
		return fmt.Errorf("%w: could not replace save %q: %w", ErrPersistence, name, err)
	}
	return nil
}

// LoadLedger restores a ledger wholesale from the named save (or 1-based
// index into the ListSaves ordering). It returns the resolved save name
// alongside the ledger.
func LoadLedger(dir, nameOrIndex string) (*Ledger, string, error) {
	name, err := ResolveSaveName(dir, nameOrIndex)
	if err != nil {
		return nil, "", err
	}
	path := filepath.Join(dir, name+saveExt)
	f, err := os.Open(path)
	if err != nil {
		return nil, name, fmt.Errorf("%w: could not open save %q: %w", ErrPersistence, name, err)
	}
	defer f.Close()

	snap, err := DecodeSnapshot(f)
	if err != nil {
		return nil, name, fmt.Errorf("%w: save %q is corrupt: %w", ErrPersistence, name, err)
	}
	l, err := RestoreLedger(snap)
	if err != nil {
		return nil, name, fmt.Errorf("%w: save %q is inconsistent: %w", ErrPersistence, name, err)
	}
	return l, name, nil
}
