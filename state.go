package gridview

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// PersistentState is the part of a table that outlives the process.
// Sizes are inner sizes indexed by data index.
type PersistentState struct {
	ColumnWidths []float32 `toml:"column_widths"`
	RowHeights   []float32 `toml:"row_heights"`
}

// StateStore persists table state between frames and sessions.
// Tables read their entry on the first Show and write it back whenever a
// size changes.
type StateStore interface {
	Get(id ID) (PersistentState, bool)
	Set(id ID, state PersistentState)
	Delete(id ID)
}

// MapStateStore is a simple in-memory StateStore implementation.
type MapStateStore map[ID]PersistentState

// Get retrieves a table's state from the store.
func (m MapStateStore) Get(id ID) (PersistentState, bool) {
	v, ok := m[id]
	return v, ok
}

// Set stores a table's state.
func (m MapStateStore) Set(id ID, state PersistentState) {
	m[id] = state
}

// Delete removes a table's state.
func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// stateFile is the on-disk layout. Keys are IDs in hex.
type stateFile struct {
	Tables map[string]PersistentState `toml:"tables"`
}

// EncodeTOML writes the store as TOML.
func (m MapStateStore) EncodeTOML(w io.Writer) error {
	file := stateFile{Tables: make(map[string]PersistentState, len(m))}
	for id, s := range m {
		file.Tables[formatID(id)] = s
	}
	if err := toml.NewEncoder(w).Encode(file); err != nil {
		return fmt.Errorf("encode table state: %w", err)
	}
	return nil
}

// DecodeStateTOML reads a store written by EncodeTOML.
func DecodeStateTOML(r io.Reader) (MapStateStore, error) {
	var file stateFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode table state: %w", err)
	}
	m := make(MapStateStore, len(file.Tables))
	for key, s := range file.Tables {
		id, err := parseID(key)
		if err != nil {
			return nil, fmt.Errorf("decode table state: table %q: %w", key, err)
		}
		m[id] = s
	}
	return m, nil
}

// SaveStateFile writes the store to path, creating parent directories.
func (m MapStateStore) SaveStateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save table state: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save table state: %w", err)
	}
	if err := m.EncodeTOML(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save table state: %w", err)
	}
	logger.Debug("table state saved", "path", path, "tables", len(m))
	return nil
}

// LoadStateFile reads a store from path. A missing file yields an empty
// store.
func LoadStateFile(path string) (MapStateStore, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return MapStateStore{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load table state: %w", err)
	}
	defer f.Close()

	m, err := DecodeStateTOML(f)
	if err != nil {
		return nil, fmt.Errorf("load table state from %s: %w", path, err)
	}
	return m, nil
}

func formatID(id ID) string {
	return fmt.Sprintf("%016x", uint64(id))
}

func parseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	return ID(v), err
}
