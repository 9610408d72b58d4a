package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileKV keeps every key in a single JSON object on disk, for example:
//
//	{"salaries": [...], "spendings": [...]}
//
// The whole file is read on every Get and rewritten on every Set.
type FileKV struct {
	file string
}

func NewFileKV(file string) (*FileKV, error) {
	err := os.MkdirAll(filepath.Dir(file), 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to make all directories for %v: %w", file, err)
	}

	return &FileKV{file: file}, nil
}

// Path returns the location of the backing file.
func (f *FileKV) Path() string {
	return f.file
}

func (f *FileKV) read() (map[string]json.RawMessage, error) {
	values := make(map[string]json.RawMessage)

	b, err := os.ReadFile(f.file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, nil
		}

		return values, fmt.Errorf("failed to read store %v: %w", f.file, err)
	}

	if len(b) == 0 {
		return values, nil
	}

	err = json.Unmarshal(b, &values)
	if err != nil {
		return values, fmt.Errorf("failed to unmarshal store %v: %w", f.file, err)
	}

	return values, nil
}

func (f *FileKV) Get(key string) ([]byte, bool, error) {
	values, err := f.read()
	if err != nil {
		return nil, false, err
	}

	v, ok := values[key]
	if !ok {
		return nil, false, nil
	}

	return []byte(v), true, nil
}

// Set rewrites the file with key set to value. A corrupt file is replaced
// rather than blocking all future writes. value must be valid JSON.
func (f *FileKV) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("refusing to store invalid json for key %v", key)
	}

	values, err := f.read()
	if err != nil {
		values = make(map[string]json.RawMessage)
	}

	values[key] = json.RawMessage(value)

	b, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmp := fmt.Sprintf("%v.tmp", f.file)

	//nolint:gosec
	err = os.WriteFile(tmp, b, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", tmp, err)
	}

	err = os.Rename(tmp, f.file)
	if err != nil {
		return fmt.Errorf("failed to replace %v: %w", f.file, err)
	}

	return nil
}

func (f *FileKV) Close() error {
	return nil
}
