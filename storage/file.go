package storage

import (
	"encoding/json"
	"fmt"
	"os"
)

// File is a KV backed by a single JSON object file. The whole file is loaded
// at open and rewritten on every Put, matching the journal's write pattern of
// replacing a full collection per mutation.
type File struct {
	path string
	data map[string]string
}

func NewFile(path string) (*File, error) {
	f := &File{path: path, data: map[string]string{}}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &f.data); err != nil {
			return nil, fmt.Errorf("parse store file: %w", err)
		}
	}
	return f, nil
}

func (f *File) Get(key string) (string, bool, error) {
	value, ok := f.data[key]
	return value, ok, nil
}

func (f *File) Put(key, value string) error {
	f.data[key] = value

	data, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store file: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

func (f *File) Close() error {
	return nil
}
