package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"refstats/internal/referral"
)

var ErrNotFound = errors.New("snapshot not found")
var ErrMalformed = errors.New("malformed snapshot")

// FileStore keeps the latest snapshot as a single JSON document.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

func (s *FileStore) Path() string {
	return s.path
}

// Save replaces the snapshot file. The new document is written next to the old one
// and renamed over it, so readers never observe a partial file.
func (s *FileStore) Save(ctx context.Context, snap referral.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}

	return nil
}

// Load reads the whole snapshot. A missing file yields ErrNotFound, an undecodable one ErrMalformed.
func (s *FileStore) Load(ctx context.Context) (referral.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return referral.Snapshot{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return referral.Snapshot{}, ErrNotFound
		}
		return referral.Snapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}

	var snap referral.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return referral.Snapshot{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if snap.Transactions == nil {
		snap.Transactions = []referral.Transaction{}
	}

	return snap, nil
}
