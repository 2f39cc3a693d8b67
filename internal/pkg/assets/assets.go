package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store uploads a binary asset and returns a URL the rest of the system
// treats as an opaque string.
type Store interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
}

// DiskStore keeps uploads on the local filesystem and serves them under
// baseURL via the static route registered in main.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: baseURL}, nil
}

func (s *DiskStore) Upload(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := filepath.Ext(name)
	filename := uuid.NewString() + ext

	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write asset: %w", err)
	}
	return s.baseURL + "/" + filename, nil
}
