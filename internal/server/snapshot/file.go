package snapshot

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophtalk/internal/common"
)

// File persists the document as a single file, rewritten in full with a
// plain truncating write. There is no atomic rename: a crash mid-write can
// corrupt the snapshot, which is the accepted durability limitation.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Save(ctx context.Context, data []byte) error {
	if err := os.WriteFile(f.path, data, 0o660); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	return nil
}

func (f *File) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}
	return data, nil
}
