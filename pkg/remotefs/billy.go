package remotefs

import (
	"os"

	"github.com/arthur-debert/layout/pkg/types"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
)

// BillyFS implements types.RemoteFS using a go-billy filesystem
type BillyFS struct {
	fs       billy.Filesystem
	dirMode  os.FileMode
	fileMode os.FileMode
}

var _ types.RemoteFS = (*BillyFS)(nil)

// NewBillyFS creates a new billy-backed implementation
func NewBillyFS(fs billy.Filesystem) *BillyFS {
	return &BillyFS{fs: fs, dirMode: 0755, fileMode: 0644}
}

// NewMemory creates an implementation over an empty in-memory filesystem
func NewMemory() *BillyFS {
	return NewBillyFS(memfs.New())
}

// Filesystem returns the underlying billy filesystem
func (b *BillyFS) Filesystem() billy.Filesystem {
	return b.fs
}

func (b *BillyFS) Exists(path string) (bool, error) {
	_, err := b.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if isNotExist(err) {
		return false, nil
	}
	return false, err
}

func (b *BillyFS) IsSymlink(path string) (bool, error) {
	info, err := b.fs.Lstat(path)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

func (b *BillyFS) MakeDirectory(path string) error {
	if err := b.checkTarget("mkdir", path); err != nil {
		return err
	}
	// billy only offers MkdirAll; checkTarget has already pinned it to one level
	return b.fs.MkdirAll(path, b.dirMode)
}

func (b *BillyFS) CreateEmptyFile(path string) error {
	if err := b.checkTarget("open", path); err != nil {
		return err
	}
	f, err := b.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, b.fileMode)
	if err != nil {
		return err
	}
	return f.Close()
}

func (b *BillyFS) ListDirectory(path string) ([]string, error) {
	// memfs lists a regular file as an empty directory, so check first
	info, err := b.fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, notDirectory("readdir", path)
	}
	infos, err := b.fs.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(infos))
	for i, fi := range infos {
		names[i] = fi.Name()
	}
	return names, nil
}

func (b *BillyFS) checkTarget(op, path string) error {
	if _, err := b.fs.Lstat(path); err == nil {
		return alreadyExists(op, path)
	} else if !isNotExist(err) {
		return err
	}

	parent, ok := hasParent(path)
	if !ok {
		return nil
	}
	info, err := b.fs.Stat(parent)
	if err != nil {
		if isNotExist(err) {
			return parentMissing(op, path)
		}
		return err
	}
	if !info.IsDir() {
		return notDirectory(op, parent)
	}
	return nil
}
