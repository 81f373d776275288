package remotefs

import (
	"os"

	"github.com/arthur-debert/layout/pkg/types"
	"github.com/spf13/afero"
)

// AferoFS implements types.RemoteFS using afero
type AferoFS struct {
	fs       afero.Fs
	dirMode  os.FileMode
	fileMode os.FileMode
}

var _ types.RemoteFS = (*AferoFS)(nil)

// NewAferoFS creates a new afero-backed implementation
func NewAferoFS(fs afero.Fs) *AferoFS {
	return &AferoFS{fs: fs, dirMode: 0755, fileMode: 0644}
}

// NewLocal creates an implementation over the local OS filesystem
func NewLocal() *AferoFS {
	return NewAferoFS(afero.NewOsFs())
}

func (a *AferoFS) Exists(path string) (bool, error) {
	_, err := a.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if isNotExist(err) {
		return false, nil
	}
	return false, err
}

func (a *AferoFS) IsSymlink(path string) (bool, error) {
	info, err := a.lstat(path)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

func (a *AferoFS) lstat(path string) (os.FileInfo, error) {
	// Only some afero backends know about links; for the others Stat is
	// the best answer and never reports one.
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return a.fs.Stat(path)
}

func (a *AferoFS) MakeDirectory(path string) error {
	if err := a.checkParent("mkdir", path); err != nil {
		return err
	}
	return a.fs.Mkdir(path, a.dirMode)
}

func (a *AferoFS) CreateEmptyFile(path string) error {
	if err := a.checkParent("open", path); err != nil {
		return err
	}
	f, err := a.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, a.fileMode)
	if err != nil {
		return err
	}
	return f.Close()
}

func (a *AferoFS) ListDirectory(path string) ([]string, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, notDirectory("readdir", path)
	}
	entries, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names, nil
}

// checkParent enforces the single-level creation contract; MemMapFs would
// otherwise create missing parents silently.
func (a *AferoFS) checkParent(op, path string) error {
	parent, ok := hasParent(path)
	if !ok {
		return nil
	}
	info, err := a.fs.Stat(parent)
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
