package remotefs

import (
	"os"

	"github.com/arthur-debert/layout/pkg/types"
	"github.com/pkg/sftp"
)

// SFTPFS implements types.RemoteFS over an open SFTP client. The client is
// owned by the caller and never closed here.
type SFTPFS struct {
	client *sftp.Client
}

var _ types.RemoteFS = (*SFTPFS)(nil)

// NewSFTPFS creates a new SFTP-backed implementation
func NewSFTPFS(client *sftp.Client) *SFTPFS {
	return &SFTPFS{client: client}
}

// Exists stats path; pkg/sftp maps SSH_FX_NO_SUCH_FILE to os.ErrNotExist
func (s *SFTPFS) Exists(path string) (bool, error) {
	_, err := s.client.Stat(path)
	if err == nil {
		return true, nil
	}
	if isNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsSymlink lstats path instead of calling readlink, so a failure is never
// mistaken for "not a link".
func (s *SFTPFS) IsSymlink(path string) (bool, error) {
	info, err := s.client.Lstat(path)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

func (s *SFTPFS) MakeDirectory(path string) error {
	return s.client.Mkdir(path)
}

func (s *SFTPFS) CreateEmptyFile(path string) error {
	f, err := s.client.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL)
	if err != nil {
		return err
	}
	return f.Close()
}

func (s *SFTPFS) ListDirectory(path string) ([]string, error) {
	infos, err := s.client.ReadDir(path)
	if err != nil {
		if isNotExist(err) || isPermission(err) {
			return nil, err
		}
		// Servers answer opendir on a regular file with a generic failure
		if info, serr := s.client.Stat(path); serr == nil && !info.IsDir() {
			return nil, notDirectory("readdir", path)
		}
		return nil, err
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name()
	}
	return names, nil
}
