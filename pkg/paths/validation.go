package paths

import (
	"strings"

	"github.com/arthur-debert/layout/pkg/errors"
)

// maxPathLength is the common PATH_MAX of SFTP servers
const maxPathLength = 4096

// ValidateRemotePath performs basic validation on a remote path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidateRemotePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes").WithPath(path)
	}

	if len(path) > maxPathLength {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length").WithPath(path)
	}

	return nil
}
