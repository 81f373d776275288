package session

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/arthur-debert/layout/pkg/paths"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// authMethods offers the key first, then the password
func authMethods(opts Options) ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod

	if opts.KeyFile != "" {
		signer, err := loadSigner(opts.KeyFile, opts.KeyPassphrase)
		if err != nil {
			return nil, err
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}
	if opts.Password != "" {
		methods = append(methods, ssh.Password(opts.Password))
	}

	if len(methods) == 0 {
		return nil, errors.New(errors.ErrAuth, "no password or key file configured")
	}
	return methods, nil
}

func loadSigner(keyFile, passphrase string) (ssh.Signer, error) {
	path := paths.ExpandHome(keyFile)
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrAuth, "cannot read key file %s", path).WithPath(path)
	}
	return parseSigner(pem, passphrase, path)
}

func parseSigner(pem []byte, passphrase, path string) (ssh.Signer, error) {
	var (
		signer ssh.Signer
		err    error
	)
	if passphrase != "" {
		signer, err = ssh.ParsePrivateKeyWithPassphrase(pem, []byte(passphrase))
	} else {
		signer, err = ssh.ParsePrivateKey(pem)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrAuth, "cannot parse key file %s", path).WithPath(path)
	}
	return signer, nil
}

// hostKeyCallback verifies server keys against a known_hosts file. Unknown
// hosts are rejected rather than added.
func hostKeyCallback(opts Options) (ssh.HostKeyCallback, error) {
	if opts.InsecureIgnoreHostKey {
		return ssh.InsecureIgnoreHostKey(), nil
	}

	file := opts.KnownHosts
	if file == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrHostKey, "cannot locate ~/.ssh/known_hosts")
		}
		file = filepath.Join(home, ".ssh", "known_hosts")
	}
	file = paths.ExpandHome(file)

	cb, err := knownhosts.New(file)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrHostKey, "cannot load known hosts from %s", file).
			WithPath(file)
	}
	return cb, nil
}
