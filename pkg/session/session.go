package session

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/layout/pkg/config"
	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/arthur-debert/layout/pkg/logging"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// DefaultPort is the SSH port used when none is configured
const DefaultPort = 22

// Options describes one SSH endpoint and its credentials
type Options struct {
	Host          string
	Port          int
	User          string
	Password      string
	KeyFile       string
	KeyPassphrase string

	// KnownHosts is the known_hosts file; empty means ~/.ssh/known_hosts
	KnownHosts            string
	InsecureIgnoreHostKey bool
	Timeout               time.Duration
}

// FromConfig builds Options from the remote section of the configuration
func FromConfig(r config.Remote) Options {
	return Options{
		Host:                  r.Host,
		Port:                  r.Port,
		User:                  r.User,
		Password:              r.Password,
		KeyFile:               r.KeyFile,
		KeyPassphrase:         r.KeyPassphrase,
		KnownHosts:            r.KnownHosts,
		InsecureIgnoreHostKey: r.InsecureIgnoreHostKey,
		Timeout:               r.Timeout,
	}
}

// Address returns host:port
func (o Options) Address() string {
	port := o.Port
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(o.Host, strconv.Itoa(port))
}

// Session is an open SSH connection with an SFTP client on top
type Session struct {
	conn   *ssh.Client
	client *sftp.Client
}

// Dial connects, authenticates and starts the SFTP subsystem.
//
// Failures carry CONNECT when the endpoint cannot be reached or the
// handshake breaks, HOST_KEY when the server key is unknown or mismatched,
// and AUTH when every authentication method was refused.
func Dial(opts Options) (*Session, error) {
	logger := logging.GetLogger("session")
	addr := opts.Address()

	hostKeys, err := hostKeyCallback(opts)
	if err != nil {
		return nil, err
	}
	var hostKeyErr error
	checked := func(hostname string, remote net.Addr, key ssh.PublicKey) error {
		if err := hostKeys(hostname, remote, key); err != nil {
			hostKeyErr = err
			return err
		}
		return nil
	}

	auth, err := authMethods(opts)
	if err != nil {
		return nil, err
	}

	cfg := &ssh.ClientConfig{
		User:            opts.User,
		Auth:            auth,
		HostKeyCallback: checked,
		Timeout:         opts.Timeout,
	}

	logger.Debug().Str("addr", addr).Str("user", opts.User).Msg("Dialing")
	netConn, err := net.DialTimeout("tcp", addr, opts.Timeout)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConnect, "cannot reach %s", addr).
			WithDetail("addr", addr)
	}
	if opts.Timeout > 0 {
		_ = netConn.SetDeadline(time.Now().Add(opts.Timeout))
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(netConn, addr, cfg)
	if err != nil {
		_ = netConn.Close()
		return nil, classifyHandshake(err, hostKeyErr, addr)
	}
	_ = netConn.SetDeadline(time.Time{})
	conn := ssh.NewClient(sshConn, chans, reqs)

	client, err := sftp.NewClient(conn)
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, errors.ErrConnect, "cannot start sftp on %s", addr).
			WithDetail("addr", addr)
	}

	logger.Info().Str("addr", addr).Str("user", opts.User).Msg("Connected")
	return &Session{conn: conn, client: client}, nil
}

func classifyHandshake(err, hostKeyErr error, addr string) error {
	switch {
	case hostKeyErr != nil:
		return errors.Wrapf(hostKeyErr, errors.ErrHostKey, "host key for %s rejected", addr).
			WithDetail("addr", addr)
	case strings.Contains(err.Error(), "unable to authenticate"):
		return errors.Wrapf(err, errors.ErrAuth, "authentication to %s failed", addr).
			WithDetail("addr", addr)
	default:
		return errors.Wrapf(err, errors.ErrConnect, "ssh handshake with %s failed", addr).
			WithDetail("addr", addr)
	}
}

// SFTP returns the SFTP client; it stays valid until Close
func (s *Session) SFTP() *sftp.Client {
	return s.client
}

// Close shuts the SFTP client and the SSH connection down
func (s *Session) Close() error {
	sftpErr := s.client.Close()
	if err := s.conn.Close(); err != nil {
		return err
	}
	return sftpErr
}
