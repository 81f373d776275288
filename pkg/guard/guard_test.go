package guard

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/arthur-debert/layout/pkg/remotefs"
	"github.com/arthur-debert/layout/pkg/testutil"
	"github.com/arthur-debert/layout/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errBroken = stderrors.New("connection reset by peer")

func TestIsRegularFolder_MemFS(t *testing.T) {
	mem := testutil.NewMemFS()
	testutil.MkdirAll(t, mem, "/srv/a/b/c")
	testutil.MkdirAll(t, mem, "/srv/real/target")
	testutil.Touch(t, mem, "/srv/a/file")
	testutil.Symlink(t, mem, "/srv/real", "/srv/a/link")
	testutil.MkdirAll(t, mem, "/srv/x/y")
	testutil.Symlink(t, mem, "/srv/real/target", "/srv/x/y/z")

	checker := New(remotefs.NewBillyFS(mem), "/srv")

	tests := []struct {
		path string
		want bool
	}{
		{path: "a", want: true},
		{path: "a/b/c", want: true},
		{path: "/a/b/c", want: true},
		{path: "a//b/", want: true},
		{path: "/", want: true},
		{path: "a/missing", want: false},
		{path: "a/file", want: false},
		{path: "a/link", want: false},
		{path: "a/link/target", want: false},
		{path: "x/y/z", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := checker.IsRegularFolder(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsRegularFolder_EmptyHostRoot(t *testing.T) {
	m := new(testutil.MockRemoteFS)
	m.On("ListDirectory", "a").Return([]string{"b"}, nil).Once()
	m.On("IsSymlink", "a").Return(false, nil).Once()
	m.On("ListDirectory", "a/b").Return([]string{}, nil).Once()
	m.On("IsSymlink", "a/b").Return(false, nil).Once()

	ok, err := New(m, "").IsRegularFolder("/a/b")
	require.NoError(t, err)
	assert.True(t, ok)
	m.AssertExpectations(t)
}

func TestIsRegularFolder_RejectsTraversal(t *testing.T) {
	mem := testutil.NewMemFS()
	testutil.MkdirAll(t, mem, "/srv/a")
	testutil.MkdirAll(t, mem, "/etc/secret")
	checker := New(remotefs.NewBillyFS(mem), "/srv")

	for _, path := range []string{"a/../../etc/secret", "../etc", "a/./b", "/..", "."} {
		t.Run(path, func(t *testing.T) {
			ok, err := checker.IsRegularFolder(path)
			assert.False(t, ok)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
			assert.Equal(t, path, errors.GetPath(err))
		})
	}

	m := new(testutil.MockRemoteFS)
	_, err := New(m, "/srv").IsRegularFolder("a/../b")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	m.AssertNotCalled(t, "ListDirectory", mock.Anything)
	m.AssertNotCalled(t, "IsSymlink", mock.Anything)
}

func TestIsRegularFolder_NoComponentsChecksHostRoot(t *testing.T) {
	mem := testutil.NewMemFS()
	testutil.MkdirAll(t, mem, "/srv")
	testutil.MkdirAll(t, mem, "/real")
	testutil.Symlink(t, mem, "/real", "/linked")
	remote := remotefs.NewBillyFS(mem)

	tests := []struct {
		hostRoot string
		path     string
		want     bool
	}{
		{hostRoot: "/srv", path: "/", want: true},
		{hostRoot: "/srv", path: "//", want: true},
		{hostRoot: "/nonexistent-root", path: "/", want: false},
		{hostRoot: "/nonexistent-root", path: "///", want: false},
		{hostRoot: "/linked", path: "/", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.hostRoot+" "+tt.path, func(t *testing.T) {
			ok, err := New(remote, tt.hostRoot).IsRegularFolder(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}

	t.Run("without host root", func(t *testing.T) {
		m := new(testutil.MockRemoteFS)
		m.On("ListDirectory", "/").Return([]string{"srv"}, nil).Once()
		m.On("IsSymlink", "/").Return(false, nil).Once()

		ok, err := New(m, "").IsRegularFolder("/")
		require.NoError(t, err)
		assert.True(t, ok)
		m.AssertExpectations(t)
	})

	t.Run("transport failure on host root", func(t *testing.T) {
		m := new(testutil.MockRemoteFS)
		m.On("ListDirectory", "/srv").Return(nil, errBroken).Once()

		_, err := New(m, "/srv").IsRegularFolder("/")
		assert.True(t, errors.IsErrorCode(err, errors.ErrTransport))
	})
}

func TestIsRegularFolder_EmptyPath(t *testing.T) {
	m := new(testutil.MockRemoteFS)
	_, err := New(m, "/srv").IsRegularFolder("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	m.AssertNotCalled(t, "ListDirectory", mock.Anything)
}

func TestIsRegularFolder_CallSequence(t *testing.T) {
	m := new(testutil.MockRemoteFS)
	m.On("ListDirectory", "/srv/a").Return([]string{"b"}, nil).Once()
	m.On("IsSymlink", "/srv/a").Return(false, nil).Once()
	m.On("ListDirectory", "/srv/a/b").Return([]string{}, nil).Once()
	m.On("IsSymlink", "/srv/a/b").Return(false, nil).Once()

	ok, err := New(m, "/srv").IsRegularFolder("a/b")
	require.NoError(t, err)
	assert.True(t, ok)
	m.AssertExpectations(t)
}

func TestIsRegularFolder_StopsAtFirstStructuralFailure(t *testing.T) {
	for name, cause := range map[string]error{
		"not found":     &fs.PathError{Op: "readdir", Path: "/srv/a", Err: fs.ErrNotExist},
		"permission":    &fs.PathError{Op: "readdir", Path: "/srv/a", Err: fs.ErrPermission},
		"not directory": &fs.PathError{Op: "readdir", Path: "/srv/a", Err: types.ErrNotDirectory},
	} {
		t.Run(name, func(t *testing.T) {
			m := new(testutil.MockRemoteFS)
			m.On("ListDirectory", "/srv/a").Return(nil, cause).Once()

			ok, err := New(m, "/srv").IsRegularFolder("a/b/c")
			require.NoError(t, err)
			assert.False(t, ok)
			m.AssertNotCalled(t, "IsSymlink", mock.Anything)
			m.AssertNotCalled(t, "ListDirectory", "/srv/a/b")
		})
	}
}

func TestIsRegularFolder_StopsAtSymlink(t *testing.T) {
	m := new(testutil.MockRemoteFS)
	m.On("ListDirectory", "/srv/a").Return([]string{"b"}, nil).Once()
	m.On("IsSymlink", "/srv/a").Return(true, nil).Once()

	obs := &testutil.RecordingObserver{}
	ok, err := New(m, "/srv", WithObserver(obs)).IsRegularFolder("a/b")
	require.NoError(t, err)
	assert.False(t, ok)
	m.AssertNotCalled(t, "ListDirectory", "/srv/a/b")
	assert.Equal(t, []string{"/srv/a"}, obs.InfoPaths("symlink"))
}

func TestIsRegularFolder_TransportFailures(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		m := new(testutil.MockRemoteFS)
		m.On("ListDirectory", "/srv/a").Return(nil, errBroken).Once()

		obs := &testutil.RecordingObserver{}
		ok, err := New(m, "/srv", WithObserver(obs)).IsRegularFolder("a")
		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTransport))
		assert.Equal(t, "/srv/a", errors.GetPath(err))
		assert.ErrorIs(t, err, errBroken)
		assert.Equal(t, []string{"/srv/a"}, obs.ErrorPaths("list"))
	})

	t.Run("symlink", func(t *testing.T) {
		m := new(testutil.MockRemoteFS)
		m.On("ListDirectory", "/srv/a").Return([]string{}, nil).Once()
		m.On("IsSymlink", "/srv/a").Return(false, errBroken).Once()

		ok, err := New(m, "/srv").IsRegularFolder("a")
		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTransport))
	})
}

func TestExists(t *testing.T) {
	m := new(testutil.MockRemoteFS)
	m.On("Exists", "/here").Return(true, nil)
	m.On("Exists", "/gone").Return(false, nil)
	m.On("Exists", "/broken").Return(false, errBroken)

	obs := &testutil.RecordingObserver{}
	c := New(m, "", WithObserver(obs))

	ok, err := c.Exists("/here")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Exists("/gone")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.Exists("/broken")
	assert.True(t, errors.IsErrorCode(err, errors.ErrTransport))

	assert.Equal(t, []string{"/here", "/gone"}, obs.InfoPaths("exists"))
	assert.Equal(t, []string{"/broken"}, obs.ErrorPaths("exists"))
}

func TestWithObserverNil(t *testing.T) {
	c := New(remotefs.NewMemory(), "/", WithObserver(nil))
	assert.Equal(t, "/", c.HostRoot())
	_, err := c.Exists("/")
	assert.NoError(t, err)
}
