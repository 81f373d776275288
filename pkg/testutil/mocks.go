package testutil

import (
	"github.com/arthur-debert/layout/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockRemoteFS is a testify mock of types.RemoteFS
type MockRemoteFS struct {
	mock.Mock
}

var _ types.RemoteFS = (*MockRemoteFS)(nil)

func (m *MockRemoteFS) Exists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *MockRemoteFS) IsSymlink(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *MockRemoteFS) MakeDirectory(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockRemoteFS) CreateEmptyFile(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockRemoteFS) ListDirectory(path string) ([]string, error) {
	args := m.Called(path)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

// RecordingObserver keeps every event it receives, in order
type RecordingObserver struct {
	Infos  []types.Event
	Errors []types.Event
}

func (r *RecordingObserver) OnInfo(ev types.Event)  { r.Infos = append(r.Infos, ev) }
func (r *RecordingObserver) OnError(ev types.Event) { r.Errors = append(r.Errors, ev) }

// InfoPaths returns the paths of info events with the given op, in order
func (r *RecordingObserver) InfoPaths(op string) []string {
	return eventPaths(r.Infos, op)
}

// ErrorPaths returns the paths of error events with the given op, in order
func (r *RecordingObserver) ErrorPaths(op string) []string {
	return eventPaths(r.Errors, op)
}

func eventPaths(events []types.Event, op string) []string {
	var out []string
	for _, ev := range events {
		if ev.Op == op {
			out = append(out, ev.Path)
		}
	}
	return out
}
