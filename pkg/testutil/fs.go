package testutil

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/filesystem"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

// NewMemoryFS returns an empty in-memory filesystem
func NewMemoryFS() types.FS {
	return filesystem.NewMemory()
}

// FailingFS wraps a filesystem and fails the operations listed in Errors.
// Keys are "<Op>:<path>", e.g. "RemoveAll:proj" or "WriteFile:proj/.prettierrc".
type FailingFS struct {
	types.FS
	Errors map[string]error
}

// NewFailingFS wraps fsys with no failures configured
func NewFailingFS(fsys types.FS) *FailingFS {
	return &FailingFS{FS: fsys, Errors: make(map[string]error)}
}

// FailOn makes op on path return err
func (f *FailingFS) FailOn(op, path string, err error) *FailingFS {
	f.Errors[op+":"+path] = err
	return f
}

func (f *FailingFS) injected(op, path string) error {
	return f.Errors[op+":"+path]
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.injected("WriteFile", name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) Chmod(name string, mode fs.FileMode) error {
	if err := f.injected("Chmod", name); err != nil {
		return err
	}
	return f.FS.Chmod(name, mode)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.injected("MkdirAll", path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FailingFS) Remove(name string) error {
	if err := f.injected("Remove", name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FailingFS) RemoveAll(path string) error {
	if err := f.injected("RemoveAll", path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}

// ReadFileT reads path and fails the test if it cannot
func ReadFileT(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

// AssertExecutable checks that path carries the execute bit for user,
// group and others
func AssertExecutable(t *testing.T, fsys types.FS, path string) {
	t.Helper()
	info, err := fsys.Stat(path)
	if !assert.NoError(t, err, "stat %s", path) {
		return
	}
	assert.Equal(t, fs.FileMode(0111), info.Mode().Perm()&0111, "%s should be executable, mode %v", path, info.Mode())
}

// AssertNotExists checks that path does not exist
func AssertNotExists(t *testing.T, fsys types.FS, path string) {
	t.Helper()
	_, err := fsys.Stat(path)
	assert.ErrorIs(t, err, fs.ErrNotExist, "%s should not exist", path)
}
