package filesystem

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	synthfsfs "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/logging"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

// Batch collects file writes and applies them as one synthfs run against
// a types.FS. Existing files are replaced and executable files get a+x
// once the run succeeds.
type Batch struct {
	fsys   types.FS
	name   string
	files  []batchFile
	logger zerolog.Logger
}

type batchFile struct {
	id         string
	path       string
	content    []byte
	executable bool
}

// WriteError names the file a batch stopped at
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewBatch creates an empty batch. name prefixes the synthfs operation ids.
func NewBatch(fsys types.FS, name string) *Batch {
	return &Batch{
		fsys:   fsys,
		name:   name,
		logger: logging.GetLogger("filesystem.batch"),
	}
}

// Add queues a file write
func (b *Batch) Add(path string, content []byte, executable bool) *Batch {
	b.files = append(b.files, batchFile{
		id:         fmt.Sprintf("write_%s_%d_%s", b.name, len(b.files), filepath.Base(path)),
		path:       path,
		content:    content,
		executable: executable,
	})
	return b
}

// Apply writes every queued file and returns the paths written, in queue
// order. On failure the paths written so far are returned with a
// *WriteError.
func (b *Batch) Apply(ctx context.Context) ([]string, error) {
	if len(b.files) == 0 {
		return nil, nil
	}

	for _, f := range b.files {
		if err := b.prepare(f.path); err != nil {
			return nil, &WriteError{Path: f.path, Err: err}
		}
	}

	sfs := synthfs.New()
	ops := make([]synthfs.Operation, 0, len(b.files))
	for _, f := range b.files {
		mode := types.ModeFile
		if f.executable {
			mode = types.ModeExecutable
		}
		ops = append(ops, sfs.CreateFileWithID(f.id, f.path, f.content, mode))
	}

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = false

	b.logger.Debug().
		Str("batch", b.name).
		Int("operationCount", len(ops)).
		Msg("Executing synthfs operations")

	var target synthfsfs.FullFileSystem = &synthAdapter{fsys: b.fsys}
	result, err := synthfs.RunWithOptions(ctx, target, options, ops...)
	if err != nil {
		written, failed := b.partition(result)
		return written, &WriteError{Path: failed, Err: err}
	}

	written := make([]string, 0, len(b.files))
	for _, f := range b.files {
		if f.executable {
			if err := MakeExecutable(b.fsys, f.path); err != nil {
				return written, &WriteError{Path: f.path, Err: err}
			}
		}
		written = append(written, f.path)
	}
	return written, nil
}

// prepare creates the parent folder and clears a previous file at path
func (b *Batch) prepare(path string) error {
	if err := b.fsys.MkdirAll(filepath.Dir(path), types.ModeDir); err != nil {
		return err
	}
	if err := b.fsys.Remove(path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// partition splits the queue of a failed run into the paths synthfs wrote
// and the first one it did not
func (b *Batch) partition(result *synthfs.Result) (written []string, failed string) {
	ok := make(map[synthfs.OperationID]bool)
	if result != nil {
		for _, op := range result.GetOperations() {
			if r, isResult := op.(synthfs.OperationResult); isResult && r.Status == synthfs.StatusSuccess {
				ok[r.OperationID] = true
			}
		}
	}
	for _, f := range b.files {
		if ok[synthfs.OperationID(f.id)] {
			written = append(written, f.path)
		} else if failed == "" {
			failed = f.path
		}
	}
	return written, failed
}

// synthAdapter exposes a types.FS to synthfs. Paths pass through
// unchanged so injected failures and in-memory filesystems keep working.
type synthAdapter struct {
	fsys types.FS
}

func (s *synthAdapter) Open(name string) (fs.File, error) {
	return s.fsys.Open(name)
}

func (s *synthAdapter) Stat(name string) (fs.FileInfo, error) {
	return s.fsys.Stat(name)
}

// Lstat follows links like Stat; artifacts are never symlinks
func (s *synthAdapter) Lstat(name string) (fs.FileInfo, error) {
	return s.fsys.Stat(name)
}

func (s *synthAdapter) ReadFile(name string) ([]byte, error) {
	return s.fsys.ReadFile(name)
}

func (s *synthAdapter) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return s.fsys.WriteFile(name, data, perm)
}

func (s *synthAdapter) MkdirAll(path string, perm fs.FileMode) error {
	return s.fsys.MkdirAll(path, perm)
}

func (s *synthAdapter) Remove(name string) error {
	return s.fsys.Remove(name)
}

func (s *synthAdapter) RemoveAll(path string) error {
	return s.fsys.RemoveAll(path)
}

func (s *synthAdapter) Rename(oldpath, newpath string) error {
	return s.fsys.Rename(oldpath, newpath)
}

func (s *synthAdapter) Symlink(oldname, newname string) error {
	return &fs.PathError{Op: "symlink", Path: newname, Err: stderrors.ErrUnsupported}
}

func (s *synthAdapter) Readlink(name string) (string, error) {
	return "", &fs.PathError{Op: "readlink", Path: name, Err: stderrors.ErrUnsupported}
}
