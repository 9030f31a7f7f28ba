// Package scaffold materializes a parsed tree on disk: directories become
// directories, files become empty files. Creation is idempotent so re-runs
// against a partially built destination are safe; the first failure halts
// the walk and nothing is rolled back.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"etxdir/internal/safety"
	"etxdir/internal/tree"
)

// ErrKindConflict marks a path that already exists with the opposite kind
// (a file where a directory is needed, or a directory where a file is).
// Never auto-resolved.
var ErrKindConflict = errors.New("existing entry has conflicting kind")

// EntryError is a filesystem failure tied to one entry of the tree.
type EntryError struct {
	Path string
	Dir  bool
	Err  error
}

func (e *EntryError) Error() string {
	kind := "file"
	if e.Dir {
		kind = "directory"
	}
	return fmt.Sprintf("%s %s: %v", kind, e.Path, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// Options controls one Apply run.
type Options struct {
	// DestRoot must already exist and be writable; it is never created here.
	DestRoot string
	DirPerm  os.FileMode
	FilePerm os.FileMode
	// ExecGlobs are slash-style patterns (relative to DestRoot) of files
	// that get 0755 instead of FilePerm.
	ExecGlobs []string
	DryRun    bool
	Progress  Sink
}

func (o *Options) fill() {
	if o.DirPerm == 0 {
		o.DirPerm = 0o755
	}
	if o.FilePerm == 0 {
		o.FilePerm = 0o644
	}
	if o.Progress == nil {
		o.Progress = SinkFunc(nil)
	}
}

// Apply walks the tree depth-first and creates every descendant under
// DestRoot, parents strictly before children. The synthetic root itself is
// a precondition, not an output. Returns the first failure encountered.
func Apply(root *tree.Node, opts Options) error {
	opts.fill()
	return applyChildren(root, opts.DestRoot, nil, &opts)
}

func applyChildren(n *tree.Node, base string, segments []string, opts *Options) error {
	for _, child := range n.Children {
		target, err := safety.SafeJoin(base, append(segments, child.Label)...)
		if err != nil {
			return &EntryError{Path: child.Label, Dir: child.Kind == tree.Directory, Err: err}
		}

		if child.Kind == tree.Directory {
			if err := ensureDir(target, opts); err != nil {
				return err
			}
			if err := applyChildren(child, base, append(segments, child.Label), opts); err != nil {
				return err
			}
			continue
		}

		if err := ensureFile(target, opts); err != nil {
			return err
		}
	}
	return nil
}

func ensureDir(path string, opts *Options) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		// Каталог уже есть — повторный запуск, не ошибка.
		opts.Progress.Publish(Event{Path: path, Dir: true, Status: StatusExists})
		return nil

	case err == nil && !info.IsDir():
		return &EntryError{Path: path, Dir: true, Err: ErrKindConflict}

	case os.IsNotExist(err):
		if opts.DryRun {
			opts.Progress.Publish(Event{Path: path, Dir: true, Status: StatusPlanned})
			return nil
		}
		// Родитель создан раньше по инварианту обхода, поэтому Mkdir, не MkdirAll.
		if err := os.Mkdir(path, opts.DirPerm); err != nil {
			return &EntryError{Path: path, Dir: true, Err: err}
		}
		opts.Progress.Publish(Event{Path: path, Dir: true, Status: StatusCreated})
		return nil

	default:
		return &EntryError{Path: path, Dir: true, Err: err}
	}
}

func ensureFile(path string, opts *Options) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return &EntryError{Path: path, Dir: false, Err: ErrKindConflict}

	case err == nil:
		// Существующий файл не трогаем и не усекаем.
		opts.Progress.Publish(Event{Path: path, Dir: false, Status: StatusExists})
		return nil

	case os.IsNotExist(err):
		if opts.DryRun {
			opts.Progress.Publish(Event{Path: path, Dir: false, Status: StatusPlanned})
			return nil
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, fileMode(path, opts))
		if err != nil {
			return &EntryError{Path: path, Dir: false, Err: err}
		}
		_ = f.Close()
		opts.Progress.Publish(Event{Path: path, Dir: false, Status: StatusCreated})
		return nil

	default:
		return &EntryError{Path: path, Dir: false, Err: err}
	}
}

// fileMode picks the permission bits for a new file, honoring exec globs.
func fileMode(path string, opts *Options) os.FileMode {
	if len(opts.ExecGlobs) == 0 {
		return opts.FilePerm
	}
	rel := path
	if r, err := filepath.Rel(opts.DestRoot, path); err == nil {
		rel = r
	}
	relSl := filepath.ToSlash(rel)
	for _, pat := range opts.ExecGlobs {
		p := strings.TrimSpace(filepath.ToSlash(pat))
		if p == "" {
			continue
		}
		if ok, _ := filepath.Match(p, relSl); ok {
			return 0o755
		}
	}
	return opts.FilePerm
}
