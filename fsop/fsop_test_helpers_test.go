package fsop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

func newTestEngine(fsys afero.Fs, opts ...Option) *Engine {
	base := []Option{
		WithFs(fsys),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithStarredPath("/home/tester/Documents"),
	}

	return New(append(base, opts...)...)
}

func mkdirs(fs afero.Fs, paths ...string) {
	for _, p := range paths {
		if err := fs.MkdirAll(p, 0o777); err != nil {
			panic(err)
		}
	}
}

func writeFile(fs afero.Fs, path, content string) {
	if err := fs.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		panic(err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o666); err != nil {
		panic(err)
	}
}

// stubTrash is a deterministic TrashCapability for tests: it moves the
// file into a fixed directory (appending a counter on collision) using
// the engine's own afero filesystem rather than the real OS, so tests
// stay hermetic.
type stubTrash struct {
	fs  afero.Fs
	dir string
	n   int
}

func newStubTrash(fs afero.Fs, dir string) *stubTrash {
	return &stubTrash{fs: fs, dir: dir}
}

func (t *stubTrash) MoveToTrash(_ context.Context, absPath string) (string, error) {
	if err := t.fs.MkdirAll(t.dir, 0o777); err != nil {
		return "", err
	}

	t.n++
	dest := filepath.Join(t.dir, fmt.Sprintf("%d-%s", t.n, filepath.Base(absPath)))

	if err := t.fs.Rename(absPath, dest); err != nil {
		return "", err
	}

	return filepath.ToSlash(dest), nil
}

// failingTrash always fails, for exercising capability-failure paths.
type failingTrash struct{}

func (failingTrash) MoveToTrash(context.Context, string) (string, error) {
	return "", errors.New("stub trash failure")
}

// stubShortcut records the (src, link) pairs it was asked to create,
// against the engine's afero filesystem, as an empty marker file.
type stubShortcut struct {
	fs afero.Fs
}

func (s stubShortcut) MakeLink(_ context.Context, srcAbs, linkAbs string) error {
	return afero.WriteFile(s.fs, linkAbs, []byte(srcAbs), 0o666)
}

// failingShortcut always fails.
type failingShortcut struct{}

func (failingShortcut) MakeLink(context.Context, string, string) error {
	return errors.New("stub shortcut failure")
}
