package fsop

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/spf13/afero"
)

var errNoCapability = errors.New("fsop: no capability backend configured for this operation")

// Engine is the handle primitives are called on. It is
// stateless across calls except through the filesystem itself — the
// spec's engine has no internal session state, only the collaborators
// (filesystem, capabilities, logger) it was constructed with.
type Engine struct {
	fsys     afero.Fs
	trash    TrashCapability
	shortcut ShortcutCapability
	log      *slog.Logger

	starredPath string
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithFs overrides the filesystem backend. Defaults to afero.NewOsFs().
func WithFs(fsys afero.Fs) Option {
	return func(e *Engine) { e.fsys = fsys }
}

// WithTrashCapability injects a trash backend.
func WithTrashCapability(t TrashCapability) Option {
	return func(e *Engine) { e.trash = t }
}

// WithShortcutCapability injects a shortcut backend.
func WithShortcutCapability(s ShortcutCapability) Option {
	return func(e *Engine) { e.shortcut = s }
}

// WithLogger installs a logger. Defaults to a handler discarding all
// output, so an Engine is silent unless a caller opts in.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithStarredPath overrides the default starred path (used by Link and
// Unlink when callers omit an explicit destination). Defaults to
// DefaultStarredPath().
func WithStarredPath(path string) Option {
	return func(e *Engine) { e.starredPath = path }
}

// New builds an Engine with sane defaults: a real OS filesystem, a
// discard logger, no-op capabilities (any trash/link call fails until
// one is wired in via options), and the process-default starred path.
func New(opts ...Option) *Engine {
	e := &Engine{
		fsys:        afero.NewOsFs(),
		trash:       noopTrash{},
		shortcut:    noopShortcut{},
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		starredPath: DefaultStarredPath(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// StarredPath returns the engine's resolved default link destination.
func (e *Engine) StarredPath() string {
	return e.starredPath
}

var (
	defaultStarredPathOnce sync.Once
	defaultStarredPath     string
)

// DefaultStarredPath resolves the process-wide default destination for
// shortcut links: "$HOME/Documents" on Unix-likes, or
// "%USERPROFILE%\Documents" on Windows, matching
// SystemPath.starredPath in the original implementation. It is
// computed once per process; tests that need a different value should
// use WithStarredPath instead of mutating the environment.
func DefaultStarredPath() string {
	defaultStarredPathOnce.Do(func() {
		home := os.Getenv("HOME")
		if runtime.GOOS == "windows" {
			home = os.Getenv("USERPROFILE")
		}

		defaultStarredPath = Absolute(home, "Documents")
	})

	return defaultStarredPath
}
