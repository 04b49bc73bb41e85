package tempres

import (
	"os"
	"sync"

	"github.com/op/go-logging"
	"github.com/spf13/afero"

	"github.com/CristovaoMNunes/tmpkeep/internal/ports"
)

// Registry tracks temporary paths that must disappear when the process ends.
// Paths are removed in registration order so nested workspaces are cleaned
// predictably. The process entry point owns the instance and injects it into
// consumers; there is no package-level ambient registry.
type Registry struct {
	fs     afero.Fs
	hook   ports.ExitHook
	log    *logging.Logger
	root   string
	prefix string

	mu        sync.Mutex
	paths     []string
	installed bool
}

// RegistryOption mutates a Registry during construction.
type RegistryOption func(*Registry)

// WithTempRoot overrides the base directory used by the creation helpers.
func WithTempRoot(root string) RegistryOption {
	return func(r *Registry) {
		if root != "" {
			r.root = root
		}
	}
}

// WithPrefix overrides the name prefix used by the creation helpers.
func WithPrefix(prefix string) RegistryOption {
	return func(r *Registry) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// WithLogger routes cleanup diagnostics to log. Without it cleanup stays silent.
func WithLogger(log *logging.Logger) RegistryOption {
	return func(r *Registry) {
		r.log = log
	}
}

// NewRegistry constructs a Registry over fs. The exit hook receives the
// cleanup callback once the first path is registered; a nil hook is allowed
// for callers that invoke Cleanup themselves.
func NewRegistry(fs afero.Fs, hook ports.ExitHook, opts ...RegistryOption) *Registry {
	r := &Registry{
		fs:     fs,
		hook:   hook,
		root:   os.TempDir(),
		prefix: DefaultPrefix,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register marks path for deletion at process exit. Registration never fails:
// the path does not have to exist yet, and duplicates are tolerated (each
// entry is visited independently at cleanup). The first registration installs
// the exit callback; the installation happens at most once for the lifetime
// of the registry. An empty path is ignored.
func (r *Registry) Register(path string) {
	if path == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.paths) == 0 && !r.installed {
		if r.hook != nil {
			r.hook.Add(r.Cleanup)
		}
		r.installed = true
	}

	r.paths = append(r.paths, path)
}

// Registered returns a copy of the currently registered paths in registration
// order. It has no side effects.
func (r *Registry) Registered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	paths := make([]string, len(r.paths))
	copy(paths, r.paths)

	return paths
}

// Cleanup removes every registered path in registration order and drains the
// registry. It is the callback handed to the exit hook but can also be invoked
// directly. Paths that are already gone are skipped, and removal failures are
// reported to the diagnostic logger and otherwise swallowed: this runs during
// process teardown, where nothing can react to them anymore.
func (r *Registry) Cleanup() {
	r.mu.Lock()
	paths := r.paths
	r.paths = nil
	r.mu.Unlock()

	for _, path := range paths {
		exists, err := afero.Exists(r.fs, path)
		if err != nil {
			r.debugf("failed to stat temporary path [%s]: %v", path, err)
			continue
		}
		if !exists {
			continue
		}

		if err := ForceRemove(r.fs, path); err != nil {
			r.debugf("failed to remove temporary path [%s]: %v", path, err)
		}
	}
}

func (r *Registry) debugf(format string, args ...interface{}) {
	if r.log != nil {
		r.log.Debugf(format, args...)
	}
}
