package input

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/felixgeelhaar/patrol-go/infrastructure/logging"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 200 * time.Millisecond

// ChangeHandler receives the contents of the watched file after it settles.
type ChangeHandler func(ctx context.Context, contents string)

// Watcher reports a file's contents each time a burst of writes settles.
type Watcher struct {
	path     string
	debounce time.Duration
	handler  ChangeHandler
	loader   *Loader
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period after the last event before the handler runs.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string, handler ChangeHandler, opts ...WatcherOption) (*Watcher, error) {
	if path == StdinPath {
		return nil, ErrWatchStdin
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		handler:  handler,
		loader:   NewLoader(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers the current contents once, then again after every settled
// change, until ctx is done. The parent directory is watched so that editors
// replacing the file by rename are observed.
func (w *Watcher) Run(ctx context.Context) error {
	contents, err := w.loader.Load(w.path)
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	w.handler(ctx, contents)

	// settle is nil while no change is pending.
	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || !relevant(event.Op) {
				continue
			}
			logging.Trace().
				Add(logging.Component("watcher")).
				Add(logging.Str("event", event.Op.String())).
				Msg("change observed")
			settle = time.After(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logging.Warn().
				Add(logging.Component("watcher")).
				Add(logging.ErrorField(err)).
				Msg("watch error")

		case <-settle:
			settle = nil
			contents, err := w.loader.Load(w.path)
			if err != nil {
				logging.Warn().
					Add(logging.Component("watcher")).
					Add(logging.Str("path", w.path)).
					Add(logging.ErrorField(err)).
					Msg("reload failed")
				continue
			}
			w.handler(ctx, contents)
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
