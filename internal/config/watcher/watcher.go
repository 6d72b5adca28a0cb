// Package watcher reports changes to configuration files.
//
// Files are watched through their parent directory so that editors
// which save by renaming a temporary file over the original are seen.
// Bursts of events for one file are coalesced and delivered once the
// file has been quiet for the debounce duration.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNotRunning is returned by Stop on a watcher that was never started.
var ErrNotRunning = errors.New("watcher not running")

// Event represents a file change event.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the last coalesced change occurred.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates a new file was created.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Handler is called when a file change is detected.
type Handler func(event Event)

// ErrorHandler is called for errors reported by the file system watcher.
type ErrorHandler func(err error)

// Watcher monitors files for changes.
type Watcher struct {
	mu sync.RWMutex

	// Watched files (absolute) and the directories holding them.
	files map[string]bool
	dirs  map[string]int

	handlers []Handler
	onError  ErrorHandler

	fsw     *fsnotify.Watcher
	closeCh chan struct{}
	wg      sync.WaitGroup
	running bool

	debounce time.Duration

	pendingMu sync.Mutex
	pending   map[string]Event
	timer     *time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes.
// Zero delivers every event immediately.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets the callback for watcher errors.
func WithErrorHandler(h ErrorHandler) Option {
	return func(w *Watcher) {
		w.onError = h
	}
}

// New creates a new file watcher.
func New(opts ...Option) *Watcher {
	w := &Watcher{
		files:    make(map[string]bool),
		dirs:     make(map[string]int),
		debounce: 100 * time.Millisecond,
		pending:  make(map[string]Event),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Watch adds a file to the watch list. The file need not exist yet,
// but its directory must.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.files[absPath] {
		return nil
	}
	dir := filepath.Dir(absPath)
	if w.dirs[dir] == 0 && w.fsw != nil {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
	}
	w.files[absPath] = true
	w.dirs[dir]++
	return nil
}

// Unwatch removes a file from the watch list.
func (w *Watcher) Unwatch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.files[absPath] {
		return nil
	}
	delete(w.files, absPath)
	dir := filepath.Dir(absPath)
	w.dirs[dir]--
	if w.dirs[dir] == 0 {
		delete(w.dirs, dir)
		if w.fsw != nil {
			return w.fsw.Remove(dir)
		}
	}
	return nil
}

// OnChange registers a handler for file change events.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// Start begins watching files for changes. Starting a running watcher
// is a no-op.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	for dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return err
		}
	}

	w.fsw = fsw
	w.closeCh = make(chan struct{})
	w.running = true

	w.wg.Add(1)
	go w.processLoop(fsw, w.closeCh)
	return nil
}

// Stop stops watching files and drops undelivered events.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return ErrNotRunning
	}
	close(w.closeCh)
	fsw := w.fsw
	w.fsw = nil
	w.running = false
	w.mu.Unlock()

	err := fsw.Close()
	w.wg.Wait()

	w.pendingMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	clear(w.pending)
	w.pendingMu.Unlock()

	return err
}

// IsRunning returns whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// WatchedFiles returns the list of watched files.
func (w *Watcher) WatchedFiles() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	files := make([]string, 0, len(w.files))
	for path := range w.files {
		files = append(files, path)
	}
	return files
}

// processLoop translates fsnotify events until closeCh is closed.
func (w *Watcher) processLoop(fsw *fsnotify.Watcher, closeCh <-chan struct{}) {
	defer w.wg.Done()

	for {
		select {
		case <-closeCh:
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			w.handleFSEvent(ev)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.mu.RLock()
			onError := w.onError
			w.mu.RUnlock()
			if onError != nil {
				onError(err)
			}
		}
	}
}

func (w *Watcher) handleFSEvent(ev fsnotify.Event) {
	path := filepath.Clean(ev.Name)

	w.mu.RLock()
	watched := w.files[path]
	w.mu.RUnlock()
	if !watched {
		return
	}

	op, ok := convertOp(ev.Op)
	if !ok {
		return
	}

	event := Event{Path: path, Op: op, Time: time.Now()}
	if w.debounce > 0 {
		w.queueEvent(event)
		return
	}
	w.emitEvent(event)
}

func convertOp(op fsnotify.Op) (Operation, bool) {
	switch {
	case op.Has(fsnotify.Remove):
		return OpRemove, true
	case op.Has(fsnotify.Rename):
		return OpRename, true
	case op.Has(fsnotify.Create):
		return OpCreate, true
	case op.Has(fsnotify.Write):
		return OpWrite, true
	default:
		// Chmod alone is not a content change.
		return 0, false
	}
}

// queueEvent queues an event for debounced delivery, coalescing:
// - create + write => create
// - write + write => write (latest time)
// - any + remove => remove
// - remove + create => write (replaced by an atomic save)
func (w *Watcher) queueEvent(event Event) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if existing, ok := w.pending[event.Path]; ok {
		switch {
		case event.Op == OpRemove:
		case event.Op == OpWrite && existing.Op != OpWrite:
			event.Op = existing.Op
		case event.Op == OpCreate && (existing.Op == OpRemove || existing.Op == OpRename):
			event.Op = OpWrite
		}
	}
	w.pending[event.Path] = event

	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.flush)
	} else {
		w.timer.Reset(w.debounce)
	}
}

// flush delivers all pending events.
func (w *Watcher) flush() {
	w.pendingMu.Lock()
	events := make([]Event, 0, len(w.pending))
	for _, ev := range w.pending {
		events = append(events, ev)
	}
	clear(w.pending)
	w.timer = nil
	w.pendingMu.Unlock()

	for _, ev := range events {
		w.emitEvent(ev)
	}
}

// emitEvent calls all registered handlers with the event.
func (w *Watcher) emitEvent(event Event) {
	w.mu.RLock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
