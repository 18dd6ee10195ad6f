package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
)

// hub wakes every subscriber of one store instance.
type hub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[chan struct{}]struct{})}
}

func (h *hub) add() chan struct{} {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *hub) remove(ch chan struct{}) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
}

// broadcast never blocks: a pending wake-up already covers this one.
func (h *hub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// fileWatcher turns writes by other processes to the database file (or its
// WAL and journal siblings) into hub wake-ups.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	prefix  string
	hub     *hub
	logger  *logger.Logger

	wg        sync.WaitGroup
	done      chan struct{}
	closeOnce sync.Once
}

// Watch starts watching the database file for writes made by other
// processes. It is a no-op for stores without a file path.
func (s *SQLiteStore) Watch() error {
	if s.db.Path() == "" || s.watcher != nil {
		return nil
	}

	w, err := newFileWatcher(s.db.Path(), s.hub, s.logger)
	if err != nil {
		return err
	}
	s.watcher = w
	return nil
}

func newFileWatcher(dbPath string, h *hub, log *logger.Logger) (*fileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	abs, err := filepath.Abs(dbPath)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	// the directory is watched because SQLite creates and deletes siblings
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch database directory: %w", err)
	}

	fw := &fileWatcher{
		watcher: watcher,
		prefix:  filepath.Base(abs),
		hub:     h,
		logger:  log,
		done:    make(chan struct{}),
	}

	fw.wg.Add(1)
	go fw.run()

	return fw, nil
}

func (fw *fileWatcher) run() {
	defer fw.wg.Done()

	for {
		select {
		case <-fw.done:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasPrefix(filepath.Base(event.Name), fw.prefix) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.hub.broadcast()
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn().Err(err).Str("func", "fileWatcher.run").Msg("file watcher error")
		}
	}
}

// Stop shuts the watcher down and waits for its goroutine.
func (fw *fileWatcher) Stop() error {
	var err error
	fw.closeOnce.Do(func() {
		close(fw.done)
		err = fw.watcher.Close()
		fw.wg.Wait()
	})
	if err != nil && !errors.Is(err, fsnotify.ErrClosed) {
		return fmt.Errorf("failed to close file watcher: %w", err)
	}
	return nil
}
