// Package watcher provides file system monitoring for automatic organization.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// WatchConfig contains watcher settings.
type WatchConfig struct {
	Debounce       time.Duration // Delay after the last event before processing a file
	IgnorePatterns []string      // Glob patterns to ignore (e.g. "*.tmp", "*.part")
}

// DefaultWatchConfig returns a WatchConfig with sensible defaults.
func DefaultWatchConfig() *WatchConfig {
	return &WatchConfig{
		Debounce:       2 * time.Second,
		IgnorePatterns: DefaultIgnorePatterns(),
	}
}

// WatchSummary contains stats from a watch session.
type WatchSummary struct {
	FilesHandled int
	FilesSkipped int
	Errors       int
	Duration     time.Duration
}

// FileHandler is called for each stable new file in the watched directory.
type FileHandler func(path string) error

// Watcher monitors a directory and routes settled files to a handler.
// Handler invocations are serialized: files are processed strictly one
// at a time, never concurrently.
type Watcher struct {
	config    *WatchConfig
	handler   FileHandler
	filter    *FileFilter
	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup
	startTime time.Time

	handlerMu sync.Mutex

	mu           sync.Mutex
	pending      map[string]*time.Timer
	filesHandled int
	filesSkipped int
	errors       int
}

// New creates a Watcher with the given configuration.
// If config is nil, default configuration is used.
func New(config *WatchConfig, handler FileHandler) *Watcher {
	if config == nil {
		config = DefaultWatchConfig()
	}
	return &Watcher{
		config:  config,
		handler: handler,
		filter:  NewFileFilter(config.IgnorePatterns),
		done:    make(chan struct{}),
		pending: make(map[string]*time.Timer),
	}
}

// Start begins watching the given directory for new files.
// It returns an error if the watcher cannot be initialized; otherwise it
// runs until Stop is called.
func (w *Watcher) Start(dir string) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		w.fsWatcher.Close()
		return err
	}
	if err := w.fsWatcher.Add(absDir); err != nil {
		w.fsWatcher.Close()
		return err
	}

	w.startTime = time.Now()
	w.done = make(chan struct{})

	w.wg.Add(1)
	go w.eventLoop()

	log.Info().Str("directory", absDir).Msg("watching directory")
	return nil
}

// Stop ends the watch session and returns its summary.
func (w *Watcher) Stop() WatchSummary {
	close(w.done)
	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}
	w.wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}

	return WatchSummary{
		FilesHandled: w.filesHandled,
		FilesSkipped: w.filesSkipped,
		Errors:       w.errors,
		Duration:     time.Since(w.startTime),
	}
}

func (w *Watcher) eventLoop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.scheduleFile(event.Name)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("watch error")
		}
	}
}

// scheduleFile debounces events per path: the handler fires only after
// the file has been quiet for the configured delay, so partially written
// files are not organized mid-download.
func (w *Watcher) scheduleFile(path string) {
	if w.filter.ShouldIgnore(path) {
		w.mu.Lock()
		w.filesSkipped++
		w.mu.Unlock()
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, exists := w.pending[path]; exists {
		timer.Reset(w.config.Debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.config.Debounce, func() {
		w.processFile(path)
	})
}

func (w *Watcher) processFile(path string) {
	w.mu.Lock()
	delete(w.pending, path)
	w.mu.Unlock()

	select {
	case <-w.done:
		return
	default:
	}

	w.handlerMu.Lock()
	err := w.handler(path)
	w.handlerMu.Unlock()

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.errors++
		log.Error().Err(err).Str("file", path).Msg("error handling watched file")
		return
	}
	w.filesHandled++
}
