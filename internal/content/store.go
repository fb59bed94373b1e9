package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"github.com/nfrund/backstory/internal/metrics"
)

// Store holds the current Site and swaps it atomically on reload. A reload
// that fails validation keeps the previous content.
type Store struct {
	fs     afero.Fs
	path   string
	logger *slog.Logger

	mu        sync.RWMutex
	site      *Site
	listeners []func(*Site)
}

// NewStore loads path (or the built-in content when empty) from fs.
func NewStore(fs afero.Fs, path string, logger *slog.Logger) (*Store, error) {
	site, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	s := &Store{fs: fs, path: path, logger: logger, site: site}
	s.record(site)
	return s, nil
}

// Current returns the active content.
func (s *Store) Current() *Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// Path returns the content file path, empty for built-in content.
func (s *Store) Path() string { return s.path }

// OnReload registers fn to run after every successful reload.
func (s *Store) OnReload(fn func(*Site)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload re-reads the content file.
func (s *Store) Reload() error {
	site, err := Load(s.fs, s.path)
	if err != nil {
		metrics.ContentReloads.WithLabelValues("error").Inc()
		return err
	}

	s.mu.Lock()
	s.site = site
	listeners := append([]func(*Site){}, s.listeners...)
	s.mu.Unlock()

	metrics.ContentReloads.WithLabelValues("ok").Inc()
	s.record(site)
	for _, fn := range listeners {
		fn(site)
	}
	return nil
}

func (s *Store) record(site *Site) {
	metrics.ContentItems.WithLabelValues("journey").Set(float64(len(site.Journey.Cards)))
	metrics.ContentItems.WithLabelValues("podcast").Set(float64(len(site.Podcast.Episodes)))
	metrics.ContentItems.WithLabelValues("contact_info").Set(float64(len(site.Contact.Info)))
}

// Watch reloads the content whenever its file changes on disk. It returns
// once the watcher is running; the watcher stops when ctx is cancelled.
// Built-in content has nothing to watch.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		s.logger.Info("Built-in content in use, skipping file system watcher setup")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go s.watchFiles(ctx, watcher)
	s.logger.Debug("Started file system watcher for content hot-reloading", "path", s.path)
	return nil
}

func (s *Store) watchFiles(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		watcher.Close()
		s.logger.Info("Content watcher stopped")
	}()

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s.handleFileEvent(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error("Content watcher error", "error", err)
		}
	}
}

func (s *Store) handleFileEvent(event fsnotify.Event) {
	s.logger.Info("Content file changed, reloading", "event", event.Op.String(), "path", event.Name)
	if err := s.Reload(); err != nil {
		s.logger.Error("Failed to reload content, keeping previous version", "error", err)
		return
	}
	s.logger.Info("Successfully reloaded content", "path", event.Name)
}
