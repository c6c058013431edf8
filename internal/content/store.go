package content

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"editfolio.dev/internal/models"
)

// DefaultDebounce collapses the burst of events editors emit on save
const DefaultDebounce = 300 * time.Millisecond

// Store holds the current site content. A reload swaps the whole value, so
// readers never observe a partially updated site.
type Store struct {
	fs       afero.Fs
	path     string
	debounce time.Duration

	mu   sync.RWMutex
	site *models.Site
}

// NewStore loads the content file and returns a store serving it
func NewStore(fs afero.Fs, path string) (*Store, error) {
	site, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	return &Store{
		fs:       fs,
		path:     path,
		debounce: DefaultDebounce,
		site:     site,
	}, nil
}

// NewStaticStore serves a fixed site. Reload and Watch are no-ops.
func NewStaticStore(site *models.Site) *Store {
	return &Store{site: site}
}

// Site returns the current content
func (s *Store) Site() *models.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// Path returns the content file path, empty for static stores
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the content file. On failure the current content is kept.
func (s *Store) Reload() error {
	if s.fs == nil {
		return nil
	}
	site, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.site = site
	s.mu.Unlock()
	return nil
}

// Watch reloads the content whenever the file changes, until ctx is done.
// The parent directory is watched as well so that editors which save by
// rename are picked up.
func (s *Store) Watch(ctx context.Context) error {
	if s.fs == nil {
		<-ctx.Done()
		return nil
	}

	absPath, err := filepath.Abs(s.path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	log := logrus.WithField("path", s.path)
	log.Info("Watching content for changes")

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := s.Reload(); err != nil {
				log.WithError(err).Warn("Content reload failed, keeping previous content")
				continue
			}
			site := s.Site()
			log.WithFields(logrus.Fields{
				"projects":     len(site.Projects),
				"testimonials": len(site.Testimonials),
			}).Info("Content reloaded")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("Content watcher error")
		}
	}
}
