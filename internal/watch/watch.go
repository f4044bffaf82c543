package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"gripper-viewer/internal/logger"
)

// DefaultQuiet is how long a size directory must stay unchanged before a change is reported.
// Exporters write a variant's files in a burst.
const DefaultQuiet = 300 * time.Millisecond

// Watcher reports which size variant changed on disk under an asset root.
type Watcher struct {
	watcher *fsnotify.Watcher
	root    string
	log     *logger.Logger
	quiet   time.Duration
	changes chan string
}

// New watches root/<size> and its mesh subdirectories for every size that exists on disk.
func New(root string, sizes []string, log *logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{watcher: fw, root: filepath.Clean(root), log: log, quiet: DefaultQuiet, changes: make(chan string, len(sizes)+1)}
	for _, size := range sizes {
		for _, dir := range []string{size, filepath.Join(size, "objs"), filepath.Join(size, "stls")} {
			path := filepath.Join(w.root, dir)
			if fi, err := os.Stat(path); err != nil || !fi.IsDir() {
				continue
			}
			if err := fw.Add(path); err != nil {
				log.Warnf("watch %s: %v", path, err)
			}
		}
	}
	return w, nil
}

// Changes delivers the size token of every variant whose files changed.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// SizeOf maps a changed path to the size directory it lives in.
func SizeOf(root, path string) (string, bool) {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	size, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
	return size, size != ""
}

// Run forwards changes until ctx is done. Events for the same size are coalesced until the
// directory has been quiet for the watcher's quiet period.
func (w *Watcher) Run(ctx context.Context) {
	pending := make(map[string]bool)
	timer := time.NewTimer(w.quiet)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if size, ok := SizeOf(w.root, event.Name); ok {
				pending[size] = true
				timer.Reset(w.quiet)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnf("watch: %v", err)
		case <-timer.C:
			for size := range pending {
				select {
				case w.changes <- size:
				default:
				}
				delete(pending, size)
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
