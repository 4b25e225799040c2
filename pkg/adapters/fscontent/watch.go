package fscontent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/supervisor"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// Event describes a content change on disk.
type Event struct {
	// Path is relative to the repository root.
	Path string
	// Op is "write" for created or modified documents, "remove" otherwise.
	Op string
	// Timestamp is a unix timestamp.
	Timestamp int64
}

const debounceInterval = 50 * time.Millisecond

// Watch starts a supervised watcher that emits an Event whenever a content
// document changes. The watcher restarts on failure and stops when the
// returned stop function is called or ctx is cancelled.
func (r *Repository) Watch(ctx context.Context, events chan<- Event) (stop func(context.Context) error, err error) {
	spec := supervisor.Spec{
		Name: "content-watcher",
		Type: string(worker.TypeGoroutine),
		Factory: func() (worker.Worker, error) {
			return newWatchWorker(r, events), nil
		},
		Backoff: supervisor.Backoff{
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     5 * time.Second,
			Multiplier:      2,
			ResetDuration:   30 * time.Second,
			MaxRestarts:     10,
		},
		RestartPolicy: supervisor.RestartOnFailure,
	}

	sup := supervisor.New("fscontent", supervisor.StrategyOneForOne, spec)
	if err := sup.Start(ctx); err != nil {
		return nil, fmt.Errorf("fscontent: starting watcher: %w", err)
	}
	return sup.Stop, nil
}

type watchWorker struct {
	*worker.BaseWorker
	repo      *Repository
	events    chan<- Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(repo *Repository, events chan<- Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("content-watcher"),
		repo:       repo,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := recursiveAdd(watcher, w.repo.root); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(debounceInterval)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *watchWorker) run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			w.debouncer.stopAndWait(5 * time.Second)
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.debouncer.stopAndWait(5 * time.Second)
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				w.debouncer.stopAndWait(5 * time.Second)
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.repo.logger.Error("fsnotify error", "error", wErr)
		}
	}
}

func (w *watchWorker) handleEvent(ctx context.Context, event fsnotify.Event) {
	// New subdirectories need their own watch.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = w.watcher.Add(event.Name)
			return
		}
	}

	if ok, _ := doublestar.Match(docPattern, filepath.Base(event.Name)); !ok {
		return
	}

	op := mapEventOp(event)
	if op == "" {
		return
	}

	rel, err := filepath.Rel(w.repo.root, event.Name)
	if err != nil {
		rel = event.Name
	}

	w.repo.logger.Debug("content change", "path", rel, "op", op)

	w.debouncer.add(rel, func() {
		select {
		case w.events <- Event{Path: rel, Op: op, Timestamp: time.Now().Unix()}:
		case <-ctx.Done():
		}
	})
}

func mapEventOp(event fsnotify.Event) string {
	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return "write"
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return "remove"
	default:
		return ""
	}
}

func recursiveAdd(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// debouncer coalesces bursts of events per key. Editors routinely write a
// file several times in quick succession; only the last write matters.
type debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		interval: interval,
		timers:   make(map[string]*time.Timer),
	}
}

func (d *debouncer) add(key string, fire func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if timer, ok := d.timers[key]; ok {
		if timer.Stop() {
			d.wg.Done()
		}
	}
	d.wg.Add(1)
	d.timers[key] = time.AfterFunc(d.interval, func() {
		defer d.wg.Done()
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		fire()
	})
}

// stopAndWait stops accepting new events and waits for in-flight timers.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
