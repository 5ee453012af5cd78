package download

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/handiism/gamevault/internal/model"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultSpeed is the simulated throughput in bytes per second.
	DefaultSpeed int64 = 2 * humanize.GByte

	// DefaultTick is the interval between progress updates.
	DefaultTick = 100 * time.Millisecond

	// DefaultConcurrency is the number of simultaneous transfers.
	DefaultConcurrency = 2
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	ItemID  string
	Message string
	Level   ProgressLevel
}

// Options configures a Manager. Zero fields take the defaults.
type Options struct {
	Speed       int64
	Tick        time.Duration
	Concurrency int
}

// Progress is a snapshot of the whole queue.
type Progress struct {
	Received int64
	Total    int64
	Done     int32
	Files    int32
}

// Fraction returns Received/Total in [0, 1]. An empty queue is complete.
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 1
	}
	return min(float64(p.Received)/float64(p.Total), 1)
}

// Active reports whether queued items are still transferring.
func (p Progress) Active() bool {
	return p.Done < p.Files
}

// Manager coordinates simulated downloads.
//
// Manager is safe for concurrent use.
type Manager struct {
	opts Options

	mu      sync.RWMutex
	items   []model.Item
	queued  map[string]bool
	pending []model.Item

	totalBytes      atomic.Int64
	receivedBytes   atomic.Int64
	totalFiles      atomic.Int32
	downloadedFiles atomic.Int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager.
func NewManager(opts Options, onProgress func(ProgressEvent)) *Manager {
	if opts.Speed <= 0 {
		opts.Speed = DefaultSpeed
	}
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	return &Manager{
		opts:       opts,
		queued:     make(map[string]bool),
		onProgress: onProgress,
	}
}

// Enqueue adds items to the queue and reports how many were new. Items
// already queued, finished or not, are skipped.
func (m *Manager) Enqueue(items ...model.Item) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	added := 0
	for _, item := range items {
		if m.queued[item.ID] {
			continue
		}
		m.queued[item.ID] = true
		m.items = append(m.items, item)
		m.pending = append(m.pending, item)
		m.totalFiles.Add(1)
		m.totalBytes.Add(Size(item))
		added++

		m.progress(ProgressEvent{
			ItemID:  item.ID,
			Message: fmt.Sprintf("Queued: %s (%s)", item.Title, item.Size),
			Level:   LevelVerbose,
		})
	}
	return added
}

// Queued reports whether the item with id has been enqueued.
func (m *Manager) Queued(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.queued[id]
}

// Start transfers every pending item and blocks until they finish. The
// first failure cancels the remaining transfers of this call.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	batch := m.pending
	m.pending = nil
	m.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Concurrency)

	for _, item := range batch {
		g.Go(func() error {
			return m.download(ctx, item)
		})
	}

	return g.Wait()
}

// GetProgress returns current download progress.
func (m *Manager) GetProgress() Progress {
	return Progress{
		Received: m.receivedBytes.Load(),
		Total:    m.totalBytes.Load(),
		Done:     m.downloadedFiles.Load(),
		Files:    m.totalFiles.Load(),
	}
}

// GetNames returns the file names of all queued items in queue order.
func (m *Manager) GetNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.items))
	for i, item := range m.items {
		names[i] = FileName(item)
	}
	return names
}

// Size returns the simulated transfer size of item in bytes, taken from
// its size label.
func Size(item model.Item) int64 {
	return int64(item.SizeBytes())
}

func (m *Manager) download(ctx context.Context, item model.Item) error {
	m.progress(ProgressEvent{
		ItemID:  item.ID,
		Message: fmt.Sprintf("Downloading: %s", FileName(item)),
		Level:   LevelInfo,
	})

	remaining := Size(item)
	step := max(int64(float64(m.opts.Speed)*m.opts.Tick.Seconds()), 1)

	ticker := time.NewTicker(m.opts.Tick)
	defer ticker.Stop()

	for remaining > 0 {
		select {
		case <-ctx.Done():
			m.progress(ProgressEvent{
				ItemID:  item.ID,
				Message: fmt.Sprintf("Cancelled: %s", item.Title),
				Level:   LevelWarning,
			})
			return ctx.Err()
		case <-ticker.C:
		}
		n := min(step, remaining)
		remaining -= n
		m.receivedBytes.Add(n)
	}

	m.downloadedFiles.Add(1)
	m.progress(ProgressEvent{
		ItemID:  item.ID,
		Message: fmt.Sprintf("Downloaded: %s", FileName(item)),
		Level:   LevelSuccess,
	})
	return nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
