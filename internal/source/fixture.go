package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/handiism/gamevault/internal/model"
	"github.com/handiism/gamevault/internal/source/dto"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Format is a fixture file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DefaultFileConcurrency bounds how many fixture files are read at once.
const DefaultFileConcurrency = 4

// ErrUnsupportedFormat is returned for fixture paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported fixture format")

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// FileSource serves items and reviews from fixture files. Files are read
// once, on first use.
//
// FileSource is safe for concurrent use.
type FileSource struct {
	paths       []string
	concurrency int
	logger      *slog.Logger

	mu      sync.Mutex
	loaded  bool
	items   []model.Item
	reviews map[string][]model.Review
}

// FileOption configures a FileSource.
type FileOption func(*FileSource)

// WithConcurrency sets how many files are read in parallel.
func WithConcurrency(n int) FileOption {
	return func(fs *FileSource) {
		if n > 0 {
			fs.concurrency = n
		}
	}
}

// WithFileLogger sets the logger.
func WithFileLogger(logger *slog.Logger) FileOption {
	return func(fs *FileSource) {
		fs.logger = logger
	}
}

// NewFileSource creates a FileSource over paths.
func NewFileSource(paths []string, opts ...FileOption) *FileSource {
	fs := &FileSource{
		paths:       slices.Clone(paths),
		concurrency: DefaultFileConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(fs)
	}
	return fs
}

// LoadItems returns the items of every file, in path order then file order.
// Duplicate IDs across files are an error.
func (fs *FileSource) LoadItems(ctx context.Context) ([]model.Item, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.load(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(fs.items), nil
}

// Reviews returns up to n reviews recorded for itemID, or ErrNotFound when
// the files hold none.
func (fs *FileSource) Reviews(ctx context.Context, itemID string, n int) ([]model.Review, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.load(ctx); err != nil {
		return nil, err
	}
	reviews, ok := fs.reviews[itemID]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(reviews[:min(max(n, 0), len(reviews))]), nil
}

func (fs *FileSource) load(ctx context.Context) error {
	if fs.loaded {
		return nil
	}

	files := make([]*dto.CatalogFile, len(fs.paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fs.concurrency)
	for i, path := range fs.paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := ReadFixture(path)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	seen := make(map[string]string)
	var items []model.Item
	reviews := make(map[string][]model.Review)
	for i, f := range files {
		path := fs.paths[i]
		for _, ji := range f.Items {
			item, err := ji.ToItem()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if prev, dup := seen[item.ID]; dup {
				return fmt.Errorf("%s: duplicate item id %s (first defined in %s)", path, item.ID, prev)
			}
			seen[item.ID] = path
			items = append(items, item)
		}
		for _, jr := range f.Reviews {
			review, err := jr.ToReview()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reviews[review.ItemID] = append(reviews[review.ItemID], review)
		}
		fs.logger.Debug("loaded fixture", "path", path, "items", len(f.Items), "reviews", len(f.Reviews))
	}

	fs.items = items
	fs.reviews = reviews
	fs.loaded = true
	fs.logger.Info("catalog loaded from files", "files", len(fs.paths), "items", len(items))
	return nil
}

// ReadFixture reads and decodes one fixture file. Unknown fields are
// rejected so typos surface instead of silently dropping data.
func ReadFixture(path string) (*dto.CatalogFile, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	var f dto.CatalogFile
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return &f, nil
}

// WriteFixture encodes items and reviews to w.
func WriteFixture(w io.Writer, format Format, items []model.Item, reviews []model.Review) error {
	f := dto.CatalogFile{
		Items:   make([]dto.Item, len(items)),
		Reviews: make([]dto.Review, len(reviews)),
	}
	for i, item := range items {
		f.Items[i] = dto.FromItem(item)
	}
	for i, r := range reviews {
		f.Reviews[i] = dto.FromReview(r)
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// WriteFixtureFile writes a fixture to path, creating parent directories.
// The encoding follows the extension.
func WriteFixtureFile(path string, items []model.Item, reviews []model.Review) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	var buf bytes.Buffer
	if err := WriteFixture(&buf, format, items, reviews); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write fixture: %w", err)
	}
	return nil
}
