// Package source provides the data sources behind the catalog: a seeded
// mock generator and YAML/JSON fixture files.
//
// # Interfaces
//
// Consumers depend on two small interfaces:
//
//	type Catalog interface {
//	    LoadItems(ctx context.Context) ([]model.Item, error)
//	}
//
//	type Reviews interface {
//	    Reviews(ctx context.Context, itemID string, n int) ([]model.Review, error)
//	}
//
// Review fetches are not idempotent: a Generator returns a fresh batch on
// every call, mirroring a remote service that samples recent reviews.
//
// # Generator
//
// Generator produces a deterministic catalog from a seed:
//
//	gen := source.NewGenerator(42)
//	items, _ := gen.LoadItems(ctx) // 50 items by default
//
// # Fixture files
//
// FileSource reads catalog files (".yaml", ".yml" or ".json") concurrently
// and concatenates their items in path order:
//
//	fs := source.NewFileSource([]string{"games.yaml", "extra.json"})
//	items, err := fs.LoadItems(ctx)
//
// WriteFixture exports a catalog in the same format, so a generated
// catalog can be edited by hand and loaded back.
//
// # Combining sources
//
// Combine joins a Catalog with an ordered list of review sources. Review
// requests fall through sources that answer ErrNotFound:
//
//	src := source.Combine(fs, fs, gen)
package source
