// Package artwork renders item thumbnails as terminal previews.
//
// # Renderer
//
// A Renderer decodes a local image (PNG, JPEG or GIF), scales it to a
// target width and draws it with half-block characters, two pixel rows per
// text row:
//
//	r := artwork.NewRenderer(24)
//	art, err := r.RenderFile(ctx, "covers/iron-empire.png")
//	if errors.Is(err, artwork.ErrRemote) {
//	    // URL thumbnails are not fetched; show a placeholder instead
//	}
//
// # Loader
//
// A Loader renders the thumbnails of a whole page concurrently, bounded by
// its concurrency limit, and returns one Preview per item in page order.
// Failures are reported per item and never abort the batch. Rendered
// previews are cached by reference.
package artwork
