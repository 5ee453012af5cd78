package artwork

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

var (
	// ErrRemote is returned for thumbnails that are URLs rather than files.
	ErrRemote = errors.New("remote artwork is not previewed")

	// ErrNoArtwork is returned for items without a thumbnail.
	ErrNoArtwork = errors.New("no artwork")
)

// DefaultWidth is the preview width in terminal cells.
const DefaultWidth = 24

const halfBlock = "▀"

// Renderer turns images into half-block terminal art.
type Renderer struct {
	width int
}

// NewRenderer creates a Renderer producing previews width cells wide.
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{width: width}
}

// Width returns the preview width in cells.
func (r *Renderer) Width() int {
	return r.width
}

// RenderFile reads and renders the image at ref. URLs yield ErrRemote.
func (r *Renderer) RenderFile(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", ErrNoArtwork
	}
	if isRemote(ref) {
		return "", ErrRemote
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("failed to read artwork: %w", err)
	}
	return r.RenderBytes(data)
}

// RenderBytes decodes and renders encoded image data.
func (r *Renderer) RenderBytes(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode artwork: %w", err)
	}
	return r.Render(img), nil
}

// Render draws img scaled to the renderer width. The result has
// ceil(h/2) lines for a scaled pixel height h.
func (r *Renderer) Render(img image.Image) string {
	scaled := Scale(img, r.width, r.width*2)
	bounds := scaled.Bounds()

	var sb strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			sb.WriteByte('\n')
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(scaled.At(x, y)))
			if y+1 < bounds.Max.Y {
				style = style.Background(hexColor(scaled.At(x, y+1)))
			}
			sb.WriteString(style.Render(halfBlock))
		}
	}
	return sb.String()
}

// Scale resizes img to fit within maxWidth x maxHeight, preserving the
// aspect ratio. Images that already fit are returned unchanged.
//
// The Catmull-Rom kernel is used for high-quality resampling.
func Scale(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		width = max(1, int(float64(maxHeight)*ratio))
		height = maxHeight
	} else {
		height = max(1, int(float64(maxWidth)/ratio))
		width = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "//")
}
