package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/gamevault/internal/model"
)

// homeItems lists the selectable home entries: the featured item, then the
// new items, then the top downloads.
func (m Model) homeItems() []model.Item {
	h := m.app.Catalog().Highlights()
	var items []model.Item
	if h.HasFeatured {
		items = append(items, h.Featured)
	}
	items = append(items, h.New...)
	return append(items, h.Top...)
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.homeItems()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.homeCursor > 0 {
			m.homeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.homeCursor < len(items)-1 {
			m.homeCursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.homeCursor < len(items) {
			return m.openDetail(items[m.homeCursor])
		}
	case msg.String() == "q":
		m.cancel()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewHome() string {
	h := m.app.Catalog().Highlights()
	if !h.HasFeatured {
		return dimStyle.Render("El catálogo está vacío.")
	}

	var b strings.Builder
	idx := 0
	line := func(item model.Item, detail string) {
		text := fmt.Sprintf("%-36s %s", truncate(item.Title, 36), detail)
		if idx == m.homeCursor {
			b.WriteString(selectedStyle.Render("› " + text))
		} else {
			b.WriteString("  " + itemStyle.Render(text))
		}
		b.WriteString("\n")
		idx++
	}

	b.WriteString(subtitleStyle.Render("Destacado"))
	b.WriteString("\n")
	line(h.Featured, fmt.Sprintf("%s · ★ %.1f · %s", h.Featured.Category, h.Featured.Rating, priceTag(h.Featured)))
	b.WriteString(dimStyle.Render("  " + truncate(firstParagraph(h.Featured.Description), 80)))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Nuevos lanzamientos"))
	b.WriteString("\n")
	if len(h.New) == 0 {
		b.WriteString(dimStyle.Render("  Sin novedades por ahora"))
		b.WriteString("\n")
	}
	for _, item := range h.New {
		line(item, item.ReleaseDate.Format("2006-01-02"))
	}
	b.WriteString("\n")

	b.WriteString(subtitleStyle.Render("Más descargados"))
	b.WriteString("\n")
	for _, item := range h.Top {
		line(item, "↓ "+item.FormatDownloads())
	}

	return b.String()
}

func priceTag(item model.Item) string {
	if item.IsFree() {
		return "Gratis"
	}
	return fmt.Sprintf("$%d", item.Price)
}

func firstParagraph(s string) string {
	if i := strings.Index(s, "\n"); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
