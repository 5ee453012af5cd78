package tui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/gamevault/internal/artwork"
	"github.com/handiism/gamevault/internal/catalog"
	"github.com/handiism/gamevault/internal/model"
)

const pagerWidth = 7

var (
	popularityCycle = []catalog.Popularity{catalog.PopularityAll, catalog.PopularityPopular, catalog.PopularityNew}
	sizeCycle       = []catalog.SizeClass{catalog.SizeAll, catalog.SizeSmall, catalog.SizeMedium, catalog.SizeLarge}
	ratingCycle     = []float64{0, 3, 4, 4.5}
)

var popularityLabels = map[catalog.Popularity]string{
	catalog.PopularityAll:     "Todos",
	catalog.PopularityPopular: "Populares",
	catalog.PopularityNew:     "Nuevos",
}

var sizeLabels = map[catalog.SizeClass]string{
	catalog.SizeAll:    "Todos",
	catalog.SizeSmall:  "< 10 GB",
	catalog.SizeMedium: "10-30 GB",
	catalog.SizeLarge:  "> 30 GB",
}

func (m Model) updateGames(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}

	store := m.app.Catalog()
	page := store.View()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(page.Items)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		store.PrevPage()
	case key.Matches(msg, m.keys.Next):
		store.NextPage()
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(page.Items) {
			return m.openDetail(page.Items[m.cursor])
		}
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Sort):
		store.SetSortKey(store.SortKey().Next())
	case key.Matches(msg, m.keys.Category):
		f := store.Filter()
		f.Category = nextCategory(f.Category)
		store.SetFilter(f)
	case key.Matches(msg, m.keys.Popularity):
		f := store.Filter()
		f.Popularity = cycle(popularityCycle, f.Popularity)
		store.SetFilter(f)
	case key.Matches(msg, m.keys.Rating):
		f := store.Filter()
		f.MinRating = cycle(ratingCycle, f.MinRating)
		store.SetFilter(f)
	case key.Matches(msg, m.keys.Size):
		f := store.Filter()
		f.Size = cycle(sizeCycle, f.Size)
		store.SetFilter(f)
	case key.Matches(msg, m.keys.GenrePrev):
		m.genreCursor = (m.genreCursor + len(model.Genres) - 1) % len(model.Genres)
		return m, nil
	case key.Matches(msg, m.keys.GenreNext):
		m.genreCursor = (m.genreCursor + 1) % len(model.Genres)
		return m, nil
	case key.Matches(msg, m.keys.GenreToggle):
		store.SetFilter(store.Filter().ToggleGenre(model.Genres[m.genreCursor]))
	case key.Matches(msg, m.keys.ClearFilter):
		store.ResetFilter()
	case msg.String() == "q":
		m.cancel()
		return m, tea.Quit
	default:
		return m, nil
	}

	m.cursor = 0
	return m, m.loadPreviews()
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	store := m.app.Catalog()
	if term := m.search.Value(); term != store.SearchTerm() {
		store.SetSearchTerm(term)
		m.cursor = 0
		return m, tea.Batch(cmd, m.loadPreviews())
	}
	return m, cmd
}

func (m Model) viewGames() string {
	store := m.app.Catalog()
	page := store.View()

	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.viewFilters())
	b.WriteString("\n\n")

	if page.Empty() {
		b.WriteString(warningStyle.Render("No se encontraron juegos"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Prueba con otros términos o limpia los filtros (x)."))
		return b.String()
	}

	var list strings.Builder
	for i, item := range page.Items {
		text := fmt.Sprintf("%-32s %-11s ★ %.1f  ↓ %-6s %s",
			truncate(item.Title, 32), item.Category, item.Rating, item.FormatDownloads(), priceTag(item))
		if i == m.cursor {
			list.WriteString(selectedStyle.Render("› " + text))
		} else {
			list.WriteString("  " + itemStyle.Render(text))
		}
		list.WriteString("\n")
	}

	listView := list.String()
	if m.loader != nil && m.cursor < len(page.Items) {
		listView = lipgloss.JoinHorizontal(lipgloss.Top, listView, "  ", m.viewPreview(page.Items[m.cursor]))
	}
	b.WriteString(listView)
	b.WriteString("\n")
	b.WriteString(m.viewPager(page))

	return b.String()
}

func (m Model) viewFilters() string {
	store := m.app.Catalog()
	f := store.Filter()

	category := "Todas"
	if f.Category != "" && f.Category != catalog.AnyCategory {
		category = f.Category
	}
	rating := "Todas"
	if f.MinRating > 0 {
		rating = strconv.FormatFloat(f.MinRating, 'f', -1, 64) + "+"
	}

	var genres []string
	for i, g := range model.Genres {
		mark := "[ ]"
		if slices.Contains(f.Genres, g) {
			mark = "[×]"
		}
		label := mark + " " + g
		if i == m.genreCursor {
			label = subtitleStyle.Render(label)
		} else {
			label = dimStyle.Render(label)
		}
		genres = append(genres, label)
	}

	return infoStyle.Render(fmt.Sprintf(
		"Orden: %s · Categoría: %s · Popularidad: %s · Calificación: %s · Tamaño: %s",
		store.SortKey().Label(), category, popularityLabels[f.Popularity], rating, sizeLabels[f.Size],
	)) + "\n" + strings.Join(genres, " ")
}

func (m Model) viewPager(page catalog.Page) string {
	var parts []string
	if page.HasPrev() {
		parts = append(parts, "‹")
	}
	for _, n := range catalog.PageWindow(page.Number, page.TotalPages, pagerWidth) {
		if n == page.Number {
			parts = append(parts, selectedStyle.Render(fmt.Sprintf(" %d ", n)))
		} else {
			parts = append(parts, fmt.Sprintf(" %d ", n))
		}
	}
	if page.HasNext() {
		parts = append(parts, "›")
	}
	return strings.Join(parts, " ") + dimStyle.Render(fmt.Sprintf("   %d juegos · página %d de %d", page.TotalItems, page.Number, page.TotalPages))
}

func (m Model) viewPreview(item model.Item) string {
	width := m.loader.Width()
	p, ok := m.previews[item.ID]
	switch {
	case !ok:
		return placeholderStyle.Width(width).Height(width / 2).Render(m.spinner.View())
	case p.Err != nil:
		label := "sin vista previa"
		if errors.Is(p.Err, artwork.ErrRemote) {
			label = "imagen remota"
		}
		return placeholderStyle.Width(width).Height(width / 2).Render(label)
	default:
		return p.Art
	}
}

func nextCategory(current string) string {
	all := append([]string{catalog.AnyCategory}, model.Categories...)
	if current == "" {
		current = catalog.AnyCategory
	}
	return cycle(all, current)
}

func cycle[T comparable](values []T, current T) T {
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}
