package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/gamevault/internal/download"
	"github.com/handiism/gamevault/internal/model"
	"github.com/handiism/gamevault/internal/state"
)

var specLabels = map[string]string{
	"os":        "SO",
	"processor": "Procesador",
	"memory":    "Memoria",
	"graphics":  "Gráficos",
	"storage":   "Almacenamiento",
}

func (m Model) openDetail(item model.Item) (tea.Model, tea.Cmd) {
	if err := m.app.Select(m.ctx, item); err != nil {
		m.logger.Warn("detail opened without reviews", "item_id", item.ID, "error", err)
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.app.CloseDetail()
	case key.Matches(msg, m.keys.Tab):
		m.app.NextTab()
	case key.Matches(msg, m.keys.ShiftTab):
		m.app.PrevTab()
	case key.Matches(msg, m.keys.Prev):
		m.app.PrevScreenshot()
	case key.Matches(msg, m.keys.Next):
		m.app.NextScreenshot()
	case key.Matches(msg, m.keys.Download):
		if !m.app.RequestDownload() {
			return m.openLogin()
		}
		return m.startDownload()
	}
	return m, nil
}

func (m Model) startDownload() (tea.Model, tea.Cmd) {
	item, _ := m.app.Selected()
	if m.downloads.Enqueue(item) == 0 {
		m.flash = fmt.Sprintf("%s ya está en la cola de descargas", item.Title)
		return m, nil
	}
	m.flash = fmt.Sprintf("¡Descarga de %s iniciada!", item.Title)
	m.logger.Info("download started", "item_id", item.ID)

	ctx, downloads := m.ctx, m.downloads
	start := func() tea.Msg {
		return DownloadDoneMsg{Err: downloads.Start(ctx)}
	}
	return m, tea.Batch(start, downloadTick())
}

func (m Model) downloadDone(msg DownloadDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.Err, context.Canceled):
	case msg.Err != nil:
		m.logger.Error("download failed", "error", msg.Err)
		m.flash = "Error en la descarga: " + msg.Err.Error()
	case !m.downloads.GetProgress().Active():
		m.flash = "Descargas completadas"
	}
	return m, nil
}

func downloadTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return DownloadTickMsg{}
	})
}

func (m Model) viewDetail() string {
	item, _ := m.app.Selected()

	var b strings.Builder
	b.WriteString(titleStyle.Render(item.Title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(item.Category + " · " + strings.Join(item.Genres, ", ")))
	b.WriteString("\n\n")

	b.WriteString(m.rating.ViewAs(item.Rating / 5))
	b.WriteString(fmt.Sprintf("  ★ %.1f", item.Rating))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("↓ %s descargas · %s · %s",
		item.FormatDownloads(), item.Size, item.ReleaseDate.Format("2006-01-02"))))
	b.WriteString("\n")

	if idx, ref, ok := m.app.Screenshot(); ok {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Captura %d/%d: %s", idx+1, len(item.Screenshots), truncate(ref, 60))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var tabs []string
	for _, t := range state.Tabs {
		if t == m.app.Tab() {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n\n")

	switch m.app.Tab() {
	case state.TabRequirements:
		b.WriteString(m.viewRequirements(item))
	case state.TabDownloads:
		b.WriteString(m.viewDownloads(item))
	case state.TabReviews:
		b.WriteString(m.viewReviews())
	default:
		b.WriteString(lipgloss.NewStyle().Width(m.contentWidth()).Render(item.Description))
	}

	return boxStyle.Render(b.String())
}

func (m Model) viewRequirements(item model.Item) string {
	column := func(title string, spec model.Spec) string {
		var b strings.Builder
		b.WriteString(subtitleStyle.Render(title))
		b.WriteString("\n")
		for _, f := range spec.Fields() {
			b.WriteString(dimStyle.Render(specLabels[f[0]] + ": "))
			b.WriteString(f[1])
			b.WriteString("\n")
		}
		return b.String()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		column("Mínimos", item.Requirements.Minimum),
		"    ",
		column("Recomendados", item.Requirements.Recommended),
	)
}

func (m Model) viewDownloads(item model.Item) string {
	var b strings.Builder
	b.WriteString(itemStyle.Render(item.PriceLabel()))
	b.WriteString("\n\n")
	switch {
	case m.downloads.Queued(item.ID):
		p := m.downloads.GetProgress()
		b.WriteString(m.dlBar.ViewAs(p.Fraction()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d de %d descargas completadas", p.Done, p.Files)))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Archivo: " + download.FileName(item)))
	case m.app.LoggedIn():
		b.WriteString(successStyle.Render("Pulsa d para descargar."))
	default:
		b.WriteString(warningStyle.Render("Inicia sesión para descargar (d)."))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Tamaño de la descarga: " + item.Size))
	return b.String()
}

func (m Model) viewReviews() string {
	if err := m.app.ReviewsErr(); err != nil {
		return errorStyle.Render("No se pudieron cargar las reseñas: " + err.Error())
	}
	reviews := m.app.Reviews()
	if len(reviews) == 0 {
		return dimStyle.Render("Todavía no hay reseñas.")
	}

	var b strings.Builder
	for _, r := range reviews {
		b.WriteString(itemStyle.Render(r.Username))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ★ %.1f  %s", r.Rating, r.Date.Format("2006-01-02"))))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(m.contentWidth()).Render(r.Comment))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return max(m.width-10, 20)
}
