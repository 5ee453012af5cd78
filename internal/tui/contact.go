package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/gamevault/internal/contact"
	"github.com/handiism/gamevault/internal/form"
)

const (
	contactName = iota
	contactEmail
	contactSubject
	contactMessage
	contactStops
)

var contactFields = []string{form.FieldName, form.FieldEmail, form.FieldSubject, form.FieldMessage}

var contactLabels = []string{"Nombre", "Email", "Asunto", "Mensaje"}

func newContactInputs() []textinput.Model {
	return []textinput.Model{
		newInput("Tu nombre", false),
		newInput("tu@email.com", false),
		newInput("¿En qué podemos ayudarte?", false),
	}
}

func newContactMessage() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Escribe tu mensaje..."
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.CharLimit = 2000
	return ta
}

func (m *Model) resetContactInputs() {
	m.contactInputs = newContactInputs()
	m.contactMessage.Reset()
	m.contactFocus = contactName
}

func (m *Model) blurContact() {
	for i := range m.contactInputs {
		m.contactInputs[i].Blur()
	}
	m.contactMessage.Blur()
}

func (m *Model) focusContact() tea.Cmd {
	m.blurContact()
	if m.contactFocus == contactMessage {
		return m.contactMessage.Focus()
	}
	return m.contactInputs[m.contactFocus].Focus()
}

func (m Model) updateContact(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sub := m.app.Contact()
	if sub.Status() != contact.StatusIdle {
		// The form is locked while sending and while the confirmation shows.
		return m, nil
	}

	switch {
	case msg.Type == tea.KeyCtrlS, msg.Type == tea.KeyEnter && m.contactFocus != contactMessage:
		return m.submitContact()
	case key.Matches(msg, m.keys.Tab):
		m.contactFocus = (m.contactFocus + 1) % contactStops
		return m, m.focusContact()
	case key.Matches(msg, m.keys.ShiftTab):
		m.contactFocus = (m.contactFocus + contactStops - 1) % contactStops
		return m, m.focusContact()
	}

	var cmd tea.Cmd
	var value string
	if m.contactFocus == contactMessage {
		m.contactMessage, cmd = m.contactMessage.Update(msg)
		value = m.contactMessage.Value()
	} else {
		m.contactInputs[m.contactFocus], cmd = m.contactInputs[m.contactFocus].Update(msg)
		value = m.contactInputs[m.contactFocus].Value()
	}

	field := contactFields[m.contactFocus]
	if value != draftValue(sub.Draft(), field) {
		sub.SetField(field, value)
	}
	return m, cmd
}

func (m Model) submitContact() (tea.Model, tea.Cmd) {
	msg, errs, err := m.app.Contact().Begin()
	if errors.Is(err, contact.ErrInFlight) {
		return m, nil
	}
	if !errs.OK() {
		return m, nil
	}

	m.logger.Info("contact submission started", "subject", msg.Subject)
	m.blurContact()

	ctx, sender := m.ctx, m.sender
	send := func() tea.Msg {
		return ContactSentMsg{Err: sender.Send(ctx, msg)}
	}
	return m, tea.Batch(send, m.spinner.Tick)
}

func (m Model) contactSent(msg ContactSentMsg) (tea.Model, tea.Cmd) {
	sub := m.app.Contact()
	if msg.Err != nil {
		sub.Abort()
		m.logger.Error("contact submission failed", "error", msg.Err)
		m.flash = "No se pudo enviar el mensaje: " + msg.Err.Error()
		return m, m.focusContact()
	}

	sub.Finish()
	m.logger.Info("contact submission sent")
	return m, tea.Tick(m.resetDelay, func(time.Time) tea.Msg {
		return ContactResetMsg{}
	})
}

func (m Model) viewContact() string {
	sub := m.app.Contact()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Contacto"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("¿Tienes alguna pregunta? Escríbenos."))
	b.WriteString("\n\n")

	switch sub.Status() {
	case contact.StatusSending:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Enviando mensaje..."))
		return b.String()
	case contact.StatusSent:
		b.WriteString(successStyle.Render("✓ ¡Mensaje enviado! Te responderemos pronto."))
		return b.String()
	}

	errs := sub.Errors()
	for i, label := range contactLabels {
		b.WriteString(subtitleStyle.Render(label))
		b.WriteString("\n")
		if i == contactMessage {
			b.WriteString(m.contactMessage.View())
		} else {
			b.WriteString(m.contactInputs[i].View())
		}
		b.WriteString("\n")
		if msg := errs.Get(contactFields[i]); msg != "" {
			b.WriteString(errorStyle.Render("  " + msg))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func draftValue(d form.Contact, field string) string {
	switch field {
	case form.FieldName:
		return d.Name
	case form.FieldEmail:
		return d.Email
	case form.FieldSubject:
		return d.Subject
	default:
		return d.Message
	}
}
