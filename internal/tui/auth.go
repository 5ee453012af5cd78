package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/gamevault/internal/form"
)

// Input order of the login and register overlays. The register overlay
// has one extra focus stop for the terms checkbox after its inputs.
const (
	loginEmail = iota
	loginPassword
	loginRemember
)

const (
	registerUsername = iota
	registerEmail
	registerPassword
	registerConfirm
	registerTerms
)

var loginFields = []string{form.FieldEmail, form.FieldPassword}

var registerFields = []string{form.FieldUsername, form.FieldEmail, form.FieldPassword, form.FieldConfirmPassword}

func newInput(placeholder string, password bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	ti.Width = 40
	if password {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

func newLoginInputs() []textinput.Model {
	return []textinput.Model{
		newInput("tu@email.com", false),
		newInput("Contraseña", true),
	}
}

func newRegisterInputs() []textinput.Model {
	return []textinput.Model{
		newInput("Nombre de usuario", false),
		newInput("tu@email.com", false),
		newInput("Contraseña", true),
		newInput("Confirmar contraseña", true),
	}
}

func (m Model) openLogin() (tea.Model, tea.Cmd) {
	m.app.OpenLogin()
	m.resetAuthInputs()
	return m, m.focusAuth()
}

func (m Model) openRegister() (tea.Model, tea.Cmd) {
	m.app.OpenRegister()
	m.resetAuthInputs()
	return m, m.focusAuth()
}

func (m *Model) resetAuthInputs() {
	m.loginInputs = newLoginInputs()
	m.registerInputs = newRegisterInputs()
	m.remember = false
	m.acceptTerms = false
	m.authFocus = 0
}

// authInputs returns the inputs of the open overlay and the number of
// focus stops, which includes the trailing checkbox.
func (m *Model) authInputs() ([]textinput.Model, int) {
	if m.app.RegisterOpen() {
		return m.registerInputs, registerTerms + 1
	}
	return m.loginInputs, loginRemember + 1
}

func (m *Model) focusAuth() tea.Cmd {
	inputs, _ := m.authInputs()
	var cmd tea.Cmd
	for i := range inputs {
		if i == m.authFocus {
			cmd = inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
	return cmd
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inputs, stops := m.authInputs()
	onCheckbox := m.authFocus >= len(inputs)

	switch {
	case key.Matches(msg, m.keys.Back):
		m.app.CloseAuth()
		return m, nil
	case key.Matches(msg, m.keys.SwitchTo):
		if m.app.LoginOpen() {
			return m.openRegister()
		}
		return m.openLogin()
	case key.Matches(msg, m.keys.Tab), msg.Type == tea.KeyDown:
		m.authFocus = (m.authFocus + 1) % stops
		return m, m.focusAuth()
	case key.Matches(msg, m.keys.ShiftTab), msg.Type == tea.KeyUp:
		m.authFocus = (m.authFocus + stops - 1) % stops
		return m, m.focusAuth()
	case key.Matches(msg, m.keys.Submit):
		return m.submitAuth()
	case onCheckbox && key.Matches(msg, m.keys.Toggle):
		if m.app.RegisterOpen() {
			m.acceptTerms = !m.acceptTerms
		} else {
			m.remember = !m.remember
		}
		return m, nil
	}

	if onCheckbox {
		return m, nil
	}
	var cmd tea.Cmd
	inputs[m.authFocus], cmd = inputs[m.authFocus].Update(msg)
	return m, cmd
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	if m.app.RegisterOpen() {
		ok := m.app.SubmitRegister(form.Register{
			Username:        m.registerInputs[registerUsername].Value(),
			Email:           m.registerInputs[registerEmail].Value(),
			Password:        m.registerInputs[registerPassword].Value(),
			ConfirmPassword: m.registerInputs[registerConfirm].Value(),
			AcceptTerms:     m.acceptTerms,
		})
		if ok {
			m.resetAuthInputs()
			m.flash = "¡Cuenta creada!"
		}
		return m, nil
	}

	ok := m.app.SubmitLogin(form.Login{
		Email:    m.loginInputs[loginEmail].Value(),
		Password: m.loginInputs[loginPassword].Value(),
		Remember: m.remember,
	})
	if ok {
		m.resetAuthInputs()
		if session, ok := m.app.Session(); ok {
			m.flash = fmt.Sprintf("¡Bienvenido, %s!", session.Username)
		}
	}
	return m, nil
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Iniciar sesión"))
	b.WriteString("\n\n")
	m.writeInputs(&b, m.loginInputs, loginFields, []string{"Email", "Contraseña"})
	b.WriteString(m.checkbox(loginRemember, m.remember, "Recordarme", ""))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("¿No tienes cuenta? ctrl+t para registrarte"))
	return boxStyle.Render(b.String())
}

func (m Model) viewRegister() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Crear cuenta"))
	b.WriteString("\n\n")
	m.writeInputs(&b, m.registerInputs, registerFields,
		[]string{"Usuario", "Email", "Contraseña", "Confirmar contraseña"})
	b.WriteString(m.checkbox(registerTerms, m.acceptTerms, "Acepto los términos y condiciones", form.FieldAcceptTerms))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("¿Ya tienes cuenta? ctrl+t para iniciar sesión"))
	return boxStyle.Render(b.String())
}

func (m Model) writeInputs(b *strings.Builder, inputs []textinput.Model, fields, labels []string) {
	errs := m.app.AuthErrors()
	for i, in := range inputs {
		b.WriteString(subtitleStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
		if msg := errs.Get(fields[i]); msg != "" {
			b.WriteString(errorStyle.Render("  " + msg))
			b.WriteString("\n")
		}
	}
}

func (m Model) checkbox(stop int, checked bool, label, field string) string {
	mark := "[ ]"
	if checked {
		mark = "[×]"
	}
	line := mark + " " + label
	if m.authFocus == stop {
		line = selectedStyle.Render(line)
	}
	if field != "" {
		if msg := m.app.AuthErrors().Get(field); msg != "" {
			line += "\n" + errorStyle.Render("  "+msg)
		}
	}
	return line + "\n"
}
