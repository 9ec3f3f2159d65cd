package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/skillscope/internal/service"
)

const uiDivider = "──────────────────────────────────────────────────────"

func (s styles) renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(s.title.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(s.help.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(s.help.Render("ctrl+o: about │ ctrl+c: quit"))

	return s.app.Render(b.String())
}

// renderMessage shows the flow's current line, or nothing.
func (s styles) renderMessage(m service.Message) string {
	if m.Text == "" {
		return ""
	}
	if m.IsError {
		return "\n" + s.err.Render("Error: "+m.Text) + "\n"
	}
	return "\n" + s.ok.Render(m.Text) + "\n"
}

// renderRow writes one "label │ value" line with labels padded to width.
func (s styles) renderRow(b *strings.Builder, label string, width int, value string) {
	b.WriteString(s.label.Render(label + strings.Repeat(" ", max(width-len(label), 0))))
	b.WriteString(" │ ")
	b.WriteString(value)
	b.WriteString("\n")
}

func newInput(placeholder string, charLimit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 40
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newInput(placeholder, 256)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// focusShift moves focus by delta across inputs, wrapping around.
func focusShift(inputs []textinput.Model, focus, delta int) int {
	if len(inputs) == 0 {
		return 0
	}
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func resetInputs(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].SetValue("")
		inputs[i].Blur()
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
