// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/skillscope/internal/app"
	"github.com/MKhiriev/skillscope/internal/service"
	"github.com/MKhiriev/skillscope/models"
)

const statusTTL = 3 * time.Second

const (
	editFullName = iota
	editEmail
	editPhone
	editDegree
	editLocation
	editUsername
	editPicture
	editFieldCount
)

var editLabels = [editFieldCount]string{
	"Full name",
	"Email",
	"Phone",
	"Degree",
	"Location",
	"Username",
	"Picture file",
}

// DashboardModel is the signed-in screen. It shows the profile and the
// device preferences and offers editing, theme and language switching,
// copying the username and logout.
type DashboardModel struct {
	ctx      context.Context
	accounts service.AccountService
	prefs    service.PreferenceService
	st       styles

	user     models.UserRecord
	theme    models.Theme
	language string
	about    string

	status string
	errMsg string

	editing    bool
	inputs     []textinput.Model
	focus      int
	saving     bool
	confirming bool
	overlayErr string
	showAbout  bool

	copyToClipboard func(string) error

	logout bool
}

func NewDashboardModel(ctx context.Context, services *service.ClientServices, user models.UserRecord) *DashboardModel {
	theme := services.PreferenceService.Theme(ctx)

	return &DashboardModel{
		ctx:             ctx,
		accounts:        services.AccountService,
		prefs:           services.PreferenceService,
		st:              newStyles(theme),
		user:            user,
		theme:           theme,
		language:        services.PreferenceService.Language(ctx),
		about:           services.AppInfoService.About(ctx),
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.user = msg.record
		m.editing = false
		return m, m.flash(app.MsgProfileSaved)
	case themeChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.theme = msg.theme
		m.st = newStyles(msg.theme)
		return m, m.flash("Theme: " + string(msg.theme))
	case languageChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.language = msg.language
		return m, m.flash("Language: " + msg.language)
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard unavailable: " + msg.err.Error()
			return m, nil
		}
		return m, m.flash("Username copied to clipboard")
	case loggedOutMsg:
		if msg.err != nil {
			m.overlayErr = humanizeError(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}
	if key.Matches(keyMsg, keys.about) {
		m.showAbout = !m.showAbout
		return m, nil
	}

	switch {
	case m.showAbout:
		if key.Matches(keyMsg, keys.esc) {
			m.showAbout = false
		}
		return m, nil
	case m.overlayErr != "":
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.overlayErr = ""
		}
		return m, nil
	case m.confirming:
		return m.updateConfirm(keyMsg)
	case m.editing:
		return m.updateEditing(keyMsg)
	}

	m.errMsg = ""
	switch {
	case key.Matches(keyMsg, keys.close):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.edit):
		m.startEditing()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.theme):
		return m, m.cmdToggleTheme()
	case key.Matches(keyMsg, keys.language):
		return m, m.cmdNextLanguage()
	case key.Matches(keyMsg, keys.copyUser):
		return m, m.cmdCopyUsername()
	case key.Matches(keyMsg, keys.logout):
		m.confirming = true
		return m, nil
	}

	return m, nil
}

func (m *DashboardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirming = false
		return m, m.cmdLogout()
	case key.Matches(msg, keys.no):
		m.confirming = false
	}
	return m, nil
}

func (m *DashboardModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editing = false
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.tab):
		m.focus = focusShift(m.inputs, m.focus, 1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.focus = focusShift(m.inputs, m.focus, -1)
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.saving {
			return m, nil
		}
		record, picturePath, err := m.editedRecord()
		if err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.errMsg = ""
		m.saving = true
		return m, m.cmdSaveProfile(record, picturePath)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *DashboardModel) View() string {
	if m.showAbout {
		return renderAboutWindow(m.st, m.about)
	}
	if m.overlayErr != "" {
		return errorOverlayModel{message: m.overlayErr}.View(m.st)
	}
	if m.confirming {
		return confirmModel{message: fmt.Sprintf("Sign out of %s?", m.user.Username)}.View(m.st)
	}
	if m.editing {
		return m.viewEditing()
	}

	var b strings.Builder
	m.st.renderRow(&b, "Full name", 12, valueOrDash(m.user.FullName))
	m.st.renderRow(&b, "Username", 12, valueOrDash(m.user.Username))
	m.st.renderRow(&b, "Email", 12, valueOrDash(m.user.Email))
	m.st.renderRow(&b, "Phone", 12, valueOrDash(m.user.Phone))
	m.st.renderRow(&b, "Degree", 12, valueOrDash(m.user.Degree))
	m.st.renderRow(&b, "Location", 12, valueOrDash(m.user.Location))
	m.st.renderRow(&b, "Picture", 12, pictureSummary(m.user.ProfilePicture))
	m.st.renderRow(&b, "Member since", 12, formatDate(m.user.CreatedAt))
	b.WriteString("\n")
	m.st.renderRow(&b, "Theme", 12, string(m.theme))
	m.st.renderRow(&b, "Language", 12, m.language)

	m.writeStatus(&b)
	b.WriteString("\n")
	b.WriteString(m.st.help.Render(m.about))

	return m.st.renderPage("WELCOME, "+strings.ToUpper(valueOrDash(m.user.FullName)), strings.TrimRight(b.String(), "\n"),
		"e: edit profile │ t: theme │ g: language │ u: copy username │ l: sign out │ q: quit")
}

func (m *DashboardModel) viewEditing() string {
	var b strings.Builder
	for i, label := range editLabels {
		m.st.renderRow(&b, label, 12, "["+m.inputs[i].View()+"]")
	}

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	m.writeStatus(&b)

	return m.st.renderPage("EDIT PROFILE", strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: save")
}

func (m *DashboardModel) writeStatus(b *strings.Builder) {
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.st.err.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.st.ok.Render(m.status))
		b.WriteString("\n")
	}
}

func (m *DashboardModel) startEditing() {
	values := [editFieldCount]string{
		m.user.FullName,
		m.user.Email,
		m.user.Phone,
		m.user.Degree,
		m.user.Location,
		m.user.Username,
		"",
	}

	m.inputs = make([]textinput.Model, editFieldCount)
	for i, v := range values {
		m.inputs[i] = newInput("", 254)
		m.inputs[i].SetValue(v)
	}
	m.inputs[editDegree].ShowSuggestions = true
	m.inputs[editDegree].SetSuggestions(models.Degrees)
	m.inputs[editDegree].KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("ctrl+y"))
	m.inputs[editPicture].Placeholder = "path to an image, empty keeps the current one"
	m.inputs[editPicture].CharLimit = 4096

	m.focus = 0
	m.inputs[0].Focus()
	m.editing = true
	m.status = ""
	m.errMsg = ""
}

// editedRecord applies the form to a copy of the signed-in record. Email and
// username may not be blank: stored records without them are unreadable.
func (m *DashboardModel) editedRecord() (models.UserRecord, string, error) {
	record := m.user
	record.FullName = strings.TrimSpace(m.inputs[editFullName].Value())
	record.Email = strings.TrimSpace(m.inputs[editEmail].Value())
	record.Phone = strings.TrimSpace(m.inputs[editPhone].Value())
	record.Degree = strings.TrimSpace(m.inputs[editDegree].Value())
	record.Location = strings.TrimSpace(m.inputs[editLocation].Value())
	record.Username = strings.TrimSpace(m.inputs[editUsername].Value())

	if record.Email == "" || record.Username == "" {
		return models.UserRecord{}, "", errBlankIdentity
	}

	return record, strings.TrimSpace(m.inputs[editPicture].Value()), nil
}

func (m *DashboardModel) flash(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *DashboardModel) cmdSaveProfile(record models.UserRecord, picturePath string) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		if picturePath != "" {
			picture, err := loadPicture(picturePath)
			if err != nil {
				return profileSavedMsg{err: err}
			}
			record.ProfilePicture = picture
		}

		if err := accounts.UpdateProfile(ctx, record); err != nil {
			return profileSavedMsg{err: err}
		}
		if current := accounts.CurrentUser(); current != nil {
			record = *current
		}
		return profileSavedMsg{record: record}
	}
}

func (m *DashboardModel) cmdToggleTheme() tea.Cmd {
	ctx := m.ctx
	prefs := m.prefs

	return func() tea.Msg {
		theme, err := prefs.ToggleTheme(ctx)
		return themeChangedMsg{theme: theme, err: err}
	}
}

func (m *DashboardModel) cmdNextLanguage() tea.Cmd {
	ctx := m.ctx
	prefs := m.prefs

	return func() tea.Msg {
		language, err := prefs.NextLanguage(ctx)
		return languageChangedMsg{language: language, err: err}
	}
}

func (m *DashboardModel) cmdCopyUsername() tea.Cmd {
	username := m.user.Username
	copyFn := m.copyToClipboard

	return func() tea.Msg {
		return copiedMsg{err: copyFn(username)}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		return loggedOutMsg{err: accounts.Logout(ctx)}
	}
}

func loadPicture(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Join(service.ErrInvalidPicture, err)
	}

	picture, err := models.EncodeProfilePicture(data)
	if err != nil {
		return "", errors.Join(service.ErrInvalidPicture, err)
	}
	return picture, nil
}

func pictureSummary(dataURL string) string {
	if dataURL == "" {
		return "-"
	}
	mime, _, _ := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ";")
	return fmt.Sprintf("%s, %d KB", mime, len(dataURL)*3/4/1024)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2 Jan 2006")
}
