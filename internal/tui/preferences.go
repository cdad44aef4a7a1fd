package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/reco-chat/internal/service"
	"github.com/MKhiriev/reco-chat/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTrust = iota
	fieldQuality
	fieldRemote
	fieldActivity
	fieldFlexibility
	fieldCategory
	fieldLocation
	fieldPriceMin
	fieldPriceMax
	fieldCount
)

var preferenceLabels = [fieldCount]string{
	"Trust & safety     ",
	"Item condition     ",
	"Remote transaction ",
	"Seller activity    ",
	"Price flexibility  ",
	"Category           ",
	"Location           ",
	"Min price (won)    ",
	"Max price (won)    ",
}

type preferencesModel struct {
	ctx context.Context
	svc service.PreferencesService

	inputs []textinput.Model
	focus  int
	err    string
	saving bool
}

func newPreferencesModel(ctx context.Context, svc service.PreferencesService) *preferencesModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 30
	}
	for i := fieldTrust; i <= fieldFlexibility; i++ {
		inputs[i].Placeholder = "0-100"
		inputs[i].CharLimit = 3
	}
	inputs[fieldCategory].Placeholder = "any"
	inputs[fieldLocation].Placeholder = "any"
	inputs[fieldPriceMin].Placeholder = "no limit"
	inputs[fieldPriceMax].Placeholder = "no limit"

	m := &preferencesModel{ctx: ctx, svc: svc, inputs: inputs}
	m.fill(models.DefaultPreferences())
	return m
}

func (m *preferencesModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *preferencesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openPreferencesMsg:
		m.fill(msg.prefs)
		m.err = ""
		m.saving = false
		return m, nil

	case prefsSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = "Could not save preferences"
			return m, nil
		}
		prefs := msg.prefs
		return m, func() tea.Msg {
			return NavigateTo{Page: pageChat, Payload: prefsChangedMsg{prefs: prefs}}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.cancel):
			return m, func() tea.Msg { return NavigateTo{Page: pageChat} }
		case key.Matches(msg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.send):
			if m.saving {
				return m, nil
			}
			prefs, err := parsePreferences(m.values())
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.err = ""
			m.saving = true
			return m, m.cmdSave(prefs)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *preferencesModel) View() string {
	var b strings.Builder
	for i, in := range m.inputs {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(preferenceLabels[i])
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if m.saving {
		b.WriteString("\nSaving...")
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
	}

	return renderPage("PREFERENCES", strings.TrimRight(b.String(), "\n"), "enter: save │ tab/↑/↓: field │ esc: back")
}

func (m *preferencesModel) cmdSave(prefs models.Preferences) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		return prefsSavedMsg{prefs: prefs.Normalized(), err: svc.Save(ctx, prefs)}
	}
}

func (m *preferencesModel) moveFocus(step int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *preferencesModel) fill(p models.Preferences) {
	m.inputs[fieldTrust].SetValue(strconv.Itoa(p.TrustSafety))
	m.inputs[fieldQuality].SetValue(strconv.Itoa(p.QualityCondition))
	m.inputs[fieldRemote].SetValue(strconv.Itoa(p.RemoteTransaction))
	m.inputs[fieldActivity].SetValue(strconv.Itoa(p.ActivityResponsiveness))
	m.inputs[fieldFlexibility].SetValue(strconv.Itoa(p.PriceFlexibility))
	m.inputs[fieldCategory].SetValue(stringOrEmpty(p.Category))
	m.inputs[fieldLocation].SetValue(stringOrEmpty(p.Location))
	m.inputs[fieldPriceMin].SetValue(priceOrEmpty(p.PriceMin))
	m.inputs[fieldPriceMax].SetValue(priceOrEmpty(p.PriceMax))

	m.inputs[m.focus].Blur()
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *preferencesModel) values() []string {
	values := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		values[i] = strings.TrimSpace(in.Value())
	}
	return values
}

var errPriceRange = errors.New("min price is greater than max price")

// parsePreferences validates the form values, ordered as the field
// constants.
func parsePreferences(values []string) (models.Preferences, error) {
	var p models.Preferences
	if len(values) != fieldCount {
		return p, fmt.Errorf("expected %d fields, got %d", fieldCount, len(values))
	}

	weights := []*int{&p.TrustSafety, &p.QualityCondition, &p.RemoteTransaction, &p.ActivityResponsiveness, &p.PriceFlexibility}
	for i, dst := range weights {
		v, err := strconv.Atoi(values[i])
		if err != nil || v < 0 || v > 100 {
			return p, fmt.Errorf("%s must be a number from 0 to 100", strings.TrimSpace(preferenceLabels[i]))
		}
		*dst = v
	}

	if values[fieldCategory] != "" {
		category := values[fieldCategory]
		p.Category = &category
	}
	if values[fieldLocation] != "" {
		location := values[fieldLocation]
		p.Location = &location
	}

	var err error
	if p.PriceMin, err = parsePrice(values[fieldPriceMin], fieldPriceMin); err != nil {
		return p, err
	}
	if p.PriceMax, err = parsePrice(values[fieldPriceMax], fieldPriceMax); err != nil {
		return p, err
	}
	if p.PriceMin != nil && p.PriceMax != nil && *p.PriceMin > *p.PriceMax {
		return p, errPriceRange
	}

	return p, nil
}

func parsePrice(raw string, field int) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%s must be a non-negative number", strings.TrimSpace(preferenceLabels[field]))
	}
	return &v, nil
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func priceOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
