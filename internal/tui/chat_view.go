package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/reco-chat/models"
	"github.com/charmbracelet/lipgloss"
)

func (m *chatModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ReCo chat"))
	b.WriteString("  ")
	b.WriteString(m.healthView())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	switch {
	case m.confirmReset:
		b.WriteString(confirmModel{message: "Start a new conversation? The current one will be cleared."}.View())
		b.WriteString("\n")
	case m.busy():
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		if m.request == requestRecommendation {
			b.WriteString(m.progress.ViewAs(float64(m.percent) / 100))
			b.WriteString(" ")
		}
		b.WriteString(fitText(m.stage, max(m.width-60, 20)))
		b.WriteString("\n")
	default:
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: send │ esc: cancel │ ↑/↓: recent │ ctrl+p: preferences │ /help │ ctrl+c: quit"))

	return b.String()
}

func (m *chatModel) healthView() string {
	switch {
	case m.health == nil:
		return helpStyle.Render("○ checking server...")
	case m.health.Healthy:
		return healthyStyle.Render("● server online")
	default:
		return unhealthyStyle.Render("● server unreachable")
	}
}

func renderEntries(entries []entry, width int) string {
	if len(entries) == 0 {
		return infoStyle.Render("Ask for a product, e.g. \"used mirrorless camera under ₩500,000\".")
	}

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, renderEntry(e, width))
	}
	return strings.Join(blocks, "\n\n")
}

func renderEntry(e entry, width int) string {
	var b strings.Builder

	switch {
	case e.kind == entryError:
		b.WriteString(errorStyle.Render("! " + e.text))
	case e.kind == entryInfo:
		b.WriteString(wrap(infoStyle, e.text, width))
	case e.role == models.RoleUser:
		b.WriteString(userStyle.Render("you › "))
		b.WriteString(e.text)
	default:
		b.WriteString(assistantStyle.Render("reco › "))
		b.WriteString(e.text)
	}

	for i, card := range e.cards {
		b.WriteString("\n")
		b.WriteString(renderCard(i, card, width))
	}

	return b.String()
}

func renderCard(i int, card models.ProductCard, width int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %d. %s\n", i+1, cardNameStyle.Render(fitText(card.Name, max(width-8, 20))))

	meta := []string{card.Price}
	if card.Score != nil {
		meta = append(meta, fmt.Sprintf("score %d", *card.Score))
	}
	meta = append(meta, card.Site)
	b.WriteString("     ")
	b.WriteString(cardMetaStyle.Render(strings.Join(meta, " · ")))

	if card.AvgPrice != nil {
		b.WriteString("\n     avg ")
		b.WriteString(*card.AvgPrice)
	}
	if card.Reason != nil {
		b.WriteString("\n")
		b.WriteString(wrap(lipgloss.NewStyle().PaddingLeft(5), *card.Reason, width))
	}

	return b.String()
}

// cardPlainText is the clipboard form of a card.
func cardPlainText(card models.ProductCard) string {
	lines := []string{card.Name, "Price: " + card.Price}
	if card.AvgPrice != nil {
		lines = append(lines, "Average price: "+*card.AvgPrice)
	}
	if card.Score != nil {
		lines = append(lines, fmt.Sprintf("Score: %d", *card.Score))
	}
	if card.Reason != nil {
		lines = append(lines, "Reason: "+*card.Reason)
	}
	lines = append(lines, "Site: "+card.Site)
	return strings.Join(lines, "\n")
}

func renderHistory(entries []models.HistoryEntry) string {
	if len(entries) == 0 {
		return "The server has no saved searches yet."
	}

	var b strings.Builder
	b.WriteString("Saved searches on the server:")
	for i, e := range entries {
		fmt.Fprintf(&b, "\n%d. %s · %d results", i+1, e.SearchQuery, len(e.Results))
		if e.PersonaType != nil && *e.PersonaType != "" {
			b.WriteString(" · ")
			b.WriteString(*e.PersonaType)
		}
		if !e.CreatedAt.IsZero() {
			b.WriteString(" · ")
			b.WriteString(e.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
	}
	return b.String()
}

func wrap(style lipgloss.Style, text string, width int) string {
	if width <= 0 {
		return style.Render(text)
	}
	return style.Width(width).Render(text)
}
