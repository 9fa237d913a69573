package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/phanigw/welltrack/internal/model"
)

// Color palette
var (
	colorGold   = lipgloss.Color("#F1C40F")
	colorSilver = lipgloss.Color("#BDC3C7")
	colorBronze = lipgloss.Color("#CD7F32")
	colorFail   = lipgloss.Color("#E74C3C")
	colorMuted  = lipgloss.Color("#666666")
	colorAccent = lipgloss.Color("#2EC4B6")
	colorHeader = lipgloss.Color("#7AA2F7")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeader)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

func tierColor(tier string) lipgloss.Color {
	switch tier {
	case model.TierGold:
		return colorGold
	case model.TierSilver:
		return colorSilver
	case model.TierBronze:
		return colorBronze
	case model.TierFail:
		return colorFail
	default:
		return colorMuted
	}
}

func tierStyle(tier string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(tierColor(tier))
}

// TierBadge renders a tier name in its color, or a muted dash for a day
// without a score.
func TierBadge(tier string) string {
	if tier == "" {
		return emptyStyle.Render("-")
	}
	return tierStyle(tier).Bold(true).Render(tier)
}
