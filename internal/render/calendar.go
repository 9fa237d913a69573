package render

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanigw/welltrack/internal/model"
	"github.com/phanigw/welltrack/internal/service"
)

var calendarCell = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)

// Calendar renders the month as a weekday grid where each day number is
// colored by its combined score tier. Days without data stay muted.
func Calendar(db *sql.DB, year int, month time.Month) (string, error) {
	plan, _, err := service.LoadPlan(db)
	if err != nil {
		return "", err
	}
	logs, err := service.LoadMonth(db, service.MonthKey(year, month))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n")
	for _, wd := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(calendarCell.Render(labelStyle.Render(wd)))
	}
	b.WriteString("\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < int(first.Weekday()); i++ {
		b.WriteString(calendarCell.Render(""))
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()
	for day := 1; day <= daysInMonth; day++ {
		log := logs[fmt.Sprintf("%02d", day)]
		cell := emptyStyle.Render(fmt.Sprintf("%d", day))
		if score := service.CalcScore(plan, log); score != nil {
			cell = tierStyle(score.Combined).Bold(true).Render(fmt.Sprintf("%d", day))
		}
		b.WriteString(calendarCell.Render(cell))

		weekday := (int(first.Weekday()) + day) % 7
		if weekday == 0 && day != daysInMonth {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	legend := fmt.Sprintf("%s %s %s %s",
		TierBadge(model.TierGold), TierBadge(model.TierSilver), TierBadge(model.TierBronze), TierBadge(model.TierFail))
	b.WriteString(legend)
	return b.String(), nil
}
