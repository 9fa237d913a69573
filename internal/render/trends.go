package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/phanigw/welltrack/internal/service"
)

const (
	chartHeight   = 12
	minChartWidth = 20
)

// CaloriesChart draws one bar per day in the report, colored by the day's
// combined tier. Days without data render as muted zero bars so the time
// axis stays continuous.
func CaloriesChart(report *service.TrendReport, width int) string {
	if report == nil || len(report.Days) == 0 {
		return emptyStyle.Render("no data in range")
	}
	chartWidth := width - 8
	if chartWidth < minChartWidth {
		chartWidth = minChartWidth
	}

	chart := barchart.New(chartWidth, chartHeight)
	var bars []barchart.BarData
	for _, d := range report.Days {
		label := shortLabel(d.Date)
		value := barchart.BarValue{Name: "kcal", Value: d.Consumed.Calories, Style: emptyStyle}
		if d.Score != nil {
			value.Style = tierStyle(d.Score.Combined)
		}
		bars = append(bars, barchart.BarData{Label: label, Values: []barchart.BarValue{value}})
	}
	chart.PushAll(bars)
	chart.Draw()

	header := headerStyle.Render(fmt.Sprintf("Calories %s to %s", report.FromDate, report.ToDate))
	target := labelStyle.Render(fmt.Sprintf("target %.0f kcal/day", report.Target.Calories))
	return lipgloss.JoinVertical(lipgloss.Left, header, target, chart.View())
}

// StepsChart draws daily step counts colored by the step tier alone.
func StepsChart(report *service.TrendReport, width int) string {
	if report == nil || len(report.Days) == 0 {
		return emptyStyle.Render("no data in range")
	}
	chartWidth := width - 8
	if chartWidth < minChartWidth {
		chartWidth = minChartWidth
	}

	chart := barchart.New(chartWidth, chartHeight)
	var bars []barchart.BarData
	for _, d := range report.Days {
		value := barchart.BarValue{Name: "steps", Value: float64(d.Steps), Style: emptyStyle}
		if d.Score != nil {
			value.Style = tierStyle(d.Score.Steps)
		}
		bars = append(bars, barchart.BarData{Label: shortLabel(d.Date), Values: []barchart.BarValue{value}})
	}
	chart.PushAll(bars)
	chart.Draw()

	header := headerStyle.Render(fmt.Sprintf("Steps %s to %s", report.FromDate, report.ToDate))
	return lipgloss.JoinVertical(lipgloss.Left, header, chart.View())
}

// ExerciseChart draws the heaviest set per session for one exercise.
func ExerciseChart(name string, points []service.ExercisePoint, width int) string {
	if len(points) == 0 {
		return emptyStyle.Render("no logged sets for " + name)
	}
	chartWidth := width - 8
	if chartWidth < minChartWidth {
		chartWidth = minChartWidth
	}

	chart := barchart.New(chartWidth, chartHeight)
	var bars []barchart.BarData
	for _, p := range points {
		bars = append(bars, barchart.BarData{
			Label: shortLabel(p.Date),
			Values: []barchart.BarValue{
				{Name: "weight", Value: p.Weight, Style: lipgloss.NewStyle().Foreground(colorAccent)},
			},
		})
	}
	chart.PushAll(bars)
	chart.Draw()

	header := headerStyle.Render("Top set: " + name)
	return lipgloss.JoinVertical(lipgloss.Left, header, chart.View())
}

// TrendSummary renders the aggregate lines under a trend chart.
func TrendSummary(report *service.TrendReport) string {
	if report == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("days with data:"), report.DaysWithData)
	fmt.Fprintf(&b, "%s %s %s %s\n",
		tierStyle("gold").Render(fmt.Sprintf("gold %d", report.GoldDays)),
		tierStyle("silver").Render(fmt.Sprintf("silver %d", report.SilverDays)),
		tierStyle("bronze").Render(fmt.Sprintf("bronze %d", report.BronzeDays)),
		tierStyle("fail").Render(fmt.Sprintf("fail %d", report.FailDays)))
	if report.DaysWithData > 0 {
		fmt.Fprintf(&b, "%s %.0f kcal (%+.0f vs target)\n", labelStyle.Render("avg intake:"), report.AverageCalories, report.TargetCaloriesDiff)
		fmt.Fprintf(&b, "%s %.0f\n", labelStyle.Render("avg steps:"), report.AverageSteps)
	}
	fmt.Fprintf(&b, "%s %d", labelStyle.Render("current streak:"), report.CurrentStreak)
	return b.String()
}

// shortLabel compacts a YYYY-MM-DD date to "02" for chart axis labels,
// falling back to the raw string when it does not parse.
func shortLabel(date string) string {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return date
	}
	return t.Format("02")
}
