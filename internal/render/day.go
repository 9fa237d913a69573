package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanigw/welltrack/internal/model"
	"github.com/phanigw/welltrack/internal/service"
)

const barWidth = 20

var (
	barFilled = lipgloss.NewStyle().Foreground(colorAccent)
	checkMark = lipgloss.NewStyle().Foreground(colorGold).Render("x")
)

// progressBar renders "[#####.....] cur/target", capped at full.
func progressBar(cur, target float64) string {
	ratio := 0.0
	if target > 0 {
		ratio = cur / target
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * barWidth)
	bar := barFilled.Render(strings.Repeat("#", filled)) + labelStyle.Render(strings.Repeat(".", barWidth-filled))
	return "[" + bar + "]"
}

// Day renders the full daily view: the checklist against the plan, consumed
// macros against plan targets, activity against the user's targets, and the
// day's score.
func Day(date string, plan *model.Plan, log *model.DayLog, settings model.Settings) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(date))
	b.WriteString("\n\n")

	if plan == nil || len(plan.Meals) == 0 {
		b.WriteString(emptyStyle.Render("no meal plan set; import one with `welltrack plan import`"))
		b.WriteString("\n")
	}
	if plan != nil {
		for mi, meal := range plan.Meals {
			b.WriteString(headerStyle.Render(meal.Name))
			b.WriteString("\n")
			for ii, item := range meal.Items {
				mark := labelStyle.Render(" ")
				qty := fmt.Sprintf("%.4g%s", item.Qty, item.Unit)
				if log != nil {
					if entry := log.Items[service.ItemKey(mi, ii)]; entry != nil && entry.Checked {
						mark = checkMark
						if entry.ActualQty != item.Qty {
							qty = fmt.Sprintf("%.4g/%.4g%s", entry.ActualQty, item.Qty, item.Unit)
						}
					}
				}
				fmt.Fprintf(&b, "  [%s] %d.%d %s, %s, %.0f kcal\n", mark, mi, ii, item.Name, qty, item.Calories)
			}
		}
	}

	if log != nil && len(log.Extras) > 0 {
		b.WriteString(headerStyle.Render("Extras"))
		b.WriteString("\n")
		for _, ex := range log.Extras {
			fmt.Fprintf(&b, "  + %s, %.0f kcal\n", ex.Name, ex.Calories)
		}
	}

	targets := service.PlanTargets(plan)
	consumed := service.ConsumedMacros(plan, log)
	b.WriteString("\n")
	fmt.Fprintf(&b, "calories %s %.0f/%.0f\n", progressBar(consumed.Calories, targets.Calories), consumed.Calories, targets.Calories)
	fmt.Fprintf(&b, "protein  %s %.0f/%.0fg\n", progressBar(consumed.Protein, targets.Protein), consumed.Protein, targets.Protein)
	fmt.Fprintf(&b, "carbs    %s %.0f/%.0fg\n", progressBar(consumed.Carbs, targets.Carbs), consumed.Carbs, targets.Carbs)
	fmt.Fprintf(&b, "fat      %s %.0f/%.0fg\n", progressBar(consumed.Fat, targets.Fat), consumed.Fat, targets.Fat)

	var steps, water int
	var sleep float64
	if log != nil {
		steps, water, sleep = log.Steps, log.Water, log.Sleep
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "steps    %s %d/%d\n", progressBar(float64(steps), float64(settings.StepTarget)), steps, settings.StepTarget)
	fmt.Fprintf(&b, "sleep    %s %.1f/%.1fh\n", progressBar(sleep, settings.SleepTarget), sleep, settings.SleepTarget)
	fmt.Fprintf(&b, "water    %s %d/%d\n", progressBar(float64(water), float64(settings.WaterTarget)), water, settings.WaterTarget)

	b.WriteString("\n")
	b.WriteString(Score(service.CalcScore(plan, log)))
	return b.String()
}

// Score renders one line of tier badges, or a muted note for unscored days.
func Score(score *model.Score) string {
	if score == nil {
		return emptyStyle.Render("nothing logged yet; no score")
	}
	return fmt.Sprintf("diet %s  steps %s  workout %s  combined %s",
		TierBadge(score.Diet), TierBadge(score.Steps), TierBadge(score.Workout), TierBadge(score.Combined))
}

// Workout renders the selected workout day's exercises with their logs.
func Workout(plan *model.Plan, log *model.DayLog) string {
	if log == nil || log.WorkoutDayIndex == nil {
		return emptyStyle.Render("no workout selected for this day")
	}
	idx := *log.WorkoutDayIndex
	if plan == nil || plan.Workout == nil || idx < 0 || idx >= len(plan.Workout.Days) {
		return emptyStyle.Render(fmt.Sprintf("workout day %d is not in the current plan", idx))
	}
	day := plan.Workout.Days[idx]

	var b strings.Builder
	b.WriteString(headerStyle.Render(day.Name))
	b.WriteString("\n")
	for ei, ex := range day.Exercises {
		mark := labelStyle.Render(" ")
		detail := ""
		if log.Workout != nil {
			if el := log.Workout.Exercises[ei]; el != nil {
				if el.Completed {
					mark = checkMark
				}
				if len(el.Sets) > 0 {
					sets := make([]string, 0, len(el.Sets))
					for _, s := range el.Sets {
						sets = append(sets, fmt.Sprintf("%dx%.4g", s.Reps, s.Weight))
					}
					detail = " " + labelStyle.Render(strings.Join(sets, " "))
				}
				if el.Duration > 0 || el.Distance > 0 {
					detail = " " + labelStyle.Render(fmt.Sprintf("%.4gmin %.4gkm", el.Duration, el.Distance))
				}
			}
		}
		target := ""
		switch ex.Type {
		case model.ExerciseCardio:
			target = fmt.Sprintf("%.4gmin", ex.TargetDuration)
		case model.ExerciseFlexibility:
			target = fmt.Sprintf("%.4gmin", ex.TargetDuration)
		default:
			target = fmt.Sprintf("%.0fx%.0f @%.4g", ex.TargetSets, ex.TargetReps, ex.TargetWeight)
		}
		fmt.Fprintf(&b, "  [%s] %d %s, %s, %s%s\n", mark, ei, ex.Name, ex.Type, target, detail)
	}
	return strings.TrimRight(b.String(), "\n")
}
