package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/phanigw/welltrack/internal/model"
)

// Meal import grammar: a line without a comma starts a meal; a line with
// commas is an item under the current meal. Item parts after the name are
// "<qty><unit>" then any mix of "<n>cal", "<n>p", "<n>c", "<n>f" tokens.
var (
	qtyRe      = regexp.MustCompile(`^([\d.]+)\s*(.*)`)
	caloriesRe = regexp.MustCompile(`(?i)([\d.]+)\s*cal`)
	proteinRe  = regexp.MustCompile(`(?i)([\d.]+)\s*p`)
	carbsRe    = regexp.MustCompile(`(?i)([\d.]+)\s*c`)
	fatRe      = regexp.MustCompile(`(?i)([\d.]+)\s*f`)
	setsRepsRe = regexp.MustCompile(`(?i)(\d+)\s*[x×]\s*(\d+)`)
	leadNumRe  = regexp.MustCompile(`^[\d.]+`)
)

func ParsePlanText(text string) []model.Meal {
	meals := []model.Meal{}
	var current *model.Meal

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if !strings.Contains(line, ",") {
			meals = append(meals, model.Meal{Name: line, Items: []model.FoodItem{}})
			current = &meals[len(meals)-1]
			continue
		}
		if current == nil {
			// Item lines before the first meal header are dropped.
			continue
		}

		parts := splitTrim(line)
		item := model.FoodItem{Name: parts[0], Qty: 1, Unit: "g"}

		if len(parts) > 1 && parts[1] != "" {
			if m := qtyRe.FindStringSubmatch(parts[1]); m != nil {
				item.Qty = parseFloatOr(m[1], 1)
				if unit := strings.TrimSpace(m[2]); unit != "" {
					item.Unit = unit
				}
			} else {
				item.Unit = parts[1]
			}
		}

		// Each remaining part is scanned independently; the first pattern
		// that matches wins, in calories/protein/carbs/fat priority order.
		for _, p := range parts[2:] {
			if m := caloriesRe.FindStringSubmatch(p); m != nil {
				item.Calories = parseFloatOr(m[1], 0)
				continue
			}
			if m := proteinRe.FindStringSubmatch(p); m != nil {
				item.Protein = parseFloatOr(m[1], 0)
				continue
			}
			if m := carbsRe.FindStringSubmatch(p); m != nil {
				item.Carbs = parseFloatOr(m[1], 0)
				continue
			}
			if m := fatRe.FindStringSubmatch(p); m != nil {
				item.Fat = parseFloatOr(m[1], 0)
			}
		}

		current.Items = append(current.Items, item)
	}
	return meals
}

// ParseWorkoutText parses the workout variant of the grammar: day headers
// without commas, exercise lines "name, type, setsxreps|duration,
// weight|distance". Unlike meals, an exercise line before any header opens
// an implicit "Workout" day.
func ParseWorkoutText(text string) []model.WorkoutDay {
	days := []model.WorkoutDay{}
	var current *model.WorkoutDay

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if !strings.Contains(line, ",") {
			days = append(days, model.WorkoutDay{Name: line, Exercises: []model.Exercise{}})
			current = &days[len(days)-1]
			continue
		}
		if current == nil {
			days = append(days, model.WorkoutDay{Name: "Workout", Exercises: []model.Exercise{}})
			current = &days[len(days)-1]
		}

		parts := splitTrim(line)
		ex := model.Exercise{Name: parts[0], Type: model.ExerciseStrength}
		if len(parts) > 1 {
			switch t := strings.ToLower(parts[1]); t {
			case model.ExerciseStrength, model.ExerciseCardio, model.ExerciseFlexibility:
				ex.Type = t
			}
		}

		switch ex.Type {
		case model.ExerciseStrength:
			if len(parts) > 2 {
				if m := setsRepsRe.FindStringSubmatch(parts[2]); m != nil {
					ex.TargetSets = parseFloatOr(m[1], 0)
					ex.TargetReps = parseFloatOr(m[2], 0)
				}
			}
			if len(parts) > 3 {
				ex.TargetWeight = parseLeadingFloat(parts[3])
			}
		case model.ExerciseCardio:
			if len(parts) > 2 {
				ex.TargetDuration = parseLeadingFloat(parts[2])
			}
			if len(parts) > 3 {
				ex.TargetDistance = parseLeadingFloat(parts[3])
			}
		default:
			if len(parts) > 2 {
				ex.TargetDuration = parseLeadingFloat(parts[2])
			}
		}

		current.Exercises = append(current.Exercises, ex)
	}
	return days
}

func splitTrim(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == 0 {
		return fallback
	}
	return v
}

// parseLeadingFloat mimics lenient numeric parsing of tokens like "30min"
// or "2mi": the leading digits parse, the suffix is ignored, and anything
// unparseable is 0.
func parseLeadingFloat(s string) float64 {
	m := leadNumRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}
