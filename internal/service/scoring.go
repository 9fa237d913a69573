package service

import (
	"math"

	"github.com/phanigw/welltrack/internal/model"
)

// Step tiers are fixed business rules, independent of the user's configured
// step target. The settings target only drives progress bars.
const (
	stepsGold   = 10000
	stepsSilver = 8000
	stepsBronze = 6000
)

var tierNames = [4]string{model.TierFail, model.TierBronze, model.TierSilver, model.TierGold}

// PlanTargets sums the macro content of every item in every meal. The result
// is not rounded; targets are day-independent.
func PlanTargets(plan *model.Plan) model.MacroVector {
	var out model.MacroVector
	if plan == nil {
		return out
	}
	for _, meal := range plan.Meals {
		for _, it := range meal.Items {
			out.Calories += SafeNum(it.Calories)
			out.Protein += SafeNum(it.Protein)
			out.Carbs += SafeNum(it.Carbs)
			out.Fat += SafeNum(it.Fat)
		}
	}
	return out
}

// ConsumedMacros totals what the log says was actually eaten: checked plan
// items scaled by actualQty/qty, plus every extra unscaled. Items that are
// unchecked or have actualQty == 0 contribute nothing. Each macro is rounded
// half away from zero.
func ConsumedMacros(plan *model.Plan, log *model.DayLog) model.MacroVector {
	var c, p, cb, f float64
	if plan != nil && log != nil {
		for mi := range plan.Meals {
			for ii := range plan.Meals[mi].Items {
				entry := log.Items[ItemKey(mi, ii)]
				if entry == nil || !entry.Checked {
					continue
				}
				aq := SafeNum(entry.ActualQty)
				if aq <= 0 {
					continue
				}
				it := plan.Meals[mi].Items[ii]
				qty := SafeNum(it.Qty)
				ratio := 0.0
				if qty > 0 {
					ratio = aq / qty
				}
				c += SafeNum(it.Calories) * ratio
				p += SafeNum(it.Protein) * ratio
				cb += SafeNum(it.Carbs) * ratio
				f += SafeNum(it.Fat) * ratio
			}
		}
	}
	if log != nil {
		for _, ex := range log.Extras {
			c += SafeNum(ex.Calories)
			p += SafeNum(ex.Protein)
			cb += SafeNum(ex.Carbs)
			f += SafeNum(ex.Fat)
		}
	}
	return model.MacroVector{
		Calories: math.Round(c),
		Protein:  math.Round(p),
		Carbs:    math.Round(cb),
		Fat:      math.Round(f),
	}
}

// HasDayData reports whether anything at all was recorded for the day. A day
// with no data has no score, which is distinct from a "fail" day.
func HasDayData(log *model.DayLog) bool {
	if log == nil {
		return false
	}
	if SafeNum(float64(log.Steps)) > 0 || SafeNum(log.Sleep) > 0 || log.ResistanceTraining {
		return true
	}
	if len(log.Extras) > 0 {
		return true
	}
	for _, e := range log.Items {
		if e != nil && e.Checked {
			return true
		}
	}
	return false
}

// CalcScore evaluates a day against the current plan and returns tiered
// adherence per dimension plus the combined tier, or nil when the day holds
// no data. The combined tier is the minimum across dimensions: excelling at
// steps never compensates for a failed diet.
func CalcScore(plan *model.Plan, log *model.DayLog) *model.Score {
	if !HasDayData(log) {
		return nil
	}

	extraCount := len(log.Extras)
	allChecked := true
	hasItems := false
	if plan != nil {
		for mi := range plan.Meals {
			for ii := range plan.Meals[mi].Items {
				hasItems = true
				entry := log.Items[ItemKey(mi, ii)]
				if entry == nil || !entry.Checked {
					allChecked = false
				}
			}
		}
	}
	if !hasItems {
		allChecked = true
	}

	var diet int
	switch {
	case allChecked && extraCount == 0:
		diet = 3
	case extraCount <= 1:
		diet = 2
	case extraCount <= 2:
		diet = 1
	default:
		diet = 0
	}

	var steps int
	switch {
	case log.Steps >= stepsGold:
		steps = 3
	case log.Steps >= stepsSilver:
		steps = 2
	case log.Steps >= stepsBronze:
		steps = 1
	default:
		steps = 0
	}

	// A rest day scores max on the workout dimension.
	workout := 3
	if log.ResistanceTraining {
		if log.Workout == nil || log.Workout.Exercises == nil {
			workout = 0
		} else {
			dayIdx := 0
			if log.WorkoutDayIndex != nil {
				dayIdx = *log.WorkoutDayIndex
			}
			planned := plannedWorkoutDay(plan, dayIdx)
			if planned == nil || len(planned.Exercises) == 0 {
				workout = 3
			} else {
				total := len(planned.Exercises)
				completed := 0
				for i := 0; i < total; i++ {
					if e := log.Workout.Exercises[i]; e != nil && e.Completed {
						completed++
					}
				}
				pct := float64(completed) / float64(total)
				switch {
				case pct >= 1:
					workout = 3
				case pct >= 0.5:
					workout = 2
				case pct > 0:
					workout = 1
				default:
					workout = 0
				}
			}
		}
	}

	combined := diet
	if steps < combined {
		combined = steps
	}
	if workout < combined {
		combined = workout
	}

	return &model.Score{
		Diet:     tierNames[diet],
		Steps:    tierNames[steps],
		Workout:  tierNames[workout],
		Combined: tierNames[combined],
	}
}

func plannedWorkoutDay(plan *model.Plan, idx int) *model.WorkoutDay {
	if plan == nil || plan.Workout == nil {
		return nil
	}
	if idx < 0 || idx >= len(plan.Workout.Days) {
		return nil
	}
	return &plan.Workout.Days[idx]
}
