package service

import (
	"github.com/phanigw/welltrack/internal/model"
)

// ValidatePlan repairs a plan from an untrusted source (backup import, text
// parse, storage read) in place and returns human-readable warnings. It is
// the single normalization chokepoint: downstream scoring and rendering
// assume a plan that passed through here. Only a nil plan is rejected
// outright.
func ValidatePlan(plan *model.Plan) []string {
	if plan == nil {
		return []string{"plan data is missing"}
	}

	errors := []string{}
	if plan.Meals == nil {
		plan.Meals = []model.Meal{}
		errors = append(errors, "missing meals list, initialized to empty")
	}
	for mi := range plan.Meals {
		meal := &plan.Meals[mi]
		if meal.Name == "" {
			meal.Name = "Untitled Meal"
		}
		if meal.Items == nil {
			meal.Items = []model.FoodItem{}
			continue
		}
		for ii := range meal.Items {
			item := &meal.Items[ii]
			if item.Name == "" {
				item.Name = "Untitled"
			}
			item.Qty = ClampNum(item.Qty, 0, 99999)
			item.Calories = ClampNum(item.Calories, 0, 99999)
			item.Protein = ClampNum(item.Protein, 0, 9999)
			item.Carbs = ClampNum(item.Carbs, 0, 9999)
			item.Fat = ClampNum(item.Fat, 0, 9999)
			if item.Unit == "" {
				item.Unit = "g"
			}
		}
	}

	if plan.Workout != nil {
		w := plan.Workout
		if w.Type != model.WorkoutTypeSplit && w.Type != model.WorkoutTypeFixed {
			w.Type = model.WorkoutTypeSplit
		}
		if w.Days == nil {
			w.Days = []model.WorkoutDay{}
		}
		for di := range w.Days {
			day := &w.Days[di]
			if day.Name == "" {
				day.Name = "Workout"
			}
			if day.Exercises == nil {
				day.Exercises = []model.Exercise{}
				continue
			}
			for ei := range day.Exercises {
				ex := &day.Exercises[ei]
				if ex.Name == "" {
					ex.Name = "Exercise"
				}
				ex.TargetSets = ClampNum(ex.TargetSets, 0, 100)
				ex.TargetReps = ClampNum(ex.TargetReps, 0, 999)
				ex.TargetWeight = ClampNum(ex.TargetWeight, 0, 9999)
			}
		}
	}

	return errors
}
