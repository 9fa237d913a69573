package service_test

import (
	"math"
	"testing"

	"github.com/phanigw/welltrack/internal/model"
	"github.com/phanigw/welltrack/internal/service"
)

func TestValidatePlanNil(t *testing.T) {
	t.Parallel()
	warnings := service.ValidatePlan(nil)
	if len(warnings) != 1 || warnings[0] != "plan data is missing" {
		t.Fatalf("expected missing-plan warning, got %v", warnings)
	}
}

func TestValidatePlanInitializesMeals(t *testing.T) {
	t.Parallel()
	plan := &model.Plan{}
	warnings := service.ValidatePlan(plan)
	if plan.Meals == nil {
		t.Fatalf("expected meals to be initialized")
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
}

func TestValidatePlanClampsAndDefaults(t *testing.T) {
	t.Parallel()
	plan := &model.Plan{
		Meals: []model.Meal{
			{
				Items: []model.FoodItem{
					{Qty: -5, Calories: math.NaN(), Protein: 999999, Carbs: -1, Fat: math.Inf(1)},
				},
			},
		},
	}
	service.ValidatePlan(plan)

	if plan.Meals[0].Name != "Untitled Meal" {
		t.Fatalf("expected default meal name, got %q", plan.Meals[0].Name)
	}
	it := plan.Meals[0].Items[0]
	if it.Name != "Untitled" {
		t.Fatalf("expected default item name, got %q", it.Name)
	}
	if it.Unit != "g" {
		t.Fatalf("expected default unit g, got %q", it.Unit)
	}
	if it.Qty != 0 {
		t.Fatalf("expected negative qty clamped to 0, got %v", it.Qty)
	}
	if it.Calories != 0 {
		t.Fatalf("expected NaN calories clamped to 0, got %v", it.Calories)
	}
	if it.Protein != 9999 {
		t.Fatalf("expected protein clamped to 9999, got %v", it.Protein)
	}
	if it.Carbs != 0 {
		t.Fatalf("expected carbs clamped to 0, got %v", it.Carbs)
	}
	if it.Fat != 0 {
		t.Fatalf("expected infinite fat clamped to 0, got %v", it.Fat)
	}
}

func TestValidatePlanRepairsWorkout(t *testing.T) {
	t.Parallel()
	plan := &model.Plan{
		Meals: []model.Meal{},
		Workout: &model.WorkoutPlan{
			Type: "bogus",
			Days: []model.WorkoutDay{
				{
					Exercises: []model.Exercise{
						{TargetSets: 500, TargetReps: -3, TargetWeight: 12345},
					},
				},
			},
		},
	}
	service.ValidatePlan(plan)

	w := plan.Workout
	if w.Type != model.WorkoutTypeSplit {
		t.Fatalf("expected type reset to split, got %q", w.Type)
	}
	if w.Days[0].Name != "Workout" {
		t.Fatalf("expected default day name, got %q", w.Days[0].Name)
	}
	ex := w.Days[0].Exercises[0]
	if ex.Name != "Exercise" {
		t.Fatalf("expected default exercise name, got %q", ex.Name)
	}
	if ex.TargetSets != 100 || ex.TargetReps != 0 || ex.TargetWeight != 9999 {
		t.Fatalf("expected clamped targets, got %+v", ex)
	}
}

func TestValidatePlanIdempotent(t *testing.T) {
	t.Parallel()
	plan := testPlan()
	if warnings := service.ValidatePlan(plan); len(warnings) != 0 {
		t.Fatalf("expected clean plan to pass, got %v", warnings)
	}
	before := plan.Meals[0].Items[0]
	if warnings := service.ValidatePlan(plan); len(warnings) != 0 {
		t.Fatalf("expected second pass to stay clean, got %v", warnings)
	}
	if plan.Meals[0].Items[0] != before {
		t.Fatalf("expected validation to leave a clean plan unchanged")
	}
}
