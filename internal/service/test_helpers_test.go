package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/phanigw/welltrack/internal/db"
	"github.com/phanigw/welltrack/internal/model"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "welltrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

// testPlan returns a small diet and workout plan used across tests.
// Meal targets sum to 450 kcal, 26g protein, 64g carbs, 9.5g fat.
func testPlan() *model.Plan {
	return &model.Plan{
		Meals: []model.Meal{
			{
				Name: "Breakfast",
				Items: []model.FoodItem{
					{Name: "Oatmeal", Qty: 50, Unit: "g", Calories: 180, Protein: 6, Carbs: 27, Fat: 4},
					{Name: "Banana", Qty: 1, Unit: "piece", Calories: 105, Protein: 1, Carbs: 27, Fat: 0.5},
				},
			},
			{
				Name: "Lunch",
				Items: []model.FoodItem{
					{Name: "Chicken Breast", Qty: 100, Unit: "g", Calories: 165, Protein: 19, Carbs: 10, Fat: 5},
				},
			},
		},
		Workout: &model.WorkoutPlan{
			Type: model.WorkoutTypeSplit,
			Days: []model.WorkoutDay{
				{
					Name: "Push",
					Exercises: []model.Exercise{
						{Name: "Bench Press", Type: model.ExerciseStrength, TargetSets: 3, TargetReps: 8, TargetWeight: 60},
						{Name: "Overhead Press", Type: model.ExerciseStrength, TargetSets: 3, TargetReps: 10, TargetWeight: 30},
					},
				},
				{
					Name: "Pull",
					Exercises: []model.Exercise{
						{Name: "Deadlift", Type: model.ExerciseStrength, TargetSets: 3, TargetReps: 5, TargetWeight: 100},
					},
				},
			},
		},
	}
}
