package service

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/phanigw/welltrack/internal/model"
)

// LoadPlan returns the stored plan, sanitized. A database with no plan yet
// yields an empty plan rather than an error.
func LoadPlan(db *sql.DB) (*model.Plan, []string, error) {
	var raw string
	err := db.QueryRow(`SELECT data FROM plans WHERE id = 1`).Scan(&raw)
	if err == sql.ErrNoRows {
		plan := &model.Plan{Meals: []model.Meal{}}
		return plan, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load plan: %w", err)
	}

	plan := &model.Plan{}
	if err := json.Unmarshal([]byte(raw), plan); err != nil {
		return nil, nil, fmt.Errorf("decode stored plan: %w", err)
	}
	warnings := ValidatePlan(plan)
	return plan, warnings, nil
}

// SavePlan sanitizes the plan in place and persists it. Sanitizer warnings
// are returned alongside success; they never block the save.
func SavePlan(db *sql.DB, plan *model.Plan) ([]string, error) {
	if plan == nil {
		return nil, fmt.Errorf("plan is required")
	}
	warnings := ValidatePlan(plan)

	raw, err := json.Marshal(plan)
	if err != nil {
		return warnings, fmt.Errorf("encode plan: %w", err)
	}
	_, err = db.Exec(`
INSERT INTO plans(id, data, updated_at)
VALUES(1, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET data=excluded.data, updated_at=excluded.updated_at
`, string(raw))
	if err != nil {
		return warnings, fmt.Errorf("save plan: %w", err)
	}
	return warnings, nil
}

// SetWorkoutSchedule maps a day-of-week (0=Sunday..6=Saturday) to a workout
// day index, creating the workout section if absent.
func SetWorkoutSchedule(db *sql.DB, weekday, dayIndex int) error {
	if weekday < 0 || weekday > 6 {
		return fmt.Errorf("weekday must be in 0..6 (0=Sunday)")
	}
	plan, _, err := LoadPlan(db)
	if err != nil {
		return err
	}
	if plan.Workout == nil {
		plan.Workout = &model.WorkoutPlan{Type: model.WorkoutTypeSplit, Days: []model.WorkoutDay{}}
	}
	if dayIndex < 0 || dayIndex >= len(plan.Workout.Days) {
		return fmt.Errorf("workout day index %d does not exist", dayIndex)
	}
	if plan.Workout.Schedule == nil {
		plan.Workout.Schedule = map[int]int{}
	}
	plan.Workout.Schedule[weekday] = dayIndex
	_, err = SavePlan(db, plan)
	return err
}

// ScheduledWorkoutDay resolves the workout day index scheduled for a
// weekday, or -1 when nothing is scheduled.
func ScheduledWorkoutDay(plan *model.Plan, weekday int) int {
	if plan == nil || plan.Workout == nil || plan.Workout.Schedule == nil {
		return -1
	}
	idx, ok := plan.Workout.Schedule[weekday]
	if !ok || idx < 0 || idx >= len(plan.Workout.Days) {
		return -1
	}
	return idx
}
