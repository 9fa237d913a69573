package service

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/phanigw/welltrack/internal/model"
)

// NewDayLog returns the zero-valued log a date gets the first time any of
// its fields is touched.
func NewDayLog() *model.DayLog {
	return &model.DayLog{
		Items:  map[string]*model.ItemLog{},
		Extras: []model.ExtraItem{},
	}
}

// LoadMonth returns the day logs for a month key ("YYYY-MM"), keyed by
// zero-padded day of month. A month that was never written is empty.
func LoadMonth(db *sql.DB, monthKey string) (map[string]*model.DayLog, error) {
	var raw string
	err := db.QueryRow(`SELECT data FROM day_logs WHERE month_key = ?`, monthKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return map[string]*model.DayLog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load month %s: %w", monthKey, err)
	}
	month := map[string]*model.DayLog{}
	if err := json.Unmarshal([]byte(raw), &month); err != nil {
		return nil, fmt.Errorf("decode month %s: %w", monthKey, err)
	}
	for _, log := range month {
		normalizeDayLog(log)
	}
	return month, nil
}

func SaveMonth(db *sql.DB, monthKey string, month map[string]*model.DayLog) error {
	if month == nil {
		month = map[string]*model.DayLog{}
	}
	raw, err := json.Marshal(month)
	if err != nil {
		return fmt.Errorf("encode month %s: %w", monthKey, err)
	}
	_, err = db.Exec(`
INSERT INTO day_logs(month_key, data, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(month_key) DO UPDATE SET data=excluded.data, updated_at=excluded.updated_at
`, monthKey, string(raw))
	if err != nil {
		return fmt.Errorf("save month %s: %w", monthKey, err)
	}
	return nil
}

// GetDayLog loads the log for a date, creating a zero-valued one when the
// date was never touched. The log is not persisted until UpdateDayLog runs.
func GetDayLog(db *sql.DB, dateStr string) (*model.DayLog, error) {
	mk, day, err := SplitDate(dateStr)
	if err != nil {
		return nil, err
	}
	month, err := LoadMonth(db, mk)
	if err != nil {
		return nil, err
	}
	log, ok := month[day]
	if !ok || log == nil {
		return NewDayLog(), nil
	}
	return log, nil
}

// UpdateDayLog applies fn to the date's log (created lazily) and writes the
// containing month back in one read-modify-write pass.
func UpdateDayLog(db *sql.DB, dateStr string, fn func(*model.DayLog) error) (*model.DayLog, error) {
	mk, day, err := SplitDate(dateStr)
	if err != nil {
		return nil, err
	}
	month, err := LoadMonth(db, mk)
	if err != nil {
		return nil, err
	}
	log, ok := month[day]
	if !ok || log == nil {
		log = NewDayLog()
		month[day] = log
	}
	if err := fn(log); err != nil {
		return nil, err
	}
	if err := SaveMonth(db, mk, month); err != nil {
		return nil, err
	}
	return log, nil
}

// CheckItem marks plan item (mealIndex, itemIndex) eaten with the given
// quantity. A qty of 0 means the item's planned quantity.
func CheckItem(db *sql.DB, dateStr string, mealIndex, itemIndex int, qty float64) (*model.DayLog, error) {
	plan, _, err := LoadPlan(db)
	if err != nil {
		return nil, err
	}
	if mealIndex < 0 || mealIndex >= len(plan.Meals) {
		return nil, fmt.Errorf("meal %d does not exist in the plan", mealIndex)
	}
	if itemIndex < 0 || itemIndex >= len(plan.Meals[mealIndex].Items) {
		return nil, fmt.Errorf("item %d does not exist in meal %q", itemIndex, plan.Meals[mealIndex].Name)
	}
	if qty < 0 {
		return nil, fmt.Errorf("quantity must be >= 0")
	}
	if qty == 0 {
		qty = plan.Meals[mealIndex].Items[itemIndex].Qty
	}
	return UpdateDayLog(db, dateStr, func(log *model.DayLog) error {
		log.Items[ItemKey(mealIndex, itemIndex)] = &model.ItemLog{Checked: true, ActualQty: qty}
		return nil
	})
}

func UncheckItem(db *sql.DB, dateStr string, mealIndex, itemIndex int) (*model.DayLog, error) {
	return UpdateDayLog(db, dateStr, func(log *model.DayLog) error {
		delete(log.Items, ItemKey(mealIndex, itemIndex))
		return nil
	})
}

func AddExtra(db *sql.DB, dateStr string, extra model.ExtraItem) (*model.DayLog, error) {
	if extra.Name == "" {
		return nil, fmt.Errorf("extra item name is required")
	}
	if extra.Qty <= 0 {
		extra.Qty = 1
	}
	return UpdateDayLog(db, dateStr, func(log *model.DayLog) error {
		log.Extras = append(log.Extras, extra)
		return nil
	})
}

func SetSteps(db *sql.DB, dateStr string, steps int) (*model.DayLog, error) {
	if steps < 0 {
		return nil, fmt.Errorf("steps must be >= 0")
	}
	return UpdateDayLog(db, dateStr, func(log *model.DayLog) error {
		log.Steps = steps
		return nil
	})
}

func SetSleep(db *sql.DB, dateStr string, hours float64) (*model.DayLog, error) {
	if hours < 0 {
		return nil, fmt.Errorf("sleep hours must be >= 0")
	}
	return UpdateDayLog(db, dateStr, func(log *model.DayLog) error {
		log.Sleep = hours
		return nil
	})
}

func SetWater(db *sql.DB, dateStr string, units int) (*model.DayLog, error) {
	if units < 0 {
		return nil, fmt.Errorf("water units must be >= 0")
	}
	return UpdateDayLog(db, dateStr, func(log *model.DayLog) error {
		log.Water = units
		return nil
	})
}

func SetBodyWeight(db *sql.DB, dateStr string, weight float64) (*model.DayLog, error) {
	if weight < 0 {
		return nil, fmt.Errorf("body weight must be >= 0")
	}
	return UpdateDayLog(db, dateStr, func(log *model.DayLog) error {
		log.BodyWeight = weight
		return nil
	})
}

func SetResistanceTraining(db *sql.DB, dateStr string, on bool) (*model.DayLog, error) {
	return UpdateDayLog(db, dateStr, func(log *model.DayLog) error {
		log.ResistanceTraining = on
		return nil
	})
}

// SelectWorkoutDay picks which planned workout day the date's workout log
// tracks, and turns resistance training on.
func SelectWorkoutDay(db *sql.DB, dateStr string, dayIndex int) (*model.DayLog, error) {
	plan, _, err := LoadPlan(db)
	if err != nil {
		return nil, err
	}
	if plan.Workout == nil || dayIndex < 0 || dayIndex >= len(plan.Workout.Days) {
		return nil, fmt.Errorf("workout day %d does not exist in the plan", dayIndex)
	}
	return UpdateDayLog(db, dateStr, func(log *model.DayLog) error {
		idx := dayIndex
		log.WorkoutDayIndex = &idx
		log.ResistanceTraining = true
		if log.Workout == nil {
			log.Workout = &model.WorkoutLog{Exercises: map[int]*model.ExerciseLog{}}
		}
		return nil
	})
}

// LogSet appends a strength set to the date's log for the given exercise.
func LogSet(db *sql.DB, dateStr string, exerciseIndex, reps int, weight float64) (*model.DayLog, error) {
	if reps <= 0 {
		return nil, fmt.Errorf("reps must be > 0")
	}
	if weight < 0 {
		return nil, fmt.Errorf("weight must be >= 0")
	}
	return UpdateDayLog(db, dateStr, func(log *model.DayLog) error {
		ex := ensureExerciseLog(log, exerciseIndex)
		ex.Sets = append(ex.Sets, model.SetLog{Reps: reps, Weight: weight})
		return nil
	})
}

// LogCardio records duration/distance for a non-strength exercise.
func LogCardio(db *sql.DB, dateStr string, exerciseIndex int, duration, distance float64) (*model.DayLog, error) {
	if duration < 0 || distance < 0 {
		return nil, fmt.Errorf("duration and distance must be >= 0")
	}
	return UpdateDayLog(db, dateStr, func(log *model.DayLog) error {
		ex := ensureExerciseLog(log, exerciseIndex)
		ex.Duration = duration
		ex.Distance = distance
		return nil
	})
}

func CompleteExercise(db *sql.DB, dateStr string, exerciseIndex int, done bool) (*model.DayLog, error) {
	return UpdateDayLog(db, dateStr, func(log *model.DayLog) error {
		ex := ensureExerciseLog(log, exerciseIndex)
		ex.Completed = done
		return nil
	})
}

func ensureExerciseLog(log *model.DayLog, exerciseIndex int) *model.ExerciseLog {
	log.ResistanceTraining = true
	if log.Workout == nil {
		log.Workout = &model.WorkoutLog{Exercises: map[int]*model.ExerciseLog{}}
	}
	if log.Workout.Exercises == nil {
		log.Workout.Exercises = map[int]*model.ExerciseLog{}
	}
	ex := log.Workout.Exercises[exerciseIndex]
	if ex == nil {
		ex = &model.ExerciseLog{}
		log.Workout.Exercises[exerciseIndex] = ex
	}
	return ex
}

// normalizeDayLog repairs nil collections on logs decoded from storage so
// callers never branch on missing maps.
func normalizeDayLog(log *model.DayLog) {
	if log == nil {
		return
	}
	if log.Items == nil {
		log.Items = map[string]*model.ItemLog{}
	}
	if log.Extras == nil {
		log.Extras = []model.ExtraItem{}
	}
	if log.Workout != nil && log.Workout.Exercises == nil {
		log.Workout.Exercises = map[int]*model.ExerciseLog{}
	}
}
