package service

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/phanigw/welltrack/internal/model"
)

type DayTrend struct {
	Date     string            `json:"date"`
	Consumed model.MacroVector `json:"consumed"`
	Steps    int               `json:"steps"`
	Score    *model.Score      `json:"score,omitempty"`
}

type TrendReport struct {
	FromDate           string            `json:"from_date"`
	ToDate             string            `json:"to_date"`
	Target             model.MacroVector `json:"target"`
	Days               []DayTrend        `json:"days"`
	DaysWithData       int               `json:"days_with_data"`
	AverageCalories    float64           `json:"avg_calories_per_day"`
	GoldDays           int               `json:"gold_days"`
	SilverDays         int               `json:"silver_days"`
	BronzeDays         int               `json:"bronze_days"`
	FailDays           int               `json:"fail_days"`
	AverageSteps       float64           `json:"avg_steps_per_day"`
	CurrentStreak      int               `json:"current_streak"`
	TargetCaloriesDiff float64           `json:"avg_calories_vs_target"`
}

// TrendRange scores every day in [from, to] against the current plan.
// Days are always scored with the plan as it is now; historical plans are
// not reconstructed.
func TrendRange(db *sql.DB, from, to time.Time) (*TrendReport, error) {
	if from.After(to) {
		return nil, fmt.Errorf("from date must be <= to date")
	}
	from = beginningOfDay(from)
	to = beginningOfDay(to)

	plan, _, err := LoadPlan(db)
	if err != nil {
		return nil, err
	}

	report := &TrendReport{
		FromDate: FmtDate(from),
		ToDate:   FmtDate(to),
		Target:   PlanTargets(plan),
	}

	months := map[string]map[string]*model.DayLog{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		mk := MonthKey(d.Year(), d.Month())
		month, ok := months[mk]
		if !ok {
			month, err = LoadMonth(db, mk)
			if err != nil {
				return nil, err
			}
			months[mk] = month
		}

		trend := DayTrend{Date: FmtDate(d)}
		if log := month[d.Format("02")]; log != nil && HasDayData(log) {
			trend.Consumed = ConsumedMacros(plan, log)
			trend.Steps = log.Steps
			trend.Score = CalcScore(plan, log)
			report.DaysWithData++
			switch trend.Score.Combined {
			case model.TierGold:
				report.GoldDays++
			case model.TierSilver:
				report.SilverDays++
			case model.TierBronze:
				report.BronzeDays++
			default:
				report.FailDays++
			}
		}
		report.Days = append(report.Days, trend)
	}

	if report.DaysWithData > 0 {
		var totalCalories float64
		var totalSteps int
		for _, d := range report.Days {
			totalCalories += d.Consumed.Calories
			totalSteps += d.Steps
		}
		div := float64(report.DaysWithData)
		report.AverageCalories = totalCalories / div
		report.AverageSteps = float64(totalSteps) / div
		report.TargetCaloriesDiff = report.AverageCalories - report.Target.Calories
	}

	streak, err := CalcStreak(db, to)
	if err != nil {
		return nil, err
	}
	report.CurrentStreak = streak

	return report, nil
}

// CalcStreak counts consecutive days ending at today (or yesterday when
// today has nothing logged yet) whose combined tier is silver or better.
// The walk back is capped at 60 days.
func CalcStreak(db *sql.DB, today time.Time) (int, error) {
	plan, _, err := LoadPlan(db)
	if err != nil {
		return 0, err
	}

	months := map[string]map[string]*model.DayLog{}
	getLog := func(d time.Time) (*model.DayLog, error) {
		mk := MonthKey(d.Year(), d.Month())
		month, ok := months[mk]
		if !ok {
			loaded, err := LoadMonth(db, mk)
			if err != nil {
				return nil, err
			}
			months[mk] = loaded
			month = loaded
		}
		return month[d.Format("02")], nil
	}

	d := beginningOfDay(today)
	todayLog, err := getLog(d)
	if err != nil {
		return 0, err
	}
	if !HasDayData(todayLog) {
		d = d.AddDate(0, 0, -1)
	}

	streak := 0
	for i := 0; i < 60; i++ {
		log, err := getLog(d)
		if err != nil {
			return 0, err
		}
		if !HasDayData(log) {
			break
		}
		score := CalcScore(plan, log)
		if score == nil || (score.Combined != model.TierGold && score.Combined != model.TierSilver) {
			break
		}
		streak++
		d = d.AddDate(0, 0, -1)
	}
	return streak, nil
}

type ExercisePoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// ExerciseHistoryMax returns the heaviest logged set per date for a named
// exercise, resolved through the planned workout day each log tracked.
func ExerciseHistoryMax(db *sql.DB, exerciseName string) ([]ExercisePoint, error) {
	name := strings.TrimSpace(strings.ToLower(exerciseName))
	if name == "" {
		return nil, fmt.Errorf("exercise name is required")
	}
	plan, _, err := LoadPlan(db)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT month_key FROM day_logs ORDER BY month_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list logged months: %w", err)
	}
	monthKeys := []string{}
	for rows.Next() {
		var mk string
		if err := rows.Scan(&mk); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan month key: %w", err)
		}
		monthKeys = append(monthKeys, mk)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("iterate month keys: %w", err)
	}
	_ = rows.Close()

	points := []ExercisePoint{}
	for _, mk := range monthKeys {
		month, err := LoadMonth(db, mk)
		if err != nil {
			return nil, err
		}
		for day, log := range month {
			if log == nil || log.Workout == nil {
				continue
			}
			dayIdx := 0
			if log.WorkoutDayIndex != nil {
				dayIdx = *log.WorkoutDayIndex
			}
			planned := plannedWorkoutDay(plan, dayIdx)
			if planned == nil {
				continue
			}
			for ei, exLog := range log.Workout.Exercises {
				if exLog == nil || len(exLog.Sets) == 0 {
					continue
				}
				if ei < 0 || ei >= len(planned.Exercises) {
					continue
				}
				if strings.ToLower(planned.Exercises[ei].Name) != name {
					continue
				}
				max := 0.0
				for _, set := range exLog.Sets {
					if set.Weight > max {
						max = set.Weight
					}
				}
				points = append(points, ExercisePoint{Date: mk + "-" + day, Weight: max})
			}
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}
