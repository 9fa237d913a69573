package service_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/phanigw/welltrack/internal/model"
	"github.com/phanigw/welltrack/internal/service"
)

// seedGoldDay makes a date score gold on every dimension: all planned items
// checked at planned quantity and gold-tier steps.
func seedGoldDay(t *testing.T, db *sql.DB, date string) {
	t.Helper()
	plan, _, err := service.LoadPlan(db)
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	for mi := range plan.Meals {
		for ii := range plan.Meals[mi].Items {
			if _, err := service.CheckItem(db, date, mi, ii, 0); err != nil {
				t.Fatalf("check item %d_%d on %s: %v", mi, ii, date, err)
			}
		}
	}
	if _, err := service.SetSteps(db, date, 10000); err != nil {
		t.Fatalf("set steps on %s: %v", date, err)
	}
}

func TestTrendRange(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	seedGoldDay(t, db, "2026-03-02")
	// A day with data but only bronze-tier steps and one extra.
	if _, err := service.SetSteps(db, "2026-03-03", 6500); err != nil {
		t.Fatalf("set steps: %v", err)
	}
	if _, err := service.AddExtra(db, "2026-03-03", model.ExtraItem{Name: "Cookie", Calories: 200}); err != nil {
		t.Fatalf("add extra: %v", err)
	}

	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.Local)
	report, err := service.TrendRange(db, from, to)
	if err != nil {
		t.Fatalf("trend range: %v", err)
	}

	if len(report.Days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(report.Days))
	}
	if report.DaysWithData != 2 {
		t.Fatalf("expected 2 days with data, got %d", report.DaysWithData)
	}
	if report.Target.Calories != 450 {
		t.Fatalf("expected target 450 kcal, got %v", report.Target.Calories)
	}
	if report.GoldDays != 1 {
		t.Fatalf("expected 1 gold day, got %d", report.GoldDays)
	}
	if report.BronzeDays != 1 {
		t.Fatalf("expected 1 bronze day, got %d", report.BronzeDays)
	}

	if report.Days[0].Score != nil {
		t.Fatalf("expected no score on empty day, got %+v", report.Days[0].Score)
	}
	gold := report.Days[1]
	if gold.Date != "2026-03-02" || gold.Score == nil || gold.Score.Combined != model.TierGold {
		t.Fatalf("unexpected gold day: %+v", gold)
	}
	if gold.Consumed.Calories != 450 {
		t.Fatalf("expected 450 kcal consumed on gold day, got %v", gold.Consumed.Calories)
	}

	// Averages count only days with data: (450+200)/2 and (10000+6500)/2.
	if report.AverageCalories != 325 {
		t.Fatalf("expected avg 325 kcal, got %v", report.AverageCalories)
	}
	if report.AverageSteps != 8250 {
		t.Fatalf("expected avg 8250 steps, got %v", report.AverageSteps)
	}
	if report.TargetCaloriesDiff != -125 {
		t.Fatalf("expected -125 vs target, got %v", report.TargetCaloriesDiff)
	}
}

func TestTrendRangeRejectsInvertedRange(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	from := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local)
	if _, err := service.TrendRange(db, from, to); err == nil {
		t.Fatalf("expected error for from > to")
	}
}

func TestCalcStreakCountsConsecutiveDays(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	seedGoldDay(t, db, "2026-03-08")
	seedGoldDay(t, db, "2026-03-09")
	seedGoldDay(t, db, "2026-03-10")

	today := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.Local)
	streak, err := service.CalcStreak(db, today)
	if err != nil {
		t.Fatalf("calc streak: %v", err)
	}
	if streak != 3 {
		t.Fatalf("expected streak 3, got %d", streak)
	}
}

func TestCalcStreakSkipsUnloggedToday(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	seedGoldDay(t, db, "2026-03-08")
	seedGoldDay(t, db, "2026-03-09")

	today := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	streak, err := service.CalcStreak(db, today)
	if err != nil {
		t.Fatalf("calc streak: %v", err)
	}
	if streak != 2 {
		t.Fatalf("expected streak 2 when today is unlogged, got %d", streak)
	}
}

func TestCalcStreakBrokenByBronzeDay(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	seedGoldDay(t, db, "2026-03-07")
	// Bronze day: everything checked but bronze steps.
	seedGoldDay(t, db, "2026-03-08")
	if _, err := service.SetSteps(db, "2026-03-08", 6000); err != nil {
		t.Fatalf("set steps: %v", err)
	}
	seedGoldDay(t, db, "2026-03-09")
	seedGoldDay(t, db, "2026-03-10")

	today := time.Date(2026, time.March, 10, 20, 0, 0, 0, time.Local)
	streak, err := service.CalcStreak(db, today)
	if err != nil {
		t.Fatalf("calc streak: %v", err)
	}
	if streak != 2 {
		t.Fatalf("expected bronze day to break streak at 2, got %d", streak)
	}
}

func TestCalcStreakCrossesMonthBoundary(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	seedGoldDay(t, db, "2026-02-27")
	seedGoldDay(t, db, "2026-02-28")
	seedGoldDay(t, db, "2026-03-01")

	today := time.Date(2026, time.March, 1, 23, 0, 0, 0, time.Local)
	streak, err := service.CalcStreak(db, today)
	if err != nil {
		t.Fatalf("calc streak: %v", err)
	}
	if streak != 3 {
		t.Fatalf("expected streak 3 across month boundary, got %d", streak)
	}
}

func TestExerciseHistoryMax(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	// Two bench sessions on the Push day, heaviest set differs per date.
	for _, s := range []struct {
		date    string
		weights []float64
	}{
		{"2026-02-10", []float64{60, 62.5}},
		{"2026-03-12", []float64{65, 60}},
	} {
		if _, err := service.SelectWorkoutDay(db, s.date, 0); err != nil {
			t.Fatalf("select workout day on %s: %v", s.date, err)
		}
		for _, w := range s.weights {
			if _, err := service.LogSet(db, s.date, 0, 8, w); err != nil {
				t.Fatalf("log set on %s: %v", s.date, err)
			}
		}
	}

	points, err := service.ExerciseHistoryMax(db, "bench press")
	if err != nil {
		t.Fatalf("exercise history: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %+v", points)
	}
	if points[0].Date != "2026-02-10" || points[0].Weight != 62.5 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].Date != "2026-03-12" || points[1].Weight != 65 {
		t.Fatalf("unexpected second point: %+v", points[1])
	}

	if _, err := service.ExerciseHistoryMax(db, "  "); err == nil {
		t.Fatalf("expected error for blank exercise name")
	}

	none, err := service.ExerciseHistoryMax(db, "deadlift")
	if err != nil {
		t.Fatalf("exercise history: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no points for unlogged exercise, got %+v", none)
	}
}
