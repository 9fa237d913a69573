package service_test

import (
	"testing"

	"github.com/phanigw/welltrack/internal/model"
	"github.com/phanigw/welltrack/internal/service"
)

func TestCheckItemPersistsAcrossLoads(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	if _, err := service.CheckItem(db, "2026-03-10", 0, 0, 0); err != nil {
		t.Fatalf("check item: %v", err)
	}

	log, err := service.GetDayLog(db, "2026-03-10")
	if err != nil {
		t.Fatalf("get day log: %v", err)
	}
	entry := log.Items["0_0"]
	if entry == nil || !entry.Checked {
		t.Fatalf("expected item 0_0 checked, got %+v", entry)
	}
	if entry.ActualQty != 50 {
		t.Fatalf("expected planned qty 50 used for qty 0, got %v", entry.ActualQty)
	}
}

func TestCheckItemRejectsOutOfRange(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	if _, err := service.CheckItem(db, "2026-03-10", 5, 0, 0); err == nil {
		t.Fatalf("expected error for unknown meal index")
	}
	if _, err := service.CheckItem(db, "2026-03-10", 0, 9, 0); err == nil {
		t.Fatalf("expected error for unknown item index")
	}
}

func TestUncheckItemRemovesLog(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	if _, err := service.CheckItem(db, "2026-03-10", 0, 1, 2); err != nil {
		t.Fatalf("check item: %v", err)
	}
	if _, err := service.UncheckItem(db, "2026-03-10", 0, 1); err != nil {
		t.Fatalf("uncheck item: %v", err)
	}
	log, err := service.GetDayLog(db, "2026-03-10")
	if err != nil {
		t.Fatalf("get day log: %v", err)
	}
	if _, ok := log.Items["0_1"]; ok {
		t.Fatalf("expected item log removed")
	}
}

func TestAddExtraDefaultsQty(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	log, err := service.AddExtra(db, "2026-03-11", model.ExtraItem{Name: "Cookie", Calories: 200})
	if err != nil {
		t.Fatalf("add extra: %v", err)
	}
	if len(log.Extras) != 1 || log.Extras[0].Qty != 1 {
		t.Fatalf("expected one extra with qty 1, got %+v", log.Extras)
	}

	if _, err := service.AddExtra(db, "2026-03-11", model.ExtraItem{}); err == nil {
		t.Fatalf("expected error for unnamed extra")
	}
}

func TestDailyFieldSetters(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	date := "2026-03-12"
	if _, err := service.SetSteps(db, date, 8500); err != nil {
		t.Fatalf("set steps: %v", err)
	}
	if _, err := service.SetSleep(db, date, 7.5); err != nil {
		t.Fatalf("set sleep: %v", err)
	}
	if _, err := service.SetWater(db, date, 6); err != nil {
		t.Fatalf("set water: %v", err)
	}
	if _, err := service.SetBodyWeight(db, date, 81.2); err != nil {
		t.Fatalf("set body weight: %v", err)
	}

	log, err := service.GetDayLog(db, date)
	if err != nil {
		t.Fatalf("get day log: %v", err)
	}
	if log.Steps != 8500 || log.Sleep != 7.5 || log.Water != 6 || log.BodyWeight != 81.2 {
		t.Fatalf("unexpected day log: %+v", log)
	}

	if _, err := service.SetSteps(db, date, -1); err == nil {
		t.Fatalf("expected error for negative steps")
	}
	if _, err := service.SetSleep(db, date, -0.5); err == nil {
		t.Fatalf("expected error for negative sleep")
	}
}

func TestInvalidDateRejected(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SetSteps(db, "03/12/2026", 100); err == nil {
		t.Fatalf("expected error for malformed date")
	}
	if _, err := service.GetDayLog(db, "2026-13-40"); err == nil {
		t.Fatalf("expected error for impossible date")
	}
}

func TestSelectWorkoutDayAndLogging(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	date := "2026-03-13"
	log, err := service.SelectWorkoutDay(db, date, 1)
	if err != nil {
		t.Fatalf("select workout day: %v", err)
	}
	if log.WorkoutDayIndex == nil || *log.WorkoutDayIndex != 1 {
		t.Fatalf("expected workout day index 1, got %+v", log.WorkoutDayIndex)
	}
	if !log.ResistanceTraining {
		t.Fatalf("expected resistance training enabled")
	}

	if _, err := service.SelectWorkoutDay(db, date, 7); err == nil {
		t.Fatalf("expected error for unknown workout day")
	}

	if _, err := service.LogSet(db, date, 0, 5, 100); err != nil {
		t.Fatalf("log set: %v", err)
	}
	if _, err := service.LogSet(db, date, 0, 5, 102.5); err != nil {
		t.Fatalf("log second set: %v", err)
	}
	if _, err := service.CompleteExercise(db, date, 0, true); err != nil {
		t.Fatalf("complete exercise: %v", err)
	}

	log, err = service.GetDayLog(db, date)
	if err != nil {
		t.Fatalf("get day log: %v", err)
	}
	ex := log.Workout.Exercises[0]
	if ex == nil || !ex.Completed {
		t.Fatalf("expected completed exercise log, got %+v", ex)
	}
	if len(ex.Sets) != 2 || ex.Sets[1].Weight != 102.5 {
		t.Fatalf("unexpected sets: %+v", ex.Sets)
	}

	if _, err := service.LogSet(db, date, 0, 0, 50); err == nil {
		t.Fatalf("expected error for zero reps")
	}
}

func TestLogCardio(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	log, err := service.LogCardio(db, "2026-03-14", 2, 30, 5)
	if err != nil {
		t.Fatalf("log cardio: %v", err)
	}
	ex := log.Workout.Exercises[2]
	if ex == nil || ex.Duration != 30 || ex.Distance != 5 {
		t.Fatalf("unexpected cardio log: %+v", ex)
	}
	if !log.ResistanceTraining {
		t.Fatalf("expected logging a workout to mark the day as training")
	}
}
