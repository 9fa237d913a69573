package service_test

import (
	"testing"

	"github.com/phanigw/welltrack/internal/service"
)

func TestLoadPlanEmptyDatabase(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	plan, warnings, err := service.LoadPlan(db)
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if plan == nil || len(plan.Meals) != 0 {
		t.Fatalf("expected empty plan, got %+v", plan)
	}
}

func TestSavePlanRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	plan, _, err := service.LoadPlan(db)
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if len(plan.Meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(plan.Meals))
	}
	if plan.Meals[0].Items[0].Name != "Oatmeal" {
		t.Fatalf("unexpected first item: %+v", plan.Meals[0].Items[0])
	}
	if plan.Workout == nil || len(plan.Workout.Days) != 2 {
		t.Fatalf("expected workout plan with 2 days, got %+v", plan.Workout)
	}
}

func TestSavePlanOverwrites(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	replacement := testPlan()
	replacement.Meals = replacement.Meals[:1]
	if _, err := service.SavePlan(db, replacement); err != nil {
		t.Fatalf("save replacement: %v", err)
	}
	plan, _, err := service.LoadPlan(db)
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if len(plan.Meals) != 1 {
		t.Fatalf("expected replacement with 1 meal, got %d", len(plan.Meals))
	}
}

func TestWorkoutSchedule(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.SavePlan(db, testPlan()); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	if err := service.SetWorkoutSchedule(db, 1, 0); err != nil {
		t.Fatalf("schedule monday: %v", err)
	}
	if err := service.SetWorkoutSchedule(db, 3, 1); err != nil {
		t.Fatalf("schedule wednesday: %v", err)
	}

	if err := service.SetWorkoutSchedule(db, 7, 0); err == nil {
		t.Fatalf("expected error for weekday 7")
	}
	if err := service.SetWorkoutSchedule(db, 1, 9); err == nil {
		t.Fatalf("expected error for unknown day index")
	}

	plan, _, err := service.LoadPlan(db)
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if got := service.ScheduledWorkoutDay(plan, 1); got != 0 {
		t.Fatalf("expected day 0 on monday, got %d", got)
	}
	if got := service.ScheduledWorkoutDay(plan, 3); got != 1 {
		t.Fatalf("expected day 1 on wednesday, got %d", got)
	}
	if got := service.ScheduledWorkoutDay(plan, 5); got != -1 {
		t.Fatalf("expected -1 on unscheduled day, got %d", got)
	}
	if got := service.ScheduledWorkoutDay(nil, 1); got != -1 {
		t.Fatalf("expected -1 for nil plan, got %d", got)
	}
}
