package service_test

import (
	"testing"

	"github.com/phanigw/welltrack/internal/model"
	"github.com/phanigw/welltrack/internal/service"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	s, err := service.LoadSettings(db)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if s != model.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	want := model.Settings{StepTarget: 12000, SleepTarget: 7.5, WaterTarget: 10}
	if err := service.SaveSettings(db, want); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	got, err := service.LoadSettings(db)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSaveSettingsRejectsNonPositiveTargets(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.SaveSettings(db, model.Settings{StepTarget: 0, SleepTarget: 8, WaterTarget: 8}); err == nil {
		t.Fatalf("expected error for zero step target")
	}
	if err := service.SaveSettings(db, model.Settings{StepTarget: 10000, SleepTarget: -1, WaterTarget: 8}); err == nil {
		t.Fatalf("expected error for negative sleep target")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, ok, err := service.GetConfig(db, "missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := service.SetConfig(db, " Step_Target ", " 9000 "); err != nil {
		t.Fatalf("set config: %v", err)
	}
	v, ok, err := service.GetConfig(db, "step_target")
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if !ok || v != "9000" {
		t.Fatalf("expected trimmed 9000, got ok=%v v=%q", ok, v)
	}
	if err := service.SetConfig(db, "", "x"); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
