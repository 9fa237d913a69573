package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/phanigw/welltrack/internal/model"
)

const (
	configStepTarget  = "step_target"
	configSleepTarget = "sleep_target"
	configWaterTarget = "water_target"
)

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

// LoadSettings reads the user targets, falling back to defaults for any key
// never set. Targets drive progress display only; score thresholds are fixed.
func LoadSettings(db *sql.DB) (model.Settings, error) {
	out := model.DefaultSettings()
	if v, ok, err := GetConfig(db, configStepTarget); err != nil {
		return out, err
	} else if ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			out.StepTarget = n
		}
	}
	if v, ok, err := GetConfig(db, configSleepTarget); err != nil {
		return out, err
	} else if ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			out.SleepTarget = f
		}
	}
	if v, ok, err := GetConfig(db, configWaterTarget); err != nil {
		return out, err
	} else if ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			out.WaterTarget = n
		}
	}
	return out, nil
}

func SaveSettings(db *sql.DB, s model.Settings) error {
	if s.StepTarget <= 0 {
		return fmt.Errorf("step target must be > 0")
	}
	if s.SleepTarget <= 0 {
		return fmt.Errorf("sleep target must be > 0")
	}
	if s.WaterTarget <= 0 {
		return fmt.Errorf("water target must be > 0")
	}
	if err := SetConfig(db, configStepTarget, strconv.Itoa(s.StepTarget)); err != nil {
		return err
	}
	if err := SetConfig(db, configSleepTarget, strconv.FormatFloat(s.SleepTarget, 'f', -1, 64)); err != nil {
		return err
	}
	return SetConfig(db, configWaterTarget, strconv.Itoa(s.WaterTarget))
}
