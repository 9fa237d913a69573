package service

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/phanigw/welltrack/internal/model"
)

// ExportData is the backup file format: a serialization of the plan,
// settings, month-keyed day logs, and progress check-ins. Valid data
// round-trips losslessly through export and import.
type ExportData struct {
	Plan     *model.Plan                         `json:"plan"`
	Settings *model.Settings                     `json:"settings"`
	Months   map[string]map[string]*model.DayLog `json:"months"`
	Progress []model.ProgressEntry               `json:"progress,omitempty"`
}

type ImportReport struct {
	MonthsImported   int      `json:"months_imported"`
	ProgressImported int      `json:"progress_imported"`
	PlanImported     bool     `json:"plan_imported"`
	SettingsImported bool     `json:"settings_imported"`
	Warnings         []string `json:"warnings,omitempty"`
}

func ExportSnapshot(db *sql.DB) (*ExportData, error) {
	plan, _, err := LoadPlan(db)
	if err != nil {
		return nil, err
	}
	settings, err := LoadSettings(db)
	if err != nil {
		return nil, err
	}

	months := map[string]map[string]*model.DayLog{}
	rows, err := db.Query(`SELECT month_key, data FROM day_logs ORDER BY month_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("export day logs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var mk, raw string
		if err := rows.Scan(&mk, &raw); err != nil {
			return nil, fmt.Errorf("scan exported month: %w", err)
		}
		month := map[string]*model.DayLog{}
		if err := json.Unmarshal([]byte(raw), &month); err != nil {
			return nil, fmt.Errorf("decode exported month %s: %w", mk, err)
		}
		months[mk] = month
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exported months: %w", err)
	}

	progress, err := ListProgress(db)
	if err != nil {
		return nil, err
	}

	return &ExportData{
		Plan:     plan,
		Settings: &settings,
		Months:   months,
		Progress: progress,
	}, nil
}

// ImportSnapshot merges a backup into the store. The plan passes through the
// sanitizer; its warnings land in the report rather than failing the import.
// Months are replaced whole by month key.
func ImportSnapshot(db *sql.DB, data *ExportData) (ImportReport, error) {
	report := ImportReport{}
	if data == nil {
		return report, fmt.Errorf("backup data is required")
	}

	if data.Plan != nil {
		warnings, err := SavePlan(db, data.Plan)
		if err != nil {
			return report, err
		}
		report.Warnings = append(report.Warnings, warnings...)
		report.PlanImported = true
	}

	if data.Settings != nil {
		s := *data.Settings
		defaults := model.DefaultSettings()
		if s.StepTarget <= 0 {
			s.StepTarget = defaults.StepTarget
		}
		if s.SleepTarget <= 0 {
			s.SleepTarget = defaults.SleepTarget
		}
		if s.WaterTarget <= 0 {
			s.WaterTarget = defaults.WaterTarget
		}
		if err := SaveSettings(db, s); err != nil {
			return report, err
		}
		report.SettingsImported = true
	}

	for mk, month := range data.Months {
		if _, _, err := SplitDate(mk + "-01"); err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("skipped month with invalid key %q", mk))
			continue
		}
		for _, log := range month {
			normalizeDayLog(log)
		}
		if err := SaveMonth(db, mk, month); err != nil {
			return report, err
		}
		report.MonthsImported++
	}

	for _, entry := range data.Progress {
		if err := SaveProgressEntry(db, entry); err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("skipped progress entry %q: %v", entry.Date, err))
			continue
		}
		report.ProgressImported++
	}

	return report, nil
}
