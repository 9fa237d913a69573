package service

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/phanigw/welltrack/internal/model"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

type DoctorReport struct {
	InvalidMonthDocs  int `json:"invalid_month_docs"`
	StaleItemLogs     int `json:"stale_item_logs"`
	StaleWorkoutDays  int `json:"stale_workout_days"`
	InvalidConfigRows int `json:"invalid_config_rows"`
	PrunedItemLogs    int `json:"pruned_item_logs,omitempty"`
}

func CreateBackup(dbPath, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(dbPath) == "" {
		return BackupInfo{}, fmt.Errorf("db path is required")
	}
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := copyFile(dbPath, outPath); err != nil {
		return BackupInfo{}, err
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	checksumFile := backupPath + ".sha256"
	if expected, err := os.ReadFile(checksumFile); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return copyFile(backupPath, dbPath)
}

func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".db") {
			continue
		}
		full := filepath.Join(dir, f.Name())
		st, err := os.Stat(full)
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		out = append(out, BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// RunDoctor scans stored month documents for damage that routine use can
// introduce: JSON that no longer parses, item logs whose positional keys
// point outside the current plan (a plan edit after logging), and workout
// day selections past the end of the current split. With fix set, stale
// item logs are pruned from the affected months.
func RunDoctor(db *sql.DB, fix bool) (DoctorReport, error) {
	report := DoctorReport{}

	plan, _, err := LoadPlan(db)
	if err != nil {
		return report, err
	}
	workoutDays := 0
	if plan.Workout != nil {
		workoutDays = len(plan.Workout.Days)
	}

	rows, err := db.Query(`SELECT month_key, data FROM day_logs`)
	if err != nil {
		return report, fmt.Errorf("doctor month query: %w", err)
	}
	type pruneTarget struct {
		monthKey string
		month    map[string]*model.DayLog
	}
	prunes := make([]pruneTarget, 0)
	for rows.Next() {
		var monthKey, data string
		if err := rows.Scan(&monthKey, &data); err != nil {
			_ = rows.Close()
			return report, fmt.Errorf("doctor month scan: %w", err)
		}
		var month map[string]*model.DayLog
		if err := json.Unmarshal([]byte(data), &month); err != nil {
			report.InvalidMonthDocs++
			continue
		}
		stale := 0
		for _, day := range month {
			if day == nil {
				continue
			}
			for key := range day.Items {
				if !itemKeyInPlan(plan, key) {
					stale++
				}
			}
			if day.WorkoutDayIndex != nil {
				if *day.WorkoutDayIndex < 0 || *day.WorkoutDayIndex >= workoutDays {
					report.StaleWorkoutDays++
				}
			}
		}
		if stale > 0 {
			report.StaleItemLogs += stale
			prunes = append(prunes, pruneTarget{monthKey: monthKey, month: month})
		}
	}
	_ = rows.Close()

	cfgRows, err := db.Query(`SELECT key, value FROM app_config`)
	if err != nil {
		return report, fmt.Errorf("doctor config query: %w", err)
	}
	for cfgRows.Next() {
		var key, value string
		if err := cfgRows.Scan(&key, &value); err != nil {
			_ = cfgRows.Close()
			return report, fmt.Errorf("doctor config scan: %w", err)
		}
		if strings.TrimSpace(value) == "" {
			report.InvalidConfigRows++
		}
	}
	_ = cfgRows.Close()

	if fix && len(prunes) > 0 {
		for _, p := range prunes {
			for _, day := range p.month {
				if day == nil {
					continue
				}
				for key := range day.Items {
					if !itemKeyInPlan(plan, key) {
						delete(day.Items, key)
						report.PrunedItemLogs++
					}
				}
			}
			if err := SaveMonth(db, p.monthKey, p.month); err != nil {
				return report, fmt.Errorf("doctor prune month %s: %w", p.monthKey, err)
			}
		}
	}

	return report, nil
}

// itemKeyInPlan reports whether a positional "meal_item" log key still
// resolves to an item in the given plan.
func itemKeyInPlan(plan *model.Plan, key string) bool {
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return false
	}
	mi, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	ii, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	if mi < 0 || mi >= len(plan.Meals) {
		return false
	}
	if ii < 0 || ii >= len(plan.Meals[mi].Items) {
		return false
	}
	return true
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination file: %w", err)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
