package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/phanigw/welltrack/internal/model"
)

type ProgressDelta struct {
	Diff      float64 `json:"diff"`
	Direction string  `json:"direction"` // down, up, same
	Good      bool    `json:"good"`
}

// For weight and waist a decrease is the good direction; for chest and hip
// an increase is.
var decreaseIsGood = map[string]bool{
	"weight": true,
	"chest":  false,
	"waist":  true,
	"hip":    false,
}

func SaveProgressEntry(db *sql.DB, entry model.ProgressEntry) error {
	if _, err := time.ParseInLocation("2006-01-02", entry.Date, time.Local); err != nil {
		return fmt.Errorf("invalid check-in date %q (expected YYYY-MM-DD)", entry.Date)
	}
	for name, v := range map[string]float64{
		"weight": entry.Weight, "chest": entry.Chest, "waist": entry.Waist, "hip": entry.Hip,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0", name)
		}
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode progress entry: %w", err)
	}
	_, err = db.Exec(`
INSERT INTO progress_logs(check_in_date, data, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(check_in_date) DO UPDATE SET data=excluded.data, updated_at=excluded.updated_at
`, entry.Date, string(raw))
	if err != nil {
		return fmt.Errorf("save progress entry %s: %w", entry.Date, err)
	}
	return nil
}

func DeleteProgressEntry(db *sql.DB, date string) error {
	res, err := db.Exec(`DELETE FROM progress_logs WHERE check_in_date = ?`, date)
	if err != nil {
		return fmt.Errorf("delete progress entry %s: %w", date, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete progress entry %s: %w", date, err)
	}
	if n == 0 {
		return fmt.Errorf("no progress entry for %s", date)
	}
	return nil
}

// ListProgress returns entries newest first.
func ListProgress(db *sql.DB) ([]model.ProgressEntry, error) {
	rows, err := db.Query(`SELECT data FROM progress_logs ORDER BY check_in_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list progress entries: %w", err)
	}
	defer rows.Close()

	out := make([]model.ProgressEntry, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan progress entry: %w", err)
		}
		var entry model.ProgressEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("decode progress entry: %w", err)
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress entries: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// ProgressDeltas compares a check-in against the previous one, field by
// field. Fields absent in both entries yield a "same" delta.
func ProgressDeltas(current, previous model.ProgressEntry) map[string]ProgressDelta {
	fields := map[string][2]float64{
		"weight": {current.Weight, previous.Weight},
		"chest":  {current.Chest, previous.Chest},
		"waist":  {current.Waist, previous.Waist},
		"hip":    {current.Hip, previous.Hip},
	}
	out := map[string]ProgressDelta{}
	for name, pair := range fields {
		cur, prev := SafeNum(pair[0]), SafeNum(pair[1])
		if cur == 0 && prev == 0 {
			out[name] = ProgressDelta{Direction: "same"}
			continue
		}
		diff := math.Round((cur-prev)*100) / 100
		d := ProgressDelta{Diff: diff}
		switch {
		case diff < 0:
			d.Direction = "down"
			d.Good = decreaseIsGood[name]
		case diff > 0:
			d.Direction = "up"
			d.Good = !decreaseIsGood[name]
		default:
			d.Direction = "same"
		}
		out[name] = d
	}
	return out
}
