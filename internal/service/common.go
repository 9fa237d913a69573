package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// SafeNum maps non-finite values to 0 so malformed numeric input degrades
// silently instead of propagating NaN through macro sums.
func SafeNum(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ClampNum coerces v into [min, max]; non-finite input becomes min.
func ClampNum(v, min, max float64) float64 {
	v = SafeNum(v)
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ItemKey is the composite day-log key for item i of meal m.
func ItemKey(mealIndex, itemIndex int) string {
	return strconv.Itoa(mealIndex) + "_" + strconv.Itoa(itemIndex)
}

func FmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func TodayStr() string {
	return FmtDate(time.Now())
}

// MonthKey formats a (year, month) pair as "YYYY-MM".
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// SplitDate splits a "YYYY-MM-DD" date string into its month key and
// zero-padded day-of-month component.
func SplitDate(dateStr string) (monthKey, day string, err error) {
	parts := strings.Split(strings.TrimSpace(dateStr), "-")
	if len(parts) != 3 {
		return "", "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", dateStr)
	}
	if _, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(dateStr), time.Local); err != nil {
		return "", "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", dateStr)
	}
	return parts[0] + "-" + parts[1], parts[2], nil
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
