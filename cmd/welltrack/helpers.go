package welltrack

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/phanigw/welltrack/internal/app"
	"github.com/phanigw/welltrack/internal/db"
	"github.com/phanigw/welltrack/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

// resolveDate defaults an empty --date flag to today and validates the rest.
func resolveDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return service.TodayStr(), nil
	}
	if _, _, err := service.SplitDate(date); err != nil {
		return "", err
	}
	return date, nil
}

func parseIndexArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s %q (expected index >= 0)", name, value)
	}
	return v, nil
}

// readTextArg reads plan text from a file path, or stdin when path is "-".
func readTextArg(path string) (string, error) {
	if path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(raw), nil
}

func printWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}
