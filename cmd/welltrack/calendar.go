package welltrack

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/phanigw/welltrack/internal/render"
	"github.com/spf13/cobra"
)

var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show a month of scores as a colored grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if m := strings.TrimSpace(calendarMonth); m != "" {
			t, err := time.ParseInLocation("2006-01", m, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --month %q (expected YYYY-MM)", m)
			}
			year, month = t.Year(), t.Month()
		}
		return withDB(func(sqldb *sql.DB) error {
			out, err := render.Calendar(sqldb, year, month)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "Month YYYY-MM (default current month)")
}
