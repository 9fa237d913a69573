package welltrack

import (
	"database/sql"
	"fmt"

	"github.com/phanigw/welltrack/internal/service"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb, doctorFix)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unreadable month documents: %d\n", report.InvalidMonthDocs)
			fmt.Fprintf(cmd.OutOrStdout(), "Item logs outside the plan: %d\n", report.StaleItemLogs)
			fmt.Fprintf(cmd.OutOrStdout(), "Workout days outside the plan: %d\n", report.StaleWorkoutDays)
			fmt.Fprintf(cmd.OutOrStdout(), "Empty config rows: %d\n", report.InvalidConfigRows)
			if doctorFix {
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned item logs: %d\n", report.PrunedItemLogs)
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(sqldb, false)
				if err != nil {
					return err
				}
			}
			if report.InvalidMonthDocs > 0 || report.StaleItemLogs > 0 || report.StaleWorkoutDays > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Prune item logs stranded by plan edits")
}
