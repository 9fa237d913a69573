package welltrack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/phanigw/welltrack/internal/render"
	"github.com/phanigw/welltrack/internal/service"
	"github.com/spf13/cobra"
)

var (
	trendDays  int
	trendSteps bool
	trendWidth int
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Chart recent intake, steps, and adherence",
	RunE: func(cmd *cobra.Command, args []string) error {
		if trendDays <= 0 {
			return fmt.Errorf("--days must be > 0")
		}
		to := time.Now()
		from := to.AddDate(0, 0, -(trendDays - 1))
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.TrendRange(sqldb, from, to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if trendSteps {
				fmt.Fprintln(out, render.StepsChart(report, trendWidth))
			} else {
				fmt.Fprintln(out, render.CaloriesChart(report, trendWidth))
			}
			fmt.Fprintln(out, render.TrendSummary(report))
			return nil
		})
	},
}

var trendsExerciseCmd = &cobra.Command{
	Use:   "exercise <name>",
	Short: "Chart the heaviest logged set over time for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			points, err := service.ExerciseHistoryMax(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.ExerciseChart(args[0], points, trendWidth))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(trendsCmd)
	trendsCmd.AddCommand(trendsExerciseCmd)

	trendsCmd.PersistentFlags().IntVar(&trendWidth, "width", 80, "Chart width in columns")
	trendsCmd.Flags().IntVar(&trendDays, "days", 14, "Number of days to chart")
	trendsCmd.Flags().BoolVar(&trendSteps, "steps", false, "Chart steps instead of calories")
}
