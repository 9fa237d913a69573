package welltrack

import (
	"database/sql"
	"fmt"

	"github.com/phanigw/welltrack/internal/render"
	"github.com/phanigw/welltrack/internal/service"
	"github.com/spf13/cobra"
)

var scoreDate string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the day's tier score",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(scoreDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			plan, _, err := service.LoadPlan(sqldb)
			if err != nil {
				return err
			}
			log, err := service.GetDayLog(sqldb, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", date, render.Score(service.CalcScore(plan, log)))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&scoreDate, "date", "", "Date YYYY-MM-DD (default today)")
}
