package welltrack

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/phanigw/welltrack/internal/service"
	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current silver-or-better streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			streak, err := service.CalcStreak(sqldb, time.Now())
			if err != nil {
				return err
			}
			switch streak {
			case 0:
				fmt.Fprintln(cmd.OutOrStdout(), "No active streak. A silver or better day starts one.")
			case 1:
				fmt.Fprintln(cmd.OutOrStdout(), "1 day streak")
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%d day streak\n", streak)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
