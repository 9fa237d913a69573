package welltrack

import (
	"database/sql"
	"fmt"

	"github.com/phanigw/welltrack/internal/model"
	"github.com/phanigw/welltrack/internal/service"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Track body measurement check-ins",
}

var (
	progressDate   string
	progressWeight float64
	progressChest  float64
	progressWaist  float64
	progressHip    float64
)

var progressLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a check-in (upserts by date)",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(progressDate)
		if err != nil {
			return err
		}
		entry := model.ProgressEntry{
			Date:   date,
			Weight: progressWeight,
			Chest:  progressChest,
			Waist:  progressWaist,
			Hip:    progressHip,
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SaveProgressEntry(sqldb, entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded check-in for %s\n", date)
			return nil
		})
	},
}

var progressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List check-ins with deltas, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListProgress(sqldb)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No check-ins recorded")
				return nil
			}
			fmt.Fprintln(out, "DATE\tWEIGHT\tCHEST\tWAIST\tHIP")
			for i, e := range entries {
				fmt.Fprintf(out, "%s\t%.1f\t%.1f\t%.1f\t%.1f", e.Date, e.Weight, e.Chest, e.Waist, e.Hip)
				if i+1 < len(entries) {
					if d, ok := service.ProgressDeltas(e, entries[i+1])["weight"]; ok && d.Direction != "same" {
						fmt.Fprintf(out, "\t(%+.2f)", d.Diff)
					}
				}
				fmt.Fprintln(out)
			}
			return nil
		})
	},
}

var progressDeleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete a check-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteProgressEntry(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted check-in %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressLogCmd, progressListCmd, progressDeleteCmd)

	progressLogCmd.Flags().StringVar(&progressDate, "date", "", "Check-in date YYYY-MM-DD (default today)")
	progressLogCmd.Flags().Float64Var(&progressWeight, "weight", 0, "Body weight")
	progressLogCmd.Flags().Float64Var(&progressChest, "chest", 0, "Chest measurement")
	progressLogCmd.Flags().Float64Var(&progressWaist, "waist", 0, "Waist measurement")
	progressLogCmd.Flags().Float64Var(&progressHip, "hip", 0, "Hip measurement")
}
