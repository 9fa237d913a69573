package welltrack

import (
	"database/sql"
	"fmt"

	"github.com/phanigw/welltrack/internal/service"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage daily targets",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			s, err := service.LoadSettings(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Step target: %d\nSleep target: %.1fh\nWater target: %d\n", s.StepTarget, s.SleepTarget, s.WaterTarget)
			return nil
		})
	},
}

var (
	settingSteps int
	settingSleep float64
	settingWater int
)

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			s, err := service.LoadSettings(sqldb)
			if err != nil {
				return err
			}
			changed := false
			if cmd.Flags().Changed("steps") {
				s.StepTarget = settingSteps
				changed = true
			}
			if cmd.Flags().Changed("sleep") {
				s.SleepTarget = settingSleep
				changed = true
			}
			if cmd.Flags().Changed("water") {
				s.WaterTarget = settingWater
				changed = true
			}
			if !changed {
				return fmt.Errorf("set at least one of --steps, --sleep, --water")
			}
			if err := service.SaveSettings(sqldb, s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated targets")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)

	settingsSetCmd.Flags().IntVar(&settingSteps, "steps", 0, "Daily step target")
	settingsSetCmd.Flags().Float64Var(&settingSleep, "sleep", 0, "Daily sleep target hours")
	settingsSetCmd.Flags().IntVar(&settingWater, "water", 0, "Daily water target units")
}
