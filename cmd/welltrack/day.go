package welltrack

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/phanigw/welltrack/internal/model"
	"github.com/phanigw/welltrack/internal/render"
	"github.com/phanigw/welltrack/internal/service"
	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Log and review a single day",
}

var dayDate string

var dayShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the day's checklist, intake, and score",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(dayDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			plan, warnings, err := service.LoadPlan(sqldb)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), warnings)
			log, err := service.GetDayLog(sqldb, date)
			if err != nil {
				return err
			}
			settings, err := service.LoadSettings(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Day(date, plan, log, settings))
			return nil
		})
	},
}

var checkQty float64

var dayCheckCmd = &cobra.Command{
	Use:   "check <meal-index> <item-index>",
	Short: "Mark a planned item eaten",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(dayDate)
		if err != nil {
			return err
		}
		mi, err := parseIndexArg("meal-index", args[0])
		if err != nil {
			return err
		}
		ii, err := parseIndexArg("item-index", args[1])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.CheckItem(sqldb, date, mi, ii, checkQty); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Checked item %d.%d on %s\n", mi, ii, date)
			return nil
		})
	},
}

var dayUncheckCmd = &cobra.Command{
	Use:   "uncheck <meal-index> <item-index>",
	Short: "Unmark a planned item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(dayDate)
		if err != nil {
			return err
		}
		mi, err := parseIndexArg("meal-index", args[0])
		if err != nil {
			return err
		}
		ii, err := parseIndexArg("item-index", args[1])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.UncheckItem(sqldb, date, mi, ii); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unchecked item %d.%d on %s\n", mi, ii, date)
			return nil
		})
	},
}

var (
	extraQty      float64
	extraCalories float64
	extraProtein  float64
	extraCarbs    float64
	extraFat      float64
)

var dayExtraCmd = &cobra.Command{
	Use:   "extra <name>",
	Short: "Log an off-plan item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(dayDate)
		if err != nil {
			return err
		}
		extra := model.ExtraItem{
			Name:     args[0],
			Qty:      extraQty,
			Calories: extraCalories,
			Protein:  extraProtein,
			Carbs:    extraCarbs,
			Fat:      extraFat,
		}
		return withDB(func(sqldb *sql.DB) error {
			log, err := service.AddExtra(sqldb, date, extra)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged extra %q on %s (%d extras total)\n", extra.Name, date, len(log.Extras))
			return nil
		})
	},
}

var dayStepsCmd = &cobra.Command{
	Use:   "steps <count>",
	Short: "Set the day's step count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(dayDate)
		if err != nil {
			return err
		}
		steps, err := parseIndexArg("steps", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.SetSteps(sqldb, date, steps); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %d steps on %s\n", steps, date)
			return nil
		})
	},
}

var daySleepCmd = &cobra.Command{
	Use:   "sleep <hours>",
	Short: "Set the day's sleep hours",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(dayDate)
		if err != nil {
			return err
		}
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid hours %q", args[0])
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.SetSleep(sqldb, date, hours); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %.1fh sleep on %s\n", hours, date)
			return nil
		})
	},
}

var dayWaterCmd = &cobra.Command{
	Use:   "water <units>",
	Short: "Set the day's water intake",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(dayDate)
		if err != nil {
			return err
		}
		units, err := parseIndexArg("water units", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.SetWater(sqldb, date, units); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %d water units on %s\n", units, date)
			return nil
		})
	},
}

var dayWeightCmd = &cobra.Command{
	Use:   "weight <kg>",
	Short: "Record body weight for the day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(dayDate)
		if err != nil {
			return err
		}
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.SetBodyWeight(sqldb, date, weight); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f on %s\n", weight, date)
			return nil
		})
	},
}

var dayRTCmd = &cobra.Command{
	Use:   "rt <on|off>",
	Short: "Mark the day as a resistance training day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(dayDate)
		if err != nil {
			return err
		}
		var on bool
		switch args[0] {
		case "on":
			on = true
		case "off":
			on = false
		default:
			return fmt.Errorf("expected on or off, got %q", args[0])
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.SetResistanceTraining(sqldb, date, on); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Resistance training %s on %s\n", args[0], date)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.AddCommand(dayShowCmd, dayCheckCmd, dayUncheckCmd, dayExtraCmd, dayStepsCmd, daySleepCmd, dayWaterCmd, dayWeightCmd, dayRTCmd)

	dayCmd.PersistentFlags().StringVar(&dayDate, "date", "", "Date YYYY-MM-DD (default today)")
	dayCheckCmd.Flags().Float64Var(&checkQty, "qty", 0, "Quantity eaten (default planned quantity)")
	dayExtraCmd.Flags().Float64Var(&extraQty, "qty", 1, "Quantity")
	dayExtraCmd.Flags().Float64Var(&extraCalories, "calories", 0, "Calories")
	dayExtraCmd.Flags().Float64Var(&extraProtein, "protein", 0, "Protein grams")
	dayExtraCmd.Flags().Float64Var(&extraCarbs, "carbs", 0, "Carb grams")
	dayExtraCmd.Flags().Float64Var(&extraFat, "fat", 0, "Fat grams")
}
