package welltrack

import (
	"database/sql"
	"fmt"

	"github.com/phanigw/welltrack/internal/model"
	"github.com/phanigw/welltrack/internal/service"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the meal and workout plan",
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current plan with daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plan, warnings, err := service.LoadPlan(sqldb)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), warnings)

			out := cmd.OutOrStdout()
			if len(plan.Meals) == 0 {
				fmt.Fprintln(out, "No meal plan set. Import one with `welltrack plan import <file>`.")
			}
			for mi, meal := range plan.Meals {
				fmt.Fprintf(out, "%d %s\n", mi, meal.Name)
				for ii, item := range meal.Items {
					fmt.Fprintf(out, "  %d.%d %s, %.4g%s, %.0f kcal, %.1fp %.1fc %.1ff\n",
						mi, ii, item.Name, item.Qty, item.Unit, item.Calories, item.Protein, item.Carbs, item.Fat)
				}
			}
			targets := service.PlanTargets(plan)
			fmt.Fprintf(out, "Daily target: %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
				targets.Calories, targets.Protein, targets.Carbs, targets.Fat)

			if plan.Workout != nil && len(plan.Workout.Days) > 0 {
				fmt.Fprintf(out, "Workout (%s):\n", plan.Workout.Type)
				for di, day := range plan.Workout.Days {
					fmt.Fprintf(out, "  %d %s (%d exercises)\n", di, day.Name, len(day.Exercises))
				}
				for wd := 0; wd < 7; wd++ {
					if idx := service.ScheduledWorkoutDay(plan, wd); idx >= 0 {
						fmt.Fprintf(out, "  %s -> %s\n", weekdayName(wd), plan.Workout.Days[idx].Name)
					}
				}
			}
			return nil
		})
	},
}

var planImportCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Import meals from plain text (replaces current meals)",
	Long:  "Each line without a comma starts a meal. Item lines are \"name, qty unit, Ncal, Np, Nc, Nf\". Use - to read from stdin.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readTextArg(args[0])
		if err != nil {
			return err
		}
		meals := service.ParsePlanText(text)
		if len(meals) == 0 {
			return fmt.Errorf("no meals found in input")
		}
		return withDB(func(sqldb *sql.DB) error {
			plan, _, err := service.LoadPlan(sqldb)
			if err != nil {
				return err
			}
			plan.Meals = meals
			warnings, err := service.SavePlan(sqldb, plan)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), warnings)
			items := 0
			for _, m := range meals {
				items += len(m.Items)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d meals with %d items\n", len(meals), items)
			return nil
		})
	},
}

var workoutPlanType string

var planImportWorkoutCmd = &cobra.Command{
	Use:   "import-workout <file|->",
	Short: "Import workout days from plain text (replaces current workout)",
	Long:  "Each line without a comma starts a workout day. Exercise lines are \"name, type, 3x8|30min, weight|distance\". Use - to read from stdin.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if workoutPlanType != model.WorkoutTypeSplit && workoutPlanType != model.WorkoutTypeFixed {
			return fmt.Errorf("invalid --type %q (expected split or fixed)", workoutPlanType)
		}
		text, err := readTextArg(args[0])
		if err != nil {
			return err
		}
		days := service.ParseWorkoutText(text)
		if len(days) == 0 {
			return fmt.Errorf("no workout days found in input")
		}
		return withDB(func(sqldb *sql.DB) error {
			plan, _, err := service.LoadPlan(sqldb)
			if err != nil {
				return err
			}
			plan.Workout = &model.WorkoutPlan{Type: workoutPlanType, Days: days}
			warnings, err := service.SavePlan(sqldb, plan)
			if err != nil {
				return err
			}
			printWarnings(cmd.ErrOrStderr(), warnings)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d workout days\n", len(days))
			return nil
		})
	},
}

var planScheduleCmd = &cobra.Command{
	Use:   "set-schedule <weekday 0-6> <day-index>",
	Short: "Schedule a workout day on a weekday (0=Sunday)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weekday, err := parseIndexArg("weekday", args[0])
		if err != nil {
			return err
		}
		dayIndex, err := parseIndexArg("day-index", args[1])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetWorkoutSchedule(sqldb, weekday, dayIndex); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled workout day %d on %s\n", dayIndex, weekdayName(weekday))
			return nil
		})
	},
}

func weekdayName(wd int) string {
	names := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if wd < 0 || wd >= len(names) {
		return fmt.Sprintf("weekday %d", wd)
	}
	return names[wd]
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planShowCmd, planImportCmd, planImportWorkoutCmd, planScheduleCmd)

	planImportWorkoutCmd.Flags().StringVar(&workoutPlanType, "type", model.WorkoutTypeSplit, "Workout plan type: split or fixed")
}
