package welltrack

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/phanigw/welltrack/internal/render"
	"github.com/phanigw/welltrack/internal/service"
	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log workouts against the plan",
}

var workoutDate string

var workoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the day's workout and its logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(workoutDate)
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
			fmt.Fprintln(cmd.OutOrStdout(), render.Workout(plan, log))
			return nil
		})
	},
}

var workoutSelectCmd = &cobra.Command{
	Use:   "select <day-index>",
	Short: "Pick the planned workout day to train (marks the day RT)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(workoutDate)
		if err != nil {
			return err
		}
		idx, err := parseIndexArg("day-index", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.SelectWorkoutDay(sqldb, date, idx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Selected workout day %d on %s\n", idx, date)
			return nil
		})
	},
}

var (
	setReps   int
	setWeight float64
)

var workoutSetCmd = &cobra.Command{
	Use:   "set <exercise-index>",
	Short: "Log a strength set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(workoutDate)
		if err != nil {
			return err
		}
		idx, err := parseIndexArg("exercise-index", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.LogSet(sqldb, date, idx, setReps, setWeight); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %dx%.4g for exercise %d on %s\n", setReps, setWeight, idx, date)
			return nil
		})
	},
}

var (
	cardioDuration float64
	cardioDistance float64
)

var workoutCardioCmd = &cobra.Command{
	Use:   "cardio <exercise-index>",
	Short: "Log duration and distance for a cardio exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(workoutDate)
		if err != nil {
			return err
		}
		idx, err := parseIndexArg("exercise-index", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.LogCardio(sqldb, date, idx, cardioDuration, cardioDistance); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.4gmin %.4gkm for exercise %d on %s\n", cardioDuration, cardioDistance, idx, date)
			return nil
		})
	},
}

var workoutDoneCmd = &cobra.Command{
	Use:   "done <exercise-index> [true|false]",
	Short: "Mark an exercise completed",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(workoutDate)
		if err != nil {
			return err
		}
		idx, err := parseIndexArg("exercise-index", args[0])
		if err != nil {
			return err
		}
		done := true
		if len(args) == 2 {
			done, err = strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", args[1])
			}
		}
		return withDB(func(sqldb *sql.DB) error {
			if _, err := service.CompleteExercise(sqldb, date, idx, done); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exercise %d done=%v on %s\n", idx, done, date)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutShowCmd, workoutSelectCmd, workoutSetCmd, workoutCardioCmd, workoutDoneCmd)

	workoutCmd.PersistentFlags().StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (default today)")
	workoutSetCmd.Flags().IntVar(&setReps, "reps", 0, "Reps in the set")
	workoutSetCmd.Flags().Float64Var(&setWeight, "weight", 0, "Weight used")
	_ = workoutSetCmd.MarkFlagRequired("reps")
	workoutCardioCmd.Flags().Float64Var(&cardioDuration, "duration", 0, "Duration in minutes")
	workoutCardioCmd.Flags().Float64Var(&cardioDistance, "distance", 0, "Distance covered")
}
