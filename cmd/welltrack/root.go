package welltrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "welltrack",
	Short: "welltrack scores your diet, steps, and training from the terminal",
	Long:  "welltrack is a local-first diet and fitness journal. It checks meals off a plan, logs steps, sleep, water, and workouts, and grades every day with bronze/silver/gold tiers.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
