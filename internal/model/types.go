package model

// Plan and DayLog are stored as JSON documents, so field names here are the
// wire format for both the database and backup files.

type MacroVector struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type FoodItem struct {
	Name     string  `json:"name"`
	Qty      float64 `json:"qty"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type Meal struct {
	Name  string     `json:"name"`
	Items []FoodItem `json:"items"`
}

const (
	ExerciseStrength    = "strength"
	ExerciseCardio      = "cardio"
	ExerciseFlexibility = "flexibility"
)

type Exercise struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	TargetSets     float64 `json:"targetSets,omitempty"`
	TargetReps     float64 `json:"targetReps,omitempty"`
	TargetWeight   float64 `json:"targetWeight,omitempty"`
	TargetDuration float64 `json:"targetDuration,omitempty"`
	TargetDistance float64 `json:"targetDistance,omitempty"`
}

type WorkoutDay struct {
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

const (
	WorkoutTypeSplit = "split"
	WorkoutTypeFixed = "fixed"
)

type WorkoutPlan struct {
	Type string       `json:"type"`
	Days []WorkoutDay `json:"days"`
	// Schedule maps day-of-week (0=Sunday..6=Saturday) to an index in Days.
	Schedule map[int]int `json:"schedule,omitempty"`
}

type Plan struct {
	Meals   []Meal       `json:"meals"`
	Workout *WorkoutPlan `json:"workout,omitempty"`
}

// ItemLog records consumption of one planned item. Item logs are keyed by
// "<mealIndex>_<itemIndex>", so position in the plan is identity: editing
// the plan desynchronizes logs from earlier dates. Accepted limitation.
type ItemLog struct {
	Checked   bool    `json:"checked"`
	ActualQty float64 `json:"actualQty"`
}

type ExtraItem struct {
	Name     string  `json:"name"`
	Qty      float64 `json:"qty"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type SetLog struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type ExerciseLog struct {
	Completed bool     `json:"completed"`
	Sets      []SetLog `json:"sets,omitempty"`
	Duration  float64  `json:"duration,omitempty"`
	Distance  float64  `json:"distance,omitempty"`
}

type WorkoutLog struct {
	Exercises map[int]*ExerciseLog `json:"exercises"`
}

type DayLog struct {
	Items              map[string]*ItemLog `json:"items"`
	Extras             []ExtraItem         `json:"extras"`
	Steps              int                 `json:"steps"`
	Sleep              float64             `json:"sleep"`
	Water              int                 `json:"water"`
	BodyWeight         float64             `json:"bodyWeight,omitempty"`
	ResistanceTraining bool                `json:"resistanceTraining"`
	WorkoutDayIndex    *int                `json:"workoutDayIndex"`
	Workout            *WorkoutLog         `json:"workout"`
}

const (
	TierFail   = "fail"
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

type Score struct {
	Diet     string `json:"diet"`
	Steps    string `json:"steps"`
	Workout  string `json:"workout"`
	Combined string `json:"combined"`
}

type Settings struct {
	StepTarget  int     `json:"stepTarget"`
	SleepTarget float64 `json:"sleepTarget"`
	WaterTarget int     `json:"waterTarget"`
}

func DefaultSettings() Settings {
	return Settings{StepTarget: 10000, SleepTarget: 8, WaterTarget: 8}
}

type ProgressEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight,omitempty"`
	Chest  float64 `json:"chest,omitempty"`
	Waist  float64 `json:"waist,omitempty"`
	Hip    float64 `json:"hip,omitempty"`
}
