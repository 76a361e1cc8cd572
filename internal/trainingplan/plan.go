package trainingplan

import "time"

type Exercise struct {
	Name         string  `json:"name"`
	Sets         int     `json:"sets"`
	Reps         string  `json:"reps"`
	RPE          float64 `json:"rpe,omitempty"`
	RestSeconds  int     `json:"restSeconds"`
	Tempo        string  `json:"tempo,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Substitution string  `json:"substitution,omitempty"`
}

type TrainingDay struct {
	Day       string     `json:"day"`
	Name      string     `json:"name"`
	Warmup    []string   `json:"warmup"`
	Exercises []Exercise `json:"exercises"`
	Cooldown  []string   `json:"cooldown,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

type TrainingWeek struct {
	Week  int           `json:"week"`
	Theme string        `json:"theme"`
	Days  []TrainingDay `json:"days"`
}

type PlanData struct {
	ProgramName      string         `json:"programName"`
	Overview         string         `json:"overview"`
	ProgressionRules string         `json:"progressionRules"`
	Weeks            []TrainingWeek `json:"weeks"`
}

type TrainingPlan struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Version   int       `json:"version"`
	PlanData  PlanData  `json:"planData"`
	CreatedAt time.Time `json:"createdAt"`
}
