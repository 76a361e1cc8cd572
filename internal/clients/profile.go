package clients

import (
	"fmt"
	"strings"
	"time"
)

type Goal string

const (
	GoalCut    Goal = "cut"
	GoalBulk   Goal = "bulk"
	GoalRecomp Goal = "recomp"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Profile is a client's onboarding snapshot. It is immutable per generation
// call - a new onboarding submission creates a new version, never mutates
// an old one.
type Profile struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`

	Age               int     `json:"age"`
	Sex               string  `json:"sex"` // male | female
	HeightCm          float64 `json:"heightCm"`
	WeightKg          float64 `json:"weightKg"`
	Goal              Goal    `json:"goal"`
	GoalWeightKg      float64 `json:"goalWeightKg"`
	ActivityLevel     string  `json:"activityLevel"`
	BodyFatPercentage float64 `json:"bodyFatPercentage,omitempty"`
	BodyFatUnsure     bool    `json:"bodyFatUnsure"`

	ExperienceLevel ExperienceLevel `json:"experienceLevel"`

	DietType      string   `json:"dietType"`
	DislikedFoods []string `json:"dislikedFoods"`
	Allergies     []string `json:"allergies"`
	MealsPerDay   int      `json:"mealsPerDay"`
	CookingSkill  string   `json:"cookingSkill"`
	Budget        string   `json:"budget"`

	// workout preferences, not used by the nutrition core
	TrainingDaysPerWeek int    `json:"trainingDaysPerWeek,omitempty"`
	TrainingLocation    string `json:"trainingLocation,omitempty"`
	InjuryNotes         string `json:"injuryNotes,omitempty"`

	OnboardingCompleted bool `json:"onboardingCompleted"`
}

// BodyFatKnown reports whether the body fat percentage can be trusted for
// the Katch-McArdle formula.
func (p *Profile) BodyFatKnown() bool {
	return p.BodyFatPercentage > 0 && !p.BodyFatUnsure
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	FieldErrors []FieldError `json:"fieldErrors"`
}

func (ve *ValidationError) Error() string {
	fields := make([]string, 0, len(ve.FieldErrors))
	for _, fe := range ve.FieldErrors {
		fields = append(fields, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("invalid profile: %s", strings.Join(fields, "; "))
}

// Validate rejects malformed onboarding data before any computation runs.
func (p *Profile) Validate() error {
	var fieldErrors []FieldError
	addErr := func(field, message string) {
		fieldErrors = append(fieldErrors, FieldError{Field: field, Message: message})
	}

	if p.Age < 14 || p.Age > 100 {
		addErr("age", "must be between 14 and 100")
	}
	if p.Sex != "male" && p.Sex != "female" {
		addErr("sex", "must be male or female")
	}
	if p.HeightCm < 100 || p.HeightCm > 250 {
		addErr("heightCm", "must be between 100 and 250")
	}
	if p.WeightKg < 30 || p.WeightKg > 300 {
		addErr("weightKg", "must be between 30 and 300")
	}
	switch p.Goal {
	case GoalCut, GoalBulk, GoalRecomp:
	default:
		addErr("goal", "must be cut, bulk or recomp")
	}
	if p.BodyFatPercentage < 0 || p.BodyFatPercentage > 70 {
		addErr("bodyFatPercentage", "must be between 0 and 70")
	}
	if p.MealsPerDay < 2 || p.MealsPerDay > 6 {
		addErr("mealsPerDay", "must be between 2 and 6")
	}

	if len(fieldErrors) > 0 {
		return &ValidationError{FieldErrors: fieldErrors}
	}
	return nil
}
