package macros

import (
	"fmt"
	"math"

	"github.com/2beens/leancoach/internal/clients"
)

type Formula string

const (
	FormulaKatchMcArdle  Formula = "katch_mcardle"
	FormulaMifflinStJeor Formula = "mifflin_st_jeor"
	FormulaCoachOverride Formula = "coach_override"
)

const kgToLb = 2.205

// activityMultipliers maps activity level strings to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":      1.2,
	"lightly_active": 1.375,
	"moderate":       1.55,
	"very_active":    1.725,
	"athlete":        1.9,
}

const defaultActivityMultiplier = 1.55

type BMRResult struct {
	BMR     int     `json:"bmr"`
	Formula Formula `json:"formula"`
}

// CalculateBMR prefers Katch-McArdle when the client gave a body fat
// percentage they are confident about, since lean mass makes the estimate
// noticeably better. Falls back to Mifflin-St Jeor otherwise.
func CalculateBMR(profile *clients.Profile) BMRResult {
	if profile.BodyFatKnown() {
		leanMassKg := profile.WeightKg * (1 - profile.BodyFatPercentage/100)
		bmr := 370 + 21.6*leanMassKg
		return BMRResult{
			BMR:     int(math.Round(bmr)),
			Formula: FormulaKatchMcArdle,
		}
	}

	bmr := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age)
	if profile.Sex == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return BMRResult{
		BMR:     int(math.Round(bmr)),
		Formula: FormulaMifflinStJeor,
	}
}

// CalculateTDEE multiplies BMR by the activity factor. Unknown activity
// levels fall back to the moderate multiplier.
func CalculateTDEE(bmr int, activityLevel string) int {
	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		multiplier = defaultActivityMultiplier
	}
	return int(math.Round(float64(bmr) * multiplier))
}

type CalorieTarget struct {
	Calories  int    `json:"calories"`
	Rationale string `json:"rationale"`
}

// CalculateCalorieTarget derives the daily calorie goal from TDEE and the
// client's goal. The rationale strings are shown to the client on the
// dashboard, so they spell out the branch taken.
func CalculateCalorieTarget(
	tdee int,
	goal clients.Goal,
	bodyFatPercentage float64,
	experienceLevel clients.ExperienceLevel,
) CalorieTarget {
	switch goal {
	case clients.GoalCut:
		deficitPct := 20
		reason := "moderate body fat"
		if bodyFatPercentage > 25 {
			deficitPct = 25
			reason = "higher body fat allows a larger deficit"
		} else if bodyFatPercentage < 18 {
			deficitPct = 15
			reason = "lower body fat calls for a smaller deficit"
		}
		calories := int(math.Round(float64(tdee) * (1 - float64(deficitPct)/100)))
		return CalorieTarget{
			Calories:  calories,
			Rationale: fmt.Sprintf("%d%% deficit from TDEE (%s)", deficitPct, reason),
		}

	case clients.GoalBulk:
		surplusPct := 10
		reason := "intermediate lifter"
		switch experienceLevel {
		case clients.ExperienceBeginner:
			surplusPct = 15
			reason = "beginner lifter"
		case clients.ExperienceAdvanced:
			surplusPct = 5
			reason = "advanced lifter"
		}
		if bodyFatPercentage > 0 && bodyFatPercentage < 15 {
			surplusPct += 5
			reason += ", lean enough for a larger surplus"
		}
		calories := int(math.Round(float64(tdee) * (1 + float64(surplusPct)/100)))
		return CalorieTarget{
			Calories:  calories,
			Rationale: fmt.Sprintf("%d%% surplus over TDEE (%s)", surplusPct, reason),
		}

	default: // recomp
		return CalorieTarget{
			Calories:  tdee,
			Rationale: "calories at TDEE (recomposition, 0% adjustment)",
		}
	}
}

type MacroSplit struct {
	ProteinG int `json:"proteinG"`
	FatG     int `json:"fatG"`
	CarbsG   int `json:"carbsG"`
}

// minCarbsG is an intentional floor: dropping carbs below it tanks training
// performance and adherence, so we allow total calories to land slightly
// above target instead.
const minCarbsG = 50

// CalculateMacros splits the calorie target into protein, fat and carbs.
// Protein is anchored to bodyweight, fat to the larger of a calorie
// percentage and a per-pound floor, carbs take the remainder.
func CalculateMacros(
	calorieTarget int,
	weightKg float64,
	goal clients.Goal,
	bodyFatPercentage float64,
) MacroSplit {
	weightLb := weightKg * kgToLb

	proteinPerLb := 0.9
	switch goal {
	case clients.GoalCut:
		proteinPerLb = 1.0
		if bodyFatPercentage > 0 && bodyFatPercentage < 15 {
			proteinPerLb = 1.1
		}
	case clients.GoalBulk:
		proteinPerLb = 0.8
	}

	proteinG := weightLb * proteinPerLb
	fatG := math.Max(0.27*float64(calorieTarget)/9, 0.3*weightLb)
	carbsG := (float64(calorieTarget) - proteinG*4 - fatG*9) / 4
	if carbsG < minCarbsG {
		carbsG = minCarbsG
	}

	return MacroSplit{
		ProteinG: int(math.Round(proteinG)),
		FatG:     int(math.Round(fatG)),
		CarbsG:   int(math.Round(carbsG)),
	}
}

// Targets runs the whole calculator for a profile and assembles a
// MacroTargets record (unversioned - the repo assigns the version).
func Targets(profile *clients.Profile) MacroTargets {
	bmrResult := CalculateBMR(profile)
	tdee := CalculateTDEE(bmrResult.BMR, profile.ActivityLevel)
	calorieTarget := CalculateCalorieTarget(
		tdee, profile.Goal, profile.BodyFatPercentage, profile.ExperienceLevel,
	)
	split := CalculateMacros(
		calorieTarget.Calories, profile.WeightKg, profile.Goal, profile.BodyFatPercentage,
	)

	return MacroTargets{
		UserID:        profile.UserID,
		BMR:           bmrResult.BMR,
		TDEE:          tdee,
		CalorieTarget: calorieTarget.Calories,
		ProteinG:      split.ProteinG,
		FatG:          split.FatG,
		CarbsG:        split.CarbsG,
		FormulaUsed:   bmrResult.Formula,
		Explanation:   calorieTarget.Rationale,
	}
}
