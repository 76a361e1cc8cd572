package macros

import "time"

// MacroTargets is versioned per user and append-only: a recalculation or a
// coach override creates a new version, the current one is the highest.
type MacroTargets struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	Version       int       `json:"version"`
	BMR           int       `json:"bmr"`
	TDEE          int       `json:"tdee"`
	CalorieTarget int       `json:"calorieTarget"`
	ProteinG      int       `json:"proteinG"`
	FatG          int       `json:"fatG"`
	CarbsG        int       `json:"carbsG"`
	FormulaUsed   Formula   `json:"formulaUsed"`
	Explanation   string    `json:"explanation"`
	CreatedAt     time.Time `json:"createdAt"`
}
