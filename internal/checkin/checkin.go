package checkin

import "time"

// A proposed macro adjustment is only raised when the recalculated
// calorie target moves by strictly more than this.
const adjustmentThresholdKcal = 50

type AdjustmentStatus string

const (
	AdjustmentPending   AdjustmentStatus = "pending"
	AdjustmentDismissed AdjustmentStatus = "dismissed"
	AdjustmentApproved  AdjustmentStatus = "approved"
)

// CheckIn is a weekly progress submission. Created once per accepted
// window, never mutated.
type CheckIn struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	WeekNumber      int       `json:"weekNumber"`
	WeightKg        float64   `json:"weightKg"`
	WaistCm         float64   `json:"waistCm,omitempty"`
	AdherenceRating int       `json:"adherenceRating"`
	StepsAvg        int       `json:"stepsAvg"`
	SleepAvg        float64   `json:"sleepAvg"`
	Notes           string    `json:"notes"`
	ProgressPhotos  []string  `json:"progressPhotos"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PendingMacroAdjustment captures current vs proposed macro values for a
// coach to review. At most one pending adjustment exists per user,
// creating a new one dismisses the previous.
type PendingMacroAdjustment struct {
	ID        int              `json:"id"`
	UserID    int              `json:"userId"`
	CheckInID int              `json:"checkInId"`
	Status    AdjustmentStatus `json:"status"`

	CurrentCalories  int `json:"currentCalories"`
	CurrentProteinG  int `json:"currentProteinG"`
	CurrentFatG      int `json:"currentFatG"`
	CurrentCarbsG    int `json:"currentCarbsG"`
	ProposedCalories int `json:"proposedCalories"`
	ProposedProteinG int `json:"proposedProteinG"`
	ProposedFatG     int `json:"proposedFatG"`
	ProposedCarbsG   int `json:"proposedCarbsG"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
