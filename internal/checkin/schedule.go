package checkin

import "time"

// Check-in windows are anchored to a target Sunday: they open the
// preceding Saturday 18:00 UTC and close the following Tuesday just
// before midnight UTC. The ~78 hours are wide enough to contain Sunday
// in every timezone.
type Window struct {
	TargetSunday time.Time `json:"targetSunday"`
	Opens        time.Time `json:"opens"`
	Closes       time.Time `json:"closes"`
}

func (w Window) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(w.Opens) && !t.After(w.Closes)
}

// CurrentWindow finds the target Sunday that now belongs to. On Saturday
// evening through Tuesday that is the surrounding window; mid-week it is
// the upcoming one, which has not opened yet.
func CurrentWindow(now time.Time) Window {
	now = now.UTC()

	var targetSunday time.Time
	switch now.Weekday() {
	case time.Saturday:
		if now.Hour() >= 18 {
			targetSunday = dateOf(now.AddDate(0, 0, 1))
		} else {
			targetSunday = nextSunday(now)
		}
	case time.Sunday:
		targetSunday = dateOf(now)
	case time.Monday:
		targetSunday = dateOf(now.AddDate(0, 0, -1))
	case time.Tuesday:
		targetSunday = dateOf(now.AddDate(0, 0, -2))
	default:
		targetSunday = nextSunday(now)
	}

	return windowFor(targetSunday)
}

func windowFor(targetSunday time.Time) Window {
	return Window{
		TargetSunday: targetSunday,
		Opens:        targetSunday.AddDate(0, 0, -1).Add(18 * time.Hour),
		Closes:       targetSunday.AddDate(0, 0, 2).Add(24*time.Hour - time.Millisecond),
	}
}

func IsWithinCheckInWindow(now time.Time) bool {
	return CurrentWindow(now).Contains(now)
}

// HasCheckedInThisWeek is strictly window based, not "within 7 days":
// lastCheckIn counts only if it falls inside the window now belongs to.
func HasCheckedInThisWeek(lastCheckIn, now time.Time) bool {
	return CurrentWindow(now).Contains(lastCheckIn)
}

// IsClientOverdue reports whether the most recently closed window passed
// without a check-in. While a window is still open the client is never
// overdue, they may simply not have checked in yet.
func IsClientOverdue(lastCheckIn time.Time, onboardingCompleted bool, now time.Time) bool {
	if !onboardingCompleted {
		return false
	}

	now = now.UTC()
	window := CurrentWindow(now)
	if window.Contains(now) {
		return false
	}

	// mid-week: the current window hasn't opened, the one before it is closed
	closedWindow := windowFor(window.TargetSunday.AddDate(0, 0, -7))
	return !closedWindow.Contains(lastCheckIn)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nextSunday(now time.Time) time.Time {
	daysAhead := int(7-now.Weekday()) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	return dateOf(now.AddDate(0, 0, daysAhead))
}
