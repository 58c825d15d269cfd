package activity

import (
	"iter"
	"time"
)

type Summary struct {
	TotalWorkouts int     `json:"totalWorkouts"`
	TotalMinutes  float64 `json:"totalMinutes"`
	TotalCalories int     `json:"totalCalories"`
	WorkoutStreak int     `json:"workoutStreak"`
}

// summarize rolls the history up into totals and the current streak:
// consecutive UTC calendar days ending today with at least one activity.
// A day without activity, including today, breaks the streak.
func summarize(activities iter.Seq2[*Activity, error], now time.Time) (*Summary, error) {
	summary := &Summary{}
	activeDays := make(map[time.Time]bool)
	for a, err := range activities {
		if err != nil {
			return nil, err
		}
		summary.TotalWorkouts++
		summary.TotalMinutes += a.Duration
		summary.TotalCalories += a.CaloriesBurned
		activeDays[utcDay(a.Timestamp)] = true
	}

	for day := utcDay(now); activeDays[day]; day = day.AddDate(0, 0, -1) {
		summary.WorkoutStreak++
	}

	return summary, nil
}

func utcDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
