package activity

import (
	"encoding/json"
	"time"

	"github.com/2beens/fitstats/internal/fitness"
)

// Activity is a stored workout record. CaloriesBurned is computed once at
// ingestion and never recomputed; Pace is derived on read.
type Activity struct {
	ID             string               `json:"id"`
	UserID         string               `json:"userId"`
	Type           fitness.ActivityType `json:"type"`
	Duration       float64              `json:"duration"`
	Distance       *float64             `json:"distance,omitempty"`
	UserWeight     *float64             `json:"userWeight,omitempty"`
	Timestamp      time.Time            `json:"timestamp"`
	CaloriesBurned int                  `json:"caloriesBurned"`
	Notes          string               `json:"notes,omitempty"`
}

// Pace in minutes per kilometer, nil when no distance was recorded.
func (a Activity) Pace() *float64 {
	if a.Distance == nil {
		return nil
	}
	return fitness.CalculatePace(*a.Distance, a.Duration)
}

func (a Activity) MarshalJSON() ([]byte, error) {
	type activityAlias Activity
	return json.Marshal(struct {
		activityAlias
		Pace *float64 `json:"pace"`
	}{
		activityAlias: activityAlias(a),
		Pace:          a.Pace(),
	})
}

func (a *Activity) clone() *Activity {
	c := *a
	if a.Distance != nil {
		d := *a.Distance
		c.Distance = &d
	}
	if a.UserWeight != nil {
		w := *a.UserWeight
		c.UserWeight = &w
	}
	return &c
}

// NewActivity is the client submitted part of an activity record.
type NewActivity struct {
	Type       string   `json:"type"`
	Duration   float64  `json:"duration"`
	Distance   *float64 `json:"distance,omitempty"`
	UserWeight *float64 `json:"userWeight,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// Filter fields are optional and AND-combined. The date range is inclusive.
type Filter struct {
	Type      fitness.ActivityType
	StartDate *time.Time
	EndDate   *time.Time
}

func (f Filter) Matches(a *Activity) bool {
	if f.Type != "" && a.Type != f.Type {
		return false
	}
	if f.StartDate != nil && a.Timestamp.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && a.Timestamp.After(*f.EndDate) {
		return false
	}
	return true
}

// newerFirst orders by timestamp descending, ties broken by id descending.
func newerFirst(a, b *Activity) int {
	if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
		return c
	}
	switch {
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	}
	return 0
}
