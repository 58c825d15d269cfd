package fitness

import (
	"fmt"
	"math"
)

// DefaultUserWeight is used when the activity does not carry the user's weight (kg).
const DefaultUserWeight = 70.0

// Upper bounds keep the calories well inside int32, which is also the width
// of the stored column.
const (
	// MaxDuration is one week, in minutes
	MaxDuration = 7 * 24 * 60.0
	// MaxUserWeight in kilograms
	MaxUserWeight = 650.0
)

type CalorieInput struct {
	Type ActivityType
	// Duration in minutes
	Duration float64
	// UserWeight in kilograms, DefaultUserWeight is used when not positive
	UserWeight float64
}

// CalculateCalories estimates the burned calories as MET * weight * hours,
// rounded to the nearest integer (half away from zero).
func CalculateCalories(in CalorieInput) (int, error) {
	if !in.Type.IsValid() {
		return 0, invalidActivityType(string(in.Type))
	}
	if in.Duration <= 0 || math.IsNaN(in.Duration) || math.IsInf(in.Duration, 0) {
		return 0, NewValidationError("duration", "duration must be a positive number of minutes")
	}
	if in.Duration > MaxDuration {
		return 0, NewValidationError("duration", fmt.Sprintf("duration must not exceed %.0f minutes", MaxDuration))
	}

	weight := in.UserWeight
	if weight <= 0 || math.IsNaN(weight) {
		weight = DefaultUserWeight
	}
	if weight > MaxUserWeight {
		return 0, NewValidationError("userWeight", fmt.Sprintf("userWeight must not exceed %.0f kilograms", MaxUserWeight))
	}

	hours := in.Duration / 60
	return int(math.Round(in.Type.MET() * weight * hours)), nil
}

// CalculatePace returns minutes per kilometer, or nil when either
// distance or duration is zero (pace undefined).
func CalculatePace(distance, duration float64) *float64 {
	if distance == 0 || duration == 0 {
		return nil
	}
	pace := duration / distance
	return &pace
}
