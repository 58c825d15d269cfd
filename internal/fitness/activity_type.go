package fitness

import (
	"strings"
)

// ActivityType can be one of:
//   - running
//   - walking
//   - cycling
//   - swimming
//   - weightlifting
//   - yoga
//   - other
type ActivityType string

const (
	ActivityTypeRunning       ActivityType = "running"
	ActivityTypeWalking       ActivityType = "walking"
	ActivityTypeCycling       ActivityType = "cycling"
	ActivityTypeSwimming      ActivityType = "swimming"
	ActivityTypeWeightlifting ActivityType = "weightlifting"
	ActivityTypeYoga          ActivityType = "yoga"
	ActivityTypeOther         ActivityType = "other"
)

// metValues holds the Metabolic Equivalent of Task per activity type
var metValues = map[ActivityType]float64{
	ActivityTypeRunning:       8,
	ActivityTypeWalking:       3.5,
	ActivityTypeCycling:       7.5,
	ActivityTypeSwimming:      6,
	ActivityTypeWeightlifting: 3,
	ActivityTypeYoga:          2.5,
	ActivityTypeOther:         4,
}

func (at ActivityType) String() string {
	return string(at)
}

func (at ActivityType) IsValid() bool {
	_, ok := metValues[at]
	return ok
}

// MET returns the MET coefficient of the activity type, or 0 for unknown types.
func (at ActivityType) MET() float64 {
	return metValues[at]
}

// ParseActivityType is case-insensitive and ignores surrounding whitespace.
func ParseActivityType(s string) (ActivityType, error) {
	at := ActivityType(strings.ToLower(strings.TrimSpace(s)))
	if !at.IsValid() {
		return "", invalidActivityType(s)
	}
	return at, nil
}

// ActivityTypes returns all known activity types in a fixed order.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityTypeRunning,
		ActivityTypeWalking,
		ActivityTypeCycling,
		ActivityTypeSwimming,
		ActivityTypeWeightlifting,
		ActivityTypeYoga,
		ActivityTypeOther,
	}
}
