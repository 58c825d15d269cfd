package profile

import (
	"strings"
)

type Profile struct {
	FullName     string   `json:"fullName"`
	Age          int      `json:"age"`
	Weight       float64  `json:"weight"`
	Height       float64  `json:"height"`
	Gender       string   `json:"gender"`
	FitnessLevel string   `json:"fitnessLevel"`
	FitnessGoals []string `json:"fitnessGoals"`
}

type requiredField struct {
	name    string
	present func(p Profile) bool
}

// requiredFields are checked in declaration order
var requiredFields = []requiredField{
	{"fullName", func(p Profile) bool { return strings.TrimSpace(p.FullName) != "" }},
	{"age", func(p Profile) bool { return p.Age != 0 }},
	{"weight", func(p Profile) bool { return p.Weight != 0 }},
	{"height", func(p Profile) bool { return p.Height != 0 }},
	{"gender", func(p Profile) bool { return strings.TrimSpace(p.Gender) != "" }},
	{"fitnessLevel", func(p Profile) bool { return strings.TrimSpace(p.FitnessLevel) != "" }},
	{"fitnessGoals", func(p Profile) bool { return len(p.FitnessGoals) > 0 }},
}

// IsComplete reports whether every required profile field is set.
// It is used as a gate (onboarding vs. dashboard), there is no partial scoring.
func IsComplete(p Profile) bool {
	for _, f := range requiredFields {
		if !f.present(p) {
			return false
		}
	}
	return true
}

// MissingFields returns the names of the required fields which are not set.
func MissingFields(p Profile) []string {
	missing := make([]string, 0)
	for _, f := range requiredFields {
		if !f.present(p) {
			missing = append(missing, f.name)
		}
	}
	return missing
}
