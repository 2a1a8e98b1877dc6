package domain

import (
	"regexp"
	"strconv"
)

// Progression status values. Each carries a fixed display message and color.
const (
	StatusReady      = "ready"
	StatusInProgress = "in-progress"
	StatusMaintain   = "maintain"
)

// Hard defaults when a rep string carries no digits at all.
const (
	defaultTopReps    = 10
	defaultBottomReps = 8
)

var (
	repRangePattern  = regexp.MustCompile(`(\d+)-(\d+)`)
	firstNumber      = regexp.MustCompile(`(\d+)`)
	rpeNumberPattern = regexp.MustCompile(`(?i)RPE\s*(\d+)`)
)

// ProgressStatus describes progression readiness for display.
type ProgressStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

// ExtractTopRepRange returns the top bound of a rep target like "8-12".
// Falls back to the first number found ("12" -> 12), or 10 when the string
// carries no digits ("45-60 sec hold" still parses as a range).
func ExtractTopRepRange(repRange string) int {
	if m := repRangePattern.FindStringSubmatch(repRange); m != nil {
		top, _ := strconv.Atoi(m[2])
		return top
	}
	if m := firstNumber.FindStringSubmatch(repRange); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return defaultTopReps
}

// ExtractBottomRepRange returns the bottom bound of a rep target like
// "8-12", with the same fallbacks as ExtractTopRepRange and a default of 8.
func ExtractBottomRepRange(repRange string) int {
	if m := repRangePattern.FindStringSubmatch(repRange); m != nil {
		bottom, _ := strconv.Atoi(m[1])
		return bottom
	}
	if m := firstNumber.FindStringSubmatch(repRange); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return defaultBottomReps
}

// ReadyForProgression reports whether the exercise has at least one logged
// set and every logged set reached the top of the rep range.
func ReadyForProgression(ex Exercise) bool {
	if len(ex.CompletedSets) == 0 {
		return false
	}
	top := ExtractTopRepRange(ex.Reps)
	for _, set := range ex.CompletedSets {
		if set.Reps < top {
			return false
		}
	}
	return true
}

// GetProgressStatus derives the progression state of an exercise:
// ready (progress now), in-progress (has data, not yet at range top) or
// maintain (no completed-set data yet).
func GetProgressStatus(ex Exercise) ProgressStatus {
	if ReadyForProgression(ex) {
		return ProgressStatus{
			Status:  StatusReady,
			Message: "Ready to increase",
			Color:   "text-accent-green",
		}
	}
	if len(ex.CompletedSets) > 0 {
		return ProgressStatus{
			Status:  StatusInProgress,
			Message: "Keep current weight",
			Color:   "text-yellow-400",
		}
	}
	return ProgressStatus{
		Status:  StatusMaintain,
		Message: "No data",
		Color:   "text-gray-400",
	}
}

// ParseRPE extracts the numeric value from an intensity label like
// "RPE 7-8" (-> 7). Defaults to 8 when no RPE number is present
// ("Bodyweight").
func ParseRPE(rpe string) int {
	if m := rpeNumberPattern.FindStringSubmatch(rpe); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 8
}

// RPEDescriptions maps intensity labels to their meaning for display.
var RPEDescriptions = map[string]string{
	"RPE 6":  "Easy - Could do many more reps",
	"RPE 7":  "Moderately hard - Could do 3-4 more reps",
	"RPE 8":  "Hard - Could do 2-3 more reps",
	"RPE 9":  "Very hard - Could do 1-2 more reps",
	"RPE 10": "Maximum effort - Could not do another rep",
}
