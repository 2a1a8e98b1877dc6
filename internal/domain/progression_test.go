package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTopRepRange(t *testing.T) {
	tests := []struct {
		repRange string
		want     int
	}{
		{"8-12", 12},
		{"5-8", 8},
		{"12", 12},
		{"45-60 sec hold", 60},
		{"AMRAP", 10},
		{"", 10},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ExtractTopRepRange(tc.repRange), "repRange=%q", tc.repRange)
	}
}

func TestExtractBottomRepRange(t *testing.T) {
	tests := []struct {
		repRange string
		want     int
	}{
		{"8-12", 8},
		{"5-8", 5},
		{"12", 12},
		{"45-60 sec hold", 45},
		{"AMRAP", 8},
		{"", 8},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ExtractBottomRepRange(tc.repRange), "repRange=%q", tc.repRange)
	}
}

func TestGetProgressStatus_Ready(t *testing.T) {
	ex := Exercise{
		Reps:          "8-12",
		CompletedSets: []CompletedSet{{Reps: 12}, {Reps: 13}},
	}

	status := GetProgressStatus(ex)
	assert.Equal(t, StatusReady, status.Status)
	assert.Equal(t, "Ready to increase", status.Message)
	assert.Equal(t, "text-accent-green", status.Color)
}

func TestGetProgressStatus_InProgress(t *testing.T) {
	// One set below the top of the range holds the weight.
	ex := Exercise{
		Reps:          "8-12",
		CompletedSets: []CompletedSet{{Reps: 12}, {Reps: 9}},
	}

	status := GetProgressStatus(ex)
	assert.Equal(t, StatusInProgress, status.Status)
	assert.Equal(t, "Keep current weight", status.Message)
	assert.Equal(t, "text-yellow-400", status.Color)
}

func TestGetProgressStatus_NoData(t *testing.T) {
	ex := Exercise{Reps: "8-12"}

	status := GetProgressStatus(ex)
	assert.Equal(t, StatusMaintain, status.Status)
	assert.Equal(t, "No data", status.Message)
	assert.Equal(t, "text-gray-400", status.Color)
}

func TestReadyForProgression_EmptySets(t *testing.T) {
	assert.False(t, ReadyForProgression(Exercise{Reps: "8-12"}))
}

func TestReadyForProgression_SingleNumberTarget(t *testing.T) {
	ex := Exercise{
		Reps:          "12",
		CompletedSets: []CompletedSet{{Reps: 12}},
	}
	assert.True(t, ReadyForProgression(ex))
}

func TestParseRPE(t *testing.T) {
	tests := []struct {
		rpe  string
		want int
	}{
		{"RPE 8", 8},
		{"RPE 7-8", 7},
		{"rpe 9", 9},
		{"RPE6", 6},
		{"Bodyweight", 8},
		{"", 8},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseRPE(tc.rpe), "rpe=%q", tc.rpe)
	}
}

func TestRPEDescriptions(t *testing.T) {
	assert.Len(t, RPEDescriptions, 5)
	assert.Contains(t, RPEDescriptions["RPE 8"], "2-3 more reps")
}
