// internal/design/design_test.go
package design

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusCandidate, "candidate"},
		{StatusRanked, "ranked"},
		{StatusClashRejected, "clash-rejected"},
		{StatusTagAnalyzed, "tag-analyzed"},
		{StatusDeduplicated, "deduplicated"},
		{StatusEngineered, "engineered"},
		{StatusDiscarded, "discarded"},
		{Status(99), "unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.status.String())
	}
}

func TestParseTerminus(t *testing.T) {
	for _, s := range []string{"N", "n"} {
		term, ok := ParseTerminus(s)
		require.True(t, ok)
		assert.Equal(t, TerminusN, term)
	}
	term, ok := ParseTerminus("c")
	require.True(t, ok)
	assert.Equal(t, TerminusC, term)

	_, ok = ParseTerminus("X")
	assert.False(t, ok)
}

func TestErrorMessages(t *testing.T) {
	var err error = &MissingMetricError{ID: "d1", Metric: "iptm"}
	assert.Contains(t, err.Error(), "d1")
	assert.Contains(t, err.Error(), "iptm")

	err = &UnknownResidueError{ID: "d2", Name: "XYZ", Pos: 4}
	assert.Contains(t, err.Error(), "XYZ")

	err = &LabelCollisionError{Label: "a_C", ID: "d3", OtherID: "d4"}
	assert.Contains(t, err.Error(), "a_C")

	var mm *MissingMetricError
	assert.True(t, errors.As(&MissingMetricError{}, &mm))
}
