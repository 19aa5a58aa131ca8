// internal/seqeng/label_test.go
package seqeng

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bindprep/internal/design"
)

func TestCleanID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3_15_binder_s42_mpnn3_model1_aligned_5.0", "binder_s42_mpnn3"},
		{"binder_s42_mpnn3_model2", "binder_s42_mpnn3"},
		{"binder_s7_mpnn1_aligned", "binder_s7_mpnn1"},
		{"binder_s7_mpnn1", "binder_s7_mpnn1"},
		{"1_2_plain", "plain"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CleanID(tc.in), tc.in)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "binder_s42_mpnn3_N", Label("3_15_binder_s42_mpnn3_model1", design.TerminusN))
	assert.Equal(t, "binder_s42_mpnn3_C", Label("binder_s42_mpnn3", design.TerminusC))
}

func TestLabelSetCollision(t *testing.T) {
	s := NewLabelSet()
	require.NoError(t, s.Claim("binder_s1_mpnn1_C", "d1"))
	// Same design id and label again is still a collision: claims are unique.
	err := s.Claim("binder_s1_mpnn1_C", "d2")

	var lc *design.LabelCollisionError
	require.True(t, errors.As(err, &lc))
	assert.Equal(t, "binder_s1_mpnn1_C", lc.Label)
	assert.Equal(t, "d2", lc.ID)
	assert.Equal(t, "d1", lc.OtherID)

	assert.NoError(t, s.Claim("binder_s1_mpnn1_N", "d3"))
}
