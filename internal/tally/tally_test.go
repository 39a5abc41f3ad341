package tally

import (
	"testing"

	"github.com/openquorum/ballot-service/internal/entity"
	"github.com/stretchr/testify/assert"
)

func pct(v float64) *float64 { return &v }
func quorum(v int) *int      { return &v }

func TestRequiredVotes(t *testing.T) {
	tests := []struct {
		name      string
		eligible  int
		threshold entity.VotingThreshold
		customPct *float64
		want      int
	}{
		{"simple majority of 10", 10, entity.ThresholdSimpleMajority, nil, 6},
		{"simple majority of 9", 9, entity.ThresholdSimpleMajority, nil, 5},
		{"simple majority of 1", 1, entity.ThresholdSimpleMajority, nil, 1},
		{"supermajority of 9", 9, entity.ThresholdSupermajority, nil, 6},
		{"supermajority of 10", 10, entity.ThresholdSupermajority, nil, 7},
		{"supermajority of 3", 3, entity.ThresholdSupermajority, nil, 2},
		{"unanimous of 7", 7, entity.ThresholdUnanimous, nil, 7},
		{"custom 30% of 20", 20, entity.ThresholdCustom, pct(30), 6},
		{"custom 50% of 7", 7, entity.ThresholdCustom, pct(50), 4},
		{"custom missing pct falls back to all", 8, entity.ThresholdCustom, nil, 8},
		{"unknown threshold defaults to simple majority", 10, entity.VotingThreshold("bogus"), nil, 6},
		{"zero eligible voters", 0, entity.ThresholdSimpleMajority, nil, 1},
		{"zero eligible unanimous", 0, entity.ThresholdUnanimous, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredVotes(tt.eligible, tt.threshold, tt.customPct))
		})
	}
}

func TestThresholdPercentage(t *testing.T) {
	assert.Equal(t, 50.01, ThresholdPercentage(entity.ThresholdSimpleMajority, nil))
	assert.Equal(t, 66.67, ThresholdPercentage(entity.ThresholdSupermajority, nil))
	assert.Equal(t, 100.0, ThresholdPercentage(entity.ThresholdUnanimous, nil))
	assert.Equal(t, 42.5, ThresholdPercentage(entity.ThresholdCustom, pct(42.5)))
	assert.Equal(t, 50.01, ThresholdPercentage(entity.ThresholdCustom, nil))
}

func TestEvaluate_SimpleMajorityPassing(t *testing.T) {
	counts := Counts{Yea: 6, Nay: 1, Abstain: 1, Total: 8}

	status := Evaluate(counts, 10, entity.ThresholdSimpleMajority, nil, nil)

	assert.True(t, status.IsPassing)
	assert.Equal(t, 0, status.VotesNeeded)
	assert.Equal(t, 6, status.RequiredVotes)
	assert.Equal(t, 60.0, status.CurrentPercentage)
	assert.Equal(t, 8, status.TotalVotesCast)
	assert.True(t, status.QuorumMet)
	assert.Nil(t, status.QuorumNeeded)
}

func TestEvaluate_QuorumBlocksPassing(t *testing.T) {
	// Same ballot as above but quorum of 9: threshold met, quorum not.
	counts := Counts{Yea: 6, Nay: 1, Abstain: 1, Total: 8}

	status := Evaluate(counts, 10, entity.ThresholdSimpleMajority, nil, quorum(9))

	assert.False(t, status.IsPassing)
	assert.False(t, status.QuorumMet)
	assert.Equal(t, 1, *status.QuorumNeeded)
}

func TestEvaluate_QuorumNeededIgnoresSplit(t *testing.T) {
	counts := Counts{Yea: 0, Nay: 3, Abstain: 0, Total: 3}

	status := Evaluate(counts, 10, entity.ThresholdSimpleMajority, nil, quorum(5))

	assert.False(t, status.QuorumMet)
	assert.Equal(t, 2, *status.QuorumNeeded)
}

func TestEvaluate_VotesNeeded(t *testing.T) {
	counts := Counts{Yea: 2, Nay: 1, Abstain: 0, Total: 3}

	status := Evaluate(counts, 10, entity.ThresholdSimpleMajority, nil, nil)

	assert.False(t, status.IsPassing)
	assert.Equal(t, 4, status.VotesNeeded)
}

func TestEvaluate_ZeroEligibleVoters(t *testing.T) {
	status := Evaluate(Counts{}, 0, entity.ThresholdUnanimous, nil, nil)

	// Preserved behavior: zero eligible voters yields required=0 and an
	// immediately passing ballot with no division-by-zero.
	assert.True(t, status.IsPassing)
	assert.Equal(t, 0.0, status.CurrentPercentage)
	assert.Equal(t, 0, status.RequiredVotes)
}

func TestCountsTotalConsistency(t *testing.T) {
	counts := Counts{Yea: 4, Nay: 3, Abstain: 2, Total: 9}
	assert.Equal(t, counts.Total, counts.Yea+counts.Nay+counts.Abstain)
}
