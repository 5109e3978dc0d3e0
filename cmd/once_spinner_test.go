package cmd

import (
	"errors"
	"testing"

	"github.com/bnema/together-notify/internal/application"
	"github.com/bnema/together-notify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleSpinnerShowsOutcomeWhenDone(t *testing.T) {
	t.Parallel()

	model := newCycleSpinnerModel(nil)
	assert.Contains(t, model.View(), "Checking on your partner...")

	outcome := cycleOutcome{
		report: application.CycleReport{
			Partner: "alice",
			Events:  []domain.ChangeEvent{{Kind: domain.ChangeMood}, {Kind: domain.ChangeScore}},
		},
		result: domain.ResultSuccess,
	}
	updated, cmd := model.Update(cycleDoneMsg(outcome))
	require.NotNil(t, cmd)

	done, ok := updated.(cycleSpinnerModel)
	require.True(t, ok)
	assert.Contains(t, done.View(), "alice: 2 notifications sent")
	assert.Equal(t, outcome, done.outcome)
}

func TestCycleSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		outcome cycleOutcome
		want    string
	}{
		{
			name:    "retry",
			outcome: cycleOutcome{result: domain.ResultRetry, err: errors.New("status 500")},
			want:    "check failed, will retry",
		},
		{
			name:    "skipped",
			outcome: cycleOutcome{report: application.CycleReport{Skipped: true}, result: domain.ResultSuccess},
			want:    "no partner configured",
		},
		{
			name:    "unchanged",
			outcome: cycleOutcome{report: application.CycleReport{Partner: "alice", Unchanged: true}, result: domain.ResultSuccess},
			want:    "alice: nothing new",
		},
		{
			name: "single event",
			outcome: cycleOutcome{
				report: application.CycleReport{Partner: "alice", Events: []domain.ChangeEvent{{Kind: domain.ChangeActivity}}},
				result: domain.ResultSuccess,
			},
			want: "alice: 1 notification sent",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, cycleSummary(tc.outcome), tc.want)
		})
	}
}
