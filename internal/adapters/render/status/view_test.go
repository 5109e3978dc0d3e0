package status

import (
	"testing"

	"github.com/bnema/together-notify/internal/application"
	"github.com/bnema/together-notify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPartnerSnapshot(t *testing.T) {
	output, err := Render(application.Status{
		Profile:     domain.Profile{Name: "bob", Partner: "alice"},
		Configured:  true,
		HasSnapshot: true,
		State: domain.ParsePartnerState(`{
			"activities":[{"type":"eating","timestamp":"T1"},{"type":"sleeping","timestamp":"T2"}],
			"mood":"happy",
			"studyLogs":[{"subject":"math"},{"subject":"biology"}],
			"gameData":{"totalScore":42},
			"coupons":{"inventory":{"alice":["a","b"]},"balances":{"alice":10,"bob":7}}
		}`),
		BucketCount: 5,
	}, RenderOptions{BarWidth: 10, StudyGoal: 4})

	require.NoError(t, err)
	assert.Contains(t, output, "Together")
	assert.Contains(t, output, "partner: alice (you: bob)")
	assert.Contains(t, output, "activity: sleeping 😴 (T2)")
	assert.Contains(t, output, "mood: happy")
	assert.Contains(t, output, "2 sessions (latest: biology)")
	assert.Contains(t, output, "[=====-----]")
	assert.Contains(t, output, "score: 42")
	assert.Contains(t, output, "coupons: 2 held")
	assert.Contains(t, output, "points: alice 10, bob 7")
	assert.Contains(t, output, "bucket list: 5 items")
}

func TestRenderWithoutSnapshot(t *testing.T) {
	output, err := Render(application.Status{
		Profile:     domain.Profile{Partner: "alice"},
		Configured:  true,
		BucketCount: domain.NoBucketCount,
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "partner: alice")
	assert.NotContains(t, output, "you:")
	assert.Contains(t, output, "No snapshot yet.")
	assert.Contains(t, output, "bucket list: not seen yet")
}

func TestRenderWithoutProfile(t *testing.T) {
	output, err := Render(application.Status{}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "No partner configured.")
	assert.NotContains(t, output, "bucket list")
}

func TestRenderProgressBarClampsAtGoal(t *testing.T) {
	bar := renderProgressBar(9, 4, 8, newStyles())
	assert.Contains(t, bar, "[========]")
}
