package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/trustspot/schema"
)

var scoreTestNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func testClock() time.Time { return scoreTestNow }

// healthySet builds a full set of strong signals.
func healthySet() schema.CollectorSet {
	var set schema.CollectorSet
	set.Registry = schema.CollectorResult{
		Source: schema.RegistrySource,
		Status: schema.StatusSuccess,
		Registry: &schema.RegistryInfo{
			Name:          "solid",
			Maintainers:   6,
			LastPublishAt: scoreTestNow.Add(-10 * 24 * time.Hour),
			CreatedAt:     scoreTestNow.Add(-5 * 365 * 24 * time.Hour),
		},
	}
	set.Repo = schema.CollectorResult{
		Source: schema.RepoSource,
		Status: schema.StatusSuccess,
		Repo: &schema.RepoActivity{
			Stars:         5000,
			Contributors:  40,
			RecentCommits: 25,
			LastCommitAt:  scoreTestNow.Add(-2 * 24 * time.Hour),
		},
	}
	set.Vulns = schema.CollectorResult{
		Source: schema.VulnsSource,
		Status: schema.StatusSuccess,
		Vulns:  &schema.VulnerabilitySummary{Count: 0},
	}
	set.Funding = schema.CollectorResult{
		Source: schema.FundingSource,
		Status: schema.StatusSuccess,
		Funding: &schema.FundingSummary{
			HasGitHubSponsors:  true,
			HasOpenCollective:  true,
			EstimatedAnnualUSD: 1500,
		},
	}
	set.Popularity = schema.CollectorResult{
		Source:     schema.PopularitySource,
		Status:     schema.StatusSuccess,
		Popularity: &schema.PopularitySummary{WeeklyDownloads: 2_000_000},
	}
	set.License = schema.CollectorResult{
		Source:  schema.LicenseSource,
		Status:  schema.StatusSuccess,
		License: &schema.LicenseSummary{License: "MIT", Risk: schema.LicenseSafe},
	}
	return set
}

func newTestEngine(t *testing.T) *ScoreEngine {
	t.Helper()
	engine, err := NewScoreEngineWithClock(schema.DefaultWeights, testClock)
	require.NoError(t, err)
	return engine
}

func TestScorePerfectPackage(t *testing.T) {
	engine := newTestEngine(t)
	result := engine.Score(ptrSet(healthySet()))

	assert.Equal(t, 100.0, result.TrustScore)
	assert.False(t, result.InsufficientData)
	assert.Empty(t, result.UnavailableDimensions)
	require.NotNil(t, result.Metrics.Security)
	assert.Equal(t, 100.0, *result.Metrics.Security)
}

func TestScoreAllUnavailable(t *testing.T) {
	engine := newTestEngine(t)
	var set schema.CollectorSet
	for _, src := range schema.Sources {
		set.SetBySource(src, schema.ErrorResult(src, "boom"))
	}

	result := engine.Score(&set)
	assert.Equal(t, 0.0, result.TrustScore)
	assert.True(t, result.InsufficientData)
	assert.Len(t, result.UnavailableDimensions, 6)
	assert.Nil(t, result.Metrics.Security)
}

func TestScoreMidpointPull(t *testing.T) {
	engine := newTestEngine(t)
	var set schema.CollectorSet
	for _, src := range schema.Sources {
		set.SetBySource(src, schema.ErrorResult(src, "down"))
	}
	set.License = schema.CollectorResult{
		Source:  schema.LicenseSource,
		Status:  schema.StatusSuccess,
		License: &schema.LicenseSummary{License: "MIT", Risk: schema.LicenseSafe},
	}

	// License scores 100 at weight 0.10; the missing 0.90 pulls toward 50.
	result := engine.Score(&set)
	assert.InDelta(t, 55.0, result.TrustScore, 0.001)
	assert.True(t, result.InsufficientData)
	assert.Len(t, result.UnavailableDimensions, 5)
}

func TestScoreInsufficientDataThreshold(t *testing.T) {
	engine := newTestEngine(t)

	set := healthySet()
	set.Funding = schema.ErrorResult(schema.FundingSource, "down")
	result := engine.Score(&set)
	assert.False(t, result.InsufficientData, "one missing dimension is tolerable")

	set.Popularity = schema.ErrorResult(schema.PopularitySource, "down")
	result = engine.Score(&set)
	assert.True(t, result.InsufficientData, "two missing dimensions are not")
}

func TestScoreSecurity(t *testing.T) {
	patch := func(days float64) *float64 { return &days }
	tests := []struct {
		name  string
		vulns schema.VulnerabilitySummary
		want  float64
	}{
		{"clean record", schema.VulnerabilitySummary{Count: 0}, 100},
		{"clean record ignores patch bonus", schema.VulnerabilitySummary{Count: 0, AveragePatchDays: patch(1)}, 100},
		{"one vuln", schema.VulnerabilitySummary{Count: 1}, 85},
		{"one vuln patched fast", schema.VulnerabilitySummary{Count: 1, AveragePatchDays: patch(3)}, 95},
		{"one vuln patched slowly", schema.VulnerabilitySummary{Count: 1, AveragePatchDays: patch(25)}, 90},
		{"three vulns", schema.VulnerabilitySummary{Count: 3}, 60},
		{"many vulns", schema.VulnerabilitySummary{Count: 6}, 28},
		{"floor holds", schema.VulnerabilitySummary{Count: 50}, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scoreSecurity(&tc.vulns))
		})
	}
}

func TestScoreMaintainer(t *testing.T) {
	tests := []struct {
		name        string
		maintainers int
		repo        *schema.RepoActivity
		want        float64
	}{
		{"solo without repo data", 1, nil, 60},
		{"solo cannot exceed ceiling", 1, &schema.RepoActivity{RecentCommits: 30}, 60},
		{"solo and idle", 1, &schema.RepoActivity{RecentCommits: 0}, 40},
		{"small team", 4, nil, 80},
		{"large team busy", 8, &schema.RepoActivity{RecentCommits: 25}, 100},
		{"large team trickle", 8, &schema.RepoActivity{RecentCommits: 3}, 90},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			registry := &schema.RegistryInfo{Maintainers: tc.maintainers}
			assert.Equal(t, tc.want, scoreMaintainer(registry, tc.repo))
		})
	}
}

func TestScoreActivityArchivedCap(t *testing.T) {
	engine := newTestEngine(t)
	registry := &schema.RegistryInfo{LastPublishAt: scoreTestNow.Add(-5 * 24 * time.Hour)}
	repo := &schema.RepoActivity{
		LastCommitAt: scoreTestNow.Add(-5 * 24 * time.Hour),
		Archived:     true,
	}

	score, ok := engine.scoreActivity(registry, repo)
	require.True(t, ok)
	assert.Equal(t, 20.0, score)
}

func TestScoreActivityUnavailable(t *testing.T) {
	engine := newTestEngine(t)
	_, ok := engine.scoreActivity(nil, nil)
	assert.False(t, ok)

	_, ok = engine.scoreActivity(&schema.RegistryInfo{}, &schema.RepoActivity{})
	assert.False(t, ok, "zero timestamps carry no signal")
}

func TestScorePopularityLadder(t *testing.T) {
	tests := []struct {
		weekly int
		want   float64
	}{
		{1_500_000, 100},
		{250_000, 90},
		{50_000, 75},
		{5_000, 60},
		{500, 45},
		{50, 30},
		{3, 15},
	}
	for _, tc := range tests {
		got := scorePopularity(&schema.PopularitySummary{WeeklyDownloads: tc.weekly})
		assert.Equal(t, tc.want, got, "weekly=%d", tc.weekly)
	}
}

func TestScoreFundingTiers(t *testing.T) {
	assert.Equal(t, 40.0, scoreFunding(&schema.FundingSummary{}))
	assert.Equal(t, 70.0, scoreFunding(&schema.FundingSummary{HasNPMFunding: true}))
	assert.Equal(t, 85.0, scoreFunding(&schema.FundingSummary{HasGitHubSponsors: true, HasOpenCollective: true}))
	assert.Equal(t, 100.0, scoreFunding(&schema.FundingSummary{EstimatedAnnualUSD: 5000}))
}

func TestNewScoreEngineRejectsBadWeights(t *testing.T) {
	bad := map[schema.Dimension]float64{
		schema.SecurityDim: 0.5,
		schema.LicenseDim:  0.4,
	}
	_, err := NewScoreEngine(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func ptrSet(set schema.CollectorSet) *schema.CollectorSet { return &set }
