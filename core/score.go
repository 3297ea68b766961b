package core

import (
	"fmt"
	"math"
	"time"

	"github.com/huangsam/trustspot/schema"
)

// Security dimension anchors by vulnerability count.
const (
	securityClean      = 100.0
	securityOneVuln    = 85.0
	securityTwoVulns   = 72.0
	securityThreeVulns = 60.0
	securityFourVulns  = 50.0
	securityFloor      = 20.0
	securityPerVuln    = 12.0 // deduction per vuln past four
)

// Patch responsiveness bonuses, applied only when vulns exist and the
// average patch latency is known.
const (
	fastPatchDays  = 7.0
	fastPatchBonus = 10.0
	okPatchDays    = 30.0
	okPatchBonus   = 5.0
)

// Maintainer dimension ceilings by maintainer count.
const (
	soloMaintainerCeiling  = 60.0
	smallMaintainerCeiling = 80.0
	largeMaintainerCeiling = 100.0
)

// midpointScore is the neutral anchor unavailable dimensions pull toward.
const midpointScore = 50.0

// insufficientDataThreshold is the unavailable-dimension count at which a
// score is flagged as weakly supported.
const insufficientDataThreshold = 2

// ScoreEngine computes composite trust scores from collected signals.
// Construction fails when the weights do not sum to 1.0; a silently
// rescaled model would misreport every package.
type ScoreEngine struct {
	weights map[schema.Dimension]float64
	now     func() time.Time
}

// NewScoreEngine creates a ScoreEngine with validated weights.
func NewScoreEngine(weights map[schema.Dimension]float64) (*ScoreEngine, error) {
	return NewScoreEngineWithClock(weights, time.Now)
}

// NewScoreEngineWithClock creates a ScoreEngine with an injected clock for tests.
func NewScoreEngineWithClock(weights map[schema.Dimension]float64, now func() time.Time) (*ScoreEngine, error) {
	if weights == nil {
		weights = schema.DefaultWeights
	}
	var sum float64
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("dimension weights must be non-negative")
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return nil, fmt.Errorf("dimension weights must sum to 1.0, got %.4f", sum)
	}
	return &ScoreEngine{weights: weights, now: now}, nil
}

// Score computes the composite trust score for one package's collected
// signals. Available dimensions keep their relative weights; the total
// missing weight pulls the score toward the neutral midpoint so packages
// with thin data land mid-range rather than at an extreme.
func (e *ScoreEngine) Score(set *schema.CollectorSet) schema.TrustResult {
	result := schema.TrustResult{}
	scores := e.dimensionScores(set)

	var weightedSum, availableWeight float64
	for _, dim := range schema.Dimensions {
		score := scores[dim]
		if score == nil {
			result.UnavailableDimensions = append(result.UnavailableDimensions, dim)
			continue
		}
		weightedSum += e.weights[dim] * *score
		availableWeight += e.weights[dim]
	}

	assignMetrics(&result.Metrics, scores)
	result.InsufficientData = len(result.UnavailableDimensions) >= insufficientDataThreshold

	if availableWeight == 0 {
		result.TrustScore = 0
		return result
	}

	average := weightedSum / availableWeight
	missingWeight := 1.0 - availableWeight
	result.TrustScore = clampScore(average*availableWeight + midpointScore*missingWeight)
	return result
}

// dimensionScores evaluates each dimension, yielding nil for the ones whose
// backing signals are unusable.
func (e *ScoreEngine) dimensionScores(set *schema.CollectorSet) map[schema.Dimension]*float64 {
	scores := make(map[schema.Dimension]*float64, len(schema.Dimensions))

	var registry *schema.RegistryInfo
	if set.Registry.OK() {
		registry = set.Registry.Registry
	}
	var repo *schema.RepoActivity
	if set.Repo.OK() {
		repo = set.Repo.Repo
	}

	if set.Vulns.OK() && set.Vulns.Vulns != nil {
		scores[schema.SecurityDim] = ptr(scoreSecurity(set.Vulns.Vulns))
	}
	if registry != nil {
		scores[schema.MaintainerDim] = ptr(scoreMaintainer(registry, repo))
	}
	if score, ok := e.scoreActivity(registry, repo); ok {
		scores[schema.ActivityDim] = ptr(score)
	}
	if set.Popularity.OK() && set.Popularity.Popularity != nil {
		scores[schema.PopularityDim] = ptr(scorePopularity(set.Popularity.Popularity))
	}
	if set.Funding.OK() && set.Funding.Funding != nil {
		scores[schema.FundingDim] = ptr(scoreFunding(set.Funding.Funding))
	}
	if set.License.OK() && set.License.License != nil {
		scores[schema.LicenseDim] = ptr(scoreLicense(set.License.License))
	}
	return scores
}

// scoreSecurity anchors on the vulnerability count, then rewards fast
// patching. A clean record scores a flat 100 with no bonus in play.
func scoreSecurity(vulns *schema.VulnerabilitySummary) float64 {
	var base float64
	switch vulns.Count {
	case 0:
		return securityClean
	case 1:
		base = securityOneVuln
	case 2:
		base = securityTwoVulns
	case 3:
		base = securityThreeVulns
	case 4:
		base = securityFourVulns
	default:
		base = math.Max(securityFloor, 100.0-securityPerVuln*float64(vulns.Count))
	}

	if vulns.AveragePatchDays != nil {
		switch {
		case *vulns.AveragePatchDays <= fastPatchDays:
			base += fastPatchBonus
		case *vulns.AveragePatchDays <= okPatchDays:
			base += okPatchBonus
		}
	}
	return clampScore(base)
}

// scoreMaintainer rates the maintainer pool size, adjusted by repository
// commit activity when available. The pool size sets a hard ceiling; busy
// committers cannot make a solo-maintained package look team-backed.
func scoreMaintainer(registry *schema.RegistryInfo, repo *schema.RepoActivity) float64 {
	var ceiling float64
	switch {
	case registry.Maintainers <= 1:
		ceiling = soloMaintainerCeiling
	case registry.Maintainers <= 5:
		ceiling = smallMaintainerCeiling
	default:
		ceiling = largeMaintainerCeiling
	}

	score := ceiling
	if repo != nil {
		switch {
		case repo.RecentCommits == 0:
			score -= 20
		case repo.RecentCommits < 5:
			score -= 10
		case repo.RecentCommits >= 20:
			score += 5
		}
	}
	return clampScore(math.Min(score, ceiling))
}

// scoreActivity blends publish recency with commit recency, weighting the
// registry signal higher. The boolean is false when neither timestamp exists.
func (e *ScoreEngine) scoreActivity(registry *schema.RegistryInfo, repo *schema.RepoActivity) (float64, bool) {
	now := e.now()

	var publishScore, commitScore *float64
	if registry != nil && !registry.LastPublishAt.IsZero() {
		publishScore = ptr(recencyScore(now.Sub(registry.LastPublishAt)))
	}
	if repo != nil && !repo.LastCommitAt.IsZero() {
		commitScore = ptr(recencyScore(now.Sub(repo.LastCommitAt)))
	}

	var score float64
	switch {
	case publishScore != nil && commitScore != nil:
		score = 0.6**publishScore + 0.4**commitScore
	case publishScore != nil:
		score = *publishScore
	case commitScore != nil:
		score = *commitScore
	default:
		return 0, false
	}

	// An archived repository is frozen no matter how recent its last push.
	if repo != nil && repo.Archived {
		score = math.Min(score, 20)
	}
	return clampScore(score), true
}

// recencyScore maps elapsed time since the last sign of life to a score.
func recencyScore(elapsed time.Duration) float64 {
	days := elapsed.Hours() / 24
	switch {
	case days <= 30:
		return 100
	case days <= 90:
		return 85
	case days <= 180:
		return 70
	case days <= 365:
		return 50
	case days <= 730:
		return 30
	default:
		return 10
	}
}

// scorePopularity maps weekly downloads to a score on a log-like ladder.
func scorePopularity(popularity *schema.PopularitySummary) float64 {
	switch weekly := popularity.WeeklyDownloads; {
	case weekly >= 1_000_000:
		return 100
	case weekly >= 100_000:
		return 90
	case weekly >= 10_000:
		return 75
	case weekly >= 1_000:
		return 60
	case weekly >= 100:
		return 45
	case weekly >= 10:
		return 30
	default:
		return 15
	}
}

// scoreFunding rates sponsorship depth. No funding is the common case and
// lands below the midpoint rather than at the bottom.
func scoreFunding(funding *schema.FundingSummary) float64 {
	switch {
	case funding.EstimatedAnnualUSD >= 1000:
		return 100
	case funding.HasGitHubSponsors && funding.HasOpenCollective:
		return 85
	case funding.HasNPMFunding || funding.HasFundingFile || funding.HasGitHubSponsors || funding.HasOpenCollective:
		return 70
	default:
		return 40
	}
}

// scoreLicense maps the license risk class to a score.
func scoreLicense(license *schema.LicenseSummary) float64 {
	switch license.Risk {
	case schema.LicenseSafe:
		return 100
	case schema.LicenseCautious:
		return 60
	case schema.LicenseRisky:
		return 30
	default:
		return 10
	}
}

// assignMetrics copies the per-dimension scores into the metrics struct.
func assignMetrics(metrics *schema.TrustMetrics, scores map[schema.Dimension]*float64) {
	metrics.Security = scores[schema.SecurityDim]
	metrics.Maintainer = scores[schema.MaintainerDim]
	metrics.Activity = scores[schema.ActivityDim]
	metrics.Popularity = scores[schema.PopularityDim]
	metrics.Funding = scores[schema.FundingDim]
	metrics.License = scores[schema.LicenseDim]
}

// clampScore bounds a score to [0,100].
func clampScore(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}

// ptr returns a pointer to v.
func ptr(v float64) *float64 { return &v }
