package schema

import "time"

// TrustMetrics holds the six per-dimension scores. A nil pointer means the
// dimension was unavailable (its collector produced no usable data).
type TrustMetrics struct {
	Security   *float64 `json:"security"`
	Maintainer *float64 `json:"maintainer"`
	Activity   *float64 `json:"activity"`
	Popularity *float64 `json:"popularity"`
	Funding    *float64 `json:"funding"`
	License    *float64 `json:"license"`
}

// ByDimension returns the metric slot for the given dimension.
func (m *TrustMetrics) ByDimension(d Dimension) *float64 {
	switch d {
	case SecurityDim:
		return m.Security
	case MaintainerDim:
		return m.Maintainer
	case ActivityDim:
		return m.Activity
	case PopularityDim:
		return m.Popularity
	case FundingDim:
		return m.Funding
	default:
		return m.License
	}
}

// TrustResult is the composite trust scoring output for one package.
type TrustResult struct {
	TrustScore            float64      `json:"trustScore"` // composite score in [0,100]
	Metrics               TrustMetrics `json:"metrics"`
	InsufficientData      bool         `json:"insufficientData"` // true once 2+ dimensions are unavailable
	UnavailableDimensions []Dimension  `json:"unavailableDimensions"`
}

// ZombieResult is the abandonment classification for one package.
// Derived on every query, never persisted.
type ZombieResult struct {
	IsZombie     bool           `json:"isZombie"`
	Severity     ZombieSeverity `json:"severity"`
	LastActivity *time.Time     `json:"lastActivity"` // later of last publish and last commit
	Reason       string         `json:"reason"`
}

// TyposquatResult is the name-similarity finding for one package name.
type TyposquatResult struct {
	IsRisky      bool     `json:"isRisky"`
	SimilarNames []string `json:"similarNames"`
	MinDistance  int      `json:"minDistance"` // 0 when the name is itself a reference entry
}

// BlastRadius reports how much of a consuming project references a package.
type BlastRadius struct {
	AffectedFileCount int      `json:"affectedFileCount"`
	AffectedFilePaths []string `json:"affectedFilePaths"` // sorted relative paths
	Percentage        float64  `json:"percentage"`        // affected / scanned * 100
}

// PackageReport composes all analytical outputs for one package.
type PackageReport struct {
	Name      string          `json:"name"`
	Version   string          `json:"version"`
	IsDirect  bool            `json:"isDirect"`
	Trust     TrustResult     `json:"trust"`
	Zombie    ZombieResult    `json:"zombie"`
	Typosquat TyposquatResult `json:"typosquat"`
	Blast     *BlastRadius    `json:"blastRadius,omitempty"` // nil when no project tree was scanned
	Collected CollectorSet    `json:"collected"`
}

// ProjectReport is the output of one project scan.
type ProjectReport struct {
	ProjectDir     string          `json:"projectDir"`
	Reports        []PackageReport `json:"reports"`
	AggregateScore float64         `json:"aggregateScore"` // direct deps weighted double
	Duration       time.Duration   `json:"duration"`
}
