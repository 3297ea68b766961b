// Package schema has configs, models and shared constants for all parts of trustspot.
package schema

import "time"

// RegistryInfo is the normalized shape of package registry metadata.
type RegistryInfo struct {
	Name          string    `json:"name"`
	LatestVersion string    `json:"latestVersion"`
	License       string    `json:"license"`
	Deprecated    string    `json:"deprecated,omitempty"` // non-empty means a deprecation marker exists
	LastPublishAt time.Time `json:"lastPublishAt"`
	CreatedAt     time.Time `json:"createdAt"`
	RepositoryURL string    `json:"repositoryUrl,omitempty"`
	FundingURL    string    `json:"fundingUrl,omitempty"`
	Maintainers   int       `json:"maintainers"`
	VersionCount  int       `json:"versionCount"`
}

// RepoActivity is the normalized shape of source-repository activity data.
type RepoActivity struct {
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	OpenIssues    int       `json:"openIssues"`
	Contributors  int       `json:"contributors"`
	RecentCommits int       `json:"recentCommits"` // commits within the recent window
	LastCommitAt  time.Time `json:"lastCommitAt"`
	Archived      bool      `json:"archived"`
	HasFunding    bool      `json:"hasFunding"` // FUNDING.yml present in the repository
}

// VulnerabilitySummary is the normalized shape of known-vulnerability data.
type VulnerabilitySummary struct {
	Count            int      `json:"count"`
	Critical         int      `json:"critical"`
	High             int      `json:"high"`
	Medium           int      `json:"medium"`
	Low              int      `json:"low"`
	AveragePatchDays *float64 `json:"averagePatchDays,omitempty"` // nil when patch timing is unknown
}

// FundingSummary is the normalized shape of funding/sponsorship signals.
// All-false values are a legitimate state; most packages have no funding.
type FundingSummary struct {
	HasNPMFunding      bool    `json:"hasNpmFunding"`
	HasFundingFile     bool    `json:"hasFundingFile"`
	HasGitHubSponsors  bool    `json:"hasGithubSponsors"`
	HasOpenCollective  bool    `json:"hasOpenCollective"`
	EstimatedAnnualUSD float64 `json:"estimatedAnnualUsd"`
}

// PopularitySummary is the normalized shape of download statistics.
type PopularitySummary struct {
	WeeklyDownloads  int `json:"weeklyDownloads"`
	MonthlyDownloads int `json:"monthlyDownloads"`
}

// LicenseSummary is the normalized shape of license risk data.
type LicenseSummary struct {
	License string      `json:"license"`
	Risk    LicenseRisk `json:"risk"`
}

// CollectorResult is the outcome of one collector run. Exactly one of the
// data pointers is non-nil iff Status is StatusSuccess or StatusCached;
// all pointers are nil for StatusError and StatusOffline.
type CollectorResult struct {
	Source      Source          `json:"source"`
	Status      CollectorStatus `json:"status"`
	Message     string          `json:"message,omitempty"` // error detail for StatusError
	CollectedAt time.Time       `json:"collectedAt,omitempty"`

	Registry   *RegistryInfo         `json:"registry,omitempty"`
	Repo       *RepoActivity         `json:"repo,omitempty"`
	Vulns      *VulnerabilitySummary `json:"vulns,omitempty"`
	Funding    *FundingSummary       `json:"funding,omitempty"`
	Popularity *PopularitySummary    `json:"popularity,omitempty"`
	License    *LicenseSummary       `json:"license,omitempty"`
}

// OK reports whether the result carries usable data.
func (r CollectorResult) OK() bool {
	return r.Status == StatusSuccess || r.Status == StatusCached
}

// ErrorResult builds a CollectorResult for a locally recovered failure.
func ErrorResult(src Source, msg string) CollectorResult {
	return CollectorResult{Source: src, Status: StatusError, Message: msg}
}

// OfflineResult builds a CollectorResult for an offline cache miss.
func OfflineResult(src Source) CollectorResult {
	return CollectorResult{Source: src, Status: StatusOffline}
}

// CollectorSet holds the six named collector results for one package.
// The orchestrator guarantees every slot is populated.
type CollectorSet struct {
	Registry   CollectorResult `json:"registry"`
	Repo       CollectorResult `json:"repo"`
	Vulns      CollectorResult `json:"vulns"`
	Funding    CollectorResult `json:"funding"`
	Popularity CollectorResult `json:"popularity"`
	License    CollectorResult `json:"license"`
}

// BySource returns the result slot for the given source.
func (s *CollectorSet) BySource(src Source) CollectorResult {
	switch src {
	case RegistrySource:
		return s.Registry
	case RepoSource:
		return s.Repo
	case VulnsSource:
		return s.Vulns
	case FundingSource:
		return s.Funding
	case PopularitySource:
		return s.Popularity
	default:
		return s.License
	}
}

// SetBySource assigns the result slot for the given source.
func (s *CollectorSet) SetBySource(src Source, r CollectorResult) {
	switch src {
	case RegistrySource:
		s.Registry = r
	case RepoSource:
		s.Repo = r
	case VulnsSource:
		s.Vulns = r
	case FundingSource:
		s.Funding = r
	case PopularitySource:
		s.Popularity = r
	case LicenseSource:
		s.License = r
	}
}

// Dependency is one entry of an externally parsed dependency list.
type Dependency struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	IsDirect bool   `json:"isDirect"`
}
