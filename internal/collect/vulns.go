package collect

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/huangsam/trustspot/internal/iocache"
	"github.com/huangsam/trustspot/schema"
)

// osvEcosystems maps trustspot ecosystem names to OSV ecosystem identifiers.
var osvEcosystems = map[string]string{
	"npm":  "npm",
	"pypi": "PyPI",
	"go":   "Go",
}

// VulnsCollector queries the OSV database for known vulnerabilities.
type VulnsCollector struct {
	cache     *iocache.Cache
	limiter   *Limiter
	client    *http.Client
	ttl       time.Duration
	osvURL    string
	ecosystem string
	now       func() time.Time
}

var _ Collector = &VulnsCollector{} // Compile-time check

// NewVulnsCollector builds the vulnerability collector from shared options.
func NewVulnsCollector(opts Options) *VulnsCollector {
	opts = opts.normalize()
	return &VulnsCollector{
		cache:     opts.Cache,
		limiter:   opts.Limits.OSV,
		client:    opts.HTTPClient,
		ttl:       opts.TTL,
		osvURL:    opts.OSVURL,
		ecosystem: opts.Ecosystem,
		now:       time.Now,
	}
}

// Name implements the Collector interface.
func (c *VulnsCollector) Name() schema.Source { return schema.VulnsSource }

// Collect implements the Collector interface.
func (c *VulnsCollector) Collect(ctx context.Context, name, version string) schema.CollectorResult {
	if cached, ok := c.Cached(name, version); ok {
		return cached
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return schema.ErrorResult(schema.VulnsSource, fmt.Sprintf("rate limit wait aborted: %v", err))
	}

	ecosystem, ok := osvEcosystems[strings.ToLower(c.ecosystem)]
	if !ok {
		return schema.ErrorResult(schema.VulnsSource, fmt.Sprintf("ecosystem %q is not supported for vulnerability lookup", c.ecosystem))
	}

	query := osvQuery{Version: version}
	query.Package.Name = name
	query.Package.Ecosystem = ecosystem

	var reply osvReply
	if err := postJSON(ctx, c.client, c.osvURL+"/v1/query", query, &reply); err != nil {
		return schema.ErrorResult(schema.VulnsSource, err.Error())
	}

	summary := summarizeVulns(reply.Vulns)
	if c.cache != nil {
		c.cache.Set(CacheKey(schema.VulnsSource, name, version), summary, c.ttl)
	}
	return schema.CollectorResult{
		Source:      schema.VulnsSource,
		Status:      schema.StatusSuccess,
		CollectedAt: c.now(),
		Vulns:       summary,
	}
}

// Cached implements the Collector interface.
func (c *VulnsCollector) Cached(name, version string) (schema.CollectorResult, bool) {
	return cachedAs(c.cache, schema.VulnsSource, name, version,
		func(r *schema.CollectorResult, summary *schema.VulnerabilitySummary) { r.Vulns = summary })
}

// osvQuery is the OSV /v1/query request body.
type osvQuery struct {
	Version string `json:"version,omitempty"`
	Package struct {
		Name      string `json:"name"`
		Ecosystem string `json:"ecosystem"`
	} `json:"package"`
}

// osvVuln is the subset of an OSV advisory used for summarization.
type osvVuln struct {
	ID               string    `json:"id"`
	Published        time.Time `json:"published"`
	Modified         time.Time `json:"modified"`
	DatabaseSpecific struct {
		Severity string `json:"severity"`
	} `json:"database_specific"`
	Severity []struct {
		Type  string `json:"type"`
		Score string `json:"score"`
	} `json:"severity"`
}

// osvReply is the OSV /v1/query response body.
type osvReply struct {
	Vulns []osvVuln `json:"vulns"`
}

// summarizeVulns buckets advisories by severity and estimates patch latency
// from the published-to-modified gap of each advisory. No advisories with a
// usable gap leaves AveragePatchDays nil.
func summarizeVulns(vulns []osvVuln) *schema.VulnerabilitySummary {
	summary := &schema.VulnerabilitySummary{Count: len(vulns)}

	var patchDaysSum float64
	var patchDaysCount int
	for _, vuln := range vulns {
		switch classifySeverity(vuln) {
		case "critical":
			summary.Critical++
		case "high":
			summary.High++
		case "low":
			summary.Low++
		default:
			summary.Medium++
		}

		if !vuln.Published.IsZero() && vuln.Modified.After(vuln.Published) {
			patchDaysSum += vuln.Modified.Sub(vuln.Published).Hours() / 24
			patchDaysCount++
		}
	}

	if patchDaysCount > 0 {
		avg := patchDaysSum / float64(patchDaysCount)
		summary.AveragePatchDays = &avg
	}
	return summary
}

// classifySeverity maps an advisory to one of critical, high, medium, low.
// Advisories without a recognizable severity count as medium.
func classifySeverity(vuln osvVuln) string {
	switch strings.ToLower(vuln.DatabaseSpecific.Severity) {
	case "critical":
		return "critical"
	case "high":
		return "high"
	case "moderate", "medium":
		return "medium"
	case "low":
		return "low"
	}

	for _, sev := range vuln.Severity {
		if score := cvssBaseScore(sev.Score); score > 0 {
			switch {
			case score >= 9.0:
				return "critical"
			case score >= 7.0:
				return "high"
			case score >= 4.0:
				return "medium"
			default:
				return "low"
			}
		}
	}
	return "medium"
}

// cvssBaseScore extracts a numeric base score from a CVSS vector when the
// score string is a plain number. Vector strings return 0.
func cvssBaseScore(score string) float64 {
	var value float64
	if _, err := fmt.Sscanf(score, "%f", &value); err != nil {
		return 0
	}
	return value
}
