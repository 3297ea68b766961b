package collect

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/huangsam/trustspot/internal/iocache"
	"github.com/huangsam/trustspot/schema"
)

// FundingCollector derives funding signals from registry metadata and the
// repository FUNDING.yml probe. A package with no funding at all is a valid
// success with every flag false, not an error.
type FundingCollector struct {
	cache           *iocache.Cache
	registryLimiter *Limiter
	githubLimiter   *Limiter
	client          *http.Client
	ttl             time.Duration
	registryURL     string
	githubURL       string
	token           string
	now             func() time.Time
}

var _ Collector = &FundingCollector{} // Compile-time check

// NewFundingCollector builds the funding collector from shared options.
func NewFundingCollector(opts Options) *FundingCollector {
	opts = opts.normalize()
	return &FundingCollector{
		cache:           opts.Cache,
		registryLimiter: opts.Limits.Registry,
		githubLimiter:   opts.Limits.GitHub,
		client:          opts.HTTPClient,
		ttl:             opts.TTL,
		registryURL:     opts.RegistryURL,
		githubURL:       opts.GitHubURL,
		token:           opts.Token,
		now:             time.Now,
	}
}

// Name implements the Collector interface.
func (c *FundingCollector) Name() schema.Source { return schema.FundingSource }

// Collect implements the Collector interface.
func (c *FundingCollector) Collect(ctx context.Context, name, version string) schema.CollectorResult {
	if cached, ok := c.Cached(name, version); ok {
		return cached
	}

	info, err := c.registryInfo(ctx, name, version)
	if err != nil {
		return schema.ErrorResult(schema.FundingSource, err.Error())
	}

	summary := &schema.FundingSummary{}
	if info.FundingURL != "" {
		summary.HasNPMFunding = true
		classifyFundingURL(info.FundingURL, summary)
	}
	if owner, repo, ok := ParseGitHubRepo(info.RepositoryURL); ok {
		summary.HasFundingFile = c.probeFundingFile(ctx, owner, repo)
	}

	if c.cache != nil {
		c.cache.Set(CacheKey(schema.FundingSource, name, version), summary, c.ttl)
	}
	return schema.CollectorResult{
		Source:      schema.FundingSource,
		Status:      schema.StatusSuccess,
		CollectedAt: c.now(),
		Funding:     summary,
	}
}

// Cached implements the Collector interface.
func (c *FundingCollector) Cached(name, version string) (schema.CollectorResult, bool) {
	return cachedAs(c.cache, schema.FundingSource, name, version,
		func(r *schema.CollectorResult, summary *schema.FundingSummary) { r.Funding = summary })
}

// registryInfo reuses cached registry metadata before fetching the packument.
func (c *FundingCollector) registryInfo(ctx context.Context, name, version string) (*schema.RegistryInfo, error) {
	if c.cache != nil {
		var info schema.RegistryInfo
		if _, ok := c.cache.GetJSON(CacheKey(schema.RegistrySource, name, version), &info); ok {
			return &info, nil
		}
	}

	if err := c.registryLimiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait aborted: %w", err)
	}
	doc, err := fetchPackument(ctx, c.client, c.registryURL, name)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("package %q not found in registry", name)
		}
		return nil, err
	}
	return normalizeRegistry(doc, version), nil
}

// probeFundingFile checks whether .github/FUNDING.yml exists in the repository.
func (c *FundingCollector) probeFundingFile(ctx context.Context, owner, repo string) bool {
	if err := c.githubLimiter.Acquire(ctx); err != nil {
		return false
	}
	endpoint := fmt.Sprintf("%s/repos/%s/%s/contents/.github/FUNDING.yml",
		c.githubURL, url.PathEscape(owner), url.PathEscape(repo))
	var content struct {
		Name string `json:"name"`
	}
	err := getJSON(ctx, c.client, endpoint, c.token, &content)
	return err == nil && content.Name != ""
}

// classifyFundingURL sets the channel flags implied by a funding URL.
func classifyFundingURL(fundingURL string, summary *schema.FundingSummary) {
	lowered := strings.ToLower(fundingURL)
	if strings.Contains(lowered, "github.com/sponsors") {
		summary.HasGitHubSponsors = true
	}
	if strings.Contains(lowered, "opencollective.com") {
		summary.HasOpenCollective = true
	}
}
