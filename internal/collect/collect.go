// Package collect fetches raw trust signals from upstream sources.
// Collectors never propagate failures: every failure mode degrades to a
// CollectorResult with StatusError so one broken source cannot sink a scan.
package collect

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/internal/iocache"
	"github.com/huangsam/trustspot/schema"
)

// Default upstream endpoints.
const (
	DefaultRegistryURL  = "https://registry.npmjs.org"
	DefaultDownloadsURL = "https://api.npmjs.org"
	DefaultGitHubURL    = "https://api.github.com"
	DefaultOSVURL       = "https://api.osv.dev"
)

// maxResponseBytes bounds untrusted response bodies.
const maxResponseBytes = 16 << 20

// Collector produces one signal source's result for a package version.
type Collector interface {
	// Name returns the source this collector serves.
	Name() schema.Source

	// Collect returns the signal for a package, cache-first. It never
	// returns an error; failures surface as StatusError results.
	Collect(ctx context.Context, name, version string) schema.CollectorResult

	// Cached returns the cached signal only, for offline operation.
	// The boolean is false on a cache miss.
	Cached(name, version string) (schema.CollectorResult, bool)
}

// CacheKey builds the canonical cache key for one source and package version.
func CacheKey(src schema.Source, name, version string) string {
	return fmt.Sprintf("src:%s:%s@%s", src, name, version)
}

// Limits groups the per-upstream rate limiters. Collectors that talk to the
// same host share a limiter so the budget is enforced across sources.
type Limits struct {
	Registry  *Limiter
	Downloads *Limiter
	GitHub    *Limiter
	OSV       *Limiter
}

// DefaultLimits builds limiters with conservative per-minute budgets.
// GitHub's budget grows when an API token raises the upstream quota.
func DefaultLimits(token string) *Limits {
	githubBudget := 10
	if token != "" {
		githubBudget = 80
	}
	return &Limits{
		Registry:  NewLimiter(60, time.Minute),
		Downloads: NewLimiter(60, time.Minute),
		GitHub:    NewLimiter(githubBudget, time.Minute),
		OSV:       NewLimiter(60, time.Minute),
	}
}

// Options carries the shared wiring for all collectors.
type Options struct {
	Cache     *iocache.Cache
	Limits    *Limits
	TTL       time.Duration
	Token     string // GitHub API token, optional
	Ecosystem string // OSV ecosystem name, npm by default

	RegistryURL  string
	DownloadsURL string
	GitHubURL    string
	OSVURL       string

	HTTPClient *http.Client
}

// normalize fills zero-valued options with defaults.
func (o Options) normalize() Options {
	if o.Limits == nil {
		o.Limits = DefaultLimits(o.Token)
	}
	if o.TTL <= 0 {
		o.TTL = contract.DefaultCacheTTL
	}
	if o.Ecosystem == "" {
		o.Ecosystem = contract.DefaultEcosystem
	}
	o.RegistryURL = valueOrDefaultURL(o.RegistryURL, DefaultRegistryURL)
	o.DownloadsURL = valueOrDefaultURL(o.DownloadsURL, DefaultDownloadsURL)
	o.GitHubURL = valueOrDefaultURL(o.GitHubURL, DefaultGitHubURL)
	o.OSVURL = valueOrDefaultURL(o.OSVURL, DefaultOSVURL)
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{Timeout: 20 * time.Second}
	}
	return o
}

func valueOrDefaultURL(s, def string) string {
	if s == "" {
		return def
	}
	return strings.TrimRight(s, "/")
}

// NewCollectors builds the full collector set in source order.
func NewCollectors(opts Options) []Collector {
	opts = opts.normalize()
	return []Collector{
		NewRegistryCollector(opts),
		NewRepoCollector(opts),
		NewVulnsCollector(opts),
		NewFundingCollector(opts),
		NewDownloadsCollector(opts),
		NewLicenseCollector(opts),
	}
}

// statusError is a non-2xx upstream reply.
type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.code, e.url)
}

// isNotFound reports whether err is an upstream 404.
func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.code == http.StatusNotFound
}

// getJSON performs an authenticated GET and decodes the JSON response into out.
func getJSON(ctx context.Context, client *http.Client, url, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return doJSON(client, req, out)
}

// postJSON performs a POST with a JSON body and decodes the JSON response.
func postJSON(ctx context.Context, client *http.Client, url string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(encoded)))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return doJSON(client, req, out)
}

func doJSON(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{code: resp.StatusCode, url: req.URL.String()}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// cachedAs reads a typed payload for src from cache and wraps it as a result
// via assign. Shared by every collector's Cached implementation.
func cachedAs[T any](cache *iocache.Cache, src schema.Source, name, version string, assign func(*schema.CollectorResult, *T)) (schema.CollectorResult, bool) {
	if cache == nil {
		return schema.CollectorResult{}, false
	}
	var payload T
	created, ok := cache.GetJSON(CacheKey(src, name, version), &payload)
	if !ok {
		return schema.CollectorResult{}, false
	}
	result := schema.CollectorResult{
		Source:      src,
		Status:      schema.StatusCached,
		CollectedAt: created,
	}
	assign(&result, &payload)
	return result, true
}
