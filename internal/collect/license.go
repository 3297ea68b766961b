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

// safeLicenses are permissive licenses with no copyleft obligations.
var safeLicenses = map[string]struct{}{
	"MIT":          {},
	"ISC":          {},
	"APACHE-2.0":   {},
	"BSD-2-CLAUSE": {},
	"BSD-3-CLAUSE": {},
	"0BSD":         {},
	"UNLICENSE":    {},
	"CC0-1.0":      {},
	"ZLIB":         {},
	"WTFPL":        {},
}

// cautiousLicenses carry weak copyleft or file-level obligations.
var cautiousLicenses = map[string]struct{}{
	"LGPL-2.1": {},
	"LGPL-3.0": {},
	"MPL-2.0":  {},
	"EPL-1.0":  {},
	"EPL-2.0":  {},
	"CDDL-1.0": {},
}

// riskyLicenses carry strong copyleft or source-availability obligations.
var riskyLicenses = map[string]struct{}{
	"GPL-2.0":  {},
	"GPL-3.0":  {},
	"AGPL-1.0": {},
	"AGPL-3.0": {},
	"SSPL-1.0": {},
	"BUSL-1.1": {},
}

// LicenseCollector classifies the package license into a risk class.
type LicenseCollector struct {
	cache       *iocache.Cache
	limiter     *Limiter
	client      *http.Client
	ttl         time.Duration
	registryURL string
	now         func() time.Time
}

var _ Collector = &LicenseCollector{} // Compile-time check

// NewLicenseCollector builds the license collector from shared options.
func NewLicenseCollector(opts Options) *LicenseCollector {
	opts = opts.normalize()
	return &LicenseCollector{
		cache:       opts.Cache,
		limiter:     opts.Limits.Registry,
		client:      opts.HTTPClient,
		ttl:         opts.TTL,
		registryURL: opts.RegistryURL,
		now:         time.Now,
	}
}

// Name implements the Collector interface.
func (c *LicenseCollector) Name() schema.Source { return schema.LicenseSource }

// Collect implements the Collector interface.
func (c *LicenseCollector) Collect(ctx context.Context, name, version string) schema.CollectorResult {
	if cached, ok := c.Cached(name, version); ok {
		return cached
	}

	license, err := c.resolveLicense(ctx, name, version)
	if err != nil {
		return schema.ErrorResult(schema.LicenseSource, err.Error())
	}

	summary := &schema.LicenseSummary{
		License: license,
		Risk:    ClassifyLicense(license),
	}
	if c.cache != nil {
		c.cache.Set(CacheKey(schema.LicenseSource, name, version), summary, c.ttl)
	}
	return schema.CollectorResult{
		Source:      schema.LicenseSource,
		Status:      schema.StatusSuccess,
		CollectedAt: c.now(),
		License:     summary,
	}
}

// Cached implements the Collector interface.
func (c *LicenseCollector) Cached(name, version string) (schema.CollectorResult, bool) {
	return cachedAs(c.cache, schema.LicenseSource, name, version,
		func(r *schema.CollectorResult, summary *schema.LicenseSummary) { r.License = summary })
}

// resolveLicense reuses cached registry metadata before fetching the packument.
func (c *LicenseCollector) resolveLicense(ctx context.Context, name, version string) (string, error) {
	if c.cache != nil {
		var info schema.RegistryInfo
		if _, ok := c.cache.GetJSON(CacheKey(schema.RegistrySource, name, version), &info); ok {
			return info.License, nil
		}
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait aborted: %w", err)
	}
	doc, err := fetchPackument(ctx, c.client, c.registryURL, name)
	if err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("package %q not found in registry", name)
		}
		return "", err
	}
	return normalizeRegistry(doc, version).License, nil
}

// ClassifyLicense maps an SPDX-ish license expression to a risk class.
// Suffixes like "-only" and "-or-later" are stripped before lookup. An
// empty or unrecognized expression classifies as unknown.
func ClassifyLicense(license string) schema.LicenseRisk {
	normalized := strings.ToUpper(strings.TrimSpace(license))
	normalized = strings.TrimSuffix(normalized, "-ONLY")
	normalized = strings.TrimSuffix(normalized, "-OR-LATER")
	// Legacy "+" form, like GPL-2.0+
	normalized = strings.TrimSuffix(normalized, "+")

	if normalized == "" {
		return schema.LicenseUnknown
	}
	if _, ok := safeLicenses[normalized]; ok {
		return schema.LicenseSafe
	}
	if _, ok := cautiousLicenses[normalized]; ok {
		return schema.LicenseCautious
	}
	if _, ok := riskyLicenses[normalized]; ok {
		return schema.LicenseRisky
	}
	return schema.LicenseUnknown
}
