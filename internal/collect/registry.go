package collect

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/huangsam/trustspot/internal/iocache"
	"github.com/huangsam/trustspot/schema"
)

// RegistryCollector fetches package metadata from the npm registry.
type RegistryCollector struct {
	cache       *iocache.Cache
	limiter     *Limiter
	client      *http.Client
	ttl         time.Duration
	registryURL string
	now         func() time.Time
}

var _ Collector = &RegistryCollector{} // Compile-time check

// NewRegistryCollector builds the registry collector from shared options.
func NewRegistryCollector(opts Options) *RegistryCollector {
	opts = opts.normalize()
	return &RegistryCollector{
		cache:       opts.Cache,
		limiter:     opts.Limits.Registry,
		client:      opts.HTTPClient,
		ttl:         opts.TTL,
		registryURL: opts.RegistryURL,
		now:         time.Now,
	}
}

// Name implements the Collector interface.
func (c *RegistryCollector) Name() schema.Source { return schema.RegistrySource }

// Collect implements the Collector interface.
func (c *RegistryCollector) Collect(ctx context.Context, name, version string) schema.CollectorResult {
	if cached, ok := c.Cached(name, version); ok {
		return cached
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return schema.ErrorResult(schema.RegistrySource, fmt.Sprintf("rate limit wait aborted: %v", err))
	}

	doc, err := fetchPackument(ctx, c.client, c.registryURL, name)
	if err != nil {
		if isNotFound(err) {
			return schema.ErrorResult(schema.RegistrySource, fmt.Sprintf("package %q not found in registry", name))
		}
		return schema.ErrorResult(schema.RegistrySource, err.Error())
	}

	info := normalizeRegistry(doc, version)
	if c.cache != nil {
		c.cache.Set(CacheKey(schema.RegistrySource, name, version), info, c.ttl)
	}
	return schema.CollectorResult{
		Source:      schema.RegistrySource,
		Status:      schema.StatusSuccess,
		CollectedAt: c.now(),
		Registry:    info,
	}
}

// Cached implements the Collector interface.
func (c *RegistryCollector) Cached(name, version string) (schema.CollectorResult, bool) {
	return cachedAs(c.cache, schema.RegistrySource, name, version,
		func(r *schema.CollectorResult, info *schema.RegistryInfo) { r.Registry = info })
}

// npmVersionEntry is one published version inside a packument.
type npmVersionEntry struct {
	License    json.RawMessage `json:"license"`
	Licenses   json.RawMessage `json:"licenses"` // legacy plural form
	Deprecated json.RawMessage `json:"deprecated"`
	Repository json.RawMessage `json:"repository"`
	Funding    json.RawMessage `json:"funding"`
}

// npmPackument is the registry document for a package. Only the fields
// trustspot reads are declared; npm docs carry far more.
type npmPackument struct {
	Name        string                     `json:"name"`
	DistTags    map[string]string          `json:"dist-tags"`
	Time        map[string]string          `json:"time"`
	Versions    map[string]npmVersionEntry `json:"versions"`
	Maintainers []struct {
		Name string `json:"name"`
	} `json:"maintainers"`
	Repository json.RawMessage `json:"repository"`
	License    json.RawMessage `json:"license"`
}

// fetchPackument downloads the full registry document for a package.
// Scoped names are escaped so "@scope/pkg" becomes one path segment.
func fetchPackument(ctx context.Context, client *http.Client, registryURL, name string) (*npmPackument, error) {
	endpoint := fmt.Sprintf("%s/%s", registryURL, url.PathEscape(name))
	var doc npmPackument
	if err := getJSON(ctx, client, endpoint, "", &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// resolveVersion picks the packument entry for the requested version,
// falling back to the latest dist-tag when the version is empty or unknown.
func resolveVersion(doc *npmPackument, version string) (string, npmVersionEntry) {
	latest := doc.DistTags["latest"]
	if version != "" {
		if entry, ok := doc.Versions[version]; ok {
			return version, entry
		}
	}
	return latest, doc.Versions[latest]
}

// normalizeRegistry reduces a packument to the fields trustspot scores on.
func normalizeRegistry(doc *npmPackument, version string) *schema.RegistryInfo {
	resolved, entry := resolveVersion(doc, version)

	info := &schema.RegistryInfo{
		Name:          doc.Name,
		LatestVersion: doc.DistTags["latest"],
		License:       parseLicenseField(entry.License, entry.Licenses, doc.License),
		Deprecated:    parseDeprecatedField(entry.Deprecated),
		RepositoryURL: parseRepositoryField(entry.Repository, doc.Repository),
		FundingURL:    firstFundingURL(entry.Funding),
		Maintainers:   len(doc.Maintainers),
		VersionCount:  len(doc.Versions),
	}

	if ts, ok := doc.Time["modified"]; ok {
		info.LastPublishAt = parseRegistryTime(ts)
	}
	// The per-version publish time is a better freshness signal than the
	// document modification time when the exact version is known.
	if ts, ok := doc.Time[resolved]; ok && resolved != "" {
		info.LastPublishAt = parseRegistryTime(ts)
	}
	if ts, ok := doc.Time["created"]; ok {
		info.CreatedAt = parseRegistryTime(ts)
	}
	return info
}

func parseRegistryTime(value string) time.Time {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// parseLicenseField handles the three historical shapes of the license field:
// a SPDX string, an object with a type key, and a legacy array of objects.
func parseLicenseField(fields ...json.RawMessage) string {
	for _, raw := range fields {
		if len(raw) == 0 {
			continue
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}

		var obj struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil && obj.Type != "" {
			return obj.Type
		}

		var list []struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 && list[0].Type != "" {
			return list[0].Type
		}
	}
	return ""
}

// parseDeprecatedField returns the deprecation message, or a marker when the
// field is a bare true.
func parseDeprecatedField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil && b {
		return "deprecated"
	}
	return ""
}

// parseRepositoryField extracts and normalizes the repository URL from the
// string or object form of the field.
func parseRepositoryField(fields ...json.RawMessage) string {
	for _, raw := range fields {
		if len(raw) == 0 {
			continue
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return normalizeRepoURL(s)
		}

		var obj struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil && obj.URL != "" {
			return normalizeRepoURL(obj.URL)
		}
	}
	return ""
}

// normalizeRepoURL rewrites git-style repository URLs to plain https.
func normalizeRepoURL(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")
	s = strings.TrimSuffix(s, ".git")
	switch {
	case strings.HasPrefix(s, "git://"):
		s = "https://" + strings.TrimPrefix(s, "git://")
	case strings.HasPrefix(s, "ssh://git@"):
		s = "https://" + strings.TrimPrefix(s, "ssh://git@")
	case strings.HasPrefix(s, "git@github.com:"):
		s = "https://github.com/" + strings.TrimPrefix(s, "git@github.com:")
	}
	return s
}

// firstFundingURL extracts a funding URL from the string, object, or array
// form of the packument funding field.
func firstFundingURL(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.URL != "" {
		return obj.URL
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, item := range list {
			if u := firstFundingURL(item); u != "" {
				return u
			}
		}
	}
	return ""
}
