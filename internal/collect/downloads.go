package collect

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/huangsam/trustspot/internal/iocache"
	"github.com/huangsam/trustspot/schema"
)

// DownloadsCollector fetches download counts from the npm downloads API.
// Weekly and monthly point queries run in parallel; the weekly figure is
// mandatory while a failed monthly query degrades to zero.
type DownloadsCollector struct {
	cache        *iocache.Cache
	limiter      *Limiter
	client       *http.Client
	ttl          time.Duration
	downloadsURL string
	now          func() time.Time
}

var _ Collector = &DownloadsCollector{} // Compile-time check

// NewDownloadsCollector builds the popularity collector from shared options.
func NewDownloadsCollector(opts Options) *DownloadsCollector {
	opts = opts.normalize()
	return &DownloadsCollector{
		cache:        opts.Cache,
		limiter:      opts.Limits.Downloads,
		client:       opts.HTTPClient,
		ttl:          opts.TTL,
		downloadsURL: opts.DownloadsURL,
		now:          time.Now,
	}
}

// Name implements the Collector interface.
func (c *DownloadsCollector) Name() schema.Source { return schema.PopularitySource }

// Collect implements the Collector interface.
func (c *DownloadsCollector) Collect(ctx context.Context, name, version string) schema.CollectorResult {
	if cached, ok := c.Cached(name, version); ok {
		return cached
	}

	var (
		wg              sync.WaitGroup
		weekly, monthly int
		weeklyErr       error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		weekly, weeklyErr = c.pointDownloads(ctx, "last-week", name)
	}()
	go func() {
		defer wg.Done()
		monthly, _ = c.pointDownloads(ctx, "last-month", name)
	}()
	wg.Wait()

	if weeklyErr != nil {
		if isNotFound(weeklyErr) {
			return schema.ErrorResult(schema.PopularitySource, fmt.Sprintf("no download statistics for %q", name))
		}
		return schema.ErrorResult(schema.PopularitySource, weeklyErr.Error())
	}

	summary := &schema.PopularitySummary{
		WeeklyDownloads:  weekly,
		MonthlyDownloads: monthly,
	}
	if c.cache != nil {
		c.cache.Set(CacheKey(schema.PopularitySource, name, version), summary, c.ttl)
	}
	return schema.CollectorResult{
		Source:      schema.PopularitySource,
		Status:      schema.StatusSuccess,
		CollectedAt: c.now(),
		Popularity:  summary,
	}
}

// Cached implements the Collector interface.
func (c *DownloadsCollector) Cached(name, version string) (schema.CollectorResult, bool) {
	return cachedAs(c.cache, schema.PopularitySource, name, version,
		func(r *schema.CollectorResult, summary *schema.PopularitySummary) { r.Popularity = summary })
}

// pointDownloads queries one point-in-time download total.
func (c *DownloadsCollector) pointDownloads(ctx context.Context, period, name string) (int, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return 0, fmt.Errorf("rate limit wait aborted: %w", err)
	}
	endpoint := fmt.Sprintf("%s/downloads/point/%s/%s", c.downloadsURL, period, url.PathEscape(name))
	var reply struct {
		Downloads int `json:"downloads"`
	}
	if err := getJSON(ctx, c.client, endpoint, "", &reply); err != nil {
		return 0, err
	}
	return reply.Downloads, nil
}
