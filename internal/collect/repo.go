package collect

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/huangsam/trustspot/internal/iocache"
	"github.com/huangsam/trustspot/schema"
)

// recentCommitWindow bounds the commit count used as the activity signal.
const recentCommitWindow = 90 * 24 * time.Hour

// RepoCollector fetches source-repository activity from the GitHub API.
// Packages whose registry metadata points outside GitHub produce an error
// result rather than a partial one.
type RepoCollector struct {
	cache           *iocache.Cache
	githubLimiter   *Limiter
	registryLimiter *Limiter
	client          *http.Client
	ttl             time.Duration
	githubURL       string
	registryURL     string
	token           string
	now             func() time.Time
}

var _ Collector = &RepoCollector{} // Compile-time check

// NewRepoCollector builds the repository collector from shared options.
func NewRepoCollector(opts Options) *RepoCollector {
	opts = opts.normalize()
	return &RepoCollector{
		cache:           opts.Cache,
		githubLimiter:   opts.Limits.GitHub,
		registryLimiter: opts.Limits.Registry,
		client:          opts.HTTPClient,
		ttl:             opts.TTL,
		githubURL:       opts.GitHubURL,
		registryURL:     opts.RegistryURL,
		token:           opts.Token,
		now:             time.Now,
	}
}

// Name implements the Collector interface.
func (c *RepoCollector) Name() schema.Source { return schema.RepoSource }

// Collect implements the Collector interface.
func (c *RepoCollector) Collect(ctx context.Context, name, version string) schema.CollectorResult {
	if cached, ok := c.Cached(name, version); ok {
		return cached
	}

	repoURL, err := c.repositoryURL(ctx, name, version)
	if err != nil {
		return schema.ErrorResult(schema.RepoSource, err.Error())
	}
	owner, repo, ok := ParseGitHubRepo(repoURL)
	if !ok {
		return schema.ErrorResult(schema.RepoSource, fmt.Sprintf("repository %q is not a GitHub URL", repoURL))
	}

	activity, err := c.fetchActivity(ctx, owner, repo)
	if err != nil {
		if isNotFound(err) {
			return schema.ErrorResult(schema.RepoSource, fmt.Sprintf("repository %s/%s not found", owner, repo))
		}
		return schema.ErrorResult(schema.RepoSource, err.Error())
	}

	if c.cache != nil {
		c.cache.Set(CacheKey(schema.RepoSource, name, version), activity, c.ttl)
	}
	return schema.CollectorResult{
		Source:      schema.RepoSource,
		Status:      schema.StatusSuccess,
		CollectedAt: c.now(),
		Repo:        activity,
	}
}

// Cached implements the Collector interface.
func (c *RepoCollector) Cached(name, version string) (schema.CollectorResult, bool) {
	return cachedAs(c.cache, schema.RepoSource, name, version,
		func(r *schema.CollectorResult, activity *schema.RepoActivity) { r.Repo = activity })
}

// repositoryURL resolves the package's repository URL, reusing the registry
// collector's cached metadata before touching the network.
func (c *RepoCollector) repositoryURL(ctx context.Context, name, version string) (string, error) {
	if c.cache != nil {
		var info schema.RegistryInfo
		if _, ok := c.cache.GetJSON(CacheKey(schema.RegistrySource, name, version), &info); ok {
			if info.RepositoryURL == "" {
				return "", fmt.Errorf("package %q declares no repository", name)
			}
			return info.RepositoryURL, nil
		}
	}

	if err := c.registryLimiter.Acquire(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait aborted: %w", err)
	}
	doc, err := fetchPackument(ctx, c.client, c.registryURL, name)
	if err != nil {
		return "", err
	}
	info := normalizeRegistry(doc, version)
	if info.RepositoryURL == "" {
		return "", fmt.Errorf("package %q declares no repository", name)
	}
	return info.RepositoryURL, nil
}

// githubRepoDoc is the subset of the GitHub repository document used here.
type githubRepoDoc struct {
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Archived        bool      `json:"archived"`
	PushedAt        time.Time `json:"pushed_at"`
}

// fetchActivity fans out the GitHub sub-requests. The repository document is
// mandatory; contributor, commit and funding probes degrade to zero values.
func (c *RepoCollector) fetchActivity(ctx context.Context, owner, repo string) (*schema.RepoActivity, error) {
	if err := c.githubLimiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait aborted: %w", err)
	}
	var doc githubRepoDoc
	base := fmt.Sprintf("%s/repos/%s/%s", c.githubURL, url.PathEscape(owner), url.PathEscape(repo))
	if err := getJSON(ctx, c.client, base, c.token, &doc); err != nil {
		return nil, err
	}

	activity := &schema.RepoActivity{
		Stars:        doc.StargazersCount,
		Forks:        doc.ForksCount,
		OpenIssues:   doc.OpenIssuesCount,
		Archived:     doc.Archived,
		LastCommitAt: doc.PushedAt,
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		if count, err := c.fetchContributorCount(ctx, base); err == nil {
			activity.Contributors = count
		}
	}()

	go func() {
		defer wg.Done()
		if commits, last, err := c.fetchRecentCommits(ctx, base); err == nil {
			activity.RecentCommits = commits
			if !last.IsZero() {
				activity.LastCommitAt = last
			}
		}
	}()

	go func() {
		defer wg.Done()
		activity.HasFunding = c.probeFundingFile(ctx, base)
	}()

	wg.Wait()
	return activity, nil
}

// fetchContributorCount counts listed (non-anonymous) contributors, capped at
// one API page.
func (c *RepoCollector) fetchContributorCount(ctx context.Context, base string) (int, error) {
	if err := c.githubLimiter.Acquire(ctx); err != nil {
		return 0, err
	}
	var contributors []struct {
		Login string `json:"login"`
	}
	if err := getJSON(ctx, c.client, base+"/contributors?per_page=100", c.token, &contributors); err != nil {
		return 0, err
	}
	return len(contributors), nil
}

// fetchRecentCommits counts commits inside the recent window, capped at one
// API page, and reports the newest commit timestamp.
func (c *RepoCollector) fetchRecentCommits(ctx context.Context, base string) (int, time.Time, error) {
	if err := c.githubLimiter.Acquire(ctx); err != nil {
		return 0, time.Time{}, err
	}
	since := c.now().Add(-recentCommitWindow).UTC().Format(time.RFC3339)
	var commits []struct {
		Commit struct {
			Committer struct {
				Date time.Time `json:"date"`
			} `json:"committer"`
		} `json:"commit"`
	}
	endpoint := fmt.Sprintf("%s/commits?since=%s&per_page=100", base, url.QueryEscape(since))
	if err := getJSON(ctx, c.client, endpoint, c.token, &commits); err != nil {
		return 0, time.Time{}, err
	}
	var last time.Time
	if len(commits) > 0 {
		last = commits[0].Commit.Committer.Date
	}
	return len(commits), last, nil
}

// probeFundingFile checks whether .github/FUNDING.yml exists.
func (c *RepoCollector) probeFundingFile(ctx context.Context, base string) bool {
	if err := c.githubLimiter.Acquire(ctx); err != nil {
		return false
	}
	var content struct {
		Name string `json:"name"`
	}
	err := getJSON(ctx, c.client, base+"/contents/.github/FUNDING.yml", c.token, &content)
	return err == nil && content.Name != ""
}

// ParseGitHubRepo extracts the owner and repository from a GitHub URL.
func ParseGitHubRepo(repoURL string) (owner, repo string, ok bool) {
	u, err := url.Parse(repoURL)
	if err != nil || !strings.HasSuffix(u.Host, "github.com") {
		return "", "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}
