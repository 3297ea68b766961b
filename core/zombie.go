package core

import (
	"fmt"
	"time"

	"github.com/huangsam/trustspot/schema"
)

// Abandonment thresholds.
const (
	staleAge      = 365 * 24 * time.Hour // one signal this old is suspicious
	deadCommitAge = 730 * 24 * time.Hour // commits this old alone are damning
)

// ZombieDetector classifies packages as abandoned. Findings are derived
// fresh on every query and never persisted.
type ZombieDetector struct {
	now func() time.Time
}

// NewZombieDetector creates a detector on the real clock.
func NewZombieDetector() *ZombieDetector {
	return &ZombieDetector{now: time.Now}
}

// NewZombieDetectorWithClock creates a detector with an injected clock for tests.
func NewZombieDetectorWithClock(now func() time.Time) *ZombieDetector {
	return &ZombieDetector{now: now}
}

// Detect runs the abandonment rule chain over the collected signals. Rules
// are ordered by severity; the first match wins.
func (d *ZombieDetector) Detect(set *schema.CollectorSet) schema.ZombieResult {
	var registry *schema.RegistryInfo
	if set.Registry.OK() {
		registry = set.Registry.Registry
	}
	var repo *schema.RepoActivity
	if set.Repo.OK() {
		repo = set.Repo.Repo
	}

	result := schema.ZombieResult{Severity: schema.ZombieNone}

	var lastPublish, lastCommit time.Time
	if registry != nil {
		lastPublish = registry.LastPublishAt
	}
	if repo != nil {
		lastCommit = repo.LastCommitAt
	}
	if last := laterTime(lastPublish, lastCommit); !last.IsZero() {
		result.LastActivity = &last
	}

	now := d.now()
	publishAge := ageOrZero(now, lastPublish)
	commitAge := ageOrZero(now, lastCommit)

	switch {
	case registry != nil && registry.Deprecated != "":
		// Deprecation is an explicit abandonment statement from the
		// maintainers; it overrides any amount of recent activity.
		result.IsZombie = true
		result.Severity = schema.ZombieCritical
		result.Reason = fmt.Sprintf("package is marked deprecated: %s", registry.Deprecated)

	case repo != nil && repo.Archived:
		result.IsZombie = true
		result.Severity = schema.ZombieCritical
		result.Reason = "source repository is archived"

	case repo != nil && repo.Contributors == 0:
		result.IsZombie = true
		result.Severity = schema.ZombieCritical
		result.Reason = "source repository has no listed contributors"

	case !lastCommit.IsZero() && commitAge > deadCommitAge:
		result.IsZombie = true
		result.Severity = schema.ZombieCritical
		result.Reason = fmt.Sprintf("no commits for %d days", int(commitAge.Hours()/24))

	case !lastPublish.IsZero() && !lastCommit.IsZero() && publishAge > staleAge && commitAge > staleAge:
		result.IsZombie = true
		result.Severity = schema.ZombieWarning
		result.Reason = fmt.Sprintf("no publishes for %d days and no commits for %d days",
			int(publishAge.Hours()/24), int(commitAge.Hours()/24))

	case !lastPublish.IsZero() && lastCommit.IsZero() && publishAge > staleAge:
		result.IsZombie = true
		result.Severity = schema.ZombieWarning
		result.Reason = fmt.Sprintf("no publishes for %d days; commit history unavailable",
			int(publishAge.Hours()/24))

	case lastPublish.IsZero() && !lastCommit.IsZero() && commitAge > staleAge:
		result.IsZombie = true
		result.Severity = schema.ZombieWarning
		result.Reason = fmt.Sprintf("no commits for %d days; publish history unavailable",
			int(commitAge.Hours()/24))
	}

	return result
}

// laterTime returns the later of two timestamps, ignoring zero values.
func laterTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// ageOrZero returns the age of ts, or zero when ts is unset.
func ageOrZero(now time.Time, ts time.Time) time.Duration {
	if ts.IsZero() {
		return 0
	}
	return now.Sub(ts)
}
