package core

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/huangsam/trustspot/internal/collect"
	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/internal/iocache"
	"github.com/huangsam/trustspot/internal/manifest"
	"github.com/huangsam/trustspot/schema"
)

// Aggregate score weights. Direct dependencies are chosen deliberately and
// count double against transitive baggage.
const (
	directWeight     = 2.0
	transitiveWeight = 1.0
)

// Engine runs the full analysis pipeline for packages and projects.
type Engine struct {
	cfg     *contract.Config
	orch    *Orchestrator
	scorer  *ScoreEngine
	zombies *ZombieDetector
	typos   *TyposquatDetector
	blast   *BlastCalculator
	history contract.HistoryStore
}

// NewEngine wires an Engine from validated configuration and initialized
// stores. History may be nil; recording is then skipped.
func NewEngine(cfg *contract.Config, mgr contract.StoreManager) (*Engine, error) {
	cache := iocache.NewCache(mgr.GetCacheStore())
	collectors := collect.NewCollectors(collect.Options{
		Cache:       cache,
		Limits:      collect.DefaultLimits(cfg.Token),
		TTL:         cfg.CacheTTL,
		Token:       cfg.Token,
		Ecosystem:   cfg.Ecosystem,
		RegistryURL: cfg.RegistryURL,
	})

	scorer, err := NewScoreEngine(cfg.Weights)
	if err != nil {
		return nil, fmt.Errorf("failed to build score engine: %w", err)
	}

	return &Engine{
		cfg:     cfg,
		orch:    NewOrchestrator(collectors, cfg.Concurrency, cfg.CollectorTimeout, cfg.Offline),
		scorer:  scorer,
		zombies: NewZombieDetector(),
		typos:   NewTyposquatDetector(cfg.ExtraReferenceNames, cfg.Affixes),
		blast:   NewBlastCalculator(cfg.Workers),
		history: mgr.GetHistoryStore(),
	}, nil
}

// NewEngineWithParts wires an Engine from explicit components, for tests.
func NewEngineWithParts(cfg *contract.Config, orch *Orchestrator, scorer *ScoreEngine, zombies *ZombieDetector, typos *TyposquatDetector, blast *BlastCalculator, history contract.HistoryStore) *Engine {
	return &Engine{
		cfg:     cfg,
		orch:    orch,
		scorer:  scorer,
		zombies: zombies,
		typos:   typos,
		blast:   blast,
		history: history,
	}
}

// CheckPackage analyzes one package without a surrounding project tree,
// so the report carries no blast radius.
func (e *Engine) CheckPackage(ctx context.Context, name, version string) schema.PackageReport {
	set := e.orch.CollectAll(ctx, name, version)
	return schema.PackageReport{
		Name:      name,
		Version:   version,
		IsDirect:  true,
		Trust:     e.scorer.Score(&set),
		Zombie:    e.zombies.Detect(&set),
		Typosquat: e.typos.Check(name),
		Collected: set,
	}
}

// ScanProject analyzes every dependency of the project at projectDir.
// Packages are processed by a bounded worker pool; per-package failures
// degrade that package's report rather than aborting the scan.
func (e *Engine) ScanProject(ctx context.Context) (*schema.ProjectReport, error) {
	start := time.Now()
	projectDir := e.cfg.ProjectDir

	deps, err := manifest.Read(projectDir)
	if err != nil {
		return nil, err
	}

	var kept []schema.Dependency
	for _, dep := range deps {
		if contract.ShouldIgnore(dep.Name, e.cfg.Ignored) {
			continue
		}
		kept = append(kept, dep)
	}

	names := make([]string, len(kept))
	for i, dep := range kept {
		names[i] = dep.Name
	}
	radii, err := e.blast.CalculateAll(ctx, projectDir, names)
	if err != nil {
		contract.LogWarn("Blast radius scan failed", err)
		radii = nil
	}

	scanID := e.beginScan(start)

	reports := make([]schema.PackageReport, len(kept))
	var wg sync.WaitGroup
	sem := make(chan struct{}, e.cfg.Workers)
	for i, dep := range kept {
		wg.Add(1)
		go func(i int, dep schema.Dependency) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			report := e.CheckPackage(ctx, dep.Name, dep.Version)
			report.IsDirect = dep.IsDirect
			if radii != nil {
				report.Blast = radii[dep.Name]
			}
			reports[i] = report
		}(i, dep)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Name < reports[j].Name })

	project := &schema.ProjectReport{
		ProjectDir:     projectDir,
		Reports:        reports,
		AggregateScore: aggregateScore(reports),
		Duration:       time.Since(start),
	}

	e.endScan(scanID, project)
	return project, nil
}

// aggregateScore computes the project-level score with direct dependencies
// weighted double. No packages yields zero.
func aggregateScore(reports []schema.PackageReport) float64 {
	var weightedSum, totalWeight float64
	for _, report := range reports {
		weight := transitiveWeight
		if report.IsDirect {
			weight = directWeight
		}
		weightedSum += report.Trust.TrustScore * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}

// beginScan opens a history record. History failures never block a scan.
func (e *Engine) beginScan(start time.Time) int64 {
	if e.history == nil {
		return 0
	}
	params := map[string]any{
		"minTrust":    e.cfg.MinTrust,
		"offline":     e.cfg.Offline,
		"concurrency": e.cfg.Concurrency,
		"ecosystem":   e.cfg.Ecosystem,
	}
	scanID, err := e.history.BeginScan(start, params)
	if err != nil {
		contract.LogWarn("Failed to record scan start", err)
		return 0
	}
	return scanID
}

// endScan finalizes the history record and stores per-package scores.
func (e *Engine) endScan(scanID int64, project *schema.ProjectReport) {
	if e.history == nil || scanID == 0 {
		return
	}
	for _, report := range project.Reports {
		err := e.history.RecordPackageScore(scanID, report.Name, report.Version,
			report.Trust.TrustScore, report.Zombie.IsZombie, report.Typosquat.IsRisky)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Failed to record score for %q", report.Name), err)
		}
	}
	if err := e.history.EndScan(scanID, time.Now(), len(project.Reports), project.AggregateScore); err != nil {
		contract.LogWarn("Failed to record scan end", err)
	}
}
