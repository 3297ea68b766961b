// Package core implements trust scoring, abandonment and typosquat analysis,
// and the orchestration that feeds them.
package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/huangsam/trustspot/internal/collect"
	"github.com/huangsam/trustspot/schema"
)

// Orchestrator fans one package query out to every collector and always
// returns a fully populated CollectorSet. A slow collector is cut off at the
// per-collector timeout and its slot carries an error result; in offline
// mode no collector touches the network and cache misses surface as
// StatusOffline.
type Orchestrator struct {
	collectors  []collect.Collector
	concurrency int
	timeout     time.Duration
	offline     bool
}

// NewOrchestrator wires the collectors with the given concurrency cap,
// per-collector timeout and offline switch.
func NewOrchestrator(collectors []collect.Collector, concurrency int, timeout time.Duration, offline bool) *Orchestrator {
	if concurrency < 1 {
		concurrency = 1
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Orchestrator{
		collectors:  collectors,
		concurrency: concurrency,
		timeout:     timeout,
		offline:     offline,
	}
}

// CollectAll gathers all signal sources for one package version. Every
// source named by a collector gets a slot regardless of outcome.
func (o *Orchestrator) CollectAll(ctx context.Context, name, version string) schema.CollectorSet {
	var set schema.CollectorSet

	if o.offline {
		for _, collector := range o.collectors {
			result, ok := collector.Cached(name, version)
			if !ok {
				result = schema.OfflineResult(collector.Name())
			}
			set.SetBySource(collector.Name(), result)
		}
		return set
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, o.concurrency)

	for _, collector := range o.collectors {
		wg.Add(1)
		go func(c collect.Collector) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result := o.runOne(ctx, c, name, version)
			mu.Lock()
			set.SetBySource(c.Name(), result)
			mu.Unlock()
		}(collector)
	}
	wg.Wait()
	return set
}

// runOne executes a single collector under the per-collector timeout. The
// collector keeps running in the background if it ignores cancellation; its
// eventual result is discarded.
func (o *Orchestrator) runOne(ctx context.Context, c collect.Collector, name, version string) schema.CollectorResult {
	cctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	done := make(chan schema.CollectorResult, 1)
	go func() { done <- c.Collect(cctx, name, version) }()

	select {
	case result := <-done:
		return result
	case <-cctx.Done():
		return schema.ErrorResult(c.Name(), fmt.Sprintf("collection timed out after %s", o.timeout))
	}
}
