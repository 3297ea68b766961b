package core

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"

	"github.com/huangsam/trustspot/schema"
)

// maxScannedFileBytes skips generated bundles and other oversized sources.
const maxScannedFileBytes = 2 << 20

// sourceExtensions are the file types scanned for package references.
var sourceExtensions = map[string]struct{}{
	".js":     {},
	".jsx":    {},
	".ts":     {},
	".tsx":    {},
	".mjs":    {},
	".cjs":    {},
	".vue":    {},
	".svelte": {},
}

// skippedDirs are directory names never descended into.
var skippedDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	"dist":         {},
	"build":        {},
	"coverage":     {},
	".next":        {},
	".nuxt":        {},
}

// BlastCalculator measures how much of a project tree references a package.
type BlastCalculator struct {
	workers int
}

// NewBlastCalculator creates a calculator with the given file-scan parallelism.
func NewBlastCalculator(workers int) *BlastCalculator {
	if workers < 1 {
		workers = 1
	}
	return &BlastCalculator{workers: workers}
}

// Calculate scans projectDir for references to one package.
func (b *BlastCalculator) Calculate(ctx context.Context, projectDir, pkg string) (*schema.BlastRadius, error) {
	all, err := b.CalculateAll(ctx, projectDir, []string{pkg})
	if err != nil {
		return nil, err
	}
	return all[pkg], nil
}

// CalculateAll scans projectDir once and reports the blast radius of every
// named package. Files are processed by a bounded worker pool; an empty,
// missing or unreadable tree yields zero-valued results rather than an error.
func (b *BlastCalculator) CalculateAll(ctx context.Context, projectDir string, pkgs []string) (map[string]*schema.BlastRadius, error) {
	patterns := make(map[string]*regexp.Regexp, len(pkgs))
	for _, pkg := range pkgs {
		patterns[pkg] = importPattern(pkg)
	}

	files, err := b.listSourceFiles(projectDir)
	if err != nil {
		return nil, err
	}

	type match struct {
		pkg  string
		path string
	}

	jobs := make(chan string, len(files))
	matches := make(chan match, len(files)*len(pkgs))
	var wg sync.WaitGroup

	for range b.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if ctx.Err() != nil {
					continue // drain remaining jobs
				}
				content, err := os.ReadFile(filepath.Join(projectDir, path))
				if err != nil {
					continue
				}
				for pkg, pattern := range patterns {
					if pattern.Match(content) {
						matches <- match{pkg: pkg, path: path}
					}
				}
			}
		}()
	}

	for _, path := range files {
		jobs <- path
	}
	close(jobs)
	wg.Wait()
	close(matches)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make(map[string]*schema.BlastRadius, len(pkgs))
	for _, pkg := range pkgs {
		results[pkg] = &schema.BlastRadius{AffectedFilePaths: []string{}}
	}
	for m := range matches {
		radius := results[m.pkg]
		radius.AffectedFilePaths = append(radius.AffectedFilePaths, m.path)
	}
	for _, radius := range results {
		sort.Strings(radius.AffectedFilePaths)
		radius.AffectedFileCount = len(radius.AffectedFilePaths)
		if len(files) > 0 {
			radius.Percentage = float64(radius.AffectedFileCount) / float64(len(files)) * 100
		}
	}
	return results, nil
}

// listSourceFiles walks the project tree and returns scannable files as
// paths relative to root. Unreadable entries reduce coverage, they never
// fail the scan; a missing root yields an empty list.
func (b *BlastCalculator) listSourceFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, skip := skippedDirs[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := sourceExtensions[filepath.Ext(d.Name())]; !ok {
			return nil
		}
		if info, err := d.Info(); err != nil || info.Size() > maxScannedFileBytes {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project tree %q: %w", root, err)
	}
	return files, nil
}

// importPattern matches ES imports, dynamic imports and CommonJS requires of
// a package, including its subpaths but not packages that merely share a
// prefix.
func importPattern(pkg string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(pkg)
	return regexp.MustCompile(`(from\s+|require\(\s*|import\(\s*|import\s+)['"]` + quoted + `(/[^'"]*)?['"]`)
}
