// Package manifest reads npm dependency manifests into a flat dependency list.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/huangsam/trustspot/schema"
)

// ErrNoManifest indicates the project directory holds no supported manifest.
var ErrNoManifest = errors.New("no package.json found")

// packageJSON is the subset of package.json trustspot reads.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// packageLock is the subset of a v2/v3 package-lock.json trustspot reads.
type packageLock struct {
	Packages map[string]struct {
		Version string `json:"version"`
	} `json:"packages"`
}

// Read returns the project's dependencies sorted by name. Exact versions
// come from package-lock.json when present; otherwise the range markers in
// package.json are stripped down to a best-effort version. Entries from
// dependencies and devDependencies are direct, lockfile-only entries are
// transitive.
func Read(projectDir string) ([]schema.Dependency, error) {
	manifestPath := filepath.Join(projectDir, "package.json")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %q", ErrNoManifest, projectDir)
		}
		return nil, fmt.Errorf("failed to read %q: %w", manifestPath, err)
	}

	var manifest packageJSON
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", manifestPath, err)
	}

	direct := make(map[string]string, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for name, version := range manifest.Dependencies {
		direct[name] = version
	}
	for name, version := range manifest.DevDependencies {
		direct[name] = version
	}

	byName := make(map[string]schema.Dependency, len(direct))
	for name, version := range direct {
		byName[name] = schema.Dependency{
			Name:     name,
			Version:  cleanRange(version),
			IsDirect: true,
		}
	}

	mergeLockfile(projectDir, direct, byName)

	deps := make([]schema.Dependency, 0, len(byName))
	for _, dep := range byName {
		deps = append(deps, dep)
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })
	return deps, nil
}

// mergeLockfile overlays exact lockfile versions and adds transitive
// dependencies. A missing or unreadable lockfile is not an error.
func mergeLockfile(projectDir string, direct map[string]string, byName map[string]schema.Dependency) {
	data, err := os.ReadFile(filepath.Join(projectDir, "package-lock.json"))
	if err != nil {
		return
	}
	var lock packageLock
	if err := json.Unmarshal(data, &lock); err != nil {
		return
	}

	for path, entry := range lock.Packages {
		name := lockPackageName(path)
		if name == "" || entry.Version == "" {
			continue
		}
		_, isDirect := direct[name]
		if existing, ok := byName[name]; ok {
			existing.Version = entry.Version
			byName[name] = existing
			continue
		}
		byName[name] = schema.Dependency{
			Name:     name,
			Version:  entry.Version,
			IsDirect: isDirect,
		}
	}
}

// lockPackageName extracts the package name from a lockfile packages key.
// Nested keys resolve to the innermost package, so
// "node_modules/a/node_modules/@s/b" yields "@s/b".
func lockPackageName(path string) string {
	const marker = "node_modules/"
	idx := strings.LastIndex(path, marker)
	if idx < 0 {
		return "" // the root project entry has an empty key
	}
	return path[idx+len(marker):]
}

// cleanRange strips range operators from a version constraint. Constraints
// that are not a single pinned version collapse to empty, which collectors
// treat as "latest".
func cleanRange(version string) string {
	cleaned := strings.TrimSpace(version)
	cleaned = strings.TrimLeft(cleaned, "^~>=<")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" || cleaned == "*" || cleaned == "latest" {
		return ""
	}
	// Composite ranges and URLs cannot be pinned locally.
	if strings.ContainsAny(cleaned, " |:/") {
		return ""
	}
	return cleaned
}
