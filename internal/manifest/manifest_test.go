package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/trustspot/schema"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestReadManifestOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{
		"dependencies": {"lodash": "^4.17.21", "express": "~4.18.0"},
		"devDependencies": {"jest": ">=29.0.0", "webpack": "*"}
	}`)

	deps, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, deps, 4)

	byName := make(map[string]schema.Dependency)
	for _, dep := range deps {
		byName[dep.Name] = dep
		assert.True(t, dep.IsDirect)
	}
	assert.Equal(t, "4.17.21", byName["lodash"].Version)
	assert.Equal(t, "4.18.0", byName["express"].Version)
	assert.Equal(t, "29.0.0", byName["jest"].Version)
	assert.Equal(t, "", byName["webpack"].Version, "wildcard ranges cannot be pinned")
}

func TestReadWithLockfile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"dependencies": {"lodash": "^4.17.0"}}`)
	writeFile(t, dir, "package-lock.json", `{
		"packages": {
			"": {"version": "1.0.0"},
			"node_modules/lodash": {"version": "4.17.21"},
			"node_modules/tiny-dep": {"version": "2.0.0"},
			"node_modules/tiny-dep/node_modules/@scope/inner": {"version": "0.3.0"}
		}
	}`)

	deps, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, deps, 3)

	// Sorted by name, scoped package first.
	assert.Equal(t, "@scope/inner", deps[0].Name)
	assert.False(t, deps[0].IsDirect)
	assert.Equal(t, "lodash", deps[1].Name)
	assert.Equal(t, "4.17.21", deps[1].Version, "lockfile pins the exact version")
	assert.True(t, deps[1].IsDirect)
	assert.Equal(t, "tiny-dep", deps[2].Name)
	assert.False(t, deps[2].IsDirect)
}

func TestReadMissingManifest(t *testing.T) {
	_, err := Read(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoManifest)
}

func TestReadCorruptManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", "{not json")

	_, err := Read(dir)
	assert.Error(t, err)
}

func TestReadCorruptLockfileIsTolerated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"dependencies": {"lodash": "^4.17.0"}}`)
	writeFile(t, dir, "package-lock.json", "{not json")

	deps, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "4.17.0", deps[0].Version)
}

func TestCleanRange(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "1.2.3"},
		{"^1.2.3", "1.2.3"},
		{"~0.9.1", "0.9.1"},
		{">=2.0.0", "2.0.0"},
		{"*", ""},
		{"latest", ""},
		{">=1.0.0 <2.0.0", ""},
		{"1.x || 2.x", ""},
		{"git+https://github.com/a/b", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, cleanRange(tc.in), tc.in)
	}
}
