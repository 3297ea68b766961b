package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBlastRadius(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "src/a.js", "import _ from 'lodash';\n")
	writeProjectFile(t, root, "src/b.ts", "const _ = require('lodash');\n")
	writeProjectFile(t, root, "src/deep/c.mjs", "import fp from \"lodash/fp\";\n")
	writeProjectFile(t, root, "src/d.js", "import _ from 'lodash-es';\n") // different package
	writeProjectFile(t, root, "README.md", "mentions lodash but is not source\n")
	writeProjectFile(t, root, "node_modules/lodash/index.js", "module.exports = require('lodash');\n")

	calc := NewBlastCalculator(4)
	radius, err := calc.Calculate(context.Background(), root, "lodash")
	require.NoError(t, err)
	require.NotNil(t, radius)

	assert.Equal(t, 3, radius.AffectedFileCount)
	assert.Equal(t, []string{"src/a.js", "src/b.ts", "src/deep/c.mjs"}, radius.AffectedFilePaths)
	// Four scannable files, three affected.
	assert.InDelta(t, 75.0, radius.Percentage, 0.001)
}

func TestBlastRadiusDynamicImport(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lazy.js", "const mod = await import('chalk');\n")

	calc := NewBlastCalculator(1)
	radius, err := calc.Calculate(context.Background(), root, "chalk")
	require.NoError(t, err)
	assert.Equal(t, 1, radius.AffectedFileCount)
}

func TestBlastRadiusEmptyProject(t *testing.T) {
	calc := NewBlastCalculator(2)
	radius, err := calc.Calculate(context.Background(), t.TempDir(), "lodash")
	require.NoError(t, err)
	require.NotNil(t, radius)

	assert.Equal(t, 0, radius.AffectedFileCount)
	assert.Empty(t, radius.AffectedFilePaths)
	assert.Equal(t, 0.0, radius.Percentage)
}

func TestBlastRadiusNoPrefixConfusion(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "a.js", "import React from 'react';\n")
	writeProjectFile(t, root, "b.js", "import ReactDOM from 'react-dom/client';\n")

	calc := NewBlastCalculator(2)
	all, err := calc.CalculateAll(context.Background(), root, []string{"react", "react-dom"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.js"}, all["react"].AffectedFilePaths)
	assert.Equal(t, []string{"b.js"}, all["react-dom"].AffectedFilePaths)
}

func TestBlastRadiusMissingDirectory(t *testing.T) {
	calc := NewBlastCalculator(1)
	radius, err := calc.Calculate(context.Background(), filepath.Join(t.TempDir(), "nope"), "lodash")
	require.NoError(t, err)
	require.NotNil(t, radius)

	assert.Equal(t, 0, radius.AffectedFileCount)
	assert.Empty(t, radius.AffectedFilePaths)
	assert.Equal(t, 0.0, radius.Percentage)
}

func TestBlastRadiusMissingRootAcrossPackages(t *testing.T) {
	calc := NewBlastCalculator(2)
	all, err := calc.CalculateAll(context.Background(), filepath.Join(t.TempDir(), "gone"), []string{"lodash", "react"})
	require.NoError(t, err)

	for _, pkg := range []string{"lodash", "react"} {
		require.NotNil(t, all[pkg])
		assert.Equal(t, 0, all[pkg].AffectedFileCount)
		assert.Equal(t, 0.0, all[pkg].Percentage)
	}
}
