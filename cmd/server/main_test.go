package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "proposal-desk version dev")
}

func TestCatalogCommand_Embedded(t *testing.T) {
	out, err := execute(t, "catalog", "--file", "")
	require.NoError(t, err)
	assert.Contains(t, out, "15 services in 5 categories")
}

func TestCatalogCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - name: Strategy
    services:
      - id: audit
        name: Brand Audit
        price: 1500
        customizable: true
`), 0o644))

	out, err := execute(t, "catalog", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Brand Audit")
	assert.Contains(t, out, "$1,500.00")
	assert.Contains(t, out, "Custom *")
	assert.Contains(t, out, "1 services in 1 categories")
}

func TestCatalogCommand_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: []"), 0o644))

	_, err := execute(t, "catalog", "--file", path)
	assert.Error(t, err)
}
