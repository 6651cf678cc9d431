package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/supafox/supafox/internal/auth"
	"github.com/supafox/supafox/internal/version"
)

const testDoc = `---
title: Terms of Service
description: The rules for using SupaFox.
date: 2024-05-01
published: true
---

## Acceptance of Terms
`

const testDraft = `---
title: Cookie Policy
description: Draft.
date: 2024-07-01
published: false
---

Soon.
`

// writeProject creates a content directory and a config file pointing at it.
func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	legal := filepath.Join(dir, "content", "legal")
	require.NoError(t, os.MkdirAll(legal, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(legal, "terms.mdx"), []byte(testDoc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(legal, "cookies.mdx"), []byte(testDraft), 0o644))

	cfg := "content:\n  dir: " + filepath.Join(dir, "content") + "\nlog:\n  level: error\n"
	path := filepath.Join(dir, ".supafox.yml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	legalOutput, legalAll, routesOutput = formatTable, false, formatTable
	t.Cleanup(func() { cfgFile = "" })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLegalListCommand(t *testing.T) {
	cfg := writeProject(t)

	out, err := execute(t, "--config", cfg, "legal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "SLUG")
	assert.Contains(t, out, "/legal/terms")
	assert.NotContains(t, out, "/legal/cookies")

	out, err = execute(t, "--config", cfg, "legal", "list", "--all", "-o", "json")
	require.NoError(t, err)
	var docs []documentSummary
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "/legal/cookies", docs[0].Slug)
	assert.False(t, docs[0].Published)
	assert.Equal(t, "2024-05-01", docs[1].Date)
	assert.Equal(t, "legal/terms.mdx", docs[1].Source)
}

func TestLegalCheckCommand(t *testing.T) {
	cfg := writeProject(t)

	out, err := execute(t, "--config", cfg, "legal", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "2 documents OK (1 published)")

	broken := filepath.Join(filepath.Dir(cfg), "content", "legal", "broken.md")
	require.NoError(t, os.WriteFile(broken, []byte("no front matter\n"), 0o644))
	_, err = execute(t, "--config", cfg, "legal", "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.md")
}

func TestRoutesCommand(t *testing.T) {
	cfg := writeProject(t)

	out, err := execute(t, "--config", cfg, "routes", "/dashboard", "/login", "/legal/terms")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "protected")
	assert.Contains(t, lines[1], "redirect /login")
	assert.Contains(t, lines[2], "auth-only")
	assert.Contains(t, lines[2], "redirect /account")
	assert.Contains(t, lines[3], "public")

	_, err = execute(t, "--config", cfg, "routes")
	assert.Error(t, err, "at least one path is required")

	_, err = execute(t, "--config", cfg, "routes", "-o", "xml", "/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestMissingExplicitConfigFails(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yml"), "routes", "/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file")
}

func TestDecide(t *testing.T) {
	decisions := decide(auth.DefaultRoutes(), []string{"/account/billing", "/signup", "/"})

	want := []routeDecision{
		{Path: "/account/billing", Class: "protected", Anonymous: "redirect /login", SignedIn: "pass"},
		{Path: "/signup", Class: "auth-only", Anonymous: "pass", SignedIn: "redirect /account"},
		{Path: "/", Class: "public", Anonymous: "pass", SignedIn: "pass"},
	}
	if diff := cmp.Diff(want, decisions); diff != "" {
		t.Errorf("decide() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteDecisionsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDecisions(&buf, decide(auth.DefaultRoutes(), []string{"/settings"}), formatYAML))

	var got []routeDecision
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "protected", got[0].Class)
	assert.Contains(t, buf.String(), "signed_in: pass")
}

func TestWriteDocumentsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDocuments(&buf, nil, formatTable))
	assert.Equal(t, "No legal documents found.\n", buf.String())

	buf.Reset()
	require.NoError(t, writeDocuments(&buf, []documentSummary{}, formatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteVersion(t *testing.T) {
	info := &version.BuildInfo{
		Version:   "v1.2.0",
		GitCommit: "abcdef1234567",
		BuildTime: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		GoVersion: "go1.24.4",
		Platform:  "linux/amd64",
	}

	var buf bytes.Buffer
	require.NoError(t, writeVersion(&buf, info, "text", false))
	assert.Equal(t, "supafox v1.2.0 (abcdef1)\n", buf.String())

	buf.Reset()
	require.NoError(t, writeVersion(&buf, info, "text", true))
	assert.Contains(t, buf.String(), "Commit: abcdef1234567")
	assert.Contains(t, buf.String(), "Platform: linux/amd64")

	buf.Reset()
	require.NoError(t, writeVersion(&buf, info, "json", false))
	assert.Contains(t, buf.String(), `"version": "v1.2.0"`)

	assert.Error(t, writeVersion(&buf, info, "xml", false))
}

func TestValidateFormat(t *testing.T) {
	for _, f := range outputFormats {
		assert.NoError(t, validateFormat(f))
	}
	assert.Error(t, validateFormat("csv"))
}
