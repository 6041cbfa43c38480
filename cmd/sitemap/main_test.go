package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunWritesSitemapFiles(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sitemaps")
	t.Setenv("SNAPSHOTS_FOLDER", t.TempDir())
	t.Setenv("SITEMAP_OUTPUT_DIR", out)
	t.Setenv("SITEMAP_BASE_DOMAIN", "livescores.example.com")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-v"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}

	if _, err := os.Stat(filepath.Join(out, "sitemap-index.xml")); err != nil {
		t.Fatalf("expected index file: %v", err)
	}
	month := time.Now().UTC().Format("2006-01")
	if _, err := os.Stat(filepath.Join(out, "sitemap-matches-"+month+".xml")); err != nil {
		t.Fatalf("expected monthly matches file even with no snapshots: %v", err)
	}
	if !strings.Contains(stdout.String(), "wrote") {
		t.Fatalf("expected verbose summary on stdout, got %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("stderr is reserved for errors, got %q", stderr.String())
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--nope"}, &stdout, &stderr); code == 0 {
		t.Fatal("expected non-zero exit for unknown flag")
	}
	if stderr.Len() == 0 {
		t.Fatal("expected flag error on stderr")
	}
}
