package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCommands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	got := strings.Join(names, " ")
	for _, want := range []string{"browse", "dev", "export", "serve"} {
		if !strings.Contains(got, want) {
			t.Errorf("commands %q lack %q", got, want)
		}
	}
}

func TestExportCommand(t *testing.T) {
	for _, k := range []string{"PORT", "SITE_BASE_PATH", "SITE_ASSET_PREFIX", "SITE_OUT_DIR", "BLOG_UNKNOWN_POST", "SCROLL_THRESHOLD"} {
		t.Setenv(k, "")
	}
	t.Setenv("SITE_TRAILING_SLASH", "true")
	out := filepath.Join(t.TempDir(), "site")

	var stdout bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetArgs([]string{"export", "--config", "", "--out", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("export: %v", err)
	}

	for _, f := range []string{
		"index.html",
		"blog/index.html",
		"blog/going-to-mars/index.html",
		"blog/another-blog-post/index.html",
		"404.html",
		"static/site.css",
	} {
		if _, err := os.Stat(filepath.Join(out, f)); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}
	if !strings.Contains(stdout.String(), "404.html") {
		t.Errorf("report does not list the not-found page:\n%s", stdout.String())
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("blog:\n  unknown_post: sometimes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"export", "--config", path, "--out", t.TempDir()})
	if err := root.Execute(); err == nil {
		t.Fatal("export accepted an invalid config")
	}
}
