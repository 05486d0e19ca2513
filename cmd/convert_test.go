package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestConvertCmdRendersHTML(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.adoc")
	if err := os.WriteFile(src, []byte("= Title\n\nHello *world*.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "doc.html")

	cmd := &ConvertCmd{File: src, Backend: "html", Output: out}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Contains(data, []byte("<strong>world</strong>")) {
		t.Errorf("output missing rendered bold text: %s", data)
	}
}

func TestConvertCmdRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.adoc")
	if err := os.WriteFile(src, []byte("text\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := &ConvertCmd{File: src, Backend: "pdf"}
	if err := cmd.Run(); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}

func TestRendererSelectsEachBackend(t *testing.T) {
	for _, name := range []string{"html", "man", "term"} {
		if _, err := renderer(name); err != nil {
			t.Errorf("renderer(%q): %v", name, err)
		}
	}
}
