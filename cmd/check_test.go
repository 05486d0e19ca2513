package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckCmdPassesCleanDocument(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.adoc")
	if err := os.WriteFile(src, []byte("= Title\n\nHello.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := &CheckCmd{File: src}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run() error on clean document: %v", err)
	}
}

func TestCheckCmdReturnsErrorForMissingFile(t *testing.T) {
	cmd := &CheckCmd{File: filepath.Join(t.TempDir(), "missing.adoc")}
	if err := cmd.Run(); err == nil {
		t.Fatal("expected error for missing file")
	}
}
