package asciidoc

import (
	"testing"

	"github.com/spf13/afero"
)

func TestIncludeSplicesTargetFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/doc/included.adoc", []byte("Included text.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	source := "Before.\n\ninclude::included.adoc[]\n\nAfter.\n"

	doc, _, perr := Parse([]byte(source), "/doc/test.adoc", ParserOptions{
		SafeMode:   SafeModeUnsafe,
		RootDir:    "/doc",
		Filesystem: fs,
	})
	if perr != nil {
		t.Fatalf("Parse returned fatal error: %v", perr)
	}

	found := false
	for _, c := range doc.Children() {
		if c.Type() == NodeParagraph && string(c.Source()) == "Included text." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the included paragraph to appear among top-level blocks, got %d blocks", len(doc.Children()))
	}
}

func TestIncludeMissingTargetWarns(t *testing.T) {
	fs := afero.NewMemMapFs()
	source := "include::missing.adoc[]\n"

	doc := mustParse(t, source, ParserOptions{SafeMode: SafeModeUnsafe, RootDir: "/doc", Filesystem: fs})

	found := false
	for _, d := range doc.Diagnostics().All() {
		if d.Kind == DiagnosticIncludeError {
			found = true
		}
	}
	if !found {
		t.Error("expected a DiagnosticIncludeError for the missing include target")
	}
}

func TestIncludeSecureModeDisablesIncludes(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/doc/included.adoc", []byte("Included text.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	source := "include::included.adoc[]\n"

	doc := mustParse(t, source, ParserOptions{SafeMode: SafeModeSecure, RootDir: "/doc", Filesystem: fs})

	for _, c := range doc.Children() {
		if c.Type() == NodeParagraph && string(c.Source()) == "Included text." {
			t.Fatal("include should not have been resolved under secure mode")
		}
	}
}

func TestIncludeAbsolutePathRejectedUnderSafeMode(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/etc/secret.adoc", []byte("Secret.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	source := "include::/etc/secret.adoc[]\n"

	doc := mustParse(t, source, ParserOptions{SafeMode: SafeModeSafe, RootDir: "/doc", Filesystem: fs})

	for _, c := range doc.Children() {
		if c.Type() == NodeParagraph && string(c.Source()) == "Secret." {
			t.Fatal("absolute include should have been rejected under safe mode")
		}
	}
	found := false
	for _, d := range doc.Diagnostics().All() {
		if d.Kind == DiagnosticIncludeError {
			found = true
		}
	}
	if !found {
		t.Error("expected a DiagnosticIncludeError for the rejected absolute path")
	}
}
