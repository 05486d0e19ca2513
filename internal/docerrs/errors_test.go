package docerrs

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestConfigParseErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		err  *ConfigParseError
		want string
	}{
		{"with path", &ConfigParseError{Path: "asciidoc.yml", Err: errors.New("bad yaml")}, "failed to parse config asciidoc.yml: bad yaml"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.err.Error())
	}
}

func TestConfigParseErrorUnwraps(t *testing.T) {
	inner := errors.New("bad yaml")
	err := &ConfigParseError{Path: "asciidoc.yml", Err: inner}
	assert.True(t, errors.Is(err, inner))
}

func TestConfigValidationErrorMessage(t *testing.T) {
	err := &ConfigValidationError{Field: "convert.backend", Value: "pdf", Reason: "must be one of html, man, term"}
	assert.Equal(t, `invalid config field "convert.backend" ("pdf"): must be one of html, man, term`, err.Error())
}

func TestUnsupportedNodeErrorMessage(t *testing.T) {
	err := &UnsupportedNodeError{Backend: "htmlout", Variant: "toc"}
	assert.Equal(t, `htmlout backend has no rendering rule for "toc" nodes`, err.Error())
}

func TestWriteFailedErrorUnwraps(t *testing.T) {
	inner := errors.New("disk full")
	err := &WriteFailedError{Backend: "manout", Err: inner}
	assert.True(t, errors.Is(err, inner))
}

func TestFatalDocumentErrorMessage(t *testing.T) {
	inner := errors.New("unexpected EOF in delimited block")
	err := &FatalDocumentError{Path: "doc.adoc", Err: inner}
	assert.Equal(t, "failed to parse doc.adoc: unexpected EOF in delimited block", err.Error())
}
