package doclog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestCreateHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	h := CreateHandler(&buf, slog.LevelInfo, FormatJSON)
	slog.New(h).Info("hello")

	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected JSON log line, got %q", buf.String())
	}
}

func TestCreateHandlerText(t *testing.T) {
	var buf bytes.Buffer
	h := CreateHandler(&buf, slog.LevelInfo, FormatText)
	slog.New(h).Info("hello")

	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("expected text log line, got %q", buf.String())
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if ParseLevel("bogus") != slog.LevelInfo {
		t.Error("expected unrecognized level to default to info")
	}
	if ParseLevel("debug") != slog.LevelDebug {
		t.Error("expected debug to map to slog.LevelDebug")
	}
}

func TestParseFormatDefaultsToText(t *testing.T) {
	if ParseFormat("bogus") != FormatText {
		t.Error("expected unrecognized format to default to text")
	}
	if ParseFormat("json") != FormatJSON {
		t.Error("expected json to map to FormatJSON")
	}
}
